// Loading FASTA files into the configured container kind.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/alignstore/internal/fasta"
	"github.com/mesh-intelligence/alignstore/pkg/alignstore"
	"github.com/mesh-intelligence/alignstore/pkg/alphabet"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// containerOptions returns the options every container built by the CLI
// gets.
func containerOptions() []alignstore.Option {
	opts := []alignstore.Option{alignstore.WithLogger(env.logger)}
	if env.cfg.CheckCoordinates {
		opts = append(opts, alignstore.WithCoordinateChecks())
	}
	return opts
}

// loadAlignment reads the FASTA file at path into the configured container
// kind.
func loadAlignment(path string) (types.Alignment, error) {
	alpha, err := alphabet.Lookup(env.cfg.Alphabet)
	if err != nil {
		return nil, userError(err)
	}
	seqs, err := fasta.ReadFile(path, alpha)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, fasta.ErrMalformed) || errors.Is(err, types.ErrBadSymbol) {
			return nil, userError(err)
		}
		return nil, sysError(err)
	}

	aligned := alignstore.NewAligned(alpha, containerOptions()...)
	for _, seq := range seqs {
		if err := aligned.AddSequence(seq); err != nil {
			return nil, userError(fmt.Errorf("%s: %w", path, err))
		}
	}
	env.logger.Debug("alignment loaded", "path", path,
		"sequences", aligned.NumberOfSequences(), "sites", aligned.NumberOfSites())

	if env.cfg.Container != types.ContainerCompressed {
		return aligned, nil
	}
	compressed, err := alignstore.Compress(aligned, containerOptions()...)
	if err != nil {
		return nil, userError(fmt.Errorf("%s: %w", path, err))
	}
	return compressed, nil
}

// patternsOf returns a as a pattern alignment, compressing a copy when a
// stores whole rows.
func patternsOf(a types.Alignment) (types.PatternAlignment, error) {
	if p, ok := a.(types.PatternAlignment); ok {
		return p, nil
	}
	p, err := alignstore.Compress(a, alignstore.WithLogger(env.logger))
	if err != nil {
		return nil, sysError(err)
	}
	return p, nil
}
