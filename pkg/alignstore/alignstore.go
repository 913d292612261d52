// Package alignstore provides the public API for the in-memory alignment
// containers. It exposes the constructors and converters while keeping the
// container implementations internal.
package alignstore

import (
	"log/slog"

	"github.com/mesh-intelligence/alignstore/internal/container"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// Version is the library and command line version.
const Version = "0.1.0"

// Option configures a container at construction time.
type Option = container.Option

// WithLogger sets the logger that receives the container's debug events.
func WithLogger(logger *slog.Logger) Option {
	return container.WithLogger(logger)
}

// WithCoordinateChecks makes Compress and Expand reject sources whose
// sites share a coordinate.
func WithCoordinateChecks() Option {
	return container.WithCoordinateChecks()
}

// NewAligned creates an empty container that stores whole rows. Columns are
// built on demand.
//
// Example:
//
//	a := alignstore.NewAligned(alphabet.DNA)
//	seq, _ := types.NewSequenceFromText("human", "ACGT", alphabet.DNA)
//	err := a.AddSequence(seq)
func NewAligned(alphabet types.Alphabet, opts ...Option) types.Alignment {
	return container.NewAligned(alphabet, opts...)
}

// NewCompressed creates an empty container that stores each distinct column
// once. The first column added fixes the number of sequences.
func NewCompressed(alphabet types.Alphabet, opts ...Option) types.PatternAlignment {
	return container.NewCompressed(alphabet, opts...)
}

// New creates an empty container of the given kind, one of
// types.ContainerAligned or types.ContainerCompressed.
func New(kind string, alphabet types.Alphabet, opts ...Option) (types.Alignment, error) {
	switch kind {
	case types.ContainerAligned:
		return NewAligned(alphabet, opts...), nil
	case types.ContainerCompressed:
		return NewCompressed(alphabet, opts...), nil
	default:
		return nil, types.ErrContainerUnknown
	}
}

// Compress copies src into a new compressed container, keeping row keys,
// names, comments and coordinates.
func Compress(src types.Alignment, opts ...Option) (types.PatternAlignment, error) {
	c, err := container.Compress(src, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Expand copies src into a new aligned container, keeping row keys, names,
// comments and coordinates.
func Expand(src types.Alignment, opts ...Option) (types.Alignment, error) {
	c, err := container.Expand(src, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveGapOnlySites deletes every column of a made only of gaps and returns
// how many were removed.
func RemoveGapOnlySites(a types.Alignment) (int, error) {
	return container.RemoveGapOnlySites(a)
}

// EvaluatePatterns calls fn once per distinct column of a and returns one
// result per column.
func EvaluatePatterns[T any](a types.PatternAlignment, fn func(pattern *types.SymbolList) (T, error)) ([]T, error) {
	return container.EvaluatePatterns(a, fn)
}
