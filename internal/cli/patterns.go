// The patterns command.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// patternEntry is one line of the patterns report.
type patternEntry struct {
	Slot    int    `json:"slot"`
	Weight  int    `json:"weight"`
	Pattern string `json:"pattern"`
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns <file>",
		Short: "List the distinct site patterns of an alignment",
		Long: `Patterns prints every distinct column of a FASTA alignment with the
number of sites that share it, in order of first appearance.

Example:
  alignstore patterns primates.fasta
  alignstore patterns --json primates.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(cmd.OutOrStdout(), args[0])
		},
	}
}

func runPatterns(out io.Writer, path string) error {
	a, err := loadAlignment(path)
	if err != nil {
		return err
	}
	p, err := patternsOf(a)
	if err != nil {
		return err
	}

	weights := p.PatternWeights()
	entries := make([]patternEntry, len(weights))
	for slot, w := range weights {
		pattern, err := p.Pattern(slot)
		if err != nil {
			return sysError(err)
		}
		entries[slot] = patternEntry{Slot: slot, Weight: w, Pattern: pattern.String()}
	}

	if flags.jsonMode {
		return writeJSON(out, entries)
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%d\t%d\t%s\n", e.Slot, e.Weight, e.Pattern)
	}
	return nil
}
