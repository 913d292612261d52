// The stats command.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alignstore/pkg/alignstore"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// metricPrefix selects the counters printed by stats --metrics.
const metricPrefix = "alignstore_"

// alignmentStats is the stats report.
type alignmentStats struct {
	File          string             `json:"file"`
	Alphabet      string             `json:"alphabet"`
	Container     string             `json:"container"`
	Sequences     int                `json:"sequences"`
	Sites         int                `json:"sites"`
	Patterns      int                `json:"patterns"`
	GapOnlySites  int                `json:"gap_only_sites"`
	ConstantSites int                `json:"constant_sites"`
	CompleteSites int                `json:"complete_sites"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// siteClass records the site tools' verdicts for one pattern.
type siteClass struct {
	gapOnly, constant, complete bool
}

func newStatsCmd() *cobra.Command {
	var withMetrics bool
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize an alignment",
		Long: `Stats loads a FASTA alignment and reports its size, the number of
distinct site patterns and how many sites are gap-only, constant or complete.

Example:
  alignstore stats primates.fasta
  alignstore stats --json --metrics primates.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), args[0], withMetrics)
		},
	}
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "include container counters")
	return cmd
}

func runStats(out io.Writer, path string, withMetrics bool) error {
	a, err := loadAlignment(path)
	if err != nil {
		return err
	}
	p, err := patternsOf(a)
	if err != nil {
		return err
	}
	classes, err := alignstore.EvaluatePatterns(p, func(pattern *types.SymbolList) (siteClass, error) {
		site := &types.Site{SymbolList: *pattern}
		return siteClass{
			gapOnly:  site.IsGapOnly(),
			constant: site.IsConstant(),
			complete: site.IsComplete(),
		}, nil
	})
	if err != nil {
		return sysError(err)
	}

	stats := alignmentStats{
		File:      path,
		Alphabet:  a.Alphabet().Name(),
		Container: env.cfg.Container,
		Sequences: a.NumberOfSequences(),
		Sites:     a.NumberOfSites(),
		Patterns:  p.NumberOfUniqueSites(),
	}
	for _, c := range classes {
		if c.gapOnly {
			stats.GapOnlySites++
		}
		if c.constant {
			stats.ConstantSites++
		}
		if c.complete {
			stats.CompleteSites++
		}
	}
	if withMetrics {
		if stats.Metrics, err = gatherMetrics(); err != nil {
			return sysError(err)
		}
	}

	if flags.jsonMode {
		return writeJSON(out, stats)
	}
	fmt.Fprintf(out, "file:           %s\n", stats.File)
	fmt.Fprintf(out, "alphabet:       %s\n", stats.Alphabet)
	fmt.Fprintf(out, "container:      %s\n", stats.Container)
	fmt.Fprintf(out, "sequences:      %d\n", stats.Sequences)
	fmt.Fprintf(out, "sites:          %d\n", stats.Sites)
	fmt.Fprintf(out, "patterns:       %d\n", stats.Patterns)
	fmt.Fprintf(out, "gap-only sites: %d\n", stats.GapOnlySites)
	fmt.Fprintf(out, "constant sites: %d\n", stats.ConstantSites)
	fmt.Fprintf(out, "complete sites: %d\n", stats.CompleteSites)
	if withMetrics {
		names := make([]string, 0, len(stats.Metrics))
		for name := range stats.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%s %g\n", name, stats.Metrics[name])
		}
	}
	return nil
}

// gatherMetrics collects the alignstore counters from the default registry.
// Labelled series are keyed name{label="value"}.
func gatherMetrics() (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	metrics := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				pairs := make([]string, len(labels))
				for i, l := range labels {
					pairs[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
				}
				name += "{" + strings.Join(pairs, ",") + "}"
			}
			metrics[name] = m.GetCounter().GetValue()
		}
	}
	return metrics, nil
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(out, string(data))
	return nil
}
