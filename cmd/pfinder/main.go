// Command pfinder searches for general minor models, bounded by size, cost,
// degree, and non-edge parameters, given a graph and its path decomposition.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/ioformat"
	"github.com/chromatyna/minorfind/minor"
)

func parseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

func main() {
	cmd := &cobra.Command{
		Use:          "pfinder",
		Short:        "Find bounded minor models in a chromatin contact graph",
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringP("decomp", "d", "", "input path-decomposition file (required)")
	cmd.Flags().StringP("output", "o", "", "output file for MINOR records (required)")
	cmd.Flags().IntP("max-n", "N", 1<<30, "upper bound on branch-set count")
	cmd.Flags().IntP("min-n", "n", 0, "lower bound on branch-set count")
	cmd.Flags().IntP("max-cost", "c", 1<<30, "upper bound on edges used")
	cmd.Flags().IntP("max-nonedges", "e", 1<<30, "upper bound on unconnected branch pairs")
	cmd.Flags().IntP("min-deg", "g", 0, "lower bound on forgotten-branch degree")
	cmd.Flags().Int("max-frontier", 0, "bound the partial-minor frontier (0 = unbounded)")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.MarkFlagRequired("decomp")
	cmd.MarkFlagRequired("output")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	decomp, _ := cmd.Flags().GetString("decomp")
	output, _ := cmd.Flags().GetString("output")
	maxN, _ := cmd.Flags().GetInt("max-n")
	minN, _ := cmd.Flags().GetInt("min-n")
	maxCost, _ := cmd.Flags().GetInt("max-cost")
	maxNonedges, _ := cmd.Flags().GetInt("max-nonedges")
	minDeg, _ := cmd.Flags().GetInt("min-deg")
	maxFrontier, _ := cmd.Flags().GetInt("max-frontier")
	logLevel, _ := cmd.Flags().GetString("log-level")

	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// The P-engine rebuilds the graph itself from the decomposition's
	// IntroduceNode/IntroduceEdge steps, the same way find-knots.cpp reads
	// only the decomposition; g starts empty and is populated in place.
	g := graph.New()

	dIn, err := os.Open(decomp)
	if err != nil {
		return fmt.Errorf("opening decomposition file: %w", err)
	}
	defer dIn.Close()

	pd, err := ioformat.ReadPathDecomp(dIn)
	if err != nil {
		return fmt.Errorf("reading path decomposition: %w", err)
	}

	result, err := minor.Find(g, pd,
		minor.WithMaxN(maxN),
		minor.WithMinN(minN),
		minor.WithMaxCost(maxCost),
		minor.WithMaxNonedges(maxNonedges),
		minor.WithMinDeg(minDeg),
		minor.WithMaxFrontier(maxFrontier),
		minor.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("searching for minors: %w", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	for _, m := range result.Minors {
		if err := ioformat.WriteMinor(out, g, m); err != nil {
			return fmt.Errorf("writing minor: %w", err)
		}
	}

	logger.Info("search complete", "minors_found", len(result.Minors))

	return nil
}
