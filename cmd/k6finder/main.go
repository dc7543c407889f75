// Command k6finder searches for K_6 minor models given a graph and its
// path decomposition.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/ioformat"
	"github.com/chromatyna/minorfind/k6"
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
		Use:          "k6finder",
		Short:        "Find K_6 minor models in a chromatin contact graph",
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringP("decomp", "d", "", "input path-decomposition file (required)")
	cmd.Flags().StringP("output", "o", "", "output file for MINOR records (required)")
	cmd.Flags().Int("max-frontier", 0, "bound the partial-state frontier (0 = unbounded)")
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
	maxFrontier, _ := cmd.Flags().GetInt("max-frontier")
	logLevel, _ := cmd.Flags().GetString("log-level")

	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// The K6-engine rebuilds the graph itself from the decomposition's
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

	result, err := k6.Find(g, pd,
		k6.WithMaxFrontier(maxFrontier),
		k6.WithLogger(logger),
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
		if err := ioformat.WriteK6Minor(out, g, m); err != nil {
			return fmt.Errorf("writing minor: %w", err)
		}
	}

	logger.Info("search complete", "minors_found", len(result.Minors))

	return nil
}
