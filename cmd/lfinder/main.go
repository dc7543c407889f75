// Command lfinder searches for linear K_k minors in a chromatin contact
// graph read from a NODE/EDGE file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chromatyna/minorfind/ioformat"
	"github.com/chromatyna/minorfind/linear"
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
		Use:          "lfinder",
		Short:        "Find linear K_k minors in a chromatin contact graph",
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringP("input", "f", "", "input graph file (required)")
	cmd.Flags().StringP("output", "o", "", "output file for MINOR records (required)")
	cmd.Flags().IntP("num-vertices", "n", 6, "k, the size of the K_k minor to search for")
	cmd.Flags().BoolP("no-common-endpoints", "c", false, "reject long-range edges sharing an endpoint")
	cmd.Flags().Int("max-frontier", 0, "bound the partial-minor frontier (0 = unbounded)")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	numVertices, _ := cmd.Flags().GetInt("num-vertices")
	noCommonEndpoints, _ := cmd.Flags().GetBool("no-common-endpoints")
	maxFrontier, _ := cmd.Flags().GetInt("max-frontier")
	logLevel, _ := cmd.Flags().GetString("log-level")

	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer in.Close()

	g, err := ioformat.ReadGraph(in)
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}

	result, err := linear.Find(g,
		linear.WithCliqueSize(numVertices),
		linear.WithAllowCommonEndpoints(!noCommonEndpoints),
		linear.WithMaxFrontier(maxFrontier),
		linear.WithLogger(logger),
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
		if err := ioformat.WriteLinearMinor(out, g, m); err != nil {
			return fmt.Errorf("writing minor: %w", err)
		}
	}

	logger.Info("search complete", "minors_found", len(result.Minors))

	return nil
}
