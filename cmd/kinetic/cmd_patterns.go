package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/display"
	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

var patternsFlags struct {
	start    string
	markdown bool
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the circular arrangement patterns and their slice sizes",
	Long: `Lists every pattern with the slice sizes it accepts, how many copies of
the seed each slice appends and how many start/end position pairs the
combination allows. With --start the last column shows the end
positions a seed from that start may finish on.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	f := patternsCmd.Flags()
	f.StringVar(&patternsFlags.start, "start", "", "Show valid end positions from this start position")
	f.BoolVar(&patternsFlags.markdown, "markdown", false, "Render Markdown instead of ASCII")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	start := cap.Position(patternsFlags.start)
	if start != "" && !cap.KnownPosition(start) {
		return fmt.Errorf("unknown start position %q", patternsFlags.start)
	}

	tb := format.NewTable(tableMode(patternsFlags.markdown))
	lastCol := "Pairs"
	if start != "" {
		lastCol = "Ends from " + string(start)
	}
	tb.Header("Pattern", "Slice", "Repetitions", lastCol)

	for _, t := range cap.Types() {
		for _, size := range []cap.SliceSize{cap.Quartered, cap.Halved} {
			pairs, err := cap.CompatiblePairs(t, size)
			if err != nil {
				continue
			}
			name := display.PatternWithCode(string(t))
			if start == "" {
				tb.Row(name, string(size), size.Repetitions(), pairs.Len())
				continue
			}
			ends, err := cap.EndPositionsFor(t, size, start)
			if err != nil {
				continue
			}
			cells := make([]string, len(ends))
			for i, e := range ends {
				cells[i] = string(e)
			}
			tb.Row(name, string(size), size.Repetitions(), strings.Join(cells, ", "))
		}
	}
	tb.Columns(format.ColumnConfig{Number: 3, Align: format.AlignRight})
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
