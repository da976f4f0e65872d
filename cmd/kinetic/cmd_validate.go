package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <sequence-file> [more-files...]",
	Short: "Check sequence files for structural problems",
	Long: `Loads each file and checks it: beat numbering, hand continuity between
beats, known vocabulary, and position/location agreement. Exits
non-zero if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		seq, err := seqfile.LoadFromPath(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", format.BoolMark(false), path, err)
			continue
		}
		fmt.Fprintf(out, "%s %s: %s (%d beats)\n", format.BoolMark(true), path, seq.Word, len(seq.Beats))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
