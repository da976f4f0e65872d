package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
)

var showFlags struct {
	markdown bool
}

var showCmd = &cobra.Command{
	Use:   "show <sequence-file>",
	Short: "Render a sequence file as a beat table",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showFlags.markdown, "markdown", false, "Render Markdown instead of ASCII")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	seq, err := seqfile.LoadFromPath(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.SequenceTable(seq, tableMode(showFlags.markdown)))
	return nil
}
