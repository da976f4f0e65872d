package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

var extendFlags struct {
	capType string
	slice   string
	outPath string
}

var extendCmd = &cobra.Command{
	Use:   "extend <sequence-file>",
	Short: "Extend a seed sequence file with a pattern",
	Long: `Reads a seed sequence from a YAML or JSON file and extends it with the
chosen pattern. The seed must end on a position the pattern accepts for
its slice size; 'kinetic patterns --start <pos>' lists the accepted
ends.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtend,
}

func init() {
	f := extendCmd.Flags()
	f.StringVar(&extendFlags.capType, "type", "strict_rotated", "Pattern type (see 'kinetic patterns')")
	f.StringVar(&extendFlags.slice, "slice", "quartered", "Slice size: quartered or halved")
	f.StringVarP(&extendFlags.outPath, "output", "o", "", "Write the extended sequence to this file (.json or .yaml)")
	rootCmd.AddCommand(extendCmd)
}

func runExtend(cmd *cobra.Command, args []string) error {
	seed, err := seqfile.LoadFromPath(args[0])
	if err != nil {
		return err
	}
	capType, err := cap.ParseType(extendFlags.capType)
	if err != nil {
		return err
	}
	slice, err := cap.ParseSliceSize(extendFlags.slice)
	if err != nil {
		return err
	}
	ex, err := cap.New(capType, cap.DefaultDeps())
	if err != nil {
		return err
	}
	seq, err := ex.Execute(seed, slice)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, format.SequenceTable(seq, format.ASCII))
	fmt.Fprintf(out, "Word: %s (%d beats)\n", seq.Word, len(seq.Beats))
	if extendFlags.outPath != "" {
		if err := seqfile.SaveToPath(extendFlags.outPath, seq); err != nil {
			return err
		}
		fmt.Fprintf(out, "Sequence written to: %s\n", extendFlags.outPath)
	}
	return nil
}
