package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
)

var seedFlags struct {
	capType  string
	slice    string
	start    string
	length   int
	randSeed int64
	outPath  string
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Build a seed sequence without extending it",
	Long: `Builds the seed alone: a start-position beat plus --length motion beats
ending on a position the chosen pattern accepts. Useful for inspecting
or hand-editing a seed before 'kinetic extend' takes it the rest of the
way around.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	f := seedCmd.Flags()
	f.StringVar(&seedFlags.capType, "type", "strict_rotated", "Pattern type (see 'kinetic patterns')")
	f.StringVar(&seedFlags.slice, "slice", "quartered", "Slice size: quartered or halved")
	f.StringVar(&seedFlags.start, "start", "alpha1", "Starting grid position")
	f.IntVar(&seedFlags.length, "length", 2, "Motion beats in the seed")
	f.Int64Var(&seedFlags.randSeed, "rand-seed", 0, "Random seed for reproducible output")
	f.StringVarP(&seedFlags.outPath, "output", "o", "", "Write the seed to this file (.json or .yaml)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	spec, err := parseSpecFlags(seedFlags.capType, seedFlags.slice, seedFlags.start, seedFlags.length, seedFlags.randSeed)
	if err != nil {
		return err
	}
	seed, err := generate.BuildSeed(spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.SequenceTable(seed, format.ASCII))
	if seedFlags.outPath != "" {
		if err := seqfile.SaveToPath(seedFlags.outPath, seed); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seed written to: %s\n", seedFlags.outPath)
	}
	return nil
}
