package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/wiring"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

var generateFlags struct {
	capType  string
	slice    string
	start    string
	length   int
	randSeed int64
	outPath  string
	save     bool
	dbPath   string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a full circular sequence",
	Long: `Builds a seed and extends it with the chosen pattern until the sequence
closes: the last beat ends where the first began. The result prints as
a table and can be written to a file with -o and saved to the catalog
with --save.

Usage:
  kinetic generate --type strict_rotated --slice quartered --start alpha1
  kinetic generate --type rotated_swapped --slice halved --length 3 -o seq.json
  kinetic generate --save --rand-seed 7`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.capType, "type", "strict_rotated", "Pattern type (see 'kinetic patterns')")
	f.StringVar(&generateFlags.slice, "slice", "quartered", "Slice size: quartered or halved")
	f.StringVar(&generateFlags.start, "start", "alpha1", "Starting grid position")
	f.IntVar(&generateFlags.length, "length", 2, "Motion beats in the seed")
	f.Int64Var(&generateFlags.randSeed, "rand-seed", 0, "Random seed for reproducible output")
	f.StringVarP(&generateFlags.outPath, "output", "o", "", "Write the sequence to this file (.json or .yaml)")
	f.BoolVar(&generateFlags.save, "save", false, "Save the sequence to the catalog")
	f.StringVar(&generateFlags.dbPath, "db", catalog.DefaultDBPath, "Catalog DB path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	spec, err := parseSpecFlags(generateFlags.capType, generateFlags.slice, generateFlags.start, generateFlags.length, generateFlags.randSeed)
	if err != nil {
		return err
	}

	var store catalog.Store
	if generateFlags.save {
		store, err = openStore(generateFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	seq, id, err := wiring.Run(spec, cap.DefaultDeps(), store, generateFlags.outPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, format.SequenceTable(seq, format.ASCII))
	fmt.Fprintf(out, "Word: %s (%d beats)\n", seq.Word, len(seq.Beats))
	if generateFlags.outPath != "" {
		fmt.Fprintf(out, "Sequence written to: %s\n", generateFlags.outPath)
	}
	if id != 0 {
		fmt.Fprintf(out, "Saved to catalog (id=%d)\n", id)
	}
	return nil
}
