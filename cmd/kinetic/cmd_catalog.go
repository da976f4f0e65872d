package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

var catalogFlags struct {
	dbPath   string
	capType  string
	markdown bool
	outPath  string
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the sequence catalog",
	Long:  "Lists, fetches and deletes sequences saved by 'kinetic generate --save'.",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sequences, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(catalogFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var entries []*catalog.Entry
		if catalogFlags.capType != "" {
			capType, err := cap.ParseType(catalogFlags.capType)
			if err != nil {
				return err
			}
			entries, err = store.ListSequencesByType(capType)
			if err != nil {
				return err
			}
		} else {
			entries, err = store.ListSequences()
			if err != nil {
				return err
			}
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sequences in the catalog. Run 'kinetic generate --save' first.")
			return nil
		}

		tb := format.NewTable(tableMode(catalogFlags.markdown))
		tb.Header("ID", "Word", "Pattern", "Slice", "Length", "Created")
		for _, e := range entries {
			tb.Row(e.ID, format.Truncate(e.Word, 24), string(e.CAPType), string(e.SliceSize), e.Length, e.CreatedAt)
		}
		tb.Footer("", "", "", "", "", fmt.Sprintf("%d total", len(entries)))
		tb.Columns(format.ColumnConfig{Number: 1, Align: format.AlignRight},
			format.ColumnConfig{Number: 5, Align: format.AlignRight})
		fmt.Fprintln(cmd.OutOrStdout(), tb.String())
		return nil
	},
}

var catalogGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one saved sequence by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number, got %q", args[0])
		}
		store, err := openStore(catalogFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		e, err := store.GetSequence(id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("no sequence with id %d", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, format.SequenceTable(e.Sequence, tableMode(catalogFlags.markdown)))
		fmt.Fprintf(out, "Pattern: %s %s, seed length %d, created %s\n",
			e.CAPType, e.SliceSize, e.Length, e.CreatedAt)
		if catalogFlags.outPath != "" {
			if err := seqfile.SaveToPath(catalogFlags.outPath, e.Sequence); err != nil {
				return err
			}
			fmt.Fprintf(out, "Sequence written to: %s\n", catalogFlags.outPath)
		}
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved sequence by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number, got %q", args[0])
		}
		store, err := openStore(catalogFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteSequence(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted sequence %d\n", id)
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogFlags.dbPath, "db", catalog.DefaultDBPath, "Catalog DB path")
	catalogCmd.PersistentFlags().BoolVar(&catalogFlags.markdown, "markdown", false, "Render Markdown instead of ASCII")
	catalogListCmd.Flags().StringVar(&catalogFlags.capType, "type", "", "Only list sequences of this pattern type")
	catalogGetCmd.Flags().StringVarP(&catalogFlags.outPath, "output", "o", "", "Write the sequence to this file (.json or .yaml)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
	rootCmd.AddCommand(catalogCmd)
}
