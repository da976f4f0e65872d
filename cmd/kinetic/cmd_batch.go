package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

var batchFlags struct {
	workers  int
	save     bool
	dbPath   string
	outDir   string
	markdown bool
}

var batchCmd = &cobra.Command{
	Use:   "batch <specs-file>",
	Short: "Generate several sequences from a specs file",
	Long: `Generates one sequence per entry in a YAML or JSON specs file, with a
bounded worker pool. A failing spec is reported in the result table
without stopping the rest of the batch.

The specs file is a list of generation specs:

  - cap_type: strict_rotated
    slice: quartered
    start: alpha1
    length: 2
    rand_seed: 7
  - cap_type: rotated_swapped
    slice: halved
    start: gamma3
    length: 3`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.IntVar(&batchFlags.workers, "workers", 4, "Max parallel workers")
	f.BoolVar(&batchFlags.save, "save", false, "Save successful sequences to the catalog")
	f.StringVar(&batchFlags.dbPath, "db", catalog.DefaultDBPath, "Catalog DB path")
	f.StringVar(&batchFlags.outDir, "out-dir", "", "Write each successful sequence to this directory")
	f.BoolVar(&batchFlags.markdown, "markdown", false, "Render Markdown instead of ASCII")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecs(args[0])
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("specs file %s is empty", args[0])
	}

	var store catalog.Store
	if batchFlags.save {
		store, err = openStore(batchFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	if batchFlags.outDir != "" {
		if err := os.MkdirAll(batchFlags.outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	started := time.Now()
	results := generate.RunBatch(cmd.Context(), specs, batchFlags.workers, cap.DefaultDeps())

	tb := format.NewTable(tableMode(batchFlags.markdown))
	tb.Header("#", "Pattern", "Slice", "Start", "OK", "Word / Error")
	failed := 0
	for _, r := range results {
		detail := ""
		switch {
		case r.Err != nil:
			failed++
			detail = format.Truncate(r.Err.Error(), 60)
		default:
			detail = fmt.Sprintf("%s (%d beats)", r.Seq.Word, len(r.Seq.Beats))
			if store != nil {
				id, err := store.SaveSequence(&catalog.Entry{
					CAPType:   r.Spec.CAPType,
					SliceSize: r.Spec.Slice,
					Length:    r.Spec.Length,
					Sequence:  r.Seq,
				})
				if err != nil {
					return fmt.Errorf("save sequence %d: %w", r.Index+1, err)
				}
				detail += fmt.Sprintf(" id=%d", id)
			}
			if batchFlags.outDir != "" {
				path := filepath.Join(batchFlags.outDir, fmt.Sprintf("seq-%03d.json", r.Index+1))
				if err := seqfile.SaveToPath(path, r.Seq); err != nil {
					return err
				}
			}
		}
		tb.Row(r.Index+1, string(r.Spec.CAPType), string(r.Spec.Slice), string(r.Spec.Start),
			format.BoolMark(r.Err == nil), detail)
	}
	tb.Footer("", "", "", "", "", fmt.Sprintf("%d ok, %d failed in %s",
		len(results)-failed, failed, format.FmtDuration(time.Since(started))))
	tb.Columns(format.ColumnConfig{Number: 1, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignCenter})

	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	if failed > 0 {
		return fmt.Errorf("%d of %d specs failed", failed, len(results))
	}
	return nil
}

func loadSpecs(path string) ([]generate.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specs: %w", err)
	}
	var specs []generate.Spec
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" || strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("parse specs json: %w", err)
		}
		return specs, nil
	}
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse specs yaml: %w", err)
	}
	return specs, nil
}
