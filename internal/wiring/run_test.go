package wiring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// BDD: Given a pattern spec, When the full flow runs, Then sequence generated, cataloged, file written.
func TestRun_FullFlowGeneratesCatalogsWritesFile(t *testing.T) {
	spec := generate.Spec{CAPType: cap.StrictRotated, Slice: cap.Quartered, Start: "gamma3", Length: 2, RandSeed: 7}
	store := catalog.NewMemStore()
	dir := t.TempDir()
	outPath := filepath.Join(dir, "sequence.json")

	seq, id, err := Run(spec, cap.DefaultDeps(), store, outPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := seq.Check(); err != nil {
		t.Fatalf("generated sequence fails Check: %v", err)
	}
	if len(seq.Beats) != 9 {
		t.Errorf("beats: got %d want 9", len(seq.Beats))
	}

	// (1) Sequence in catalog
	entry, err := store.GetSequence(id)
	if err != nil || entry == nil {
		t.Fatalf("sequence not in catalog: err=%v", err)
	}
	if entry.Word != seq.Word {
		t.Errorf("catalog word: got %q want %q", entry.Word, seq.Word)
	}
	if entry.CAPType != cap.StrictRotated {
		t.Errorf("catalog cap type: got %q want %q", entry.CAPType, cap.StrictRotated)
	}
	if diff := cmp.Diff(seq, entry.Sequence); diff != "" {
		t.Errorf("catalog payload differs (-generated +stored):\n%s", diff)
	}

	// (2) Sequence file on disk round-trips
	loaded, err := seqfile.LoadFromPath(outPath)
	if err != nil {
		t.Fatalf("load written file: %v", err)
	}
	if diff := cmp.Diff(seq, loaded); diff != "" {
		t.Errorf("written file differs (-generated +loaded):\n%s", diff)
	}
}

func TestRun_NilStoreSkipsCatalog(t *testing.T) {
	spec := generate.Spec{CAPType: cap.RotatedComplementary, Slice: cap.Quartered, Start: "alpha1", Length: 2, RandSeed: 3}
	dir := t.TempDir()
	outPath := filepath.Join(dir, "sequence.yaml")

	seq, id, err := Run(spec, cap.DefaultDeps(), nil, outPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if id != 0 {
		t.Errorf("id without a store: got %d want 0", id)
	}
	loaded, err := seqfile.LoadFromPath(outPath)
	if err != nil {
		t.Fatalf("load written file: %v", err)
	}
	if loaded.Word != seq.Word {
		t.Errorf("written word: got %q want %q", loaded.Word, seq.Word)
	}
}

func TestRun_EmptyPathSkipsFile(t *testing.T) {
	spec := generate.Spec{CAPType: cap.StrictSwapped, Slice: cap.Halved, Start: "beta5", Length: 2, RandSeed: 5}
	store := catalog.NewMemStore()

	seq, id, err := Run(spec, cap.DefaultDeps(), store, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if id == 0 {
		t.Error("id with a store: got 0")
	}
	entry, err := store.GetSequence(id)
	if err != nil || entry == nil {
		t.Fatalf("sequence not in catalog: err=%v", err)
	}
	if entry.Word != seq.Word {
		t.Errorf("catalog word: got %q want %q", entry.Word, seq.Word)
	}
}

func TestRun_BadSpecFailsBeforeSideEffects(t *testing.T) {
	spec := generate.Spec{CAPType: cap.StrictMirrored, Slice: cap.Quartered, Start: "beta1", Length: 2, RandSeed: 1}
	store := catalog.NewMemStore()
	dir := t.TempDir()
	outPath := filepath.Join(dir, "sequence.json")

	if _, _, err := Run(spec, cap.DefaultDeps(), store, outPath); err == nil {
		t.Fatal("Run accepted a quartered mirror")
	}
	list, err := store.ListSequences()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("catalog entries after failed run: got %d want 0", len(list))
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("output file after failed run: stat err=%v, want not-exist", err)
	}
}
