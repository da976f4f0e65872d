package wiring

import (
	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// Run executes the full generation flow: build the seed, extend it with
// the pattern, then record the result. store takes the catalog entry
// (nil skips the catalog); outPath takes the sequence file, format by
// extension (empty skips the file). Returns the sequence and the
// catalog id when saved.
func Run(spec generate.Spec, deps cap.Deps, store catalog.Store, outPath string) (cap.Sequence, int64, error) {
	seq, err := generate.Generate(spec, deps)
	if err != nil {
		return cap.Sequence{}, 0, err
	}
	var id int64
	if store != nil {
		id, err = store.SaveSequence(&catalog.Entry{
			CAPType:   spec.CAPType,
			SliceSize: spec.Slice,
			Length:    spec.Length,
			Sequence:  seq,
		})
		if err != nil {
			return cap.Sequence{}, 0, err
		}
	}
	if outPath != "" {
		if err := seqfile.SaveToPath(outPath, seq); err != nil {
			return cap.Sequence{}, 0, err
		}
	}
	return seq, id, nil
}
