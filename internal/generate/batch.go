package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/austencloud/tka-studio-sub013/internal/logging"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// Result is what one batch worker produced for its spec.
type Result struct {
	Index int
	Spec  Spec
	Seq   cap.Sequence
	Err   error
}

// RunBatch generates one sequence per spec with at most workers running
// at a time. Failures land in the Result instead of stopping the batch;
// results come back in spec order.
func RunBatch(ctx context.Context, specs []Spec, workers int, deps cap.Deps) []Result {
	if workers < 1 {
		workers = 1
	}
	logger := logging.New("batch")
	logger.Info("generating batch", "specs", len(specs), "workers", workers)

	results := make([]Result, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Index: i, Spec: spec, Err: err}
				return nil
			}
			seq, err := Generate(spec, deps)
			results[i] = Result{Index: i, Spec: spec, Seq: seq, Err: err}
			return nil
		})
	}
	_ = g.Wait() // errors captured per result

	for _, r := range results {
		if r.Err != nil {
			logger.Error("generation failed", "index", r.Index, "cap_type", string(r.Spec.CAPType), "error", r.Err)
		}
	}
	return results
}
