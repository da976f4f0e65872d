package wiring

import (
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/internal/seqfile"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

var _ = ginkgo.Describe("Run", func() {
	ginkgo.It("generates, catalogs and writes the sequence file", func() {
		spec := generate.Spec{CAPType: cap.StrictRotated, Slice: cap.Quartered, Start: "gamma3", Length: 2, RandSeed: 7}
		store := catalog.NewMemStore()
		dir := ginkgo.GinkgoT().TempDir()
		outPath := filepath.Join(dir, "sequence.json")

		seq, id, err := Run(spec, cap.DefaultDeps(), store, outPath)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(seq.Check()).To(gomega.Succeed())
		gomega.Expect(seq.Beats).To(gomega.HaveLen(9))

		entry, err := store.GetSequence(id)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(entry).NotTo(gomega.BeNil())
		gomega.Expect(entry.Word).To(gomega.Equal(seq.Word))
		gomega.Expect(entry.CAPType).To(gomega.Equal(cap.StrictRotated))
		gomega.Expect(cmp.Diff(seq, entry.Sequence)).To(gomega.BeEmpty())

		loaded, err := seqfile.LoadFromPath(outPath)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(cmp.Diff(seq, loaded)).To(gomega.BeEmpty())
	})

	ginkgo.It("runs without a catalog or output path", func() {
		spec := generate.Spec{CAPType: cap.RotatedSwapped, Slice: cap.Halved, Start: "beta3", Length: 2, RandSeed: 11}

		seq, id, err := Run(spec, cap.DefaultDeps(), nil, "")
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(seq.Check()).To(gomega.Succeed())
		gomega.Expect(id).To(gomega.BeZero())
	})
})
