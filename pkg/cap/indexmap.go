package cap

import "log/slog"

// IndexBase selects how the echo offset is derived from the final
// sequence length.
type IndexBase int

const (
	// SliceBase derives the offset from the slice size: a quarter of
	// the final length for quartered slices, half for halved.
	SliceBase IndexBase = iota
	// HalvedBase always uses half the final length, whatever the
	// slice. Quartered runs under this base leave the first generated
	// beats unmapped.
	HalvedBase
)

// IndexMap sends each generated beat number to the number of the earlier
// beat it echoes. Beats at or below the offset have no source.
type IndexMap struct {
	source     map[int]int
	degenerate bool
}

// BuildIndexMap builds the echo map for a run that will end at
// finalLength beats. When the final length is too short to fit even one
// slice the map degenerates to echoing each beat's predecessor; that
// fallback is logged.
func BuildIndexMap(finalLength int, slice SliceSize, base IndexBase) IndexMap {
	offset := finalLength / 2
	if base == SliceBase && slice == Quartered {
		offset = finalLength / 4
	}
	if offset < 1 {
		slog.Warn("cap: degenerate index map, echoing each beat's predecessor",
			"final_length", finalLength, "slice", string(slice))
		source := make(map[int]int, finalLength)
		for i := 1; i <= finalLength; i++ {
			if i == 1 {
				source[i] = 1
				continue
			}
			source[i] = i - 1
		}
		return IndexMap{source: source, degenerate: true}
	}
	source := make(map[int]int, finalLength-offset)
	for i := offset + 1; i <= finalLength; i++ {
		source[i] = i - offset
	}
	return IndexMap{source: source}
}

// Source returns the beat number the given beat echoes.
func (m IndexMap) Source(beat int) (int, bool) {
	s, ok := m.source[beat]
	return s, ok
}

// Degenerate reports whether the fallback mapping was used.
func (m IndexMap) Degenerate() bool { return m.degenerate }

// Len returns the number of mapped beats.
func (m IndexMap) Len() int { return len(m.source) }
