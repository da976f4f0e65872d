package format

import (
	"fmt"
	"strings"

	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// SequenceTable renders a sequence beat by beat, one row per beat with
// the word in the footer.
func SequenceTable(seq cap.Sequence, m Mode) string {
	tb := NewTable(m)
	tb.Header("Beat", "Letter", "Positions", "Blue", "Red")
	for _, b := range seq.Beats {
		label := fmt.Sprintf("%d", b.Number)
		if b.Number == 0 {
			label = "start"
		}
		tb.Row(label, string(b.Letter),
			fmt.Sprintf("%s → %s", b.StartPosition, b.EndPosition),
			MotionSummary(b.Blue), MotionSummary(b.Red))
	}
	tb.Footer("word", seq.Word)
	tb.Columns(
		ColumnConfig{Number: 1, Align: AlignRight},
		ColumnConfig{Number: 2, Align: AlignCenter},
	)
	return tb.String()
}

// MotionSummary describes one motion in a single cell: type, spin,
// travel and turns, skipping whatever is at its zero value.
func MotionSummary(m cap.Motion) string {
	parts := []string{string(m.MotionType)}
	if m.RotationDirection != cap.NoRotation && m.RotationDirection != "" {
		parts = append(parts, string(m.RotationDirection))
	}
	if m.StartLocation == m.EndLocation {
		parts = append(parts, string(m.StartLocation))
	} else {
		parts = append(parts, fmt.Sprintf("%s→%s", m.StartLocation, m.EndLocation))
	}
	if m.Turns != 0 {
		parts = append(parts, "×"+FmtTurns(m.Turns))
	}
	return strings.Join(parts, " ")
}
