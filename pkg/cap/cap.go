// Package cap implements circular arrangement patterns: transforms that
// extend a short seed sequence of beats into a longer sequence whose end
// flows back into its beginning. Each pattern type pairs a spatial rule
// (rotated, mirrored, swapped, complementary) with a slice size that says
// how much of the full circle the seed covers. Executors share one
// generation skeleton and differ only in how a new beat is derived from
// the beat it echoes.
package cap

import (
	"fmt"
	"sort"
)

// Type identifies a circular arrangement pattern.
type Type string

const (
	StrictRotated        Type = "strict_rotated"
	StrictMirrored       Type = "strict_mirrored"
	StrictSwapped        Type = "strict_swapped"
	StrictComplementary  Type = "strict_complementary"
	RotatedComplementary Type = "rotated_complementary"
	RotatedSwapped       Type = "rotated_swapped"
)

// Types lists every pattern type with a registered executor, sorted for
// stable display.
func Types() []Type {
	ts := make([]Type, 0, len(executorFactories))
	for t := range executorFactories {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts
}

// ParseType converts a user-supplied string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := executorFactories[t]; !ok {
		return "", fmt.Errorf("unknown pattern type %q", s)
	}
	return t, nil
}

// SliceSize is the fraction of the final circle the seed covers. A
// quartered seed is repeated under its rule three more times, a halved
// seed once.
type SliceSize string

const (
	Quartered SliceSize = "quartered"
	Halved    SliceSize = "halved"
)

// ParseSliceSize converts a user-supplied string into a SliceSize.
func ParseSliceSize(s string) (SliceSize, error) {
	switch SliceSize(s) {
	case Quartered:
		return Quartered, nil
	case Halved:
		return Halved, nil
	}
	return "", fmt.Errorf("unknown slice size %q", s)
}

// Repetitions is the number of times the seed body is appended to itself
// during generation.
func (s SliceSize) Repetitions() int {
	if s == Quartered {
		return 3
	}
	return 1
}

// EntriesToAdd is the number of beats generation appends for a seed body
// of bodyLen beats (the seed without its start-position beat).
func (s SliceSize) EntriesToAdd(bodyLen int) int {
	return bodyLen * s.Repetitions()
}
