package main

import (
	"fmt"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/format"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// parseSpecFlags turns the flag values of the generate-style commands
// into a checked generation spec.
func parseSpecFlags(capType, slice, start string, length int, randSeed int64) (generate.Spec, error) {
	t, err := cap.ParseType(capType)
	if err != nil {
		return generate.Spec{}, err
	}
	size, err := cap.ParseSliceSize(slice)
	if err != nil {
		return generate.Spec{}, err
	}
	pos := cap.Position(start)
	if !cap.KnownPosition(pos) {
		return generate.Spec{}, fmt.Errorf("unknown start position %q", start)
	}
	return generate.Spec{CAPType: t, Slice: size, Start: pos, Length: length, RandSeed: randSeed}, nil
}

func openStore(path string) (catalog.Store, error) {
	st, err := catalog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return st, nil
}

func tableMode(markdown bool) format.Mode {
	if markdown {
		return format.Markdown
	}
	return format.ASCII
}
