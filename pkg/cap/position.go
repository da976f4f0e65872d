package cap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Position names a composite placement of both hands on the grid.
type Position string

// PositionFamily groups positions by the relation between the hands.
type PositionFamily string

const (
	FamilyAlpha PositionFamily = "alpha" // hands diametrically opposed
	FamilyBeta  PositionFamily = "beta"  // hands on the same point
	FamilyGamma PositionFamily = "gamma" // hands a quarter apart
)

// LocationPair keys the position table by per-hand location.
type LocationPair struct {
	Blue Location
	Red  Location
}

// pairByPosition is the canonical position table. Alpha and beta
// positions advance clockwise with the red hand from red at north;
// gamma1 through gamma8 hold red a quarter clockwise of blue, gamma9
// through gamma16 a quarter counterclockwise.
var pairByPosition = map[Position]LocationPair{
	"alpha1": {Blue: South, Red: North},
	"alpha2": {Blue: Southwest, Red: Northeast},
	"alpha3": {Blue: West, Red: East},
	"alpha4": {Blue: Northwest, Red: Southeast},
	"alpha5": {Blue: North, Red: South},
	"alpha6": {Blue: Northeast, Red: Southwest},
	"alpha7": {Blue: East, Red: West},
	"alpha8": {Blue: Southeast, Red: Northwest},

	"beta1": {Blue: North, Red: North},
	"beta2": {Blue: Northeast, Red: Northeast},
	"beta3": {Blue: East, Red: East},
	"beta4": {Blue: Southeast, Red: Southeast},
	"beta5": {Blue: South, Red: South},
	"beta6": {Blue: Southwest, Red: Southwest},
	"beta7": {Blue: West, Red: West},
	"beta8": {Blue: Northwest, Red: Northwest},

	"gamma1": {Blue: West, Red: North},
	"gamma2": {Blue: Northwest, Red: Northeast},
	"gamma3": {Blue: North, Red: East},
	"gamma4": {Blue: Northeast, Red: Southeast},
	"gamma5": {Blue: East, Red: South},
	"gamma6": {Blue: Southeast, Red: Southwest},
	"gamma7": {Blue: South, Red: West},
	"gamma8": {Blue: Southwest, Red: Northwest},

	"gamma9":  {Blue: East, Red: North},
	"gamma10": {Blue: Southeast, Red: Northeast},
	"gamma11": {Blue: South, Red: East},
	"gamma12": {Blue: Southwest, Red: Southeast},
	"gamma13": {Blue: West, Red: South},
	"gamma14": {Blue: Northwest, Red: Southwest},
	"gamma15": {Blue: North, Red: West},
	"gamma16": {Blue: Northeast, Red: Northwest},
}

var positionByPair = func() map[LocationPair]Position {
	inv := make(map[LocationPair]Position, len(pairByPosition))
	for pos, pair := range pairByPosition {
		inv[pair] = pos
	}
	return inv
}()

// GridPosition derives the composite position for a pair of hand
// locations. ok is false when the pair does not land on a named position.
func GridPosition(blue, red Location) (Position, bool) {
	p, ok := positionByPair[LocationPair{Blue: blue, Red: red}]
	return p, ok
}

// KnownPosition reports whether p names a grid position.
func KnownPosition(p Position) bool {
	_, ok := pairByPosition[p]
	return ok
}

// Positions returns every named position sorted by family and index.
func Positions() []Position {
	ps := make([]Position, 0, len(pairByPosition))
	for p := range pairByPosition {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return positionLess(ps[i], ps[j]) })
	return ps
}

func positionLess(a, b Position) bool {
	fa, fb := a.Family(), b.Family()
	if fa != fb {
		return fa < fb
	}
	ia, ib := positionOrdinal(a), positionOrdinal(b)
	if ia != ib {
		return ia < ib
	}
	return a < b
}

func positionOrdinal(p Position) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(string(p), string(p.Family())))
	return n
}

// Family reports which relation family the position belongs to. Unknown
// positions report an empty family.
func (p Position) Family() PositionFamily {
	switch {
	case !KnownPosition(p):
		return ""
	case strings.HasPrefix(string(p), "alpha"):
		return FamilyAlpha
	case strings.HasPrefix(string(p), "beta"):
		return FamilyBeta
	default:
		return FamilyGamma
	}
}

// Hands returns the per-hand locations of a named position.
func (p Position) Hands() (blue, red Location, ok bool) {
	pair, ok := pairByPosition[p]
	return pair.Blue, pair.Red, ok
}

// PositionDeriver resolves composite positions from hand locations.
type PositionDeriver interface {
	GridPosition(blue, red Location) (Position, bool)
}

// DefaultPositions implements PositionDeriver over the built-in table.
type DefaultPositions struct{}

func (DefaultPositions) GridPosition(blue, red Location) (Position, bool) {
	return GridPosition(blue, red)
}

func transformPosition(p Position, f func(Location) Location) Position {
	pair, ok := pairByPosition[p]
	if !ok {
		return ""
	}
	out, ok := positionByPair[LocationPair{Blue: f(pair.Blue), Red: f(pair.Red)}]
	if !ok {
		return ""
	}
	return out
}

// RotatePosition rotates both hands of a position span steps along the
// compass ring. Every named position rotates onto another named position.
func RotatePosition(p Position, dir RotationDirection, span int) Position {
	return transformPosition(p, func(l Location) Location {
		return RotateLocation(l, dir, span)
	})
}

// MirrorPosition reflects both hands across the vertical axis.
func MirrorPosition(p Position) Position {
	return transformPosition(p, MirrorLocation)
}

// SwapPosition exchanges the hands of a position.
func SwapPosition(p Position) Position {
	pair, ok := pairByPosition[p]
	if !ok {
		return ""
	}
	out, ok := positionByPair[LocationPair{Blue: pair.Red, Red: pair.Blue}]
	if !ok {
		return ""
	}
	return out
}

// PositionPair is a seed's start and end position taken together.
type PositionPair struct {
	Start Position
	End   Position
}

// PairSet holds the position pairs a pattern accepts.
type PairSet map[PositionPair]struct{}

// Contains reports whether the start and end positions form an accepted
// pair.
func (s PairSet) Contains(start, end Position) bool {
	_, ok := s[PositionPair{Start: start, End: end}]
	return ok
}

// Len returns the number of accepted pairs.
func (s PairSet) Len() int { return len(s) }

func buildPairSet(transforms ...func(Position) Position) PairSet {
	s := make(PairSet, len(pairByPosition)*len(transforms))
	for p := range pairByPosition {
		for _, f := range transforms {
			s[PositionPair{Start: p, End: f(p)}] = struct{}{}
		}
	}
	return s
}

// Validity sets, one per spatial rule. Each is computed from the position
// table: a pair is accepted when the end position is the start position
// under the rule's transform.
var (
	quarteredPairs = buildPairSet(
		func(p Position) Position { return RotatePosition(p, Clockwise, 2) },
		func(p Position) Position { return RotatePosition(p, CounterClockwise, 2) },
	)
	halvedPairs        = buildPairSet(func(p Position) Position { return RotatePosition(p, Clockwise, 4) })
	mirroredPairs      = buildPairSet(MirrorPosition)
	swappedPairs       = buildPairSet(SwapPosition)
	complementaryPairs = buildPairSet(func(p Position) Position { return p })
)

// CompatiblePairs returns the validity set for a pattern type and slice
// size. Patterns whose rule is an involution take halved slices only.
func CompatiblePairs(t Type, slice SliceSize) (PairSet, error) {
	switch t {
	case StrictRotated, RotatedComplementary, RotatedSwapped:
		if slice == Quartered {
			return quarteredPairs, nil
		}
		return halvedPairs, nil
	case StrictMirrored:
		if slice == Quartered {
			return nil, fmt.Errorf("%w: %s takes %s slices only", ErrIncompatibleSeed, t, Halved)
		}
		return mirroredPairs, nil
	case StrictSwapped:
		if slice == Quartered {
			return nil, fmt.Errorf("%w: %s takes %s slices only", ErrIncompatibleSeed, t, Halved)
		}
		return swappedPairs, nil
	case StrictComplementary:
		if slice == Quartered {
			return nil, fmt.Errorf("%w: %s takes %s slices only", ErrIncompatibleSeed, t, Halved)
		}
		return complementaryPairs, nil
	}
	return nil, fmt.Errorf("unknown pattern type %q", t)
}

// EndPositionsFor lists the end positions that pair with start under the
// given pattern and slice size, sorted for stable selection.
func EndPositionsFor(t Type, slice SliceSize, start Position) ([]Position, error) {
	set, err := CompatiblePairs(t, slice)
	if err != nil {
		return nil, err
	}
	var ends []Position
	for pair := range set {
		if pair.Start == start {
			ends = append(ends, pair.End)
		}
	}
	sort.Slice(ends, func(i, j int) bool { return positionLess(ends[i], ends[j]) })
	return ends, nil
}
