package cap

// Location is one of the eight compass points of the grid.
type Location string

const (
	North     Location = "n"
	Northeast Location = "ne"
	East      Location = "e"
	Southeast Location = "se"
	South     Location = "s"
	Southwest Location = "sw"
	West      Location = "w"
	Northwest Location = "nw"
)

// compassRing orders the points clockwise starting at north. One step on
// the ring is 45 degrees.
var compassRing = [8]Location{
	North, Northeast, East, Southeast,
	South, Southwest, West, Northwest,
}

var compassIndex = map[Location]int{
	North: 0, Northeast: 1, East: 2, Southeast: 3,
	South: 4, Southwest: 5, West: 6, Northwest: 7,
}

// KnownLocation reports whether l names a grid point.
func KnownLocation(l Location) bool {
	_, ok := compassIndex[l]
	return ok
}

// Locations returns the grid points in clockwise order from north.
func Locations() []Location {
	return append([]Location(nil), compassRing[:]...)
}

// HandRotationDirection resolves which way a hand traveled between two
// grid points. Identical points resolve to NoRotation; a diametric move
// resolves to Clockwise.
func HandRotationDirection(start, end Location) RotationDirection {
	si, ok := compassIndex[start]
	if !ok {
		return NoRotation
	}
	ei, ok := compassIndex[end]
	if !ok {
		return NoRotation
	}
	switch delta := (ei - si + 8) % 8; {
	case delta == 0:
		return NoRotation
	case delta <= 4:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// RotationSpan is the number of 45-degree steps between two grid points,
// measured along the direction HandRotationDirection resolves for them.
// The result is between 0 and 4.
func RotationSpan(start, end Location) int {
	si, ok := compassIndex[start]
	if !ok {
		return 0
	}
	ei, ok := compassIndex[end]
	if !ok {
		return 0
	}
	delta := (ei - si + 8) % 8
	if delta > 4 {
		return 8 - delta
	}
	return delta
}

// RotateLocation moves a grid point span steps along the ring in the
// given direction.
func RotateLocation(l Location, dir RotationDirection, span int) Location {
	i, ok := compassIndex[l]
	if !ok {
		return l
	}
	switch dir {
	case Clockwise:
		return compassRing[(i+span)%8]
	case CounterClockwise:
		return compassRing[(i-span%8+8)%8]
	}
	return l
}

// QuarterTurnMap returns the location map for a quarter turn of the whole
// grid in the given direction. NoRotation yields the identity map. Four
// successive applications of either rotating map return every point to
// itself.
func QuarterTurnMap(dir RotationDirection) map[Location]Location {
	m := make(map[Location]Location, len(compassRing))
	for _, l := range compassRing {
		m[l] = RotateLocation(l, dir, 2)
	}
	return m
}

var mirroredLocation = map[Location]Location{
	North: North, South: South,
	East: West, West: East,
	Northeast: Northwest, Northwest: Northeast,
	Southeast: Southwest, Southwest: Southeast,
}

// MirrorLocation reflects a grid point across the vertical axis.
func MirrorLocation(l Location) Location {
	if m, ok := mirroredLocation[l]; ok {
		return m
	}
	return l
}
