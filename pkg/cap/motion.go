package cap

// Color tags the two hands of a performer. Every beat carries exactly one
// motion per color.
type Color string

const (
	Blue Color = "blue"
	Red  Color = "red"
)

// Opposite returns the other hand.
func (c Color) Opposite() Color {
	if c == Blue {
		return Red
	}
	return Blue
}

// MotionType classifies what a hand does during a beat.
type MotionType string

const (
	Pro    MotionType = "pro"
	Anti   MotionType = "anti"
	Static MotionType = "static"
	Dash   MotionType = "dash"
	Float  MotionType = "float"
)

// IsShift reports whether the motion moves the hand along the grid while
// the prop spins (pro, anti and float do; static and dash do not spin).
func (m MotionType) IsShift() bool {
	return m == Pro || m == Anti || m == Float
}

// KnownMotionType reports whether m is a recognized motion type.
func KnownMotionType(m MotionType) bool {
	_, ok := oppositeMotionType[m]
	return ok
}

var oppositeMotionType = map[MotionType]MotionType{
	Pro:    Anti,
	Anti:   Pro,
	Static: Static,
	Dash:   Dash,
	Float:  Float,
}

// OppositeMotionType swaps pro and anti and leaves every other motion
// type unchanged.
func OppositeMotionType(m MotionType) MotionType {
	if o, ok := oppositeMotionType[m]; ok {
		return o
	}
	return m
}

// RotationDirection is the spin direction of the prop within a beat.
type RotationDirection string

const (
	Clockwise        RotationDirection = "cw"
	CounterClockwise RotationDirection = "ccw"
	NoRotation       RotationDirection = "no_rot"
)

// KnownRotationDirection reports whether r is a recognized spin
// direction.
func KnownRotationDirection(r RotationDirection) bool {
	_, ok := oppositeRotation[r]
	return ok
}

var oppositeRotation = map[RotationDirection]RotationDirection{
	Clockwise:        CounterClockwise,
	CounterClockwise: Clockwise,
	NoRotation:       NoRotation,
}

// OppositeRotation reverses a spin direction. NoRotation is its own
// opposite.
func OppositeRotation(r RotationDirection) RotationDirection {
	if o, ok := oppositeRotation[r]; ok {
		return o
	}
	return r
}

// Orientation is the prop's facing relative to the grid center at a beat
// boundary. In and out are radial, clock and counter are rotational.
type Orientation string

const (
	In      Orientation = "in"
	Out     Orientation = "out"
	Clock   Orientation = "clock"
	Counter Orientation = "counter"
)

// KnownOrientation reports whether o is a recognized orientation.
func KnownOrientation(o Orientation) bool {
	_, ok := oppositeOrientation[o]
	return ok
}

var oppositeOrientation = map[Orientation]Orientation{
	In:      Out,
	Out:     In,
	Clock:   Counter,
	Counter: Clock,
}

// OppositeOrientation flips an orientation across the grid center.
func OppositeOrientation(o Orientation) Orientation {
	if f, ok := oppositeOrientation[o]; ok {
		return f
	}
	return o
}

// Radial reports whether the orientation points along a grid radius.
func (o Orientation) Radial() bool {
	return o == In || o == Out
}
