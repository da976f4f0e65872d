package cap

import "math"

// OrientationService fills in prop orientations while beats are
// generated.
type OrientationService interface {
	// UpdateStartOrientations carries the previous beat's end
	// orientations into the beat's start orientations.
	UpdateStartOrientations(beat, previous Beat) Beat
	// UpdateEndOrientations computes the beat's end orientations from
	// its motions and start orientations.
	UpdateEndOrientations(beat Beat) Beat
}

// DefaultOrientations implements OrientationService with the standard
// turn rules: pro and static props keep their orientation across a whole
// turn while anti, dash and float props flip it, and a half turn moves
// the prop between radial and rotational facing.
type DefaultOrientations struct{}

func (DefaultOrientations) UpdateStartOrientations(beat, previous Beat) Beat {
	beat.Blue.StartOrientation = previous.Blue.EndOrientation
	beat.Red.StartOrientation = previous.Red.EndOrientation
	return beat
}

func (DefaultOrientations) UpdateEndOrientations(beat Beat) Beat {
	beat.Blue.EndOrientation = EndOrientation(beat.Blue)
	beat.Red.EndOrientation = EndOrientation(beat.Red)
	return beat
}

// EndOrientation computes where a motion leaves the prop facing. An
// unset start orientation is taken as in.
func EndOrientation(m Motion) Orientation {
	start := m.StartOrientation
	if start == "" {
		start = In
	}
	out := wholeTurnOrientation(m.MotionType, int(m.Turns), start)
	if m.Turns != math.Trunc(m.Turns) {
		out = halfTurnOrientation(m.MotionType, m.RotationDirection, out)
	}
	return out
}

func wholeTurnOrientation(mt MotionType, turns int, start Orientation) Orientation {
	flips := turns
	if mt == Anti || mt == Dash || mt == Float {
		flips++
	}
	if flips%2 != 0 {
		return OppositeOrientation(start)
	}
	return start
}

// halfTurnOrientation crosses between radial and rotational facing. The
// crossing runs with the prop spin for the pro family and against it for
// the anti family.
func halfTurnOrientation(mt MotionType, dir RotationDirection, ori Orientation) Orientation {
	if dir == NoRotation || !KnownOrientation(ori) {
		return ori
	}
	cw := dir == Clockwise
	if mt == Anti || mt == Dash || mt == Float {
		cw = !cw
	}
	switch ori {
	case In:
		if cw {
			return Clock
		}
		return Counter
	case Out:
		if cw {
			return Counter
		}
		return Clock
	case Clock:
		if cw {
			return Out
		}
		return In
	default:
		if cw {
			return In
		}
		return Out
	}
}
