package cap

// newStrictRotated builds the executor that echoes each beat rotated a
// step further around the grid: every hand re-plays the travel of the
// echoed motion from wherever it now stands.
func newStrictRotated(d Deps) Executor {
	return executor{capType: StrictRotated, deps: d, synth: synthRotated}
}

func synthRotated(_ Deps, echoed, previous Beat) (Beat, error) {
	beat := Beat{Letter: echoed.Letter}
	for _, c := range []Color{Blue, Red} {
		src := echoed.Motion(c)
		start, end := replayTravel(src, previous.Motion(c).EndLocation)
		beat = beat.WithMotion(c, Motion{
			Color:             c,
			MotionType:        src.MotionType,
			RotationDirection: src.RotationDirection,
			StartLocation:     start,
			EndLocation:       end,
			Turns:             src.Turns,
		})
	}
	return beat, nil
}

// replayTravel repeats the arc of an echoed motion from a new starting
// point: same direction around the ring, same number of steps.
func replayTravel(echoed Motion, from Location) (start, end Location) {
	dir := HandRotationDirection(echoed.StartLocation, echoed.EndLocation)
	span := RotationSpan(echoed.StartLocation, echoed.EndLocation)
	return from, RotateLocation(from, dir, span)
}
