package cap

// newRotatedSwapped builds the executor that echoes each beat rotated
// further around the grid with the hands' roles exchanged. Each hand
// re-plays the travel of the other hand's echoed motion and takes its
// attributes unflipped; only the color tag stays with the hand.
func newRotatedSwapped(d Deps) Executor {
	return executor{capType: RotatedSwapped, deps: d, synth: synthRotatedSwapped}
}

func synthRotatedSwapped(_ Deps, echoed, previous Beat) (Beat, error) {
	beat := Beat{Letter: echoed.Letter}
	for _, c := range []Color{Blue, Red} {
		src := echoed.Motion(c.Opposite())
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
