package cap

// newStrictSwapped builds the executor that echoes each beat with the
// hands' roles exchanged: every hand performs what the other hand did,
// verbatim. Only the color tag stays with the hand.
func newStrictSwapped(d Deps) Executor {
	return executor{capType: StrictSwapped, deps: d, synth: synthSwapped}
}

func synthSwapped(_ Deps, echoed, previous Beat) (Beat, error) {
	beat := Beat{Letter: echoed.Letter}
	for _, c := range []Color{Blue, Red} {
		src := echoed.Motion(c.Opposite())
		beat = beat.WithMotion(c, Motion{
			Color:             c,
			MotionType:        src.MotionType,
			RotationDirection: src.RotationDirection,
			StartLocation:     previous.Motion(c).EndLocation,
			EndLocation:       src.EndLocation,
			Turns:             src.Turns,
		})
	}
	return beat, nil
}
