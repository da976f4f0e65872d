package cap

// newStrictMirrored builds the executor that echoes each beat reflected
// across the vertical axis. Hands land on the mirrored end locations and
// the props spin the other way.
func newStrictMirrored(d Deps) Executor {
	return executor{capType: StrictMirrored, deps: d, synth: synthMirrored}
}

func synthMirrored(_ Deps, echoed, previous Beat) (Beat, error) {
	beat := Beat{Letter: echoed.Letter}
	for _, c := range []Color{Blue, Red} {
		src := echoed.Motion(c)
		beat = beat.WithMotion(c, Motion{
			Color:             c,
			MotionType:        src.MotionType,
			RotationDirection: OppositeRotation(src.RotationDirection),
			StartLocation:     previous.Motion(c).EndLocation,
			EndLocation:       MirrorLocation(src.EndLocation),
			Turns:             src.Turns,
		})
	}
	return beat, nil
}
