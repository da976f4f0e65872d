package cap

// newRotatedComplementary builds the executor that echoes each beat
// rotated further around the grid and complemented at once: hands
// re-play the echoed travel from where they stand, pro trades for anti,
// spins reverse, and the letter changes to its complementary form.
func newRotatedComplementary(d Deps) Executor {
	return executor{capType: RotatedComplementary, deps: d, synth: synthRotatedComplementary}
}

func synthRotatedComplementary(d Deps, echoed, previous Beat) (Beat, error) {
	letter, err := complementFor(d, echoed)
	if err != nil {
		return Beat{}, err
	}
	beat := Beat{Letter: letter}
	for _, c := range []Color{Blue, Red} {
		src := echoed.Motion(c)
		start, end := replayTravel(src, previous.Motion(c).EndLocation)
		beat = beat.WithMotion(c, Motion{
			Color:             c,
			MotionType:        OppositeMotionType(src.MotionType),
			RotationDirection: OppositeRotation(src.RotationDirection),
			StartLocation:     start,
			EndLocation:       end,
			Turns:             src.Turns,
		})
	}
	return beat, nil
}
