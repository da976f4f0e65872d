package cap

import "fmt"

// newStrictComplementary builds the executor that echoes each beat with
// pro traded for anti and the spins reversed. Hands retrace the echoed
// locations; the letter changes to its complementary form.
func newStrictComplementary(d Deps) Executor {
	return executor{capType: StrictComplementary, deps: d, synth: synthComplementary}
}

func synthComplementary(d Deps, echoed, previous Beat) (Beat, error) {
	letter, err := complementFor(d, echoed)
	if err != nil {
		return Beat{}, err
	}
	beat := Beat{Letter: letter}
	for _, c := range []Color{Blue, Red} {
		src := echoed.Motion(c)
		beat = beat.WithMotion(c, Motion{
			Color:             c,
			MotionType:        OppositeMotionType(src.MotionType),
			RotationDirection: OppositeRotation(src.RotationDirection),
			StartLocation:     previous.Motion(c).EndLocation,
			EndLocation:       src.EndLocation,
			Turns:             src.Turns,
		})
	}
	return beat, nil
}

// complementFor resolves the complementary letter of an echoed beat.
// A beat without a letter cannot be complemented.
func complementFor(d Deps, echoed Beat) (Letter, error) {
	if echoed.Letter == "" {
		return "", fmt.Errorf("beat %d has no letter to complement", echoed.Number)
	}
	return d.Letters.ComplementaryLetter(echoed.Letter)
}
