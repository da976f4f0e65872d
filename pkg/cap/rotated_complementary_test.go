package cap

import (
	"errors"
	"testing"
)

func TestRotatedComplementaryQuartered(t *testing.T) {
	ex := mustExecutor(t, RotatedComplementary)
	out, err := ex.Execute(quarterSeed(), Quartered)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Beats) != 5 {
		t.Fatalf("got %d beats, want 5", len(out.Beats))
	}
	if out.Word != "UVUV" {
		t.Errorf("word = %q, want UVUV", out.Word)
	}
	wantBlue := []MotionType{Pro, Anti, Pro, Anti}
	for i, want := range wantBlue {
		b := out.Beats[i+1]
		if b.Blue.MotionType != want {
			t.Errorf("beat %d blue motion = %s, want %s", i+1, b.Blue.MotionType, want)
		}
		if b.Blue.MotionType == Pro && b.Blue.RotationDirection != Clockwise {
			t.Errorf("beat %d blue spin = %s, want cw", i+1, b.Blue.RotationDirection)
		}
		if b.Blue.MotionType == Anti && b.Blue.RotationDirection != CounterClockwise {
			t.Errorf("beat %d blue spin = %s, want ccw", i+1, b.Blue.RotationDirection)
		}
	}
	wantEnds := []Position{"gamma15", "gamma9", "gamma11", "gamma13", "gamma15"}
	for i, want := range wantEnds {
		if got := out.Beats[i].EndPosition; got != want {
			t.Errorf("beat %d ends at %s, want %s", i, got, want)
		}
	}
	if out.Beats[4].EndPosition != out.Beats[0].StartPosition {
		t.Error("sequence does not close back on its start position")
	}
	checkContinuity(t, out)
}

func TestRotatedComplementaryTurnsSurvive(t *testing.T) {
	ex := mustExecutor(t, RotatedComplementary)
	out, err := ex.Execute(quarterSeed(), Quartered)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for i := 1; i < len(out.Beats); i++ {
		b := out.Beats[i]
		if b.Blue.Turns != 1 || b.Red.Turns != 0 {
			t.Errorf("beat %d turns = %v/%v, want 1/0", i, b.Blue.Turns, b.Red.Turns)
		}
	}
}

func TestRotatedComplementaryNeedsLetters(t *testing.T) {
	seed := quarterSeed()
	seed.Beats[1].Letter = ""
	ex := mustExecutor(t, RotatedComplementary)
	if _, err := ex.Execute(seed, Quartered); !errors.Is(err, ErrDerivation) {
		t.Errorf("Execute without letters: %v, want ErrDerivation", err)
	}
}

func TestRotatedComplementaryUnknownLetter(t *testing.T) {
	seed := quarterSeed()
	seed.Beats[1].Letter = "⊕"
	ex := mustExecutor(t, RotatedComplementary)
	if _, err := ex.Execute(seed, Quartered); !errors.Is(err, ErrDerivation) {
		t.Errorf("Execute with unmapped letter: %v, want ErrDerivation", err)
	}
}
