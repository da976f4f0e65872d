package cap

import (
	"errors"
	"testing"
)

func TestStrictMirroredHalvedClosesCircle(t *testing.T) {
	seed := testSeed(
		testStartBeat(North, West),
		Beat{
			ID:     "b1",
			Letter: "Ψ",
			Blue:   motion(Blue, Static, Clockwise, North, North, 1),
			Red:    motion(Red, Dash, NoRotation, West, East, 0),
		},
	)
	ex := mustExecutor(t, StrictMirrored)
	out, err := ex.Execute(seed, Halved)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Beats) != 3 {
		t.Fatalf("got %d beats, want 3", len(out.Beats))
	}
	echo := out.Beats[2]
	if echo.EndPosition != "gamma15" {
		t.Errorf("echoed beat ends at %s, want gamma15", echo.EndPosition)
	}
	if echo.Blue.RotationDirection != CounterClockwise {
		t.Errorf("echoed blue spin = %s, want ccw", echo.Blue.RotationDirection)
	}
	if echo.Red.RotationDirection != NoRotation {
		t.Errorf("echoed red spin = %s, want no_rot", echo.Red.RotationDirection)
	}
	if echo.Red.EndLocation != West {
		t.Errorf("echoed red hand ends at %s, want w", echo.Red.EndLocation)
	}
	if echo.Blue.MotionType != Static || echo.Red.MotionType != Dash {
		t.Errorf("echoed motion types = %s/%s, want static/dash", echo.Blue.MotionType, echo.Red.MotionType)
	}
	if out.Word != "ΨΨ" {
		t.Errorf("word = %q, want ΨΨ", out.Word)
	}
	checkContinuity(t, out)
}

func TestStrictMirroredRejectsQuartered(t *testing.T) {
	ex := mustExecutor(t, StrictMirrored)
	if _, err := ex.Execute(quarterSeed(), Quartered); !errors.Is(err, ErrIncompatibleSeed) {
		t.Errorf("Execute quartered: %v, want ErrIncompatibleSeed", err)
	}
}

func TestStrictMirroredRejectsUnmirroredSeed(t *testing.T) {
	// gamma15 to gamma9 is a rotation, not a reflection.
	ex := mustExecutor(t, StrictMirrored)
	if _, err := ex.Execute(quarterSeed(), Halved); !errors.Is(err, ErrIncompatibleSeed) {
		t.Errorf("Execute rotational seed: %v, want ErrIncompatibleSeed", err)
	}
}
