package cap

import (
	"errors"
	"testing"
)

func TestStrictSwappedHalvedCrossesHands(t *testing.T) {
	seed := testSeed(
		testStartBeat(North, West),
		Beat{
			ID:     "b1",
			Letter: "S",
			Blue:   motion(Blue, Pro, CounterClockwise, North, West, 1),
			Red:    motion(Red, Pro, Clockwise, West, North, 0.5),
		},
	)
	ex := mustExecutor(t, StrictSwapped)
	out, err := ex.Execute(seed, Halved)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Beats) != 3 {
		t.Fatalf("got %d beats, want 3", len(out.Beats))
	}
	echo := out.Beats[2]
	if echo.Blue.Color != Blue || echo.Red.Color != Red {
		t.Errorf("color tags crossed: blue tagged %s, red tagged %s", echo.Blue.Color, echo.Red.Color)
	}
	if echo.Blue.Turns != 0.5 || echo.Blue.RotationDirection != Clockwise {
		t.Errorf("blue hand = %s %v turns, want the red hand's cw 0.5", echo.Blue.RotationDirection, echo.Blue.Turns)
	}
	if echo.Red.Turns != 1 || echo.Red.RotationDirection != CounterClockwise {
		t.Errorf("red hand = %s %v turns, want the blue hand's ccw 1", echo.Red.RotationDirection, echo.Red.Turns)
	}
	if echo.Blue.EndLocation != North || echo.Red.EndLocation != West {
		t.Errorf("hands end at %s/%s, want n/w", echo.Blue.EndLocation, echo.Red.EndLocation)
	}
	if echo.EndPosition != "gamma15" {
		t.Errorf("echoed beat ends at %s, want gamma15", echo.EndPosition)
	}
	checkContinuity(t, out)
}

func TestStrictSwappedRejectsQuartered(t *testing.T) {
	ex := mustExecutor(t, StrictSwapped)
	if _, err := ex.Execute(quarterSeed(), Quartered); !errors.Is(err, ErrIncompatibleSeed) {
		t.Errorf("Execute quartered: %v, want ErrIncompatibleSeed", err)
	}
}

func TestStrictSwappedRejectsUnswappedSeed(t *testing.T) {
	// beta1 to beta5 is a rotation; swapping beta1 yields beta1.
	seed := testSeed(
		testStartBeat(North, North),
		Beat{
			ID:     "b1",
			Letter: "G",
			Blue:   motion(Blue, Pro, Clockwise, North, South, 1),
			Red:    motion(Red, Pro, Clockwise, North, South, 1),
		},
	)
	ex := mustExecutor(t, StrictSwapped)
	if _, err := ex.Execute(seed, Halved); !errors.Is(err, ErrIncompatibleSeed) {
		t.Errorf("Execute rotational seed: %v, want ErrIncompatibleSeed", err)
	}
}
