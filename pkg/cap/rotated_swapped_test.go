package cap

import "testing"

func TestRotatedSwappedQuartered(t *testing.T) {
	seed := testSeed(
		testStartBeat(North, West),
		Beat{
			ID:     "b1",
			Letter: "U",
			Blue:   motion(Blue, Pro, Clockwise, North, East, 1),
			Red:    motion(Red, Anti, CounterClockwise, West, North, 2),
		},
	)
	ex := mustExecutor(t, RotatedSwapped)
	out, err := ex.Execute(seed, Quartered)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Beats) != 5 {
		t.Fatalf("got %d beats, want 5", len(out.Beats))
	}
	// Attributes cross hands on every echo, so the blue hand alternates
	// between its own seed motion and the red hand's.
	wantBlueTurns := []float64{1, 2, 1, 2}
	wantBlueTypes := []MotionType{Pro, Anti, Pro, Anti}
	for i := 1; i < len(out.Beats); i++ {
		b := out.Beats[i]
		if b.Blue.Turns != wantBlueTurns[i-1] || b.Blue.MotionType != wantBlueTypes[i-1] {
			t.Errorf("beat %d blue = %s %v turns, want %s %v",
				i, b.Blue.MotionType, b.Blue.Turns, wantBlueTypes[i-1], wantBlueTurns[i-1])
		}
		if b.Blue.Color != Blue || b.Red.Color != Red {
			t.Errorf("beat %d color tags = %s/%s", i, b.Blue.Color, b.Red.Color)
		}
		if b.Letter != "U" {
			t.Errorf("beat %d letter = %s, want U", i, b.Letter)
		}
	}
	wantEnds := []Position{"gamma15", "gamma9", "gamma11", "gamma13", "gamma15"}
	for i, want := range wantEnds {
		if got := out.Beats[i].EndPosition; got != want {
			t.Errorf("beat %d ends at %s, want %s", i, got, want)
		}
	}
	checkContinuity(t, out)
}

func TestRotatedSwappedKeepsAttributesUnflipped(t *testing.T) {
	seed := testSeed(
		testStartBeat(North, West),
		Beat{
			ID:     "b1",
			Letter: "U",
			Blue:   motion(Blue, Pro, Clockwise, North, East, 1),
			Red:    motion(Red, Anti, CounterClockwise, West, North, 2),
		},
	)
	ex := mustExecutor(t, RotatedSwapped)
	out, err := ex.Execute(seed, Quartered)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// The crossed anti motion keeps its ccw spin, unlike the
	// complementary patterns which would reverse it.
	b2 := out.Beats[2]
	if b2.Blue.MotionType != Anti || b2.Blue.RotationDirection != CounterClockwise {
		t.Errorf("beat 2 blue = %s %s, want anti ccw taken from red",
			b2.Blue.MotionType, b2.Blue.RotationDirection)
	}
	if b2.Red.MotionType != Pro || b2.Red.RotationDirection != Clockwise {
		t.Errorf("beat 2 red = %s %s, want pro cw taken from blue",
			b2.Red.MotionType, b2.Red.RotationDirection)
	}
}
