package cap

import "testing"

func TestStrictRotatedQuarteredClosesCircle(t *testing.T) {
	ex := mustExecutor(t, StrictRotated)
	out, err := ex.Execute(quarterSeed(), Quartered)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Beats) != 5 {
		t.Fatalf("got %d beats, want 5 (start beat plus four)", len(out.Beats))
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
	if out.Word != "UUUU" {
		t.Errorf("word = %q, want UUUU", out.Word)
	}
	checkContinuity(t, out)
	for i := 1; i < len(out.Beats); i++ {
		b := out.Beats[i]
		if b.Blue.MotionType != Pro || b.Blue.RotationDirection != Clockwise || b.Blue.Turns != 1 {
			t.Errorf("beat %d blue = %s %s %v turns, want pro cw 1", i, b.Blue.MotionType, b.Blue.RotationDirection, b.Blue.Turns)
		}
		if b.Red.MotionType != Anti || b.Red.RotationDirection != CounterClockwise || b.Red.Turns != 0 {
			t.Errorf("beat %d red = %s %s %v turns, want anti ccw 0", i, b.Red.MotionType, b.Red.RotationDirection, b.Red.Turns)
		}
	}
	if out.Beats[4].Blue.EndOrientation != In {
		t.Errorf("beat 4 blue ends facing %s, want in", out.Beats[4].Blue.EndOrientation)
	}
	if out.Beats[4].Red.EndOrientation != In {
		t.Errorf("beat 4 red ends facing %s, want in", out.Beats[4].Red.EndOrientation)
	}
}

func TestStrictRotatedHalvedClosesCircle(t *testing.T) {
	seed := testSeed(
		testStartBeat(North, North),
		Beat{
			ID:     "b1",
			Letter: "G",
			Blue:   motion(Blue, Pro, Clockwise, North, South, 1),
			Red:    motion(Red, Pro, Clockwise, North, South, 1),
		},
	)
	ex := mustExecutor(t, StrictRotated)
	out, err := ex.Execute(seed, Halved)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Beats) != 3 {
		t.Fatalf("got %d beats, want 3", len(out.Beats))
	}
	if out.Beats[2].EndPosition != "beta1" {
		t.Errorf("final beat ends at %s, want beta1", out.Beats[2].EndPosition)
	}
	if out.Word != "GG" {
		t.Errorf("word = %q, want GG", out.Word)
	}
	checkContinuity(t, out)
}

func TestStrictRotatedGeneratedIDsAndNumbers(t *testing.T) {
	ex := mustExecutor(t, StrictRotated)
	out, err := ex.Execute(quarterSeed(), Quartered)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for i, b := range out.Beats {
		if b.Number != i {
			t.Errorf("beat %d numbered %d", i, b.Number)
		}
	}
	for _, b := range out.Beats[2:] {
		want := "b" + string(rune('0'+b.Number))
		if b.ID != want {
			t.Errorf("beat %d id = %q, want %q", b.Number, b.ID, want)
		}
	}
}
