package display

import "testing"

func TestPattern(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"strict_rotated", "Strict Rotated"},
		{"strict_mirrored", "Strict Mirrored"},
		{"strict_swapped", "Strict Swapped"},
		{"strict_complementary", "Strict Complementary"},
		{"rotated_complementary", "Rotated Complementary"},
		{"rotated_swapped", "Rotated Swapped"},
		{"spiral", "spiral"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Pattern(tc.code); got != tc.want {
			t.Errorf("Pattern(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestPatternWithCode(t *testing.T) {
	if got := PatternWithCode("rotated_swapped"); got != "Rotated Swapped (rotated_swapped)" {
		t.Errorf("got %q", got)
	}
	if got := PatternWithCode("spiral"); got != "spiral" {
		t.Errorf("got %q", got)
	}
}

func TestSlice(t *testing.T) {
	if got := Slice("quartered"); got != "Quartered" {
		t.Errorf("got %q", got)
	}
	if got := Slice("halved"); got != "Halved" {
		t.Errorf("got %q", got)
	}
	if got := Slice("thirds"); got != "thirds" {
		t.Errorf("got %q", got)
	}
}

func TestMotion(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"pro", "Prospin"},
		{"anti", "Antispin"},
		{"static", "Static"},
		{"dash", "Dash"},
		{"float", "Float"},
		{"spin", "spin"},
	}
	for _, tc := range cases {
		if got := Motion(tc.code); got != tc.want {
			t.Errorf("Motion(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestMotionWithCode(t *testing.T) {
	if got := MotionWithCode("anti"); got != "Antispin (anti)" {
		t.Errorf("got %q", got)
	}
}

func TestRotation(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"cw", "Clockwise"},
		{"ccw", "Counter-clockwise"},
		{"no_rot", "No Rotation"},
		{"widdershins", "widdershins"},
	}
	for _, tc := range cases {
		if got := Rotation(tc.code); got != tc.want {
			t.Errorf("Rotation(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestFamilyWithHint(t *testing.T) {
	if got := FamilyWithHint("alpha"); got != "Alpha (hands opposite)" {
		t.Errorf("got %q", got)
	}
	if got := FamilyWithHint("gamma"); got != "Gamma (hands a quarter apart)" {
		t.Errorf("got %q", got)
	}
	if got := FamilyWithHint("delta"); got != "delta" {
		t.Errorf("got %q", got)
	}
}

func TestPosition(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"alpha1", "Alpha 1"},
		{"beta5", "Beta 5"},
		{"gamma12", "Gamma 12"},
		{"gamma", "Gamma"},
		{"delta9", "delta9"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Position(tc.code); got != tc.want {
			t.Errorf("Position(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
