package generate

import (
	"fmt"

	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// dualShiftTriads maps a family transition to its pro, anti and hybrid
// letters when both hands shift. Gamma-to-gamma hybrids split into U and
// V by which hand leads and are handled separately.
var dualShiftTriads = map[[2]cap.PositionFamily][3]cap.Letter{
	{cap.FamilyAlpha, cap.FamilyAlpha}: {"A", "B", "C"},
	{cap.FamilyBeta, cap.FamilyAlpha}:  {"D", "E", "F"},
	{cap.FamilyBeta, cap.FamilyBeta}:   {"G", "H", "I"},
	{cap.FamilyAlpha, cap.FamilyBeta}:  {"J", "K", "L"},
	{cap.FamilyAlpha, cap.FamilyGamma}: {"M", "N", "O"},
	{cap.FamilyGamma, cap.FamilyAlpha}: {"M", "N", "O"},
	{cap.FamilyBeta, cap.FamilyGamma}:  {"P", "Q", "R"},
	{cap.FamilyGamma, cap.FamilyBeta}:  {"P", "Q", "R"},
	{cap.FamilyGamma, cap.FamilyGamma}: {"S", "T", "U"},
}

// LetterFor classifies a beat's pair of motions into its pictograph
// letter. The beat's position fields must name grid positions.
func LetterFor(b cap.Beat) (cap.Letter, error) {
	startFam := b.StartPosition.Family()
	endFam := b.EndPosition.Family()
	if startFam == "" || endFam == "" {
		return "", fmt.Errorf("beat %d: positions %q to %q have no family", b.Number, b.StartPosition, b.EndPosition)
	}
	blue, red := b.Blue, b.Red
	switch {
	case blue.MotionType.IsShift() && red.MotionType.IsShift():
		return dualShiftLetter(startFam, endFam, blue, red), nil
	case blue.MotionType.IsShift() || red.MotionType.IsShift():
		return halfShiftLetter(startFam, endFam, blue, red), nil
	case blue.MotionType == cap.Dash && red.MotionType == cap.Dash:
		return familyGlyph(endFam, "Φ-", "Ψ-", "Λ-"), nil
	case blue.MotionType == cap.Dash || red.MotionType == cap.Dash:
		return familyGlyph(endFam, "Φ", "Ψ", "Λ"), nil
	default:
		return familyGlyph(endFam, "α", "β", "Γ"), nil
	}
}

func dualShiftLetter(startFam, endFam cap.PositionFamily, blue, red cap.Motion) cap.Letter {
	gamma := startFam == cap.FamilyGamma && endFam == cap.FamilyGamma
	switch {
	case blue.MotionType == cap.Pro && red.MotionType == cap.Pro:
		return dualShiftTriads[[2]cap.PositionFamily{startFam, endFam}][0]
	case blue.MotionType == cap.Anti && red.MotionType == cap.Anti:
		return dualShiftTriads[[2]cap.PositionFamily{startFam, endFam}][1]
	case gamma && blue.MotionType == cap.Pro && red.MotionType == cap.Anti:
		return "U"
	case gamma && blue.MotionType == cap.Anti && red.MotionType == cap.Pro:
		return "V"
	default:
		return dualShiftTriads[[2]cap.PositionFamily{startFam, endFam}][2]
	}
}

// halfShiftLetter covers one shifting hand against a static or dash
// hand. The letter group follows which hand shifts and whether the beat
// touches gamma; a dash partner selects the dash form.
func halfShiftLetter(startFam, endFam cap.PositionFamily, blue, red cap.Motion) cap.Letter {
	shift, other := blue, red
	if red.MotionType.IsShift() {
		shift, other = red, blue
	}
	gamma := startFam == cap.FamilyGamma || endFam == cap.FamilyGamma
	var base cap.Letter
	switch {
	case shift.Color == cap.Blue && !gamma:
		base = pickShift(shift.MotionType, "W", "X")
	case shift.Color == cap.Red && !gamma:
		base = pickShift(shift.MotionType, "Y", "Z")
	case shift.Color == cap.Blue:
		base = pickShift(shift.MotionType, "Σ", "Δ")
	default:
		base = pickShift(shift.MotionType, "θ", "Ω")
	}
	if other.MotionType == cap.Dash {
		return base + "-"
	}
	return base
}

// pickShift selects the pro or anti slot. Floats take the pro slot.
func pickShift(mt cap.MotionType, pro, anti cap.Letter) cap.Letter {
	if mt == cap.Anti {
		return anti
	}
	return pro
}

func familyGlyph(fam cap.PositionFamily, alpha, beta, gamma cap.Letter) cap.Letter {
	switch fam {
	case cap.FamilyAlpha:
		return alpha
	case cap.FamilyBeta:
		return beta
	default:
		return gamma
	}
}
