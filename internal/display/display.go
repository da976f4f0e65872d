// Package display provides human-readable names for machine codes.
//
// Rule: codes are for machines, names are for humans.
// Use these functions in CLI output, markdown tables, logs, and docs.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

import (
	"strings"
	"unicode"
)

// --- Patterns ---

var patterns = map[string]string{
	"strict_rotated":        "Strict Rotated",
	"strict_mirrored":       "Strict Mirrored",
	"strict_swapped":        "Strict Swapped",
	"strict_complementary":  "Strict Complementary",
	"rotated_complementary": "Rotated Complementary",
	"rotated_swapped":       "Rotated Swapped",
}

// Pattern returns the human-readable name for a pattern code.
// Unknown codes are returned as-is.
func Pattern(code string) string {
	if name, ok := patterns[code]; ok {
		return name
	}
	return code
}

// PatternWithCode returns "Strict Rotated (strict_rotated)" format.
func PatternWithCode(code string) string {
	if name, ok := patterns[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Slice Sizes ---

var slices = map[string]string{
	"quartered": "Quartered",
	"halved":    "Halved",
}

// Slice returns the human-readable name for a slice-size code.
// "quartered" -> "Quartered".
func Slice(code string) string {
	if name, ok := slices[code]; ok {
		return name
	}
	return code
}

// --- Motions ---

var motions = map[string]string{
	"pro":    "Prospin",
	"anti":   "Antispin",
	"static": "Static",
	"dash":   "Dash",
	"float":  "Float",
}

// Motion returns the human-readable name for a motion code.
// "pro" -> "Prospin".
func Motion(code string) string {
	if name, ok := motions[code]; ok {
		return name
	}
	return code
}

// MotionWithCode returns "Prospin (pro)" format.
func MotionWithCode(code string) string {
	if name, ok := motions[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Rotations ---

var rotations = map[string]string{
	"cw":     "Clockwise",
	"ccw":    "Counter-clockwise",
	"no_rot": "No Rotation",
}

// Rotation returns the human-readable name for a rotation code.
// "ccw" -> "Counter-clockwise".
func Rotation(code string) string {
	if name, ok := rotations[code]; ok {
		return name
	}
	return code
}

// --- Position Families ---

var families = map[string]string{
	"alpha": "Alpha",
	"beta":  "Beta",
	"gamma": "Gamma",
}

// familyHints describe the hand relation behind each family name.
var familyHints = map[string]string{
	"alpha": "hands opposite",
	"beta":  "hands together",
	"gamma": "hands a quarter apart",
}

// Family returns the human-readable name for a family code.
// Unknown codes are returned as-is.
func Family(code string) string {
	if name, ok := families[code]; ok {
		return name
	}
	return code
}

// FamilyWithHint returns "Alpha (hands opposite)" format for docs and
// help text.
func FamilyWithHint(code string) string {
	name, ok := families[code]
	if !ok {
		return code
	}
	hint, ok := familyHints[code]
	if !ok {
		return name
	}
	return name + " (" + hint + ")"
}

// Position humanizes a grid position code.
// "gamma12" -> "Gamma 12"
func Position(code string) string {
	i := strings.IndexFunc(code, unicode.IsDigit)
	if i < 0 {
		return Family(code)
	}
	name, ok := families[code[:i]]
	if !ok {
		return code
	}
	return name + " " + code[i:]
}
