package cap

import "fmt"

// Letter labels a beat with the pictograph glyph for its pair of motions.
// Dash-suffixed forms are the dash variants of their base glyph.
type Letter string

// alphabet lists every assignable letter in display order. A through V
// cover dual shifts, W through Ω cover shift plus static, their dash
// forms cover shift plus dash, Φ Ψ Λ cover dash hands, and α β Γ cover
// fully static beats.
var alphabet = []Letter{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
	"M", "N", "O", "P", "Q", "R", "S", "T", "U", "V",
	"W", "X", "Y", "Z", "Σ", "Δ", "θ", "Ω",
	"W-", "X-", "Y-", "Z-", "Σ-", "Δ-", "θ-", "Ω-",
	"Φ", "Ψ", "Λ", "Φ-", "Ψ-", "Λ-",
	"α", "β", "Γ",
}

// complementaryLetter pairs letters whose shift hands trade pro for anti.
// Hybrid and shift-free letters map to themselves.
var complementaryLetter = map[Letter]Letter{
	"A": "B", "B": "A", "C": "C",
	"D": "E", "E": "D", "F": "F",
	"G": "H", "H": "G", "I": "I",
	"J": "K", "K": "J", "L": "L",
	"M": "N", "N": "M", "O": "O",
	"P": "Q", "Q": "P", "R": "R",
	"S": "T", "T": "S", "U": "V", "V": "U",
	"W": "X", "X": "W", "Y": "Z", "Z": "Y",
	"Σ": "Δ", "Δ": "Σ", "θ": "Ω", "Ω": "θ",
	"W-": "X-", "X-": "W-", "Y-": "Z-", "Z-": "Y-",
	"Σ-": "Δ-", "Δ-": "Σ-", "θ-": "Ω-", "Ω-": "θ-",
	"Φ": "Φ", "Ψ": "Ψ", "Λ": "Λ",
	"Φ-": "Φ-", "Ψ-": "Ψ-", "Λ-": "Λ-",
	"α": "α", "β": "β", "Γ": "Γ",
}

// Letters returns the full alphabet in display order.
func Letters() []Letter {
	return append([]Letter(nil), alphabet...)
}

// KnownLetter reports whether l is part of the alphabet.
func KnownLetter(l Letter) bool {
	_, ok := complementaryLetter[l]
	return ok
}

// LetterService resolves pattern-level letter substitutions.
type LetterService interface {
	// ComplementaryLetter returns the letter for the complemented form
	// of a beat. Applying it twice returns the original letter.
	ComplementaryLetter(l Letter) (Letter, error)
}

// DefaultLetters implements LetterService over the built-in alphabet.
type DefaultLetters struct{}

func (DefaultLetters) ComplementaryLetter(l Letter) (Letter, error) {
	c, ok := complementaryLetter[l]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLetter, l)
	}
	return c, nil
}
