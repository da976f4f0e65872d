package cap

import "errors"

// Sentinel errors returned by pattern execution. Callers branch with
// errors.Is; wrapped messages carry the offending detail.
var (
	ErrSeedTooShort      = errors.New("cap: seed too short")
	ErrMissingPosition   = errors.New("cap: seed missing a position")
	ErrIncompatibleSeed  = errors.New("cap: seed incompatible with pattern")
	ErrDerivation        = errors.New("cap: beat derivation failed")
	ErrUnknownLetter     = errors.New("cap: letter not in alphabet")
	ErrMalformedSequence = errors.New("cap: malformed sequence")
)
