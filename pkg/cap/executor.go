package cap

import "fmt"

// Executor extends a seed sequence into a full circular sequence.
type Executor interface {
	// Type returns the pattern the executor implements.
	Type() Type
	// Execute returns a new sequence whose body is the seed body
	// followed by the generated beats. The seed is never modified; on
	// error the returned sequence is empty.
	Execute(seed Sequence, slice SliceSize) (Sequence, error)
}

// Deps collects the services executors derive beats with. Zero fields
// fall back to the built-in implementations.
type Deps struct {
	Orientations OrientationService
	Positions    PositionDeriver
	Letters      LetterService
}

// DefaultDeps returns Deps wired to the built-in services.
func DefaultDeps() Deps {
	return Deps{
		Orientations: DefaultOrientations{},
		Positions:    DefaultPositions{},
		Letters:      DefaultLetters{},
	}
}

func (d Deps) normalized() Deps {
	if d.Orientations == nil {
		d.Orientations = DefaultOrientations{}
	}
	if d.Positions == nil {
		d.Positions = DefaultPositions{}
	}
	if d.Letters == nil {
		d.Letters = DefaultLetters{}
	}
	return d
}

var executorFactories = map[Type]func(Deps) Executor{
	StrictRotated:        newStrictRotated,
	StrictMirrored:       newStrictMirrored,
	StrictSwapped:        newStrictSwapped,
	StrictComplementary:  newStrictComplementary,
	RotatedComplementary: newRotatedComplementary,
	RotatedSwapped:       newRotatedSwapped,
}

// New returns the executor for a pattern type. Zero fields of deps are
// replaced by the built-in services.
func New(t Type, deps Deps) (Executor, error) {
	f, ok := executorFactories[t]
	if !ok {
		return nil, fmt.Errorf("unknown pattern type %q", t)
	}
	return f(deps.normalized()), nil
}

// synthesizer derives the letter and motions of one new beat from the
// beat it echoes and the beat directly before it. Numbering, positions
// and orientations are filled in by the shared loop afterwards.
type synthesizer func(deps Deps, echoed, previous Beat) (Beat, error)

// executor runs the generation skeleton shared by every pattern type:
// check the seed against the pattern's validity set, detach the
// start-position beat, then repeatedly synthesize the beat echoing an
// earlier one until the body has grown by the slice's repetitions.
type executor struct {
	capType Type
	deps    Deps
	base    IndexBase
	synth   synthesizer
}

func (e executor) Type() Type { return e.capType }

func (e executor) Execute(seed Sequence, slice SliceSize) (Sequence, error) {
	if slice != Quartered && slice != Halved {
		return Sequence{}, fmt.Errorf("unknown slice size %q", slice)
	}
	if len(seed.Beats) < 2 {
		return Sequence{}, fmt.Errorf("%w: need a start-position beat and at least one motion beat, got %d",
			ErrSeedTooShort, len(seed.Beats))
	}
	start := seed.Beats[0]
	last := seed.Beats[len(seed.Beats)-1]
	if start.StartPosition == "" || last.EndPosition == "" {
		return Sequence{}, fmt.Errorf("%w: start %q, end %q",
			ErrMissingPosition, start.StartPosition, last.EndPosition)
	}
	pairs, err := CompatiblePairs(e.capType, slice)
	if err != nil {
		return Sequence{}, err
	}
	if !pairs.Contains(start.StartPosition, last.EndPosition) {
		return Sequence{}, fmt.Errorf("%w: %s to %s does not close a %s %s pattern",
			ErrIncompatibleSeed, start.StartPosition, last.EndPosition, slice, e.capType)
	}

	body := seed.Body()
	entries := slice.EntriesToAdd(len(body))
	final := len(body) + entries
	echoes := BuildIndexMap(final, slice, e.base)

	for n := 0; n < entries; n++ {
		previous := body[len(body)-1]
		number := previous.Number + 1
		src, ok := echoes.Source(number)
		if !ok {
			return Sequence{}, fmt.Errorf("%w: no echo source for beat %d", ErrDerivation, number)
		}
		if src < 1 || src > len(body) {
			return Sequence{}, fmt.Errorf("%w: beat %d echoes beat %d, outside the body", ErrDerivation, number, src)
		}
		beat, err := e.synth(e.deps, body[src-1], previous)
		if err != nil {
			return Sequence{}, fmt.Errorf("%w: beat %d: %v", ErrDerivation, number, err)
		}
		beat.ID = fmt.Sprintf("b%d", number)
		beat.Number = number
		beat.StartPosition = previous.EndPosition
		end, ok := e.deps.Positions.GridPosition(beat.Blue.EndLocation, beat.Red.EndLocation)
		if !ok {
			return Sequence{}, fmt.Errorf("%w: beat %d: hands at %s/%s form no position",
				ErrDerivation, number, beat.Blue.EndLocation, beat.Red.EndLocation)
		}
		beat.EndPosition = end
		beat = e.deps.Orientations.UpdateStartOrientations(beat, previous)
		beat = e.deps.Orientations.UpdateEndOrientations(beat)
		body = append(body, beat)
	}

	out := Sequence{Beats: append([]Beat{start}, body...)}
	out.Word = out.ComputeWord()
	return out, nil
}
