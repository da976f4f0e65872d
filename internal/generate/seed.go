package generate

import (
	"fmt"
	"math/rand"

	"github.com/austencloud/tka-studio-sub013/internal/logging"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// Spec describes one sequence to generate: the pattern to run, where the
// seed starts, how many motion beats it carries and the random seed that
// fixes every choice the builder makes.
type Spec struct {
	CAPType  cap.Type      `json:"cap_type" yaml:"cap_type"`
	Slice    cap.SliceSize `json:"slice" yaml:"slice"`
	Start    cap.Position  `json:"start" yaml:"start"`
	Length   int           `json:"length" yaml:"length"`
	RandSeed int64         `json:"rand_seed" yaml:"rand_seed"`
}

// BuildSeed builds a seed sequence of spec.Length motion beats starting
// at spec.Start and ending on a position the pattern accepts. The same
// spec always builds the same seed.
//
// Beats before the last move both hands in step so every intermediate
// pair stays on a named position; the last beat walks each hand to its
// target.
func BuildSeed(spec Spec) (cap.Sequence, error) {
	if spec.Length < 1 {
		return cap.Sequence{}, fmt.Errorf("seed length %d, need at least 1", spec.Length)
	}
	if !cap.KnownPosition(spec.Start) {
		return cap.Sequence{}, fmt.Errorf("unknown start position %q", spec.Start)
	}
	ends, err := cap.EndPositionsFor(spec.CAPType, spec.Slice, spec.Start)
	if err != nil {
		return cap.Sequence{}, err
	}
	rng := rand.New(rand.NewSource(spec.RandSeed))
	target := ends[rng.Intn(len(ends))]
	targetBlue, targetRed, _ := target.Hands()

	blue, red, _ := spec.Start.Hands()
	beats := []cap.Beat{startBeat(blue, red, spec.Start)}
	var oris cap.DefaultOrientations
	for i := 1; i <= spec.Length; i++ {
		var blueStep, redStep int
		if i < spec.Length {
			step := rng.Intn(5) - 2
			blueStep, redStep = step, step
		} else {
			blueStep = stepBetween(blue, targetBlue)
			redStep = stepBetween(red, targetRed)
		}
		prev := beats[i-1]
		b := cap.Beat{
			ID:     fmt.Sprintf("b%d", i),
			Number: i,
			Blue:   buildMotion(rng, cap.Blue, blue, blueStep),
			Red:    buildMotion(rng, cap.Red, red, redStep),
		}
		blue, red = b.Blue.EndLocation, b.Red.EndLocation
		b.StartPosition = prev.EndPosition
		end, ok := cap.GridPosition(blue, red)
		if !ok {
			return cap.Sequence{}, fmt.Errorf("beat %d: hands at %s/%s form no position", i, blue, red)
		}
		b.EndPosition = end
		letter, err := LetterFor(b)
		if err != nil {
			return cap.Sequence{}, err
		}
		b.Letter = letter
		b = oris.UpdateStartOrientations(b, prev)
		b = oris.UpdateEndOrientations(b)
		beats = append(beats, b)
	}

	seq := cap.Sequence{Beats: beats}
	seq.Word = seq.ComputeWord()
	return seq, nil
}

// Generate builds the seed for spec and extends it with the pattern's
// executor.
func Generate(spec Spec, deps cap.Deps) (cap.Sequence, error) {
	seed, err := BuildSeed(spec)
	if err != nil {
		return cap.Sequence{}, err
	}
	ex, err := cap.New(spec.CAPType, deps)
	if err != nil {
		return cap.Sequence{}, err
	}
	out, err := ex.Execute(seed, spec.Slice)
	if err != nil {
		return cap.Sequence{}, err
	}
	logging.New("generate").Debug("sequence generated",
		"cap_type", string(spec.CAPType), "slice", string(spec.Slice),
		"beats", len(out.Beats), "word", out.Word)
	return out, nil
}

func startBeat(blue, red cap.Location, pos cap.Position) cap.Beat {
	return cap.Beat{
		ID:            "start",
		Number:        0,
		StartPosition: pos,
		EndPosition:   pos,
		Blue: cap.Motion{
			Color: cap.Blue, MotionType: cap.Static, RotationDirection: cap.NoRotation,
			StartLocation: blue, EndLocation: blue,
			StartOrientation: cap.In, EndOrientation: cap.In,
		},
		Red: cap.Motion{
			Color: cap.Red, MotionType: cap.Static, RotationDirection: cap.NoRotation,
			StartLocation: red, EndLocation: red,
			StartOrientation: cap.In, EndOrientation: cap.In,
		},
	}
}

// stepBetween is the signed ring walk from one location to another:
// positive clockwise, at most four steps either way.
func stepBetween(from, to cap.Location) int {
	span := cap.RotationSpan(from, to)
	if cap.HandRotationDirection(from, to) == cap.CounterClockwise {
		return -span
	}
	return span
}

func buildMotion(rng *rand.Rand, c cap.Color, from cap.Location, step int) cap.Motion {
	dir := cap.NoRotation
	to := from
	switch {
	case step > 0:
		dir = cap.Clockwise
		to = cap.RotateLocation(from, cap.Clockwise, step)
	case step < 0:
		dir = cap.CounterClockwise
		to = cap.RotateLocation(from, cap.CounterClockwise, -step)
	}
	switch {
	case step == 0:
		turns := pickTurns(rng)
		spin := cap.NoRotation
		if turns > 0 {
			spin = pickSpin(rng)
		}
		return cap.Motion{
			Color: c, MotionType: cap.Static, RotationDirection: spin,
			StartLocation: from, EndLocation: from, Turns: turns,
		}
	case step == 4 && rng.Intn(2) == 0:
		return cap.Motion{
			Color: c, MotionType: cap.Dash, RotationDirection: cap.NoRotation,
			StartLocation: from, EndLocation: to, Turns: 0,
		}
	default:
		mt := cap.Pro
		spin := dir
		if rng.Intn(2) == 1 {
			mt = cap.Anti
			spin = cap.OppositeRotation(dir)
		}
		return cap.Motion{
			Color: c, MotionType: mt, RotationDirection: spin,
			StartLocation: from, EndLocation: to, Turns: pickTurns(rng),
		}
	}
}

func pickTurns(rng *rand.Rand) float64 {
	return []float64{0, 0, 0.5, 1}[rng.Intn(4)]
}

func pickSpin(rng *rand.Rand) cap.RotationDirection {
	if rng.Intn(2) == 0 {
		return cap.Clockwise
	}
	return cap.CounterClockwise
}
