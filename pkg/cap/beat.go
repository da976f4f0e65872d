package cap

import (
	"fmt"
	"strings"
)

// Motion describes what one hand does during a beat. Motions are plain
// values; copying a beat copies its motions.
type Motion struct {
	Color             Color             `json:"color" yaml:"color"`
	MotionType        MotionType        `json:"motion_type" yaml:"motion_type"`
	RotationDirection RotationDirection `json:"rotation_direction" yaml:"rotation_direction"`
	StartLocation     Location          `json:"start_loc" yaml:"start_loc"`
	EndLocation       Location          `json:"end_loc" yaml:"end_loc"`
	StartOrientation  Orientation       `json:"start_ori,omitempty" yaml:"start_ori,omitempty"`
	EndOrientation    Orientation       `json:"end_ori,omitempty" yaml:"end_ori,omitempty"`
	Turns             float64           `json:"turns" yaml:"turns"`
}

// Beat is one unit of a sequence: a letter and a motion per hand, with
// the composite positions the motions connect. Beat zero of a sequence
// is the start-position beat and carries number 0.
type Beat struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Number        int      `json:"beat" yaml:"beat"`
	Letter        Letter   `json:"letter,omitempty" yaml:"letter,omitempty"`
	StartPosition Position `json:"start_pos,omitempty" yaml:"start_pos,omitempty"`
	EndPosition   Position `json:"end_pos,omitempty" yaml:"end_pos,omitempty"`
	Blue          Motion   `json:"blue" yaml:"blue"`
	Red           Motion   `json:"red" yaml:"red"`
}

// Motion returns the motion of the given hand.
func (b Beat) Motion(c Color) Motion {
	if c == Red {
		return b.Red
	}
	return b.Blue
}

// WithMotion returns a copy of the beat with one hand's motion replaced.
func (b Beat) WithMotion(c Color, m Motion) Beat {
	if c == Red {
		b.Red = m
	} else {
		b.Blue = m
	}
	return b
}

// Sequence is a start-position beat followed by motion beats. The zero
// value is an empty sequence.
type Sequence struct {
	Word  string `json:"word,omitempty" yaml:"word,omitempty"`
	Beats []Beat `json:"beats" yaml:"beats"`
}

// StartBeat returns the start-position beat.
func (s Sequence) StartBeat() (Beat, bool) {
	if len(s.Beats) == 0 {
		return Beat{}, false
	}
	return s.Beats[0], true
}

// Body returns a copy of the motion beats, everything after the
// start-position beat.
func (s Sequence) Body() []Beat {
	if len(s.Beats) <= 1 {
		return nil
	}
	return append([]Beat(nil), s.Beats[1:]...)
}

// Last returns the final beat of the sequence.
func (s Sequence) Last() (Beat, bool) {
	if len(s.Beats) == 0 {
		return Beat{}, false
	}
	return s.Beats[len(s.Beats)-1], true
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	return Sequence{Word: s.Word, Beats: append([]Beat(nil), s.Beats...)}
}

// ComputeWord concatenates the letters of the motion beats.
func (s Sequence) ComputeWord() string {
	var w strings.Builder
	for i, b := range s.Beats {
		if i == 0 {
			continue
		}
		w.WriteString(string(b.Letter))
	}
	return w.String()
}

// Normalized fills in what serialized sequences commonly omit: hand
// color tags, explicit no-rotation markers, derivable position fields
// and the word. Fields that are already set stay untouched.
func (s Sequence) Normalized() Sequence {
	out := s.Clone()
	for i := range out.Beats {
		b := &out.Beats[i]
		if b.Blue.Color == "" {
			b.Blue.Color = Blue
		}
		if b.Red.Color == "" {
			b.Red.Color = Red
		}
		if b.Blue.RotationDirection == "" {
			b.Blue.RotationDirection = NoRotation
		}
		if b.Red.RotationDirection == "" {
			b.Red.RotationDirection = NoRotation
		}
		if b.StartPosition == "" {
			if p, ok := GridPosition(b.Blue.StartLocation, b.Red.StartLocation); ok {
				b.StartPosition = p
			}
		}
		if b.EndPosition == "" {
			if p, ok := GridPosition(b.Blue.EndLocation, b.Red.EndLocation); ok {
				b.EndPosition = p
			}
		}
	}
	if out.Word == "" {
		out.Word = out.ComputeWord()
	}
	return out
}

// Check validates the internal consistency of a sequence: beat
// numbering, hand continuity, known vocabulary and position fields that
// agree with the hand locations. Pattern executors run a narrower
// precondition; Check is the strict form used when sequences arrive
// from files or tools. All problems wrap ErrMalformedSequence.
func (s Sequence) Check() error {
	if len(s.Beats) == 0 {
		return fmt.Errorf("%w: no beats", ErrMalformedSequence)
	}
	ids := make(map[string]struct{}, len(s.Beats))
	for i, b := range s.Beats {
		if b.Number != i {
			return fmt.Errorf("%w: beat %d numbered %d", ErrMalformedSequence, i, b.Number)
		}
		if b.ID != "" {
			if _, dup := ids[b.ID]; dup {
				return fmt.Errorf("%w: duplicate beat id %q", ErrMalformedSequence, b.ID)
			}
			ids[b.ID] = struct{}{}
		}
		if err := checkMotion(b.Blue, Blue); err != nil {
			return fmt.Errorf("%w: beat %d: %v", ErrMalformedSequence, i, err)
		}
		if err := checkMotion(b.Red, Red); err != nil {
			return fmt.Errorf("%w: beat %d: %v", ErrMalformedSequence, i, err)
		}
		if i > 0 && !KnownLetter(b.Letter) {
			return fmt.Errorf("%w: beat %d: letter %q not in alphabet", ErrMalformedSequence, i, b.Letter)
		}
		end, ok := GridPosition(b.Blue.EndLocation, b.Red.EndLocation)
		if !ok {
			return fmt.Errorf("%w: beat %d: hands at %s/%s form no position", ErrMalformedSequence, i, b.Blue.EndLocation, b.Red.EndLocation)
		}
		if b.EndPosition != end {
			return fmt.Errorf("%w: beat %d: end position %q, hands say %q", ErrMalformedSequence, i, b.EndPosition, end)
		}
		start, ok := GridPosition(b.Blue.StartLocation, b.Red.StartLocation)
		if !ok {
			return fmt.Errorf("%w: beat %d: hands at %s/%s form no position", ErrMalformedSequence, i, b.Blue.StartLocation, b.Red.StartLocation)
		}
		if b.StartPosition != start {
			return fmt.Errorf("%w: beat %d: start position %q, hands say %q", ErrMalformedSequence, i, b.StartPosition, start)
		}
		if i == 0 {
			continue
		}
		prev := s.Beats[i-1]
		if b.StartPosition != prev.EndPosition {
			return fmt.Errorf("%w: beat %d starts at %q, beat %d ended at %q", ErrMalformedSequence, i, b.StartPosition, i-1, prev.EndPosition)
		}
		for _, c := range []Color{Blue, Red} {
			if b.Motion(c).StartLocation != prev.Motion(c).EndLocation {
				return fmt.Errorf("%w: beat %d: %s hand starts at %s, previously ended at %s",
					ErrMalformedSequence, i, c, b.Motion(c).StartLocation, prev.Motion(c).EndLocation)
			}
		}
	}
	return nil
}

func checkMotion(m Motion, want Color) error {
	if m.Color != want {
		return fmt.Errorf("%s hand tagged %q", want, m.Color)
	}
	if !KnownMotionType(m.MotionType) {
		return fmt.Errorf("%s hand: motion type %q unknown", want, m.MotionType)
	}
	if !KnownRotationDirection(m.RotationDirection) {
		return fmt.Errorf("%s hand: rotation direction %q unknown", want, m.RotationDirection)
	}
	if !KnownLocation(m.StartLocation) || !KnownLocation(m.EndLocation) {
		return fmt.Errorf("%s hand: locations %q to %q off the grid", want, m.StartLocation, m.EndLocation)
	}
	if m.StartOrientation != "" && !KnownOrientation(m.StartOrientation) {
		return fmt.Errorf("%s hand: orientation %q unknown", want, m.StartOrientation)
	}
	if m.EndOrientation != "" && !KnownOrientation(m.EndOrientation) {
		return fmt.Errorf("%s hand: orientation %q unknown", want, m.EndOrientation)
	}
	return nil
}
