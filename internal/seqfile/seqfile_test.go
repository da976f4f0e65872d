package seqfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

const seqJSON = `{
  "word": "U",
  "beats": [
    {
      "id": "start",
      "beat": 0,
      "start_pos": "gamma15",
      "end_pos": "gamma15",
      "blue": {"color": "blue", "motion_type": "static", "rotation_direction": "no_rot", "start_loc": "n", "end_loc": "n", "turns": 0},
      "red": {"color": "red", "motion_type": "static", "rotation_direction": "no_rot", "start_loc": "w", "end_loc": "w", "turns": 0}
    },
    {
      "id": "b1",
      "beat": 1,
      "letter": "U",
      "start_pos": "gamma15",
      "end_pos": "gamma9",
      "blue": {"color": "blue", "motion_type": "pro", "rotation_direction": "cw", "start_loc": "n", "end_loc": "e", "turns": 1},
      "red": {"color": "red", "motion_type": "anti", "rotation_direction": "ccw", "start_loc": "w", "end_loc": "n", "turns": 0}
    }
  ]
}`

const seqYAML = `word: U
beats:
  - id: start
    beat: 0
    start_pos: gamma15
    end_pos: gamma15
    blue: {color: blue, motion_type: static, rotation_direction: no_rot, start_loc: n, end_loc: n, turns: 0}
    red: {color: red, motion_type: static, rotation_direction: no_rot, start_loc: w, end_loc: w, turns: 0}
  - id: b1
    beat: 1
    letter: U
    start_pos: gamma15
    end_pos: gamma9
    blue: {color: blue, motion_type: pro, rotation_direction: cw, start_loc: n, end_loc: e, turns: 1}
    red: {color: red, motion_type: anti, rotation_direction: ccw, start_loc: w, end_loc: n, turns: 0}
`

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.json")
	if err := os.WriteFile(path, []byte(seqJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	seq, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if seq.Word != "U" || len(seq.Beats) != 2 {
		t.Errorf("got word %q with %d beats, want U with 2", seq.Word, len(seq.Beats))
	}
	if seq.Beats[1].EndPosition != "gamma9" {
		t.Errorf("beat 1 ends at %s, want gamma9", seq.Beats[1].EndPosition)
	}
}

func TestLoadFromPath_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.yaml")
	if err := os.WriteFile(path, []byte(seqYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	seq, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if seq.Word != "U" || len(seq.Beats) != 2 {
		t.Errorf("got word %q with %d beats, want U with 2", seq.Word, len(seq.Beats))
	}
	if seq.Beats[1].Blue.MotionType != cap.Pro {
		t.Errorf("beat 1 blue motion = %s, want pro", seq.Beats[1].Blue.MotionType)
	}
}

func TestLoad_DetectJSON(t *testing.T) {
	seq, err := Load([]byte(seqJSON), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(seq.Beats) != 2 {
		t.Errorf("got %d beats, want 2", len(seq.Beats))
	}
}

func TestLoad_DetectYAML(t *testing.T) {
	seq, err := Load([]byte(seqYAML), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(seq.Beats) != 2 {
		t.Errorf("got %d beats, want 2", len(seq.Beats))
	}
}

// Sequence files written by hand tend to skip the color tags, the
// no-rotation markers, the derived positions and the word. Load fills
// all of them in.
func TestLoadNormalizesSparseInput(t *testing.T) {
	sparse := `{
  "beats": [
    {
      "beat": 0,
      "blue": {"motion_type": "static", "start_loc": "n", "end_loc": "n", "turns": 0},
      "red": {"motion_type": "static", "start_loc": "w", "end_loc": "w", "turns": 0}
    },
    {
      "beat": 1,
      "letter": "U",
      "blue": {"motion_type": "pro", "rotation_direction": "cw", "start_loc": "n", "end_loc": "e", "turns": 1},
      "red": {"motion_type": "anti", "rotation_direction": "ccw", "start_loc": "w", "end_loc": "n", "turns": 0}
    }
  ]
}`
	seq, err := Load([]byte(sparse), ".json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if seq.Beats[1].Blue.Color != cap.Blue || seq.Beats[1].Red.Color != cap.Red {
		t.Error("color tags not filled in")
	}
	if seq.Beats[0].Blue.RotationDirection != cap.NoRotation {
		t.Error("rotation direction not defaulted")
	}
	if seq.Beats[1].StartPosition != "gamma15" || seq.Beats[1].EndPosition != "gamma9" {
		t.Errorf("positions = %s>%s, want gamma15>gamma9",
			seq.Beats[1].StartPosition, seq.Beats[1].EndPosition)
	}
	if seq.Word != "U" {
		t.Errorf("word = %q, want U", seq.Word)
	}
}

func TestLoadRejectsBrokenSequence(t *testing.T) {
	broken := `{
  "beats": [
    {
      "beat": 0,
      "blue": {"motion_type": "static", "start_loc": "n", "end_loc": "n", "turns": 0},
      "red": {"motion_type": "static", "start_loc": "w", "end_loc": "w", "turns": 0}
    },
    {
      "beat": 1,
      "letter": "U",
      "blue": {"motion_type": "pro", "rotation_direction": "cw", "start_loc": "s", "end_loc": "e", "turns": 1},
      "red": {"motion_type": "anti", "rotation_direction": "ccw", "start_loc": "w", "end_loc": "n", "turns": 0}
    }
  ]
}`
	_, err := Load([]byte(broken), ".json")
	if !errors.Is(err, cap.ErrMalformedSequence) {
		t.Errorf("Load = %v, want ErrMalformedSequence", err)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load([]byte(`{"beats": [`), ".json"); err == nil {
		t.Error("Load accepted truncated json")
	}
	if _, err := Load([]byte("beats: [oops"), ".yaml"); err == nil {
		t.Error("Load accepted broken yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	orig, err := Load([]byte(seqJSON), ".json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dir := t.TempDir()
	for _, name := range []string{"seq.json", "seq.yaml"} {
		path := filepath.Join(dir, name)
		if err := SaveToPath(path, orig); err != nil {
			t.Fatalf("SaveToPath(%s): %v", name, err)
		}
		back, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath(%s): %v", name, err)
		}
		if diff := cmp.Diff(orig, back); diff != "" {
			t.Errorf("%s round trip changed the sequence (-orig +back):\n%s", name, diff)
		}
	}
}
