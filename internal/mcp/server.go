// Package mcp exposes the pattern engine and the sequence catalog as
// MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/display"
	"github.com/austencloud/tka-studio-sub013/internal/generate"
	"github.com/austencloud/tka-studio-sub013/internal/logging"
	"github.com/austencloud/tka-studio-sub013/pkg/cap"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around the pattern engine and an
// optional sequence catalog.
type Server struct {
	MCPServer *sdkmcp.Server

	deps  cap.Deps
	store catalog.Store
}

// NewServer creates an MCP server with the sequence tools registered.
// store may be nil; the catalog tools then report a clear error.
func NewServer(store catalog.Store) *Server {
	s := &Server{deps: cap.DefaultDeps(), store: store}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "kinetic", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_patterns",
		Description: "List the circular arrangement patterns with the slice sizes and valid end positions each accepts.",
	}, s.handleListPatterns)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "build_seed",
		Description: "Build a seed sequence for a pattern: a start-position beat plus motion beats ending where the pattern can take over.",
	}, s.handleBuildSeed)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_sequence",
		Description: "Build a seed and extend it into a full circular sequence with the chosen pattern. Optionally saves to the catalog.",
	}, s.handleGenerateSequence)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_batch",
		Description: "Generate several sequences at once with a bounded worker pool. Failures are reported per spec without stopping the batch.",
	}, s.handleGenerateBatch)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "extend_sequence",
		Description: "Extend a caller-supplied seed sequence with a pattern. The seed must end on a position the pattern accepts for its slice size.",
	}, s.handleExtendSequence)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "validate_sequence",
		Description: "Check a sequence for structural problems: numbering, hand continuity, unknown vocabulary, position mismatches.",
	}, s.handleValidateSequence)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_sequences",
		Description: "List the sequences stored in the catalog, optionally filtered by pattern type.",
	}, s.handleListSequences)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_sequence",
		Description: "Fetch one stored sequence by catalog id, including its beats.",
	}, s.handleGetSequence)
}

// --- Tool input/output types ---

type listPatternsInput struct{}

type sliceInfo struct {
	Slice       string `json:"slice"`
	Name        string `json:"name"`
	Repetitions int    `json:"repetitions"`
}

type patternInfo struct {
	CAPType string      `json:"cap_type"`
	Name    string      `json:"name"`
	Slices  []sliceInfo `json:"slices"`
}

type listPatternsOutput struct {
	Patterns []patternInfo `json:"patterns"`
}

type buildSeedInput struct {
	CAPType  string `json:"cap_type" jsonschema:"pattern type (strict_rotated, strict_mirrored, strict_swapped, strict_complementary, rotated_complementary, rotated_swapped)"`
	Slice    string `json:"slice" jsonschema:"slice size (quartered, halved)"`
	StartPos string `json:"start_pos" jsonschema:"starting grid position (alpha1..alpha8, beta1..beta8, gamma1..gamma16)"`
	Length   int    `json:"length" jsonschema:"motion beats in the seed (at least 1)"`
	RandSeed int64  `json:"rand_seed,omitempty" jsonschema:"random seed for reproducible output"`
}

type buildSeedOutput struct {
	Sequence cap.Sequence `json:"sequence"`
	Word     string       `json:"word"`
	EndPos   string       `json:"end_pos"`
}

type generateSequenceInput struct {
	CAPType  string `json:"cap_type" jsonschema:"pattern type (strict_rotated, strict_mirrored, strict_swapped, strict_complementary, rotated_complementary, rotated_swapped)"`
	Slice    string `json:"slice" jsonschema:"slice size (quartered, halved)"`
	StartPos string `json:"start_pos" jsonschema:"starting grid position (alpha1..alpha8, beta1..beta8, gamma1..gamma16)"`
	Length   int    `json:"length" jsonschema:"motion beats in the seed (at least 1)"`
	RandSeed int64  `json:"rand_seed,omitempty" jsonschema:"random seed for reproducible output"`
	Save     bool   `json:"save,omitempty" jsonschema:"save the generated sequence to the catalog"`
}

type generateSequenceOutput struct {
	Sequence cap.Sequence `json:"sequence"`
	Word     string       `json:"word"`
	Beats    int          `json:"beats"`
	SavedID  int64        `json:"saved_id,omitempty"`
}

type batchSpec struct {
	CAPType  string `json:"cap_type" jsonschema:"pattern type"`
	Slice    string `json:"slice" jsonschema:"slice size (quartered, halved)"`
	StartPos string `json:"start_pos" jsonschema:"starting grid position"`
	Length   int    `json:"length" jsonschema:"motion beats in the seed"`
	RandSeed int64  `json:"rand_seed,omitempty" jsonschema:"random seed for reproducible output"`
}

type generateBatchInput struct {
	Specs   []batchSpec `json:"specs" jsonschema:"one entry per sequence to generate"`
	Workers int         `json:"workers,omitempty" jsonschema:"max parallel workers (default 1)"`
	Save    bool        `json:"save,omitempty" jsonschema:"save successful sequences to the catalog"`
}

type batchResult struct {
	Index   int    `json:"index"`
	Word    string `json:"word,omitempty"`
	Beats   int    `json:"beats,omitempty"`
	SavedID int64  `json:"saved_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type generateBatchOutput struct {
	Results []batchResult `json:"results"`
	Failed  int           `json:"failed"`
}

type extendSequenceInput struct {
	SequenceJSON string `json:"sequence_json" jsonschema:"seed sequence as a JSON string"`
	CAPType      string `json:"cap_type" jsonschema:"pattern type to extend with"`
	Slice        string `json:"slice" jsonschema:"slice size (quartered, halved)"`
}

type extendSequenceOutput struct {
	Sequence cap.Sequence `json:"sequence"`
	Word     string       `json:"word"`
	Beats    int          `json:"beats"`
}

type validateSequenceInput struct {
	SequenceJSON string `json:"sequence_json" jsonschema:"sequence as a JSON string"`
}

type validateSequenceOutput struct {
	Valid   bool   `json:"valid"`
	Problem string `json:"problem,omitempty"`
	Word    string `json:"word,omitempty"`
	Beats   int    `json:"beats,omitempty"`
}

type listSequencesInput struct {
	CAPType string `json:"cap_type,omitempty" jsonschema:"only list sequences of this pattern type"`
}

type sequenceInfo struct {
	ID        int64  `json:"id"`
	Word      string `json:"word"`
	CAPType   string `json:"cap_type"`
	Slice     string `json:"slice"`
	Length    int    `json:"length"`
	CreatedAt string `json:"created_at"`
}

type listSequencesOutput struct {
	Sequences []sequenceInfo `json:"sequences"`
	Total     int            `json:"total"`
}

type getSequenceInput struct {
	ID int64 `json:"id" jsonschema:"catalog id from list_sequences"`
}

type getSequenceOutput struct {
	Found    bool          `json:"found"`
	Info     *sequenceInfo `json:"info,omitempty"`
	Sequence *cap.Sequence `json:"sequence,omitempty"`
}

// --- Tool handlers ---

func (s *Server) handleListPatterns(_ context.Context, _ *sdkmcp.CallToolRequest, _ listPatternsInput) (*sdkmcp.CallToolResult, listPatternsOutput, error) {
	var out listPatternsOutput
	for _, t := range cap.Types() {
		info := patternInfo{CAPType: string(t), Name: display.Pattern(string(t))}
		for _, size := range []cap.SliceSize{cap.Quartered, cap.Halved} {
			if _, err := cap.CompatiblePairs(t, size); err != nil {
				continue
			}
			info.Slices = append(info.Slices, sliceInfo{
				Slice:       string(size),
				Name:        display.Slice(string(size)),
				Repetitions: size.Repetitions(),
			})
		}
		out.Patterns = append(out.Patterns, info)
	}
	return nil, out, nil
}

func (s *Server) handleBuildSeed(_ context.Context, _ *sdkmcp.CallToolRequest, input buildSeedInput) (*sdkmcp.CallToolResult, buildSeedOutput, error) {
	spec, err := toSpec(input.CAPType, input.Slice, input.StartPos, input.Length, input.RandSeed)
	if err != nil {
		return nil, buildSeedOutput{}, err
	}
	seed, err := generate.BuildSeed(spec)
	if err != nil {
		return nil, buildSeedOutput{}, fmt.Errorf("build_seed: %w", err)
	}
	last, _ := seed.Last()
	return nil, buildSeedOutput{
		Sequence: seed,
		Word:     seed.Word,
		EndPos:   string(last.EndPosition),
	}, nil
}

func (s *Server) handleGenerateSequence(_ context.Context, _ *sdkmcp.CallToolRequest, input generateSequenceInput) (*sdkmcp.CallToolResult, generateSequenceOutput, error) {
	spec, err := toSpec(input.CAPType, input.Slice, input.StartPos, input.Length, input.RandSeed)
	if err != nil {
		return nil, generateSequenceOutput{}, err
	}
	seq, err := generate.Generate(spec, s.deps)
	if err != nil {
		return nil, generateSequenceOutput{}, fmt.Errorf("generate_sequence: %w", err)
	}
	out := generateSequenceOutput{Sequence: seq, Word: seq.Word, Beats: len(seq.Beats)}
	if input.Save {
		id, err := s.save(spec, seq)
		if err != nil {
			return nil, generateSequenceOutput{}, err
		}
		out.SavedID = id
	}
	return nil, out, nil
}

func (s *Server) handleGenerateBatch(ctx context.Context, _ *sdkmcp.CallToolRequest, input generateBatchInput) (*sdkmcp.CallToolResult, generateBatchOutput, error) {
	if len(input.Specs) == 0 {
		return nil, generateBatchOutput{}, fmt.Errorf("specs is empty")
	}
	specs := make([]generate.Spec, len(input.Specs))
	for i, bs := range input.Specs {
		spec, err := toSpec(bs.CAPType, bs.Slice, bs.StartPos, bs.Length, bs.RandSeed)
		if err != nil {
			return nil, generateBatchOutput{}, fmt.Errorf("spec %d: %w", i, err)
		}
		specs[i] = spec
	}

	results := generate.RunBatch(ctx, specs, input.Workers, s.deps)
	out := generateBatchOutput{Results: make([]batchResult, len(results))}
	for i, r := range results {
		br := batchResult{Index: r.Index}
		if r.Err != nil {
			br.Error = r.Err.Error()
			out.Failed++
		} else {
			br.Word = r.Seq.Word
			br.Beats = len(r.Seq.Beats)
			if input.Save {
				id, err := s.save(r.Spec, r.Seq)
				if err != nil {
					return nil, generateBatchOutput{}, err
				}
				br.SavedID = id
			}
		}
		out.Results[i] = br
	}
	return nil, out, nil
}

func (s *Server) handleExtendSequence(_ context.Context, _ *sdkmcp.CallToolRequest, input extendSequenceInput) (*sdkmcp.CallToolResult, extendSequenceOutput, error) {
	seed, err := parseSequence(input.SequenceJSON)
	if err != nil {
		return nil, extendSequenceOutput{}, err
	}
	capType, err := cap.ParseType(input.CAPType)
	if err != nil {
		return nil, extendSequenceOutput{}, err
	}
	slice, err := cap.ParseSliceSize(input.Slice)
	if err != nil {
		return nil, extendSequenceOutput{}, err
	}
	ex, err := cap.New(capType, s.deps)
	if err != nil {
		return nil, extendSequenceOutput{}, err
	}
	seq, err := ex.Execute(seed, slice)
	if err != nil {
		return nil, extendSequenceOutput{}, fmt.Errorf("extend_sequence: %w", err)
	}
	return nil, extendSequenceOutput{Sequence: seq, Word: seq.Word, Beats: len(seq.Beats)}, nil
}

func (s *Server) handleValidateSequence(_ context.Context, _ *sdkmcp.CallToolRequest, input validateSequenceInput) (*sdkmcp.CallToolResult, validateSequenceOutput, error) {
	seq, err := parseSequence(input.SequenceJSON)
	if err != nil {
		return nil, validateSequenceOutput{}, err
	}
	if err := seq.Check(); err != nil {
		return nil, validateSequenceOutput{Valid: false, Problem: err.Error()}, nil
	}
	return nil, validateSequenceOutput{Valid: true, Word: seq.Word, Beats: len(seq.Beats)}, nil
}

func (s *Server) handleListSequences(_ context.Context, _ *sdkmcp.CallToolRequest, input listSequencesInput) (*sdkmcp.CallToolResult, listSequencesOutput, error) {
	if s.store == nil {
		return nil, listSequencesOutput{}, fmt.Errorf("no catalog configured (start the server with a catalog path)")
	}
	var (
		entries []*catalog.Entry
		err     error
	)
	if input.CAPType != "" {
		capType, parseErr := cap.ParseType(input.CAPType)
		if parseErr != nil {
			return nil, listSequencesOutput{}, parseErr
		}
		entries, err = s.store.ListSequencesByType(capType)
	} else {
		entries, err = s.store.ListSequences()
	}
	if err != nil {
		return nil, listSequencesOutput{}, fmt.Errorf("list_sequences: %w", err)
	}
	out := listSequencesOutput{Total: len(entries)}
	for _, e := range entries {
		out.Sequences = append(out.Sequences, toInfo(e))
	}
	return nil, out, nil
}

func (s *Server) handleGetSequence(_ context.Context, _ *sdkmcp.CallToolRequest, input getSequenceInput) (*sdkmcp.CallToolResult, getSequenceOutput, error) {
	if s.store == nil {
		return nil, getSequenceOutput{}, fmt.Errorf("no catalog configured (start the server with a catalog path)")
	}
	e, err := s.store.GetSequence(input.ID)
	if err != nil {
		return nil, getSequenceOutput{}, fmt.Errorf("get_sequence: %w", err)
	}
	if e == nil {
		return nil, getSequenceOutput{Found: false}, nil
	}
	info := toInfo(e)
	return nil, getSequenceOutput{Found: true, Info: &info, Sequence: &e.Sequence}, nil
}

// --- Helpers ---

func toSpec(capType, slice, startPos string, length int, randSeed int64) (generate.Spec, error) {
	t, err := cap.ParseType(capType)
	if err != nil {
		return generate.Spec{}, err
	}
	size, err := cap.ParseSliceSize(slice)
	if err != nil {
		return generate.Spec{}, err
	}
	start := cap.Position(startPos)
	if !cap.KnownPosition(start) {
		return generate.Spec{}, fmt.Errorf("unknown start position %q", startPos)
	}
	return generate.Spec{CAPType: t, Slice: size, Start: start, Length: length, RandSeed: randSeed}, nil
}

// parseSequence decodes a caller-supplied JSON sequence and fills in the
// fields hand-written files tend to omit.
func parseSequence(raw string) (cap.Sequence, error) {
	data := []byte(raw)
	if !json.Valid(data) {
		return cap.Sequence{}, fmt.Errorf("sequence_json is not valid JSON")
	}
	var seq cap.Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return cap.Sequence{}, fmt.Errorf("parse sequence: %w", err)
	}
	return seq.Normalized(), nil
}

func (s *Server) save(spec generate.Spec, seq cap.Sequence) (int64, error) {
	if s.store == nil {
		return 0, fmt.Errorf("no catalog configured (start the server with a catalog path)")
	}
	id, err := s.store.SaveSequence(&catalog.Entry{
		CAPType:   spec.CAPType,
		SliceSize: spec.Slice,
		Length:    spec.Length,
		Sequence:  seq,
	})
	if err != nil {
		return 0, fmt.Errorf("save sequence: %w", err)
	}
	logging.New("mcp").Info("sequence saved", "id", id, "word", seq.Word, "cap_type", string(spec.CAPType))
	return id, nil
}

func toInfo(e *catalog.Entry) sequenceInfo {
	return sequenceInfo{
		ID:        e.ID,
		Word:      e.Word,
		CAPType:   string(e.CAPType),
		Slice:     string(e.SliceSize),
		Length:    e.Length,
		CreatedAt: e.CreatedAt,
	}
}
