// Package diff computes character-level edit scripts between two text
// documents and exposes them as ordered, tagged segments for rendering.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op identifies how a segment of text relates the original document to the
// modified one.
type Op int

const (
	// OpEqual marks text present in both documents.
	OpEqual Op = iota

	// OpInsert marks text present only in the modified document.
	OpInsert

	// OpDelete marks text present only in the original document.
	OpDelete
)

// String returns a human-readable label for the operation.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Segment is one tagged run of text in an edit script.
type Segment struct {
	Op   Op
	Text string
}

// Script is an ordered edit script. Concatenating the text of equal and
// delete segments reconstructs the original document exactly; concatenating
// equal and insert segments reconstructs the modified document exactly.
// Scripts are produced once by an Engine and never mutated afterwards.
type Script []Segment

// Engine computes an edit script between two documents. Rendering depends
// only on this interface so it can be exercised with hand-built scripts.
type Engine interface {
	Compute(original, modified string) Script
}

// SemanticEngine computes a minimal character-level diff and coalesces it
// into human-readable chunks with diff-match-patch's semantic cleanup pass.
// The cleanup shifts segment boundaries toward word edges and merges trivial
// edits, but never changes which characters are attributed to equal, insert,
// or delete, so the reconstruction invariant on Script is preserved.
type SemanticEngine struct{}

// NewSemanticEngine creates the production diff engine.
func NewSemanticEngine() *SemanticEngine {
	return &SemanticEngine{}
}

// Compute implements Engine. Identical inputs yield a single equal segment;
// a diff against the empty string yields a single insert or delete segment.
// Output is deterministic for identical inputs.
func (e *SemanticEngine) Compute(original, modified string) Script {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, modified, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	script := make(Script, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		script = append(script, Segment{Op: opFromDiff(d.Type), Text: d.Text})
	}
	return script
}

// opFromDiff maps a diff-match-patch operation onto the script's Op.
func opFromDiff(t diffmatchpatch.Operation) Op {
	switch t {
	case diffmatchpatch.DiffInsert:
		return OpInsert
	case diffmatchpatch.DiffDelete:
		return OpDelete
	default:
		return OpEqual
	}
}

// Original reconstructs the original document from the script.
func (s Script) Original() string {
	var builder strings.Builder
	for _, segment := range s {
		if segment.Op != OpInsert {
			builder.WriteString(segment.Text)
		}
	}
	return builder.String()
}

// Modified reconstructs the modified document from the script.
func (s Script) Modified() string {
	var builder strings.Builder
	for _, segment := range s {
		if segment.Op != OpDelete {
			builder.WriteString(segment.Text)
		}
	}
	return builder.String()
}

// Stats summarizes an edit script for run reporting.
type Stats struct {
	// EqualChars is the number of characters shared by both documents.
	EqualChars int

	// InsertedChars is the number of characters only in the modified document.
	InsertedChars int

	// DeletedChars is the number of characters only in the original document.
	DeletedChars int

	// Segments is the total number of segments in the script.
	Segments int
}

// Stats walks the script once and counts characters per operation.
func (s Script) Stats() Stats {
	stats := Stats{Segments: len(s)}
	for _, segment := range s {
		switch segment.Op {
		case OpInsert:
			stats.InsertedChars += len(segment.Text)
		case OpDelete:
			stats.DeletedChars += len(segment.Text)
		default:
			stats.EqualChars += len(segment.Text)
		}
	}
	return stats
}
