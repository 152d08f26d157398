package diff

import (
	"testing"
)

func TestComputeReconstruction(t *testing.T) {
	tests := []struct {
		name     string
		original string
		modified string
	}{
		{"identical", "A: hello world\n", "A: hello world\n"},
		{"single word change", "A: hello world\n", "A: hello there\n"},
		{"empty original", "", "B: brand new line\n"},
		{"empty modified", "B: gone\n", ""},
		{"both empty", "", ""},
		{"disjoint", "aaaa", "zzzz"},
		{"multiline", "A: one\n\nB: two\n", "A: one\n\nB: three\n\nC: four\n"},
		{"mid word edit", "transcription", "transcoding"},
	}

	engine := NewSemanticEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := engine.Compute(tt.original, tt.modified)

			if got := script.Original(); got != tt.original {
				t.Errorf("Original() = %q, want %q", got, tt.original)
			}
			if got := script.Modified(); got != tt.modified {
				t.Errorf("Modified() = %q, want %q", got, tt.modified)
			}
		})
	}
}

func TestComputeIdentity(t *testing.T) {
	engine := NewSemanticEngine()
	document := "A: hello world\n\nB: second line\n"

	script := engine.Compute(document, document)

	if len(script) != 1 {
		t.Fatalf("expected a single segment, got %d: %v", len(script), script)
	}
	if script[0].Op != OpEqual {
		t.Errorf("segment op = %v, want %v", script[0].Op, OpEqual)
	}
	if script[0].Text != document {
		t.Errorf("segment text = %q, want %q", script[0].Text, document)
	}
}

func TestComputeEmptyOriginal(t *testing.T) {
	engine := NewSemanticEngine()

	script := engine.Compute("", "A: all new\n")

	if len(script) != 1 {
		t.Fatalf("expected a single segment, got %d: %v", len(script), script)
	}
	if script[0].Op != OpInsert {
		t.Errorf("segment op = %v, want %v", script[0].Op, OpInsert)
	}
	if script[0].Text != "A: all new\n" {
		t.Errorf("segment text = %q, want %q", script[0].Text, "A: all new\n")
	}
}

func TestComputeEmptyModified(t *testing.T) {
	engine := NewSemanticEngine()

	script := engine.Compute("A: all gone\n", "")

	if len(script) != 1 {
		t.Fatalf("expected a single segment, got %d: %v", len(script), script)
	}
	if script[0].Op != OpDelete {
		t.Errorf("segment op = %v, want %v", script[0].Op, OpDelete)
	}
}

func TestComputeDisjoint(t *testing.T) {
	engine := NewSemanticEngine()

	script := engine.Compute("aaaa", "zzzz")

	for _, segment := range script {
		if segment.Op == OpEqual {
			t.Errorf("disjoint inputs produced an equal segment: %q", segment.Text)
		}
	}
	if got := script.Original(); got != "aaaa" {
		t.Errorf("Original() = %q, want %q", got, "aaaa")
	}
	if got := script.Modified(); got != "zzzz" {
		t.Errorf("Modified() = %q, want %q", got, "zzzz")
	}
}

func TestComputeDeterminism(t *testing.T) {
	engine := NewSemanticEngine()
	original := "A: the quick brown fox\n"
	modified := "A: the slow brown dog\n"

	first := engine.Compute(original, modified)
	second := engine.Compute(original, modified)

	if len(first) != len(second) {
		t.Fatalf("segment counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSemanticCleanupWordAlignment(t *testing.T) {
	// "world" -> "there" shares interior characters; the cleanup pass must
	// coalesce the character-level edits into whole-word runs.
	engine := NewSemanticEngine()

	script := engine.Compute("A: hello world\n", "A: hello there\n")

	var deleted, inserted []string
	for _, segment := range script {
		switch segment.Op {
		case OpDelete:
			deleted = append(deleted, segment.Text)
		case OpInsert:
			inserted = append(inserted, segment.Text)
		}
	}

	if len(deleted) != 1 || deleted[0] != "world" {
		t.Errorf("deleted runs = %q, want [\"world\"]", deleted)
	}
	if len(inserted) != 1 || inserted[0] != "there" {
		t.Errorf("inserted runs = %q, want [\"there\"]", inserted)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpEqual, "equal"},
		{OpInsert, "insert"},
		{OpDelete, "delete"},
		{Op(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestScriptStats(t *testing.T) {
	script := Script{
		{Op: OpEqual, Text: "A: hello "},
		{Op: OpDelete, Text: "world"},
		{Op: OpInsert, Text: "there"},
		{Op: OpEqual, Text: "\n"},
	}

	stats := script.Stats()

	if stats.Segments != 4 {
		t.Errorf("Segments = %d, want 4", stats.Segments)
	}
	if stats.EqualChars != 10 {
		t.Errorf("EqualChars = %d, want 10", stats.EqualChars)
	}
	if stats.DeletedChars != 5 {
		t.Errorf("DeletedChars = %d, want 5", stats.DeletedChars)
	}
	if stats.InsertedChars != 5 {
		t.Errorf("InsertedChars = %d, want 5", stats.InsertedChars)
	}
}
