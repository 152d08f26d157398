// Package transcript loads JSON transcript files and flattens them into the
// plain-text documents the diff engine compares.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultField is the entry key holding the spoken text when the caller does
// not name one.
const DefaultField = "transcription"

// speakerKey is the entry key every transcript object must carry.
const speakerKey = "speaker"

// Entry is a single transcript line: who spoke and what they said.
type Entry struct {
	Speaker string
	Text    string
}

// FormatError reports a transcript that is not a JSON array of objects with
// string values.
type FormatError struct {
	// Path is the transcript file, empty when parsed from a reader.
	Path string

	// Err is the underlying decode failure, nil for structural violations.
	Err error

	// Reason describes structural violations not caused by a decode error.
	Reason string
}

func (e *FormatError) Error() string {
	location := e.Path
	if location == "" {
		location = "transcript"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid transcript data: %v", location, e.Err)
	}
	return fmt.Sprintf("%s: invalid transcript data: %s", location, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FieldMissingError reports an entry lacking the speaker key or the
// requested text field.
type FieldMissingError struct {
	// Path is the transcript file, empty when parsed from a reader.
	Path string

	// Index is the zero-based position of the offending entry.
	Index int

	// Field is the missing key.
	Field string
}

func (e *FieldMissingError) Error() string {
	location := e.Path
	if location == "" {
		location = "transcript"
	}
	return fmt.Sprintf("%s: entry %d is missing field %q", location, e.Index, e.Field)
}

// Parse decodes a JSON array of transcript objects from r, extracting the
// speaker and the text field named by field from each entry. Entry order is
// preserved. Any malformed entry fails the whole parse; there is no partial
// recovery.
func Parse(r io.Reader, field string) ([]Entry, error) {
	if field == "" {
		field = DefaultField
	}

	var raw []map[string]json.RawMessage
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, &FormatError{Err: err}
	}

	entries := make([]Entry, 0, len(raw))
	for i, object := range raw {
		speaker, err := stringValue(object, speakerKey, i)
		if err != nil {
			return nil, err
		}
		text, err := stringValue(object, field, i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Speaker: speaker, Text: text})
	}

	return entries, nil
}

// stringValue extracts a required string value from a decoded entry.
func stringValue(object map[string]json.RawMessage, key string, index int) (string, error) {
	raw, ok := object[key]
	if !ok {
		return "", &FieldMissingError{Index: index, Field: key}
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &FormatError{Reason: fmt.Sprintf("entry %d field %q is not a string", index, key)}
	}
	return value, nil
}

// Flatten renders entries as "<speaker>: <text>\n" lines joined with "\n",
// leaving a blank line between entries. No entry is dropped or reordered.
func Flatten(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.Speaker + ": " + entry.Text + "\n"
	}
	return strings.Join(lines, "\n")
}

// Load reads the transcript at path and returns the flattened document for
// the given text field. The file is read once and never mutated.
func Load(path, field string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open transcript: %w", err)
	}
	defer file.Close()

	entries, err := Parse(file, field)
	if err != nil {
		return "", attachPath(err, path)
	}

	return Flatten(entries), nil
}

// attachPath stamps the source path onto parse errors so diagnostics name
// the failing input.
func attachPath(err error, path string) error {
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		formatErr.Path = path
		return formatErr
	}
	var missingErr *FieldMissingError
	if errors.As(err, &missingErr) {
		missingErr.Path = path
		return missingErr
	}
	return err
}
