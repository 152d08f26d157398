// Package render turns an edit script into the two HTML pane fragments shown
// side by side on the comparison page.
package render

import (
	"html"
	"strings"

	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/diff"
)

// View selects which side of the comparison a fragment represents.
type View int

const (
	// ViewOriginal keeps equal and deleted text; deletions are marked.
	ViewOriginal View = iota

	// ViewModified keeps equal and inserted text; insertions are marked.
	ViewModified
)

// String returns a human-readable label for the view.
func (v View) String() string {
	if v == ViewModified {
		return "modified"
	}
	return "original"
}

// Marker spans wrapping edited text. The class names are what the diff
// stylesheet and the inline color block target.
const (
	RemoveOpen = `<span class="remove">`
	AddOpen    = `<span class="add">`
	SpanClose  = `</span>`

	containerOpen  = `<body><p class="text">`
	containerClose = `</p></body>`
)

// Render walks the script once, in order, and accumulates the fragment for
// the given view: equal text is kept verbatim in both views, deleted text
// appears only in the original view wrapped in a removal marker, inserted
// text only in the modified view wrapped in an addition marker. Segment text
// is HTML-escaped, literal newlines become <br> so the fragment renders as
// multiple lines inside one block container, and the whole fragment is
// wrapped once in the container markers.
//
// Render is a pure, total function of (script, view); it has no error cases
// for a well-formed script.
func Render(script diff.Script, view View) string {
	var builder strings.Builder
	builder.WriteString(containerOpen)

	for _, segment := range script {
		switch segment.Op {
		case diff.OpEqual:
			builder.WriteString(html.EscapeString(segment.Text))
		case diff.OpDelete:
			if view == ViewOriginal {
				builder.WriteString(RemoveOpen)
				builder.WriteString(html.EscapeString(segment.Text))
				builder.WriteString(SpanClose)
			}
		case diff.OpInsert:
			if view == ViewModified {
				builder.WriteString(AddOpen)
				builder.WriteString(html.EscapeString(segment.Text))
				builder.WriteString(SpanClose)
			}
		}
	}

	fragment := strings.ReplaceAll(builder.String(), "\n", "<br>")
	return fragment + containerClose
}
