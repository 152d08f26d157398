// Package page assembles the final comparison document from the rendered
// pane fragments and static asset references.
package page

import (
	"fmt"
	"html/template"
	"strings"
)

// Layout classes accepted by the page template's main container.
const (
	// PageWidthFixed constrains the panes to an 80-column layout.
	PageWidthFixed = "page-80-width"

	// PageWidthFull lets the panes span the full window.
	PageWidthFull = "page-full-width"
)

// Context holds every substitution slot of the page template. All slots are
// required; Assemble rejects a context with an empty slot.
type Context struct {
	// HTMLTitle is the browser tab title.
	HTMLTitle string

	// ResetCSS, PygmentsCSS and DiffCSS are filesystem paths to the reset,
	// syntax-highlighting and diff-layout stylesheets.
	ResetCSS    string
	PygmentsCSS string
	DiffCSS     string

	// PageTitle is the heading shown in the topbar.
	PageTitle string

	// OriginalCode and ModifiedCode are the rendered pane fragments. They
	// are injected without further escaping: the renderer already escaped
	// the transcript text, and callers must not pass untrusted markup. This
	// is a documented limitation of the assembler, not something it papers
	// over.
	OriginalCode string
	ModifiedCode string

	// JQueryJS and DiffJS are filesystem paths to the page scripts.
	JQueryJS string
	DiffJS   string

	// PageWidth is the layout class, PageWidthFixed or PageWidthFull.
	PageWidth string
}

// TemplateError reports an assembler context with a missing or invalid slot.
type TemplateError struct {
	// Slot is the offending template slot.
	Slot string

	// Reason describes the violation.
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("page template: slot %q %s", e.Slot, e.Reason)
}

// templateData mirrors Context with the unescaped fragment slots typed as
// template.HTML.
type templateData struct {
	HTMLTitle    string
	ResetCSS     string
	PygmentsCSS  string
	DiffCSS      string
	PageTitle    string
	OriginalCode template.HTML
	ModifiedCode template.HTML
	JQueryJS     string
	DiffJS       string
	PageWidth    string
}

var compiledTemplate = template.Must(template.New("page").Parse(pageTemplate))

// Assemble substitutes the context into the fixed page template and returns
// the complete HTML document. It is pure string substitution: the only
// failure mode is an incomplete context.
func Assemble(ctx Context) (string, error) {
	if err := validate(ctx); err != nil {
		return "", err
	}

	data := templateData{
		HTMLTitle:    ctx.HTMLTitle,
		ResetCSS:     ctx.ResetCSS,
		PygmentsCSS:  ctx.PygmentsCSS,
		DiffCSS:      ctx.DiffCSS,
		PageTitle:    ctx.PageTitle,
		OriginalCode: template.HTML(ctx.OriginalCode),
		ModifiedCode: template.HTML(ctx.ModifiedCode),
		JQueryJS:     ctx.JQueryJS,
		DiffJS:       ctx.DiffJS,
		PageWidth:    ctx.PageWidth,
	}

	var builder strings.Builder
	if err := compiledTemplate.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("failed to execute page template: %w", err)
	}
	return builder.String(), nil
}

// validate checks every required slot before substitution so a bad context
// fails with the slot's name instead of producing a broken page.
func validate(ctx Context) error {
	required := []struct {
		slot  string
		value string
	}{
		{"html_title", ctx.HTMLTitle},
		{"reset_css", ctx.ResetCSS},
		{"pygments_css", ctx.PygmentsCSS},
		{"diff_css", ctx.DiffCSS},
		{"page_title", ctx.PageTitle},
		{"original_code", ctx.OriginalCode},
		{"modified_code", ctx.ModifiedCode},
		{"jquery_js", ctx.JQueryJS},
		{"diff_js", ctx.DiffJS},
		{"page_width", ctx.PageWidth},
	}
	for _, r := range required {
		if r.value == "" {
			return &TemplateError{Slot: r.slot, Reason: "is empty"}
		}
	}

	if ctx.PageWidth != PageWidthFixed && ctx.PageWidth != PageWidthFull {
		return &TemplateError{Slot: "page_width", Reason: fmt.Sprintf("must be %q or %q", PageWidthFixed, PageWidthFull)}
	}
	return nil
}
