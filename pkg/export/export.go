// Package export writes the assembled page to disk and drives the external
// HTML-to-PDF conversion through wkhtmltopdf.
package export

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/sirupsen/logrus"
)

// Error reports a failed export stage together with the output it was
// producing.
type Error struct {
	// Stage is "html" or "pdf".
	Stage string

	// Path is the output file being written.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Stage, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// WriteHTML writes the assembled document to path. The file handle is
// released on every exit path; a partially written file left behind by a
// failure is not a success signal, only the returned error is.
func WriteHTML(path, html string) error {
	file, err := os.Create(path)
	if err != nil {
		return &Error{Stage: "html", Path: path, Err: err}
	}

	if _, err := file.WriteString(html); err != nil {
		file.Close()
		return &Error{Stage: "html", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &Error{Stage: "html", Path: path, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(html),
	}).Info("wrote comparison page")
	return nil
}

// PDF converts the assembled document to a PDF file at outputPath using the
// wkhtmltopdf binary, with local file access enabled so the page's
// stylesheet and script references resolve. The conversion is opaque to the
// rest of the pipeline; ctx carries the only timeout the run honors.
func PDF(ctx context.Context, html, outputPath string) error {
	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return &Error{Stage: "pdf", Path: outputPath, Err: err}
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	generator.AddPage(page)

	start := time.Now()
	if err := generator.CreateContext(ctx); err != nil {
		return &Error{Stage: "pdf", Path: outputPath, Err: err}
	}
	if err := generator.WriteFile(outputPath); err != nil {
		return &Error{Stage: "pdf", Path: outputPath, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"path":     outputPath,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("wrote comparison PDF")
	return nil
}
