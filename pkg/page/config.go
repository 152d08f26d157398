package page

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default output locations in the working directory.
const (
	DefaultOutputHTML = "index.html"
	DefaultOutputPDF  = "output.pdf"
)

// defaultTitle is used for both the tab title and the page heading unless
// configured otherwise.
const defaultTitle = "Transcript Comparison"

// Config holds the run configuration the assembler and CLI share: titles,
// where the static assets live, which transcript field to compare, and where
// the outputs go. It is an explicit value handed into Context building, so
// the assembler itself never consults the working directory.
type Config struct {
	// Title is the page and tab title.
	Title string `yaml:"title,omitempty"`

	// Field is the transcript entry key holding the spoken text.
	Field string `yaml:"field,omitempty"`

	// AssetsDir is the directory holding the reset/diff stylesheets, the
	// syntax-highlighting styles under codeformats/, and the page scripts.
	AssetsDir string `yaml:"assets_dir,omitempty"`

	// SyntaxStyle names the stylesheet under codeformats/ to load.
	SyntaxStyle string `yaml:"syntax_style,omitempty"`

	// FullWidth selects the full-window layout instead of the 80-column one.
	FullWidth bool `yaml:"full_width,omitempty"`

	// OutputHTML and OutputPDF are the output file paths.
	OutputHTML string `yaml:"output_html,omitempty"`
	OutputPDF  string `yaml:"output_pdf,omitempty"`
}

// DefaultConfig returns the configuration the original tool implied: assets
// under workdir/deps, the "vs" syntax style, fixed-width layout, and the
// index.html / output.pdf output pair in the working directory.
func DefaultConfig(workdir string) Config {
	return Config{
		Title:       defaultTitle,
		Field:       "transcription",
		AssetsDir:   filepath.Join(workdir, "deps"),
		SyntaxStyle: "vs",
		OutputHTML:  DefaultOutputHTML,
		OutputPDF:   DefaultOutputPDF,
	}
}

// LoadConfig reads a YAML configuration file and fills unset fields from the
// defaults for workdir.
func LoadConfig(path, workdir string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig(workdir)
	if config.Title == "" {
		config.Title = defaults.Title
	}
	if config.Field == "" {
		config.Field = defaults.Field
	}
	if config.AssetsDir == "" {
		config.AssetsDir = defaults.AssetsDir
	}
	if config.SyntaxStyle == "" {
		config.SyntaxStyle = defaults.SyntaxStyle
	}
	if config.OutputHTML == "" {
		config.OutputHTML = defaults.OutputHTML
	}
	if config.OutputPDF == "" {
		config.OutputPDF = defaults.OutputPDF
	}

	return config, nil
}

// Context builds the assembler context for the two rendered pane fragments.
// The inline style block is prepended to both fragments so the exported PDF
// keeps the add/remove colors without the external stylesheets.
func (c Config) Context(originalCode, modifiedCode string) Context {
	pageWidth := PageWidthFixed
	if c.FullWidth {
		pageWidth = PageWidthFull
	}

	return Context{
		HTMLTitle:    c.Title,
		ResetCSS:     filepath.Join(c.AssetsDir, "reset.css"),
		PygmentsCSS:  filepath.Join(c.AssetsDir, "codeformats", c.SyntaxStyle+".css"),
		DiffCSS:      filepath.Join(c.AssetsDir, "diff.css"),
		PageTitle:    c.Title,
		OriginalCode: StyleBlock + originalCode,
		ModifiedCode: StyleBlock + modifiedCode,
		JQueryJS:     filepath.Join(c.AssetsDir, "jquery.min.js"),
		DiffJS:       filepath.Join(c.AssetsDir, "diff.js"),
		PageWidth:    pageWidth,
	}
}
