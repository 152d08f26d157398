package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/diff"
	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/export"
	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/page"
	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/render"
	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/transcript"
	"github.com/lucasgsfelix/diff2HtmlCompare/pkg/watch"
)

var version = "0.1.0"

// Styles for the run summary printed after each comparison.
var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// options collects the flag values for a run.
type options struct {
	field      string
	outputHTML string
	outputPDF  string
	noPDF      bool
	title      string
	fullWidth  bool
	assetsDir  string
	configPath string
	watchFiles bool
	pdfTimeout time.Duration
	verbose    bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "diffcompare <original.json> <modified.json>",
		Short: "Compare two JSON transcripts as a highlighted HTML page and PDF",
		Long: `Diffcompare loads two JSON transcripts, flattens each into speaker-labeled
text, computes a character-level diff with semantic cleanup, and renders the
result as a side-by-side HTML comparison page. Deleted text is marked in the
original pane and inserted text in the modified pane.

The page is written as HTML and, unless disabled, also exported to PDF through
the wkhtmltopdf binary, which must be on PATH.

Example:
  diffcompare before.json after.json
  diffcompare before.json after.json --field summary --title "Weekly Review"
  diffcompare before.json after.json --watch --no-pdf`,
		Version: version,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.field, "field", transcript.DefaultField, "transcript entry key holding the spoken text")
	cmd.Flags().StringVarP(&opts.outputHTML, "output", "o", page.DefaultOutputHTML, "output HTML file")
	cmd.Flags().StringVar(&opts.outputPDF, "pdf", page.DefaultOutputPDF, "output PDF file")
	cmd.Flags().BoolVar(&opts.noPDF, "no-pdf", false, "skip the PDF export")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title")
	cmd.Flags().BoolVar(&opts.fullWidth, "full-width", false, "use the full window width instead of the 80-column layout")
	cmd.Flags().StringVar(&opts.assetsDir, "assets", "", "directory holding the page stylesheets and scripts (default <cwd>/deps)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().BoolVarP(&opts.watchFiles, "watch", "w", false, "regenerate whenever either transcript changes")
	cmd.Flags().DurationVar(&opts.pdfTimeout, "timeout", 2*time.Minute, "PDF conversion timeout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, originalPath, modifiedPath string) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	config, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	once := func() error {
		return runOnce(config, opts, originalPath, modifiedPath)
	}

	if err := once(); err != nil {
		return err
	}
	if !opts.watchFiles {
		return nil
	}

	watcher, err := watch.New(once, originalPath, modifiedPath)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Println(mutedStyle.Render("watching for changes, press Ctrl-C to stop"))
	return watcher.Run(ctx)
}

// buildConfig merges the configuration file, the defaults for the working
// directory, and any flags the user set explicitly. Flags win over the file.
func buildConfig(cmd *cobra.Command, opts *options) (page.Config, error) {
	workdir, err := os.Getwd()
	if err != nil {
		return page.Config{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	config := page.DefaultConfig(workdir)
	if opts.configPath != "" {
		config, err = page.LoadConfig(opts.configPath, workdir)
		if err != nil {
			return page.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("field") {
		config.Field = opts.field
	}
	if flags.Changed("output") {
		config.OutputHTML = opts.outputHTML
	}
	if flags.Changed("pdf") {
		config.OutputPDF = opts.outputPDF
	}
	if flags.Changed("title") {
		config.Title = opts.title
	}
	if flags.Changed("full-width") {
		config.FullWidth = opts.fullWidth
	}
	if flags.Changed("assets") {
		config.AssetsDir = opts.assetsDir
	}
	return config, nil
}

// runOnce executes the whole pipeline for one pair of transcripts.
func runOnce(config page.Config, opts *options, originalPath, modifiedPath string) error {
	original, err := transcript.Load(originalPath, config.Field)
	if err != nil {
		return err
	}
	modified, err := transcript.Load(modifiedPath, config.Field)
	if err != nil {
		return err
	}

	engine := diff.NewSemanticEngine()
	script := engine.Compute(original, modified)

	originalPane := render.Render(script, render.ViewOriginal)
	modifiedPane := render.Render(script, render.ViewModified)

	document, err := page.Assemble(config.Context(originalPane, modifiedPane))
	if err != nil {
		return err
	}
	if err := export.WriteHTML(config.OutputHTML, document); err != nil {
		return err
	}

	if !opts.noPDF {
		ctx, cancel := context.WithTimeout(context.Background(), opts.pdfTimeout)
		defer cancel()
		if err := export.PDF(ctx, document, config.OutputPDF); err != nil {
			return err
		}
	}

	printSummary(script.Stats(), config, opts.noPDF)
	return nil
}

func printSummary(stats diff.Stats, config page.Config, skippedPDF bool) {
	fmt.Println(headingStyle.Render("Comparison complete"))
	fmt.Printf("  %s %d chars\n", addStyle.Render("added:"), stats.InsertedChars)
	fmt.Printf("  %s %d chars\n", removeStyle.Render("removed:"), stats.DeletedChars)
	fmt.Printf("  %s %d chars in %d segments\n", mutedStyle.Render("unchanged:"), stats.EqualChars, stats.Segments)
	fmt.Printf("  html: %s\n", config.OutputHTML)
	if skippedPDF {
		fmt.Println(mutedStyle.Render("  pdf: skipped"))
	} else {
		fmt.Printf("  pdf: %s\n", config.OutputPDF)
	}
}
