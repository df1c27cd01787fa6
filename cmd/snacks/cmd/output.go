package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// printer renders command results in the configured output format
type printer struct {
	out       io.Writer
	format    string
	precision int
	styles    styles
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()

	renderer := lipgloss.NewRenderer(out)
	if useColor(out, cfg.Output.Color) {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		out:       out,
		format:    cfg.Output.Format,
		precision: cfg.Output.Precision,
		styles:    newStyles(renderer),
	}
}

// useColor reports whether styled output should be written to out
func useColor(out io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// print writes data as JSON or YAML, or calls text for the text format
func (p *printer) print(data any, text func()) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

// number formats n with the configured precision; -1 is the shortest exact form
func (p *printer) number(n float64) string {
	if p.precision < 0 {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', p.precision, 64)
}

func (p *printer) value(n float64) {
	fmt.Fprintln(p.out, p.styles.Value.Render(p.number(n)))
}

func (p *printer) field(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Label.Render(label+":"), value)
}

func (p *printer) title(title string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(title))
}
