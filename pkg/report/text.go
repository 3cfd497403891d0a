package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depscan/pkg/scan"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - outdated
	colorGray   = lipgloss.Color("245") // Gray - secondary text
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

// TextWriter renders the console report. Colors are applied only when the
// destination is a terminal.
type TextWriter struct{}

type textStyles struct {
	title, success, outdated, warning, dim lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title:    r.NewStyle().Bold(true).Foreground(colorCyan),
		success:  r.NewStyle().Foreground(colorGreen),
		outdated: r.NewStyle().Foreground(colorRed),
		warning:  r.NewStyle().Foreground(colorYellow),
		dim:      r.NewStyle().Foreground(colorGray),
	}
}

func (TextWriter) Write(w io.Writer, r *scan.Report) error {
	st := newTextStyles(w)
	p := &printer{w: w}

	p.printf("%s\n", st.title.Render(fmt.Sprintf("Scanning dependencies in %s...", r.Directory)))

	for _, s := range r.Sections {
		p.printf("\n%s\n", st.title.Render(fmt.Sprintf("Checking %s dependencies...", s.Title)))
		if s.Failed() {
			p.printf("%s %s: %s\n", st.warning.Render(iconWarning), s.Manifest, s.Error)
			continue
		}
		for _, e := range s.Entries {
			p.printf("%s %s %s -> %s\n",
				st.outdated.Render(iconError),
				e.Package,
				st.dim.Render("("+e.Current+")"),
				"(Latest: "+e.Latest+")")
		}
	}

	if !r.ManifestsFound() {
		p.printf("\n%s\n", st.dim.Render("No dependency manifests found"))
	}
	if r.UpToDate() {
		p.printf("\n%s %s\n", st.success.Render(iconSuccess), "All dependencies are up to date!")
	}
	return p.err
}

// printer remembers the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
