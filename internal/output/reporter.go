package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d")).Render("✓")
	errorPrefix   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251")).Render("✗")
)

// Reporter writes user-facing command results. Prefixes are styled only
// when colored is true.
type Reporter struct {
	w       io.Writer
	colored bool
}

// NewReporter creates a Reporter writing to w, styled for the terminal
// when colored is true.
func NewReporter(w io.Writer, colored bool) *Reporter {
	return &Reporter{w: w, colored: colored}
}

// Infof writes a plain informational line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Successf writes a success line.
func (r *Reporter) Successf(format string, args ...any) {
	if r.colored {
		fmt.Fprintf(r.w, "%s %s\n", successPrefix, fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Errorf writes an error line.
func (r *Reporter) Errorf(format string, args ...any) {
	if r.colored {
		fmt.Fprintf(r.w, "%s %s\n", errorPrefix, fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(r.w, format+"\n", args...)
}
