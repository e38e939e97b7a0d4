package scan

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// TextFormatter writes diagnostics one per line, in the order given.
type TextFormatter struct {
	color bool
}

// NewTextFormatter creates a text formatter with optional colored labels.
// When color is true, labels are colored even if w is not a terminal.
func NewTextFormatter(color bool) *TextFormatter {
	return &TextFormatter{color: color}
}

// Format writes each diagnostic to w on its own line.
func (f *TextFormatter) Format(w io.Writer, diags []Diagnostic) error {
	labels := f.labels(w)
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, labels.line(d)); err != nil {
			return err
		}
	}
	return nil
}

type labelStyles struct {
	styleLabel lipgloss.Style
	errorLabel lipgloss.Style
	on         bool
}

// labels binds the label styles to w with a fixed ANSI profile, so the
// choice made by the caller is not overridden by terminal detection.
func (f *TextFormatter) labels(w io.Writer) labelStyles {
	if !f.color {
		return labelStyles{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return labelStyles{
		styleLabel: r.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		errorLabel: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		on:         true,
	}
}

func (l labelStyles) line(d Diagnostic) string {
	if !l.on {
		return d.String()
	}
	label := d.Kind.String()
	switch d.Kind {
	case KindError:
		label = l.errorLabel.Render(label)
	case KindStyle:
		label = l.styleLabel.Render(label)
	}
	return fmt.Sprintf("%s: %s at line %d in \"%s\"", label, d.Description, d.Line, d.Path)
}
