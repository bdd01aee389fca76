package styles

import (
	"fmt"
	"strings"
)

// FieldReport is what the format command prints for one render.
type FieldReport struct {
	Value        string
	Display      string
	Decorated    string
	Caret        int
	DisplayCaret int
	Rejected     []string
}

// FormatRenderer renders non-interactive field output.
type FormatRenderer struct {
	theme *Theme
}

// NewFormatRenderer creates a new format renderer with the given theme.
func NewFormatRenderer(theme *Theme) *FormatRenderer {
	return &FormatRenderer{theme: theme}
}

// RenderDisplay renders the display string with a caret marker line below it.
func (r *FormatRenderer) RenderDisplay(display string, displayCaret int) string {
	marker := strings.Repeat(" ", displayCaret) + "^"
	return r.theme.Field.Render(display+"\n"+r.theme.HelpKey.Render(marker))
}

// Render renders the full report.
func (r *FormatRenderer) Render(rep FieldReport) string {
	var sb strings.Builder
	sb.WriteString(r.RenderDisplay(rep.Display, rep.DisplayCaret))
	sb.WriteString("\n")

	line := func(k, v string) {
		fmt.Fprintf(&sb, "  %s %s\n", r.theme.Subtle.Render(fmt.Sprintf("%-10s", k)), r.theme.Highlight.Render(v))
	}
	line("decorated", rep.Decorated)
	line("caret", fmt.Sprintf("raw %d, display %d", rep.Caret, rep.DisplayCaret))
	for _, rej := range rep.Rejected {
		fmt.Fprintf(&sb, "  %s %s\n", r.theme.ErrorStyle.Render("rejected  "), rej)
	}
	return sb.String()
}
