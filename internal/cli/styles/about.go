package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ssnfield/internal/domain/build"
	"github.com/bnema/ssnfield/internal/domain/ssn"
)

// AboutRenderer renders build info next to a sample field.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the empty field template as a logo.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := r.theme.Field.
		BorderForeground(r.theme.Accent).
		MarginLeft(2).
		Render(r.theme.Placeholder.Render(ssn.Template))

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	lines := []string{
		fmt.Sprintf("%s %s", keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s", keyStyle.Render("Commit "), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s", keyStyle.Render("Built  "), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s", keyStyle.Render("Go     "), valStyle.Render(info.GoVersion)),
		"",
		keyStyle.Render(build.RepoURL()),
		fmt.Sprintf("%s %s", keyStyle.Render("Made by"), valStyle.Render(strings.Join(build.Contributors(), ", "))),
	}

	return strings.Join(lines, "\n")
}
