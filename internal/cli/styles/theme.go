// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ssnfield/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ColorPalette)
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	// Additional semantic colors
	Error lipgloss.Color

	// Pre-built styles
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	// Field styles
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Digit        lipgloss.Style
	Placeholder  lipgloss.Style
	Toggle       lipgloss.Style
	ToggleActive lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from the appearance section.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	p := a.Palette
	if p.Text == "" {
		p = config.DefaultPalette()
	}

	t := &Theme{
		Text:   lipgloss.Color(p.Text),
		Muted:  lipgloss.Color(p.Muted),
		Accent: lipgloss.Color(p.Accent),
		Border: lipgloss.Color(p.Border),

		// Not configurable
		Error: lipgloss.Color("#ef4444"),
	}

	t.buildStyles(borderFor(a.Border), a.Bold)
	return t
}

func borderFor(style config.BorderStyle) lipgloss.Border {
	switch style {
	case config.BorderNormal:
		return lipgloss.NormalBorder()
	case config.BorderThick:
		return lipgloss.ThickBorder()
	case config.BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles(border lipgloss.Border, bold bool) {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.Field = lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(t.Muted).
		Padding(0, 1)

	t.FieldFocused = t.Field.
		BorderForeground(t.Border)

	t.Digit = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(bold)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Toggle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.ToggleActive = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}
