package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/ssnfield/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	status := r.theme.Highlight.Render("found")
	if !exists {
		status = r.theme.ErrorStyle.Render("missing")
	}
	return fmt.Sprintf("\n  Config %s (%s)\n", r.theme.Subtle.Render(path), status)
}

// RenderConfig renders the effective configuration as key/value lines.
func (r *ConfigRenderer) RenderConfig(cfg *config.Config) string {
	p := cfg.Appearance.Palette
	rows := [][2]string{
		{"appearance.palette.text", p.Text},
		{"appearance.palette.muted", p.Muted},
		{"appearance.palette.accent", p.Accent},
		{"appearance.palette.border", p.Border},
		{"appearance.border", string(cfg.Appearance.Border)},
		{"appearance.bold", fmt.Sprint(cfg.Appearance.Bold)},
		{"field.start_masked", fmt.Sprint(cfg.Field.StartMasked)},
		{"field.caret_mapping", cfg.Field.CaretMapping},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.file", cfg.Logging.File},
		{"logging.max_size_mb", fmt.Sprint(cfg.Logging.MaxSizeMB)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %s  %s\n",
			r.theme.Subtle.Render(fmt.Sprintf("%-*s", width, row[0])),
			r.theme.Highlight.Render(row[1]),
		)
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render("Error:"), err.Error())
}
