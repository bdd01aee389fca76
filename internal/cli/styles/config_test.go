package styles_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/infrastructure/config"
)

func TestConfigRenderer_RenderPath(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := ansi.Strip(r.RenderPath("/tmp/ssnfield/config.toml", false))
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "missing")
}

func TestConfigRenderer_RenderConfig(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := ansi.Strip(r.RenderConfig(config.DefaultConfig()))
	require.Contains(t, out, "field.caret_mapping")
	require.Contains(t, out, "truncating")
	require.Contains(t, out, "appearance.border")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := ansi.Strip(r.RenderError(errors.New("boom")))
	require.Contains(t, out, "Error:")
	require.Contains(t, out, "boom")
}
