package styles_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/infrastructure/config"
)

func TestFormatRenderer_CaretMarkerAlignsWithDisplay(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewFormatRenderer(theme)

	out := ansi.Strip(r.RenderDisplay("123 - 4X - XXXX", 7))
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	display, marker := lines[1], lines[2]
	dcol := strings.Index(display, "123")
	mcol := strings.Index(marker, "^")
	require.GreaterOrEqual(t, dcol, 0)
	assert.Equal(t, dcol+7, mcol)
}

func TestFormatRenderer_Render(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewFormatRenderer(theme)

	out := ansi.Strip(r.Render(styles.FieldReport{
		Value:        "12345678",
		Display:      "123 - 45 - 678X",
		Decorated:    "123 - 45 - 678",
		Caret:        8,
		DisplayCaret: 14,
		Rejected:     []string{"1234567890"},
	}))
	assert.Contains(t, out, "123 - 45 - 678X")
	assert.Contains(t, out, "raw 8, display 14")
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "1234567890")
}
