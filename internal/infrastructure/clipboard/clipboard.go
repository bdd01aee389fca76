// Package clipboard provides a clipboard adapter using wl-clipboard (Wayland) with X11 fallback.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/ssnfield/internal/application/port"
	"github.com/bnema/ssnfield/internal/logging"
)

// ErrClipboardUnavailable is returned when no clipboard tool was found.
var ErrClipboardUnavailable = errors.New("no clipboard tool available (install wl-clipboard, xclip or xsel)")

// tool describes how to drive one clipboard program.
type tool struct {
	copyBin   string
	copyArgs  []string
	pasteBin  string
	pasteArgs []string
}

var (
	wayland = tool{copyBin: "wl-copy", pasteBin: "wl-paste", pasteArgs: []string{"--no-newline"}}
	xclip   = tool{
		copyBin: "xclip", copyArgs: []string{"-selection", "clipboard"},
		pasteBin: "xclip", pasteArgs: []string{"-selection", "clipboard", "-o"},
	}
	xsel = tool{
		copyBin: "xsel", copyArgs: []string{"--clipboard", "--input"},
		pasteBin: "xsel", pasteArgs: []string{"--clipboard", "--output"},
	}
)

// Adapter implements port.Clipboard using system clipboard tools.
type Adapter struct {
	copyCmd   string
	copyArgs  []string
	pasteCmd  string
	pasteArgs []string
}

// New creates a new clipboard adapter.
// Detects Wayland vs X11 and selects appropriate clipboard tool.
func New() port.Clipboard {
	return detect(os.Getenv, exec.LookPath)
}

func detect(getenv func(string) string, lookPath func(string) (string, error)) *Adapter {
	var candidates []tool
	if getenv("WAYLAND_DISPLAY") != "" {
		candidates = append(candidates, wayland)
	}
	if getenv("DISPLAY") != "" {
		candidates = append(candidates, xclip, xsel)
	}

	for _, t := range candidates {
		copyPath, err := lookPath(t.copyBin)
		if err != nil {
			continue
		}
		pastePath, err := lookPath(t.pasteBin)
		if err != nil {
			continue
		}
		return &Adapter{
			copyCmd:   copyPath,
			copyArgs:  t.copyArgs,
			pasteCmd:  pastePath,
			pasteArgs: t.pasteArgs,
		}
	}
	return &Adapter{}
}

// Available reports whether a clipboard tool was found.
func (a *Adapter) Available() bool {
	return a.copyCmd != "" && a.pasteCmd != ""
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.copyCmd == "" {
		log.Debug().Err(ErrClipboardUnavailable).Msg("clipboard write failed")
		return ErrClipboardUnavailable
	}

	cmd := exec.CommandContext(ctx, a.copyCmd, a.copyArgs...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", a.copyCmd).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write: %w", err)
	}

	log.Debug().Str("tool", a.copyCmd).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	if a.pasteCmd == "" {
		log.Debug().Err(ErrClipboardUnavailable).Msg("clipboard read failed")
		return "", ErrClipboardUnavailable
	}

	out, err := exec.CommandContext(ctx, a.pasteCmd, a.pasteArgs...).Output()
	if err != nil {
		log.Debug().Err(err).Str("tool", a.pasteCmd).Msg("clipboard read failed (may be empty)")
		return "", fmt.Errorf("clipboard read: %w", err)
	}

	log.Debug().Str("tool", a.pasteCmd).Int("len", len(out)).Msg("clipboard read success")
	return string(out), nil
}
