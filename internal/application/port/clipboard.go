package port

import "context"

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mock_port

// Clipboard defines the port interface for clipboard operations.
// This abstracts platform-specific clipboard tools (wl-clipboard, xclip, xsel).
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error

	// ReadText reads text from the clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	ReadText(ctx context.Context) (string, error)
}
