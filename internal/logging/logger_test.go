package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "trace", want: zerolog.TraceLevel},
		{in: "DEBUG", want: zerolog.DebugLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "off", want: zerolog.Disabled},
		{in: "", want: zerolog.InfoLevel},
		{in: "bogus", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("value", "•••-••-6789").Msg("submitted")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"submitted"`)
	assert.Contains(t, out, `"value":"•••-••-6789"`)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf))
	ctx = WithComponent(ctx, "field")

	FromContext(ctx).Info().Msg("ready")
	assert.Contains(t, buf.String(), `"component":"field"`)
}

func TestNewWithFile(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())

	path := filepath.Join(t.TempDir(), "logs", "ssnfield.log")
	logger, cleanup, err = NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json"}, FileConfig{Path: path})
	require.NoError(t, err)
	logger.Info().Msg("hello")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestRotatingFile_Rotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssnfield.log")
	w, err := openRotatingFile(path, 1)
	require.NoError(t, err)
	w.maxSize = 16
	defer func() { _ = w.Close() }()

	_, err = w.Write([]byte("0123456789\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefghij\n"))
	require.NoError(t, err)

	backup, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, "0123456789\n", string(backup))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij\n", string(current))
}
