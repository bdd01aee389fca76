package ssn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawToDisplay(t *testing.T) {
	want := []int{0, 1, 2, 3, 7, 8, 12, 13, 14, 15}
	for r, d := range want {
		assert.Equal(t, d, RawToDisplay(r), "raw offset %d", r)
	}
}

func TestRawToDisplay_Monotonic(t *testing.T) {
	for r := 1; r <= MaxDigits; r++ {
		assert.GreaterOrEqual(t, RawToDisplay(r), RawToDisplay(r-1), "raw offset %d", r)
	}
}

func TestRawToDisplay_BoundariesStayBeforeSeparator(t *testing.T) {
	display := Format("123456789", false)
	assert.Equal(t, " ", string([]rune(display)[RawToDisplay(3)]))
	assert.Equal(t, " ", string([]rune(display)[RawToDisplay(5)]))
}

// The truncating form is pinned value by value; it does not round-trip.
func TestDisplayToRaw_Pinned(t *testing.T) {
	want := []int{0, 0, 1, 1, 2, 2, 3, 2, 2, 3, 3, 4, 4, 3, 4, 4}
	for d, r := range want {
		assert.Equal(t, r, DisplayToRaw(d), "display offset %d", d)
	}

	assert.Equal(t, 3, RawToDisplay(3))
	assert.Equal(t, 1, DisplayToRaw(3))
	assert.Equal(t, 8, RawToDisplay(5))
	assert.Equal(t, 2, DisplayToRaw(8))
}

func TestTruncatingMapping_MatchesFunctions(t *testing.T) {
	var m OffsetMapping = TruncatingMapping{}
	for d := 0; d <= DisplayLen; d++ {
		assert.Equal(t, DisplayToRaw(d), m.DisplayToRaw(d))
	}
	for r := 0; r <= MaxDigits; r++ {
		assert.Equal(t, RawToDisplay(r), m.RawToDisplay(r))
	}
}

func TestExactMapping_RoundTrip(t *testing.T) {
	var m OffsetMapping = ExactMapping{}
	for r := 0; r <= MaxDigits; r++ {
		assert.Equal(t, r, m.DisplayToRaw(m.RawToDisplay(r)), "raw offset %d", r)
	}
}

func TestExactMapping_SeparatorSnapsToBoundary(t *testing.T) {
	m := ExactMapping{}
	tests := []struct {
		display int
		want    int
	}{
		{display: 4, want: 3},
		{display: 5, want: 3},
		{display: 6, want: 3},
		{display: 9, want: 5},
		{display: 10, want: 5},
		{display: 11, want: 5},
		{display: 12, want: 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.DisplayToRaw(tt.display), "display offset %d", tt.display)
	}
}

func TestParseMapping(t *testing.T) {
	m, err := ParseMapping("")
	require.NoError(t, err)
	assert.IsType(t, TruncatingMapping{}, m)

	m, err = ParseMapping(" Exact ")
	require.NoError(t, err)
	assert.IsType(t, ExactMapping{}, m)

	_, err = ParseMapping("nearest")
	require.ErrorIs(t, err, ErrUnknownMapping)
}
