package ssn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMapping is returned by ParseMapping for an unsupported name.
var ErrUnknownMapping = errors.New("unknown caret mapping")

// Mapping names accepted by ParseMapping.
const (
	MappingTruncating = "truncating"
	MappingExact      = "exact"
)

// OffsetMapping translates caret offsets between raw digits and the
// decorated display string. Inputs are expected in [0, MaxDigits] for raw
// offsets and [0, DisplayLen] for display offsets.
type OffsetMapping interface {
	RawToDisplay(offset int) int
	DisplayToRaw(offset int) int
}

// RawToDisplay places raw offset r in the decorated string. Offsets that land
// exactly on a group boundary (3 or 5) stay before the separator.
func RawToDisplay(r int) int {
	switch {
	case r <= 3:
		return r
	case r <= 5:
		return r + 3
	default:
		return r + 6
	}
}

// DisplayToRaw maps a display offset back to raw space using truncating
// division. It is not an exact inverse of RawToDisplay:
//
//	RawToDisplay(3) == 3, DisplayToRaw(3) == 1
//
// Offsets inside a separator snap toward the lower raw offset.
func DisplayToRaw(d int) int {
	switch {
	case d <= 6:
		return d / 2
	case d <= 12:
		return (d - 3) / 2
	default:
		return (d - 6) / 2
	}
}

// TruncatingMapping is the default OffsetMapping built on RawToDisplay and
// DisplayToRaw.
type TruncatingMapping struct{}

func (TruncatingMapping) RawToDisplay(offset int) int { return RawToDisplay(offset) }
func (TruncatingMapping) DisplayToRaw(offset int) int { return DisplayToRaw(offset) }

// ExactMapping shares RawToDisplay but inverts it exactly. A display offset
// inside a separator snaps to the raw boundary in front of it.
type ExactMapping struct{}

func (ExactMapping) RawToDisplay(offset int) int { return RawToDisplay(offset) }

func (ExactMapping) DisplayToRaw(d int) int {
	sep := len(Separator)
	switch {
	case d <= 3:
		return d
	case d < 3+sep:
		return 3
	case d <= 5+sep:
		return d - sep
	case d < 5+2*sep:
		return 5
	default:
		return d - 2*sep
	}
}

// ParseMapping returns the OffsetMapping registered under name.
// An empty name selects TruncatingMapping.
func ParseMapping(name string) (OffsetMapping, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MappingTruncating:
		return TruncatingMapping{}, nil
	case MappingExact:
		return ExactMapping{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMapping, name)
	}
}
