// Package ssn formats a 9-digit Social Security Number into the fixed
// "XXX - XX - XXXX" layout and maps caret positions between the raw digits
// and the decorated text.
package ssn

import "strings"

const (
	// Placeholder fills template slots that have no digit yet.
	Placeholder = 'X'
	// MaskChar replaces digits in masked mode.
	MaskChar = '•'
	// Separator is inserted between digit groups.
	Separator = " - "
	// Template is the empty display string.
	Template = "XXX - XX - XXXX"
	// MaxDigits is the maximum raw length.
	MaxDigits = 9
	// DisplayLen is the rune length of every formatted string.
	DisplayLen = 15
)

// Digits returns the decimal digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ApplyEdit gates a proposed edit of the raw value.
// The digits of proposed become the new value unless there are more than
// MaxDigits of them, in which case current is returned unchanged.
func ApplyEdit(current, proposed string) string {
	digits := Digits(proposed)
	if len(digits) > MaxDigits {
		return current
	}
	return digits
}

// Format overlays raw onto Template. Filled slots show the digit, or MaskChar
// when masked; the remaining slots keep Placeholder. The result is always
// DisplayLen runes.
//
//	Format("", false)          -> "XXX - XX - XXXX"
//	Format("123", false)       -> "123 - XX - XXXX"
//	Format("123456789", true)  -> "••• - •• - ••••"
func Format(raw string, masked bool) string {
	digits := Digits(raw)
	if len(digits) > MaxDigits {
		digits = digits[:MaxDigits]
	}

	var b strings.Builder
	b.Grow(len(Template) + DisplayLen*2)
	next := 0
	for _, c := range Template {
		switch {
		case c != Placeholder:
			b.WriteRune(c)
		case next < len(digits):
			if masked {
				b.WriteRune(MaskChar)
			} else {
				b.WriteByte(digits[next])
			}
			next++
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Decorate inserts Separator before raw index 3 and 5 without padding the
// remaining slots. Digits past MaxDigits are dropped. The rune length of the
// result equals RawToDisplay(len(raw)) for any raw of digits.
func Decorate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 2*len(Separator))
	for i, c := range []rune(raw) {
		if i == 3 || i == 5 {
			b.WriteString(Separator)
		}
		if i < MaxDigits {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ToMasked replaces every rune other than '-' and ' ' with MaskChar.
func ToMasked(decorated string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return r
		}
		return MaskChar
	}, decorated)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
