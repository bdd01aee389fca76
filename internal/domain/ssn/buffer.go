package ssn

// DisplayMode selects how filled digit slots are rendered.
type DisplayMode int

const (
	Visible DisplayMode = iota
	Masked
)

// Toggle returns the other mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Masked {
		return Visible
	}
	return Masked
}

func (m DisplayMode) String() string {
	if m == Masked {
		return "masked"
	}
	return "visible"
}

// Buffer owns the raw digits, the raw caret and the display mode of one field.
// The zero value is an empty, visible buffer.
type Buffer struct {
	value string
	caret int
	mode  DisplayMode
}

// NewBuffer returns a buffer holding value (gated through ApplyEdit) with the
// caret at the end.
func NewBuffer(value string, mode DisplayMode) *Buffer {
	b := &Buffer{mode: mode}
	b.Reset(value)
	return b
}

func (b *Buffer) Value() string { return b.value }
func (b *Buffer) Caret() int { return b.caret }
func (b *Buffer) Mode() DisplayMode { return b.mode }
func (b *Buffer) Len() int { return len(b.value) }
func (b *Buffer) Full() bool { return len(b.value) == MaxDigits }
func (b *Buffer) SetMode(m DisplayMode) { b.mode = m }

// Reset replaces the value. An over-long value leaves the buffer untouched.
func (b *Buffer) Reset(value string) {
	b.value = ApplyEdit(b.value, value)
	b.caret = len(b.value)
}

// Insert proposes text at the caret. Non-digits are dropped; the edit is
// rejected when the result would exceed MaxDigits.
func (b *Buffer) Insert(text string) bool {
	digits := Digits(text)
	if digits == "" {
		return false
	}
	return b.propose(b.value[:b.caret]+digits+b.value[b.caret:], b.caret+len(digits))
}

// Backspace removes the digit before the caret.
func (b *Buffer) Backspace() bool {
	if b.caret == 0 {
		return false
	}
	return b.propose(b.value[:b.caret-1]+b.value[b.caret:], b.caret-1)
}

// Delete removes the digit after the caret.
func (b *Buffer) Delete() bool {
	if b.caret >= len(b.value) {
		return false
	}
	return b.propose(b.value[:b.caret]+b.value[b.caret+1:], b.caret)
}

func (b *Buffer) propose(text string, caret int) bool {
	next := ApplyEdit(b.value, text)
	if next != text {
		return false
	}
	b.value = next
	b.SetCaret(caret)
	return true
}

func (b *Buffer) MoveLeft() { b.SetCaret(b.caret - 1) }
func (b *Buffer) MoveRight() { b.SetCaret(b.caret + 1) }
func (b *Buffer) Home() { b.caret = 0 }
func (b *Buffer) End() { b.caret = len(b.value) }

// SetCaret moves the raw caret, clamped to [0, Len()].
func (b *Buffer) SetCaret(r int) {
	b.caret = clamp(r, 0, len(b.value))
}

// SetCaretFromDisplay moves the caret to the raw offset m reports for display
// offset d.
func (b *Buffer) SetCaretFromDisplay(d int, m OffsetMapping) {
	b.SetCaret(m.DisplayToRaw(clamp(d, 0, DisplayLen)))
}

// Toggle flips the display mode. Value and caret are untouched.
func (b *Buffer) Toggle() {
	b.mode = b.mode.Toggle()
}

// Display renders the value for the current mode.
func (b *Buffer) Display() string {
	return Format(b.value, b.mode == Masked)
}

// DisplayCaret is the caret position within Display().
func (b *Buffer) DisplayCaret(m OffsetMapping) int {
	return m.RawToDisplay(b.caret)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
