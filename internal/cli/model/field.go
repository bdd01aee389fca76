// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/bnema/ssnfield/internal/application/port"
	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/logging"
)

const (
	fieldTitle     = "Social Security Number"
	toggleGap      = "  "
	toggleShowText = "[show]"
	toggleHideText = "[hide]"

	zoneText   = "text"
	zoneToggle = "toggle"
)

// SubmittedMsg is emitted when the user triggers the "done" action.
type SubmittedMsg struct {
	Event port.FieldEvent
}

// ThemeChangedMsg swaps the theme, e.g. after a config reload.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

type clipboardReadMsg struct {
	text string
	err  error
}

type clipboardWriteMsg struct {
	err error
}

// FieldModelConfig configures a FieldModel.
type FieldModelConfig struct {
	Value        string
	Masked       bool
	Mapping      ssn.OffsetMapping
	Clipboard    port.Clipboard
	Observer     port.FieldObserver
	QuitOnSubmit bool
	// Zones tracks clickable regions. A private manager is created when nil.
	Zones *zone.Manager
}

// FieldModel is the Bubble Tea model for the SSN input field.
type FieldModel struct {
	// UI components
	cursor cursor.Model
	help   help.Model
	keys   styles.FieldKeyMap

	// State
	buf       ssn.Buffer
	focused   bool
	submitted bool
	cancelled bool
	status    string
	err       error
	width     int

	// Config
	mapping      ssn.OffsetMapping
	quitOnSubmit bool
	zones        *zone.Manager
	zonePrefix   string

	// Dependencies
	ctx       context.Context
	clipboard port.Clipboard
	observer  port.FieldObserver
	theme     *styles.Theme
}

// NewFieldModel creates a focused field model.
func NewFieldModel(ctx context.Context, theme *styles.Theme, cfg FieldModelConfig) FieldModel {
	mode := ssn.Visible
	if cfg.Masked {
		mode = ssn.Masked
	}
	mapping := cfg.Mapping
	if mapping == nil {
		mapping = ssn.TruncatingMapping{}
	}

	zones := cfg.Zones
	if zones == nil {
		zones = zone.New()
	}

	m := FieldModel{
		cursor:       cursor.New(),
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultFieldKeyMap(),
		buf:          *ssn.NewBuffer(cfg.Value, mode),
		mapping:      mapping,
		quitOnSubmit: cfg.QuitOnSubmit,
		zones:        zones,
		zonePrefix:   zones.NewPrefix(),
		ctx:          logging.WithComponent(ctx, "field"),
		clipboard:    cfg.Clipboard,
		observer:     cfg.Observer,
		theme:        theme,
		width:        80,
	}
	m.applyTheme()
	m.Focus()
	return m
}

func (m *FieldModel) applyTheme() {
	m.cursor.Style = lipgloss.NewStyle().Foreground(m.theme.Accent)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
}

// Focus focuses the field and starts the caret blinking.
func (m *FieldModel) Focus() tea.Cmd {
	m.focused = true
	return m.cursor.Focus()
}

// Blur removes focus; the caret is hidden.
func (m *FieldModel) Blur() {
	m.focused = false
	m.cursor.Blur()
}

func (m FieldModel) Value() string { return m.buf.Value() }
func (m FieldModel) Caret() int { return m.buf.Caret() }
func (m FieldModel) Mode() ssn.DisplayMode { return m.buf.Mode() }
func (m FieldModel) Display() string { return m.buf.Display() }
func (m FieldModel) DisplayCaret() int { return m.buf.DisplayCaret(m.mapping) }
func (m FieldModel) Submitted() bool { return m.submitted }
func (m FieldModel) Cancelled() bool { return m.cancelled }
func (m FieldModel) Err() error { return m.err }
func (m FieldModel) Event() port.FieldEvent { return m.event() }

// Init implements tea.Model.
func (m FieldModel) Init() tea.Cmd {
	return cursor.Blink
}

// Update implements tea.Model.
func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.applyTheme()
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case clipboardReadMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.insert(msg.text)
		return m, nil

	case clipboardWriteMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "copied"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return m, cmd
}

func (m FieldModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Toggle):
		m.buf.Toggle()
		m.notifyChange()

	case key.Matches(msg, m.keys.Paste):
		return m, m.readClipboard()

	case key.Matches(msg, m.keys.Copy):
		return m, m.writeClipboard()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Backspace):
		if m.buf.Backspace() {
			m.notifyChange()
		}

	case key.Matches(msg, m.keys.Delete):
		if m.buf.Delete() {
			m.notifyChange()
		}

	case key.Matches(msg, m.keys.Left):
		m.buf.MoveLeft()

	case key.Matches(msg, m.keys.Right):
		m.buf.MoveRight()

	case key.Matches(msg, m.keys.Home):
		m.buf.Home()

	case key.Matches(msg, m.keys.End):
		m.buf.End()

	case msg.Type == tea.KeyRunes:
		m.insert(string(msg.Runes))
	}

	return m, nil
}

// insert pushes typed or pasted text through the buffer gate. Rejected
// edits are dropped without feedback.
func (m *FieldModel) insert(text string) {
	if m.buf.Insert(text) {
		m.notifyChange()
		return
	}
	if ssn.Digits(text) != "" {
		logging.FromContext(m.ctx).Debug().
			Int("current_len", m.buf.Len()).
			Int("inserted_digits", len(ssn.Digits(text))).
			Msg("edit rejected")
	}
}

func (m FieldModel) submit() (tea.Model, tea.Cmd) {
	ev := m.event()
	if m.observer != nil {
		if err := m.observer.OnSubmit(m.ctx, ev); err != nil {
			m.err = err
			return m, nil
		}
	}
	m.submitted = true
	logging.FromContext(m.ctx).Info().
		Str("value", ssn.Format(ev.Value, true)).
		Int("digits", len(ev.Value)).
		Msg("field submitted")

	if m.quitOnSubmit {
		return m, tea.Quit
	}
	return m, func() tea.Msg { return SubmittedMsg{Event: ev} }
}

func (m FieldModel) readClipboard() tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	ctx, cb := m.ctx, m.clipboard
	return func() tea.Msg {
		text, err := cb.ReadText(ctx)
		return clipboardReadMsg{text: text, err: err}
	}
}

func (m FieldModel) writeClipboard() tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	ctx, cb, value := m.ctx, m.clipboard, m.buf.Value()
	return func() tea.Msg {
		return clipboardWriteMsg{err: cb.WriteText(ctx, value)}
	}
}

func (m FieldModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if z := m.zones.Get(m.zoneID(zoneText)); z != nil && z.InBounds(msg) {
		col, _ := z.Pos(msg)
		m.buf.SetCaretFromDisplay(columnToOffset(m.buf.Display(), col), m.mapping)
		if !m.focused {
			return m, m.Focus()
		}
		return m, nil
	}

	if z := m.zones.Get(m.zoneID(zoneToggle)); z != nil && z.InBounds(msg) {
		m.buf.Toggle()
		m.notifyChange()
	}
	return m, nil
}

func (m FieldModel) zoneID(name string) string {
	return m.zonePrefix + name
}

// columnToOffset converts a terminal column inside s to a rune offset.
// Columns past the end map to the rune count of s.
func columnToOffset(s string, col int) int {
	if col <= 0 {
		return 0
	}
	offset, width, state := 0, 0, -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > col {
			return offset
		}
		width += w
		offset += utf8.RuneCountInString(cluster)
	}
	return offset
}

func (m FieldModel) event() port.FieldEvent {
	return port.FieldEvent{
		Value: m.buf.Value(),
		Caret: m.buf.Caret(),
		Mode:  m.buf.Mode(),
	}
}

func (m FieldModel) notifyChange() {
	if m.observer != nil {
		m.observer.OnChange(m.ctx, m.event())
	}
}

func (m FieldModel) toggleText() string {
	if m.buf.Mode() == ssn.Masked {
		return toggleShowText
	}
	return toggleHideText
}

// View implements tea.Model.
func (m FieldModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(fieldTitle))
	b.WriteString("\n")

	toggleStyle := m.theme.Toggle
	if m.buf.Mode() == ssn.Masked {
		toggleStyle = m.theme.ToggleActive
	}
	row := m.zones.Mark(m.zoneID(zoneText), m.renderText()) +
		toggleGap +
		m.zones.Mark(m.zoneID(zoneToggle), toggleStyle.Render(m.toggleText()))

	box := m.theme.Field
	if m.focused {
		box = m.theme.FieldFocused
	}
	b.WriteString(box.Render(row))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.ErrorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(m.theme.Subtle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	return m.zones.Scan(b.String())
}

// renderText draws the display string with the caret. One extra cell is
// always reserved so the caret can sit after the last slot.
func (m FieldModel) renderText() string {
	runes := []rune(m.buf.Display())
	caret := m.buf.DisplayCaret(m.mapping)

	var b strings.Builder
	for i := 0; i <= len(runes); i++ {
		ch := " "
		if i < len(runes) {
			ch = string(runes[i])
		}
		if m.focused && i == caret {
			m.cursor.SetChar(ch)
			b.WriteString(m.cursor.View())
			continue
		}
		b.WriteString(m.styleFor(ch).Render(ch))
	}
	return b.String()
}

func (m FieldModel) styleFor(ch string) lipgloss.Style {
	switch ch {
	case string(ssn.Placeholder), " ", "-":
		return m.theme.Placeholder
	default:
		return m.theme.Digit
	}
}
