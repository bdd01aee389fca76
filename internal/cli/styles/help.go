package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ToggleLabel is the accessible label of the visibility toggle.
const ToggleLabel = "Toggle SSN visibility"

// FieldKeyMap defines keybindings for the SSN field.
type FieldKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Toggle    key.Binding
	Paste     key.Binding
	Copy      key.Binding
	Submit    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k FieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k FieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End},
		{k.Backspace, k.Delete},
		{k.Toggle, k.Paste, k.Copy},
		{k.Submit, k.Help, k.Quit},
	}
}

// DefaultFieldKeyMap returns the default field keybindings.
func DefaultFieldKeyMap() FieldKeyMap {
	return FieldKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
			key.WithHelp("→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("home", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("end", "end"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete left"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "delete right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", ToggleLabel),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy digits"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
