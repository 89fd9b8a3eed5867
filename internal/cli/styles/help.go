package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// LayoutKeyMap defines keybindings for the layout playground.
type LayoutKeyMap struct {
	ToggleSideBar      key.Binding
	TogglePanel        key.Binding
	ToggleAuxiliaryBar key.Binding
	ToggleStatusBar    key.Binding
	ToggleActivityBar  key.Binding
	MoveSideBar        key.Binding
	CyclePanel         key.Binding
	CycleAlignment     key.Binding
	MaximizePanel      key.Binding
	MaximizeAuxiliary  key.Binding
	Zen                key.Binding
	Center             key.Binding
	Grow               key.Binding
	Shrink             key.Binding
	NextPart           key.Binding
	Tree               key.Binding
	Help               key.Binding
	Quit               key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k LayoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSideBar, k.TogglePanel, k.Zen, k.NextPart, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k LayoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleSideBar, k.TogglePanel, k.ToggleAuxiliaryBar, k.ToggleStatusBar, k.ToggleActivityBar},
		{k.MoveSideBar, k.CyclePanel, k.CycleAlignment},
		{k.MaximizePanel, k.MaximizeAuxiliary, k.Zen, k.Center},
		{k.NextPart, k.Grow, k.Shrink},
		{k.Tree, k.Help, k.Quit},
	}
}

// DefaultLayoutKeyMap returns the default playground keybindings.
func DefaultLayoutKeyMap() LayoutKeyMap {
	return LayoutKeyMap{
		ToggleSideBar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "side bar"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "panel"),
		),
		ToggleAuxiliaryBar: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auxiliary bar"),
		),
		ToggleStatusBar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status bar"),
		),
		ToggleActivityBar: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "activity bar"),
		),
		MoveSideBar: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move side bar"),
		),
		CyclePanel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "panel position"),
		),
		CycleAlignment: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "panel alignment"),
		),
		MaximizePanel: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "maximize panel"),
		),
		MaximizeAuxiliary: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "maximize aux bar"),
		),
		Zen: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zen mode"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center editor"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink"),
		),
		NextPart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next part"),
		),
		Tree: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "grid tree"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
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
