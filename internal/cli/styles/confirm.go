package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y/→", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n/←", "no")),
		Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.No, k.Yes, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Toggle}}
}

// ConfirmModel is a yes/no dialog embedded by other models. It starts on "No".
type ConfirmModel struct {
	message   string
	details   string
	yes       bool
	confirmed bool
	canceled  bool
	keys      ConfirmKeyMap
	theme     *Theme
}

// NewConfirm creates a confirmation dialog asking message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		message: message,
		keys:    DefaultConfirmKeyMap(),
		theme:   theme,
	}
}

// WithDetails returns a copy showing details between the question and the buttons.
func (m ConfirmModel) WithDetails(details string) ConfirmModel {
	m.details = details
	return m
}

// Update handles key presses. It never returns a command.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.yes = false
	case key.Matches(keyMsg, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.canceled = true
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.InactiveButton, t.ActiveButton
	if m.yes {
		yesStyle, noStyle = t.ActiveButton, t.InactiveButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render("No"), "  ", yesStyle.Render("Yes"))

	rows := []string{t.Title.Render(m.message), ""}
	if m.details != "" {
		rows = append(rows, m.details, "")
	}
	rows = append(rows, buttons, "", t.Subtle.Render("y/n to select • enter to confirm • esc to cancel"))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// Selected reports whether "Yes" is highlighted.
func (m ConfirmModel) Selected() bool {
	return m.yes
}

// Done reports whether the user confirmed or canceled.
func (m ConfirmModel) Done() bool {
	return m.confirmed || m.canceled
}

// Result reports whether the user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.confirmed && m.yes
}
