package styles

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// StateTableColumns returns columns for the layout state table.
func StateTableColumns() []table.Column {
	return []table.Column{
		{Title: "Key", Width: 36},
		{Title: "Scope", Width: 12},
		{Title: "Value", Width: 24},
	}
}

// StateRows converts layout state values into table rows sorted by key.
// Keys missing from the state table get an empty scope.
func StateRows(values map[string]any) []table.Row {
	scopes := make(map[string]string)
	for _, key := range entity.AllStateKeys() {
		scopes[key.Name()] = key.Scope().String()
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, table.Row{name, scopes[name], formatStateValue(values[name])})
	}
	return rows
}

func formatStateValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case fmt.Stringer:
		return val.String()
	case string:
		if val == "" {
			return `""`
		}
		return val
	case []string:
		if len(val) == 0 {
			return "[]"
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
