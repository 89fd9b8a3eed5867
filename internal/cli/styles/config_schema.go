package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/entity"
)

// ConfigSchemaRenderer renders the setting reference of `config schema`.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render draws one box per section, in the order the sections first appear
// in keys. Key names are padded to a common width inside a section.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	parts := []string{r.renderHeader(), ""}
	for _, group := range groupBySection(keys) {
		parts = append(parts, r.renderSection(group.name, group.keys), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the selected keys as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	return icon + " " + r.theme.Title.Render("Settings")
}

type sectionGroup struct {
	name string
	keys []entity.ConfigKeyInfo
}

func groupBySection(keys []entity.ConfigKeyInfo) []sectionGroup {
	index := make(map[string]int)
	var groups []sectionGroup
	for _, k := range keys {
		i, ok := index[k.Section]
		if !ok {
			i = len(groups)
			index[k.Section] = i
			groups = append(groups, sectionGroup{name: k.Section})
		}
		groups[i].keys = append(groups[i].keys, k)
	}
	return groups
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	if name == "" {
		name = "Other"
	}

	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k.Key))
	}

	lines := []string{r.theme.Highlight.Render(name)}
	for _, k := range keys {
		lines = append(lines, r.renderKey(k, width)...)
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo, width int) []string {
	name := r.theme.Normal.Bold(true).Width(width).Render(key.Key)
	def := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(key.Default)
	lines := []string{fmt.Sprintf("%s  %s  %s", name, r.theme.Subtle.Render(key.Type), def)}

	indent := strings.Repeat(" ", width+2)
	if key.Description != "" {
		lines = append(lines, indent+r.theme.Subtle.Render(key.Description))
	}
	switch {
	case len(key.Values) > 0:
		lines = append(lines, indent+r.theme.Normal.Render("one of: "+strings.Join(key.Values, " | ")))
	case key.Range != "":
		lines = append(lines, indent+r.theme.Normal.Render("range: "+key.Range))
	}
	return lines
}
