package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/application/port"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path with the pending migration counts.
func (r *ConfigRenderer) RenderConfigInfo(path string, missingCount, deprecatedCount int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var status strings.Builder
	if missingCount > 0 {
		fmt.Fprintf(&status, "\n  %s %s new settings available",
			iconStyle.Render(IconInfo),
			countStyle.Render(fmt.Sprintf("%d", missingCount)),
		)
	}
	if deprecatedCount > 0 {
		fmt.Fprintf(&status, "\n  %s %s retired settings to remove",
			iconStyle.Render(IconWarning),
			countStyle.Render(fmt.Sprintf("%d", deprecatedCount)),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status.String(),
	)
}

// RenderMissingKeys renders the list of missing keys with their types and default values.
func (r *ConfigRenderer) RenderMissingKeys(keys []port.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight
	typeStyle := r.theme.Subtle
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Missing settings (%d):\n", len(keys))

	for _, key := range keys {
		fmt.Fprintf(&sb,
			"    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(IconPlus),
			keyStyle.Render(key.Key),
			typeStyle.Render(key.Type),
			valueStyle.Render(key.DefaultValue),
		)
	}

	return sb.String()
}

// RenderMigrationSuccess renders the summary after a migration.
func (r *ConfigRenderer) RenderMigrationSuccess(added, removed int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	countStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s Added %s and removed %s settings in %s\n",
		iconStyle.Render(IconCheck),
		countStyle.Render(fmt.Sprintf("%d", added)),
		countStyle.Render(fmt.Sprintf("%d", removed)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderDeprecatedKeys renders the keys a migration will drop.
func (r *ConfigRenderer) RenderDeprecatedKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Retired settings (%d):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(&sb, "    %s %s\n", iconStyle.Render(IconMinus), r.theme.Subtle.Render(key))
	}
	return sb.String()
}

// RenderDiff colors a migration diff produced by the config diff formatter.
func (r *ConfigRenderer) RenderDiff(diff string) string {
	addStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	removeStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "  +"):
			lines[i] = addStyle.Render(line)
		case strings.HasPrefix(line, "  -"):
			lines[i] = removeStyle.Render(line)
		case line != "":
			lines[i] = r.theme.Title.Render(line)
		}
	}
	return "\n" + strings.Join(lines, "\n")
}

// RenderPath renders a labelled path, used by `config path`.
func (r *ConfigRenderer) RenderPath(label, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s %s %s", iconStyle.Render(IconConfig), r.theme.Normal.Render(label), r.theme.Subtle.Render(path))
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s\n",
		hintStyle.Render("Run 'workbench config migrate' to add missing defaults and drop retired keys."),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		hintStyle.Render("The config file is created with all defaults the first time a layout command runs."),
	)
}
