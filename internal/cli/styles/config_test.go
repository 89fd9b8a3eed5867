package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/workbench/config.toml", 2, 1)

	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "2 new settings available")
	assert.Contains(t, out, "1 retired settings to remove")
}

func TestConfigRenderer_RenderMissingKeys(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Empty(t, r.RenderMissingKeys(nil))

	out := r.RenderMissingKeys([]port.KeyInfo{
		{Key: "zenMode.restore", Type: "bool", DefaultValue: "true"},
	})
	assert.Contains(t, out, "Missing settings (1)")
	assert.Contains(t, out, "zenMode.restore")
	assert.Contains(t, out, "Type: bool | Default: true")
}

func TestConfigRenderer_RenderMigrationSuccess(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderMigrationSuccess(3, 1, "/home/me/.config/workbench/config.toml")

	assert.Contains(t, out, "Added 3 and removed 1 settings in config.toml")
	assert.NotContains(t, out, "/home/me")
}

func TestConfigRenderer_RenderDiff(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderDiff("Config migration changes for c.toml:\n  + zenMode.restore = true (bool)\n  - zenMode.hideTabs (deprecated)")

	assert.Contains(t, out, "+ zenMode.restore = true (bool)")
	assert.Contains(t, out, "- zenMode.hideTabs (deprecated)")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderUpToDate("/tmp/c.toml"), "Config is up to date")
	assert.Contains(t, r.RenderError(errors.New("boom")), "Config error: boom")
	assert.Contains(t, r.RenderMigrateHint(), "workbench config migrate")
	assert.Contains(t, r.RenderDeprecatedKeys([]string{"zenMode.hideTabs"}), "zenMode.hideTabs")
	assert.Empty(t, r.RenderDeprecatedKeys(nil))
}

func TestConfigSchemaRenderer_GroupsInSchemaOrder(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "workbench.sideBar.location", Section: "Workbench", Type: "string", Default: "left", Values: []string{"left", "right"}},
		{Key: "layout.panel_height_divisor", Section: "Layout", Type: "int", Default: "3", Range: "1-16"},
		{Key: "workbench.panel.defaultLocation", Section: "Workbench", Type: "string", Default: "bottom"},
		{Key: "logging.level", Section: "Logging", Type: "string", Default: "info"},
	})

	sideBar := indexOf(t, out, "workbench.sideBar.location")
	panel := indexOf(t, out, "workbench.panel.defaultLocation")
	layout := indexOf(t, out, "layout.panel_height_divisor")
	logging := indexOf(t, out, "logging.level")
	assert.Less(t, sideBar, panel)
	assert.Less(t, panel, layout)
	assert.Less(t, layout, logging)
	assert.Contains(t, out, "one of: left | right")
	assert.Contains(t, out, "range: 1-16")
}

func TestConfigSchemaRenderer_Empty(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	assert.Contains(t, r.Render(nil), "No configuration keys found")
}

func TestConfigSchemaRenderer_RenderJSON(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	out, err := r.RenderJSON([]entity.ConfigKeyInfo{{Key: "zenMode.restore", Type: "bool"}})

	require.NoError(t, err)
	assert.Contains(t, out, `"zenMode.restore"`)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	require.NotEqual(t, -1, i, "%q not found", sub)
	return i
}
