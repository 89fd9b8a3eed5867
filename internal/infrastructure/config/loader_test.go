package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func newTestManager(t *testing.T, content string) *Manager {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ENV", "")

	configFile := filepath.Join(dir, "config.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(configFile, []byte(content), filePerm))
	}

	m, err := NewManager(WithConfigFile(configFile))
	require.NoError(t, err)
	return m
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "left", mgr.viper.GetString("workbench.sideBar.location"))
	assert.Equal(t, "visibleInWorkspace", mgr.viper.GetString(keyAuxiliaryBarVisibility))
	assert.True(t, mgr.viper.GetBool("zenMode.hideStatusBar"))
	assert.Equal(t, 3, mgr.viper.GetInt("layout.panel_height_divisor"))
	assert.Equal(t, "default", mgr.viper.GetString("storage.profile_id"))
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	m := newTestManager(t, "")

	require.NoError(t, m.Load())

	assert.FileExists(t, m.GetConfigFile())
	assert.FileExists(t, filepath.Join(filepath.Dir(m.GetConfigFile()), schemaFileName))

	cfg := m.Get()
	assert.Equal(t, DefaultConfig().Workbench, cfg.Workbench)
	assert.Equal(t, DefaultConfig().ZenMode, cfg.ZenMode)
	assert.True(t, cfg.AuxiliaryBarConfigured, "the written default file names the visibility")
	assert.Equal(t, databaseName, filepath.Base(cfg.Database.Path))
}

func TestManager_Load_UserValues(t *testing.T) {
	m := newTestManager(t, `
[workbench.sideBar]
location = "Right"

[workbench.panel]
defaultLocation = "top"
opensMaximized = "preserve"

[zenMode]
hideStatusBar = false

[layout]
panel_height_divisor = 2
`)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "right", cfg.Workbench.SideBar.Location)
	assert.Equal(t, "top", cfg.Workbench.Panel.DefaultLocation)
	assert.Equal(t, "rememberLast", cfg.Workbench.Panel.OpensMaximized)
	assert.False(t, cfg.ZenMode.HideStatusBar)
	assert.True(t, cfg.ZenMode.HideActivityBar)
	assert.Equal(t, 2, cfg.Layout.PanelHeightDivisor)
	assert.False(t, cfg.AuxiliaryBarConfigured)

	settings := cfg.WorkbenchSettings()
	assert.Equal(t, entity.PositionRight, settings.SideBarLocation)
	assert.Equal(t, entity.PositionTop, settings.PanelDefaultLocation)
	assert.Equal(t, 2, settings.Tuning.PanelHeightDivisor)
}

func TestManager_Load_LegacySettings(t *testing.T) {
	content := `
[workbench.activityBar]
visible = false

[zenMode]
hideTabs = true
`
	m := newTestManager(t, content)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "none", cfg.ZenMode.ShowTabs)
	assert.Equal(t, "hidden", cfg.Workbench.ActivityBar.Location)
	require.NotNil(t, cfg.Workbench.ActivityBar.Visible)
	assert.False(t, *cfg.Workbench.ActivityBar.Visible)

	onDisk, err := os.ReadFile(m.GetConfigFile())
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk), "legacy rewrites are not written back")
}

func TestManager_Load_EnvOverride(t *testing.T) {
	m := newTestManager(t, "")
	t.Setenv("WORKBENCH_LOG_LEVEL", "debug")
	t.Setenv("WORKBENCH_DB", "/tmp/custom.sqlite")

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/custom.sqlite", cfg.Database.Path)
}

func TestManager_Load_ValidationError(t *testing.T) {
	m := newTestManager(t, `
[workbench.sideBar]
location = "middle"

[layout]
panel_width_divisor = 40
`)

	err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "workbench.sideBar.location must be one of")
	assert.Contains(t, err.Error(), "layout.panel_width_divisor must be between 1 and 16")
}

func TestManager_Get_BeforeLoad(t *testing.T) {
	m := newTestManager(t, "")

	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestManager_UpdateSetting(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.Load())

	var calls int
	var prev, cur *Config
	m.OnConfigChange(func(_ context.Context, previous, current *Config) {
		calls++
		prev, cur = previous, current
	})

	err := m.UpdateSetting(context.Background(), entity.SettingSideBarLocation, "right")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "left", prev.Workbench.SideBar.Location)
	assert.Equal(t, "right", cur.Workbench.SideBar.Location)
	assert.Equal(t, "right", m.Get().Workbench.SideBar.Location)

	raw, err := readRawConfig(m.GetConfigFile())
	require.NoError(t, err)
	sideBar := raw["workbench"].(map[string]any)["sideBar"].(map[string]any)
	assert.Equal(t, "right", sideBar["location"], "camelCase keys are kept on disk")
}

func TestManager_UpdateSetting_NilRemovesKey(t *testing.T) {
	m := newTestManager(t, `
[workbench.activityBar]
location = "top"
`)
	require.NoError(t, m.Load())

	require.NoError(t, m.UpdateSetting(context.Background(), entity.SettingActivityBarLocation, nil))

	assert.Equal(t, "default", m.Get().Workbench.ActivityBar.Location)
}

func TestManager_UpdateSetting_UnknownKey(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.Load())

	err := m.UpdateSetting(context.Background(), "workbench.nope", true)

	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestManager_UpdateSetting_InvalidValueRestoresFile(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.Load())
	before, err := os.ReadFile(m.GetConfigFile())
	require.NoError(t, err)

	err = m.UpdateSetting(context.Background(), entity.SettingPanelDefaultLocation, "diagonal")

	require.Error(t, err)
	after, readErr := os.ReadFile(m.GetConfigFile())
	require.NoError(t, readErr)
	assert.Equal(t, string(before), string(after))
	assert.Equal(t, "bottom", m.Get().Workbench.Panel.DefaultLocation)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workbench.ActivityBar.Location = "TOP"
	cfg.Workbench.Editor.ShowTabs = ""
	cfg.Logging.Format = "JSON"
	cfg.Storage.WorkspaceID = "  ws-1 "

	normalizeConfig(cfg)

	assert.Equal(t, "top", cfg.Workbench.ActivityBar.Location)
	assert.Equal(t, "multiple", cfg.Workbench.Editor.ShowTabs)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "ws-1", cfg.Storage.WorkspaceID)
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Storage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.ProfileID = ""

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.profile_id must not be empty")
}
