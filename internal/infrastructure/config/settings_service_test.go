package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
)

func TestDiffSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{
			name:   "no change",
			mutate: func(*Config) {},
			want:   nil,
		},
		{
			name: "single workbench key",
			mutate: func(c *Config) {
				c.Workbench.StatusBar.Visible = false
			},
			want: []string{entity.SettingStatusBarVisible},
		},
		{
			name: "legacy activity bar toggle",
			mutate: func(c *Config) {
				hidden := false
				c.Workbench.ActivityBar.Visible = &hidden
			},
			want: []string{entity.SettingActivityBarVisible},
		},
		{
			name: "zen and layout keys",
			mutate: func(c *Config) {
				c.ZenMode.Restore = false
				c.Layout.PanelWidthDivisor = 2
			},
			want: []string{entity.SettingZenModeRestore, "layout.panel_width_divisor"},
		},
		{
			name: "auxiliary bar becomes configured",
			mutate: func(c *Config) {
				c.AuxiliaryBarConfigured = true
			},
			want: []string{entity.SettingAuxiliaryBarDefaultVisibility},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := DefaultConfig()
			current := DefaultConfig()
			tt.mutate(current)

			change := DiffSettings(previous, current)

			assert.Equal(t, tt.want, change.Keys)
		})
	}
}

func TestIsKnownSetting(t *testing.T) {
	assert.True(t, IsKnownSetting(entity.SettingPanelOpensMaximized))
	assert.True(t, IsKnownSetting("storage.workspace_id"))
	assert.False(t, IsKnownSetting("workbench.panel"))
	assert.False(t, IsKnownSetting(""))
}

func TestSettingsService_Settings(t *testing.T) {
	m := newTestManager(t, `
[workbench.secondarySideBar]
defaultVisibility = "maximized"
`)
	require.NoError(t, m.Load())
	svc := NewSettingsService(m)

	settings := svc.Settings()

	assert.Equal(t, entity.AuxiliaryBarMaximized, settings.AuxiliaryBarVisibility)
	assert.True(t, settings.AuxiliaryBarConfigured)
	assert.Equal(t, entity.PositionLeft, settings.SideBarLocation)
}

func TestSettingsService_UpdateSettingNotifiesListeners(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.Load())
	svc := NewSettingsService(m)

	var order []string
	var got entity.ConfigurationChange
	svc.OnDidChangeConfiguration(func(_ context.Context, change entity.ConfigurationChange) {
		order = append(order, "first")
		got = change
	})
	svc.OnDidChangeConfiguration(func(context.Context, entity.ConfigurationChange) {
		order = append(order, "second")
	})

	err := svc.UpdateSetting(context.Background(), entity.SettingZenModeHideStatusBar, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.True(t, got.Affects(entity.SettingZenModeHideStatusBar))
	assert.False(t, svc.Settings().ZenMode.HideStatusBar)
}

func TestSettingsService_SameValueDoesNotNotify(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.Load())
	svc := NewSettingsService(m)

	calls := 0
	svc.OnDidChangeConfiguration(func(context.Context, entity.ConfigurationChange) { calls++ })

	require.NoError(t, svc.UpdateSetting(context.Background(), entity.SettingSideBarLocation, "left"))

	assert.Zero(t, calls)
}

func TestSettingsService_RemoveListener(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.Load())
	svc := NewSettingsService(m)

	calls := 0
	remove := svc.OnDidChangeConfiguration(func(context.Context, entity.ConfigurationChange) { calls++ })
	remove()

	require.NoError(t, svc.UpdateSetting(context.Background(), entity.SettingStatusBarVisible, false))

	assert.Zero(t, calls)
}
