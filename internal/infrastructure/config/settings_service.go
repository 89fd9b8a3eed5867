package config

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// ErrUnknownSetting is returned when writing a key no section declares.
var ErrUnknownSetting = errors.New("unknown setting")

type settingGetter struct {
	key string
	get func(*Config) any
}

// settingGetters lists every dotted key the file can carry, in schema order.
var settingGetters = []settingGetter{
	{entity.SettingActivityBarLocation, func(c *Config) any { return c.Workbench.ActivityBar.Location }},
	{entity.SettingActivityBarVisible, func(c *Config) any {
		if c.Workbench.ActivityBar.Visible == nil {
			return nil
		}
		return *c.Workbench.ActivityBar.Visible
	}},
	{entity.SettingStatusBarVisible, func(c *Config) any { return c.Workbench.StatusBar.Visible }},
	{entity.SettingSideBarLocation, func(c *Config) any { return c.Workbench.SideBar.Location }},
	{entity.SettingPanelDefaultLocation, func(c *Config) any { return c.Workbench.Panel.DefaultLocation }},
	{entity.SettingPanelOpensMaximized, func(c *Config) any { return c.Workbench.Panel.OpensMaximized }},
	{entity.SettingAuxiliaryBarDefaultVisibility, func(c *Config) any {
		return c.Workbench.SecondarySideBar.DefaultVisibility
	}},
	{entity.SettingCenteredLayoutAutoResize, func(c *Config) any { return c.Workbench.Editor.CenteredLayoutAutoResize }},
	{entity.SettingEditorShowTabs, func(c *Config) any { return c.Workbench.Editor.ShowTabs }},

	{entity.SettingZenModeFullScreen, func(c *Config) any { return c.ZenMode.FullScreen }},
	{entity.SettingZenModeCenterLayout, func(c *Config) any { return c.ZenMode.CenterLayout }},
	{entity.SettingZenModeHideActivityBar, func(c *Config) any { return c.ZenMode.HideActivityBar }},
	{entity.SettingZenModeHideStatusBar, func(c *Config) any { return c.ZenMode.HideStatusBar }},
	{entity.SettingZenModeHideLineNumbers, func(c *Config) any { return c.ZenMode.HideLineNumbers }},
	{entity.SettingZenModeShowTabs, func(c *Config) any { return c.ZenMode.ShowTabs }},
	{entity.SettingZenModeSilentNotifications, func(c *Config) any { return c.ZenMode.SilentNotifications }},
	{entity.SettingZenModeRestore, func(c *Config) any { return c.ZenMode.Restore }},

	{"layout.default_side_bar_size", func(c *Config) any { return c.Layout.DefaultSideBarSize }},
	{"layout.side_bar_width_divisor", func(c *Config) any { return c.Layout.SideBarWidthDivisor }},
	{"layout.panel_height_divisor", func(c *Config) any { return c.Layout.PanelHeightDivisor }},
	{"layout.panel_width_divisor", func(c *Config) any { return c.Layout.PanelWidthDivisor }},
	{"layout.default_workspace_window_width", func(c *Config) any { return c.Layout.DefaultWorkspaceWindowWidth }},

	{"database.path", func(c *Config) any { return c.Database.Path }},
	{"logging.level", func(c *Config) any { return c.Logging.Level }},
	{"logging.format", func(c *Config) any { return c.Logging.Format }},
	{"storage.workspace_id", func(c *Config) any { return c.Storage.WorkspaceID }},
	{"storage.profile_id", func(c *Config) any { return c.Storage.ProfileID }},
}

// IsKnownSetting reports whether key is a setting the file can carry.
func IsKnownSetting(key string) bool {
	for _, g := range settingGetters {
		if g.key == key {
			return true
		}
	}
	return false
}

// DiffSettings names every setting whose value differs between previous and current.
func DiffSettings(previous, current *Config) entity.ConfigurationChange {
	var change entity.ConfigurationChange
	for _, g := range settingGetters {
		if g.get(previous) != g.get(current) {
			change.Keys = append(change.Keys, g.key)
		}
	}
	if previous.AuxiliaryBarConfigured != current.AuxiliaryBarConfigured &&
		!change.Affects(entity.SettingAuxiliaryBarDefaultVisibility) {
		change.Keys = append(change.Keys, entity.SettingAuxiliaryBarDefaultVisibility)
	}
	return change
}

// SettingsService exposes a Manager as the layout engine's configuration.
type SettingsService struct {
	manager *Manager

	mu        sync.Mutex
	listeners map[int]func(ctx context.Context, change entity.ConfigurationChange)
	nextID    int
}

// NewSettingsService wires the service to manager reloads.
func NewSettingsService(manager *Manager) *SettingsService {
	s := &SettingsService{
		manager:   manager,
		listeners: make(map[int]func(ctx context.Context, change entity.ConfigurationChange)),
	}
	manager.OnConfigChange(s.onConfigChange)
	return s
}

// Settings returns a snapshot of the current settings.
func (s *SettingsService) Settings() entity.WorkbenchSettings {
	return s.manager.Get().WorkbenchSettings()
}

// OnDidChangeConfiguration registers fn for setting changes.
func (s *SettingsService) OnDidChangeConfiguration(fn func(ctx context.Context, change entity.ConfigurationChange)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// UpdateSetting persists a setting. Listeners run before it returns.
func (s *SettingsService) UpdateSetting(ctx context.Context, key string, value any) error {
	return s.manager.UpdateSetting(ctx, key, value)
}

func (s *SettingsService) onConfigChange(ctx context.Context, previous, current *Config) {
	change := DiffSettings(previous, current)
	if len(change.Keys) == 0 {
		return
	}

	logging.FromContext(ctx).Debug().Strs("keys", change.Keys).Msg("settings changed")

	s.mu.Lock()
	listeners := make([]func(context.Context, entity.ConfigurationChange), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, change)
	}
}
