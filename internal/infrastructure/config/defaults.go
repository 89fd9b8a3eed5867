package config

import "github.com/bnema/workbench/internal/domain/entity"

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultWorkspaceID = "default"
	defaultProfileID   = "default"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	settings := entity.DefaultWorkbenchSettings()
	tuning := entity.DefaultLayoutTuning()

	return &Config{
		Workbench: WorkbenchConfig{
			ActivityBar: ActivityBarConfig{Location: string(settings.ActivityBarLocation)},
			StatusBar:   StatusBarConfig{Visible: settings.StatusBarVisible},
			SideBar:     SideBarConfig{Location: settings.SideBarLocation.String()},
			Panel: PanelConfig{
				DefaultLocation: settings.PanelDefaultLocation.String(),
				OpensMaximized:  string(settings.PanelOpensMaximized),
			},
			SecondarySideBar: SecondarySideBarConfig{
				DefaultVisibility: string(settings.AuxiliaryBarVisibility),
			},
			Editor: EditorConfig{
				CenteredLayoutAutoResize: settings.CenteredLayoutAutoResize,
				ShowTabs:                 string(settings.EditorShowTabs),
			},
		},
		ZenMode: ZenModeConfig{
			FullScreen:          settings.ZenMode.FullScreen,
			CenterLayout:        settings.ZenMode.CenterLayout,
			HideActivityBar:     settings.ZenMode.HideActivityBar,
			HideStatusBar:       settings.ZenMode.HideStatusBar,
			HideLineNumbers:     settings.ZenMode.HideLineNumbers,
			ShowTabs:            string(settings.ZenMode.ShowTabs),
			SilentNotifications: settings.ZenMode.SilentNotifications,
			Restore:             settings.ZenMode.Restore,
		},
		Layout: LayoutConfig{
			DefaultSideBarSize:          tuning.DefaultSideBarSize,
			SideBarWidthDivisor:         tuning.SideBarWidthDivisor,
			PanelHeightDivisor:          tuning.PanelHeightDivisor,
			PanelWidthDivisor:           tuning.PanelWidthDivisor,
			DefaultWorkspaceWindowWidth: tuning.DefaultWorkspaceWindowWidth,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Storage: StorageConfig{
			WorkspaceID: defaultWorkspaceID,
			ProfileID:   defaultProfileID,
		},
	}
}

// WorkbenchSettings converts the file configuration into the settings
// snapshot read by the layout engine. cfg is expected to be normalized.
func (cfg *Config) WorkbenchSettings() entity.WorkbenchSettings {
	s := entity.DefaultWorkbenchSettings()

	s.ActivityBarLocation = entity.ActivityBarLocation(cfg.Workbench.ActivityBar.Location)
	if cfg.Workbench.ActivityBar.Visible != nil {
		visible := *cfg.Workbench.ActivityBar.Visible
		s.ActivityBarVisible = &visible
	}
	s.StatusBarVisible = cfg.Workbench.StatusBar.Visible
	s.SideBarLocation = entity.PositionFromString(cfg.Workbench.SideBar.Location, entity.PositionLeft)
	s.PanelDefaultLocation = entity.PositionFromString(cfg.Workbench.Panel.DefaultLocation, entity.PositionBottom)
	s.PanelOpensMaximized = entity.PanelOpensMaximized(cfg.Workbench.Panel.OpensMaximized)
	s.AuxiliaryBarVisibility = entity.AuxiliaryBarVisibility(cfg.Workbench.SecondarySideBar.DefaultVisibility)
	s.AuxiliaryBarConfigured = cfg.AuxiliaryBarConfigured
	s.CenteredLayoutAutoResize = cfg.Workbench.Editor.CenteredLayoutAutoResize
	s.EditorShowTabs = entity.EditorTabsMode(cfg.Workbench.Editor.ShowTabs)

	s.ZenMode = entity.ZenModeSettings{
		FullScreen:          cfg.ZenMode.FullScreen,
		CenterLayout:        cfg.ZenMode.CenterLayout,
		HideActivityBar:     cfg.ZenMode.HideActivityBar,
		HideStatusBar:       cfg.ZenMode.HideStatusBar,
		HideLineNumbers:     cfg.ZenMode.HideLineNumbers,
		ShowTabs:            entity.EditorTabsMode(cfg.ZenMode.ShowTabs),
		SilentNotifications: cfg.ZenMode.SilentNotifications,
		Restore:             cfg.ZenMode.Restore,
	}

	s.Tuning = entity.LayoutTuning{
		DefaultSideBarSize:          cfg.Layout.DefaultSideBarSize,
		SideBarWidthDivisor:         cfg.Layout.SideBarWidthDivisor,
		PanelHeightDivisor:          cfg.Layout.PanelHeightDivisor,
		PanelWidthDivisor:           cfg.Layout.PanelWidthDivisor,
		DefaultWorkspaceWindowWidth: cfg.Layout.DefaultWorkspaceWindowWidth,
	}
	return s
}
