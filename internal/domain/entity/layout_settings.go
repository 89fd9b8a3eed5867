package entity

import "strings"

// Setting keys read (and, for the legacy mirrors, written) by the layout engine.
const (
	SettingActivityBarLocation           = "workbench.activityBar.location"
	SettingActivityBarVisible            = "workbench.activityBar.visible"
	SettingStatusBarVisible              = "workbench.statusBar.visible"
	SettingSideBarLocation               = "workbench.sideBar.location"
	SettingPanelDefaultLocation          = "workbench.panel.defaultLocation"
	SettingPanelOpensMaximized           = "workbench.panel.opensMaximized"
	SettingAuxiliaryBarDefaultVisibility = "workbench.secondarySideBar.defaultVisibility"
	SettingCenteredLayoutAutoResize      = "workbench.editor.centeredLayoutAutoResize"
	SettingEditorShowTabs                = "workbench.editor.showTabs"

	SettingZenMode                    = "zenMode"
	SettingZenModeFullScreen          = "zenMode.fullScreen"
	SettingZenModeCenterLayout        = "zenMode.centerLayout"
	SettingZenModeHideActivityBar     = "zenMode.hideActivityBar"
	SettingZenModeHideStatusBar       = "zenMode.hideStatusBar"
	SettingZenModeHideLineNumbers     = "zenMode.hideLineNumbers"
	SettingZenModeShowTabs            = "zenMode.showTabs"
	SettingZenModeSilentNotifications = "zenMode.silentNotifications"
	SettingZenModeRestore             = "zenMode.restore"
)

// ActivityBarLocation is the workbench.activityBar.location setting.
type ActivityBarLocation string

const (
	ActivityBarLocationDefault ActivityBarLocation = "default"
	ActivityBarLocationTop     ActivityBarLocation = "top"
	ActivityBarLocationBottom  ActivityBarLocation = "bottom"
	ActivityBarLocationHidden  ActivityBarLocation = "hidden"
)

// PanelOpensMaximized is the policy applied when the panel is shown.
type PanelOpensMaximized string

const (
	PanelOpensMaximizedAlways       PanelOpensMaximized = "always"
	PanelOpensMaximizedNever        PanelOpensMaximized = "never"
	PanelOpensMaximizedRememberLast PanelOpensMaximized = "rememberLast"
	// PanelOpensMaximizedPreserve is the legacy spelling of RememberLast.
	PanelOpensMaximizedPreserve PanelOpensMaximized = "preserve"
)

// AuxiliaryBarVisibility is the default visibility policy for the secondary side bar.
type AuxiliaryBarVisibility string

const (
	AuxiliaryBarHidden               AuxiliaryBarVisibility = "hidden"
	AuxiliaryBarVisibleInWorkspace   AuxiliaryBarVisibility = "visibleInWorkspace"
	AuxiliaryBarVisible              AuxiliaryBarVisibility = "visible"
	AuxiliaryBarMaximizedInWorkspace AuxiliaryBarVisibility = "maximizedInWorkspace"
	AuxiliaryBarMaximized            AuxiliaryBarVisibility = "maximized"
)

// EditorTabsMode is the value of the tab visibility settings.
type EditorTabsMode string

const (
	EditorTabsMultiple EditorTabsMode = "multiple"
	EditorTabsSingle   EditorTabsMode = "single"
	EditorTabsNone     EditorTabsMode = "none"
)

// ZenModeSettings groups the zenMode.* settings.
type ZenModeSettings struct {
	FullScreen          bool
	CenterLayout        bool
	HideActivityBar     bool
	HideStatusBar       bool
	HideLineNumbers     bool
	ShowTabs            EditorTabsMode
	SilentNotifications bool
	Restore             bool
}

// LayoutTuning holds the product thresholds used for default sizing.
type LayoutTuning struct {
	DefaultSideBarSize          int
	SideBarWidthDivisor         int
	PanelHeightDivisor          int
	PanelWidthDivisor           int
	DefaultWorkspaceWindowWidth int
}

// DefaultLayoutTuning returns the built-in thresholds.
func DefaultLayoutTuning() LayoutTuning {
	return LayoutTuning{
		DefaultSideBarSize:          DefaultSideBarSize,
		SideBarWidthDivisor:         4,
		PanelHeightDivisor:          3,
		PanelWidthDivisor:           4,
		DefaultWorkspaceWindowWidth: 1200,
	}
}

// WorkbenchSettings is a snapshot of every setting the layout engine reads.
type WorkbenchSettings struct {
	ActivityBarLocation ActivityBarLocation
	// ActivityBarVisible is the legacy boolean; nil when unset.
	ActivityBarVisible       *bool
	StatusBarVisible         bool
	SideBarLocation          Position
	PanelDefaultLocation     Position
	PanelOpensMaximized      PanelOpensMaximized
	AuxiliaryBarVisibility   AuxiliaryBarVisibility
	AuxiliaryBarConfigured   bool
	CenteredLayoutAutoResize bool
	EditorShowTabs           EditorTabsMode
	ZenMode                  ZenModeSettings
	Tuning                   LayoutTuning
}

// DefaultWorkbenchSettings returns the settings used when nothing is configured.
func DefaultWorkbenchSettings() WorkbenchSettings {
	return WorkbenchSettings{
		ActivityBarLocation:      ActivityBarLocationDefault,
		StatusBarVisible:         true,
		SideBarLocation:          PositionLeft,
		PanelDefaultLocation:     PositionBottom,
		PanelOpensMaximized:      PanelOpensMaximizedRememberLast,
		AuxiliaryBarVisibility:   AuxiliaryBarVisibleInWorkspace,
		CenteredLayoutAutoResize: true,
		EditorShowTabs:           EditorTabsMultiple,
		ZenMode: ZenModeSettings{
			FullScreen:          true,
			CenterLayout:        true,
			HideActivityBar:     true,
			HideStatusBar:       true,
			HideLineNumbers:     true,
			ShowTabs:            EditorTabsMultiple,
			SilentNotifications: true,
			Restore:             true,
		},
		Tuning: DefaultLayoutTuning(),
	}
}

// ConfigurationChange names the setting keys affected by a configuration update.
type ConfigurationChange struct {
	Keys []string
}

// Affects reports whether key, or any setting nested under it, changed.
func (c ConfigurationChange) Affects(key string) bool {
	for _, k := range c.Keys {
		if k == key || strings.HasPrefix(k, key+".") {
			return true
		}
	}
	return false
}
