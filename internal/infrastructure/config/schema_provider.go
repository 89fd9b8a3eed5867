package config

import (
	"fmt"
	"strconv"

	"github.com/bnema/workbench/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionWorkbench = "Workbench"
	SectionZenMode   = "Zen Mode"
	SectionLayout    = "Layout"
	SectionLogging   = "Logging"
	SectionDatabase  = "Database"
	SectionStorage   = "Storage"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, len(settingGetters))
	keys = append(keys, p.getWorkbenchKeys(defaults)...)
	keys = append(keys, p.getZenModeKeys(defaults)...)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getStorageKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getWorkbenchKeys(defaults *Config) []entity.ConfigKeyInfo {
	wb := defaults.Workbench
	return []entity.ConfigKeyInfo{
		{
			Key:         entity.SettingActivityBarLocation,
			Type:        "string",
			Default:     wb.ActivityBar.Location,
			Description: "Where the activity bar is shown, or hidden",
			Values:      activityBarLocations,
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingActivityBarVisible,
			Type:        "bool",
			Default:     "(unset)",
			Description: "Legacy toggle; false hides the activity bar regardless of location",
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingStatusBarVisible,
			Type:        "bool",
			Default:     strconv.FormatBool(wb.StatusBar.Visible),
			Description: "Show the status bar",
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingSideBarLocation,
			Type:        "string",
			Default:     wb.SideBar.Location,
			Description: "Side of the window holding the primary side bar",
			Values:      sideBarLocations,
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingPanelDefaultLocation,
			Type:        "string",
			Default:     wb.Panel.DefaultLocation,
			Description: "Panel position for a new workspace",
			Values:      panelLocations,
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingPanelOpensMaximized,
			Type:        "string",
			Default:     wb.Panel.OpensMaximized,
			Description: "Whether showing the panel maximizes it",
			Values:      opensMaximized,
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingAuxiliaryBarDefaultVisibility,
			Type:        "string",
			Default:     wb.SecondarySideBar.DefaultVisibility,
			Description: "Secondary side bar visibility in a new workspace",
			Values:      auxiliaryBarVisibilities,
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingCenteredLayoutAutoResize,
			Type:        "bool",
			Default:     strconv.FormatBool(wb.Editor.CenteredLayoutAutoResize),
			Description: "Leave centered layout when more than one editor group is open",
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingEditorShowTabs,
			Type:        "string",
			Default:     wb.Editor.ShowTabs,
			Description: "Editor tab mode outside zen mode",
			Values:      tabModes,
			Section:     SectionWorkbench,
		},
	}
}

func (*SchemaProvider) getZenModeKeys(defaults *Config) []entity.ConfigKeyInfo {
	zen := defaults.ZenMode
	boolKey := func(key string, value bool, description string) entity.ConfigKeyInfo {
		return entity.ConfigKeyInfo{
			Key:         key,
			Type:        "bool",
			Default:     strconv.FormatBool(value),
			Description: description,
			Section:     SectionZenMode,
		}
	}
	return []entity.ConfigKeyInfo{
		boolKey(entity.SettingZenModeFullScreen, zen.FullScreen, "Enter full screen with zen mode"),
		boolKey(entity.SettingZenModeCenterLayout, zen.CenterLayout, "Center the editor in zen mode"),
		boolKey(entity.SettingZenModeHideActivityBar, zen.HideActivityBar, "Hide the activity bar in zen mode"),
		boolKey(entity.SettingZenModeHideStatusBar, zen.HideStatusBar, "Hide the status bar in zen mode"),
		boolKey(entity.SettingZenModeHideLineNumbers, zen.HideLineNumbers, "Hide editor line numbers in zen mode"),
		{
			Key:         entity.SettingZenModeShowTabs,
			Type:        "string",
			Default:     zen.ShowTabs,
			Description: "Editor tab mode while zen mode is active",
			Values:      tabModes,
			Section:     SectionZenMode,
		},
		boolKey(entity.SettingZenModeSilentNotifications, zen.SilentNotifications, "Only show error notifications in zen mode"),
		boolKey(entity.SettingZenModeRestore, zen.Restore, "Re-enter zen mode on startup when it was active"),
	}
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Layout
	divisorRange := fmt.Sprintf("1-%d", maxDivisor)
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.default_side_bar_size",
			Type:        "int",
			Default:     strconv.Itoa(l.DefaultSideBarSize),
			Description: "Side bar width in pixels before the window is known",
			Range:       ">0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.side_bar_width_divisor",
			Type:        "int",
			Default:     strconv.Itoa(l.SideBarWidthDivisor),
			Description: "New side bars take the window width divided by this",
			Range:       divisorRange,
			Section:     SectionLayout,
		},
		{
			Key:         "layout.panel_height_divisor",
			Type:        "int",
			Default:     strconv.Itoa(l.PanelHeightDivisor),
			Description: "A horizontal panel takes the window height divided by this",
			Range:       divisorRange,
			Section:     SectionLayout,
		},
		{
			Key:         "layout.panel_width_divisor",
			Type:        "int",
			Default:     strconv.Itoa(l.PanelWidthDivisor),
			Description: "A vertical panel takes the window width divided by this",
			Range:       divisorRange,
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_workspace_window_width",
			Type:        "int",
			Default:     strconv.Itoa(l.DefaultWorkspaceWindowWidth),
			Description: "Window width assumed for a workspace that has never been laid out",
			Range:       ">0",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      logLevels,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      logFormats,
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "(XDG data dir)",
			Description: "Path to the layout state database",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getStorageKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "storage.workspace_id",
			Type:        "string",
			Default:     defaults.Storage.WorkspaceID,
			Description: "Workspace whose layout state is read and saved",
			Section:     SectionStorage,
		},
		{
			Key:         "storage.profile_id",
			Type:        "string",
			Default:     defaults.Storage.ProfileID,
			Description: "Profile whose layout state is read and saved",
			Section:     SectionStorage,
		},
	}
}
