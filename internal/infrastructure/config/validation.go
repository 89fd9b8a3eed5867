package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/workbench/internal/domain/entity"
)

const maxDivisor = 16

var (
	activityBarLocations = []string{
		string(entity.ActivityBarLocationDefault),
		string(entity.ActivityBarLocationTop),
		string(entity.ActivityBarLocationBottom),
		string(entity.ActivityBarLocationHidden),
	}
	sideBarLocations = []string{"left", "right"}
	panelLocations   = []string{"bottom", "top", "left", "right"}
	opensMaximized   = []string{
		string(entity.PanelOpensMaximizedAlways),
		string(entity.PanelOpensMaximizedNever),
		string(entity.PanelOpensMaximizedRememberLast),
	}
	auxiliaryBarVisibilities = []string{
		string(entity.AuxiliaryBarHidden),
		string(entity.AuxiliaryBarVisibleInWorkspace),
		string(entity.AuxiliaryBarVisible),
		string(entity.AuxiliaryBarMaximizedInWorkspace),
		string(entity.AuxiliaryBarMaximized),
	}
	tabModes = []string{
		string(entity.EditorTabsMultiple),
		string(entity.EditorTabsSingle),
		string(entity.EditorTabsNone),
	}
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	logFormats = []string{"console", "json"}
)

// normalizeConfig canonicalizes enum spellings and fills empty values with
// defaults. Unknown values are left for validateConfig to report.
func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	wb := &config.Workbench
	wb.ActivityBar.Location = canonical(wb.ActivityBar.Location, activityBarLocations, defaults.Workbench.ActivityBar.Location)
	wb.SideBar.Location = canonical(wb.SideBar.Location, sideBarLocations, defaults.Workbench.SideBar.Location)
	wb.Panel.DefaultLocation = canonical(wb.Panel.DefaultLocation, panelLocations, defaults.Workbench.Panel.DefaultLocation)

	if strings.EqualFold(strings.TrimSpace(wb.Panel.OpensMaximized), string(entity.PanelOpensMaximizedPreserve)) {
		wb.Panel.OpensMaximized = string(entity.PanelOpensMaximizedRememberLast)
	}
	wb.Panel.OpensMaximized = canonical(wb.Panel.OpensMaximized, opensMaximized, defaults.Workbench.Panel.OpensMaximized)

	wb.SecondarySideBar.DefaultVisibility = canonical(
		wb.SecondarySideBar.DefaultVisibility, auxiliaryBarVisibilities, defaults.Workbench.SecondarySideBar.DefaultVisibility)
	wb.Editor.ShowTabs = canonical(wb.Editor.ShowTabs, tabModes, defaults.Workbench.Editor.ShowTabs)
	config.ZenMode.ShowTabs = canonical(config.ZenMode.ShowTabs, tabModes, defaults.ZenMode.ShowTabs)

	config.Logging.Level = canonical(config.Logging.Level, logLevels, defaults.Logging.Level)
	config.Logging.Format = canonical(config.Logging.Format, logFormats, defaults.Logging.Format)

	config.Storage.WorkspaceID = strings.TrimSpace(config.Storage.WorkspaceID)
	config.Storage.ProfileID = strings.TrimSpace(config.Storage.ProfileID)
}

// canonical returns the allowed spelling matching value case-insensitively,
// fallback when value is empty, and value unchanged otherwise.
func canonical(value string, allowed []string, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return a
		}
	}
	return value
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWorkbench(config)...)
	validationErrors = append(validationErrors, validateZenMode(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWorkbench(config *Config) []string {
	wb := config.Workbench
	var validationErrors []string
	validationErrors = appendEnumError(validationErrors, entity.SettingActivityBarLocation,
		wb.ActivityBar.Location, activityBarLocations)
	validationErrors = appendEnumError(validationErrors, entity.SettingSideBarLocation,
		wb.SideBar.Location, sideBarLocations)
	validationErrors = appendEnumError(validationErrors, entity.SettingPanelDefaultLocation,
		wb.Panel.DefaultLocation, panelLocations)
	validationErrors = appendEnumError(validationErrors, entity.SettingPanelOpensMaximized,
		wb.Panel.OpensMaximized, opensMaximized)
	validationErrors = appendEnumError(validationErrors, entity.SettingAuxiliaryBarDefaultVisibility,
		wb.SecondarySideBar.DefaultVisibility, auxiliaryBarVisibilities)
	validationErrors = appendEnumError(validationErrors, entity.SettingEditorShowTabs,
		wb.Editor.ShowTabs, tabModes)
	return validationErrors
}

func validateZenMode(config *Config) []string {
	return appendEnumError(nil, entity.SettingZenModeShowTabs, config.ZenMode.ShowTabs, tabModes)
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.DefaultSideBarSize <= 0 {
		validationErrors = append(validationErrors, "layout.default_side_bar_size must be positive")
	}
	if l.DefaultWorkspaceWindowWidth <= 0 {
		validationErrors = append(validationErrors, "layout.default_workspace_window_width must be positive")
	}
	divisors := []struct {
		key   string
		value int
	}{
		{"layout.side_bar_width_divisor", l.SideBarWidthDivisor},
		{"layout.panel_height_divisor", l.PanelHeightDivisor},
		{"layout.panel_width_divisor", l.PanelWidthDivisor},
	}
	for _, d := range divisors {
		if d.value < 1 || d.value > maxDivisor {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be between 1 and %d", d.key, maxDivisor))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validationErrors = appendEnumError(validationErrors, "logging.level", config.Logging.Level, logLevels)
	validationErrors = appendEnumError(validationErrors, "logging.format", config.Logging.Format, logFormats)
	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	if config.Storage.WorkspaceID == "" {
		validationErrors = append(validationErrors, "storage.workspace_id must not be empty")
	}
	if config.Storage.ProfileID == "" {
		validationErrors = append(validationErrors, "storage.profile_id must not be empty")
	}
	return validationErrors
}

func appendEnumError(validationErrors []string, key, value string, allowed []string) []string {
	if slices.Contains(allowed, value) {
		return validationErrors
	}
	return append(validationErrors, fmt.Sprintf("%s must be one of: %s (got %q)", key, strings.Join(allowed, ", "), value))
}
