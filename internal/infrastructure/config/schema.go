package config

// Config represents the complete configuration for workbench.
//
// The workbench and zenMode sections use the dotted camelCase setting names
// the layout engine reads (workbench.sideBar.location, zenMode.hideStatusBar).
type Config struct {
	Workbench WorkbenchConfig `mapstructure:"workbench" toml:"workbench" yaml:"workbench"`
	ZenMode   ZenModeConfig   `mapstructure:"zenMode" toml:"zenMode" yaml:"zenMode"`
	// Layout holds the thresholds used to size parts in a new window.
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" yaml:"layout"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" yaml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" yaml:"logging"`
	// Storage selects which workspace and profile rows layout state is read from.
	Storage StorageConfig `mapstructure:"storage" toml:"storage" yaml:"storage"`

	// AuxiliaryBarConfigured is true when the secondary side bar default
	// visibility is present in the config file rather than defaulted.
	AuxiliaryBarConfigured bool `mapstructure:"-" toml:"-" yaml:"-" json:"-"`
}

// WorkbenchConfig groups the workbench.* settings.
type WorkbenchConfig struct {
	ActivityBar      ActivityBarConfig      `mapstructure:"activityBar" toml:"activityBar" yaml:"activityBar"`
	StatusBar        StatusBarConfig        `mapstructure:"statusBar" toml:"statusBar" yaml:"statusBar"`
	SideBar          SideBarConfig          `mapstructure:"sideBar" toml:"sideBar" yaml:"sideBar"`
	Panel            PanelConfig            `mapstructure:"panel" toml:"panel" yaml:"panel"`
	SecondarySideBar SecondarySideBarConfig `mapstructure:"secondarySideBar" toml:"secondarySideBar" yaml:"secondarySideBar"`
	Editor           EditorConfig           `mapstructure:"editor" toml:"editor" yaml:"editor"`
}

// ActivityBarConfig controls where the activity bar is shown.
type ActivityBarConfig struct {
	// Location is default, top, bottom or hidden.
	Location string `mapstructure:"location" toml:"location" yaml:"location" jsonschema:"enum=default,enum=top,enum=bottom,enum=hidden"`
	// Visible is the legacy boolean. When set it wins over Location.
	Visible *bool `mapstructure:"visible" toml:"visible,omitempty" yaml:"visible,omitempty"`
}

// StatusBarConfig controls the status bar.
type StatusBarConfig struct {
	Visible bool `mapstructure:"visible" toml:"visible" yaml:"visible"`
}

// SideBarConfig controls the primary side bar.
type SideBarConfig struct {
	Location string `mapstructure:"location" toml:"location" yaml:"location" jsonschema:"enum=left,enum=right"`
}

// PanelConfig controls the panel.
type PanelConfig struct {
	DefaultLocation string `mapstructure:"defaultLocation" toml:"defaultLocation" yaml:"defaultLocation" jsonschema:"enum=bottom,enum=top,enum=left,enum=right"`
	OpensMaximized  string `mapstructure:"opensMaximized" toml:"opensMaximized" yaml:"opensMaximized" jsonschema:"enum=always,enum=never,enum=rememberLast"`
}

// SecondarySideBarConfig controls the auxiliary bar.
type SecondarySideBarConfig struct {
	DefaultVisibility string `mapstructure:"defaultVisibility" toml:"defaultVisibility" yaml:"defaultVisibility" jsonschema:"enum=hidden,enum=visibleInWorkspace,enum=visible,enum=maximizedInWorkspace,enum=maximized"`
}

// EditorConfig controls the editor area.
type EditorConfig struct {
	CenteredLayoutAutoResize bool   `mapstructure:"centeredLayoutAutoResize" toml:"centeredLayoutAutoResize" yaml:"centeredLayoutAutoResize"`
	ShowTabs                 string `mapstructure:"showTabs" toml:"showTabs" yaml:"showTabs" jsonschema:"enum=multiple,enum=single,enum=none"`
}

// ZenModeConfig groups the zenMode.* settings.
type ZenModeConfig struct {
	FullScreen          bool   `mapstructure:"fullScreen" toml:"fullScreen" yaml:"fullScreen"`
	CenterLayout        bool   `mapstructure:"centerLayout" toml:"centerLayout" yaml:"centerLayout"`
	HideActivityBar     bool   `mapstructure:"hideActivityBar" toml:"hideActivityBar" yaml:"hideActivityBar"`
	HideStatusBar       bool   `mapstructure:"hideStatusBar" toml:"hideStatusBar" yaml:"hideStatusBar"`
	HideLineNumbers     bool   `mapstructure:"hideLineNumbers" toml:"hideLineNumbers" yaml:"hideLineNumbers"`
	ShowTabs            string `mapstructure:"showTabs" toml:"showTabs" yaml:"showTabs" jsonschema:"enum=multiple,enum=single,enum=none"`
	SilentNotifications bool   `mapstructure:"silentNotifications" toml:"silentNotifications" yaml:"silentNotifications"`
	Restore             bool   `mapstructure:"restore" toml:"restore" yaml:"restore"`
}

// LayoutConfig holds default sizing thresholds.
type LayoutConfig struct {
	DefaultSideBarSize          int `mapstructure:"default_side_bar_size" toml:"default_side_bar_size" yaml:"default_side_bar_size"`
	SideBarWidthDivisor         int `mapstructure:"side_bar_width_divisor" toml:"side_bar_width_divisor" yaml:"side_bar_width_divisor"`
	PanelHeightDivisor          int `mapstructure:"panel_height_divisor" toml:"panel_height_divisor" yaml:"panel_height_divisor"`
	PanelWidthDivisor           int `mapstructure:"panel_width_divisor" toml:"panel_width_divisor" yaml:"panel_width_divisor"`
	DefaultWorkspaceWindowWidth int `mapstructure:"default_workspace_window_width" toml:"default_workspace_window_width" yaml:"default_workspace_window_width"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	// Path to the sqlite file. Empty means $XDG_DATA_HOME/workbench/workbench.sqlite.
	Path string `mapstructure:"path" toml:"path" yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" yaml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" toml:"format" yaml:"format" jsonschema:"enum=console,enum=json"`
}

// StorageConfig names the workspace and profile layout state belongs to.
type StorageConfig struct {
	WorkspaceID string `mapstructure:"workspace_id" toml:"workspace_id" yaml:"workspace_id"`
	ProfileID   string `mapstructure:"profile_id" toml:"profile_id" yaml:"profile_id"`
}
