package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const keyAuxiliaryBarVisibility = "workbench.secondarySideBar.defaultVisibility"

// Manager handles configuration loading, watching, and updating.
type Manager struct {
	config      *Config
	viper       *viper.Viper
	configFile  string
	transformer *LegacyConfigTransformer
	mu          sync.RWMutex
	callbacks   []func(ctx context.Context, previous, current *Config)
	watching    bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads and writes path instead of the XDG config file.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		if path != "" {
			m.configFile = path
		}
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:       viper.New(),
		transformer: NewLegacyConfigTransformer(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configFile == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configFile = configFile
	}

	m.viper.SetConfigFile(m.configFile)
	m.viper.SetConfigType("toml")

	// WORKBENCH_ZENMODE_HIDESTATUSBAR, WORKBENCH_LOGGING_LEVEL, ...
	m.viper.SetEnvPrefix("WORKBENCH")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	bindings := map[string]string{
		"logging.level":  "WORKBENCH_LOG_LEVEL",
		"logging.format": "WORKBENCH_LOG_FORMAT",
		"database.path":  "WORKBENCH_DB",
	}
	for key, env := range bindings {
		if err := m.viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A default file is written when none exists yet.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if _, err := os.Stat(m.configFile); errors.Is(err, os.ErrNotExist) {
		if createErr := WriteConfigOrdered(DefaultConfig(), m.configFile); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
		if _, schemaErr := GenerateSchemaFile(filepath.Dir(m.configFile)); schemaErr != nil {
			return schemaErr
		}
	}

	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// build reads the file, applies legacy rewrites and returns a normalized,
// validated configuration. Must be called with m.mu held for write.
func (m *Manager) build() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if err := m.applyLegacySettings(); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	config.AuxiliaryBarConfigured = m.viper.InConfig(keyAuxiliaryBarVisibility)

	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// applyLegacySettings merges the rewritten form of retired settings over the
// values viper read, leaving the file itself untouched.
func (m *Manager) applyLegacySettings() error {
	raw, err := readRawConfig(m.configFile)
	if err != nil {
		return err
	}
	if !m.transformer.TransformLegacySettings(raw) {
		return nil
	}
	if err := m.viper.MergeConfigMap(raw); err != nil {
		return fmt.Errorf("failed to apply legacy settings: %w", err)
	}
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// UpdateSetting writes a single dotted setting to the config file and reloads.
// A nil value removes the setting so its default applies again.
func (m *Manager) UpdateSetting(ctx context.Context, key string, value any) error {
	if !IsKnownSetting(key) {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}

	m.mu.Lock()

	original, err := os.ReadFile(m.configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		m.mu.Unlock()
		return fmt.Errorf("failed to read config file: %w", err)
	}

	raw := make(map[string]any)
	if len(original) > 0 {
		if err := toml.Unmarshal(original, &raw); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if value == nil {
		deleteRawKey(raw, key)
	} else {
		setRawKey(raw, key, value)
	}

	if err := writeRawConfig(raw, m.configFile); err != nil {
		m.mu.Unlock()
		return err
	}

	config, err := m.build()
	if err != nil {
		// Put the previous file back so the next reload does not pick up a
		// value that failed validation.
		if restoreErr := os.WriteFile(m.configFile, original, filePerm); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
		m.mu.Unlock()
		return err
	}

	previous := m.config
	m.config = config
	m.notifyCallbacksLocked(ctx, previous)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setWorkbenchDefaults(defaults)
	m.setZenModeDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.setLoggingDefaults(defaults)

	// database.path is resolved in build; the empty default lets WORKBENCH_DB apply.
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("storage.workspace_id", defaults.Storage.WorkspaceID)
	m.viper.SetDefault("storage.profile_id", defaults.Storage.ProfileID)
}

func (m *Manager) setWorkbenchDefaults(defaults *Config) {
	wb := defaults.Workbench
	m.viper.SetDefault("workbench.activityBar.location", wb.ActivityBar.Location)
	m.viper.SetDefault("workbench.statusBar.visible", wb.StatusBar.Visible)
	m.viper.SetDefault("workbench.sideBar.location", wb.SideBar.Location)
	m.viper.SetDefault("workbench.panel.defaultLocation", wb.Panel.DefaultLocation)
	m.viper.SetDefault("workbench.panel.opensMaximized", wb.Panel.OpensMaximized)
	m.viper.SetDefault(keyAuxiliaryBarVisibility, wb.SecondarySideBar.DefaultVisibility)
	m.viper.SetDefault("workbench.editor.centeredLayoutAutoResize", wb.Editor.CenteredLayoutAutoResize)
	m.viper.SetDefault("workbench.editor.showTabs", wb.Editor.ShowTabs)
}

func (m *Manager) setZenModeDefaults(defaults *Config) {
	zen := defaults.ZenMode
	m.viper.SetDefault("zenMode.fullScreen", zen.FullScreen)
	m.viper.SetDefault("zenMode.centerLayout", zen.CenterLayout)
	m.viper.SetDefault("zenMode.hideActivityBar", zen.HideActivityBar)
	m.viper.SetDefault("zenMode.hideStatusBar", zen.HideStatusBar)
	m.viper.SetDefault("zenMode.hideLineNumbers", zen.HideLineNumbers)
	m.viper.SetDefault("zenMode.showTabs", zen.ShowTabs)
	m.viper.SetDefault("zenMode.silentNotifications", zen.SilentNotifications)
	m.viper.SetDefault("zenMode.restore", zen.Restore)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.default_side_bar_size", defaults.Layout.DefaultSideBarSize)
	m.viper.SetDefault("layout.side_bar_width_divisor", defaults.Layout.SideBarWidthDivisor)
	m.viper.SetDefault("layout.panel_height_divisor", defaults.Layout.PanelHeightDivisor)
	m.viper.SetDefault("layout.panel_width_divisor", defaults.Layout.PanelWidthDivisor)
	m.viper.SetDefault("layout.default_workspace_window_width", defaults.Layout.DefaultWorkspaceWindowWidth)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func readRawConfig(path string) (map[string]any, error) {
	raw := make(map[string]any)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return raw, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return raw, nil
}

func setRawKey(raw map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	current := raw
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func deleteRawKey(raw map[string]any, key string) {
	parts := strings.Split(key, ".")
	current := raw
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return
		}
		current = next
	}
	delete(current, parts[len(parts)-1])
}
