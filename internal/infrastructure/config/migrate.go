package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
)

// legacyKeys are still read even though the defaults no longer carry them.
var legacyKeys = map[string]bool{
	entity.SettingActivityBarVisible: true,
}

// Migrator implements port.ConfigMigrator for comparing and merging config files.
type Migrator struct {
	configFile  string
	transformer *LegacyConfigTransformer
	// defaults holds every default key in dot notation with its TOML value.
	defaults map[string]any
}

// NewMigrator creates a Migrator for configFile, or the XDG config file when empty.
func NewMigrator(configFile string) (*Migrator, error) {
	if configFile == "" {
		path, err := GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get config file path: %w", err)
		}
		configFile = path
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}

	defaults := make(map[string]any)
	flattenMapWithValues(raw, "", defaults)
	// database.path is resolved at load time.
	delete(defaults, "database.path")

	return &Migrator{
		configFile:  configFile,
		transformer: NewLegacyConfigTransformer(),
		defaults:    defaults,
	}, nil
}

// CheckMigration checks whether the user config is missing default keys or
// carries keys that are no longer read. Returns nil if no migration is needed.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	if _, statErr := os.Stat(m.configFile); errors.Is(statErr, os.ErrNotExist) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeysWithValues()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	missing := m.findMissingKeys(userKeys)
	deprecated := m.findDeprecatedKeys(userKeys)
	if len(missing) == 0 && len(deprecated) == 0 {
		return nil, nil
	}

	return &port.MigrationResult{
		MissingKeys:    missing,
		DeprecatedKeys: deprecated,
		ConfigFile:     m.configFile,
	}, nil
}

// Migrate rewrites legacy settings, adds missing default keys and drops
// deprecated ones. It returns the keys that were added.
func (m *Migrator) Migrate() ([]string, error) {
	raw, err := readRawConfig(m.configFile)
	if err != nil {
		return nil, err
	}

	m.transformer.TransformLegacySettings(raw)

	flat := make(map[string]any)
	flattenMapWithValues(raw, "", flat)

	for _, key := range m.findDeprecatedKeys(flat) {
		deleteRawKey(raw, key)
	}
	added := m.findMissingKeys(flat)
	for _, key := range added {
		setRawKey(raw, key, m.defaults[key])
	}

	if err := writeRawConfig(raw, m.configFile); err != nil {
		return nil, err
	}
	return added, nil
}

// GetKeyInfo returns detailed information about a config key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value, ok := m.defaults[key]
	if !ok {
		return port.KeyInfo{
			Key:          key,
			Type:         "unknown",
			DefaultValue: "unknown",
		}
	}

	return port.KeyInfo{
		Key:          key,
		Type:         getTypeName(value),
		DefaultValue: formatValue(value),
	}
}

// getAllDefaultKeys returns all keys from the default configuration.
func (m *Migrator) getAllDefaultKeys() []string {
	keys := make([]string, 0, len(m.defaults))
	for key := range m.defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// getUserConfigKeysWithValues parses the user's TOML file and returns keys with their values.
func (m *Migrator) getUserConfigKeysWithValues() (map[string]any, error) {
	raw, err := readRawConfig(m.configFile)
	if err != nil {
		return nil, err
	}

	result := make(map[string]any)
	flattenMapWithValues(raw, "", result)
	return result, nil
}

// findMissingKeys returns keys that are in defaults but not in user config.
func (m *Migrator) findMissingKeys(userKeys map[string]any) []string {
	missing := make([]string, 0)
	for _, key := range m.getAllDefaultKeys() {
		if _, ok := userKeys[key]; ok {
			continue
		}
		missing = append(missing, key)
	}
	return missing
}

// findDeprecatedKeys returns user keys that don't exist in defaults.
func (m *Migrator) findDeprecatedKeys(userKeys map[string]any) []string {
	var deprecated []string
	for key := range userKeys {
		if _, ok := m.defaults[key]; ok || legacyKeys[key] || key == "database.path" {
			continue
		}
		deprecated = append(deprecated, key)
	}
	sort.Strings(deprecated)
	return deprecated
}

// flattenMapWithValues recursively flattens a nested map to dot-notation keys with values.
func flattenMapWithValues(data map[string]any, prefix string, result map[string]any) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok {
			flattenMapWithValues(nested, key, result)
			continue
		}
		result[key] = v
	}
}

// getTypeName returns a human-readable type name for a value.
func getTypeName(value any) string {
	if value == nil {
		return "unknown"
	}

	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "list"
	case reflect.Map:
		return "map"
	default:
		return t.String()
	}
}

// formatValue returns a human-readable string representation of a value.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return `""`
		}
		const maxStringLen = 50
		if len(v) > maxStringLen {
			return fmt.Sprintf("%q...", v[:maxStringLen-3])
		}
		return fmt.Sprintf("%q", v)
	case []any:
		if len(v) == 0 {
			return "[]"
		}
		return fmt.Sprintf("[%d items]", len(v))
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
