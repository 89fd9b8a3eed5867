package config

import (
	"fmt"
	"strings"

	"github.com/bnema/workbench/internal/application/port"
)

// ConfigDiffFormatter renders a pending migration as a diff for display.
type ConfigDiffFormatter struct {
	migrator port.ConfigMigrator
}

// NewDiffFormatter creates a ConfigDiffFormatter that looks up defaults through migrator.
func NewDiffFormatter(migrator port.ConfigMigrator) *ConfigDiffFormatter {
	return &ConfigDiffFormatter{migrator: migrator}
}

// FormatMigrationAsDiff returns the keys a migration would add and drop.
func (f *ConfigDiffFormatter) FormatMigrationAsDiff(result *port.MigrationResult) string {
	if result == nil || (len(result.MissingKeys) == 0 && len(result.DeprecatedKeys) == 0) {
		return "No changes detected."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Config migration changes for %s:\n\n", result.ConfigFile)

	for _, key := range result.MissingKeys {
		info := f.migrator.GetKeyInfo(key)
		fmt.Fprintf(&sb, "  + %s = %s (%s)\n", info.Key, info.DefaultValue, info.Type)
	}
	for _, key := range result.DeprecatedKeys {
		fmt.Fprintf(&sb, "  - %s (deprecated)\n", key)
	}

	return sb.String()
}
