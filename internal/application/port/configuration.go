package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// ConfigurationReader exposes the workbench settings the layout engine reads.
type ConfigurationReader interface {
	// Settings returns a snapshot of the current settings.
	Settings() entity.WorkbenchSettings

	// OnDidChangeConfiguration registers a listener called after settings change.
	// The returned function removes the listener.
	OnDidChangeConfiguration(fn func(ctx context.Context, change entity.ConfigurationChange)) func()
}

// ConfigurationWriter updates a single setting by its dotted key.
// Passing a nil value removes the setting so its default applies again.
type ConfigurationWriter interface {
	UpdateSetting(ctx context.Context, key string, value any) error
}

// Configuration combines read and write access to settings.
type Configuration interface {
	ConfigurationReader
	ConfigurationWriter
}
