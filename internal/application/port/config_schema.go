package port

import "github.com/bnema/workbench/internal/domain/entity"

// ConfigSchemaProvider lists every workbench setting with its metadata.
type ConfigSchemaProvider interface {
	// GetSchema returns all setting keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
