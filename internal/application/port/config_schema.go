package port

import "github.com/bnema/fontstack/internal/domain/entity"

// ConfigSchemaProvider describes the keys of the configuration file.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
