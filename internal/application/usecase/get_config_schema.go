package usecase

import (
	"context"
	"strings"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/logging"
)

// GetConfigSchemaUseCase lists the keys of the configuration file.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput filters the returned keys.
type GetConfigSchemaInput struct {
	// Section keeps only keys of one section, matched case-insensitively.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute returns the configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(ctx context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	section := strings.TrimSpace(input.Section)
	if section == "" {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	filtered := make([]entity.ConfigKeyInfo, 0, len(keys))
	for _, k := range keys {
		if strings.EqualFold(k.Section, section) {
			filtered = append(filtered, k)
		}
	}
	logging.FromContext(ctx).Debug().
		Str("section", section).
		Int("keys", len(filtered)).
		Msg("filtered config schema")
	return &GetConfigSchemaOutput{Keys: filtered}, nil
}
