package usecase

import "github.com/bnema/workbench/internal/application/port"

// TransformLegacyConfigUseCase handles legacy settings transformation.
type TransformLegacyConfigUseCase struct {
	transformer port.ConfigTransformer
}

// NewTransformLegacyConfigUseCase creates a new use case instance.
func NewTransformLegacyConfigUseCase(transformer port.ConfigTransformer) *TransformLegacyConfigUseCase {
	return &TransformLegacyConfigUseCase{transformer: transformer}
}

// Execute rewrites legacy settings in place and reports whether anything changed.
func (uc *TransformLegacyConfigUseCase) Execute(rawConfig map[string]any) bool {
	return uc.transformer.TransformLegacySettings(rawConfig)
}
