package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
)

// ErrUnknownSection is returned when a schema filter names no known section.
var ErrUnknownSection = errors.New("unknown config section")

// GetConfigSchemaUseCase lists the workbench settings, optionally one section at a time.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput selects the settings to list.
type GetConfigSchemaInput struct {
	// Section matches a section title ("Zen Mode") or a key prefix ("zenMode"),
	// ignoring case. Empty lists every setting.
	Section string
}

// GetConfigSchemaOutput contains the selected settings and every section name
// in schema order.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute returns the settings matching in.Section.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, in GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()
	out := &GetConfigSchemaOutput{
		Keys:     make([]entity.ConfigKeyInfo, 0, len(all)),
		Sections: sectionNames(all),
	}

	filter := strings.TrimSpace(in.Section)
	for _, k := range all {
		if filter == "" || inSection(k, filter) {
			out.Keys = append(out.Keys, k)
		}
	}

	if filter != "" && len(out.Keys) == 0 {
		return nil, fmt.Errorf("%w: %q (sections: %s)", ErrUnknownSection, filter, strings.Join(out.Sections, ", "))
	}
	return out, nil
}

func inSection(k entity.ConfigKeyInfo, filter string) bool {
	if strings.EqualFold(k.Section, filter) {
		return true
	}
	prefix := strings.ToLower(strings.TrimSuffix(filter, ".")) + "."
	return strings.HasPrefix(strings.ToLower(k.Key), prefix)
}

func sectionNames(keys []entity.ConfigKeyInfo) []string {
	seen := make(map[string]bool)
	var names []string
	for _, k := range keys {
		if k.Section == "" || seen[k.Section] {
			continue
		}
		seen[k.Section] = true
		names = append(names, k.Section)
	}
	return names
}
