package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port/mocks"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "workbench.sideBar.location",
			Type:        "string",
			Default:     "left",
			Description: "Side of the window the primary side bar is placed on",
			Values:      []string{"left", "right"},
			Section:     "Workbench",
		},
		{
			Key:     "zenMode.hideStatusBar",
			Type:    "bool",
			Default: "true",
			Section: "Zen Mode",
		},
		{
			Key:     "zenMode.restore",
			Type:    "bool",
			Default: "true",
			Section: "Zen Mode",
		},
		{
			Key:     "layout.panel_height_divisor",
			Type:    "int",
			Default: "3",
			Range:   "1-16",
			Section: "Layout",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
	}{
		{
			name: "no filter returns every key",
			want: []string{
				"workbench.sideBar.location",
				"zenMode.hideStatusBar",
				"zenMode.restore",
				"layout.panel_height_divisor",
			},
		},
		{
			name:    "section title ignores case",
			section: "zen mode",
			want:    []string{"zenMode.hideStatusBar", "zenMode.restore"},
		},
		{
			name:    "key prefix",
			section: "layout",
			want:    []string{"layout.panel_height_divisor"},
		},
		{
			name:    "nested key prefix with trailing dot",
			section: "workbench.sideBar.",
			want:    []string{"workbench.sideBar.location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			provider := mocks.NewMockConfigSchemaProvider(t)
			provider.EXPECT().GetSchema().Return(schemaKeys()).Once()
			uc := usecase.NewGetConfigSchemaUseCase(provider)

			// Act
			out, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: tt.section})

			// Assert
			require.NoError(t, err)
			got := make([]string, 0, len(out.Keys))
			for _, k := range out.Keys {
				got = append(got, k.Key)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"Workbench", "Zen Mode", "Layout"}, out.Sections)
		})
	}
}

func TestGetConfigSchemaUseCase_UnknownSection(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().GetSchema().Return(schemaKeys()).Once()
	uc := usecase.NewGetConfigSchemaUseCase(provider)

	out, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "telemetry"})

	require.ErrorIs(t, err, usecase.ErrUnknownSection)
	assert.Nil(t, out)
}

func TestGetConfigSchemaUseCase_EmptySchema(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{}).Once()
	uc := usecase.NewGetConfigSchemaUseCase(provider)

	out, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Keys)
	assert.Empty(t, out.Sections)
}
