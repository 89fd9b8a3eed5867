package entity

import (
	"errors"
	"testing"
)

func TestParsePart(t *testing.T) {
	tests := []struct {
		input    string
		expected Part
		wantErr  bool
	}{
		{input: "workbench.parts.sidebar", expected: PartSideBar},
		{input: "sidebar", expected: PartSideBar},
		{input: "Side-Bar", expected: PartSideBar},
		{input: "secondary-sidebar", expected: PartAuxiliaryBar},
		{input: "auxiliarybar", expected: PartAuxiliaryBar},
		{input: "panel", expected: PartPanel},
		{input: "editor", expected: PartEditor},
		{input: "status-bar", expected: PartStatusBar},
		{input: "minimap", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePart(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPart) {
					t.Fatalf("expected ErrUnknownPart, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParsePart(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPosition_IsHorizontal(t *testing.T) {
	if !PositionBottom.IsHorizontal() || !PositionTop.IsHorizontal() {
		t.Error("top and bottom must be horizontal")
	}
	if PositionLeft.IsHorizontal() || PositionRight.IsHorizontal() {
		t.Error("left and right must be vertical")
	}
}

func TestEditorGroupsLayout_HasMoreThanOneColumn(t *testing.T) {
	tests := []struct {
		name     string
		layout   EditorGroupsLayout
		expected bool
	}{
		{
			name:     "single group",
			layout:   EditorGroupsLayout{Orientation: OrientationHorizontal, Groups: []EditorGroupLayout{{}}},
			expected: false,
		},
		{
			name:     "two columns",
			layout:   EditorGroupsLayout{Orientation: OrientationHorizontal, Groups: []EditorGroupLayout{{}, {}}},
			expected: true,
		},
		{
			name:     "two rows",
			layout:   EditorGroupsLayout{Orientation: OrientationVertical, Groups: []EditorGroupLayout{{}, {}}},
			expected: false,
		},
		{
			name: "row split into columns",
			layout: EditorGroupsLayout{
				Orientation: OrientationVertical,
				Groups:      []EditorGroupLayout{{Groups: []EditorGroupLayout{{}, {}}}, {}},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.HasMoreThanOneColumn(); got != tt.expected {
				t.Errorf("HasMoreThanOneColumn() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConfigurationChange_Affects(t *testing.T) {
	c := ConfigurationChange{Keys: []string{SettingZenModeHideStatusBar}}

	if !c.Affects(SettingZenMode) {
		t.Error("expected parent section to be affected")
	}
	if !c.Affects(SettingZenModeHideStatusBar) {
		t.Error("expected exact key to be affected")
	}
	if c.Affects(SettingZenModeHideActivityBar) {
		t.Error("sibling key must not be affected")
	}
}
