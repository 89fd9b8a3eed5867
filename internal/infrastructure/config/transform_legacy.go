package config

import "github.com/bnema/workbench/internal/domain/entity"

const (
	sectionWorkbench = "workbench"
	sectionZenMode   = "zenMode"
)

// LegacyConfigTransformer implements port.ConfigTransformer.
// It rewrites retired setting spellings into their current form.
type LegacyConfigTransformer struct{}

// NewLegacyConfigTransformer creates a new transformer.
func NewLegacyConfigTransformer() *LegacyConfigTransformer {
	return &LegacyConfigTransformer{}
}

// TransformLegacySettings converts old settings in rawConfig in place:
//
//	[zenMode]
//	hideTabs = true                      ->  showTabs = "none"
//
//	[workbench.panel]
//	opensMaximized = "preserve"          ->  opensMaximized = "rememberLast"
//
//	[workbench.activityBar]
//	visible = false                      ->  location = "hidden"
//
// An explicit new-style key always wins over the legacy one.
func (t *LegacyConfigTransformer) TransformLegacySettings(rawConfig map[string]any) bool {
	changed := t.transformZenModeTabs(rawConfig)
	changed = t.transformPanelOpensMaximized(rawConfig) || changed
	changed = t.transformActivityBarVisible(rawConfig) || changed
	return changed
}

func (*LegacyConfigTransformer) transformZenModeTabs(rawConfig map[string]any) bool {
	zen, ok := rawConfig[sectionZenMode].(map[string]any)
	if !ok {
		return false
	}
	hideTabs, ok := zen["hideTabs"].(bool)
	if !ok {
		return false
	}

	delete(zen, "hideTabs")
	if _, exists := zen["showTabs"]; !exists {
		if hideTabs {
			zen["showTabs"] = string(entity.EditorTabsNone)
		} else {
			zen["showTabs"] = string(entity.EditorTabsMultiple)
		}
	}
	return true
}

func (*LegacyConfigTransformer) transformPanelOpensMaximized(rawConfig map[string]any) bool {
	panel := nestedSection(rawConfig, sectionWorkbench, "panel")
	if panel == nil {
		return false
	}
	if v, ok := panel["opensMaximized"].(string); !ok || v != string(entity.PanelOpensMaximizedPreserve) {
		return false
	}
	panel["opensMaximized"] = string(entity.PanelOpensMaximizedRememberLast)
	return true
}

func (*LegacyConfigTransformer) transformActivityBarVisible(rawConfig map[string]any) bool {
	activityBar := nestedSection(rawConfig, sectionWorkbench, "activityBar")
	if activityBar == nil {
		return false
	}
	visible, ok := activityBar["visible"].(bool)
	if !ok || visible {
		return false
	}
	if _, exists := activityBar["location"]; exists {
		return false
	}
	activityBar["location"] = string(entity.ActivityBarLocationHidden)
	return true
}

func nestedSection(rawConfig map[string]any, path ...string) map[string]any {
	current := rawConfig
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}
