package port

// ConfigTransformer rewrites legacy workbench settings into their current form.
type ConfigTransformer interface {
	// TransformLegacySettings converts retired keys and values (zen mode
	// hideTabs, panel "preserve", activity bar visible) in place.
	// It reports whether rawConfig was changed.
	TransformLegacySettings(rawConfig map[string]any) bool
}
