package entity

// ConfigKeyInfo describes a single workbench setting for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the setting (e.g., "zenMode.hideStatusBar")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "int", "bool")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	// Description explains what the setting changes in the layout
	Description string `json:"description"`

	// Values contains valid enum values (for string enums)
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., "1-16")
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Workbench", "Zen Mode")
	Section string `json:"section"`
}
