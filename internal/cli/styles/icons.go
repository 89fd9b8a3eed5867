// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconCursor  = "\uf054" // chevron-right
	IconConfig  = "\ue615" // config
	IconPlus    = "\uf067" // plus
	IconMinus   = "\uf068" // minus

	// Layout
	IconLayout   = "\uf0db" // columns
	IconTree     = "\uf1bb" // tree
	IconEye      = "\uf06e" // eye (visible)
	IconEyeSlash = "\uf070" // eye-slash (hidden)
	IconExpand   = "\uf065" // expand (maximized)
	IconDatabase = "\uf1c0" // database
)
