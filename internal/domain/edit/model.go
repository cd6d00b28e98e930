package edit

// Keys under which browser state is stored.
const (
	EditsKey = "wf_inline_edits_v2"
	ThemeKey = "wf_theme"
)

// Theme values accepted by SetTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
