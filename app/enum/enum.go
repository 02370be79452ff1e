// Package enum defines the appearance modes the toggle switches between.
package enum

// Theme is the appearance mode stored in AppsUseLightTheme and SystemUsesLightTheme.
type Theme struct {
	name string
}

// theme constants, there is no "system" or "unknown" mode
var (
	ThemeLight = Theme{name: "light"}
	ThemeDark  = Theme{name: "dark"}
)

// String returns the lowercase name of the theme
func (t Theme) String() string { return t.name }
