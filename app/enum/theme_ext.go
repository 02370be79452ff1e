package enum

import "strings"

// ThemeFromValue decodes a stored *UsesLightTheme flag. Zero is dark, any other value is light,
// including out-of-range values like 2 or 255.
func ThemeFromValue(v uint32) Theme {
	if v == 0 {
		return ThemeDark
	}
	return ThemeLight
}

// Value returns the canonical stored flag for the theme: 0 for dark, 1 for light.
func (t Theme) Value() uint32 {
	if t == ThemeDark {
		return 0
	}
	return 1
}

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Title returns the capitalized name used in console output, i.e. "Light" or "Dark".
func (t Theme) Title() string {
	if t.name == "" {
		return ""
	}
	return strings.ToUpper(t.name[:1]) + t.name[1:]
}
