package domain

// Theme enumerates supported display themes. ThemeAuto is accepted and
// persisted but applies no visual effect; it stays a no-op until the
// product defines one.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto"
)

// Valid reports whether the theme is a known value.
func (t Theme) Valid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeAuto:
		return true
	}
	return false
}

// Preferences holds the user-facing display settings. This is the combined
// settings object persisted to client-state storage.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
	TimeZone string `json:"timeZone,omitempty"`
}

// DefaultPreferences are applied when storage holds no settings yet.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark, Language: "vi"}
}
