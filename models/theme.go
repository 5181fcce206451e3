// File: models/theme.go
package models

// Theme is one of the color palettes a user can pick. The chosen theme name
// is the only presentation preference persisted across visits.
type Theme struct {
	Name          string
	Label         string
	Primary       string
	Secondary     string
	Background    string
	Paper         string
	TextPrimary   string
	TextSecondary string
}

// DefaultThemeName is used when the session carries no preference.
const DefaultThemeName = "nightPetrol"

var themes = map[string]Theme{
	"nightPetrol": {
		Name:          "nightPetrol",
		Label:         "Night Navy / Petrol",
		Primary:       "#00D4AA",
		Secondary:     "#0B1524",
		Background:    "#0B1524",
		Paper:         "#05403E",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#E0E0E0",
	},
	"blackCobalt": {
		Name:          "blackCobalt",
		Label:         "Black / Cobalt",
		Primary:       "#5AA3F0",
		Secondary:     "#0F2C59",
		Background:    "#0D0D0D",
		Paper:         "#153E7E",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#E0E0E0",
	},
}

// ThemeByName resolves a stored theme name, falling back to the default for
// unknown or empty names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultThemeName]
}

// ThemeNames lists the available palettes in a fixed order for the switcher.
func ThemeNames() []string {
	return []string{"nightPetrol", "blackCobalt"}
}
