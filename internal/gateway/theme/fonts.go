package theme

// Font is a loadable font handle: a display name, the CSS font-family value,
// and the stylesheet that loads it.
type Font struct {
	Name          string
	Family        string
	StylesheetURL string
}

// FontMap maps supported font identifiers to concrete handles. It is built
// once at composition time and passed into the injector, so the supported set
// is overridable per deployment.
type FontMap map[string]Font

// DefaultFontName is used whenever a tenant's font is unknown or unset.
const DefaultFontName = "Inter"

var fallbackFont = Font{
	Name:          "Inter",
	Family:        `"Inter", sans-serif`,
	StylesheetURL: "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap",
}

// DefaultFonts returns the supported font set.
func DefaultFonts() FontMap {
	return FontMap{
		"Inter": fallbackFont,
		"Roboto": {
			Name:          "Roboto",
			Family:        `"Roboto", sans-serif`,
			StylesheetURL: "https://fonts.googleapis.com/css2?family=Roboto:wght@300;400;500;700&display=swap",
		},
		"Poppins": {
			Name:          "Poppins",
			Family:        `"Poppins", sans-serif`,
			StylesheetURL: "https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;500;600;700&display=swap",
		},
		"Montserrat": {
			Name:          "Montserrat",
			Family:        `"Montserrat", sans-serif`,
			StylesheetURL: "https://fonts.googleapis.com/css2?family=Montserrat:wght@300;400;500;600;700&display=swap",
		},
		"Lato": {
			Name:          "Lato",
			Family:        `"Lato", sans-serif`,
			StylesheetURL: "https://fonts.googleapis.com/css2?family=Lato:wght@300;400;700&display=swap",
		},
	}
}

// Resolve returns the handle for name, falling back to the default font for
// any unknown identifier. Total: the result is always a loadable handle, so
// arbitrary strings can never reach font loading.
func (m FontMap) Resolve(name string) Font {
	if f, ok := m[name]; ok {
		return f
	}
	if f, ok := m[DefaultFontName]; ok {
		return f
	}
	return fallbackFont
}
