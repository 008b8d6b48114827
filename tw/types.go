package tw

// PartialStyle represents a partial style that can be merged.
// Used in ClassMap for individual utility class definitions.
type PartialStyle struct {
	// Colors
	TextColor       *uint32
	BackgroundColor *uint32
	BorderColor     *uint32

	// Typography
	FontFamily *string
	FontSize   *float32
	FontWeight *int
	FontStyle  *string

	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32
	MarginTop     *float32
	MarginRight   *float32
	MarginBottom  *float32
	MarginLeft    *float32

	// Borders
	BorderWidth *float32

	// Interactivity
	Cursor *string
}

// ThemeConfig holds the consumer's class configuration.
// This is registered via SetConfig() at app startup.
type ThemeConfig struct {
	ClassMap map[string]PartialStyle
	Fonts    map[string]string // family key (sans, serif, mono, custom) -> font name
}

// registeredConfig holds the consumer's theme configuration.
// If nil, falls back to the built-in defaults in classmap.go.
var registeredConfig *ThemeConfig

// SetConfig registers the consumer's theme configuration.
// This should be called at app startup before any parsing occurs.
func SetConfig(config ThemeConfig) {
	registeredConfig = &config
}

// ResetConfig drops any registered configuration.
func ResetConfig() {
	registeredConfig = nil
}

// GetClassMap returns the registered ClassMap or falls back to the built-in one.
func GetClassMap() map[string]PartialStyle {
	if registeredConfig != nil && registeredConfig.ClassMap != nil {
		return registeredConfig.ClassMap
	}
	return ClassMap
}

// GetFonts returns the registered fonts or falls back to the built-in ones.
func GetFonts() map[string]string {
	if registeredConfig != nil && registeredConfig.Fonts != nil {
		return registeredConfig.Fonts
	}
	return DefaultFonts
}

// FontName maps a family key from a font-* class to a concrete font name.
// Unknown keys are returned unchanged so font-[Inter] works without registration.
func FontName(family string) string {
	if name, ok := GetFonts()[family]; ok {
		return name
	}
	return family
}
