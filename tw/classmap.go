package tw

import "fmt"

// DefaultFonts maps font-* family keys to concrete font names.
var DefaultFonts = map[string]string{
	"sans":  "SansSerif",
	"serif": "Serif",
	"mono":  "Monospaced",
}

// palette holds the color scales the built-in class map exposes as text-*, bg-* and border-*.
var palette = map[string]map[string]uint32{
	"gray": {
		"50": 0xF9FAFBFF, "100": 0xF3F4F6FF, "200": 0xE5E7EBFF, "300": 0xD1D5DBFF, "400": 0x9CA3AFFF,
		"500": 0x6B7280FF, "600": 0x4B5563FF, "700": 0x374151FF, "800": 0x1F2937FF, "900": 0x111827FF,
	},
	"slate": {
		"50": 0xF8FAFCFF, "100": 0xF1F5F9FF, "200": 0xE2E8F0FF, "300": 0xCBD5E1FF, "400": 0x94A3B8FF,
		"500": 0x64748BFF, "600": 0x475569FF, "700": 0x334155FF, "800": 0x1E293BFF, "900": 0x0F172AFF,
	},
	"blue": {
		"50": 0xEFF6FFFF, "100": 0xDBEAFEFF, "200": 0xBFDBFEFF, "300": 0x93C5FDFF, "400": 0x60A5FAFF,
		"500": 0x3B82F6FF, "600": 0x2563EBFF, "700": 0x1D4ED8FF, "800": 0x1E40AFFF, "900": 0x1E3A8AFF,
	},
	"red": {
		"50": 0xFEF2F2FF, "100": 0xFEE2E2FF, "200": 0xFECACAFF, "300": 0xFCA5A5FF, "400": 0xF87171FF,
		"500": 0xEF4444FF, "600": 0xDC2626FF, "700": 0xB91C1CFF, "800": 0x991B1BFF, "900": 0x7F1D1DFF,
	},
}

// ClassMap is the built-in utility table used when no ThemeConfig is registered.
var ClassMap = buildClassMap()

func buildClassMap() map[string]PartialStyle {
	m := map[string]PartialStyle{
		// Font families
		"font-sans":  {FontFamily: strPtr("sans")},
		"font-serif": {FontFamily: strPtr("serif")},
		"font-mono":  {FontFamily: strPtr("mono")},

		// Font sizes
		"text-xs":   {FontSize: f32(12)},
		"text-sm":   {FontSize: f32(14)},
		"text-base": {FontSize: f32(16)},
		"text-lg":   {FontSize: f32(18)},
		"text-xl":   {FontSize: f32(20)},
		"text-2xl":  {FontSize: f32(24)},

		// Font weights and styles
		"font-light":    {FontWeight: intPtr(300)},
		"font-normal":   {FontWeight: intPtr(400)},
		"font-medium":   {FontWeight: intPtr(500)},
		"font-semibold": {FontWeight: intPtr(600)},
		"font-bold":     {FontWeight: intPtr(700)},
		"italic":        {FontStyle: strPtr("italic")},
		"not-italic":    {FontStyle: strPtr("normal")},

		// Borders
		"border":   {BorderWidth: f32(1)},
		"border-0": {BorderWidth: f32(0)},
		"border-2": {BorderWidth: f32(2)},

		// Cursors
		"cursor-default":     {Cursor: strPtr("default")},
		"cursor-pointer":     {Cursor: strPtr("pointer")},
		"cursor-text":        {Cursor: strPtr("text")},
		"cursor-not-allowed": {Cursor: strPtr("not-allowed")},

		// Plain colors
		"text-black":   {TextColor: u32(0x000000FF)},
		"text-white":   {TextColor: u32(0xFFFFFFFF)},
		"bg-black":     {BackgroundColor: u32(0x000000FF)},
		"bg-white":     {BackgroundColor: u32(0xFFFFFFFF)},
		"border-black": {BorderColor: u32(0x000000FF)},
		"border-white": {BorderColor: u32(0xFFFFFFFF)},
	}

	for name, scale := range palette {
		for shade, rgba := range scale {
			m[fmt.Sprintf("text-%s-%s", name, shade)] = PartialStyle{TextColor: u32(rgba)}
			m[fmt.Sprintf("bg-%s-%s", name, shade)] = PartialStyle{BackgroundColor: u32(rgba)}
			m[fmt.Sprintf("border-%s-%s", name, shade)] = PartialStyle{BorderColor: u32(rgba)}
		}
	}

	// Spacing scale: 1 unit = 4px
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 8} {
		v := float32(n * 4)
		m[fmt.Sprintf("p-%d", n)] = PartialStyle{PaddingTop: f32(v), PaddingRight: f32(v), PaddingBottom: f32(v), PaddingLeft: f32(v)}
		m[fmt.Sprintf("px-%d", n)] = PartialStyle{PaddingLeft: f32(v), PaddingRight: f32(v)}
		m[fmt.Sprintf("py-%d", n)] = PartialStyle{PaddingTop: f32(v), PaddingBottom: f32(v)}
		m[fmt.Sprintf("m-%d", n)] = PartialStyle{MarginTop: f32(v), MarginRight: f32(v), MarginBottom: f32(v), MarginLeft: f32(v)}
		m[fmt.Sprintf("my-%d", n)] = PartialStyle{MarginTop: f32(v), MarginBottom: f32(v)}
		m[fmt.Sprintf("mx-%d", n)] = PartialStyle{MarginLeft: f32(v), MarginRight: f32(v)}
	}

	return m
}

func f32(v float32) *float32 { return &v }
func intPtr(v int) *int      { return &v }
func u32(v uint32) *uint32   { return &v }
