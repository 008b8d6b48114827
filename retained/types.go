package retained

import (
	"fmt"

	"github.com/agiangrant/togglepass/internal/ffi"
)

// ============================================================================
// Color
// ============================================================================

// Color is a packed RGBA value (0xRRGGBBAA), the same layout the engine consumes.
type Color uint32

const (
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

// RGBA builds a Color from its components.
func RGBA(r, g, b, a uint8) Color {
	return Color(ffi.RGBA(r, g, b, a))
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color(ffi.RGB(r, g, b))
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ============================================================================
// Font
// ============================================================================

// FontStyle is a bit set of style flags.
type FontStyle uint8

const (
	FontPlain  FontStyle = 0
	FontBold   FontStyle = 1
	FontItalic FontStyle = 2
)

func (s FontStyle) Bold() bool   { return s&FontBold != 0 }
func (s FontStyle) Italic() bool { return s&FontItalic != 0 }

func (s FontStyle) String() string {
	switch {
	case s.Bold() && s.Italic():
		return "bold-italic"
	case s.Bold():
		return "bold"
	case s.Italic():
		return "italic"
	}
	return "plain"
}

// Font describes a typeface at a point size.
type Font struct {
	Family string
	Style  FontStyle
	Size   int
}

// DefaultFont is the last-resort font.
var DefaultFont = Font{Family: "SansSerif", Style: FontPlain, Size: 12}

// Derive returns a copy of f at a new size, keeping family and style.
func (f Font) Derive(size int) Font {
	f.Size = size
	return f
}

func (f Font) String() string {
	return fmt.Sprintf("%s/%s/%d", f.Family, f.Style, f.Size)
}

// ============================================================================
// Geometry
// ============================================================================

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Insets are per-side spacing amounts.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Add returns the per-side sum of two insets.
func (i Insets) Add(o Insets) Insets {
	return Insets{
		Top:    i.Top + o.Top,
		Left:   i.Left + o.Left,
		Bottom: i.Bottom + o.Bottom,
		Right:  i.Right + o.Right,
	}
}

// Bounds is an axis-aligned rectangle in widget-local coordinates.
type Bounds struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside b. The right and bottom edges are exclusive.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Empty reports whether b has no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Inset shrinks b by the given insets.
func (b Bounds) Inset(i Insets) Bounds {
	return Bounds{
		X:      b.X + i.Left,
		Y:      b.Y + i.Top,
		Width:  b.Width - i.Left - i.Right,
		Height: b.Height - i.Top - i.Bottom,
	}
}

// ============================================================================
// Cursor
// ============================================================================

// Cursor identifies the mouse pointer shape.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorText
	CursorPointer
)

func (c Cursor) String() string {
	switch c {
	case CursorText:
		return "text"
	case CursorPointer:
		return "pointer"
	}
	return "default"
}

// ParseCursor maps a CSS-style cursor name to a Cursor.
func ParseCursor(name string) Cursor {
	switch name {
	case "text":
		return CursorText
	case "pointer":
		return CursorPointer
	}
	return CursorDefault
}
