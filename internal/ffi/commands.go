package ffi

// ============================================================================
// Render Commands
// ============================================================================

// RenderCommand represents a single rendering operation.
// Exactly one field is set; the JSON shape is what the engine decodes.
type RenderCommand struct {
	DrawRect *DrawRectCmd `json:"DrawRect,omitempty"`
	DrawText *DrawTextCmd `json:"DrawText,omitempty"`
	PushClip *PushClipCmd `json:"PushClip,omitempty"`
	PopClip  *struct{}    `json:"PopClip,omitempty"`
}

type DrawRectCmd struct {
	X           float32    `json:"x"`
	Y           float32    `json:"y"`
	Width       float32    `json:"width"`
	Height      float32    `json:"height"`
	Color       uint32     `json:"color"`
	CornerRadii [4]float32 `json:"corner_radii"`
	Border      *Border    `json:"border,omitempty"`
}

type Border struct {
	Width float32 `json:"width"`
	Color uint32  `json:"color"`
	Style string  `json:"style"`
}

type DrawTextCmd struct {
	X      float32          `json:"x"`
	Y      float32          `json:"y"`
	Text   string           `json:"text"`
	Font   FontDescriptor   `json:"font"`
	Color  uint32           `json:"color"`
	Layout TextLayoutConfig `json:"layout"`
}

type FontDescriptor struct {
	Source FontSource `json:"source"`
	Weight uint16     `json:"weight"`
	Style  FontStyle  `json:"style"`
	Size   float32    `json:"size"`
}

type FontSource struct {
	System  *string `json:"System,omitempty"`
	Bundled *string `json:"Bundled,omitempty"`
}

type FontStyle string

const (
	FontStyleNormal FontStyle = "Normal"
	FontStyleItalic FontStyle = "Italic"
)

type TextLayoutConfig struct {
	MaxWidth      *float32      `json:"max_width,omitempty"`
	LineHeight    float32       `json:"line_height"`
	Alignment     TextAlign     `json:"alignment"`
	VerticalAlign VerticalAlign `json:"vertical_align"`
	Overflow      TextOverflow  `json:"overflow"`
}

type TextAlign string

const (
	TextAlignLeft   TextAlign = "Left"
	TextAlignCenter TextAlign = "Center"
	TextAlignRight  TextAlign = "Right"
)

type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "Top"
	VerticalAlignMiddle VerticalAlign = "Middle"
	VerticalAlignBottom VerticalAlign = "Bottom"
)

type TextOverflow string

const (
	TextOverflowClip     TextOverflow = "Clip"
	TextOverflowEllipsis TextOverflow = "Ellipsis"
)

type PushClipCmd struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// ============================================================================
// Command Builders
// ============================================================================

func Rect(x, y, width, height float32, color uint32) RenderCommand {
	return RenderCommand{
		DrawRect: &DrawRectCmd{
			X: x, Y: y, Width: width, Height: height,
			Color: color,
		},
	}
}

// StrokeRect draws only the outline of a rectangle.
func StrokeRect(x, y, width, height float32, border Border) RenderCommand {
	return RenderCommand{
		DrawRect: &DrawRectCmd{
			X: x, Y: y, Width: width, Height: height,
			Border: &border,
		},
	}
}

func PushClip(x, y, width, height float32) RenderCommand {
	return RenderCommand{
		PushClip: &PushClipCmd{X: x, Y: y, Width: width, Height: height},
	}
}

func PopClip() RenderCommand {
	return RenderCommand{
		PopClip: &struct{}{},
	}
}

func TextWithFont(text string, x, y float32, font FontDescriptor, color uint32) RenderCommand {
	return RenderCommand{
		DrawText: &DrawTextCmd{
			X: x, Y: y, Text: text, Color: color,
			Font: font, Layout: SingleLineLayout(),
		},
	}
}

func SystemFont(name string, size float32) FontDescriptor {
	return FontDescriptor{
		Source: FontSource{System: &name},
		Weight: 400, Style: FontStyleNormal, Size: size,
	}
}

func SystemFontWithStyle(name string, size float32, weight uint16, style FontStyle) FontDescriptor {
	return FontDescriptor{
		Source: FontSource{System: &name},
		Weight: weight, Style: style, Size: size,
	}
}

// SingleLineLayout is the layout used for text fields: no wrapping, clipped at the edge.
func SingleLineLayout() TextLayoutConfig {
	return TextLayoutConfig{
		LineHeight:    1.2,
		Alignment:     TextAlignLeft,
		VerticalAlign: VerticalAlignTop,
		Overflow:      TextOverflowClip,
	}
}

// ============================================================================
// Color Helpers
// ============================================================================

func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 255)
}

func HexColor(hex uint32) uint32 {
	return (hex << 8) | 0xFF
}
