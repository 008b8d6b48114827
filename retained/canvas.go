package retained

import (
	"sync"

	"github.com/agiangrant/togglepass/internal/ffi"
)

// Painter is the drawing surface handed to widgets and paint listeners.
// Coordinates are widget-local pixels.
type Painter interface {
	FillRect(b Bounds, c Color)
	StrokeRect(b Bounds, c Color, thickness int)
	DrawText(text string, x, y int, f Font, c Color)

	// DrawGlyph draws a single codepoint from an icon font, sized to a size×size box.
	DrawGlyph(r rune, family string, x, y, size int, c Color)

	PushClip(b Bounds)
	PopClip()
}

// Canvas is a Painter that records engine render commands.
type Canvas struct {
	mu       sync.Mutex
	originX  int
	originY  int
	commands []ffi.RenderCommand
	clips    int
}

// NewCanvas creates a canvas whose local origin sits at (x, y) in the window.
func NewCanvas(x, y int) *Canvas {
	return &Canvas{
		originX:  x,
		originY:  y,
		commands: make([]ffi.RenderCommand, 0, 16),
	}
}

// Commands returns a copy of the recorded commands.
func (c *Canvas) Commands() []ffi.RenderCommand {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ffi.RenderCommand, len(c.commands))
	copy(out, c.commands)
	return out
}

// Reset discards all recorded commands.
func (c *Canvas) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands = c.commands[:0]
	c.clips = 0
}

func (c *Canvas) FillRect(b Bounds, col Color) {
	x, y := c.abs(b.X, b.Y)
	c.push(ffi.Rect(x, y, float32(b.Width), float32(b.Height), uint32(col)))
}

func (c *Canvas) StrokeRect(b Bounds, col Color, thickness int) {
	x, y := c.abs(b.X, b.Y)
	c.push(ffi.StrokeRect(x, y, float32(b.Width), float32(b.Height), ffi.Border{
		Width: float32(thickness),
		Color: uint32(col),
		Style: "Solid",
	}))
}

func (c *Canvas) DrawText(text string, x, y int, f Font, col Color) {
	ax, ay := c.abs(x, y)
	c.push(ffi.TextWithFont(text, ax, ay, fontDescriptor(f), uint32(col)))
}

func (c *Canvas) DrawGlyph(r rune, family string, x, y, size int, col Color) {
	ax, ay := c.abs(x, y)
	c.push(ffi.TextWithFont(string(r), ax, ay, ffi.SystemFont(family, float32(size)), uint32(col)))
}

func (c *Canvas) PushClip(b Bounds) {
	x, y := c.abs(b.X, b.Y)
	c.mu.Lock()
	c.clips++
	c.mu.Unlock()
	c.push(ffi.PushClip(x, y, float32(b.Width), float32(b.Height)))
}

// PopClip is ignored when no clip is active.
func (c *Canvas) PopClip() {
	c.mu.Lock()
	if c.clips == 0 {
		c.mu.Unlock()
		return
	}
	c.clips--
	c.mu.Unlock()
	c.push(ffi.PopClip())
}

func (c *Canvas) abs(x, y int) (float32, float32) {
	return float32(c.originX + x), float32(c.originY + y)
}

func (c *Canvas) push(cmd ffi.RenderCommand) {
	c.mu.Lock()
	c.commands = append(c.commands, cmd)
	c.mu.Unlock()
}

// fontDescriptor converts a Font to the engine's descriptor.
func fontDescriptor(f Font) ffi.FontDescriptor {
	weight := uint16(400)
	if f.Style.Bold() {
		weight = 700
	}
	style := ffi.FontStyleNormal
	if f.Style.Italic() {
		style = ffi.FontStyleItalic
	}
	return ffi.SystemFontWithStyle(f.Family, float32(f.Size), weight, style)
}
