// Package passfield implements a password field whose trailing eye icon
// reveals or re-masks the typed text.
//
// A Field composes a TextInputHost. It registers listeners on the host so
// that resizes rescale the font and reserve room for the icon, paints overlay
// the icon, clicks on the icon toggle visibility and pointer moves swap the
// cursor. Everything runs on the UI goroutine.
package passfield

import (
	"go.uber.org/zap"

	"github.com/agiangrant/togglepass/icon"
	"github.com/agiangrant/togglepass/retained"
	"github.com/agiangrant/togglepass/theme"
)

// IconPadding is the gap in pixels between the icon and the field's right edge.
const IconPadding = 4

// Field is a toggleable password field.
type Field struct {
	TextInputHost

	logger *zap.Logger

	passwordVisible bool

	// Captured once at construction.
	defaultEchoChar   rune
	defaultBorder     retained.Border
	defaultFont       retained.Font
	defaultForeground retained.Color
	visibleIcon       *icon.Icon
	hiddenIcon        *icon.Icon

	// Set by the last paint, read by the next pointer event.
	iconBounds retained.Bounds
}

// NewEmpty creates a Field with no initial password.
func NewEmpty(host TextInputHost, opts ...Option) *Field {
	return New(host, "", opts...)
}

// New wraps host, sets its text to password and wires the toggle behaviour.
func New(host TextInputHost, password string, opts ...Option) *Field {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.theme == nil {
		o.theme = theme.Current()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	host.SetText(password)

	f := &Field{
		TextInputHost:   host,
		logger:          o.logger,
		defaultEchoChar: host.EchoChar(),
		defaultBorder:   host.Border(),
	}
	if f.defaultBorder == nil {
		f.defaultBorder = retained.NewEmptyBorder(0, 0, 0, 0)
	}

	f.defaultFont = f.resolveDefaultFont(o.theme)
	f.defaultForeground = f.resolveDefaultForeground(o.theme)

	if g, ok := icon.Lookup(o.visibleGlyph); ok {
		f.visibleIcon = icon.Of(g, f.defaultFont.Size, f.defaultForeground)
	} else {
		f.logger.Warn("Unknown glyph, visible state has no icon", zap.String("glyph", o.visibleGlyph))
	}
	if g, ok := icon.Lookup(o.hiddenGlyph); ok {
		f.hiddenIcon = icon.Of(g, f.defaultFont.Size, f.defaultForeground)
	} else {
		f.logger.Warn("Unknown glyph, hidden state has no icon", zap.String("glyph", o.hiddenGlyph))
	}

	host.OnResize(func(retained.Size) { f.rescale() })
	host.OnShow(f.rescale)
	host.OnClick(f.handleClick)
	host.OnMouseMove(f.handleMouseMove)
	host.OnPaint(f.paintIcon)

	return f
}

// IsPasswordVisible reports whether the text is currently shown unmasked.
func (f *Field) IsPasswordVisible() bool {
	return f.passwordVisible
}

// IconBounds returns the icon rectangle computed by the last paint.
func (f *Field) IconBounds() retained.Bounds {
	return f.iconBounds
}

// IconSize returns the icon edge length for the current height, floor(0.8 × height).
func (f *Field) IconSize() int {
	return f.Size().Height * 8 / 10
}

// DefaultFont returns the font resolved at construction. Its size is the
// smallest size rescaling will apply.
func (f *Field) DefaultFont() retained.Font {
	return f.defaultFont
}

// DefaultForeground returns the icon color resolved at construction.
func (f *Field) DefaultForeground() retained.Color {
	return f.defaultForeground
}

// TogglePasswordVisibility flips between masked and plain text.
func (f *Field) TogglePasswordVisibility() {
	f.passwordVisible = !f.passwordVisible

	if f.passwordVisible {
		f.SetEchoChar(0)
	} else {
		f.SetEchoChar(f.defaultEchoChar)
	}

	f.logger.Debug("Toggled password visibility", zap.Bool("visible", f.passwordVisible))
	f.Repaint()
}

// SetFont applies font to the host and rescales to the current height.
func (f *Field) SetFont(font retained.Font) {
	f.TextInputHost.SetFont(font)
	f.rescale()
}

// Margin returns the host margin, or zero insets when the host has none.
func (f *Field) Margin() retained.Insets {
	m, ok := f.TextInputHost.Margin()
	if !ok {
		return retained.Insets{}
	}
	return m
}

// rescale reserves room for the icon in the border and scales the font with the height.
func (f *Field) rescale() {
	if ic, ok := f.visibilityIcon(); ok {
		f.SetBorder(retained.NewCompoundBorder(
			f.defaultBorder,
			retained.NewEmptyBorder(0, 0, 0, ic.Width()+IconPadding),
		))
	}

	m := f.Margin()
	size := max(f.defaultFont.Size, f.Size().Height*7/10-(m.Top+m.Bottom))

	font, ok := f.TextInputHost.Font()
	if !ok {
		font = f.defaultFont
	}
	f.TextInputHost.SetFont(font.Derive(size))

	f.Repaint()
}

// paintIcon runs after the host has drawn its text.
func (f *Field) paintIcon(p retained.Painter) {
	s := f.IconSize()
	size := f.Size()
	x := size.Width - s - IconPadding
	y := (size.Height - s) / 2

	f.iconBounds = retained.Bounds{X: x, Y: y, Width: s, Height: s}
	if ic, ok := f.visibilityIcon(); ok {
		ic.Paint(p, x, y)
	}
}

// visibilityIcon returns the icon for the current state at the current size.
func (f *Field) visibilityIcon() (*icon.Icon, bool) {
	ic := f.hiddenIcon
	if f.passwordVisible {
		ic = f.visibleIcon
	}
	if ic == nil {
		return nil, false
	}
	return ic.WithSize(f.IconSize()), true
}

// handleClick toggles when the click lands on the icon. Other clicks are left
// to the host, which has already placed the caret.
func (f *Field) handleClick(e *retained.MouseEvent) {
	if f.iconBounds.Contains(e.X, e.Y) {
		f.TogglePasswordVisibility()
	}
}

func (f *Field) handleMouseMove(e *retained.MouseEvent) {
	if f.iconBounds.Contains(e.X, e.Y) {
		f.SetCursor(retained.CursorPointer)
	} else {
		f.SetCursor(retained.CursorText)
	}
}
