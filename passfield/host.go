package passfield

import "github.com/agiangrant/togglepass/retained"

// TextInputHost is the capability set a toolkit text field must offer for a
// Field to compose with it. retained.TextField satisfies it directly; other
// toolkits need a thin adapter.
//
// Optional properties report whether they are set so the Field can fall back
// along its default chains.
type TextInputHost interface {
	Text() string
	SetText(text string)

	// EchoChar returns the masking character. 0 means text is shown as typed.
	EchoChar() rune
	SetEchoChar(r rune)

	Font() (retained.Font, bool)
	SetFont(f retained.Font)
	Foreground() (retained.Color, bool)

	Border() retained.Border
	SetBorder(b retained.Border)
	Margin() (retained.Insets, bool)

	Size() retained.Size
	SetCursor(c retained.Cursor)
	Repaint()

	// Paint draws the field and then runs the registered paint listeners.
	Paint(p retained.Painter)

	OnResize(h retained.ResizeHandler)
	OnShow(h retained.ShowHandler)
	OnMouseMove(h retained.MouseHandler)
	OnClick(h retained.MouseHandler)
	OnPaint(h retained.PaintHandler)
}

var _ TextInputHost = (*retained.TextField)(nil)
