package retained

// Border is a decoration painted around a widget that also reserves space.
type Border interface {
	// Insets returns the space the border occupies on each side.
	Insets() Insets

	// Paint draws the border inside b.
	Paint(p Painter, b Bounds)
}

// EmptyBorder reserves space and draws nothing.
type EmptyBorder struct {
	insets Insets
}

// NewEmptyBorder creates an empty border with the given per-side widths.
func NewEmptyBorder(top, left, bottom, right int) *EmptyBorder {
	return &EmptyBorder{insets: Insets{Top: top, Left: left, Bottom: bottom, Right: right}}
}

func (e *EmptyBorder) Insets() Insets        { return e.insets }
func (e *EmptyBorder) Paint(Painter, Bounds) {}

// LineBorder strokes a solid outline of uniform thickness.
type LineBorder struct {
	Color     Color
	Thickness int
}

// NewLineBorder creates a line border.
func NewLineBorder(color Color, thickness int) *LineBorder {
	return &LineBorder{Color: color, Thickness: thickness}
}

func (l *LineBorder) Insets() Insets {
	t := l.Thickness
	return Insets{Top: t, Left: t, Bottom: t, Right: t}
}

func (l *LineBorder) Paint(p Painter, b Bounds) {
	if l.Thickness <= 0 {
		return
	}
	p.StrokeRect(b, l.Color, l.Thickness)
}

// CompoundBorder nests Inside within Outside. Insets are summed per side.
type CompoundBorder struct {
	Outside Border
	Inside  Border
}

// NewCompoundBorder combines two borders. Either may be nil.
func NewCompoundBorder(outside, inside Border) *CompoundBorder {
	return &CompoundBorder{Outside: outside, Inside: inside}
}

func (c *CompoundBorder) Insets() Insets {
	var in Insets
	if c.Outside != nil {
		in = in.Add(c.Outside.Insets())
	}
	if c.Inside != nil {
		in = in.Add(c.Inside.Insets())
	}
	return in
}

func (c *CompoundBorder) Paint(p Painter, b Bounds) {
	if c.Outside != nil {
		c.Outside.Paint(p, b)
		b = b.Inset(c.Outside.Insets())
	}
	if c.Inside != nil {
		c.Inside.Paint(p, b)
	}
}

// BorderInsets returns b's insets, or zero insets for a nil border.
func BorderInsets(b Border) Insets {
	if b == nil {
		return Insets{}
	}
	return b.Insets()
}
