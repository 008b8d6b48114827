package retained

import (
	"math"
	"sync"

	"github.com/agiangrant/togglepass/tw"
)

// styleCache caches parsed styles for repeated class strings.
var (
	styleCache   = make(map[string]*tw.ComputedStyles)
	styleCacheMu sync.RWMutex
)

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.ComputedStyles {
	if classes == "" {
		return nil
	}

	styleCacheMu.RLock()
	if cached, ok := styleCache[classes]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[classes]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[classes] = &styles
	return &styles
}

// ApplyClasses styles the field from a Tailwind-style class string.
// Padding becomes the margin; border width and color replace the outline.
// Properties the classes do not mention are left as they are. The hover:,
// focus: and disabled: variants only affect colors, applied while the field
// is in that state.
func (t *TextField) ApplyClasses(classes string, dark bool) {
	styles := resolveStyles(classes)
	if styles == nil {
		return
	}
	props := styles.ResolveWithDarkMode(dark)

	t.mu.Lock()
	applyStyleProperties(t, &props)
	t.styles = styles
	t.stylesDark = dark
	t.dirty = true
	t.mu.Unlock()
}

// applyStyleProperties must be called with the lock held.
func applyStyleProperties(t *TextField, props *tw.StyleProperties) {
	// Colors
	if props.BackgroundColor != nil {
		t.background = Color(*props.BackgroundColor)
	}
	if props.TextColor != nil {
		c := Color(*props.TextColor)
		t.foreground = &c
	}

	// Typography
	if props.FontFamily != nil || props.FontSize != nil || props.FontWeight != nil || props.FontStyle != nil {
		font := defaultFieldFont
		if t.font != nil {
			font = *t.font
		}
		if props.FontFamily != nil {
			font.Family = tw.FontName(*props.FontFamily)
		}
		if props.FontSize != nil {
			font.Size = int(math.Round(float64(*props.FontSize)))
		}
		if props.FontWeight != nil {
			if *props.FontWeight >= 600 {
				font.Style |= FontBold
			} else {
				font.Style &^= FontBold
			}
		}
		if props.FontStyle != nil {
			if *props.FontStyle == "italic" {
				font.Style |= FontItalic
			} else {
				font.Style &^= FontItalic
			}
		}
		t.font = &font
	}

	// Spacing - Padding
	if props.PaddingTop != nil || props.PaddingRight != nil ||
		props.PaddingBottom != nil || props.PaddingLeft != nil {
		var m Insets
		if t.margin != nil {
			m = *t.margin
		}
		if props.PaddingTop != nil {
			m.Top = int(*props.PaddingTop)
		}
		if props.PaddingRight != nil {
			m.Right = int(*props.PaddingRight)
		}
		if props.PaddingBottom != nil {
			m.Bottom = int(*props.PaddingBottom)
		}
		if props.PaddingLeft != nil {
			m.Left = int(*props.PaddingLeft)
		}
		t.margin = &m
	}

	// Borders
	if props.BorderWidth != nil || props.BorderColor != nil {
		width := 1
		color := defaultFieldBorderLine
		if line := outlineOf(t.border); line != nil {
			width, color = line.Thickness, line.Color
		}
		if props.BorderWidth != nil {
			width = int(*props.BorderWidth)
		}
		if props.BorderColor != nil {
			color = Color(*props.BorderColor)
		}
		line := NewLineBorder(color, width)
		if c, ok := t.border.(*CompoundBorder); ok {
			t.border = NewCompoundBorder(line, c.Inside)
		} else {
			t.border = line
		}
	}

	// Interactivity
	if props.Cursor != nil {
		t.cursor = ParseCursor(*props.Cursor)
	}
}

// withOutlineColor returns b with its outermost line border recolored.
func withOutlineColor(b Border, c Color) Border {
	switch v := b.(type) {
	case *LineBorder:
		return NewLineBorder(c, v.Thickness)
	case *CompoundBorder:
		return NewCompoundBorder(withOutlineColor(v.Outside, c), v.Inside)
	}
	return b
}

// outlineOf returns the outermost line border of b, if any.
func outlineOf(b Border) *LineBorder {
	switch v := b.(type) {
	case *LineBorder:
		return v
	case *CompoundBorder:
		return outlineOf(v.Outside)
	}
	return nil
}
