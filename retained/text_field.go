package retained

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/agiangrant/togglepass/internal/ffi"
	"github.com/agiangrant/togglepass/tw"
)

// measureText estimates glyph advance as 0.6 × font size per rune.
func measureText(s string, f Font) int {
	advance := f.Size * 6 / 10
	if advance < 1 {
		advance = 1
	}
	return utf8.RuneCountInString(s) * advance
}

var (
	defaultFieldFont       = Font{Family: "Dialog", Style: FontPlain, Size: 12}
	defaultFieldForeground = Black
	defaultFieldBackground = White
	defaultFieldBorderLine = Color(ffi.HexColor(0x9CA3AF)) // gray-400
)

// TextField is a single-line text input. It keeps its own state and exposes
// explicit listener registration for resize, show, pointer and paint events.
// Listeners always run with the field's lock released.
type TextField struct {
	mu sync.RWMutex

	buffer *TextBuffer

	// Optional properties; nil means "not set" so callers can fall back.
	font       *Font
	foreground *Color
	margin     *Insets

	background Color
	border     Border

	size    Size
	visible bool
	focused bool
	hovered bool
	cursor  Cursor
	dirty   bool

	// Classes from the last ApplyClasses; their hover:, focus: and disabled:
	// colors are layered on at paint time.
	styles     *tw.ComputedStyles
	stylesDark bool

	clicks clickTracker

	resizeHandlers    []ResizeHandler
	showHandlers      []ShowHandler
	mouseMoveHandlers []MouseHandler
	clickHandlers     []MouseHandler
	paintHandlers     []PaintHandler
}

// NewTextField creates a field with the default look: Dialog 12pt, black on
// white, a one pixel gray outline and bullet masking. The field starts hidden;
// call Show once it is attached.
func NewTextField() *TextField {
	font := defaultFieldFont
	fg := defaultFieldForeground
	t := &TextField{
		buffer:     NewTextBuffer(),
		font:       &font,
		foreground: &fg,
		background: defaultFieldBackground,
		border: NewCompoundBorder(
			NewLineBorder(defaultFieldBorderLine, 1),
			NewEmptyBorder(2, 4, 2, 4),
		),
		cursor: CursorText,
		clicks: newClickTracker(),
		dirty:  true,
	}
	t.buffer.SetEchoChar(DefaultEchoChar)
	t.buffer.SetCharFilter(unicode.IsPrint)
	t.buffer.OnChange(func(string) { t.markDirty() })
	return t
}

// Buffer exposes the underlying text buffer.
func (t *TextField) Buffer() *TextBuffer {
	return t.buffer
}

// ============================================================================
// Text
// ============================================================================

func (t *TextField) Text() string {
	return t.buffer.Text()
}

func (t *TextField) SetText(text string) {
	t.buffer.SetText(text)
}

// SetMaxLength limits typed input to n runes. 0 removes the limit.
func (t *TextField) SetMaxLength(n int) {
	t.buffer.SetMaxLength(n)
}

// Editable reports whether typing changes the text.
func (t *TextField) Editable() bool {
	return !t.buffer.ReadOnly()
}

// SetEditable toggles editing. A read-only field paints its disabled: colors.
func (t *TextField) SetEditable(editable bool) {
	t.buffer.SetReadOnly(!editable)
	t.markDirty()
}

// DisplayText returns the text as painted, masked by the echo char if set.
func (t *TextField) DisplayText() string {
	return t.buffer.DisplayText()
}

func (t *TextField) EchoChar() rune {
	return t.buffer.EchoChar()
}

// SetEchoChar sets the masking character. 0 shows the text as typed.
func (t *TextField) SetEchoChar(r rune) {
	t.buffer.SetEchoChar(r)
	t.markDirty()
}

// ============================================================================
// Properties
// ============================================================================

// Font returns the field's font and whether one is set.
func (t *TextField) Font() (Font, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.font == nil {
		return Font{}, false
	}
	return *t.font, true
}

func (t *TextField) SetFont(f Font) {
	t.mu.Lock()
	t.font = &f
	t.dirty = true
	t.mu.Unlock()
}

// ResetFont clears the font so Font reports it as unset.
func (t *TextField) ResetFont() {
	t.mu.Lock()
	t.font = nil
	t.dirty = true
	t.mu.Unlock()
}

// Foreground returns the text color for the current state and whether one is set.
func (t *TextField) Foreground() (Color, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if over := t.stateOverlay(); over.TextColor != nil {
		return Color(*over.TextColor), true
	}
	if t.foreground == nil {
		return 0, false
	}
	return *t.foreground, true
}

func (t *TextField) SetForeground(c Color) {
	t.mu.Lock()
	t.foreground = &c
	t.dirty = true
	t.mu.Unlock()
}

// ResetForeground clears the text color so Foreground reports it as unset.
func (t *TextField) ResetForeground() {
	t.mu.Lock()
	t.foreground = nil
	t.dirty = true
	t.mu.Unlock()
}

// Background returns the fill color for the current state.
func (t *TextField) Background() Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if over := t.stateOverlay(); over.BackgroundColor != nil {
		return Color(*over.BackgroundColor)
	}
	return t.background
}

func (t *TextField) SetBackground(c Color) {
	t.mu.Lock()
	t.background = c
	t.dirty = true
	t.mu.Unlock()
}

// Border returns the current border, possibly nil.
func (t *TextField) Border() Border {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.border
}

func (t *TextField) SetBorder(b Border) {
	t.mu.Lock()
	t.border = b
	t.dirty = true
	t.mu.Unlock()
}

// Margin returns the space between border and text, and whether one is set.
func (t *TextField) Margin() (Insets, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.margin == nil {
		return Insets{}, false
	}
	return *t.margin, true
}

func (t *TextField) SetMargin(m Insets) {
	t.mu.Lock()
	t.margin = &m
	t.dirty = true
	t.mu.Unlock()
}

// ResetMargin clears the margin so Margin reports it as unset.
func (t *TextField) ResetMargin() {
	t.mu.Lock()
	t.margin = nil
	t.dirty = true
	t.mu.Unlock()
}

func (t *TextField) Cursor() Cursor {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor
}

func (t *TextField) SetCursor(c Cursor) {
	t.mu.Lock()
	t.cursor = c
	t.mu.Unlock()
}

// Hovered reports whether the pointer was inside the field at the last move.
func (t *TextField) Hovered() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hovered
}

func (t *TextField) Focused() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.focused
}

func (t *TextField) SetFocused(focused bool) {
	t.mu.Lock()
	if t.focused != focused {
		t.focused = focused
		t.dirty = true
	}
	t.mu.Unlock()
}

// ============================================================================
// Size and visibility
// ============================================================================

func (t *TextField) Size() Size {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// SetSize resizes the field and notifies resize listeners if the size changed.
func (t *TextField) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := Size{Width: width, Height: height}

	t.mu.Lock()
	if t.size == size {
		t.mu.Unlock()
		return
	}
	t.size = size
	t.dirty = true
	handlers := t.resizeHandlers
	t.mu.Unlock()

	for _, h := range handlers {
		h(size)
	}
}

func (t *TextField) Visible() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.visible
}

// Show makes the field visible. Show listeners fire on the hidden to shown transition only.
func (t *TextField) Show() {
	t.mu.Lock()
	if t.visible {
		t.mu.Unlock()
		return
	}
	t.visible = true
	t.dirty = true
	handlers := t.showHandlers
	t.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

func (t *TextField) Hide() {
	t.mu.Lock()
	t.visible = false
	t.mu.Unlock()
}

// ============================================================================
// Listener registration
// ============================================================================

func (t *TextField) OnResize(h ResizeHandler) {
	t.mu.Lock()
	t.resizeHandlers = append(t.resizeHandlers, h)
	t.mu.Unlock()
}

func (t *TextField) OnShow(h ShowHandler) {
	t.mu.Lock()
	t.showHandlers = append(t.showHandlers, h)
	t.mu.Unlock()
}

func (t *TextField) OnMouseMove(h MouseHandler) {
	t.mu.Lock()
	t.mouseMoveHandlers = append(t.mouseMoveHandlers, h)
	t.mu.Unlock()
}

func (t *TextField) OnClick(h MouseHandler) {
	t.mu.Lock()
	t.clickHandlers = append(t.clickHandlers, h)
	t.mu.Unlock()
}

// OnPaint registers an overlay painter that runs after the field has drawn itself.
func (t *TextField) OnPaint(h PaintHandler) {
	t.mu.Lock()
	t.paintHandlers = append(t.paintHandlers, h)
	t.mu.Unlock()
}

// ============================================================================
// Repaint
// ============================================================================

// Repaint marks the field dirty and asks the engine for a new frame.
func (t *TextField) Repaint() {
	t.markDirty()
	ffi.RequestRedraw()
}

// Dirty reports whether the field changed since it was last painted.
func (t *TextField) Dirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dirty
}

func (t *TextField) markDirty() {
	t.mu.Lock()
	t.dirty = true
	t.mu.Unlock()
}

// ============================================================================
// Pointer and keyboard input
// ============================================================================

// HandleMouse dispatches a pointer event. The caller keeps ownership of e.
func (t *TextField) HandleMouse(e *MouseEvent) {
	switch e.Type {
	case EventMouseMove:
		t.mouseMove(e)
	case EventMouseDown:
		t.mouseDown(e)
	case EventMouseUp:
		t.mouseUp(e)
	}
}

// HandleMouseMove tracks hover, sets the text cursor over the field, then
// notifies move listeners.
func (t *TextField) HandleMouseMove(x, y int, mods Modifiers) {
	e := NewMouseEvent(EventMouseMove, x, y, MouseButtonNone, mods)
	t.HandleMouse(e)
	e.Release()
}

// HandleMouseDown focuses the field and places the caret at x.
// Shift extends the selection from the current anchor.
func (t *TextField) HandleMouseDown(x, y int, button MouseButton, mods Modifiers) {
	e := NewMouseEvent(EventMouseDown, x, y, button, mods)
	t.HandleMouse(e)
	e.Release()
}

// HandleMouseUp completes a click when the release lands on the field that
// received the matching press. A double click selects all text.
func (t *TextField) HandleMouseUp(x, y int, button MouseButton, mods Modifiers) {
	e := NewMouseEvent(EventMouseUp, x, y, button, mods)
	t.HandleMouse(e)
	e.Release()
}

// Click simulates a left press and release at (x, y).
func (t *TextField) Click(x, y int) {
	t.HandleMouseDown(x, y, MouseButtonLeft, 0)
	t.HandleMouseUp(x, y, MouseButtonLeft, 0)
}

func (t *TextField) mouseMove(e *MouseEvent) {
	t.mu.Lock()
	inside := t.bounds().Contains(e.X, e.Y)
	if inside {
		t.cursor = CursorText
	}
	if t.hovered != inside {
		t.hovered = inside
		t.dirty = true
	}
	handlers := t.mouseMoveHandlers
	t.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

func (t *TextField) mouseDown(e *MouseEvent) {
	t.mu.Lock()
	if !t.bounds().Contains(e.X, e.Y) {
		t.mu.Unlock()
		return
	}
	t.focused = true
	t.dirty = true
	t.clicks.press(e.Button)
	pos := t.positionFromX(e.X)
	t.mu.Unlock()

	if e.Button != MouseButtonLeft {
		return
	}
	if e.Modifiers.Shift() {
		t.buffer.MoveCursor(pos-t.buffer.Cursor(), true)
	} else {
		t.buffer.SetCursor(pos)
	}
}

// mouseUp dispatches EventClick, or EventDoubleClick for the second click of
// a sequence, to the click listeners.
func (t *TextField) mouseUp(e *MouseEvent) {
	t.mu.Lock()
	count, ok := t.clicks.release(e.X, e.Y, e.Button, t.bounds().Contains(e.X, e.Y))
	handlers := t.clickHandlers
	t.mu.Unlock()
	if !ok {
		return
	}

	click := NewMouseEvent(EventClick, e.X, e.Y, e.Button, e.Modifiers)
	click.ClickCount = count
	if count == 2 {
		click.Type = EventDoubleClick
		if e.Button == MouseButtonLeft {
			t.buffer.SelectAll()
			t.markDirty()
		}
	}
	for _, h := range handlers {
		h(click)
	}
	click.Release()
}

// HandleKey dispatches a keyboard event.
func (t *TextField) HandleKey(e KeyEvent) {
	switch e.Type {
	case EventKeyDown:
		t.keyDown(e)
	case EventKeyPress:
		t.keyPress(e)
	}
}

// HandleKeyDown applies navigation and editing keys.
func (t *TextField) HandleKeyDown(key string, mods Modifiers) {
	t.HandleKey(KeyEvent{Type: EventKeyDown, Key: key, Modifiers: mods})
}

// HandleKeyPress inserts a typed character.
func (t *TextField) HandleKeyPress(char rune, mods Modifiers) {
	t.HandleKey(KeyEvent{Type: EventKeyPress, Key: string(char), Char: char, Modifiers: mods})
}

func (t *TextField) keyDown(e KeyEvent) {
	extend := e.Modifiers.Shift()

	switch e.Key {
	case KeyLeft:
		t.buffer.MoveCursor(-1, extend)
	case KeyRight:
		t.buffer.MoveCursor(1, extend)
	case KeyHome:
		t.buffer.MoveToStart(extend)
	case KeyEnd:
		t.buffer.MoveToEnd(extend)
	case KeyBackspace:
		t.buffer.Delete(-1)
	case KeyDelete:
		t.buffer.Delete(1)
	case KeyA:
		if !e.Modifiers.Super() && !e.Modifiers.Ctrl() {
			return
		}
		t.buffer.SelectAll()
	default:
		return
	}
	t.markDirty()
}

// keyPress inserts e.Char. The buffer's filter drops control characters.
func (t *TextField) keyPress(e KeyEvent) {
	if e.Modifiers&(ModSuper|ModCtrl) != 0 {
		return
	}
	t.buffer.Insert(string(e.Char))
}

// TypeText inserts each rune of s as a key press.
func (t *TextField) TypeText(s string) {
	for _, r := range s {
		t.HandleKeyPress(r, 0)
	}
}

// ============================================================================
// Painting
// ============================================================================

// Paint draws background, border, text and caret, then runs paint listeners.
func (t *TextField) Paint(p Painter) {
	t.mu.Lock()
	bounds := t.bounds()
	content := t.contentBounds()
	font := defaultFieldFont
	if t.font != nil {
		font = *t.font
	}
	fg := defaultFieldForeground
	if t.foreground != nil {
		fg = *t.foreground
	}
	bg := t.background
	border := t.border
	over := t.stateOverlay()
	if over.TextColor != nil {
		fg = Color(*over.TextColor)
	}
	if over.BackgroundColor != nil {
		bg = Color(*over.BackgroundColor)
	}
	if over.BorderColor != nil {
		border = withOutlineColor(border, Color(*over.BorderColor))
	}
	focused := t.focused
	handlers := t.paintHandlers
	t.dirty = false
	t.mu.Unlock()

	display := t.buffer.DisplayText()
	caret := measureText(string([]rune(display)[:t.buffer.Cursor()]), font)
	scroll := 0
	if caret >= content.Width {
		scroll = caret - content.Width + 1
	}

	p.FillRect(bounds, bg)
	if border != nil {
		border.Paint(p, bounds)
	}

	p.PushClip(content)
	textY := content.Y + (content.Height-font.Size)/2
	p.DrawText(display, content.X-scroll, textY, font, fg)
	if focused {
		p.FillRect(Bounds{X: content.X + caret - scroll, Y: content.Y, Width: 1, Height: content.Height}, fg)
	}
	p.PopClip()

	for _, h := range handlers {
		h(p)
	}
}

// Render paints the field onto a fresh canvas positioned at (x, y) in the window.
func (t *TextField) Render(x, y int) []ffi.RenderCommand {
	c := NewCanvas(x, y)
	t.Paint(c)
	return c.Commands()
}

// Helper methods (must hold lock)

func (t *TextField) bounds() Bounds {
	return Bounds{Width: t.size.Width, Height: t.size.Height}
}

func (t *TextField) contentBounds() Bounds {
	b := t.bounds().Inset(BorderInsets(t.border))
	if t.margin != nil {
		b = b.Inset(*t.margin)
	}
	return b
}

// state picks the style variant: disabled when read-only, then focus, then hover.
func (t *TextField) state() tw.State {
	switch {
	case t.buffer.ReadOnly():
		return tw.StateDisabled
	case t.focused:
		return tw.StateFocus
	case t.hovered:
		return tw.StateHover
	}
	return tw.StateDefault
}

// stateOverlay returns the colors the current state's variants set.
func (t *TextField) stateOverlay() tw.StyleProperties {
	if t.styles == nil {
		return tw.StyleProperties{}
	}
	return t.styles.StateOverlay(t.stylesDark, t.state())
}

// positionFromX maps a local x coordinate to the nearest caret position.
func (t *TextField) positionFromX(x int) int {
	font := defaultFieldFont
	if t.font != nil {
		font = *t.font
	}
	display := []rune(t.buffer.DisplayText())
	content := t.contentBounds()

	caret := measureText(string(display[:t.buffer.Cursor()]), font)
	scroll := 0
	if caret >= content.Width {
		scroll = caret - content.Width + 1
	}
	target := x - content.X + scroll

	prev := 0
	for i := 1; i <= len(display); i++ {
		w := measureText(string(display[:i]), font)
		if target < (prev+w+1)/2 {
			return i - 1
		}
		prev = w
	}
	return len(display)
}
