package retained

import "sync"

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event.
type EventType uint8

const (
	// Mouse events
	EventMouseMove EventType = iota + 1
	EventMouseDown
	EventMouseUp
	EventClick
	EventDoubleClick

	// Keyboard events
	EventKeyDown
	EventKeyPress // Character input
)

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// ============================================================================
// Mouse Event
// ============================================================================

// MouseEvent represents mouse interaction events.
// Events are pooled; listeners must not retain them after returning.
type MouseEvent struct {
	Type EventType

	// Local coordinates (relative to the field's top-left)
	X, Y int

	// Which button triggered the event (for down/up/click)
	Button MouseButton

	// Modifier keys held during the event
	Modifiers Modifiers

	// Click count for detecting double clicks
	ClickCount int
}

// NewMouseEvent creates a mouse event. Uses object pool for high-frequency events.
func NewMouseEvent(eventType EventType, x, y int, button MouseButton, mods Modifiers) *MouseEvent {
	e := mouseEventPool.Get().(*MouseEvent)
	e.Type = eventType
	e.X = x
	e.Y = y
	e.Button = button
	e.Modifiers = mods
	e.ClickCount = 1
	return e
}

// Release returns the event to the pool. Call when done processing.
func (e *MouseEvent) Release() {
	mouseEventPool.Put(e)
}

// Object pool for mouse events to avoid allocations on every mouse move
var mouseEventPool = sync.Pool{
	New: func() any {
		return &MouseEvent{}
	},
}

// ============================================================================
// Keyboard Event
// ============================================================================

// KeyEvent represents keyboard events.
type KeyEvent struct {
	Type EventType

	// Logical key (e.g., "Left", "Backspace", "a")
	Key string

	// For KeyPress events, the character that was typed
	Char rune

	// Modifier keys held during the event
	Modifiers Modifiers
}

// Logical key names understood by TextField.HandleKeyDown.
const (
	KeyLeft      = "Left"
	KeyRight     = "Right"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyA         = "a"
)

// ============================================================================
// Handlers
// ============================================================================

type (
	MouseHandler  func(e *MouseEvent)
	ResizeHandler func(size Size)
	ShowHandler   func()
	PaintHandler  func(p Painter)
)
