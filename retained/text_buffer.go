package retained

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// DefaultEchoChar masks characters in a freshly created field.
const DefaultEchoChar = '•'

// TextBuffer manages single-line editable text with a cursor and selection.
type TextBuffer struct {
	mu sync.RWMutex

	// Content
	content []rune // Using runes for proper Unicode handling

	// Cursor position (index into content, 0 = before first char)
	cursor int

	// Selection (anchor is where selection started, cursor is where it ends)
	// If anchor == cursor, no selection
	selectionAnchor int

	maxLength int // 0 = no limit
	readOnly  bool

	// echoChar replaces every character in DisplayText. 0 shows the text as-is.
	echoChar rune

	charFilter func(r rune) bool // Returns true if char is allowed

	onChange func(text string)
}

// NewTextBuffer creates a new text buffer with no masking.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{
		content: make([]rune, 0, 64),
	}
}

// Text returns the current text content.
func (b *TextBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.content)
}

// SetText replaces all text content and moves the cursor to the end.
func (b *TextBuffer) SetText(text string) {
	b.mu.Lock()
	b.content = []rune(strings.NewReplacer("\n", "", "\r", "").Replace(text))
	b.cursor = len(b.content)
	b.selectionAnchor = b.cursor
	b.mu.Unlock()
	b.notifyChange()
}

// Length returns the number of characters (runes).
func (b *TextBuffer) Length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.content)
}

// Cursor returns the current cursor position.
func (b *TextBuffer) Cursor() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// SetCursor moves the cursor to a position, clearing selection.
func (b *TextBuffer) SetCursor(pos int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = b.clampPosition(pos)
	b.selectionAnchor = b.cursor
}

// Selection returns the selection range (start, end) where start <= end.
// Returns (cursor, cursor) if no selection.
func (b *TextBuffer) Selection() (int, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selectionRange()
}

// HasSelection returns true if text is selected.
func (b *TextBuffer) HasSelection() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selectionAnchor != b.cursor
}

// SelectedText returns the currently selected text.
func (b *TextBuffer) SelectedText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end := b.selectionRange()
	return string(b.content[start:end])
}

// SelectAll selects all text.
func (b *TextBuffer) SelectAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selectionAnchor = 0
	b.cursor = len(b.content)
}

// SetMaxLength limits the number of runes. 0 removes the limit.
func (b *TextBuffer) SetMaxLength(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 {
		n = 0
	}
	b.maxLength = n
}

// SetReadOnly prevents edits while still allowing cursor movement.
func (b *TextBuffer) SetReadOnly(readOnly bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readOnly = readOnly
}

// ReadOnly reports whether edits are rejected.
func (b *TextBuffer) ReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readOnly
}

// SetCharFilter installs a predicate that drops rejected runes on insert.
func (b *TextBuffer) SetCharFilter(filter func(r rune) bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.charFilter = filter
}

// EchoChar returns the masking character, or 0 when text is shown as typed.
func (b *TextBuffer) EchoChar() rune {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.echoChar
}

// SetEchoChar sets the masking character. 0 disables masking.
func (b *TextBuffer) SetEchoChar(r rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.echoChar = r
}

// DisplayText returns the text as it should be drawn: masked when an echo char is set.
func (b *TextBuffer) DisplayText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.echoChar == 0 {
		return string(b.content)
	}
	return strings.Repeat(string(b.echoChar), len(b.content))
}

// OnChange sets the callback invoked after every content change.
func (b *TextBuffer) OnChange(fn func(text string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

// Insert inserts text at the cursor position.
// If there's a selection, it replaces the selected text.
// Respects read-only mode, character filtering and the length limit.
func (b *TextBuffer) Insert(text string) {
	b.mu.Lock()

	if b.readOnly {
		b.mu.Unlock()
		return
	}

	text = strings.NewReplacer("\n", "", "\r", "").Replace(text)
	runes := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if b.charFilter == nil || b.charFilter(r) {
			runes = append(runes, r)
		}
	}

	start, end := b.selectionRange()
	if b.maxLength > 0 {
		available := b.maxLength - (len(b.content) - (end - start))
		if available < 0 {
			available = 0
		}
		if len(runes) > available {
			runes = runes[:available]
		}
	}

	if len(runes) == 0 && start == end {
		b.mu.Unlock()
		return
	}

	newContent := make([]rune, 0, len(b.content)-(end-start)+len(runes))
	newContent = append(newContent, b.content[:start]...)
	newContent = append(newContent, runes...)
	newContent = append(newContent, b.content[end:]...)
	b.content = newContent

	b.cursor = start + len(runes)
	b.selectionAnchor = b.cursor
	b.mu.Unlock()

	b.notifyChange()
}

// Delete removes characters. count > 0 deletes forward, count < 0 deletes backward.
// If there's a selection, it deletes the selection regardless of count.
func (b *TextBuffer) Delete(count int) {
	b.mu.Lock()

	if b.readOnly {
		b.mu.Unlock()
		return
	}

	start, end := b.selectionRange()
	switch {
	case start != end:
	case count > 0:
		end = b.clampPosition(b.cursor + count)
	case count < 0:
		start = b.clampPosition(b.cursor + count)
	}
	if start == end {
		b.mu.Unlock()
		return
	}

	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.selectionAnchor = start
	b.mu.Unlock()

	b.notifyChange()
}

// MoveCursor moves the cursor by delta characters.
// If extend is true, extends selection; otherwise clears it.
func (b *TextBuffer) MoveCursor(delta int, extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !extend && b.selectionAnchor != b.cursor {
		// Collapse selection to the appropriate end
		start, end := b.selectionRange()
		if delta < 0 {
			b.cursor = start
		} else {
			b.cursor = end
		}
		b.selectionAnchor = b.cursor
		return
	}

	b.cursor = b.clampPosition(b.cursor + delta)
	if !extend {
		b.selectionAnchor = b.cursor
	}
}

// MoveToStart moves cursor to the beginning of the text.
func (b *TextBuffer) MoveToStart(extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = 0
	if !extend {
		b.selectionAnchor = 0
	}
}

// MoveToEnd moves cursor to the end of the text.
func (b *TextBuffer) MoveToEnd(extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = len(b.content)
	if !extend {
		b.selectionAnchor = b.cursor
	}
}

// Helper methods (must hold lock)

func (b *TextBuffer) selectionRange() (int, int) {
	if b.selectionAnchor < b.cursor {
		return b.selectionAnchor, b.cursor
	}
	return b.cursor, b.selectionAnchor
}

func (b *TextBuffer) clampPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

// notifyChange must be called without holding the lock.
func (b *TextBuffer) notifyChange() {
	b.mu.RLock()
	fn := b.onChange
	text := string(b.content)
	b.mu.RUnlock()
	if fn != nil {
		fn(text)
	}
}
