package retained

import "time"

// clickTracker turns press/release pairs into clicks and counts repeats.
type clickTracker struct {
	pressed       bool
	pressedButton MouseButton

	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int

	doubleClickTime time.Duration // Max time between clicks for double-click
	doubleClickDist int           // Max distance between clicks for double-click

	now func() time.Time
}

func newClickTracker() clickTracker {
	return clickTracker{
		doubleClickTime: 500 * time.Millisecond,
		doubleClickDist: 5,
		now:             time.Now,
	}
}

func (c *clickTracker) press(button MouseButton) {
	c.pressed = true
	c.pressedButton = button
}

// release reports whether the release completes a click and, if so, the click count.
func (c *clickTracker) release(x, y int, button MouseButton, inside bool) (int, bool) {
	wasPressed := c.pressed && c.pressedButton == button
	c.pressed = false
	c.pressedButton = MouseButtonNone
	if !wasPressed || !inside {
		return 0, false
	}

	now := c.now()
	dx := x - c.lastClickX
	dy := y - c.lastClickY
	if now.Sub(c.lastClickTime) <= c.doubleClickTime && dx*dx+dy*dy <= c.doubleClickDist*c.doubleClickDist {
		c.clickCount++
	} else {
		c.clickCount = 1
	}
	c.lastClickTime = now
	c.lastClickX = x
	c.lastClickY = y
	return c.clickCount, true
}
