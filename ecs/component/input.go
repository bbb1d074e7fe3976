package component

import "strings"

// Button identifies a pointer button or key binding. The controller only
// compares tokens; the host's input driver decides what each one samples.
type Button string

const (
	MouseLeft   Button = "mouse_left"
	MouseRight  Button = "mouse_right"
	MouseMiddle Button = "mouse_middle"
)

const keyPrefix = "key_"

// KeyButton returns the binding token for a named keyboard key, e.g. "q".
func KeyButton(name string) Button {
	return Button(keyPrefix + strings.ToLower(name))
}

// KeyName returns the key name of a keyboard binding token, or false if the
// token does not name a key.
func KeyName(b Button) (string, bool) {
	return strings.CutPrefix(string(b), keyPrefix)
}

// InputState holds one frame of pointer and key input for a camera entity:
// the cursor delta since the previous frame, the scroll delta, and which of
// the bound buttons are held.
type InputState struct {
	CursorDX float64
	CursorDY float64
	Wheel    float64

	held map[Button]bool
}

// SetHeld records whether a button is held this frame.
func (s *InputState) SetHeld(b Button, held bool) {
	if held {
		if s.held == nil {
			s.held = make(map[Button]bool)
		}
		s.held[b] = true
		return
	}
	delete(s.held, b)
}

// Held reports whether a button was recorded as held this frame.
func (s *InputState) Held(b Button) bool {
	return s != nil && s.held[b]
}

// Reset clears all deltas and held buttons.
func (s *InputState) Reset() {
	s.CursorDX = 0
	s.CursorDY = 0
	s.Wheel = 0
	clear(s.held)
}

var InputComponent = NewComponent[InputState]()
