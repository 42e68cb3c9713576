package core

// Key is a logical key the game understands, abstracted from physical key codes.
// There are two keys per direction: a letter key and an arrow key.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyD
	KeyW
	KeyS
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// KeySource answers "is key K currently active" for the logical keys.
// It is the only input surface the game sees.
type KeySource interface {
	Active(k Key) bool
}

// InputFrame represents the key state for a single frame.
type InputFrame struct {
	// Keys maps logical keys to whether they are active this frame.
	Keys map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Key]bool),
	}
}

// Set marks a key as active for this frame.
func (f *InputFrame) Set(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Active returns true if the given key is active this frame.
func (f InputFrame) Active(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	return clone
}

// KeyState emulates held keys on top of press-only input.
//
// Terminals deliver key presses but never releases, so a press keeps the key
// active for a fixed number of frames. Pressing a key releases every other
// key, the same way a player lifts one finger before pressing the next arrow.
type KeyState struct {
	holdFrames int
	remaining  map[Key]int
}

// NewKeyState creates a key state where a press stays active for holdFrames frames.
func NewKeyState(holdFrames int) *KeyState {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &KeyState{
		holdFrames: holdFrames,
		remaining:  make(map[Key]int),
	}
}

// Press marks k as held and releases all other keys.
func (s *KeyState) Press(k Key) {
	if k == KeyNone {
		return
	}
	clear(s.remaining)
	s.remaining[k] = s.holdFrames
}

// Active reports whether k is still held.
func (s *KeyState) Active(k Key) bool {
	return s.remaining[k] > 0
}

// Advance ages every held key by one frame. Call once at the end of each frame.
func (s *KeyState) Advance() {
	for k, n := range s.remaining {
		if n <= 1 {
			delete(s.remaining, k)
			continue
		}
		s.remaining[k] = n - 1
	}
}

// Frame returns the currently held keys as an InputFrame.
func (s *KeyState) Frame() InputFrame {
	frame := NewInputFrame()
	for k, n := range s.remaining {
		if n > 0 {
			frame.Set(k)
		}
	}
	return frame
}
