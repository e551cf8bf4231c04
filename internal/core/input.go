package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle/basket left, aim left
	ActionRight          // D, Right arrow - move paddle/basket right, aim right
	ActionUp             // W, Up arrow - aim/power up, cursor up
	ActionDown           // S, Down arrow - aim/power down, cursor down
	ActionJump           // Space - jump, launch, putt, flip
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart from any state
	ActionPause          // P key - pause/resume
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a single pointer/touch sample already mapped to logical
// playfield coordinates.
type Pointer struct {
	X, Y     float64
	Down     bool // Button held during this frame
	Pressed  bool // Went down this frame (tap start)
	Released bool // Went up this frame (tap end, drag release)
}

// Pos returns the pointer position as a vector.
func (p Pointer) Pos() Vec {
	return Vec{X: p.X, Y: p.Y}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is nil when no pointer event arrived since the last frame.
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the latest pointer sample for this frame.
// Pressed/Released flags accumulate so a quick tap is not lost.
func (f *InputFrame) SetPointer(p Pointer) {
	if f.Pointer != nil {
		p.Pressed = p.Pressed || f.Pointer.Pressed
		p.Released = p.Released || f.Pointer.Released
	}
	f.Pointer = &p
}

// Tap returns the pointer position if a tap started this frame.
func (f InputFrame) Tap() (Vec, bool) {
	if f.Pointer == nil || !f.Pointer.Pressed {
		return Vec{}, false
	}
	return f.Pointer.Pos(), true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}
