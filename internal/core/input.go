package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionConfirm          // Enter, Space - click the tile under the cursor
	ActionEasy             // E - select easy difficulty
	ActionHard             // H - select hard difficulty
	ActionNewColors        // N - reset control ("New Colors" / "Play Again?")
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionEasy:
		return "Easy"
	case ActionHard:
		return "Hard"
	case ActionNewColors:
		return "NewColors"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen position in cells.
type Point struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Tiles holds direct tile selections (number keys), in press order.
	Tiles []int

	// Clicks holds mouse presses in screen coordinates, in press order.
	Clicks []Point
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

// SelectTile records a direct tile selection (0-based).
func (f *InputFrame) SelectTile(index int) {
	f.Tiles = append(f.Tiles, index)
}

// Click records a mouse press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Tiles) == 0 && len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tiles = f.Tiles[:0]
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Tiles = append(clone.Tiles, f.Tiles...)
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}
