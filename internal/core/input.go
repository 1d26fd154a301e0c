package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, h, a - scroll camera left
	ActionRight           // Right arrow, l, d - scroll camera right
	ActionUp              // Up arrow, k, w - scroll camera up
	ActionDown            // Down arrow, j, s - scroll camera down
	ActionBookmark        // m - save current camera position as a bookmark
	ActionHelp            // ? - toggle full help
	ActionQuit            // q, Ctrl+C - leave the viewer
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
	case ActionBookmark:
		return "Bookmark"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove returns true for the four directional scroll actions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}
