package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P - pause/unpause (platform only)
	ActionRestart        // R - new session after game over (platform only)
	ActionQuit           // Q, Ctrl+C - end the session
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Journal codes. One byte per simulated tick.
const (
	codeNone  = '.'
	codeUp    = 'U'
	codeDown  = 'D'
	codeLeft  = 'L'
	codeRight = 'R'
	codeQuit  = 'Q'
)

// Code returns the journal byte for an action that reaches the game.
// Platform-only actions have no code and report false.
func (a Action) Code() (byte, bool) {
	switch a {
	case ActionNone:
		return codeNone, true
	case ActionUp:
		return codeUp, true
	case ActionDown:
		return codeDown, true
	case ActionLeft:
		return codeLeft, true
	case ActionRight:
		return codeRight, true
	case ActionQuit:
		return codeQuit, true
	default:
		return 0, false
	}
}

// EncodeActions packs a per-tick action sequence into a journal string.
func EncodeActions(actions []Action) (string, error) {
	buf := make([]byte, 0, len(actions))
	for i, a := range actions {
		b, ok := a.Code()
		if !ok {
			return "", fmt.Errorf("core: action %s at tick %d cannot be journaled", a, i)
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

// DecodeActions unpacks a journal string produced by EncodeActions.
func DecodeActions(s string) ([]Action, error) {
	actions := make([]Action, 0, len(s))
	for i := range len(s) {
		var a Action
		switch s[i] {
		case codeNone:
			a = ActionNone
		case codeUp:
			a = ActionUp
		case codeDown:
			a = ActionDown
		case codeLeft:
			a = ActionLeft
		case codeRight:
			a = ActionRight
		case codeQuit:
			a = ActionQuit
		default:
			return nil, fmt.Errorf("core: bad journal byte %q at tick %d", s[i], i)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
