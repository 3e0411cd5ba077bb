package state

import "strings"

// Action is a keyboard command understood by the surface.
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionRedo
)

// ShortcutAction maps a key press to an action. The platform shortcut
// modifier (Ctrl, or Cmd on macOS) plus Z undoes; adding Shift redoes.
func ShortcutAction(key string, shortcut, shift bool) Action {
	if !shortcut || !strings.EqualFold(key, "z") {
		return ActionNone
	}
	if shift {
		return ActionRedo
	}
	return ActionUndo
}
