package term

import "github.com/gdamore/tcell/v2"

// Action is what a key press asks the terminal face to do.
type Action int

const (
	ActionNone Action = iota
	ActionTap
	ActionBatteryUp
	ActionBatteryDown
	ActionToggleCharging
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:           "none",
	ActionTap:            "tap",
	ActionBatteryUp:      "battery-up",
	ActionBatteryDown:    "battery-down",
	ActionToggleCharging: "toggle-charging",
	ActionQuit:           "quit",
}

func (action Action) String() string {
	if int(action) < len(actionNames) {
		return actionNames[action]
	}
	return "unknown"
}

// KeyAction maps a key to an action.
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionTap
	case tcell.KeyUp:
		return ActionBatteryUp
	case tcell.KeyDown:
		return ActionBatteryDown
	case tcell.KeyRune:
		switch r {
		case ' ', 't':
			return ActionTap
		case '+', '=':
			return ActionBatteryUp
		case '-', '_':
			return ActionBatteryDown
		case 'c':
			return ActionToggleCharging
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}

// EventAction maps a terminal event to an action.
func EventAction(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	return KeyAction(key.Key(), key.Rune())
}
