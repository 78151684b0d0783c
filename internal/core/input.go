package core

// Action represents a semantic game command, abstracted from physical key
// presses. The simulation core only ever consumes these decoded commands;
// no raw device events cross into game logic.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, W, Up - jump impulse
	ActionJumpRelease        // Synthesized when the jump key is let go; carries hold duration
	ActionBoost              // B - horizontal speed burst, stacks into a combo
	ActionTurbo              // T - timed speed multiplier with cooldown
	ActionFlight             // F - toggle timed flight mode
	ActionUp                 // Up arrow while flying - raise flight target
	ActionDown               // Down arrow while flying - lower flight target
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // Esc - go back to menu
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionJumpRelease:
		return "JumpRelease"
	case ActionBoost:
		return "Boost"
	case ActionTurbo:
		return "Turbo"
	case ActionFlight:
		return "Flight"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the decoded command state for one simulation frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// JumpHoldMS is how long the jump key was held, in milliseconds.
	// Only meaningful when ActionJumpRelease is set.
	JumpHoldMS float64
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

// SetJumpRelease marks a jump release with the measured hold duration.
func (f *InputFrame) SetJumpRelease(holdMS float64) {
	f.Set(ActionJumpRelease)
	f.JumpHoldMS = holdMS
}

// Has returns true if the given action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all triggered actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.JumpHoldMS = 0
}
