package domain

// SessionStatus is the lifecycle state of a day's work session.
type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusRunning    SessionStatus = "running"
	StatusOnBreak    SessionStatus = "on_break"
	StatusEnded      SessionStatus = "ended"
)

type BreakType string

const (
	BreakLunch   BreakType = "lunch"
	BreakCoffee  BreakType = "coffee"
	BreakGeneral BreakType = "general"
)

// ValidBreakTypes is the canonical set of accepted break type strings.
var ValidBreakTypes = map[string]bool{
	"lunch": true, "coffee": true, "general": true,
}

type ActionType string

const (
	ActionStartDay ActionType = "start_day"
	ActionStop     ActionType = "stop"
	ActionContinue ActionType = "continue"
	ActionEndDay   ActionType = "end_day"
	ActionResetDay ActionType = "reset_day"
	ActionRevoke   ActionType = "revoke"
)

// validTransitions maps each session status to the transition actions that
// are legal from it. reset_day is allowed from every status and revoke is
// not a transition, so neither appears here.
var validTransitions = map[SessionStatus][]ActionType{
	StatusNotStarted: {ActionStartDay},
	StatusRunning:    {ActionStop, ActionEndDay},
	StatusOnBreak:    {ActionContinue},
	StatusEnded:      {},
}
