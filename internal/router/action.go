package router

import "github.com/dfanso/task-pa/internal/models"

// ActionKind is the closed set of inbound interaction kinds the
// transport can deliver. The router switches over it exhaustively;
// anything else is a decoding bug upstream.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionCommandAdd
	ActionCommandView
	ActionCommandComplete
	ActionSubmitAddTask
	ActionSelectTask
	ActionButtonComplete
)

func (k ActionKind) String() string {
	switch k {
	case ActionCommandAdd:
		return "command:add"
	case ActionCommandView:
		return "command:view"
	case ActionCommandComplete:
		return "command:complete"
	case ActionSubmitAddTask:
		return "submission:add-task-form"
	case ActionSelectTask:
		return "selection:task-picker"
	case ActionButtonComplete:
		return "button:trigger-complete"
	}
	return "unknown"
}

// Action is one decoded user interaction. Only the fields relevant
// to the Kind are set.
type Action struct {
	Kind        ActionKind
	PrincipalID string
	// Priority accompanies ActionCommandAdd; empty means Medium.
	Priority models.Priority
	// Token echoes a correlation token for ActionSubmitAddTask.
	Token string
	// Description accompanies ActionSubmitAddTask.
	Description string
	// TaskID accompanies ActionSelectTask.
	TaskID string
}
