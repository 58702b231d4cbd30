package router

import (
	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/services"
)

type OutcomeKind int

const (
	// OutcomePromptAddTask asks the transport to show the add-task
	// form; Token must come back with the submission.
	OutcomePromptAddTask OutcomeKind = iota
	OutcomeTaskAdded
	OutcomeDailyView
	OutcomeSelectTask
	OutcomeTaskCompleted
	OutcomeUnauthorized
	OutcomeNothingPending
	OutcomeTaskNotFound
	// OutcomeInvalidSubmission covers stale/unknown tokens and
	// malformed form input.
	OutcomeInvalidSubmission
	// OutcomeFailure is the generic retryable outcome for store
	// or internal failures.
	OutcomeFailure
)

// Outcome is the router's reply to one action. Only the fields
// relevant to the Kind are set.
type Outcome struct {
	Kind     OutcomeKind
	Token    string
	Priority models.Priority
	Task     *models.Task
	View     *services.DailyView
	Options  []services.PendingOption
	Message  string
}
