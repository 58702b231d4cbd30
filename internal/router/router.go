package router

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/services"
)

const defaultPromptTTL = 15 * time.Minute

type promptKind int

const (
	promptAddTask promptKind = iota + 1
)

// promptRecord carries state between an issued prompt and its
// submission, keyed by correlation token. One record per prompt
// instance; independent flows never share a record.
type promptRecord struct {
	kind     promptKind
	priority models.Priority
	issuedAt time.Time
}

type Router struct {
	logger    zerolog.Logger
	auth      services.Authorizer
	tasks     services.TaskService
	promptTTL time.Duration

	mu      sync.Mutex
	prompts map[string]promptRecord
}

func New(
	logger zerolog.Logger,
	auth services.Authorizer,
	tasks services.TaskService,
) *Router {
	return &Router{
		logger:    logger,
		auth:      auth,
		tasks:     tasks,
		promptTTL: defaultPromptTTL,
		prompts:   make(map[string]promptRecord),
	}
}

// SetPromptTTL overrides how long an unanswered prompt stays valid.
func (r *Router) SetPromptTTL(ttl time.Duration) {
	if ttl > 0 {
		r.promptTTL = ttl
	}
}

// Handle maps one inbound action to its outcome. The acting principal
// is re-validated on every call, prompt issuer and submitter alike.
func (r *Router) Handle(ctx context.Context, action Action) Outcome {
	if !r.auth.IsAuthorized(action.PrincipalID) {
		r.logger.Warn().
			Str("principal_id", action.PrincipalID).
			Str("action", action.Kind.String()).
			Msg("unauthorized interaction")
		return Outcome{Kind: OutcomeUnauthorized}
	}

	switch action.Kind {
	case ActionCommandAdd:
		return r.handleCommandAdd(action)
	case ActionCommandView:
		return r.handleCommandView(ctx, action)
	case ActionCommandComplete, ActionButtonComplete:
		return r.handleListPending(ctx, action)
	case ActionSubmitAddTask:
		return r.handleSubmitAddTask(ctx, action)
	case ActionSelectTask:
		return r.handleSelectTask(ctx, action)
	}

	r.logger.Error().
		Str("action", action.Kind.String()).
		Msg("unsupported action kind")
	return Outcome{Kind: OutcomeFailure}
}

func (r *Router) handleCommandAdd(action Action) Outcome {
	priority := action.Priority
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	tokenUUID, err := uuid.NewV7()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to generate correlation token")
		return Outcome{Kind: OutcomeFailure}
	}
	token := tokenUUID.String()

	now := time.Now()
	r.mu.Lock()
	r.evictExpiredLocked(now)
	r.prompts[token] = promptRecord{
		kind:     promptAddTask,
		priority: priority,
		issuedAt: now,
	}
	r.mu.Unlock()

	r.logger.Debug().
		Str("token", token).
		Str("priority", string(priority)).
		Msg("issued add-task prompt")
	return Outcome{
		Kind:     OutcomePromptAddTask,
		Token:    token,
		Priority: priority,
	}
}

func (r *Router) handleSubmitAddTask(ctx context.Context, action Action) Outcome {
	// Reject blank input before consuming the token so the
	// prompt stays answerable.
	if strings.TrimSpace(action.Description) == "" {
		return Outcome{
			Kind:    OutcomeInvalidSubmission,
			Message: "Task description is required.",
		}
	}

	record, ok := r.consumePrompt(action.Token, promptAddTask)
	if !ok {
		r.logger.Warn().
			Str("token", action.Token).
			Msg("submission for unknown or expired prompt")
		return Outcome{
			Kind:    OutcomeInvalidSubmission,
			Message: "This prompt is no longer active.",
		}
	}

	task, err := r.tasks.AddTask(ctx, action.PrincipalID, action.Description, record.priority)
	if err != nil {
		return r.outcomeFromError(err)
	}

	return Outcome{Kind: OutcomeTaskAdded, Task: task}
}

func (r *Router) handleCommandView(ctx context.Context, action Action) Outcome {
	view, err := r.tasks.ViewToday(ctx, action.PrincipalID)
	if err != nil {
		return r.outcomeFromError(err)
	}

	return Outcome{Kind: OutcomeDailyView, View: view}
}

func (r *Router) handleListPending(ctx context.Context, action Action) Outcome {
	options, err := r.tasks.ListPendingForSelection(ctx, action.PrincipalID)
	if err != nil {
		return r.outcomeFromError(err)
	}

	return Outcome{Kind: OutcomeSelectTask, Options: options}
}

func (r *Router) handleSelectTask(ctx context.Context, action Action) Outcome {
	if action.TaskID == "" {
		return Outcome{
			Kind:    OutcomeInvalidSubmission,
			Message: "No task was selected.",
		}
	}

	err := r.tasks.CompleteTask(ctx, action.PrincipalID, action.TaskID)
	if err != nil {
		return r.outcomeFromError(err)
	}

	return Outcome{Kind: OutcomeTaskCompleted}
}

// consumePrompt removes and returns the prompt record for the token.
// A token of the wrong kind, an expired record or a reused token all
// fail the lookup; only a matching record is consumed.
func (r *Router) consumePrompt(token string, kind promptKind) (promptRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.prompts[token]
	if !ok || record.kind != kind {
		return promptRecord{}, false
	}
	if time.Since(record.issuedAt) > r.promptTTL {
		delete(r.prompts, token)
		return promptRecord{}, false
	}

	delete(r.prompts, token)
	return record, true
}

func (r *Router) evictExpiredLocked(now time.Time) {
	for token, record := range r.prompts {
		if now.Sub(record.issuedAt) > r.promptTTL {
			delete(r.prompts, token)
		}
	}
}

func (r *Router) outcomeFromError(err error) Outcome {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return Outcome{Kind: OutcomeUnauthorized}
	case errors.Is(err, services.ErrEmptyDescription):
		return Outcome{
			Kind:    OutcomeInvalidSubmission,
			Message: "Task description is required.",
		}
	case errors.Is(err, services.ErrNothingPending):
		return Outcome{Kind: OutcomeNothingPending}
	case errors.Is(err, services.ErrTaskNotFound):
		return Outcome{Kind: OutcomeTaskNotFound}
	default:
		r.logger.Error().
			Err(err).
			Msg("task operation failed")
		return Outcome{Kind: OutcomeFailure}
	}
}
