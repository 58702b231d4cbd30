package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/router"
	"github.com/dfanso/task-pa/internal/services"
)

const (
	addTaskModalPrefix    = "addTaskModal"
	taskDescriptionInput  = "taskDescription"
	completeTaskSelectID  = "completeTaskSelect"
	triggerCompleteButton = "triggerCompleteTask"
)

type Handler struct {
	logger  zerolog.Logger
	router  *router.Router
	users   services.UserService
	timeout time.Duration
}

func NewHandler(
	logger zerolog.Logger,
	taskRouter *router.Router,
	users services.UserService,
	timeout time.Duration,
) *Handler {
	return &Handler{
		logger:  logger,
		router:  taskRouter,
		users:   users,
		timeout: timeout,
	}
}

// HandleInteraction is the single gateway entry point. It decodes the
// event into a router action, lets the router decide the next step and
// renders the outcome. No service error escapes to discordgo.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, s, i)
	case discordgo.InteractionModalSubmit:
		h.handleModalSubmit(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(ctx, s, i)
	}
}

func (h *Handler) handleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case helloCommandName:
		h.handleHello(ctx, s, i)
		return
	case taskCommandName:
	default:
		h.logger.Error().
			Str("command", data.Name).
			Msg("no matching command")
		return
	}

	if len(data.Options) == 0 {
		h.logger.Error().Msg("task command without subcommand")
		return
	}

	action := router.Action{PrincipalID: principalID(i)}
	sub := data.Options[0]
	switch sub.Name {
	case addSubcommand:
		action.Kind = router.ActionCommandAdd
		for _, opt := range sub.Options {
			if opt.Name == priorityOptionName {
				action.Priority = models.ParsePriority(opt.StringValue())
			}
		}
	case viewSubcommand:
		action.Kind = router.ActionCommandView
	case completeSubcommand:
		action.Kind = router.ActionCommandComplete
	default:
		h.logger.Error().
			Str("subcommand", sub.Name).
			Msg("no matching subcommand")
		return
	}

	h.respond(s, i, h.router.Handle(ctx, action))
}

func (h *Handler) handleModalSubmit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	if !strings.HasPrefix(data.CustomID, addTaskModalPrefix) {
		return
	}

	action := router.Action{
		Kind:        router.ActionSubmitAddTask,
		PrincipalID: principalID(i),
		Token:       tokenFromCustomID(data.CustomID),
		Description: modalDescription(data),
	}

	h.respond(s, i, h.router.Handle(ctx, action))
}

func (h *Handler) handleComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	action := router.Action{PrincipalID: principalID(i)}
	switch data.CustomID {
	case completeTaskSelectID:
		action.Kind = router.ActionSelectTask
		if len(data.Values) > 0 {
			action.TaskID = data.Values[0]
		}
	case triggerCompleteButton:
		action.Kind = router.ActionButtonComplete
	default:
		return
	}

	h.respond(s, i, h.router.Handle(ctx, action))
}

func (h *Handler) handleHello(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	id := principalID(i)
	username := principalUsername(i)

	user, err := h.users.RegisterUser(ctx, id, username)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		h.replyEphemeral(s, i, "There was an error saving your data.")
		return
	}

	h.reply(s, i, fmt.Sprintf("Hello, %s! Your data has been saved.", user.Username))
}

func (h *Handler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, outcome router.Outcome) {
	switch outcome.Kind {
	case router.OutcomePromptAddTask:
		h.showAddTaskModal(s, i, outcome)
	case router.OutcomeTaskAdded:
		h.replyEphemeral(s, i, fmt.Sprintf(
			"Task added: **%s** (%s)",
			outcome.Task.Description, outcome.Task.Priority,
		))
	case router.OutcomeDailyView:
		h.replyDailyView(s, i, outcome.View)
	case router.OutcomeSelectTask:
		h.replyTaskPicker(s, i, outcome.Options)
	case router.OutcomeTaskCompleted:
		h.updateMessage(s, i, "Task marked as complete! 🎉")
	case router.OutcomeUnauthorized:
		h.replyEphemeral(s, i, "You are not authorized to use this bot.")
	case router.OutcomeNothingPending:
		h.replyEphemeral(s, i, "No pending tasks to complete!")
	case router.OutcomeTaskNotFound:
		h.replyEphemeral(s, i, "That task could not be found.")
	case router.OutcomeInvalidSubmission:
		h.replyEphemeral(s, i, outcome.Message)
	default:
		h.replyEphemeral(s, i, "Something went wrong. Please try again.")
	}
}

// principalID resolves the acting user for both guild and DM
// interactions.
func principalID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func principalUsername(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}

// tokenFromCustomID extracts the correlation token from a custom id
// of the form "addTaskModal:<token>".
func tokenFromCustomID(customID string) string {
	parts := strings.SplitN(customID, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func modalDescription(data discordgo.ModalSubmitInteractionData) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rowComponent := range row.Components {
			input, ok := rowComponent.(*discordgo.TextInput)
			if ok && input.CustomID == taskDescriptionInput {
				return input.Value
			}
		}
	}
	return ""
}
