package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/router"
	"github.com/dfanso/task-pa/internal/services"
)

const (
	colorRed    = 0xFF0000
	colorOrange = 0xFFA500
	colorGreen  = 0x00FF00
)

func (h *Handler) showAddTaskModal(s *discordgo.Session, i *discordgo.InteractionCreate, outcome router.Outcome) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("%s:%s", addTaskModalPrefix, outcome.Token),
			Title:    fmt.Sprintf("Add New Task (%s Priority)", outcome.Priority),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID: taskDescriptionInput,
							Label:    "Task Description",
							Style:    discordgo.TextInputParagraph,
							Required: true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to show add-task modal")
	}
}

func (h *Handler) replyDailyView(s *discordgo.Session, i *discordgo.InteractionCreate, view *services.DailyView) {
	if view.Total == 0 {
		h.replyEphemeral(s, i, "No tasks found for today! 🎉")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{buildDailyViewEmbed(view)},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							CustomID: triggerCompleteButton,
							Label:    "Complete a Task",
							Style:    discordgo.SuccessButton,
							Disabled: len(view.Pending) == 0,
						},
					},
				},
			},
		},
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to reply with daily view")
	}
}

func buildDailyViewEmbed(view *services.DailyView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📅 Tasks for %s", view.Date.Format("1/2/2006")),
		Description: fmt.Sprintf(
			"**Progress**: %s %d%%",
			view.ProgressBar(), view.Percentage,
		),
		Color: salienceColor(view.Salience),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d/%d completed", view.CompletedCount, view.Total),
		},
	}

	if len(view.Pending) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "✅ All Done!",
			Value: "Great job! You have completed all your tasks for today.",
		})
		return embed
	}

	lines := make([]string, len(view.Pending))
	for index, task := range view.Pending {
		lines[index] = fmt.Sprintf(
			"**%d.** %s **%s**\n%s",
			index+1, priorityEmoji(task.Priority), task.Priority, task.Description,
		)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "📝 Pending Tasks",
		Value: strings.Join(lines, "\n\n"),
	})

	return embed
}

func (h *Handler) replyTaskPicker(s *discordgo.Session, i *discordgo.InteractionCreate, options []services.PendingOption) {
	menuOptions := make([]discordgo.SelectMenuOption, len(options))
	for index, option := range options {
		menuOptions[index] = discordgo.SelectMenuOption{
			Label:       option.Description,
			Description: fmt.Sprintf("Priority: %s", option.Priority),
			Value:       option.ID,
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Select a task to mark as complete:",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    completeTaskSelectID,
							Placeholder: "Select a task to complete",
							Options:     menuOptions,
						},
					},
				},
			},
		},
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to reply with task picker")
	}
}

func (h *Handler) reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to reply")
	}
}

func (h *Handler) replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to reply")
	}
}

// updateMessage edits the originating message in place, dropping its
// components so a select menu can't be used twice.
func (h *Handler) updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update message")
	}
}

func salienceColor(salience services.Salience) int {
	switch salience {
	case services.SalienceHigh:
		return colorRed
	case services.SalienceMedium:
		return colorOrange
	default:
		return colorGreen
	}
}

func priorityEmoji(priority models.Priority) string {
	switch priority {
	case models.PriorityHigh:
		return "🔴"
	case models.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
