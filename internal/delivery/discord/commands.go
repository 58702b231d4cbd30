package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	taskCommandName  = "task"
	helloCommandName = "hello"

	addSubcommand      = "add"
	viewSubcommand     = "view"
	completeSubcommand = "complete"

	priorityOptionName = "priority"
)

var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        taskCommandName,
		Description: "Manage your tasks",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        addSubcommand,
				Description: "Add a new task via a modal",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        priorityOptionName,
						Description: "Priority of the task",
						Required:    false,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Low", Value: "Low"},
							{Name: "Medium", Value: "Medium"},
							{Name: "High", Value: "High"},
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        viewSubcommand,
				Description: "View tasks for today",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        completeSubcommand,
				Description: "Complete a task",
			},
		},
	},
	{
		Name:        helloCommandName,
		Description: "Replies with Hello!",
	},
}

// RegisterCommands creates the slash commands, scoped to guildID
// when set. Must run after the gateway session is ready.
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range commandDefinitions {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %q: %w", cmd.Name, err)
		}
		h.logger.Debug().
			Str("command", cmd.Name).
			Msg("registered slash command")
	}
	return nil
}
