package app

import (
	"github.com/bwmarrin/discordgo"

	"github.com/dfanso/task-pa/internal/config"
	"github.com/dfanso/task-pa/internal/delivery/discord"
	"github.com/dfanso/task-pa/internal/router"
	"github.com/dfanso/task-pa/internal/services"
	"github.com/dfanso/task-pa/internal/storage"
)

var globalDiscordSession *discordgo.Session

func MustConnectDiscord() {
	cfg := config.Global().Discord

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create discord session")
		panic(err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages

	store := storage.NewPostgresStore(globalLogger, globalPostgresPool)
	auth := services.NewOwnerAuthorizer(cfg.OwnerID)
	tasks := services.NewTaskService(globalLogger, store, auth)
	users := services.NewUserService(globalLogger, store)

	taskRouter := router.New(globalLogger, auth, tasks)
	taskRouter.SetPromptTTL(cfg.PromptTTL)

	handler := discord.NewHandler(globalLogger, taskRouter, users, cfg.RequestTimeout)
	session.AddHandler(handler.HandleInteraction)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		globalLogger.Info().
			Str("username", r.User.Username).
			Msg("discord session ready")

		err := s.UpdateGameStatus(0, "/task | personal task assistant")
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to set presence")
		}

		err = handler.RegisterCommands(s, cfg.GuildID)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to register slash commands")
			return
		}
		globalLogger.Info().Msg("registered slash commands")
	})

	err = session.Open()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to open discord gateway")
		panic(err)
	}

	globalDiscordSession = session
	globalLogger.Info().Msg("connected to discord gateway")
}

func DisconnectDiscord() {
	err := globalDiscordSession.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close discord gateway")
		return
	}
	globalLogger.Info().Msg("disconnected from discord gateway")
}
