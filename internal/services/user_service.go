package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/storage"
)

type userServiceImpl struct {
	logger zerolog.Logger
	store  storage.Store
}

func NewUserService(
	logger zerolog.Logger,
	store storage.Store,
) UserService {
	return &userServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *userServiceImpl) RegisterUser(ctx context.Context, discordID, username string) (*models.User, error) {
	user := &models.User{
		DiscordID: discordID,
		Username:  username,
		UpdatedAt: time.Now(),
	}

	err := s.store.UpsertUser(ctx, user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("discord_id", discordID).
			Msg("failed to upsert user")
		return nil, mapStoreError(err)
	}

	s.logger.Info().
		Str("discord_id", discordID).
		Msg("registered user")
	return user, nil
}
