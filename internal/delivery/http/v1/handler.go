package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dfanso/task-pa/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)
	HandleGetToday(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
	// ownerID scopes the read-only view; the API serves
	// the single configured owner only.
	ownerID string
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	ownerID string,
) Handler {
	return &handlerImpl{
		logger:  logger,
		tasks:   taskService,
		ownerID: ownerID,
	}
}
