package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dfanso/task-pa/internal/services"
)

type taskResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

type dailyViewResponse struct {
	Date       string         `json:"date"`
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Percentage int            `json:"percentage"`
	Progress   string         `json:"progress"`
	Salience   string         `json:"salience"`
	Pending    []taskResponse `json:"pending"`
}

func newDailyViewResponse(view *services.DailyView) dailyViewResponse {
	response := dailyViewResponse{
		Date:       view.Date.Format(time.DateOnly),
		Total:      view.Total,
		Completed:  view.CompletedCount,
		Percentage: view.Percentage,
		Progress:   view.ProgressBar(),
		Salience:   string(view.Salience),
		Pending:    make([]taskResponse, len(view.Pending)),
	}
	for i, task := range view.Pending {
		response.Pending[i] = taskResponse{
			ID:          task.ID,
			Description: task.DisplayDescription(),
			Priority:    string(task.Priority),
			CreatedAt:   task.CreatedAt,
		}
	}
	return response
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *handlerImpl) HandleGetToday(c *gin.Context) {
	view, err := h.tasks.ViewToday(c, h.ownerID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to build daily view")
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int("total", view.Total).
		Msg("served daily view")
	c.JSON(http.StatusOK, newDailyViewResponse(view))
}
