package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfanso/task-pa/internal/models"
)

const testOwner = "owner-1"

func taskAt(id string, priority models.Priority, createdAt time.Time, completed bool) *models.Task {
	return &models.Task{
		ID:          id,
		UserID:      testOwner,
		Description: "task " + id,
		Priority:    priority,
		CreatedAt:   createdAt,
		Completed:   completed,
	}
}

func TestBuildDailyView_SortsBySeverityNotAlphabetically(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	// Alphabetically High < Low < Medium; severity order must win.
	tasks := []*models.Task{
		taskAt("l", models.PriorityLow, now, false),
		taskAt("m", models.PriorityMedium, now, false),
		taskAt("h", models.PriorityHigh, now, false),
	}

	view := BuildDailyView(tasks, testOwner, now)

	require.Len(t, view.Pending, 3)
	assert.Equal(t, "h", view.Pending[0].ID)
	assert.Equal(t, "m", view.Pending[1].ID)
	assert.Equal(t, "l", view.Pending[2].ID)
}

func TestBuildDailyView_StableForEqualPriority(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	tasks := []*models.Task{
		taskAt("first", models.PriorityMedium, now, false),
		taskAt("second", models.PriorityMedium, now, false),
		taskAt("third", models.PriorityMedium, now, false),
	}

	view := BuildDailyView(tasks, testOwner, now)

	require.Len(t, view.Pending, 3)
	assert.Equal(t, "first", view.Pending[0].ID)
	assert.Equal(t, "second", view.Pending[1].ID)
	assert.Equal(t, "third", view.Pending[2].ID)
}

func TestBuildDailyView_Scenario(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	tasks := []*models.Task{
		taskAt("h", models.PriorityHigh, now, false),
		taskAt("l", models.PriorityLow, now, true),
		taskAt("m", models.PriorityMedium, now, false),
	}

	view := BuildDailyView(tasks, testOwner, now)

	require.Len(t, view.Pending, 2)
	assert.Equal(t, "h", view.Pending[0].ID)
	assert.Equal(t, "m", view.Pending[1].ID)
	require.Len(t, view.Completed, 1)
	assert.Equal(t, "l", view.Completed[0].ID)

	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 1, view.CompletedCount)
	assert.Equal(t, 3, view.ProgressFilled)
	assert.Equal(t, 7, view.ProgressEmpty)
	assert.Equal(t, 33, view.Percentage)
	assert.Equal(t, SalienceHigh, view.Salience)
	assert.Equal(t, "▓▓▓░░░░░░░", view.ProgressBar())
}

func TestBuildDailyView_CountsAndBarInvariants(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	priorities := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

	for total := 0; total <= 8; total++ {
		for completed := 0; completed <= total; completed++ {
			var tasks []*models.Task
			for i := 0; i < total; i++ {
				tasks = append(tasks, taskAt(
					fmt.Sprintf("t%d", i),
					priorities[i%len(priorities)],
					now,
					i < completed,
				))
			}

			view := BuildDailyView(tasks, testOwner, now)

			assert.Equal(t, view.Total, view.CompletedCount+len(view.Pending))
			assert.Equal(t, ProgressBarWidth, view.ProgressFilled+view.ProgressEmpty)
			assert.GreaterOrEqual(t, view.Percentage, 0)
			assert.LessOrEqual(t, view.Percentage, 100)

			if completed == total {
				assert.Equal(t, ProgressBarWidth, view.ProgressFilled)
			}
			if completed == 0 {
				assert.Equal(t, 0, view.ProgressFilled)
			}
		}
	}
}

func TestBuildDailyView_EmptyDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	view := BuildDailyView(nil, testOwner, now)

	assert.Equal(t, 0, view.Total)
	assert.Equal(t, 0, view.CompletedCount)
	assert.Empty(t, view.Pending)
	assert.Equal(t, 0, view.ProgressFilled)
	assert.Equal(t, ProgressBarWidth, view.ProgressEmpty)
	assert.Equal(t, 0, view.Percentage)
	assert.Equal(t, SalienceDone, view.Salience)
}

func TestBuildDailyView_FiltersToCalendarDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	tasks := []*models.Task{
		taskAt("yesterday", models.PriorityHigh, now.AddDate(0, 0, -1), false),
		taskAt("tomorrow", models.PriorityHigh, now.AddDate(0, 0, 1), false),
		taskAt("midnight", models.PriorityLow, startOfDay, false),
		taskAt("last-moment", models.PriorityLow, startOfDay.Add(24*time.Hour-time.Millisecond), false),
		taskAt("noon", models.PriorityMedium, now, false),
	}

	view := BuildDailyView(tasks, testOwner, now)

	assert.Equal(t, 3, view.Total)
	for _, task := range view.Pending {
		assert.NotEqual(t, "yesterday", task.ID)
		assert.NotEqual(t, "tomorrow", task.ID)
	}
}

func TestBuildDailyView_FiltersToOwner(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	stranger := taskAt("stranger", models.PriorityHigh, now, false)
	stranger.UserID = "someone-else"

	view := BuildDailyView([]*models.Task{
		stranger,
		taskAt("mine", models.PriorityLow, now, false),
	}, testOwner, now)

	require.Equal(t, 1, view.Total)
	assert.Equal(t, "mine", view.Pending[0].ID)
}

func TestBuildDailyView_SalienceDoneWhenAllCompleted(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	view := BuildDailyView([]*models.Task{
		taskAt("a", models.PriorityHigh, now, true),
		taskAt("b", models.PriorityLow, now, true),
	}, testOwner, now)

	assert.Equal(t, SalienceDone, view.Salience)
	assert.Equal(t, ProgressBarWidth, view.ProgressFilled)
	assert.Equal(t, 100, view.Percentage)
}

func TestBuildDailyView_SalienceFollowsTopPendingPriority(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	view := BuildDailyView([]*models.Task{
		taskAt("h", models.PriorityHigh, now, true),
		taskAt("m", models.PriorityMedium, now, false),
		taskAt("l", models.PriorityLow, now, false),
	}, testOwner, now)

	assert.Equal(t, SalienceMedium, view.Salience)
}
