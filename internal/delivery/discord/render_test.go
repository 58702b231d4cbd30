package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/services"
)

func TestBuildDailyViewEmbed_PendingTasks(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	view := services.BuildDailyView([]*models.Task{
		{UserID: "owner", Description: "finish report", Priority: models.PriorityHigh, CreatedAt: now},
		{UserID: "owner", Description: "groceries", Priority: models.PriorityLow, CreatedAt: now, Completed: true},
	}, "owner", now)

	embed := buildDailyViewEmbed(view)

	assert.Equal(t, "📅 Tasks for 8/30/2026", embed.Title)
	assert.Contains(t, embed.Description, "▓▓▓▓▓░░░░░")
	assert.Contains(t, embed.Description, "50%")
	assert.Equal(t, colorRed, embed.Color)
	assert.Equal(t, "1/2 completed", embed.Footer.Text)

	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "📝 Pending Tasks", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "🔴 **High**")
	assert.Contains(t, embed.Fields[0].Value, "finish report")
}

func TestBuildDailyViewEmbed_AllDone(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	view := services.BuildDailyView([]*models.Task{
		{UserID: "owner", Description: "done", Priority: models.PriorityHigh, CreatedAt: now, Completed: true},
	}, "owner", now)

	embed := buildDailyViewEmbed(view)

	assert.Equal(t, colorGreen, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "✅ All Done!", embed.Fields[0].Name)
}

func TestSalienceColor(t *testing.T) {
	assert.Equal(t, colorRed, salienceColor(services.SalienceHigh))
	assert.Equal(t, colorOrange, salienceColor(services.SalienceMedium))
	assert.Equal(t, colorGreen, salienceColor(services.SalienceLow))
	assert.Equal(t, colorGreen, salienceColor(services.SalienceDone))
}

func TestTokenFromCustomID(t *testing.T) {
	assert.Equal(t, "abc-123", tokenFromCustomID("addTaskModal:abc-123"))
	assert.Equal(t, "", tokenFromCustomID("addTaskModal"))
	assert.Equal(t, "", tokenFromCustomID(""))
}

func TestPriorityEmoji(t *testing.T) {
	assert.Equal(t, "🔴", priorityEmoji(models.PriorityHigh))
	assert.Equal(t, "🟡", priorityEmoji(models.PriorityMedium))
	assert.Equal(t, "🟢", priorityEmoji(models.PriorityLow))
}
