package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dfanso/task-pa/internal/models"
)

// ProgressBarWidth is the fixed number of cells in the progress bar.
const ProgressBarWidth = 10

// Salience is the urgency level of a daily view, taken from the
// highest-priority pending task. A fully completed day is SalienceDone.
type Salience string

const (
	SalienceDone   Salience = "done"
	SalienceLow    Salience = "low"
	SalienceMedium Salience = "medium"
	SalienceHigh   Salience = "high"
)

type DailyView struct {
	// Date is midnight of the viewed day in the process-local zone.
	Date           time.Time
	Total          int
	CompletedCount int
	Pending        []*models.Task
	Completed      []*models.Task
	ProgressFilled int
	ProgressEmpty  int
	Percentage     int
	Salience       Salience
}

func (v *DailyView) ProgressBar() string {
	return strings.Repeat("▓", v.ProgressFilled) + strings.Repeat("░", v.ProgressEmpty)
}

// BuildDailyView filters tasks to the owner's tasks created on now's
// calendar day, sorts them by severity and summarizes progress.
//
// The sort is stable: tasks of equal priority keep their input order.
// It is a pure function; fetching the tasks is the caller's concern.
func BuildDailyView(tasks []*models.Task, ownerID string, now time.Time) *DailyView {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Millisecond)

	today := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.UserID != ownerID {
			continue
		}
		if task.CreatedAt.Before(startOfDay) || task.CreatedAt.After(endOfDay) {
			continue
		}
		today = append(today, task)
	}

	sort.SliceStable(today, func(i, j int) bool {
		return today[i].Priority.Rank() > today[j].Priority.Rank()
	})

	view := &DailyView{
		Date:          startOfDay,
		Total:         len(today),
		ProgressEmpty: ProgressBarWidth,
		Salience:      SalienceDone,
	}
	for _, task := range today {
		if task.Completed {
			view.Completed = append(view.Completed, task)
		} else {
			view.Pending = append(view.Pending, task)
		}
	}
	view.CompletedCount = len(view.Completed)

	if view.Total > 0 {
		ratio := float64(view.CompletedCount) / float64(view.Total)
		view.ProgressFilled = int(math.Round(ratio * ProgressBarWidth))
		view.ProgressEmpty = ProgressBarWidth - view.ProgressFilled
		view.Percentage = int(math.Round(ratio * 100))
	}
	if len(view.Pending) > 0 {
		view.Salience = salienceFor(view.Pending[0].Priority)
	}

	return view
}

func salienceFor(p models.Priority) Salience {
	switch p {
	case models.PriorityHigh:
		return SalienceHigh
	case models.PriorityMedium:
		return SalienceMedium
	default:
		return SalienceLow
	}
}
