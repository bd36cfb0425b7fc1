package dto

import (
	model "todolist-app.com/todolist-app/internal/models"
)

// TaskView is a task plus its bounded group-name preview. The preview is
// an empty string for tasks with no groups; rendering a fallback like
// "No groups" is the presentation layer's job.
type TaskView struct {
	model.Task
	GroupPreview string `json:"group_preview"`
}

// UpcomingTask is a dashboard row with the derived outdated flag.
type UpcomingTask struct {
	model.Task
	Outdated bool `json:"outdated"`
}

type DashboardView struct {
	Upcoming          []UpcomingTask        `json:"upcoming"`
	RecentlyCompleted []model.CompletedTask `json:"recently_completed"`
	CompletedCount    int64                 `json:"completed_count"`
}
