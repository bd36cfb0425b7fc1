package services

import (
	"context"
	"time"

	dto "todolist-app.com/todolist-app/internal/data_models"
	model "todolist-app.com/todolist-app/internal/models"
	repository "todolist-app.com/todolist-app/internal/repositories"
)

const (
	// UpcomingLimit caps the dashboard's deadline-ordered task list.
	UpcomingLimit = 5
	// RecentlyCompletedLimit caps the dashboard's completed-task list.
	RecentlyCompletedLimit = 4
)

type DashboardService struct {
	tasks     *repository.TaskRepository
	completed *repository.CompletedTaskRepository
}

func NewDashboardService(
	tasks *repository.TaskRepository,
	completed *repository.CompletedTaskRepository,
) *DashboardService {
	return &DashboardService{tasks: tasks, completed: completed}
}

// Upcoming returns the owner's tasks with the earliest deadlines, overdue
// ones included, each flagged with the derived outdated property.
func (s *DashboardService) Upcoming(ctx context.Context, ownerID uint) ([]dto.UpcomingTask, error) {
	tasks, err := s.tasks.ListUpcoming(ctx, ownerID, UpcomingLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	upcoming := make([]dto.UpcomingTask, 0, len(tasks))
	for _, task := range tasks {
		upcoming = append(upcoming, dto.UpcomingTask{
			Task:     task,
			Outdated: task.IsOutdated(now),
		})
	}

	return upcoming, nil
}

func (s *DashboardService) RecentlyCompleted(ctx context.Context, ownerID uint) ([]model.CompletedTask, error) {
	return s.completed.ListRecent(ctx, ownerID, RecentlyCompletedLimit)
}

// CompletedCount is the owner's total archived records. It only shrinks
// through explicit cleanup, so it is "all un-cleaned", not a time window.
func (s *DashboardService) CompletedCount(ctx context.Context, ownerID uint) (int64, error) {
	return s.completed.CountByOwner(ctx, ownerID)
}

func (s *DashboardService) Summary(ctx context.Context, ownerID uint) (*dto.DashboardView, error) {
	upcoming, err := s.Upcoming(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.RecentlyCompleted(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := s.CompletedCount(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardView{
		Upcoming:          upcoming,
		RecentlyCompleted: recent,
		CompletedCount:    count,
	}, nil
}
