package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dto "todolist-app.com/todolist-app/internal/data_models"
	apperrors "todolist-app.com/todolist-app/internal/errors"
	model "todolist-app.com/todolist-app/internal/models"
	repository "todolist-app.com/todolist-app/internal/repositories"
	"todolist-app.com/todolist-app/internal/sessions"
)

type TaskService struct {
	tasks     *repository.TaskRepository
	groups    *repository.GroupRepository
	completed *repository.CompletedTaskRepository
	preview   *GroupService
}

func NewTaskService(
	tasks *repository.TaskRepository,
	groups *repository.GroupRepository,
	completed *repository.CompletedTaskRepository,
	preview *GroupService,
) *TaskService {
	return &TaskService{
		tasks:     tasks,
		groups:    groups,
		completed: completed,
		preview:   preview,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint) ([]dto.TaskView, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.TaskView, 0, len(tasks))
	for _, task := range tasks {
		previewNames, err := s.preview.PreviewNames(ctx, ownerID, task.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.TaskView{Task: task, GroupPreview: previewNames})
	}

	return views, nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, id uint) (*dto.TaskView, error) {
	task, err := s.tasks.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	previewNames, err := s.preview.PreviewNames(ctx, ownerID, task.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TaskView{Task: *task, GroupPreview: previewNames}, nil
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uint, req dto.TaskRequest) (*model.Task, error) {
	groups, err := s.groups.FindByIDs(ctx, ownerID, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Name:         req.Name,
		Description:  req.Description,
		Priority:     model.Priority(req.Priority),
		CreationDate: time.Now().UTC(),
		Deadline:     req.Deadline,
		OwnerID:      ownerID,
		Groups:       groups,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask replaces every mutable field and the full group set. The
// creation date and owner survive untouched.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, id uint, req dto.TaskRequest) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	groups, err := s.groups.FindByIDs(ctx, ownerID, req.GroupIDs)
	if err != nil {
		return nil, err
	}

	task.Name = req.Name
	task.Description = req.Description
	task.Priority = model.Priority(req.Priority)
	task.Deadline = req.Deadline

	if err := s.tasks.Update(ctx, task, groups); err != nil {
		return nil, asNotFound(err)
	}

	task.Groups = groups
	return task, nil
}

// CompleteTask archives the task as a CompletedTask and removes it, in one
// transaction. Guest identities get no archival record; the task still
// disappears from the active list.
func (s *TaskService) CompleteTask(ctx context.Context, identity sessions.Identity, id uint) error {
	archive := !identity.IsGuest
	err := s.tasks.Complete(ctx, identity.UserID, id, archive, time.Now().UTC())
	return asNotFound(err)
}

// DeleteTask discards the task. No archival record is ever created;
// deletion is a discard, completion is an archive-then-discard.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, id uint) error {
	return asNotFound(s.tasks.Delete(ctx, ownerID, id))
}

// CleanCompleted removes one archived record when ctaskID is given, or
// every record the owner has when it is nil.
func (s *TaskService) CleanCompleted(ctx context.Context, ownerID uint, ctaskID *uint) error {
	if ctaskID != nil {
		return asNotFound(s.completed.DeleteByID(ctx, ownerID, *ctaskID))
	}
	return s.completed.DeleteAllByOwner(ctx, ownerID)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
