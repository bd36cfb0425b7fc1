package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "todolist-app.com/todolist-app/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID resolves a task by primary key and owner in one scoped query.
// A task that exists but belongs to someone else is indistinguishable from
// a task that does not exist.
func (r *TaskRepository) FindByID(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

// ListUpcoming returns at most limit tasks ordered by deadline ascending.
// Overdue tasks are not filtered out; they sort first.
func (r *TaskRepository) ListUpcoming(ctx context.Context, ownerID uint, limit int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("deadline asc").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// Update replaces the mutable task fields and the full group set in one
// transaction. CreationDate and OwnerID never change.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, groups []model.TaskGroup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ? AND owner_id = ?", task.ID, task.OwnerID).
			Updates(map[string]interface{}{
				"name":        task.Name,
				"description": task.Description,
				"priority":    task.Priority,
				"deadline":    task.Deadline,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		assoc := tx.Model(task).Association("Groups")
		if len(groups) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(groups)
	})
}

// Complete removes the task row and, when archive is set, writes the lossy
// CompletedTask record first. Both writes commit or roll back together so
// a task can never be both active and archived.
func (r *TaskRepository) Complete(ctx context.Context, ownerID, id uint, archive bool, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := lockTask(tx, ownerID, id)
		if err != nil {
			return err
		}

		if archive {
			archived := model.CompletedTask{
				Name:         task.Name,
				CompleteDate: now,
				OwnerID:      ownerID,
			}
			if err := tx.Create(&archived).Error; err != nil {
				return err
			}
		}

		return removeTask(tx, task)
	})
}

// Delete discards the task without archival, guest or not.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := lockTask(tx, ownerID, id)
		if err != nil {
			return err
		}
		return removeTask(tx, task)
	})
}

func lockTask(tx *gorm.DB, ownerID, id uint) (*model.Task, error) {
	var task model.Task
	err := tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func removeTask(tx *gorm.DB, task *model.Task) error {
	if err := tx.Model(task).Association("Groups").Clear(); err != nil {
		return err
	}
	return tx.Delete(task).Error
}
