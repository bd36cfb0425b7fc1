package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "todolist-app.com/todolist-app/internal/models"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *model.TaskGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// DeleteByName removes one group matching (name, owner) exactly, together
// with its task memberships. A miss is a silent no-op. Group names are not
// unique, so with duplicates only the lowest-id match goes.
func (r *GroupRepository) DeleteByName(ctx context.Context, ownerID uint, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group model.TaskGroup
		err := tx.Where("owner_id = ? AND name = ?", ownerID, name).
			Order("id asc").
			First(&group).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM task_group_memberships WHERE task_group_id = ?", group.ID,
		).Error; err != nil {
			return err
		}

		return tx.Delete(&group).Error
	})
}

// ListByOwner returns the groups available to an owner as form choices.
func (r *GroupRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.TaskGroup, error) {
	var groups []model.TaskGroup
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id asc").
		Find(&groups).Error
	return groups, err
}

// FindByIDs resolves the requested group ids filtered to the owner. Ids
// belonging to other owners are dropped, not reported.
func (r *GroupRepository) FindByIDs(ctx context.Context, ownerID uint, ids []uint) ([]model.TaskGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var groups []model.TaskGroup
	err := r.db.WithContext(ctx).
		Where("id IN ? AND owner_id = ?", ids, ownerID).
		Order("id asc").
		Find(&groups).Error
	return groups, err
}

// ListForTask returns at most limit groups associated with the task and
// owned by ownerID, in group id order.
func (r *GroupRepository) ListForTask(ctx context.Context, ownerID, taskID uint, limit int) ([]model.TaskGroup, error) {
	var groups []model.TaskGroup
	err := r.db.WithContext(ctx).
		Model(&model.TaskGroup{}).
		Joins("JOIN task_group_memberships m ON m.task_group_id = task_groups.id").
		Where("m.task_id = ? AND task_groups.owner_id = ?", taskID, ownerID).
		Order("task_groups.id asc").
		Limit(limit).
		Find(&groups).Error
	return groups, err
}
