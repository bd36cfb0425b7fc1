package repository

import (
	"context"

	"gorm.io/gorm"

	model "todolist-app.com/todolist-app/internal/models"
)

type CompletedTaskRepository struct {
	db *gorm.DB
}

func NewCompletedTaskRepository(db *gorm.DB) *CompletedTaskRepository {
	return &CompletedTaskRepository{db: db}
}

// DeleteByID removes a single archived record, scoped to the owner in the
// delete itself so a non-owner gets the same not-found as a missing id.
func (r *CompletedTaskRepository) DeleteByID(ctx context.Context, ownerID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.CompletedTask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CompletedTaskRepository) DeleteAllByOwner(ctx context.Context, ownerID uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.CompletedTask{}).Error
}

func (r *CompletedTaskRepository) ListRecent(ctx context.Context, ownerID uint, limit int) ([]model.CompletedTask, error) {
	var completed []model.CompletedTask
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("complete_date asc").
		Limit(limit).
		Find(&completed).Error
	return completed, err
}

func (r *CompletedTaskRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CompletedTask{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
