package model

import "time"

// CompletedTask is the historical record written when a task is completed.
// It is intentionally lossy: only the name and owner survive, and there is
// no reference back to the originating task.
type CompletedTask struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	CompleteDate time.Time `gorm:"not null" json:"complete_date"`
	OwnerID      uint      `gorm:"not null;index" json:"owner_id"`
}
