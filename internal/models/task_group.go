package model

import "time"

// TaskGroup is a named label a user attaches to tasks. Names are not unique,
// not even within one owner.
type TaskGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}
