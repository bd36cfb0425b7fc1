package model

import "time"

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ValidPriority reports whether p is one of the four supported levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Task is an active to-do item. Completing or deleting a task removes the
// row; completion additionally archives it as a CompletedTask.
type Task struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"size:50;not null" json:"name"`
	Description  string      `gorm:"size:255" json:"description"`
	Priority     Priority    `gorm:"type:varchar(10);not null" json:"priority"`
	CreationDate time.Time   `gorm:"not null" json:"creation_date"`
	Deadline     time.Time   `gorm:"not null" json:"deadline"`
	OwnerID      uint        `gorm:"not null;index" json:"owner_id"`
	Groups       []TaskGroup `gorm:"many2many:task_group_memberships" json:"groups,omitempty"`
}

// IsOutdated reports whether the deadline has passed. A deadline equal to
// now already counts as outdated.
func (t *Task) IsOutdated(now time.Time) bool {
	return !t.Deadline.After(now)
}
