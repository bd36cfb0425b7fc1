package model

import "time"

// User is an account that owns tasks, groups, and completed-task records.
// Guest users are ephemeral accounts minted at login time with no password.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:254" json:"email,omitempty"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	IsGuest      bool      `gorm:"not null;default:false" json:"is_guest"`
	CreatedAt    time.Time `json:"created_at"`
}
