package dto

import "time"

// TaskRequest carries a full task submission. Create and edit both use it:
// an edit replaces every field and the whole group set.
type TaskRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	GroupIDs    []uint    `json:"group_ids"`
}

type GroupRequest struct {
	Name string `json:"name"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
