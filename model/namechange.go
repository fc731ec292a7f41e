package model

import "time"

// NameChange is a request to rename a tracked player.
type NameChange struct {
	ID         int
	PlayerID   int
	OldName    string
	NewName    string
	Status     NameChangeStatus
	ResolvedAt *time.Time
	UpdatedAt  time.Time
	CreatedAt  time.Time
}
