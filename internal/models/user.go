package models

import "time"

// User roles
const (
	RoleChild   = "child"
	RoleParent  = "parent"
	RoleTeacher = "teacher"
)

// User represents an account on the platform. Only child accounts
// participate in game unlocking.
type User struct {
	ID          string
	Name        string
	Role        string
	AgeGroup    string
	PinHash     string
	ParentEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsChild reports whether the account belongs to a child
func (u *User) IsChild() bool {
	return u.Role == RoleChild
}
