package domain

import "time"

type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

type User struct {
	ID        string
	Name      string
	Email     string // Login key, matched case-insensitively
	RoleID    string // Foreign key to roles table
	Role      string // Display name of RoleID, resolved on read
	Status    UserStatus
	CreatedAt time.Time
	LastLogin time.Time
}

// Ref snapshots the user as an audit actor.
func (u User) Ref() ActorRef {
	return ActorRef{ID: u.ID, Name: u.Name}
}

// UserDraft is the input for creating a user. Role is a role display name;
// empty Role and Status default to "User" and Active.
type UserDraft struct {
	Name   string     `validate:"required,max=128"`
	Email  string     `validate:"required,email"`
	Role   string     `validate:"max=64"`
	Status UserStatus `validate:"required,oneof=Active Inactive"`
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name   *string     `validate:"omitnil,required,max=128"`
	Email  *string     `validate:"omitnil,required,email"`
	Role   *string     `validate:"omitnil,required"`
	Status *UserStatus `validate:"omitnil,required,oneof=Active Inactive"`
}
