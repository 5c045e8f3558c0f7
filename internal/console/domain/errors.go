package domain

import "errors"

var (
	ErrDuplicateRole = errors.New("role already exists")
	ErrRoleNotFound  = errors.New("role not found")
	ErrProtectedRole = errors.New("cannot delete default roles")
	ErrInvalidInput  = errors.New("invalid input")
)
