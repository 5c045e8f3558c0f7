// Package session holds the persisted "current user" slot of a console
// session. A slot is keyed by session id and stores a JSON snapshot of the
// signed-in user; an absent slot means the session is anonymous.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/google/uuid"
)

var (
	// ErrCorrupt is returned by Load when a slot exists but cannot be decoded.
	ErrCorrupt = errors.New("session: corrupt slot")

	ErrEmptyID = errors.New("session: empty session id")
)

// Identity is the snapshot of the signed-in user kept in a slot.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Status    domain.UserStatus
	CreatedAt time.Time
	LastLogin time.Time
}

// IdentityOf snapshots u.
func IdentityOf(u *domain.User) Identity {
	return Identity{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// Ref is the actor reference audit entries use for this identity.
func (i Identity) Ref() domain.ActorRef {
	return domain.ActorRef{ID: i.ID, Name: i.Name}
}

// Store is a key/value slot per session.
type Store interface {
	// Load returns the identity saved under id; ok is false for an absent slot.
	Load(ctx context.Context, id string) (ident Identity, ok bool, err error)
	Save(ctx context.Context, id string, ident Identity) error
	// Delete clears the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}
