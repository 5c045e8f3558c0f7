package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories so a Tx hands out the same repos bound to the
// transaction, which keeps callers from nesting transactions by accident.
type Store interface {
	Roles() Roles
	Users() Users
	AuditLogs() AuditLogs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Roles interface {
	// GetRoleByID fetches a role by its stable identifier.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName fetches a role by its exact, case-sensitive display name.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles in creation order.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role. Returns ErrAlreadyExists on a name clash.
	CreateRole(ctx context.Context, r domain.Role) error

	// UpdateRole replaces name and permissions of the role with r.ID.
	// Returns ErrAlreadyExists on a name clash.
	UpdateRole(ctx context.Context, r domain.Role) error

	// DeleteRole removes a role. Users must be reassigned first.
	DeleteRole(ctx context.Context, roleID string) error

	// IsEmpty returns true if there are no roles.
	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	// GetUserByID returns a user with its role name resolved.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// ListAll returns every user in insertion order.
	ListAll(ctx context.Context) ([]domain.User, error)

	// FindByEmail returns the first user whose email matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the caller).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser overwrites name, email, role_id and status of u.ID.
	UpdateUser(ctx context.Context, u domain.User) error

	// TouchLastLogin sets last_login for a user.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error

	// ReassignRole moves every user bound to fromRoleID onto toRoleID and
	// returns how many rows changed.
	ReassignRole(ctx context.Context, fromRoleID, toRoleID string) (int64, error)

	// DeleteUser hard-deletes a user.
	DeleteUser(ctx context.Context, userID string) error

	// Count returns total users and how many of them are Active.
	Count(ctx context.Context) (total int, active int, err error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type AuditLogs interface {
	// AppendAuditEntry writes an entry. The log is append-only.
	AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error

	// ListAuditEntries returns every entry newest first.
	ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error)

	// CountAuditEntries returns the number of entries written so far.
	CountAuditEntries(ctx context.Context) (int, error)
}
