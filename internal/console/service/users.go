package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/pkg/idx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

type UserService struct {
	Store store.Store
	Audit *AuditService
}

// List returns a snapshot of every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListAll(ctx)
}

// Get returns the user with id, or nil when there is none.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create adds a user. A draft without role joins the fallback role and a
// draft without status starts Active.
func (s *UserService) Create(ctx context.Context, actor domain.ActorRef, draft domain.UserDraft) (domain.User, error) {
	log := slogx.FromContext(ctx)

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Role = strings.TrimSpace(draft.Role)
	if draft.Status == "" {
		draft.Status = domain.StatusActive
	}
	if err := validateStruct(draft); err != nil {
		return domain.User{}, err
	}

	var created domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Resolve the role, defaulting to the fallback role.
		var (
			role domain.Role
			err  error
		)
		if draft.Role == "" {
			role, err = tx.Roles().GetRoleByID(ctx, domain.FallbackRoleID)
		} else {
			role, err = tx.Roles().GetRoleByName(ctx, draft.Role)
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %q", domain.ErrRoleNotFound, draft.Role)
			}
			return err
		}

		// 2. Insert and record.
		now := time.Now().UTC()
		u := domain.User{
			ID:        idx.New().String(),
			Name:      draft.Name,
			Email:     draft.Email,
			RoleID:    role.ID,
			Role:      role.Name,
			Status:    draft.Status,
			CreatedAt: now,
			LastLogin: now,
		}
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		if _, err := s.Audit.Record(ctx, tx, actor, "Created user "+u.Name, userTarget(u)); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		logRejected(log, "create user", err, slog.String("email", draft.Email))
		return domain.User{}, err
	}

	log.Info("user created",
		slog.String("user_id", created.ID),
		slog.String("role", created.Role),
	)
	return created, nil
}

// Update merges patch into the user with id. It returns nil without error
// and without an audit entry when no such user exists.
func (s *UserService) Update(ctx context.Context, actor domain.ActorRef, id string, patch domain.UserPatch) (*domain.User, error) {
	log := slogx.FromContext(ctx)

	patch.Name = trimPtr(patch.Name)
	patch.Email = trimPtr(patch.Email)

	var updated *domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		before, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}

		// An absent user wins over a bad patch.
		if err := validateStruct(patch); err != nil {
			return err
		}

		// 1. Merge field by field, noting what actually changed.
		after := before
		var changes []string
		note := func(field, from, to string) {
			if from != to {
				changes = append(changes, fmt.Sprintf("%s from '%s' to '%s'", field, from, to))
			}
		}
		if patch.Name != nil {
			after.Name = *patch.Name
			note("name", before.Name, after.Name)
		}
		if patch.Email != nil {
			after.Email = *patch.Email
			note("email", before.Email, after.Email)
		}
		if patch.Role != nil {
			role, err := tx.Roles().GetRoleByName(ctx, *patch.Role)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("%w: %q", domain.ErrRoleNotFound, *patch.Role)
				}
				return err
			}
			after.RoleID, after.Role = role.ID, role.Name
			note("role", before.Role, after.Role)
		}
		if patch.Status != nil {
			after.Status = *patch.Status
			note("status", string(before.Status), string(after.Status))
		}

		// 2. Persist and record, even when nothing changed.
		if len(changes) > 0 {
			if err := tx.Users().UpdateUser(ctx, after); err != nil {
				return err
			}
		}
		action := fmt.Sprintf("Updated user %s (%s)", after.Name, strings.Join(changes, ", "))
		if _, err := s.Audit.Record(ctx, tx, actor, action, userTarget(after)); err != nil {
			return err
		}
		updated = &after
		return nil
	})
	if err != nil {
		logRejected(log, "update user", err, slog.String("user_id", id))
		return nil, err
	}
	if updated == nil {
		log.Debug("update skipped, user not found", slog.String("user_id", id))
		return nil, nil
	}

	log.Info("user updated", slog.String("user_id", id))
	return updated, nil
}

// Delete hard-deletes the user with id. It reports false, with no audit
// entry, when no such user exists.
func (s *UserService) Delete(ctx context.Context, actor domain.ActorRef, id string) (bool, error) {
	log := slogx.FromContext(ctx)

	deleted := false
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Users().DeleteUser(ctx, u.ID); err != nil {
			return err
		}
		if _, err := s.Audit.Record(ctx, tx, actor, "Deleted user "+u.Name, userTarget(u)); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		logRejected(log, "delete user", err, slog.String("user_id", id))
		return false, err
	}

	if deleted {
		log.Info("user deleted", slog.String("user_id", id))
	}
	return deleted, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
