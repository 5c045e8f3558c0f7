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

type RolesService struct {
	Store store.Store
	Audit *AuditService
}

// List returns every role in creation order.
func (s *RolesService) List(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}

// ListPermissions returns the permission catalog in display order.
func (s *RolesService) ListPermissions() []domain.Permission {
	return domain.Permissions()
}

// Get fetches a role by its display name.
func (s *RolesService) Get(ctx context.Context, name string) (domain.Role, error) {
	r, err := s.Store.Roles().GetRoleByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, fmt.Errorf("%w: %q", domain.ErrRoleNotFound, name)
	}
	return r, err
}

// Create registers a new role. An empty permission set is valid.
func (s *RolesService) Create(ctx context.Context, actor domain.ActorRef, in domain.RoleInput) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate and normalize the input.
	in.Name = strings.TrimSpace(in.Name)
	perms, err := checkRoleInput(in)
	if err != nil {
		return domain.Role{}, err
	}

	now := time.Now().UTC()
	role := domain.Role{
		ID:          idx.New().String(),
		Name:        in.Name,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 2. Insert and record in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Roles().CreateRole(ctx, role); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: %q", domain.ErrDuplicateRole, role.Name)
			}
			return err
		}
		_, err := s.Audit.Record(ctx, tx, actor, "Created role "+role.Name, roleTarget(role.Name))
		return err
	})
	if err != nil {
		logRejected(log, "create role", err, slog.String("role", role.Name))
		return domain.Role{}, err
	}

	log.Info("role created",
		slog.String("role_id", role.ID),
		slog.String("role", role.Name),
		slog.Int("permissions", len(role.Permissions)),
	)
	return role, nil
}

// Update replaces the name and permission set of the role called oldName.
// Users bound to the role see the new name as soon as the call returns.
func (s *RolesService) Update(ctx context.Context, actor domain.ActorRef, oldName string, in domain.RoleInput) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	perms, err := checkRoleInput(in)
	if err != nil {
		return domain.Role{}, err
	}

	var updated domain.Role
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The role being edited must exist.
		role, err := tx.Roles().GetRoleByName(ctx, oldName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %q", domain.ErrRoleNotFound, oldName)
			}
			return err
		}

		// 2. Rewrite it in place. The unique index rejects a rename onto
		// another role's name.
		role.Name = in.Name
		role.Permissions = perms
		role.UpdatedAt = time.Now().UTC()
		if err := tx.Roles().UpdateRole(ctx, role); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: %q", domain.ErrDuplicateRole, in.Name)
			}
			return err
		}

		// 3. Record.
		action := fmt.Sprintf("Updated role %s to %s", oldName, role.Name)
		if _, err := s.Audit.Record(ctx, tx, actor, action, roleTarget(role.Name)); err != nil {
			return err
		}
		updated = role
		return nil
	})
	if err != nil {
		logRejected(log, "update role", err, slog.String("role", oldName), slog.String("new_name", in.Name))
		return domain.Role{}, err
	}

	log.Info("role updated",
		slog.String("role_id", updated.ID),
		slog.String("old_name", oldName),
		slog.String("role", updated.Name),
	)
	return updated, nil
}

// Delete removes a non-default role and moves its users onto the fallback
// role in the same transaction.
func (s *RolesService) Delete(ctx context.Context, actor domain.ActorRef, name string) error {
	log := slogx.FromContext(ctx)

	var moved int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %q", domain.ErrRoleNotFound, name)
			}
			return err
		}
		if role.IsDefault() {
			return fmt.Errorf("%w: %q", domain.ErrProtectedRole, name)
		}

		if moved, err = tx.Users().ReassignRole(ctx, role.ID, domain.FallbackRoleID); err != nil {
			return err
		}
		if err := tx.Roles().DeleteRole(ctx, role.ID); err != nil {
			return err
		}

		_, err = s.Audit.Record(ctx, tx, actor, "Deleted role "+name, roleTarget(name))
		return err
	})
	if err != nil {
		logRejected(log, "delete role", err, slog.String("role", name))
		return err
	}

	log.Info("role deleted", slog.String("role", name), slog.Int64("users_reassigned", moved))
	return nil
}

func checkRoleInput(in domain.RoleInput) ([]domain.Permission, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	for _, p := range in.Permissions {
		if !p.Valid() {
			return nil, invalidField("permissions", fmt.Sprintf("contains unknown permission %q", p))
		}
	}
	return domain.NormalizePermissions(in.Permissions)
}

// logRejected logs taxonomy errors at Warn and anything else at Error.
func logRejected(log *slog.Logger, op string, err error, attrs ...any) {
	args := append([]any{slog.String("op", op), slog.Any("error", err)}, attrs...)
	switch {
	case errors.Is(err, domain.ErrDuplicateRole),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrProtectedRole),
		errors.Is(err, domain.ErrInvalidInput):
		log.Warn("rejected mutation", args...)
	default:
		log.Error("mutation failed", args...)
	}
}
