package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/pkg/idx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

// DefaultRoles are the three protected roles every console starts with.
func DefaultRoles() []domain.Role {
	return []domain.Role{
		{
			ID:          domain.AdminRoleID,
			Name:        domain.AdminRoleName,
			Permissions: domain.Permissions(),
		},
		{
			ID:   domain.ManagerRoleID,
			Name: domain.ManagerRoleName,
			Permissions: []domain.Permission{
				domain.PermViewUsers,
				domain.PermCreateUsers,
				domain.PermEditUsers,
				domain.PermViewRoles,
				domain.PermViewDashboardStats,
			},
		},
		{
			ID:          domain.UserRoleID,
			Name:        domain.UserRoleName,
			Permissions: []domain.Permission{domain.PermViewDashboardStats},
		},
	}
}

type SeedService struct {
	Store store.Store
}

// Seed makes sure the default roles exist and, when demo is set and the
// directory is empty, loads the demo users and audit history. It is safe
// to run on every start.
func (s *SeedService) Seed(ctx context.Context, demo bool) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Default roles, matched by identity so a renamed default is kept.
		for _, r := range DefaultRoles() {
			_, err := tx.Roles().GetRoleByID(ctx, r.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			r.CreatedAt, r.UpdatedAt = now, now
			if err := tx.Roles().CreateRole(ctx, r); err != nil {
				return err
			}
			log.Info("default role created", slog.String("role", r.Name))
		}

		if !demo {
			return nil
		}

		// 2. Demo directory, only into an empty one.
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil || !empty {
			return err
		}
		for _, u := range demoUsers(now) {
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
		}

		// 3. Demo history, oldest first.
		for _, e := range demoAuditEntries(now) {
			if err := tx.AuditLogs().AppendAuditEntry(ctx, e); err != nil {
				return err
			}
		}

		log.Info("demo data seeded")
		return nil
	})
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func demoUsers(now time.Time) []domain.User {
	u := func(id, name, email, roleID, created string) domain.User {
		return domain.User{
			ID:        id,
			Name:      name,
			Email:     email,
			RoleID:    roleID,
			Status:    domain.StatusActive,
			CreatedAt: day(created),
			LastLogin: now,
		}
	}

	ian := u("4", "Inactive Ian", "ian@stellar.io", domain.UserRoleID, "2023-04-05")
	ian.Status = domain.StatusInactive
	ian.LastLogin = day("2023-05-01")

	return []domain.User{
		u("1", "Admin User", "admin@stellar.io", domain.AdminRoleID, "2023-01-15"),
		u("2", "Manager Mike", "manager@stellar.io", domain.ManagerRoleID, "2023-02-20"),
		u("3", "Standard User Sally", "user@stellar.io", domain.UserRoleID, "2023-03-10"),
		ian,
		u("5", "Catherine Grant", "catherine.grant@stellar.io", domain.ManagerRoleID, "2023-05-12"),
		u("6", "Ben Carter", "ben.carter@stellar.io", domain.UserRoleID, "2023-06-18"),
	}
}

func demoAuditEntries(now time.Time) []domain.AuditEntry {
	admin := domain.ActorRef{ID: "1", Name: "Admin User"}
	mike := domain.ActorRef{ID: "2", Name: "Manager Mike"}
	created := day("2023-06-18")
	earlier := now.Add(-time.Hour)

	return []domain.AuditEntry{
		{
			ID:        idx.NewAt(created).String(),
			Actor:     admin,
			Action:    "Created user",
			Target:    &domain.AuditTarget{Type: domain.TargetUser, ID: "6", Name: "Ben Carter"},
			Timestamp: created,
		},
		{ID: idx.NewAt(earlier).String(), Actor: mike, Action: "User logged in", Timestamp: earlier},
		{ID: idx.NewAt(now).String(), Actor: admin, Action: "User logged in", Timestamp: now},
	}
}
