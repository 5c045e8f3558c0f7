package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/pkg/idx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

type AuditService struct {
	Store store.Store
}

// Record appends one entry through st, which is the caller's transaction
// whenever the entry accompanies a mutation. It is the only write path
// into the audit log.
func (s *AuditService) Record(
	ctx context.Context,
	st store.Store,
	actor domain.ActorRef,
	action string,
	target *domain.AuditTarget,
) (domain.AuditEntry, error) {
	entry := domain.AuditEntry{
		ID:        idx.New().String(),
		Actor:     actor,
		Action:    action,
		Target:    target,
		Timestamp: time.Now().UTC(),
	}
	if err := st.AuditLogs().AppendAuditEntry(ctx, entry); err != nil {
		slogx.FromContext(ctx).Error("failed to append audit entry",
			slog.String("action", action),
			slog.Any("error", err),
		)
		return domain.AuditEntry{}, err
	}
	return entry, nil
}

// List returns every entry, newest first.
func (s *AuditService) List(ctx context.Context) ([]domain.AuditEntry, error) {
	return s.Store.AuditLogs().ListAuditEntries(ctx)
}

func roleTarget(name string) *domain.AuditTarget {
	return &domain.AuditTarget{Type: domain.TargetRole, ID: name, Name: name}
}

func userTarget(u domain.User) *domain.AuditTarget {
	return &domain.AuditTarget{Type: domain.TargetUser, ID: u.ID, Name: u.Name}
}
