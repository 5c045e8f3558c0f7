package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

// SessionService binds and clears the current user of a session slot.
type SessionService struct {
	Store    store.Store
	Sessions session.Store
	Audit    *AuditService
}

// Login matches email case-insensitively against the directory. On a match
// it stamps the user's last login, records "User logged in" with the user
// as actor and binds the user to sid, all or nothing: a slot that cannot be
// saved rolls back the stamp and the entry. No match is not an error: it
// returns nil and the slot is left as it was.
func (s *SessionService) Login(ctx context.Context, sid, email string) (*domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	if sid == "" {
		return nil, session.ErrEmptyID
	}

	var matched *domain.User
	saved := false
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Find the user.
		u, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}

		// 2. Stamp last login and record.
		now := time.Now().UTC()
		if err := tx.Users().TouchLastLogin(ctx, u.ID, now); err != nil {
			return err
		}
		u.LastLogin = now
		if _, err := s.Audit.Record(ctx, tx, u.Ref(), "User logged in", nil); err != nil {
			return err
		}

		// 3. Bind the session before commit.
		if err := s.Sessions.Save(ctx, sid, session.IdentityOf(&u)); err != nil {
			log.Error("failed to persist session", slog.String("user_id", u.ID), slog.Any("error", err))
			return err
		}
		saved = true
		matched = &u
		return nil
	})
	if err != nil {
		// A failed commit must not leave the slot bound.
		if saved {
			_ = s.Sessions.Delete(ctx, sid)
		}
		log.Error("login failed", slog.Any("error", err))
		return nil, err
	}
	if matched == nil {
		log.Info("login did not match any user")
		return nil, nil
	}

	log.Info("user logged in", slog.String("user_id", matched.ID))
	return matched, nil
}

// Logout clears the slot unconditionally.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, sid)
}

// Current returns the identity bound to sid, or nil for an anonymous
// session. A slot that cannot be decoded is cleared and treated as
// anonymous.
func (s *SessionService) Current(ctx context.Context, sid string) (*session.Identity, error) {
	if sid == "" {
		return nil, nil
	}

	ident, ok, err := s.Sessions.Load(ctx, sid)
	if err != nil {
		if errors.Is(err, session.ErrCorrupt) {
			slogx.FromContext(ctx).Warn("discarding corrupt session slot", slog.Any("error", err))
			return nil, s.Sessions.Delete(ctx, sid)
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &ident, nil
}
