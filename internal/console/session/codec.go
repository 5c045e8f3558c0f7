package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
)

// record is the stored form. Timestamps travel as RFC 3339 strings and are
// re-parsed on load.
type record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin"`
	Status    string `json:"status"`
}

func encode(ident Identity) ([]byte, error) {
	return json.Marshal(record{
		ID:        ident.ID,
		Name:      ident.Name,
		Email:     ident.Email,
		Role:      ident.Role,
		CreatedAt: ident.CreatedAt.UTC().Format(time.RFC3339Nano),
		LastLogin: ident.LastLogin.UTC().Format(time.RFC3339Nano),
		Status:    string(ident.Status),
	})
}

func decode(data []byte) (Identity, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if rec.ID == "" {
		return Identity{}, fmt.Errorf("%w: missing user id", ErrCorrupt)
	}

	createdAt, err := parseTime(rec.CreatedAt)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: createdAt: %w", ErrCorrupt, err)
	}
	lastLogin, err := parseTime(rec.LastLogin)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: lastLogin: %w", ErrCorrupt, err)
	}

	return Identity{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      rec.Role,
		Status:    domain.UserStatus(rec.Status),
		CreatedAt: createdAt,
		LastLogin: lastLogin,
	}, nil
}

// parseTime accepts RFC 3339 with or without fractional seconds. An empty
// string is the zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
