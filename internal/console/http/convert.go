package http

import (
	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
)

func toUser(u domain.User) consolesdk.User {
	return consolesdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func identityToUser(i session.Identity) consolesdk.User {
	return consolesdk.User{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Role:      i.Role,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		LastLogin: i.LastLogin,
	}
}

func toRole(r domain.Role) consolesdk.Role {
	return consolesdk.Role{ID: r.ID, Name: r.Name, Permissions: permStrings(r.Permissions)}
}

func permStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func toAuditEntry(e domain.AuditEntry) consolesdk.AuditEntry {
	out := consolesdk.AuditEntry{
		ID:        e.ID,
		Actor:     consolesdk.Actor{ID: e.Actor.ID, Name: e.Actor.Name},
		Action:    e.Action,
		Timestamp: e.Timestamp,
	}
	if e.Target != nil {
		out.Target = &consolesdk.Target{Type: string(e.Target.Type), ID: e.Target.ID, Name: e.Target.Name}
	}
	return out
}
