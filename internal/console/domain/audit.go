package domain

import "time"

// ActorRef is a point-in-time snapshot of who performed an action.
type ActorRef struct {
	ID   string
	Name string
}

type TargetType string

const (
	TargetUser TargetType = "User"
	TargetRole TargetType = "Role"
)

// AuditTarget is a point-in-time snapshot of the entity an action touched.
type AuditTarget struct {
	Type TargetType
	ID   string
	Name string
}

// AuditEntry is an immutable record of a mutating action.
type AuditEntry struct {
	ID        string
	Actor     ActorRef
	Action    string
	Target    *AuditTarget
	Timestamp time.Time
}
