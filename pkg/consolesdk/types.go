package consolesdk

import (
	"time"

	"github.com/aussiebroadwan/stellar/pkg/jwtx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code (e.g. "duplicate_role")
	Error string `json:"error"`

	// ErrorDescription is a human readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details maps offending input fields to messages (validation only)
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest is the body of POST /v1/session/login.
type LoginRequest struct {
	Email string `json:"email" example:"admin@stellar.io"`
}

// LoginResponse reports whether the email matched a user. Token and User
// are only present when it did.
type LoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
	TokenType     string `json:"token_type,omitempty"`
	ExpiresIn     int    `json:"expires_in,omitempty"`
	User          *User  `json:"user,omitempty"`
}

// SessionResponse describes the current user of a session.
type SessionResponse struct {
	User        User     `json:"user"`
	Permissions []string `json:"permissions"`
	LandingPage string   `json:"landing_page" example:"dashboard"`
}

// ============================================================================
// Directory Types
// ============================================================================

// User is a directory entry. Role is the current display name of the
// user's role.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status" example:"Active"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

// CreateUserRequest is the body of POST /v1/users. Role defaults to
// "User" and Status to "Active".
type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

// UpdateUserRequest is the body of PATCH /v1/users/{id}. Absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ============================================================================
// Role Types
// ============================================================================

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

// RoleRequest is the body of POST /v1/roles and PUT /v1/roles/{name}.
type RoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}

// ============================================================================
// Audit and Dashboard Types
// ============================================================================

type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Target struct {
	Type string `json:"type" example:"Role"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AuditEntry struct {
	ID        string    `json:"id"`
	Actor     Actor     `json:"user"`
	Action    string    `json:"action"`
	Target    *Target   `json:"target,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditLogsResponse lists entries newest first.
type AuditLogsResponse struct {
	Entries []AuditEntry `json:"entries"`
}

type DashboardResponse struct {
	TotalUsers  int       `json:"total_users"`
	ActiveUsers int       `json:"active_users"`
	Viewer      string    `json:"viewer,omitempty"`
	Role        string    `json:"role,omitempty"`
	LastLogin   time.Time `json:"last_login"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Sessions string `json:"sessions"`
	Signer   string `json:"signer"`
}

// JWKSResponse contains the keys that verify session tokens.
type JWKSResponse jwtx.JWKS
