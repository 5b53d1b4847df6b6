package identity

import "time"

const (
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleSupervisor:
		return true
	}
	return false
}

// Account is the authentication identity linked to an employee record
// through the national id. Accounts are deactivated, never deleted.
type Account struct {
	ID           int64
	NationalID   string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	LastAccess   *time.Time
}

// SessionIdentity is what a successful login hands back to the transport
// layer: the authenticated account plus its signed session token.
type SessionIdentity struct {
	AccountID  int64  `json:"accountId"`
	Username   string `json:"username"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Token      string `json:"token"`
}

// Credentials are the derived application credentials issued at
// registration. The initial password is the national id by policy.
type Credentials struct {
	Username        string
	InitialPassword string
	InternalEmail   string
}
