package models

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleRecruiter  Role = "recruiter"
	RoleClientUser Role = "client_user"
	RoleCandidate  Role = "candidate"
)

// Actor identifies who issued a command. Authentication happens upstream; the
// fronting gateway passes the resolved identity through.
type Actor struct {
	UserID   string
	Email    string
	Role     Role
	ClientID *uuid.UUID
}

// CanAccessTenant reports whether the actor may touch records of the given
// client. Client users are confined to their own tenant.
func (a Actor) CanAccessTenant(clientID uuid.UUID) bool {
	if a.Role != RoleClientUser {
		return true
	}
	return a.ClientID != nil && *a.ClientID == clientID
}

// SystemActor is used for unauthenticated candidate actions arriving through a
// signed booking link.
var SystemActor = Actor{
	UserID: "candidate",
	Email:  "candidate-booking",
	Role:   RoleCandidate,
}
