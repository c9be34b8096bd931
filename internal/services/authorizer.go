package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

type Permission string

const (
	PermInterviewCreate   Permission = "interview:create"
	PermInterviewRead     Permission = "interview:read"
	PermInterviewBook     Permission = "interview:book"
	PermInterviewInvite   Permission = "interview:invite"
	PermInterviewComplete Permission = "interview:complete"
	PermInterviewNoShow   Permission = "interview:no-show"
	PermInterviewCancel   Permission = "interview:cancel"
	PermInterviewProgress Permission = "interview:progress"
	PermInterviewReject   Permission = "interview:reject"
	PermInterviewHire     Permission = "interview:hire"
	PermPipelineRead      Permission = "pipeline:read"
)

// Decision is the typed outcome of a capability check at the command boundary.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorizer answers one question: may this actor issue this command. Tenant
// scoping is a separate check (Actor.CanAccessTenant) applied per record.
type Authorizer interface {
	Authorize(actor models.Actor, permission Permission) Decision
}

type policyFile struct {
	Roles map[string][]string `yaml:"roles"`
}

type policyAuthorizer struct {
	grants map[models.Role]map[Permission]bool
	any    map[models.Role]bool
}

// defaultPolicy mirrors the role split of the recruitment pipeline: admins and
// recruiters drive the whole lifecycle, client users decide outcomes for their
// own tenant, candidates may only view and book.
var defaultPolicy = map[string][]string{
	string(models.RoleAdmin):     {"*"},
	string(models.RoleRecruiter): {"*"},
	string(models.RoleClientUser): {
		string(PermInterviewCreate),
		string(PermInterviewRead),
		string(PermInterviewInvite),
		string(PermInterviewComplete),
		string(PermInterviewNoShow),
		string(PermInterviewCancel),
		string(PermInterviewProgress),
		string(PermInterviewReject),
		string(PermInterviewHire),
		string(PermPipelineRead),
	},
	string(models.RoleCandidate): {
		string(PermInterviewRead),
		string(PermInterviewBook),
	},
}

// NewAuthorizer loads the role policy from a YAML file, falling back to the
// built-in policy when the path is empty or missing.
func NewAuthorizer(policyPath string) (Authorizer, error) {
	roles := defaultPolicy

	if policyPath != "" {
		raw, err := os.ReadFile(policyPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read policy file: %w", err)
			}
		} else {
			var pf policyFile
			if err := yaml.Unmarshal(raw, &pf); err != nil {
				return nil, fmt.Errorf("failed to parse policy file: %w", err)
			}
			if len(pf.Roles) > 0 {
				roles = pf.Roles
			}
		}
	}

	return newPolicyAuthorizer(roles), nil
}

func newPolicyAuthorizer(roles map[string][]string) *policyAuthorizer {
	a := &policyAuthorizer{
		grants: make(map[models.Role]map[Permission]bool),
		any:    make(map[models.Role]bool),
	}
	for role, perms := range roles {
		r := models.Role(role)
		a.grants[r] = make(map[Permission]bool)
		for _, p := range perms {
			if p == "*" {
				a.any[r] = true
				continue
			}
			a.grants[r][Permission(p)] = true
		}
	}
	return a
}

func (a *policyAuthorizer) Authorize(actor models.Actor, permission Permission) Decision {
	if a.any[actor.Role] {
		return Allow()
	}
	if perms, ok := a.grants[actor.Role]; ok && perms[permission] {
		return Allow()
	}
	return Deny(fmt.Sprintf("role %s may not perform %s", actor.Role, permission))
}
