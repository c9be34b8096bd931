package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

func TestDefaultPolicy(t *testing.T) {
	authorizer, err := NewAuthorizer("")
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}

	cases := []struct {
		role       models.Role
		permission Permission
		allowed    bool
	}{
		{models.RoleAdmin, PermInterviewCreate, true},
		{models.RoleAdmin, PermInterviewHire, true},
		{models.RoleRecruiter, PermInterviewCancel, true},
		{models.RoleRecruiter, PermPipelineRead, true},
		{models.RoleClientUser, PermInterviewCreate, true},
		{models.RoleClientUser, PermInterviewReject, true},
		{models.RoleClientUser, PermInterviewBook, false},
		{models.RoleCandidate, PermInterviewRead, true},
		{models.RoleCandidate, PermInterviewBook, true},
		{models.RoleCandidate, PermInterviewCancel, false},
		{models.RoleCandidate, PermPipelineRead, false},
		{models.Role("unknown"), PermInterviewRead, false},
	}

	for _, tc := range cases {
		decision := authorizer.Authorize(models.Actor{Role: tc.role}, tc.permission)
		if decision.Allowed != tc.allowed {
			t.Errorf("%s / %s: allowed=%v, want %v (reason: %s)",
				tc.role, tc.permission, decision.Allowed, tc.allowed, decision.Reason)
		}
	}
}

func TestDenyCarriesReason(t *testing.T) {
	authorizer, err := NewAuthorizer("")
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	decision := authorizer.Authorize(models.Actor{Role: models.RoleCandidate}, PermInterviewHire)
	if decision.Allowed {
		t.Fatalf("expected deny")
	}
	if decision.Reason == "" {
		t.Fatalf("deny must carry a reason")
	}
}

func TestAuthorizerLoadsPolicyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	policy := `roles:
  auditor:
    - "interview:read"
    - "pipeline:read"
  admin:
    - "*"
`
	if err := os.WriteFile(path, []byte(policy), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	authorizer, err := NewAuthorizer(path)
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}

	auditor := models.Actor{Role: models.Role("auditor")}
	if !authorizer.Authorize(auditor, PermPipelineRead).Allowed {
		t.Fatalf("auditor should read the pipeline")
	}
	if authorizer.Authorize(auditor, PermInterviewCancel).Allowed {
		t.Fatalf("auditor must not cancel interviews")
	}

	// The file replaces the built-in policy entirely.
	recruiter := models.Actor{Role: models.RoleRecruiter}
	if authorizer.Authorize(recruiter, PermInterviewCreate).Allowed {
		t.Fatalf("recruiter is not in the loaded policy")
	}
	if !authorizer.Authorize(models.Actor{Role: models.RoleAdmin}, PermInterviewHire).Allowed {
		t.Fatalf("admin wildcard should apply")
	}
}

func TestAuthorizerMissingFileFallsBack(t *testing.T) {
	authorizer, err := NewAuthorizer(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	if !authorizer.Authorize(models.Actor{Role: models.RoleRecruiter}, PermInterviewCreate).Allowed {
		t.Fatalf("expected fallback to built-in policy")
	}
}

func TestAuthorizerRejectsMalformedPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("roles: [not, a, map"), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}
	if _, err := NewAuthorizer(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
