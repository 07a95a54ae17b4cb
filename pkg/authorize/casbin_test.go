package authorize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates a file-backed Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	tmpDir := t.TempDir()

	// Write model config
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = g(r.sub, p.sub, r.dom) && (r.dom == p.dom || p.dom == "*") && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*" || (p.act == "manage" && regexMatch(r.act, "^(create|read|update|delete|list)$")))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-123"

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleEditor, DomainSite)
	if err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	_, err = auth.AddPermission(ctx, RoleEditor, DomainSite, ResourceHospital, ActionManage, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed by manage on covered action",
			subject:  GroupSubject(userID),
			domain:   DomainSite,
			resource: ResourceHospital,
			action:   ActionUpdate,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "manage does not cover publish",
			subject:  GroupSubject(userID),
			domain:   DomainSite,
			resource: ResourceHospital,
			action:   ActionPublish,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "denied on other resource",
			subject:  GroupSubject(userID),
			domain:   DomainSite,
			resource: ResourceBooking,
			action:   ActionRead,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			domain:   DomainSite,
			resource: ResourceHospital,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for invalid domain",
			subject:  GroupSubject(userID),
			domain:   Domain("invalid"),
			resource: ResourceHospital,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(userID),
			domain:   DomainSite,
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(userID),
			domain:   DomainSite,
			resource: ResourceHospital,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-456"

	auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleTranslator, DomainSite)
	auth.AddPermission(ctx, RoleTranslator, DomainSite, ResourceTreatment, ActionTranslate, EffectAllow)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSite, ResourceTreatment, ActionTranslate)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSite, ResourceTreatment, ActionDelete)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestSiteAdminBypass(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	adminID := "admin-id"

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(adminID), RoleAdmin, DomainSite)
	if err != nil {
		t.Fatalf("Failed to add admin role: %v", err)
	}

	// Site admins are allowed everything without explicit permissions,
	// including private user domains.
	checks := []struct {
		domain   Domain
		resource Resource
		action   Action
	}{
		{DomainSite, ResourceUser, ActionDelete},
		{DomainSite, ResourceBooking, ActionTransition},
		{UserDomain("550e8400-e29b-41d4-a716-446655440000"), ResourceAuthSession, ActionRead},
	}

	for _, c := range checks {
		allowed, err := auth.Enforce(ctx, GroupSubject(adminID), c.domain, c.resource, c.action)
		if err != nil {
			t.Errorf("Unexpected error for %s/%s: %v", c.resource, c.action, err)
		}
		if !allowed {
			t.Errorf("Expected admin to be allowed for %s/%s", c.resource, c.action)
		}
	}

	// A non-admin in the same domain stays denied.
	allowed, err := auth.Enforce(ctx, GroupSubject("regular-user"), DomainSite, ResourceUser, ActionDelete)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if allowed {
		t.Error("Expected non-admin to be denied")
	}
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-789"
	domain := UserDomain("550e8400-e29b-41d4-a716-446655440000")

	t.Run("add and get roles", func(t *testing.T) {
		added, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleUserSelf, domain)
		if err != nil {
			t.Errorf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), domain)
		if err != nil {
			t.Errorf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 {
			t.Errorf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RoleUserSelf {
			t.Errorf("Expected role %q, got %q", RoleUserSelf, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), RoleUserSelf, domain)
		if err != nil {
			t.Errorf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), Role("role:site:bogus"), domain)
		if err == nil {
			t.Error("Expected error for unknown role")
		}
	})
}
