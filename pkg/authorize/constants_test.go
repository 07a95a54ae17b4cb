package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"site domain", DomainSite, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("unknown:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionPublish, ActionArchive, ActionTransition, ActionTranslate,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession,
		ResourceHospital, ResourceDoctor, ResourceTreatment, ResourcePackage,
		ResourceBooking, ResourceTranslator,
		ResourceContentPage, ResourceMedia,
		ResourceSystem, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestUserRoleToRBACRole(t *testing.T) {
	tests := []struct {
		dbRole string
		want   Role
	}{
		{"ADMIN", RoleAdmin},
		{"EDITOR", RoleEditor},
		{"TRANSLATOR", RoleTranslator},
	}

	for _, tt := range tests {
		t.Run(tt.dbRole, func(t *testing.T) {
			got, ok := UserRoleToRBACRole[tt.dbRole]
			if !ok {
				t.Fatalf("UserRoleToRBACRole missing %q", tt.dbRole)
			}
			if got != tt.want {
				t.Errorf("UserRoleToRBACRole[%q] = %q, want %q", tt.dbRole, got, tt.want)
			}
		})
	}
}
