package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// Site-level policies (domain: site)
	sitePolicies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, DomainSite, WildcardResource, WildcardAction, EffectAllow},

		// Editor: manages the catalog and content, handles leads, but cannot
		// touch users or the RBAC tables.
		{RoleEditor, DomainSite, ResourceHospital, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourceDoctor, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourceTreatment, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourcePackage, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourceContentPage, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourceMedia, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourceHospital, ActionPublish, EffectAllow},
		{RoleEditor, DomainSite, ResourceDoctor, ActionPublish, EffectAllow},
		{RoleEditor, DomainSite, ResourceTreatment, ActionPublish, EffectAllow},
		{RoleEditor, DomainSite, ResourcePackage, ActionPublish, EffectAllow},
		{RoleEditor, DomainSite, ResourceContentPage, ActionPublish, EffectAllow},
		{RoleEditor, DomainSite, ResourceHospital, ActionArchive, EffectAllow},
		{RoleEditor, DomainSite, ResourceDoctor, ActionArchive, EffectAllow},
		{RoleEditor, DomainSite, ResourceTreatment, ActionArchive, EffectAllow},
		{RoleEditor, DomainSite, ResourcePackage, ActionArchive, EffectAllow},
		{RoleEditor, DomainSite, ResourceContentPage, ActionArchive, EffectAllow},
		{RoleEditor, DomainSite, ResourceBooking, ActionManage, EffectAllow},
		{RoleEditor, DomainSite, ResourceBooking, ActionTransition, EffectAllow},
		{RoleEditor, DomainSite, ResourceTranslator, ActionManage, EffectAllow},

		// Translator: reads everything, edits only the text pairs, never
		// publishes or archives.
		{RoleTranslator, DomainSite, ResourceHospital, ActionRead, EffectAllow},
		{RoleTranslator, DomainSite, ResourceDoctor, ActionRead, EffectAllow},
		{RoleTranslator, DomainSite, ResourceTreatment, ActionRead, EffectAllow},
		{RoleTranslator, DomainSite, ResourcePackage, ActionRead, EffectAllow},
		{RoleTranslator, DomainSite, ResourceContentPage, ActionRead, EffectAllow},
		{RoleTranslator, DomainSite, ResourceHospital, ActionList, EffectAllow},
		{RoleTranslator, DomainSite, ResourceDoctor, ActionList, EffectAllow},
		{RoleTranslator, DomainSite, ResourceTreatment, ActionList, EffectAllow},
		{RoleTranslator, DomainSite, ResourcePackage, ActionList, EffectAllow},
		{RoleTranslator, DomainSite, ResourceContentPage, ActionList, EffectAllow},
		{RoleTranslator, DomainSite, ResourceHospital, ActionTranslate, EffectAllow},
		{RoleTranslator, DomainSite, ResourceDoctor, ActionTranslate, EffectAllow},
		{RoleTranslator, DomainSite, ResourceTreatment, ActionTranslate, EffectAllow},
		{RoleTranslator, DomainSite, ResourcePackage, ActionTranslate, EffectAllow},
		{RoleTranslator, DomainSite, ResourceContentPage, ActionTranslate, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own sessions
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
	}

	allPolicies := append(sitePolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignSiteRole assigns a site-level role to a user.
// Valid roles: RoleAdmin, RoleEditor, RoleTranslator
func AssignSiteRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleAdmin, RoleEditor, RoleTranslator:
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSite)
	return err
}

// RemoveSiteRole removes a site-level role from a user.
func RemoveSiteRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSite)
	return err
}
