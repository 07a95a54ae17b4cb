package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Lifecycle actions
	ActionPublish    Action = "publish"
	ActionArchive    Action = "archive"
	ActionTransition Action = "transition" // booking status changes

	// Translation workflow: edit only the Arabic/English text pair of an entity
	ActionTranslate Action = "translate"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage:  {},
	ActionPublish: {}, ActionArchive: {}, ActionTransition: {}, ActionTranslate: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Catalog
	ResourceHospital  Resource = "hospital"
	ResourceDoctor    Resource = "doctor"
	ResourceTreatment Resource = "treatment"
	ResourcePackage   Resource = "package"

	// Leads
	ResourceBooking    Resource = "booking"
	ResourceTranslator Resource = "translator"

	// Content
	ResourceContentPage Resource = "content_page"
	ResourceMedia       Resource = "media"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceHospital: {}, ResourceDoctor: {}, ResourceTreatment: {}, ResourcePackage: {},
	ResourceBooking: {}, ResourceTranslator: {},
	ResourceContentPage: {}, ResourceMedia: {},
	ResourceSystem: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Site roles (domain = site)
	RoleAdmin      Role = "role:site:admin"
	RoleEditor     Role = "role:site:editor"
	RoleTranslator Role = "role:site:translator"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin:      {},
	RoleEditor:     {},
	RoleTranslator: {},
	RoleUserSelf:   {},
}

// UserRoleToRBACRole maps the users.role column to Casbin roles.
var UserRoleToRBACRole = map[string]Role{
	"ADMIN":      RoleAdmin,
	"EDITOR":     RoleEditor,
	"TRANSLATOR": RoleTranslator,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSite Domain = "site"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds the private domain of a user.
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSite || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
