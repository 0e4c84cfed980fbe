package permission

import (
	"slices"
	"strings"
)

const (
	// Separator splits a permission token into resource and action parts.
	Separator = ":"

	// Wildcard matches any action when used as "resource:*", and any
	// permission at all when used as the bare global token "*".
	Wildcard = "*"

	// ActionManage is the implicit super-action: "resource:manage" grants
	// every action on that resource.
	ActionManage = "manage"
)

// Roles that bypass permission checks entirely. The bypass is a role-level
// exception evaluated before the permission set is consulted.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Token builds a permission token from a resource and action pair.
func Token(resource, action string) string {
	return resource + Separator + action
}

// HasPermission reports whether the permission set grants the given
// (resource, action) pair. Matching is evaluated in precedence order:
//
//  1. Exact token "resource:action"
//  2. Resource manage token "resource:manage"
//  3. Resource wildcard "resource:*"
//  4. Global wildcard "*"
//
// Unknown resource or action names are ordinary non-matching tokens, never
// errors. An empty set grants nothing.
func HasPermission(permissions []string, resource, action string) bool {
	if len(permissions) == 0 {
		return false
	}

	if slices.Contains(permissions, Token(resource, action)) {
		return true
	}
	if action != ActionManage && slices.Contains(permissions, Token(resource, ActionManage)) {
		return true
	}
	if slices.Contains(permissions, Token(resource, Wildcard)) {
		return true
	}
	return slices.Contains(permissions, Wildcard)
}

// Subject is the authorization input for a single user: the session role and
// the permission tokens attached to it. Both are supplied externally and are
// immutable per evaluation.
type Subject struct {
	Role        string
	Permissions []string
}

// IsBypassRole reports whether the role skips permission checks entirely.
func IsBypassRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// Can reports whether the subject may perform action on resource. A nil
// subject fails closed. The role bypass is checked before the permission set.
func (s *Subject) Can(resource, action string) bool {
	if s == nil {
		return false
	}
	if IsBypassRole(s.Role) {
		return true
	}
	return HasPermission(s.Permissions, resource, action)
}

// CanAny reports whether the subject may perform at least one of the actions
// on resource. An empty action list grants nothing.
func (s *Subject) CanAny(resource string, actions ...string) bool {
	for _, action := range actions {
		if s.Can(resource, action) {
			return true
		}
	}
	return false
}

// CanAll reports whether the subject may perform every action on resource.
// Vacuously true for an empty action list on a non-nil subject.
func (s *Subject) CanAll(resource string, actions ...string) bool {
	if s == nil {
		return false
	}
	for _, action := range actions {
		if !s.Can(resource, action) {
			return false
		}
	}
	return true
}

// Split returns the resource and action parts of a permission token. The
// second part is empty when the token has no separator (e.g. the global
// wildcard).
func Split(token string) (resource, action string) {
	resource, action, _ = strings.Cut(token, Separator)
	return resource, action
}
