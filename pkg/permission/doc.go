// Package permission resolves "resource:action" permission tokens for
// role-based access control.
//
// Tokens form a closed vocabulary: the exact pair ("transactions:read"),
// the manage super-action ("transactions:manage" grants every action on
// transactions), the resource wildcard ("transactions:*"), and the global
// wildcard ("*"). Matching short-circuits in that precedence order.
//
// Two distinguished roles, admin and super-admin, bypass the permission set
// entirely; the bypass is checked before any token lookup. A nil subject
// fails closed: no role, no permissions, no access.
//
// Basic usage:
//
//	subject := &permission.Subject{
//		Role:        "member",
//		Permissions: []string{"transactions:read", "accounts:*"},
//	}
//
//	subject.Can("transactions", "read")   // true
//	subject.Can("transactions", "delete") // false
//	subject.Can("accounts", "delete")     // true (resource wildcard)
//
// Error-returning forms (Require, RequireAny, RequireAll) suit call sites
// that propagate authorization failures, and context helpers carry the
// subject through request scopes.
package permission
