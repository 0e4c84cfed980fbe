// Package access composes the three orthogonal gating mechanisms —
// entitlements, permissions, and feature flags — into the single decision
// object UI collaborators consume.
//
// The composition contract is deliberate: permission and entitlement checks
// are evaluated independently and combined with logical AND at the call
// site. A role answers "may this subject act on this resource type"; an
// entitlement answers "is there quota left on this plan"; a flag answers
// "is this surface switched on at all". There is no merged super-check.
//
//	gate := access.New(entitlementSvc, flagCache)
//
//	decision, err := gate.CanCreate(ctx, subject, accountID, "members", entitlement.FeatureMembers)
//	if err != nil {
//		// infrastructure failure, not a denial
//	}
//	if !decision.Allowed {
//		// decision.Reason names the failed check;
//		// decision.Entitlement carries limit/remaining/upgrade detail
//	}
//
// Surfaces with a single gating axis use the narrower helpers: Can for
// permission-only actions, Feature for quota-only lookups, FlagEnabled for
// toggle-gated visibility.
package access
