// Package entitlement resolves subscription plans and live usage counters
// into per-feature access decisions.
//
// A plan (free, pro, enterprise) defines a Limits record: ceilings for
// countable resources (members, accounts, organizations, custom roles),
// retention windows (transaction history, analytics), and capability
// switches (AI advisor, exchange rates, permission overrides). A limit of
// -1 (Unlimited) disables a ceiling.
//
// Features fall into three families with distinct semantics:
//
//   - Countable features gate hard on usage: access is granted while the
//     live counter is below the plan ceiling.
//   - Boolean-gated features are simply on or off per plan.
//   - Window features never block; they always grant access but report the
//     plan's retention window so the UI can degrade instead of denying.
//
// The core resolver is pure arithmetic over (plan, usage) and can run on
// every render:
//
//	result := entitlement.Resolve(entitlement.FeatureMembers, entitlement.PlanFree, usage)
//	if !result.HasAccess {
//	    // result.Reason names the limit and plan
//	    // result.CanUpgrade says whether a higher tier raises the ceiling
//	}
//
// The Service layer adds plan loading (static, YAML, or custom Source),
// per-account plan resolution, and usage counters (in-process or
// Redis-backed) for callers that do not hold a usage snapshot themselves:
//
//	counters := entitlement.NewRegistry()
//	entitlement.RegisterRedisCounters(counters, redisClient, "usage")
//
//	svc, err := entitlement.NewService(ctx, nil, counters, nil)
//	if err := svc.CanCreate(ctx, accountID, entitlement.FeatureAccounts); err != nil {
//	    // limit reached
//	}
//
// Unknown feature names resolve permissively (fail-open) so that newly
// introduced features never lock users out before the client catches up.
// A stricter deployment should gate unknown names at the call site.
package entitlement
