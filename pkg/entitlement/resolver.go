package entitlement

import "fmt"

// featureNouns names countable features inside denial reasons.
var featureNouns = map[Feature]string{
	FeatureMembers:       "members",
	FeatureAccounts:      "accounts",
	FeatureOrganizations: "organizations",
	FeatureCustomRoles:   "custom roles",
}

// capabilityTitles names boolean-gated features inside denial reasons.
var capabilityTitles = map[Feature]string{
	FeatureAIAdvisor:           "AI advisor",
	FeatureExchangeRates:       "Exchange rates",
	FeaturePermissionOverrides: "Permission overrides",
}

// Resolve computes the access decision for one feature given the plan and
// the live usage counters. It is a pure projection: no side effects, cheap
// enough to call on every render.
//
// An unknown plan falls back to the free tier's record, the most restrictive
// known ceiling. An unknown feature name resolves permissively (access
// granted, no ceiling) so forward-compatible feature names never lock a user
// out.
func (t Table) Resolve(feature Feature, plan Plan, usage Usage) AccessResult {
	limits, ok := t[plan]
	if !ok {
		limits = t[PlanFree]
	}

	if IsCountable(feature) {
		return resolveCountable(feature, plan, limits, usage)
	}

	if granted, ok := limits.capabilityFor(feature); ok {
		return resolveCapability(feature, plan, granted)
	}

	if window, ok := limits.limitFor(feature); ok {
		return resolveWindow(feature, plan, window)
	}

	// Unrecognized feature: permissive default.
	return AccessResult{
		HasAccess: true,
		Limit:     Unlimited,
		Remaining: Unlimited,
	}
}

// Resolve computes the access decision against the built-in plan table. See
// Table.Resolve.
func Resolve(feature Feature, plan Plan, usage Usage) AccessResult {
	return defaultTable.Resolve(feature, plan, usage)
}

var defaultTable = DefaultTable()

func resolveCountable(feature Feature, plan Plan, limits Limits, usage Usage) AccessResult {
	limit, _ := limits.limitFor(feature)
	current := usage.counter(feature)

	result := AccessResult{
		Limit:      limit,
		Current:    current,
		CanUpgrade: canUpgradeFor(feature, plan),
	}

	if limit == Unlimited {
		result.HasAccess = true
		result.Remaining = Unlimited
		return result
	}

	result.HasAccess = current < limit
	result.Remaining = max(0, limit-current)
	if !result.HasAccess {
		result.Reason = fmt.Sprintf("You've reached the limit of %d %s on the %s plan",
			limit, featureNouns[feature], plan)
	}
	return result
}

func resolveCapability(feature Feature, plan Plan, granted bool) AccessResult {
	if granted {
		return AccessResult{
			HasAccess: true,
			Limit:     Unlimited,
			Remaining: Unlimited,
		}
	}

	return AccessResult{
		CanUpgrade: true,
		Reason:     fmt.Sprintf("%s is not available on the %s plan", capabilityTitles[feature], plan),
	}
}

func resolveWindow(feature Feature, plan Plan, window int64) AccessResult {
	// Window features never block: access is always granted and the limit
	// tells the UI how far back data reaches.
	result := AccessResult{
		HasAccess: true,
		Limit:     window,
		Remaining: window,
	}

	if window == Unlimited {
		return result
	}

	result.CanUpgrade = true
	switch feature {
	case FeatureTransactionHistory:
		result.Reason = fmt.Sprintf("Transaction history is limited to %d months on the %s plan", window, plan)
	case FeatureAnalytics:
		result.Reason = fmt.Sprintf("Analytics history is limited to %d days on the %s plan", window, plan)
	}
	return result
}
