package entitlement

import "slices"

// Table maps every subscription plan to its entitlement record.
type Table map[Plan]Limits

// DefaultTable returns the built-in plan ladder. Callers that ship plan
// tables as configuration can load a replacement through a Source instead.
func DefaultTable() Table {
	return Table{
		PlanFree: {
			Members:                  2,
			Accounts:                 3,
			Organizations:            1,
			CustomRoles:              0,
			TransactionHistoryMonths: 3,
			AnalyticsHistoryDays:     30,
		},
		PlanPro: {
			Members:                  Unlimited,
			Accounts:                 20,
			Organizations:            3,
			CustomRoles:              5,
			TransactionHistoryMonths: 24,
			AnalyticsHistoryDays:     365,
			AIAdvisor:                true,
			ExchangeRates:            true,
		},
		PlanEnterprise: {
			Members:                  Unlimited,
			Accounts:                 Unlimited,
			Organizations:            Unlimited,
			CustomRoles:              Unlimited,
			TransactionHistoryMonths: Unlimited,
			AnalyticsHistoryDays:     Unlimited,
			AIAdvisor:                true,
			ExchangeRates:            true,
			PermissionOverrides:      true,
		},
	}
}

// upgradeEligible declares, per countable feature, the plans for which an
// upgrade raises that feature's ceiling. Kept as an explicit table so the
// upgrade policy stays auditable separately from the access arithmetic.
// Members are already unlimited on pro, so only free is upgrade-eligible
// there; the other countable ceilings grow at both the free and pro steps.
var upgradeEligible = map[Feature][]Plan{
	FeatureMembers:       {PlanFree},
	FeatureAccounts:      {PlanFree, PlanPro},
	FeatureOrganizations: {PlanFree, PlanPro},
	FeatureCustomRoles:   {PlanFree, PlanPro},
}

// canUpgradeFor reports whether upgrading from plan raises the ceiling of a
// countable feature.
func canUpgradeFor(feature Feature, plan Plan) bool {
	return slices.Contains(upgradeEligible[feature], plan)
}

// KnownPlans returns the plans of the table in ladder order where possible;
// unknown custom plans follow in lexical order.
func (t Table) KnownPlans() []Plan {
	ladder := []Plan{PlanFree, PlanPro, PlanEnterprise}

	plans := make([]Plan, 0, len(t))
	for _, p := range ladder {
		if _, ok := t[p]; ok {
			plans = append(plans, p)
		}
	}

	var custom []Plan
	for p := range t {
		if !slices.Contains(ladder, p) {
			custom = append(custom, p)
		}
	}
	slices.Sort(custom)

	return append(plans, custom...)
}

// limitFor returns the ceiling a plan record imposes on a countable or
// window feature. The second return is false for boolean-gated or unknown
// feature names.
func (l Limits) limitFor(feature Feature) (int64, bool) {
	switch feature {
	case FeatureMembers:
		return l.Members, true
	case FeatureAccounts:
		return l.Accounts, true
	case FeatureOrganizations:
		return l.Organizations, true
	case FeatureCustomRoles:
		return l.CustomRoles, true
	case FeatureTransactionHistory:
		return l.TransactionHistoryMonths, true
	case FeatureAnalytics:
		return l.AnalyticsHistoryDays, true
	}
	return 0, false
}

// capabilityFor returns the boolean switch for a capability feature. The
// second return is false for non-boolean feature names.
func (l Limits) capabilityFor(feature Feature) (bool, bool) {
	switch feature {
	case FeatureAIAdvisor:
		return l.AIAdvisor, true
	case FeatureExchangeRates:
		return l.ExchangeRates, true
	case FeaturePermissionOverrides:
		return l.PermissionOverrides, true
	}
	return false, false
}

// IsCountable reports whether the feature is backed by a live usage counter.
func IsCountable(feature Feature) bool {
	switch feature {
	case FeatureMembers, FeatureAccounts, FeatureOrganizations, FeatureCustomRoles:
		return true
	}
	return false
}

// Features returns every feature name the resolver recognizes.
func Features() []Feature {
	return []Feature{
		FeatureMembers,
		FeatureAccounts,
		FeatureOrganizations,
		FeatureCustomRoles,
		FeatureAIAdvisor,
		FeatureExchangeRates,
		FeaturePermissionOverrides,
		FeatureTransactionHistory,
		FeatureAnalytics,
	}
}
