package entitlement

// Plan identifies a subscription tier.
type Plan string

// Subscription tiers, ordered from lowest to highest.
const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Unlimited represents a limit with no ceiling (-1).
const Unlimited int64 = -1

// Feature is a named capability or quota gated by the subscription plan.
type Feature string

// Countable features: live usage counters checked against plan ceilings.
const (
	FeatureMembers       Feature = "members"
	FeatureAccounts      Feature = "accounts"
	FeatureOrganizations Feature = "organizations"
	FeatureCustomRoles   Feature = "custom-roles"
)

// Boolean-gated features: on or off per plan, no counter involved.
const (
	FeatureAIAdvisor           Feature = "ai-advisor"
	FeatureExchangeRates       Feature = "exchange-rates"
	FeaturePermissionOverrides Feature = "permission-overrides"
)

// Informational window features: never block, but report the plan's
// retention window so the UI can degrade instead of denying.
const (
	FeatureTransactionHistory Feature = "transaction-history"
	FeatureAnalytics          Feature = "analytics"
)

// Limits is the per-plan entitlement record: countable ceilings, retention
// windows, and capability switches. Unlimited (-1) disables a ceiling.
// Limits is process-wide static configuration, not a user-owned entity.
type Limits struct {
	Members                  int64 `yaml:"members" json:"members"`
	Accounts                 int64 `yaml:"accounts" json:"accounts"`
	Organizations            int64 `yaml:"organizations" json:"organizations"`
	CustomRoles              int64 `yaml:"custom_roles" json:"custom_roles"`
	TransactionHistoryMonths int64 `yaml:"transaction_history_months" json:"transaction_history_months"`
	AnalyticsHistoryDays     int64 `yaml:"analytics_history_days" json:"analytics_history_days"`
	AIAdvisor                bool  `yaml:"ai_advisor" json:"ai_advisor"`
	ExchangeRates            bool  `yaml:"exchange_rates" json:"exchange_rates"`
	PermissionOverrides      bool  `yaml:"permission_overrides" json:"permission_overrides"`
}

// Usage holds the live counters for the countable features. The counters are
// maintained by the surrounding application and read-only to this package.
type Usage struct {
	Members       int64 `json:"members"`
	Accounts      int64 `json:"accounts"`
	Organizations int64 `json:"organizations"`
	CustomRoles   int64 `json:"custom_roles"`
}

// counter returns the usage value for a countable feature, zero otherwise.
func (u Usage) counter(feature Feature) int64 {
	switch feature {
	case FeatureMembers:
		return u.Members
	case FeatureAccounts:
		return u.Accounts
	case FeatureOrganizations:
		return u.Organizations
	case FeatureCustomRoles:
		return u.CustomRoles
	}
	return 0
}

// AccessResult is the resolved access decision for one feature.
//
// Remaining mirrors Limit's convention: Unlimited (-1) when the feature has
// no ceiling, otherwise max(0, Limit-Current). Reason is empty when access
// is granted by a hard gate; window features may carry a reason describing
// the plan's retention restriction even though access itself is granted.
type AccessResult struct {
	HasAccess  bool   `json:"has_access"`
	Limit      int64  `json:"limit"`
	Current    int64  `json:"current"`
	Remaining  int64  `json:"remaining"`
	CanUpgrade bool   `json:"can_upgrade"`
	Reason     string `json:"reason,omitempty"`
}

// IsUnlimited reports whether the feature has no ceiling on this plan.
func (r AccessResult) IsUnlimited() bool {
	return r.Limit == Unlimited
}
