package entitlement

import "errors"

// Domain errors for entitlement operations
var (
	// Plan errors
	ErrPlanNotFound     = errors.New("entitlement.errors.plan_not_found")
	ErrPlanNotInContext = errors.New("entitlement.errors.plan_not_in_context")

	// Feature errors
	ErrLimitExceeded       = errors.New("entitlement.errors.limit_exceeded")
	ErrFeatureNotAvailable = errors.New("entitlement.errors.feature_not_available")
	ErrNotCountable        = errors.New("entitlement.errors.feature_not_countable")
	ErrNoCounterRegistered = errors.New("entitlement.errors.no_counter_registered")

	// Downgrade errors
	ErrDowngradeNotPossible = errors.New("entitlement.errors.downgrade_not_possible")

	// System errors
	ErrFailedToLoadPlans   = errors.New("entitlement.errors.failed_to_load_plans")
	ErrFailedToCountUsage  = errors.New("entitlement.errors.failed_to_count_usage")
	ErrInvalidPlanTable    = errors.New("entitlement.errors.invalid_plan_table")
	ErrInvalidPlanDocument = errors.New("entitlement.errors.invalid_plan_document")
)
