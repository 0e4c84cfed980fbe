package entitlement

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Service resolves entitlements for accounts using a loaded plan table and
// registered usage counters.
type Service interface {
	// CanCreate checks if the account may create one more instance of a
	// countable feature. Returns ErrLimitExceeded when the ceiling is hit.
	CanCreate(ctx context.Context, accountID uuid.UUID, feature Feature) error

	// ResolveFeature computes the full access decision for one feature.
	ResolveFeature(ctx context.Context, accountID uuid.UUID, feature Feature) (AccessResult, error)

	// ResolveAll computes access decisions for every known feature.
	ResolveAll(ctx context.Context, accountID uuid.UUID) (map[Feature]AccessResult, error)

	// Usage collects the live counters for all countable features.
	// Counter failures leave the corresponding counter at zero.
	Usage(ctx context.Context, accountID uuid.UUID) (Usage, error)

	// UsagePercentage returns usage as a percentage (0-100, or -1 for
	// unlimited). Returns 0 when the usage cannot be determined.
	UsagePercentage(ctx context.Context, accountID uuid.UUID, feature Feature) int

	// CanDowngrade checks if current usage fits inside the target plan.
	CanDowngrade(ctx context.Context, accountID uuid.UUID, target Plan) error

	// VerifyPlan checks if a plan exists in the loaded table.
	VerifyPlan(plan Plan) error
}

// Source defines how the plan table is loaded into the service.
type Source interface {
	Load(ctx context.Context) (Table, error)
}

// PlanResolver resolves the subscription plan for a given account.
type PlanResolver func(ctx context.Context, accountID uuid.UUID) (Plan, error)

// service implements the Service interface.
type service struct {
	// The table and registry are treated as immutable after initialization;
	// thread safety relies on no runtime modification.
	table        Table
	counters     CounterRegistry
	planResolver PlanResolver
}

// NewService creates a Service from a plan Source and a CounterRegistry.
// A nil source loads the built-in DefaultTable; a nil resolver reads the
// plan from the context (PlanContextResolver).
func NewService(ctx context.Context, src Source, counters CounterRegistry, planResolver PlanResolver) (Service, error) {
	table := DefaultTable()
	if src != nil {
		loaded, err := src.Load(ctx)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadPlans, err)
		}
		if loaded != nil {
			table = loaded
		}
	}

	if err := validateTable(table); err != nil {
		return nil, err
	}

	if counters == nil {
		counters = NewRegistry()
	}
	if planResolver == nil {
		planResolver = PlanContextResolver
	}

	return &service{
		table:        table,
		counters:     counters,
		planResolver: planResolver,
	}, nil
}

func (s *service) CanCreate(ctx context.Context, accountID uuid.UUID, feature Feature) error {
	if !IsCountable(feature) {
		return ErrNotCountable
	}

	result, err := s.ResolveFeature(ctx, accountID, feature)
	if err != nil {
		return err
	}
	if !result.HasAccess {
		return ErrLimitExceeded
	}
	return nil
}

func (s *service) ResolveFeature(ctx context.Context, accountID uuid.UUID, feature Feature) (AccessResult, error) {
	plan, err := s.planResolver(ctx, accountID)
	if err != nil {
		return AccessResult{}, err
	}

	var usage Usage
	if IsCountable(feature) {
		usage, err = s.countFeature(ctx, accountID, feature)
		if err != nil {
			return AccessResult{}, err
		}
	}

	return s.table.Resolve(feature, plan, usage), nil
}

func (s *service) ResolveAll(ctx context.Context, accountID uuid.UUID) (map[Feature]AccessResult, error) {
	plan, err := s.planResolver(ctx, accountID)
	if err != nil {
		return nil, err
	}

	usage, err := s.Usage(ctx, accountID)
	if err != nil {
		return nil, err
	}

	features := Features()
	results := make(map[Feature]AccessResult, len(features))
	for _, feature := range features {
		results[feature] = s.table.Resolve(feature, plan, usage)
	}
	return results, nil
}

func (s *service) Usage(ctx context.Context, accountID uuid.UUID) (Usage, error) {
	var usage Usage
	for feature, counter := range s.counters {
		current, err := counter(ctx, accountID)
		if err != nil {
			// Counter failures are non-fatal for snapshot collection.
			continue
		}
		switch feature {
		case FeatureMembers:
			usage.Members = current
		case FeatureAccounts:
			usage.Accounts = current
		case FeatureOrganizations:
			usage.Organizations = current
		case FeatureCustomRoles:
			usage.CustomRoles = current
		}
	}
	return usage, nil
}

func (s *service) UsagePercentage(ctx context.Context, accountID uuid.UUID, feature Feature) int {
	result, err := s.ResolveFeature(ctx, accountID, feature)
	if err != nil {
		return 0
	}

	if result.Limit == Unlimited {
		return -1
	}
	if result.Limit == 0 {
		return 100
	}
	return min(int((result.Current*100)/result.Limit), 100)
}

func (s *service) CanDowngrade(ctx context.Context, accountID uuid.UUID, target Plan) error {
	targetLimits, exists := s.table[target]
	if !exists {
		return ErrPlanNotFound
	}

	for feature, counter := range s.counters {
		targetLimit, ok := targetLimits.limitFor(feature)
		if !ok || targetLimit == Unlimited {
			continue
		}

		current, err := counter(ctx, accountID)
		if err != nil {
			return errors.Join(ErrFailedToCountUsage, err)
		}
		if current > targetLimit {
			return ErrDowngradeNotPossible
		}
	}
	return nil
}

func (s *service) VerifyPlan(plan Plan) error {
	if _, exists := s.table[plan]; !exists {
		return ErrPlanNotFound
	}
	return nil
}

// countFeature reads a single counter; a missing counter is an error here
// because the caller asked about that feature explicitly.
func (s *service) countFeature(ctx context.Context, accountID uuid.UUID, feature Feature) (Usage, error) {
	counter, exists := s.counters[feature]
	if !exists {
		return Usage{}, ErrNoCounterRegistered
	}

	current, err := counter(ctx, accountID)
	if err != nil {
		return Usage{}, errors.Join(ErrFailedToCountUsage, err)
	}

	var usage Usage
	switch feature {
	case FeatureMembers:
		usage.Members = current
	case FeatureAccounts:
		usage.Accounts = current
	case FeatureOrganizations:
		usage.Organizations = current
	case FeatureCustomRoles:
		usage.CustomRoles = current
	}
	return usage, nil
}

// validateTable checks the plan table for obviously broken records.
func validateTable(table Table) error {
	if len(table) == 0 {
		return ErrInvalidPlanTable
	}
	for plan, limits := range table {
		for _, feature := range Features() {
			limit, ok := limits.limitFor(feature)
			if ok && limit < Unlimited {
				return errors.Join(ErrInvalidPlanTable,
					errors.New("plan "+string(plan)+" has negative limit for "+string(feature)))
			}
		}
	}
	return nil
}
