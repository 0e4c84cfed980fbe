package entitlement

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Plan context management
type planCtxKey struct{}

// SetPlanToContext stores the account's plan in the context for downstream
// access.
func SetPlanToContext(ctx context.Context, plan Plan) context.Context {
	return context.WithValue(ctx, planCtxKey{}, plan)
}

// GetPlanFromContext retrieves the plan from the context, if present.
func GetPlanFromContext(ctx context.Context) (Plan, bool) {
	plan, ok := ctx.Value(planCtxKey{}).(Plan)
	return plan, ok
}

// PlanContextResolver is the default resolver: gets the plan from context or
// returns an error.
func PlanContextResolver(ctx context.Context, _ uuid.UUID) (Plan, error) {
	plan, ok := GetPlanFromContext(ctx)
	if !ok {
		return "", errors.Join(ErrPlanNotFound, ErrPlanNotInContext)
	}
	return plan, nil
}
