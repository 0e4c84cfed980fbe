package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finboard/accesskit/pkg/entitlement"
	"github.com/finboard/accesskit/pkg/flags"
	"github.com/finboard/accesskit/pkg/permission"
)

// Decision is the combined answer for one gated UI affordance.
type Decision struct {
	// Allowed is the AND of every check that applied.
	Allowed bool
	// Entitlement carries the quota detail when an entitlement check ran,
	// so the UI can show limits and upgrade hints next to the verdict.
	Entitlement entitlement.AccessResult
	// Reason names the first check that failed; empty when allowed.
	Reason string
}

// Combine merges an independent permission verdict and entitlement result
// into one decision. The two checks answer different questions — the role
// says whether the subject may act on the resource type at all, the
// entitlement says whether quota remains — and are ANDed, never merged into
// a single lookup.
func Combine(subject *permission.Subject, resource, action string, result entitlement.AccessResult) Decision {
	if !subject.Can(resource, action) {
		return Decision{
			Entitlement: result,
			Reason:      fmt.Sprintf("You don't have permission to %s %s", action, resource),
		}
	}

	return Decision{
		Allowed:     result.HasAccess,
		Entitlement: result,
		Reason:      result.Reason,
	}
}

// Gate is the single entry point UI collaborators query for access
// decisions. It composes the entitlement service, the subject's permission
// set, and the flag cache; each mechanism stays independently evaluated.
type Gate struct {
	entitlements entitlement.Service
	flags        *flags.Cache
}

// New creates a Gate. Both collaborators are required.
func New(entitlements entitlement.Service, flagCache *flags.Cache) *Gate {
	if entitlements == nil {
		panic("access: New requires an entitlement service")
	}
	if flagCache == nil {
		panic("access: New requires a flag cache")
	}
	return &Gate{entitlements: entitlements, flags: flagCache}
}

// CanCreate gates a creation affordance on both the subject's permission to
// create the resource and the plan's remaining quota for the feature.
func (g *Gate) CanCreate(ctx context.Context, subject *permission.Subject, accountID uuid.UUID, resource string, feature entitlement.Feature) (Decision, error) {
	result, err := g.entitlements.ResolveFeature(ctx, accountID, feature)
	if err != nil {
		return Decision{}, err
	}
	return Combine(subject, resource, "create", result), nil
}

// Can gates an arbitrary action that has no quota dimension: only the
// permission check applies.
func (g *Gate) Can(subject *permission.Subject, resource, action string) Decision {
	if !subject.Can(resource, action) {
		return Decision{Reason: fmt.Sprintf("You don't have permission to %s %s", action, resource)}
	}
	return Decision{Allowed: true}
}

// Feature resolves the plan entitlement for one feature without any
// permission dimension, for surfaces gated purely by quota or capability.
func (g *Gate) Feature(ctx context.Context, accountID uuid.UUID, feature entitlement.Feature) (entitlement.AccessResult, error) {
	return g.entitlements.ResolveFeature(ctx, accountID, feature)
}

// FlagEnabled reports a toggle-gated visibility decision from the flag
// cache. Plan and role play no part here.
func (g *Gate) FlagEnabled(ctx context.Context, id flags.FlagID) bool {
	return g.flags.IsEnabled(ctx, id)
}

// InvalidateFlags clears the flag cache, forcing a refetch on next use.
func (g *Gate) InvalidateFlags() {
	g.flags.Invalidate()
}
