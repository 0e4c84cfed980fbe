package access_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/accesskit/pkg/access"
	"github.com/finboard/accesskit/pkg/entitlement"
	"github.com/finboard/accesskit/pkg/flags"
	"github.com/finboard/accesskit/pkg/permission"
)

func newTestGate(t *testing.T, memberCount int64, remote map[string]bool) *access.Gate {
	t.Helper()

	counters := entitlement.NewRegistry()
	counters.Register(entitlement.FeatureMembers, entitlement.StaticCounter(memberCount))

	svc, err := entitlement.NewService(context.Background(), nil, counters, nil)
	require.NoError(t, err)

	registry := flags.MustNewRegistry(
		flags.Definition{ID: "member-invites", Name: "Member invites", Default: true},
		flags.Definition{ID: "beta-analytics", Name: "Beta analytics", Default: false},
	)
	fetcher := flags.FetcherFunc(func(ctx context.Context) (map[string]bool, error) {
		return remote, nil
	})

	return access.New(svc, flags.NewCache(registry, fetcher))
}

func memberSubject() *permission.Subject {
	return &permission.Subject{
		Role:        "member",
		Permissions: []string{"members:create", "members:read"},
	}
}

func TestGateCanCreate(t *testing.T) {
	accountID := uuid.New()
	ctx := entitlement.SetPlanToContext(context.Background(), entitlement.PlanFree)

	t.Run("permission and quota both pass", func(t *testing.T) {
		gate := newTestGate(t, 1, nil)

		decision, err := gate.CanCreate(ctx, memberSubject(), accountID, "members", entitlement.FeatureMembers)
		require.NoError(t, err)

		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Reason)
		assert.Equal(t, int64(1), decision.Entitlement.Remaining)
	})

	t.Run("quota exhausted blocks despite permission", func(t *testing.T) {
		gate := newTestGate(t, 2, nil)

		decision, err := gate.CanCreate(ctx, memberSubject(), accountID, "members", entitlement.FeatureMembers)
		require.NoError(t, err)

		assert.False(t, decision.Allowed)
		assert.Equal(t, "You've reached the limit of 2 members on the free plan", decision.Reason)
		assert.True(t, decision.Entitlement.CanUpgrade)
	})

	t.Run("missing permission blocks despite quota", func(t *testing.T) {
		gate := newTestGate(t, 0, nil)
		subject := &permission.Subject{Role: "viewer", Permissions: []string{"members:read"}}

		decision, err := gate.CanCreate(ctx, subject, accountID, "members", entitlement.FeatureMembers)
		require.NoError(t, err)

		assert.False(t, decision.Allowed)
		assert.Equal(t, "You don't have permission to create members", decision.Reason)
		// Entitlement detail still travels with the denial.
		assert.True(t, decision.Entitlement.HasAccess)
	})

	t.Run("admin bypasses permissions but not quota", func(t *testing.T) {
		gate := newTestGate(t, 2, nil)
		admin := &permission.Subject{Role: permission.RoleAdmin}

		decision, err := gate.CanCreate(ctx, admin, accountID, "members", entitlement.FeatureMembers)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
	})

	t.Run("nil subject fails closed", func(t *testing.T) {
		gate := newTestGate(t, 0, nil)

		decision, err := gate.CanCreate(ctx, nil, accountID, "members", entitlement.FeatureMembers)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
	})

	t.Run("infrastructure errors surface as errors, not denials", func(t *testing.T) {
		gate := newTestGate(t, 0, nil)

		_, err := gate.CanCreate(context.Background(), memberSubject(), accountID, "members", entitlement.FeatureMembers)
		assert.ErrorIs(t, err, entitlement.ErrPlanNotInContext)
	})
}

func TestGateCan(t *testing.T) {
	gate := newTestGate(t, 0, nil)

	decision := gate.Can(memberSubject(), "members", "read")
	assert.True(t, decision.Allowed)

	decision = gate.Can(memberSubject(), "members", "delete")
	assert.False(t, decision.Allowed)
	assert.Equal(t, "You don't have permission to delete members", decision.Reason)
}

func TestGateFeature(t *testing.T) {
	accountID := uuid.New()
	gate := newTestGate(t, 0, nil)

	ctx := entitlement.SetPlanToContext(context.Background(), entitlement.PlanFree)
	result, err := gate.Feature(ctx, accountID, entitlement.FeatureAIAdvisor)
	require.NoError(t, err)

	assert.False(t, result.HasAccess)
	assert.True(t, result.CanUpgrade)
}

func TestGateFlagEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("remote values with defaults for the rest", func(t *testing.T) {
		gate := newTestGate(t, 0, map[string]bool{"beta-analytics": true})

		assert.True(t, gate.FlagEnabled(ctx, "beta-analytics"))
		assert.True(t, gate.FlagEnabled(ctx, "member-invites"))
		assert.False(t, gate.FlagEnabled(ctx, "unregistered"))
	})

	t.Run("invalidation forces a refetch", func(t *testing.T) {
		remote := map[string]bool{"member-invites": false}
		gate := newTestGate(t, 0, remote)

		assert.False(t, gate.FlagEnabled(ctx, "member-invites"))

		remote["member-invites"] = true
		gate.InvalidateFlags()
		assert.True(t, gate.FlagEnabled(ctx, "member-invites"))
	})
}

func TestCombine(t *testing.T) {
	granted := entitlement.AccessResult{HasAccess: true, Limit: entitlement.Unlimited, Remaining: entitlement.Unlimited}
	denied := entitlement.AccessResult{Limit: 3, Current: 3, CanUpgrade: true, Reason: "You've reached the limit of 3 accounts on the free plan"}

	t.Run("both pass", func(t *testing.T) {
		decision := access.Combine(memberSubject(), "members", "create", granted)
		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Reason)
	})

	t.Run("entitlement reason propagates", func(t *testing.T) {
		decision := access.Combine(memberSubject(), "members", "create", denied)
		assert.False(t, decision.Allowed)
		assert.Equal(t, denied.Reason, decision.Reason)
	})

	t.Run("permission failure wins the reason", func(t *testing.T) {
		decision := access.Combine(nil, "members", "create", denied)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "You don't have permission to create members", decision.Reason)
	})
}

func TestNewPanics(t *testing.T) {
	assert.Panics(t, func() { access.New(nil, nil) })
}
