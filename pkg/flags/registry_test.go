package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/accesskit/pkg/flags"
)

func TestNewRegistry(t *testing.T) {
	t.Run("rejects empty flag ids", func(t *testing.T) {
		_, err := flags.NewRegistry(flags.Definition{Name: "No id"})
		assert.ErrorIs(t, err, flags.ErrEmptyFlagID)
	})

	t.Run("rejects duplicate flag ids", func(t *testing.T) {
		_, err := flags.NewRegistry(
			flags.Definition{ID: "dark-mode"},
			flags.Definition{ID: "dark-mode"},
		)
		assert.ErrorIs(t, err, flags.ErrDuplicateFlag)
	})

	t.Run("defaults missing category to general", func(t *testing.T) {
		registry, err := flags.NewRegistry(flags.Definition{ID: "dark-mode"})
		require.NoError(t, err)

		def, ok := registry.Definition("dark-mode")
		require.True(t, ok)
		assert.Equal(t, flags.CategoryGeneral, def.Category)
	})

	t.Run("MustNewRegistry panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			flags.MustNewRegistry(flags.Definition{})
		})
	})
}

func TestRegistryAccessors(t *testing.T) {
	registry := testRegistry(t)

	t.Run("Contains", func(t *testing.T) {
		assert.True(t, registry.Contains("dark-mode"))
		assert.False(t, registry.Contains("unknown"))
	})

	t.Run("Definitions preserves declaration order", func(t *testing.T) {
		defs := registry.Definitions()
		require.Len(t, defs, 3)
		assert.Equal(t, flags.FlagID("dark-mode"), defs[0].ID)
		assert.Equal(t, flags.FlagID("new-sidebar"), defs[1].ID)
		assert.Equal(t, flags.FlagID("ai-insights"), defs[2].ID)
	})

	t.Run("ByCategory", func(t *testing.T) {
		ui := registry.ByCategory(flags.CategoryUI)
		require.Len(t, ui, 2)
		assert.Equal(t, flags.FlagID("dark-mode"), ui[0].ID)

		assert.Empty(t, registry.ByCategory(flags.CategoryExperimental))
	})

	t.Run("Defaults returns a fresh total snapshot", func(t *testing.T) {
		first := registry.Defaults()
		second := registry.Defaults()

		require.Len(t, first, 3)
		assert.True(t, first.Enabled("new-sidebar"))

		// Mutating one snapshot must not leak into the next.
		first["dark-mode"] = true
		assert.False(t, second.Enabled("dark-mode"))
	})

	t.Run("IDs are sorted", func(t *testing.T) {
		assert.Equal(t, []flags.FlagID{"ai-insights", "dark-mode", "new-sidebar"}, registry.IDs())
	})
}
