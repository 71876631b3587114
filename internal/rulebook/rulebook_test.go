package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/rules"
)

func TestItemDefShareable_AllBaselinePasses(t *testing.T) {
	def := &rulebook.ItemDef{
		ID: "band",
		Hooks: rulebook.NewHookSet().
			Add(hooks.BeforeHittings, hooks.PriorityBaseline, &rules.DamageScale{Num: 11, Den: 10}).
			Add(hooks.AfterHittings, hooks.PriorityBaseline, &rules.DamageScale{Num: 1, Den: 1}),
	}
	assert.True(t, def.Shareable())
}

func TestItemDefShareable_ProximityHandlerDisqualifies(t *testing.T) {
	def := &rulebook.ItemDef{
		ID: "orb",
		Hooks: rulebook.NewHookSet().
			Add(hooks.OnProximities, hooks.PriorityBaseline, &rules.StatusAppliedReporter{MessageKey: "x"}),
	}
	assert.False(t, def.Shareable())
}

func TestItemDefShareable_RefreshHandlerDisqualifies(t *testing.T) {
	def := &rulebook.ItemDef{
		ID: "charm",
		Hooks: rulebook.NewHookSet().
			Add(hooks.OnRefreshes, hooks.PriorityBaseline, &rules.DamageScale{Num: 1, Den: 1}),
	}
	assert.False(t, def.Shareable())
}

func TestItemDefShareable_OffBaselinePriorityDisqualifies(t *testing.T) {
	def := &rulebook.ItemDef{
		ID: "ward",
		Hooks: rulebook.NewHookSet().
			Add(hooks.BeforeStatusAdds, hooks.PriorityGate, &rules.BlockBadStatusAdds{MessageKey: "x"}),
	}
	assert.False(t, def.Shareable())
}

func TestItemDefShareable_NoHandlersPasses(t *testing.T) {
	def := &rulebook.ItemDef{ID: "pebble"}
	assert.True(t, def.Shareable())
}

func TestRegistry_HookListSearchesEveryCategory(t *testing.T) {
	r := rulebook.DefaultRegistry()

	// A status contribution
	assert.Positive(t, r.HookList(rulebook.StatusBurn, hooks.OnTurnEnds).Len())

	// An ability contribution
	assert.Positive(t, r.HookList(rulebook.AbilityNormalizer, hooks.UserElementEffects).Len())

	// An item contribution
	assert.Positive(t, r.HookList(rulebook.ItemPowerBand, hooks.BeforeHittings).Len())

	// A map status contribution
	assert.Positive(t, r.HookList(rulebook.MapStatusSandstorm, hooks.OnMapTurnEnds).Len())

	// Unknown definitions contribute nothing
	assert.Zero(t, r.HookList("no_such_def", hooks.OnTurnEnds).Len())
}

func TestRegistry_ItemShareable(t *testing.T) {
	r := rulebook.DefaultRegistry()

	assert.True(t, r.ItemShareable(rulebook.ItemPowerBand))
	assert.True(t, r.ItemShareable(rulebook.ItemScopeLens))
	assert.False(t, r.ItemShareable(rulebook.ItemWardCharm))
	assert.False(t, r.ItemShareable(rulebook.ItemAlertOrb))
	assert.False(t, r.ItemShareable("no_such_item"))
}

func TestRegistry_UnknownLookupsReturnNotFound(t *testing.T) {
	r := rulebook.NewRegistry()

	_, err := r.Status("ghost_status")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = r.Skill("ghost_skill")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRegistry_InstantiateSkillCopiesCombatFields(t *testing.T) {
	r := rulebook.DefaultRegistry()

	skill, err := r.InstantiateSkill(rulebook.SkillEmber, "inst-1")
	require.NoError(t, err)

	assert.Equal(t, "inst-1", skill.ID)
	assert.Equal(t, rulebook.SkillEmber, skill.DefID)
	assert.Equal(t, entities.ElementFire, skill.Element)
	assert.Equal(t, 12, skill.Power)
	assert.Equal(t, 20, skill.PP)
	require.NotNil(t, skill.States)

	// Instances never share state with the definition or each other
	other, err := r.InstantiateSkill(rulebook.SkillEmber, "inst-2")
	require.NoError(t, err)
	skill.States.Set(&entities.StackState{Count: 3})
	assert.False(t, state.Has[*entities.StackState](other.States))
}

func TestHookSet_CloneIsDeep(t *testing.T) {
	set := rulebook.NewHookSet().
		Add(hooks.BeforeHittings, hooks.PriorityBaseline, &rules.DamageScale{Num: 2, Den: 1})

	clone := set.Clone()
	cloneEntry := clone.On(hooks.BeforeHittings).Entries()[0]
	cloneEntry.Handler.(*rules.DamageScale).Num = 9

	originalEntry := set.On(hooks.BeforeHittings).Entries()[0]
	assert.Equal(t, 2, originalEntry.Handler.(*rules.DamageScale).Num)
}

func TestStatusDefStacks(t *testing.T) {
	r := rulebook.DefaultRegistry()

	poison, err := r.Status(rulebook.StatusPoison)
	require.NoError(t, err)
	assert.True(t, poison.Stacks())

	sleep, err := r.Status(rulebook.StatusSleep)
	require.NoError(t, err)
	assert.False(t, sleep.Stacks())
}

func TestRegisterStates_CoversCatalogueKinds(t *testing.T) {
	registry := state.NewRegistry()
	require.NoError(t, rulebook.RegisterStates(registry))

	for _, kind := range []string{
		"status.stack",
		"status.countdown",
		"context.pending_status",
		"context.fraction",
		"context.matchup",
	} {
		s, err := registry.New(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, s.Kind())
	}
}
