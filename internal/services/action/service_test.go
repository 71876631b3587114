package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/dice"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/matchup"
	"github.com/mossfell/delve-rules/internal/presenter"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/services/status"
	"github.com/mossfell/delve-rules/internal/uuid"
)

type fixture struct {
	svc      Service
	statuses status.Service
	registry *rulebook.Registry
	floor    *entities.Floor
	recorder *presenter.Recorder
	roller   *dice.MockRoller
	env      *hooks.Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	registry := rulebook.DefaultRegistry()
	floor := entities.NewFloor()
	recorder := presenter.NewRecorder()
	roller := dice.NewMockRoller()

	statusSvc := status.NewService(&status.ServiceConfig{
		Registry: registry,
		IDs:      uuid.NewGoogleUUIDGenerator(),
		Floor:    floor,
	})
	actionSvc := NewService(&ServiceConfig{
		Registry: registry,
		Floor:    floor,
	})
	env := &hooks.Env{
		Presenter: recorder,
		Roller:    roller,
		Entities:  floor,
		Statuses:  statusSvc,
		Defs:      registry,
	}
	return &fixture{
		svc:      actionSvc,
		statuses: statusSvc,
		registry: registry,
		floor:    floor,
		recorder: recorder,
		roller:   roller,
		env:      env,
	}
}

func (f *fixture) addCharacter(id, name string, elements ...entities.Element) *entities.Character {
	c := entities.NewCharacter(id, name)
	c.MaxHP, c.HP = 100, 100
	c.Elements = elements
	f.floor.Characters = append(f.floor.Characters, c)
	return c
}

func (f *fixture) skill(t *testing.T, defID string) *entities.Skill {
	t.Helper()
	skill, err := f.registry.InstantiateSkill(defID, defID+"-inst")
	require.NoError(t, err)
	return skill
}

func (f *fixture) ctx() *hooks.Context {
	return hooks.NewContext(f.env)
}

func TestResolveSkill_NeutralHit(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillTackle)

	f.roller.SetChecks(true)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.True(t, result.Started)
	assert.True(t, result.Hit)
	assert.Equal(t, 10, result.Damage)
	assert.Equal(t, 90, target.HP)
	assert.Equal(t, 29, skill.PP)
	assert.Contains(t, f.recorder.LogKeys(), "action.hit")
}

func TestResolveSkill_SuperEffectiveScalesDamage(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Emberling", entities.ElementFire)
	target := f.addCharacter("c2", "Thornling", entities.ElementGrass)
	skill := f.skill(t, rulebook.SkillEmber)

	// Accuracy hit, no burn infection
	f.roller.SetChecks(true, false)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	require.True(t, result.Hit)
	// Power 12 at 7/5
	assert.Equal(t, 16, result.Damage)
	assert.Contains(t, f.recorder.LogKeys(), "matchup.super")
}

func TestResolveSkill_ImmunityStopsTheHit(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	target := f.addCharacter("c2", "Wisp", entities.ElementGhost)
	skill := f.skill(t, rulebook.SkillTackle)

	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.True(t, result.Started)
	assert.False(t, result.Hit)
	assert.True(t, result.Matchup.Immune)
	assert.Equal(t, 100, target.HP)
	assert.Contains(t, f.recorder.LogKeys(), "matchup.immune")
}

func TestResolveSkill_NormalizerForcesNeutral(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Leveler", entities.ElementNormal)
	user.AbilityID = rulebook.AbilityNormalizer
	target := f.addCharacter("c2", "Wisp", entities.ElementGhost)
	skill := f.skill(t, rulebook.SkillTackle)

	f.roller.SetChecks(true)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.True(t, result.Hit)
	assert.False(t, result.Matchup.Immune)
	assert.Equal(t, matchup.ScoreNeutral, result.Matchup.Score)
}

func TestResolveSkill_SleepGateSkipsTheAction(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Napper", entities.ElementNormal)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillTackle)

	require.NoError(t, f.statuses.AddStatus(f.ctx(), user, rulebook.StatusSleep, 0, 0))
	f.recorder.Logs = nil

	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.False(t, result.Started)
	assert.Equal(t, 100, target.HP)
	assert.Equal(t, 30, skill.PP)
	assert.Contains(t, f.recorder.LogKeys(), "status.sleep.asleep")
}

func TestResolveSkill_MissConsumesPPButNotHP(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillTackle)

	f.roller.SetChecks(false)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.True(t, result.Started)
	assert.False(t, result.Hit)
	assert.Equal(t, 100, target.HP)
	assert.Equal(t, 29, skill.PP)
	assert.Contains(t, f.recorder.LogKeys(), "action.missed")
}

func TestResolveSkill_UnmissableSkipsAccuracyRoll(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillSwiftStar)

	// No queued rolls: an accuracy check would fail the mock
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.True(t, result.Hit)
	assert.Equal(t, 91, target.HP)
}

func TestResolveSkill_VoltAbsorbNegatesAndHeals(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Sparkfin", entities.ElementElectric)
	target := f.addCharacter("c2", "Deeplight", entities.ElementWater)
	target.AbilityID = rulebook.AbilityVoltAbsorb
	target.HP = 60

	// An electric skill instance built inline; the stock catalogue's
	// skills are all other elements
	skill := &entities.Skill{
		ID: "jolt-inst", DefID: rulebook.SkillTackle,
		Element: entities.ElementElectric,
		Power:   10, HitNum: 1, HitDen: 1, PP: 10,
	}

	// The absorb cancels the hit before any accuracy roll happens
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	assert.True(t, result.Started)
	assert.False(t, result.Hit)
	assert.Equal(t, 85, target.HP)
	assert.Contains(t, f.recorder.LogKeys(), "ability.volt_absorb.drank")
	assert.Empty(t, f.roller.CheckCalls())
}

func TestResolveSkill_InfectionAppliesStatusOnHit(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Thornjab", entities.ElementGrass)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillToxicJab)

	// Accuracy hit, then the 3/10 infection roll succeeds
	f.roller.SetChecks(true, true)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	require.True(t, result.Hit)
	assert.NotNil(t, target.StatusByDefID(rulebook.StatusPoison))
}

func TestResolveSkill_RainDampensFire(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Emberling", entities.ElementFire)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillEmber)

	rain := entities.NewMapStatus("rain-inst", rulebook.MapStatusRain)
	f.floor.AttachMapStatus(rain)

	// Accuracy hit, no burn infection
	f.roller.SetChecks(true, false)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	require.True(t, result.Hit)
	// Power 12, neutral matchup, halved by rain
	assert.Equal(t, 6, result.Damage)
}

func TestResolveSkill_ScopeLensScalesTheAccuracyRoll(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillTackle)

	f.roller.SetChecks(true)
	_, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	user.HeldItem = entities.NewItem("lens-1", rulebook.ItemScopeLens)
	f.roller.SetChecks(true)
	_, err = f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	calls := f.roller.CheckCalls()
	require.Len(t, calls, 2)
	// 19/20 through the flat stage curve
	assert.Equal(t, dice.CheckCall{Num: 57, Den: 60}, calls[0])
	// The lens folds its 6/5 into the fraction before the roll
	assert.Equal(t, dice.CheckCall{Num: 342, Den: 300}, calls[1])
}

func TestResolveSkill_UserItemBoostsDamage(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	user.HeldItem = entities.NewItem("band-1", rulebook.ItemPowerBand)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillTackle)

	f.roller.SetChecks(true)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	require.True(t, result.Hit)
	assert.Equal(t, 11, result.Damage)
	assert.Equal(t, 89, target.HP)
}

// countingHandler tallies how many times it ran
type countingHandler struct {
	calls *int
}

func (h *countingHandler) Apply(_ *hooks.Context, _ hooks.Binding) { *h.calls++ }
func (h *countingHandler) CloneHandler() hooks.Handler             { return h }

func TestResolveSkill_MapStatusAfterHitHandlersRunOnce(t *testing.T) {
	f := newFixture(t)
	user := f.addCharacter("c1", "Bruiser", entities.ElementNormal)
	target := f.addCharacter("c2", "Puffball", entities.ElementNormal)
	skill := f.skill(t, rulebook.SkillTackle)

	calls := 0
	f.registry.AddMapStatus(&rulebook.MapStatusDef{
		ID:   "echo_field",
		Name: "Echo Field",
		Hooks: rulebook.NewHookSet().
			Add(hooks.AfterHittings, hooks.PriorityReport, &countingHandler{calls: &calls}),
	})
	f.floor.AttachMapStatus(entities.NewMapStatus("echo-inst", "echo_field"))

	f.roller.SetChecks(true)
	result, err := f.svc.ResolveSkill(f.ctx(), user, target, skill)
	require.NoError(t, err)

	require.True(t, result.Hit)
	assert.Equal(t, 1, calls)
}

func TestCheckTraverse(t *testing.T) {
	f := newFixture(t)
	c := f.addCharacter("c1", "Waveskimmer", entities.ElementWater)

	open, err := f.svc.CheckTraverse(f.ctx(), c, entities.TerrainGround)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = f.svc.CheckTraverse(f.ctx(), c, entities.TerrainWater)
	require.NoError(t, err)
	assert.False(t, open)

	c.HeldItem = entities.NewItem("feather-1", rulebook.ItemDriftFeather)
	open, err = f.svc.CheckTraverse(f.ctx(), c, entities.TerrainWater)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = f.svc.CheckTraverse(f.ctx(), c, entities.TerrainWall)
	require.NoError(t, err)
	assert.False(t, open)
}
