package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/dice"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
	"github.com/mossfell/delve-rules/internal/presenter"
	mockpresenter "github.com/mossfell/delve-rules/internal/presenter/mocks"
	"github.com/mossfell/delve-rules/internal/rulebook"
	mockuuid "github.com/mossfell/delve-rules/internal/uuid/mocks"
)

// seqGenerator hands out predictable instance IDs
type seqGenerator struct {
	n int
}

func (g *seqGenerator) New() string {
	g.n++
	return string(rune('a'+g.n-1)) + "-id"
}

type fixture struct {
	svc      Service
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

	svc := NewService(&ServiceConfig{
		Registry: registry,
		IDs:      &seqGenerator{},
		Floor:    floor,
	})
	env := &hooks.Env{
		Presenter: recorder,
		Roller:    roller,
		Entities:  floor,
		Statuses:  svc,
		Defs:      registry,
	}
	return &fixture{svc: svc, registry: registry, floor: floor, recorder: recorder, roller: roller, env: env}
}

func (f *fixture) addCharacter(id, name string) *entities.Character {
	c := entities.NewCharacter(id, name)
	c.MaxHP = 100
	c.HP = 100
	f.floor.Characters = append(f.floor.Characters, c)
	return c
}

func (f *fixture) ctx() *hooks.Context {
	return hooks.NewContext(f.env)
}

func TestAddStatus_AppliesAndAnnounces(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusSleep, 0, 0))

	status := target.StatusByDefID(rulebook.StatusSleep)
	require.NotNil(t, status)
	countdown, ok := state.Get[*entities.CountdownState](status.States)
	require.True(t, ok)
	assert.Equal(t, 4, countdown.Remaining)
	assert.Contains(t, f.recorder.LogKeys(), "status.sleep.applied")
}

func TestAddStatus_UnknownDefinitionErrors(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	err := f.svc.AddStatus(f.ctx(), target, "no_such_status", 0, 0)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAddStatus_WardCharmBlocksBadStatuses(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Wardling")
	target.HeldItem = entities.NewItem("i1", rulebook.ItemWardCharm)

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, 1, 0))

	assert.Nil(t, target.StatusByDefID(rulebook.StatusPoison))
	assert.Contains(t, f.recorder.LogKeys(), "item.ward_charm.warded")

	// Beneficial statuses pass the ward
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusRegen, 0, 0))
	assert.NotNil(t, target.StatusByDefID(rulebook.StatusRegen))
}

func TestAddStatus_DuplicateNonStackingIsBlocked(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusSleep, 0, 0))
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusSleep, 0, 0))

	assert.Len(t, target.Statuses, 1)
	assert.Contains(t, f.recorder.LogKeys(), "status.already_afflicted")
}

func TestAddStatus_StackingClampAndBoundaryMessage(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Fumebag")

	// Poison stacks in [1,3]
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, 1, 0))
	status := target.StatusByDefID(rulebook.StatusPoison)
	require.NotNil(t, status)

	// +5 clamps to the max of 3
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, 5, 0))
	stack, ok := state.Get[*entities.StackState](status.States)
	require.True(t, ok)
	assert.Equal(t, 3, stack.Count)

	// Another raise clamps to zero delta at the boundary and reports it
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, 2, 0))
	assert.Equal(t, 3, stack.Count)
	assert.Contains(t, f.recorder.LogKeys(), "status.stack.at_maximum")
	assert.Len(t, target.Statuses, 1)
}

func TestAddStatus_CountdownRefreshOnlyExtends(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Fumebag")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, 1, 10))
	status := target.StatusByDefID(rulebook.StatusPoison)
	countdown, ok := state.Get[*entities.CountdownState](status.States)
	require.True(t, ok)
	require.Equal(t, 10, countdown.Remaining)

	// A shorter reapplication never truncates the countdown
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, 1, 3))
	assert.Equal(t, 10, countdown.Remaining)

	// A longer one extends it
	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusPoison, -1, 14))
	assert.Equal(t, 14, countdown.Remaining)
}

func TestRemoveStatus_RunsRemovalHooks(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Emberling")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusBurn, 0, 0))
	status := target.StatusByDefID(rulebook.StatusBurn)
	require.NotNil(t, status)

	require.NoError(t, f.svc.RemoveStatus(f.ctx(), target, status.ID))
	assert.Empty(t, target.Statuses)
	assert.Contains(t, f.recorder.LogKeys(), "status.burn.healed")

	err := f.svc.RemoveStatus(f.ctx(), target, status.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRemoveStatus_UnlinksPartner(t *testing.T) {
	f := newFixture(t)
	caster := f.addCharacter("c1", "Chanter")
	victim := f.addCharacter("c2", "Marked")

	ctx := f.ctx().WithUser(caster)
	require.NoError(t, f.svc.AddStatus(ctx, victim, rulebook.StatusDoomCount, 0, 0))
	victimStatus := victim.StatusByDefID(rulebook.StatusDoomCount)
	require.NotNil(t, victimStatus)
	require.Equal(t, caster.ID, victimStatus.TargetID)

	// Mirror the link onto the caster's side, then remove the victim's end
	casterStatus := entities.NewStatus("mirror-id", rulebook.StatusDoomCount)
	casterStatus.TargetID = victim.ID
	caster.AttachStatus(casterStatus)

	require.NoError(t, f.svc.RemoveStatus(f.ctx(), victim, victimStatus.ID))
	assert.Empty(t, casterStatus.TargetID)
}

func TestTickTurn_CountdownExpiryRemovesStatus(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusSleep, 0, 2))

	require.NoError(t, f.svc.TickTurn(f.ctx(), target))
	assert.NotNil(t, target.StatusByDefID(rulebook.StatusSleep))

	require.NoError(t, f.svc.TickTurn(f.ctx(), target))
	assert.Nil(t, target.StatusByDefID(rulebook.StatusSleep))
	assert.Contains(t, f.recorder.LogKeys(), "status.sleep.woke")
}

func TestTickTurn_ResidualDamageRuns(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Emberling")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusBurn, 0, 0))
	require.NoError(t, f.svc.TickTurn(f.ctx(), target))

	// 1/12 of 100 max HP
	assert.Equal(t, 92, target.HP)
	assert.Contains(t, f.recorder.LogKeys(), "status.burn.damage")
}

func TestTickTurn_FatalExpiryRemovesBeforeDowning(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Marked")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusDoomCount, 0, 1))
	require.NoError(t, f.svc.TickTurn(f.ctx(), target))

	assert.Nil(t, target.StatusByDefID(rulebook.StatusDoomCount))
	assert.Zero(t, target.HP)
	assert.Contains(t, f.recorder.LogKeys(), "status.expiry_fatal")

	// The fatal effect never lands twice
	target.HP = 0
	require.NoError(t, f.svc.TickTurn(f.ctx(), target))
	keys := 0
	for _, k := range f.recorder.LogKeys() {
		if k == "status.expiry_fatal" {
			keys++
		}
	}
	assert.Equal(t, 1, keys)
}

func TestSelfCure_ClampsAtFloor(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusSleep, 0, 8))
	status := target.StatusByDefID(rulebook.StatusSleep)
	countdown, ok := state.Get[*entities.CountdownState](status.States)
	require.True(t, ok)

	// 8 * 1/4 = 2, exactly the floor of min(2, 8)
	require.NoError(t, f.svc.SelfCure(f.ctx(), target, status.ID, 1, 4))
	assert.Equal(t, 2, countdown.Remaining)

	// A harsher ratio cannot drop below the floor
	require.NoError(t, f.svc.SelfCure(f.ctx(), target, status.ID, 1, 8))
	assert.Equal(t, 2, countdown.Remaining)
}

func TestSelfCure_FloorIsOriginalWhenShorter(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	require.NoError(t, f.svc.AddStatus(f.ctx(), target, rulebook.StatusSleep, 0, 1))
	status := target.StatusByDefID(rulebook.StatusSleep)
	countdown, ok := state.Get[*entities.CountdownState](status.States)
	require.True(t, ok)

	// Original 1 means the floor is min(2, 1) = 1
	require.NoError(t, f.svc.SelfCure(f.ctx(), target, status.ID, 0, 2))
	assert.Equal(t, 1, countdown.Remaining)
}

func TestSelfCure_RejectsBadDenominator(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Napper")

	err := f.svc.SelfCure(f.ctx(), target, "any", 1, 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBoostStat_ClampsToStageBand(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Bulwark")

	require.NoError(t, f.svc.BoostStat(f.ctx(), target, entities.StatAttack, 4))
	assert.Equal(t, 4, target.Stage(entities.StatAttack))

	// +4 more clamps at +6
	require.NoError(t, f.svc.BoostStat(f.ctx(), target, entities.StatAttack, 4))
	assert.Equal(t, 6, target.Stage(entities.StatAttack))
	assert.Contains(t, f.recorder.LogKeys(), "stat.rose")

	// At the ceiling the clamped-to-zero delta is reported, not applied
	require.NoError(t, f.svc.BoostStat(f.ctx(), target, entities.StatAttack, 1))
	assert.Equal(t, 6, target.Stage(entities.StatAttack))
	assert.Contains(t, f.recorder.LogKeys(), "stat.at_maximum")
}

func TestBoostStat_StoneWallBlocksDrops(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Bulwark")
	target.AbilityID = rulebook.AbilityStoneWall

	require.NoError(t, f.svc.BoostStat(f.ctx(), target, entities.StatDefense, -2))
	assert.Zero(t, target.Stage(entities.StatDefense))
	assert.Contains(t, f.recorder.LogKeys(), "ability.stone_wall.held")

	// Raises pass the gate
	require.NoError(t, f.svc.BoostStat(f.ctx(), target, entities.StatDefense, 2))
	assert.Equal(t, 2, target.Stage(entities.StatDefense))
}

func TestNestedCancellationStaysLocal(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Wardling")
	target.HeldItem = entities.NewItem("i1", rulebook.ItemWardCharm)

	outer := f.ctx()
	require.NoError(t, f.svc.AddStatus(outer, target, rulebook.StatusPoison, 1, 0))

	// The ward cancelled the nested application, not the outer chain
	assert.False(t, outer.IsCancelled())
	assert.Nil(t, target.StatusByDefID(rulebook.StatusPoison))
}

func TestAddStatus_GeneratedMocksDriveTheApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := rulebook.DefaultRegistry()
	floor := entities.NewFloor()
	mockPresenter := mockpresenter.NewMockPresenter(ctrl)
	mockIDs := mockuuid.NewMockGenerator(ctrl)

	svc := NewService(&ServiceConfig{
		Registry: registry,
		IDs:      mockIDs,
		Floor:    floor,
	})
	env := &hooks.Env{
		Presenter: mockPresenter,
		Roller:    dice.NewMockRoller(),
		Entities:  floor,
		Statuses:  svc,
		Defs:      registry,
	}
	target := entities.NewCharacter("c1", "Emberling")
	target.MaxHP, target.HP = 100, 100
	floor.Characters = append(floor.Characters, target)

	mockIDs.EXPECT().New().Return("burn-1")
	mockPresenter.EXPECT().Log("status.burn.applied", "Emberling")
	mockPresenter.EXPECT().PlayAnimation("c1", "burn_flare")

	require.NoError(t, svc.AddStatus(hooks.NewContext(env), target, rulebook.StatusBurn, 0, 0))

	status := target.StatusByDefID(rulebook.StatusBurn)
	require.NotNil(t, status)
	assert.Equal(t, "burn-1", status.ID)
}

func TestBoostStat_ReportsRealizedDelta(t *testing.T) {
	f := newFixture(t)
	target := f.addCharacter("c1", "Bulwark")
	target.Stages[entities.StatAttack] = 5

	require.NoError(t, f.svc.BoostStat(f.ctx(), target, entities.StatAttack, 3))

	assert.Equal(t, 6, target.Stage(entities.StatAttack))
	require.Len(t, f.recorder.Logs, 1)
	assert.Equal(t, "stat.rose", f.recorder.Logs[0].Key)
	// The message carries the clamped delta that landed, not the request
	assert.Equal(t, []any{"Bulwark", "attack", 1}, f.recorder.Logs[0].Args)
}
