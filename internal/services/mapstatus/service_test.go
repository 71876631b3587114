package mapstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
	"github.com/mossfell/delve-rules/internal/presenter"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/uuid"
)

type fixture struct {
	svc      Service
	floor    *entities.Floor
	recorder *presenter.Recorder
	env      *hooks.Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	registry := rulebook.DefaultRegistry()
	floor := entities.NewFloor()
	recorder := presenter.NewRecorder()

	svc := NewService(&ServiceConfig{
		Registry: registry,
		IDs:      uuid.NewGoogleUUIDGenerator(),
		Floor:    floor,
	})
	env := &hooks.Env{
		Presenter:   recorder,
		Entities:    floor,
		MapStatuses: svc,
		Defs:        registry,
	}
	return &fixture{svc: svc, floor: floor, recorder: recorder, env: env}
}

func (f *fixture) ctx() *hooks.Context {
	return hooks.NewContext(f.env)
}

func TestAddMapStatus_AnnouncesAndTracksCountdown(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddMapStatus(f.ctx(), rulebook.MapStatusSandstorm, 0))

	active := f.floor.MapStatusByDefID(rulebook.MapStatusSandstorm)
	require.NotNil(t, active)
	countdown, ok := state.Get[*entities.CountdownState](active.States)
	require.True(t, ok)
	assert.Equal(t, 8, countdown.Remaining)
	assert.Contains(t, f.recorder.LogKeys(), "weather.sandstorm.rose")
	assert.Contains(t, f.recorder.Sounds, "wind_howl")
}

func TestAddMapStatus_DuplicateOnlyExtends(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddMapStatus(f.ctx(), rulebook.MapStatusRain, 10))
	require.NoError(t, f.svc.AddMapStatus(f.ctx(), rulebook.MapStatusRain, 3))

	require.Len(t, f.floor.MapStatuses, 1)
	countdown, ok := state.Get[*entities.CountdownState](f.floor.MapStatuses[0].States)
	require.True(t, ok)
	assert.Equal(t, 10, countdown.Remaining)

	require.NoError(t, f.svc.AddMapStatus(f.ctx(), rulebook.MapStatusRain, 12))
	assert.Equal(t, 12, countdown.Remaining)
}

func TestAddMapStatus_UnknownDefinitionErrors(t *testing.T) {
	f := newFixture(t)

	err := f.svc.AddMapStatus(f.ctx(), "no_such_weather", 0)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestTickTurn_ChipsNonExemptCharacters(t *testing.T) {
	f := newFixture(t)

	rocky := entities.NewCharacter("c1", "Boulderhide")
	rocky.Elements = []entities.Element{entities.ElementRock}
	rocky.MaxHP, rocky.HP = 80, 80

	soft := entities.NewCharacter("c2", "Puffball")
	soft.Elements = []entities.Element{entities.ElementNormal}
	soft.MaxHP, soft.HP = 80, 80

	f.floor.Characters = append(f.floor.Characters, rocky, soft)

	require.NoError(t, f.svc.AddMapStatus(f.ctx(), rulebook.MapStatusSandstorm, 0))
	require.NoError(t, f.svc.TickTurn(f.ctx()))

	assert.Equal(t, 80, rocky.HP)
	assert.Equal(t, 75, soft.HP)
	assert.Contains(t, f.recorder.LogKeys(), "weather.sandstorm.buffeted")
}

func TestTickTurn_ExpiryRemovesAndAnnounces(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddMapStatus(f.ctx(), rulebook.MapStatusRain, 1))
	require.NoError(t, f.svc.TickTurn(f.ctx()))

	assert.Empty(t, f.floor.MapStatuses)
	assert.Contains(t, f.recorder.LogKeys(), "weather.rain.stopped")
}

func TestRemoveMapStatus_UnknownIDErrors(t *testing.T) {
	f := newFixture(t)

	err := f.svc.RemoveMapStatus(f.ctx(), "missing-id")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
