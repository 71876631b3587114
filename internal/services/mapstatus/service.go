// Package mapstatus manages floor-wide statuses: weather and other
// conditions that belong to the floor rather than to any character.
package mapstatus

import (
	"log"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/uuid"
)

// Service is the floor-wide status lifecycle, a superset of
// hooks.MapStatusOps
type Service interface {
	hooks.MapStatusOps

	// TickTurn runs every active map status's end-of-map-turn hooks over
	// each character on the floor, then advances countdowns
	TickTurn(ctx *hooks.Context) error
}

type service struct {
	registry *rulebook.Registry
	ids      uuid.Generator
	floor    *entities.Floor
}

// ServiceConfig holds configuration for the map status service
type ServiceConfig struct {
	Registry *rulebook.Registry
	IDs      uuid.Generator
	Floor    *entities.Floor
}

// NewService creates a map status service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.IDs == nil {
		panic("id generator is required")
	}
	if cfg.Floor == nil {
		panic("floor is required")
	}
	return &service{
		registry: cfg.Registry,
		ids:      cfg.IDs,
		floor:    cfg.Floor,
	}
}

// AddMapStatus implements hooks.MapStatusOps. A duplicate refreshes the
// active instance's countdown, only ever extending it.
func (s *service) AddMapStatus(ctx *hooks.Context, defID string, countdown int) error {
	def, err := s.registry.MapStatus(defID)
	if err != nil {
		return errors.Wrap(err, "add map status")
	}
	duration := countdown
	if duration <= 0 {
		duration = def.BaseCountdown
	}

	if existing := s.floor.MapStatusByDefID(defID); existing != nil {
		current, ok := state.Get[*entities.CountdownState](existing.States)
		if ok && duration > current.Remaining {
			current.Remaining = duration
			current.Original = duration
			log.Printf("[MAPSTATUS] %s refreshed to %d turns", defID, duration)
		}
		return nil
	}

	instance := entities.NewMapStatus(s.ids.New(), defID)
	if duration > 0 {
		instance.States.Set(&entities.CountdownState{Remaining: duration, Original: duration})
	}
	s.floor.AttachMapStatus(instance)
	log.Printf("[MAPSTATUS] %s started", defID)

	inv := ctx.Child()
	hooks.Run(inv, hooks.OnMapStatusAdds, hooks.Gather(hooks.Contribution{
		List:  s.registry.HookList(defID, hooks.OnMapStatusAdds),
		Owner: instance,
	}))
	return nil
}

// RemoveMapStatus implements hooks.MapStatusOps
func (s *service) RemoveMapStatus(ctx *hooks.Context, id string) error {
	var target *entities.MapStatus
	for _, m := range s.floor.MapStatuses {
		if m.ID == id {
			target = m
			break
		}
	}
	if target == nil {
		return errors.NotFoundf("map status %s not active", id)
	}

	inv := ctx.Child()
	hooks.Run(inv, hooks.OnMapStatusRemoves, hooks.Gather(hooks.Contribution{
		List:  s.registry.HookList(target.DefID, hooks.OnMapStatusRemoves),
		Owner: target,
	}))

	s.floor.DetachMapStatus(id)
	log.Printf("[MAPSTATUS] %s ended", target.DefID)
	return nil
}

// TickTurn implements Service
func (s *service) TickTurn(ctx *hooks.Context) error {
	// Snapshot: expiry removals mutate the floor's slice
	active := append([]*entities.MapStatus(nil), s.floor.MapStatuses...)
	for _, mapStatus := range active {
		list := s.registry.HookList(mapStatus.DefID, hooks.OnMapTurnEnds)
		if list.Len() > 0 {
			for _, c := range s.floor.Characters {
				inv := ctx.Child()
				inv.Target = c
				hooks.Run(inv, hooks.OnMapTurnEnds, hooks.Gather(hooks.Contribution{
					List:      list,
					Owner:     mapStatus,
					Character: c,
				}))
			}
		}

		countdown, ok := state.Get[*entities.CountdownState](mapStatus.States)
		if !ok {
			continue
		}
		countdown.Remaining--
		if countdown.Remaining > 0 {
			continue
		}
		if err := s.RemoveMapStatus(ctx, mapStatus.ID); err != nil {
			return err
		}
	}
	return nil
}
