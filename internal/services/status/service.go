// Package status implements the status lifecycle state machine: applying,
// stacking, refreshing, curing, ticking and removing status conditions,
// with the surrounding hook invocations that let definitions intervene.
package status

import (
	"log"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/rules"
	"github.com/mossfell/delve-rules/internal/uuid"
)

// Service is the status lifecycle. It is a superset of hooks.StatusOps so
// handlers can trigger nested applications through the context's
// environment.
type Service interface {
	hooks.StatusOps

	// SelfCure shortens a status countdown by num/den, never below
	// min(2, original)
	SelfCure(ctx *hooks.Context, target *entities.Character, statusID string, num, den int) error

	// TickTurn runs a character's end-of-turn hooks and advances every
	// countdown, removing and resolving expired statuses
	TickTurn(ctx *hooks.Context, target *entities.Character) error
}

type service struct {
	registry *rulebook.Registry
	ids      uuid.Generator
	floor    *entities.Floor
}

// ServiceConfig holds configuration for the status service
type ServiceConfig struct {
	Registry *rulebook.Registry
	IDs      uuid.Generator
	Floor    *entities.Floor
}

// NewService creates a status lifecycle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.IDs == nil {
		panic("id generator is required")
	}
	return &service{
		registry: cfg.Registry,
		ids:      cfg.IDs,
		floor:    cfg.Floor,
	}
}

func (s *service) gather(c *entities.Character, hook hooks.Hook) []hooks.BoundEntry {
	return rulebook.GatherFor(s.registry, s.floor, c, hook)
}

// AddStatus implements hooks.StatusOps. The whole application runs on a
// child context so a handler calling it mid-chain never has the outer
// invocation cancelled under it.
func (s *service) AddStatus(ctx *hooks.Context, target *entities.Character, defID string, stackDelta, countdown int) error {
	def, err := s.registry.Status(defID)
	if err != nil {
		return errors.Wrapf(err, "add status to %s", target.ID)
	}

	inv := ctx.Child()
	inv.Target = target
	inv.StackDelta = stackDelta
	inv.States.Set(&rules.PendingStatusState{DefID: defID, Bad: def.Bad})

	hooks.Run(inv, hooks.BeforeStatusAdds, s.gather(target, hooks.BeforeStatusAdds))
	if inv.IsCancelled() {
		log.Printf("[STATUS] %s blocked on %s", defID, target.ID)
		return nil
	}

	if existing := target.StatusByDefID(defID); existing != nil {
		return s.reapply(inv, def, target, existing, countdown)
	}

	instance := entities.NewStatus(s.ids.New(), defID)
	if def.Stacks() {
		instance.States.Set(&entities.StackState{Count: clamp(inv.StackDelta, def.MinStack, def.MaxStack)})
	}
	if duration := pickCountdown(countdown, def.BaseCountdown); duration > 0 {
		instance.States.Set(&entities.CountdownState{Remaining: duration, Original: duration})
	}
	if def.Linked && inv.User != nil {
		instance.TargetID = inv.User.ID
	}
	target.AttachStatus(instance)
	log.Printf("[STATUS] applied %s to %s", defID, target.ID)

	hooks.Run(inv, hooks.OnStatusAdds, s.gather(target, hooks.OnStatusAdds))
	return nil
}

// reapply handles a duplicate application: stacking statuses adjust their
// stack, non-stacking ones refresh only when an override handler allowed
// it during BeforeStatusAdds.
func (s *service) reapply(inv *hooks.Context, def *rulebook.StatusDef, target *entities.Character, existing *entities.Status, countdown int) error {
	if def.Stacks() {
		stack := state.GetOrDefault[entities.StackState](existing.States)
		next := clamp(stack.Count+inv.StackDelta, def.MinStack, def.MaxStack)
		realized := next - stack.Count
		if realized == 0 {
			switch {
			case inv.StackDelta > 0 && stack.Count == def.MaxStack:
				inv.Say("status.stack.at_maximum", target.Name)
			case inv.StackDelta < 0 && stack.Count == def.MinStack:
				inv.Say("status.stack.at_minimum", target.Name)
			}
			return nil
		}
		stack.Count = next
		existing.States.Set(stack)
		inv.StackDelta = realized
		s.refreshCountdown(existing, def, countdown)
		hooks.Run(inv, hooks.OnRefreshes, s.gather(target, hooks.OnRefreshes))
		log.Printf("[STATUS] %s on %s stacked to %d", def.ID, target.ID, next)
		return nil
	}

	if !state.Has[*rules.SyncOverrideState](inv.States) {
		inv.Say("status.already_afflicted", target.Name)
		return nil
	}
	s.refreshCountdown(existing, def, countdown)
	hooks.Run(inv, hooks.OnRefreshes, s.gather(target, hooks.OnRefreshes))
	log.Printf("[STATUS] %s on %s refreshed", def.ID, target.ID)
	return nil
}

// refreshCountdown only ever extends a running countdown
func (s *service) refreshCountdown(existing *entities.Status, def *rulebook.StatusDef, countdown int) {
	duration := pickCountdown(countdown, def.BaseCountdown)
	if duration <= 0 {
		return
	}
	current, ok := state.Get[*entities.CountdownState](existing.States)
	if !ok {
		existing.States.Set(&entities.CountdownState{Remaining: duration, Original: duration})
		return
	}
	if duration > current.Remaining {
		current.Remaining = duration
		current.Original = duration
	}
}

// RemoveStatus implements hooks.StatusOps
func (s *service) RemoveStatus(ctx *hooks.Context, target *entities.Character, statusID string) error {
	status := findStatus(target, statusID)
	if status == nil {
		return errors.NotFoundf("status %s not on %s", statusID, target.ID)
	}

	inv := ctx.Child()
	inv.Target = target
	hooks.Run(inv, hooks.OnStatusRemoves, s.gather(target, hooks.OnStatusRemoves))

	target.DetachStatus(status.ID)
	s.unlink(target, status)
	log.Printf("[STATUS] removed %s from %s", status.DefID, target.ID)
	return nil
}

// unlink clears the back-reference a linked partner holds on this carrier
func (s *service) unlink(target *entities.Character, removed *entities.Status) {
	if removed.TargetID == "" || s.floor == nil {
		return
	}
	partner, ok := s.floor.Character(removed.TargetID)
	if !ok {
		return
	}
	for _, other := range partner.Statuses {
		if other.DefID == removed.DefID && other.TargetID == target.ID {
			other.TargetID = ""
		}
	}
}

// BoostStat implements hooks.StatusOps. The stage change runs through
// OnStatStageChanges so gates can block it and modifiers can reshape the
// delta; what lands is clamped into the stage band, and a delta that
// clamps to nothing at a boundary is reported rather than silently lost.
func (s *service) BoostStat(ctx *hooks.Context, target *entities.Character, stat entities.Stat, delta int) error {
	if delta == 0 {
		return nil
	}

	inv := ctx.Child()
	inv.Target = target
	inv.StackDelta = delta

	hooks.Run(inv, hooks.OnStatStageChanges, s.gather(target, hooks.OnStatStageChanges))
	if inv.IsCancelled() {
		return nil
	}

	current := target.Stage(stat)
	next := clamp(current+inv.StackDelta, entities.StageMin, entities.StageMax)
	realized := next - current
	if realized == 0 {
		switch {
		case inv.StackDelta > 0 && current == entities.StageMax:
			inv.Say("stat.at_maximum", target.Name, string(stat))
		case inv.StackDelta < 0 && current == entities.StageMin:
			inv.Say("stat.at_minimum", target.Name, string(stat))
		}
		return nil
	}

	// Record what actually landed, the way reapply does for stacks
	inv.StackDelta = realized
	target.Stages[stat] = next
	if inv.StackDelta > 0 {
		inv.Say("stat.rose", target.Name, string(stat), inv.StackDelta)
	} else {
		inv.Say("stat.fell", target.Name, string(stat), -inv.StackDelta)
	}
	log.Printf("[STATUS] %s %s stage %d -> %d", target.ID, stat, current, next)
	return nil
}

// SelfCure implements Service
func (s *service) SelfCure(ctx *hooks.Context, target *entities.Character, statusID string, num, den int) error {
	if den <= 0 {
		return errors.InvalidArgumentf("cure denominator must be positive, got %d", den)
	}
	status := findStatus(target, statusID)
	if status == nil {
		return errors.NotFoundf("status %s not on %s", statusID, target.ID)
	}
	countdown, ok := state.Get[*entities.CountdownState](status.States)
	if !ok {
		return nil
	}

	cured := countdown.Remaining * num / den
	floor := min(2, countdown.Original)
	if cured < floor {
		cured = floor
	}
	if cured < countdown.Remaining {
		countdown.Remaining = cured
		log.Printf("[STATUS] %s on %s cured to %d turns", status.DefID, target.ID, cured)
	}
	return nil
}

// TickTurn implements Service
func (s *service) TickTurn(ctx *hooks.Context, target *entities.Character) error {
	inv := ctx.Child()
	inv.Target = target
	hooks.Run(inv, hooks.OnTurnEnds, s.gather(target, hooks.OnTurnEnds))

	// Snapshot: expiry removals mutate the status slice
	active := append([]*entities.Status(nil), target.Statuses...)
	for _, status := range active {
		countdown, ok := state.Get[*entities.CountdownState](status.States)
		if !ok {
			continue
		}
		countdown.Remaining--
		if countdown.Remaining > 0 {
			continue
		}

		def, err := s.registry.Status(status.DefID)
		if err != nil {
			return errors.Wrapf(err, "tick %s", target.ID)
		}

		// Removal resolves before any fatal expiry effect, and the
		// fatal effect lands at most once
		if err := s.RemoveStatus(ctx, target, status.ID); err != nil {
			return err
		}
		if def.FatalOnExpiry && !target.IsFainted() {
			target.HP = 0
			inv.Say("status.expiry_fatal", target.Name)
			log.Printf("[STATUS] %s expiry downed %s", def.ID, target.ID)
		}
	}
	return nil
}

func findStatus(target *entities.Character, statusID string) *entities.Status {
	for _, s := range target.Statuses {
		if s.ID == statusID {
			return s
		}
	}
	return nil
}

func pickCountdown(requested, base int) int {
	if requested > 0 {
		return requested
	}
	return base
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
