package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
)

func stateGetCountdown(s *entities.Status) (*entities.CountdownState, bool) {
	return state.Get[*entities.CountdownState](s.States)
}

// StatusAppliedReporter announces a status landing on its carrier.
// Registered on OnStatusAdds at report priority so every earlier handler
// has had its say before the message goes out.
type StatusAppliedReporter struct {
	MessageKey string
	Animation  string
}

// Apply implements hooks.Handler
func (h *StatusAppliedReporter) Apply(ctx *hooks.Context, binding hooks.Binding) {
	ctx.Say(h.MessageKey, binding.Character.Name)
	if h.Animation != "" {
		ctx.Animate(binding.Character.ID, h.Animation)
	}
}

// CloneHandler implements hooks.Handler
func (h *StatusAppliedReporter) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// StatusRemovedReporter announces a status wearing off. Registered on
// OnStatusRemoves at report priority.
type StatusRemovedReporter struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *StatusRemovedReporter) Apply(ctx *hooks.Context, binding hooks.Binding) {
	ctx.Say(h.MessageKey, binding.Character.Name)
}

// CloneHandler implements hooks.Handler
func (h *StatusRemovedReporter) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// ResidualDamage chips the carrier for Num/Den of max HP each turn (burn,
// poison). Registered on OnTurnEnds. HP floors at zero; the turn loop
// decides what a zeroed carrier means.
type ResidualDamage struct {
	Num        int
	Den        int
	MessageKey string
	Animation  string
}

// Apply implements hooks.Handler
func (h *ResidualDamage) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if h.Den <= 0 {
		return
	}
	carrier := binding.Character
	if carrier.IsFainted() {
		return
	}
	damage := carrier.MaxHP * h.Num / h.Den
	if damage < 1 {
		damage = 1
	}
	carrier.HP -= damage
	if carrier.HP < 0 {
		carrier.HP = 0
	}
	if h.Animation != "" {
		ctx.Animate(carrier.ID, h.Animation)
	}
	ctx.Say(h.MessageKey, carrier.Name, damage)
}

// CloneHandler implements hooks.Handler
func (h *ResidualDamage) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// ResidualHeal restores Num/Den of max HP each turn (regeneration, a
// recovery band). Registered on OnTurnEnds.
type ResidualHeal struct {
	Num        int
	Den        int
	MessageKey string
}

// Apply implements hooks.Handler
func (h *ResidualHeal) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if h.Den <= 0 {
		return
	}
	carrier := binding.Character
	if carrier.IsFainted() || carrier.HP >= carrier.MaxHP {
		return
	}
	heal := carrier.MaxHP * h.Num / h.Den
	if heal < 1 {
		heal = 1
	}
	carrier.HP += heal
	if carrier.HP > carrier.MaxHP {
		carrier.HP = carrier.MaxHP
	}
	ctx.Say(h.MessageKey, carrier.Name, heal)
}

// CloneHandler implements hooks.Handler
func (h *ResidualHeal) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// ContactInfection gives a hit a Num/Den chance of inflicting a status on
// the other side of the exchange. A skill registers it on the user's
// AfterHittings to poison what it strikes; a defensive ability registers
// it on the target's AfterHittings to punish the striker.
type ContactInfection struct {
	StatusDefID string
	Num         int
	Den         int

	// AfflictUser aims the status at the hit's user instead of its target
	AfflictUser bool
}

// Apply implements hooks.Handler
func (h *ContactInfection) Apply(ctx *hooks.Context, _ hooks.Binding) {
	env := ctx.Env
	if env == nil || env.Roller == nil || env.Statuses == nil {
		return
	}
	triggered, err := env.Roller.Check(h.Num, h.Den)
	if err != nil || !triggered {
		return
	}
	victim := ctx.Target
	if h.AfflictUser {
		victim = ctx.User
	}
	if victim == nil || victim.IsFainted() {
		return
	}
	// Nested invocation; a blocked application leaves the hit untouched.
	_ = env.Statuses.AddStatus(ctx, victim, h.StatusDefID, 0, 0)
}

// CloneHandler implements hooks.Handler
func (h *ContactInfection) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// CureOnElementHit removes the owning status when the carrier is struck
// by a skill of the given element (fire thawing a freeze). Registered on
// the target's AfterHittings.
type CureOnElementHit struct {
	Element    entities.Element
	MessageKey string
}

// Apply implements hooks.Handler
func (h *CureOnElementHit) Apply(ctx *hooks.Context, binding hooks.Binding) {
	env := ctx.Env
	if env == nil || env.Statuses == nil {
		return
	}
	if ctx.Skill == nil || ctx.Skill.Element != h.Element {
		return
	}
	status, ok := binding.Owner.(*entities.Status)
	if !ok {
		return
	}
	ctx.Say(h.MessageKey, binding.Character.Name)
	_ = env.Statuses.RemoveStatus(ctx, binding.Character, status.ID)
}

// CloneHandler implements hooks.Handler
func (h *CureOnElementHit) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// PerishReporter announces the remaining countdown each turn. Registered
// on OnTurnEnds by doom-countdown statuses; the lifecycle service owns
// the decrement and the fatal expiry.
type PerishReporter struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *PerishReporter) Apply(ctx *hooks.Context, binding hooks.Binding) {
	status, ok := binding.Owner.(*entities.Status)
	if !ok {
		return
	}
	countdown, ok := stateGetCountdown(status)
	if !ok {
		return
	}
	ctx.Say(h.MessageKey, binding.Character.Name, countdown.Remaining)
}

// CloneHandler implements hooks.Handler
func (h *PerishReporter) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
