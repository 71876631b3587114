package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
)

// DamageScale multiplies the damage accumulator by Num/Den. Defensive
// screens register it on the target's BeforeHittings at adjust priority;
// power-boosting items register it on the user's side at baseline.
type DamageScale struct {
	Num int
	Den int
}

// Apply implements hooks.Handler
func (h *DamageScale) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if h.Den <= 0 {
		return
	}
	ctx.Damage = ctx.Damage * h.Num / h.Den
}

// CloneHandler implements hooks.Handler
func (h *DamageScale) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// ElementDamageScale multiplies damage only when the incoming skill
// carries the given element (an element-boosting charm, an insulating
// coat)
type ElementDamageScale struct {
	Element entities.Element
	Num     int
	Den     int
}

// Apply implements hooks.Handler
func (h *ElementDamageScale) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if h.Den <= 0 || ctx.Skill == nil || ctx.Skill.Element != h.Element {
		return
	}
	ctx.Damage = ctx.Damage * h.Num / h.Den
}

// CloneHandler implements hooks.Handler
func (h *ElementDamageScale) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// ElementAbsorb converts an incoming skill of the given element into
// healing for the carrier and cancels the hit. Registered on the target's
// BeforeHittings at gate priority.
type ElementAbsorb struct {
	Element    entities.Element
	HealNum    int
	HealDen    int
	MessageKey string
}

// Apply implements hooks.Handler
func (h *ElementAbsorb) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if ctx.Skill == nil || ctx.Skill.Element != h.Element {
		return
	}
	target := binding.Character
	if h.HealDen > 0 && target.HP < target.MaxHP {
		target.HP += target.MaxHP * h.HealNum / h.HealDen
		if target.HP > target.MaxHP {
			target.HP = target.MaxHP
		}
	}
	ctx.Say(h.MessageKey, target.Name)
	ctx.Cancel()
}

// CloneHandler implements hooks.Handler
func (h *ElementAbsorb) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// CritBlocker strips the critical annotation off an incoming hit.
// Registered on the target's BeforeHittings at gate priority so it runs
// before damage adjusters that read the annotation.
type CritBlocker struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *CritBlocker) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if !state.Has[*CritState](ctx.States) {
		return
	}
	state.Remove[*CritState](ctx.States)
	ctx.Say(h.MessageKey, binding.Character.Name)
}

// CloneHandler implements hooks.Handler
func (h *CritBlocker) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// MinimumDamage floors a non-cancelled hit's damage at 1 so connecting
// attacks always leave a mark. Registered at report priority after every
// adjuster has run.
type MinimumDamage struct{}

// Apply implements hooks.Handler
func (h *MinimumDamage) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if ctx.Damage < 1 {
		ctx.Damage = 1
	}
}

// CloneHandler implements hooks.Handler
func (h *MinimumDamage) CloneHandler() hooks.Handler {
	return &MinimumDamage{}
}
