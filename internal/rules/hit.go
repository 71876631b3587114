package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
)

// AccuracyScale multiplies the hit chance accumulator by Num/Den
// (an accuracy-raising scope item, an evasive status on the target)
type AccuracyScale struct {
	Num int
	Den int
}

// Apply implements hooks.Handler
func (h *AccuracyScale) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if h.Den <= 0 {
		return
	}
	ctx.HitNum *= h.Num
	ctx.HitDen *= h.Den
}

// CloneHandler implements hooks.Handler
func (h *AccuracyScale) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// SureHit forces the hit chance to certainty
type SureHit struct{}

// Apply implements hooks.Handler
func (h *SureHit) Apply(ctx *hooks.Context, _ hooks.Binding) {
	ctx.HitNum = 1
	ctx.HitDen = 1
}

// CloneHandler implements hooks.Handler
func (h *SureHit) CloneHandler() hooks.Handler {
	return &SureHit{}
}

// ApplyCompensation resolves a FractionState annotation against the
// damage accumulator under the sentinel convention: positive numerator
// scales damage and announces it, zero numerator zeroes the damage with a
// message, negative numerator zeroes it silently. Unmissable skills
// ignore compensation entirely.
type ApplyCompensation struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *ApplyCompensation) Apply(ctx *hooks.Context, binding hooks.Binding) {
	fraction, ok := state.Get[*FractionState](ctx.States)
	if !ok {
		return
	}
	if ctx.Skill != nil && ctx.Skill.Unmissable {
		return
	}
	switch {
	case fraction.Num > 0:
		ctx.Damage = ctx.Damage * fraction.Num / fraction.Den
		ctx.Say(h.MessageKey, binding.Character.Name)
	case fraction.Num == 0:
		ctx.Damage = 0
		ctx.Say(h.MessageKey, binding.Character.Name)
	default:
		ctx.Damage = 0
	}
}

// CloneHandler implements hooks.Handler
func (h *ApplyCompensation) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
