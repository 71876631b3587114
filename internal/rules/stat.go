package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/entities"
)

// BlockStatDrop cancels any stage decrease on its carrier and announces
// the block. Registered on OnStatStageChanges at gate priority.
type BlockStatDrop struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *BlockStatDrop) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if ctx.StackDelta >= 0 {
		return
	}
	ctx.Say(h.MessageKey, binding.Character.Name)
	ctx.Cancel()
}

// CloneHandler implements hooks.Handler
func (h *BlockStatDrop) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// InvertStatChange flips the sign of the pending stage delta, turning
// drops into boosts and boosts into drops
type InvertStatChange struct{}

// Apply implements hooks.Handler
func (h *InvertStatChange) Apply(ctx *hooks.Context, _ hooks.Binding) {
	ctx.StackDelta = -ctx.StackDelta
}

// CloneHandler implements hooks.Handler
func (h *InvertStatChange) CloneHandler() hooks.Handler {
	return &InvertStatChange{}
}

// AmplifyStatChange multiplies the pending stage delta
type AmplifyStatChange struct {
	Factor int
}

// Apply implements hooks.Handler
func (h *AmplifyStatChange) Apply(ctx *hooks.Context, _ hooks.Binding) {
	ctx.StackDelta *= h.Factor
}

// CloneHandler implements hooks.Handler
func (h *AmplifyStatChange) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// BoostStatOnHit raises one of the carrier's stats after it lands a hit
// (a charging blade, a momentum ability). Registered on AfterHittings.
type BoostStatOnHit struct {
	Stat  entities.Stat
	Delta int
}

// Apply implements hooks.Handler
func (h *BoostStatOnHit) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if ctx.Env == nil || ctx.Env.Statuses == nil {
		return
	}
	// Nested invocation; ignore a blocked boost, the hit itself stands.
	_ = ctx.Env.Statuses.BoostStat(ctx, binding.Character, h.Stat, h.Delta)
}

// CloneHandler implements hooks.Handler
func (h *BoostStatOnHit) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
