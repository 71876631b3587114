package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/matchup"
)

// Elemental matchup adjusters. All of them read the seeded pipeline state
// from the context and do nothing when no matchup is in flight, so a
// definition can safely register them on either element-effect hook.

func pipelineState(ctx *hooks.Context) (*matchup.PipelineState, bool) {
	return state.Get[*matchup.PipelineState](ctx.States)
}

// NormalizeMatchup forces neutral effectiveness for the whole attack
type NormalizeMatchup struct{}

// Apply implements hooks.Handler
func (h *NormalizeMatchup) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if p, ok := pipelineState(ctx); ok {
		p.ForceNeutral()
	}
}

// CloneHandler implements hooks.Handler
func (h *NormalizeMatchup) CloneHandler() hooks.Handler {
	return &NormalizeMatchup{}
}

// InvertMatchup swaps resistances and weaknesses
type InvertMatchup struct{}

// Apply implements hooks.Handler
func (h *InvertMatchup) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if p, ok := pipelineState(ctx); ok {
		p.Invert()
	}
}

// CloneHandler implements hooks.Handler
func (h *InvertMatchup) CloneHandler() hooks.Handler {
	return &InvertMatchup{}
}

// PierceImmunity converts an immune matchup into a resisted one
type PierceImmunity struct{}

// Apply implements hooks.Handler
func (h *PierceImmunity) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if p, ok := pipelineState(ctx); ok {
		p.PierceImmunity()
	}
}

// CloneHandler implements hooks.Handler
func (h *PierceImmunity) CloneHandler() hooks.Handler {
	return &PierceImmunity{}
}

// RemoveResistance lifts resisted matchups back to neutral
type RemoveResistance struct{}

// Apply implements hooks.Handler
func (h *RemoveResistance) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if p, ok := pipelineState(ctx); ok {
		p.RemoveResistance()
	}
}

// CloneHandler implements hooks.Handler
func (h *RemoveResistance) CloneHandler() hooks.Handler {
	return &RemoveResistance{}
}

// ForceSuperVs forces super effectiveness against one defending element
type ForceSuperVs struct {
	Defending entities.Element
}

// Apply implements hooks.Handler
func (h *ForceSuperVs) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if p, ok := pipelineState(ctx); ok {
		p.ForceSuperVs(h.Defending)
	}
}

// CloneHandler implements hooks.Handler
func (h *ForceSuperVs) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// AddVirtualElement blends an extra attacking element into the matchup
type AddVirtualElement struct {
	Virtual entities.Element
}

// Apply implements hooks.Handler
func (h *AddVirtualElement) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if p, ok := pipelineState(ctx); ok {
		p.Blend(h.Virtual)
	}
}

// CloneHandler implements hooks.Handler
func (h *AddVirtualElement) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
