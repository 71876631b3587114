package matchup

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
)

// PipelineState is the context annotation the matchup layer works on.
// Seed writes the base lookups into it, element-effect handlers mutate it
// in hook order, Finalize folds it into a Result.
type PipelineState struct {
	Attacking entities.Element   `json:"attacking"`
	Defending []entities.Element `json:"defending"`
	Tiers     []Tier             `json:"tiers"`
}

// Kind implements state.State
func (p *PipelineState) Kind() string { return "context.matchup" }

// CloneState implements state.State
func (p *PipelineState) CloneState() state.State {
	clone := &PipelineState{Attacking: p.Attacking}
	clone.Defending = append([]entities.Element(nil), p.Defending...)
	clone.Tiers = append([]Tier(nil), p.Tiers...)
	return clone
}

// ForceNeutral sets every tier to normal effectiveness
func (p *PipelineState) ForceNeutral() {
	for i := range p.Tiers {
		p.Tiers[i] = TierNormal
	}
}

// Invert swaps resistance and weakness. Immunity is untouched.
func (p *PipelineState) Invert() {
	for i, t := range p.Tiers {
		switch t {
		case TierNotVery:
			p.Tiers[i] = TierSuper
		case TierSuper:
			p.Tiers[i] = TierNotVery
		}
	}
}

// PierceImmunity converts any immune tier into a resisted one
func (p *PipelineState) PierceImmunity() {
	for i, t := range p.Tiers {
		if t == TierImmune {
			p.Tiers[i] = TierNotVery
		}
	}
}

// RemoveResistance lifts resisted tiers back to normal
func (p *PipelineState) RemoveResistance() {
	for i, t := range p.Tiers {
		if t == TierNotVery {
			p.Tiers[i] = TierNormal
		}
	}
}

// ForceSuperVs forces super effectiveness against one defending element
func (p *PipelineState) ForceSuperVs(defending entities.Element) {
	for i, d := range p.Defending {
		if d == defending {
			p.Tiers[i] = TierSuper
		}
	}
}

// Blend folds a virtual extra attacking element into every tier: each
// defending element's tier shifts by the virtual lookup's signed
// difference from neutral, clamped to the single-type band; an immune
// virtual lookup forces immunity.
func (p *PipelineState) Blend(virtual entities.Element) {
	for i, d := range p.Defending {
		p.Tiers[i] = ClampShift(p.Tiers[i], BaseLookup(virtual, d))
	}
}

// Seed writes the base matchup for an attack into the context and returns
// the state for further layering
func Seed(ctx *hooks.Context, attacking entities.Element, target *entities.Character) *PipelineState {
	defending := target.Elements
	if len(defending) == 0 {
		defending = []entities.Element{entities.ElementNormal}
	}
	p := &PipelineState{Attacking: attacking}
	for _, d := range defending {
		p.Defending = append(p.Defending, d)
		p.Tiers = append(p.Tiers, BaseLookup(attacking, d))
	}
	ctx.States.Set(p)
	return p
}

// Finalize reads the layered state back out of the context. Without a
// seeded state it degrades to a neutral result.
func Finalize(ctx *hooks.Context) Result {
	p, ok := state.Get[*PipelineState](ctx.States)
	if !ok {
		return combine([]Tier{TierNormal})
	}
	return combine(p.Tiers)
}
