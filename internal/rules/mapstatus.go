package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/entities"
)

// MapStatusReporter announces a floor-wide status starting or ending.
// Registered on OnMapStatusAdds or OnMapStatusRemoves at report priority.
type MapStatusReporter struct {
	MessageKey string
	Sound      string
}

// Apply implements hooks.Handler
func (h *MapStatusReporter) Apply(ctx *hooks.Context, _ hooks.Binding) {
	ctx.Say(h.MessageKey)
	if h.Sound != "" {
		ctx.Sound(h.Sound)
	}
}

// CloneHandler implements hooks.Handler
func (h *MapStatusReporter) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// WeatherChipDamage chips every non-exempt character each map turn
// (sandstorm, hail). Registered on OnMapTurnEnds; the map status service
// runs the list once per character on the floor.
type WeatherChipDamage struct {
	Num            int
	Den            int
	ExemptElements []entities.Element
	MessageKey     string
}

// Apply implements hooks.Handler
func (h *WeatherChipDamage) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if h.Den <= 0 {
		return
	}
	carrier := binding.Character
	if carrier == nil || carrier.IsFainted() {
		return
	}
	for _, e := range h.ExemptElements {
		if carrier.HasElement(e) {
			return
		}
	}
	damage := carrier.MaxHP * h.Num / h.Den
	if damage < 1 {
		damage = 1
	}
	carrier.HP -= damage
	if carrier.HP < 0 {
		carrier.HP = 0
	}
	ctx.Say(h.MessageKey, carrier.Name, damage)
}

// CloneHandler implements hooks.Handler
func (h *WeatherChipDamage) CloneHandler() hooks.Handler {
	clone := *h
	clone.ExemptElements = append([]entities.Element(nil), h.ExemptElements...)
	return &clone
}

// WeatherDamageScale scales hit damage while the owning map status is
// active: rain dampening fire, sun feeding it. Registered on
// BeforeHittings at adjust priority.
type WeatherDamageScale struct {
	Element entities.Element
	Num     int
	Den     int
}

// Apply implements hooks.Handler
func (h *WeatherDamageScale) Apply(ctx *hooks.Context, _ hooks.Binding) {
	if h.Den <= 0 || ctx.Skill == nil || ctx.Skill.Element != h.Element {
		return
	}
	ctx.Damage = ctx.Damage * h.Num / h.Den
}

// CloneHandler implements hooks.Handler
func (h *WeatherDamageScale) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
