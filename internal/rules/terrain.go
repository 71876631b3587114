package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
)

// TerrainWalker lets the carrier enter one otherwise impassable terrain
// (water walking, lava crossing, wall phasing). Registered on
// OnTraverseChecks.
type TerrainWalker struct {
	Terrain entities.Terrain
}

// Apply implements hooks.Handler
func (h *TerrainWalker) Apply(ctx *hooks.Context, _ hooks.Binding) {
	traverse, ok := state.Get[*TraverseState](ctx.States)
	if !ok {
		return
	}
	if traverse.Terrain == h.Terrain {
		traverse.Allowed = true
	}
}

// CloneHandler implements hooks.Handler
func (h *TerrainWalker) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// AllTerrainWalker allows every terrain except walls
type AllTerrainWalker struct{}

// Apply implements hooks.Handler
func (h *AllTerrainWalker) Apply(ctx *hooks.Context, _ hooks.Binding) {
	traverse, ok := state.Get[*TraverseState](ctx.States)
	if !ok {
		return
	}
	if traverse.Terrain != entities.TerrainWall {
		traverse.Allowed = true
	}
}

// CloneHandler implements hooks.Handler
func (h *AllTerrainWalker) CloneHandler() hooks.Handler {
	return &AllTerrainWalker{}
}

// TerrainBlock revokes access to one terrain, overriding earlier walkers.
// Registered above baseline so it runs after grants.
type TerrainBlock struct {
	Terrain    entities.Terrain
	MessageKey string
}

// Apply implements hooks.Handler
func (h *TerrainBlock) Apply(ctx *hooks.Context, binding hooks.Binding) {
	traverse, ok := state.Get[*TraverseState](ctx.States)
	if !ok {
		return
	}
	if traverse.Terrain == h.Terrain && traverse.Allowed {
		traverse.Allowed = false
		ctx.Say(h.MessageKey, binding.Character.Name)
	}
}

// CloneHandler implements hooks.Handler
func (h *TerrainBlock) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
