package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
)

// SkipTurnGate cancels the carrier's action outright while the owning
// status is active (sleep, freeze). Registered on OnActionStarts at gate
// priority by the status definition.
type SkipTurnGate struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *SkipTurnGate) Apply(ctx *hooks.Context, binding hooks.Binding) {
	ctx.Say(h.MessageKey, binding.Character.Name)
	ctx.Cancel()
}

// CloneHandler implements hooks.Handler
func (h *SkipTurnGate) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// ChanceGate cancels the carrier's action with probability Num/Den
// (paralysis, infatuation)
type ChanceGate struct {
	Num        int
	Den        int
	MessageKey string
}

// Apply implements hooks.Handler
func (h *ChanceGate) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if ctx.Env == nil || ctx.Env.Roller == nil {
		return
	}
	blocked, err := ctx.Env.Roller.Check(h.Num, h.Den)
	if err != nil || !blocked {
		return
	}
	ctx.Say(h.MessageKey, binding.Character.Name)
	ctx.Cancel()
}

// CloneHandler implements hooks.Handler
func (h *ChanceGate) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// BlockStatusAdd cancels specific statuses from being applied to the
// carrier (an immunity ability or ward item). Registered on
// BeforeStatusAdds at gate priority.
type BlockStatusAdd struct {
	DefIDs     []string
	MessageKey string
}

// Apply implements hooks.Handler
func (h *BlockStatusAdd) Apply(ctx *hooks.Context, binding hooks.Binding) {
	pending, ok := state.Get[*PendingStatusState](ctx.States)
	if !ok {
		return
	}
	for _, id := range h.DefIDs {
		if id == pending.DefID {
			ctx.Say(h.MessageKey, binding.Character.Name)
			ctx.Cancel()
			return
		}
	}
}

// CloneHandler implements hooks.Handler
func (h *BlockStatusAdd) CloneHandler() hooks.Handler {
	clone := *h
	clone.DefIDs = append([]string(nil), h.DefIDs...)
	return &clone
}

// BlockBadStatusAdds cancels every harmful status from being applied to
// the carrier
type BlockBadStatusAdds struct {
	MessageKey string
}

// Apply implements hooks.Handler
func (h *BlockBadStatusAdds) Apply(ctx *hooks.Context, binding hooks.Binding) {
	pending, ok := state.Get[*PendingStatusState](ctx.States)
	if !ok || !pending.Bad {
		return
	}
	ctx.Say(h.MessageKey, binding.Character.Name)
	ctx.Cancel()
}

// CloneHandler implements hooks.Handler
func (h *BlockBadStatusAdds) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

// SyncStatusOverride lets a duplicate status addition refresh the active
// instance instead of being cancelled. Registered on BeforeStatusAdds.
type SyncStatusOverride struct {
	DefIDs []string
}

// Apply implements hooks.Handler
func (h *SyncStatusOverride) Apply(ctx *hooks.Context, _ hooks.Binding) {
	pending, ok := state.Get[*PendingStatusState](ctx.States)
	if !ok {
		return
	}
	if len(h.DefIDs) == 0 {
		ctx.States.Set(&SyncOverrideState{})
		return
	}
	for _, id := range h.DefIDs {
		if id == pending.DefID {
			ctx.States.Set(&SyncOverrideState{})
			return
		}
	}
}

// CloneHandler implements hooks.Handler
func (h *SyncStatusOverride) CloneHandler() hooks.Handler {
	clone := *h
	clone.DefIDs = append([]string(nil), h.DefIDs...)
	return &clone
}
