package rules

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
)

// SharedItemHandler runs allies' shareable held items as if the carrier
// wore them. An ability definition registers one instance per hook it
// wants to borrow from; during that hook's invocation the handler gathers
// each eligible item's same-hook list, rebinds it to the carrier, and
// runs it inline on the current context. Eligibility is the definition
// registry's shareability decision: items with position-sensitive or
// refresh handlers, or any handler off the baseline priority, never run
// on another character's behalf.
type SharedItemHandler struct {
	Hook hooks.Hook
}

// Apply implements hooks.Handler
func (h *SharedItemHandler) Apply(ctx *hooks.Context, binding hooks.Binding) {
	env := ctx.Env
	if env == nil || env.Entities == nil || env.Defs == nil {
		return
	}
	for _, ally := range env.Entities.Allies(binding.Character) {
		item := ally.HeldItem
		if item == nil || !env.Defs.ItemShareable(item.DefID) {
			continue
		}
		list := env.Defs.HookList(item.DefID, h.Hook)
		if list.Len() == 0 {
			continue
		}
		entries := hooks.Gather(hooks.Contribution{
			List:      list,
			Owner:     item,
			Character: binding.Character,
		})
		hooks.Run(ctx, h.Hook, entries)
		if ctx.IsCancelled() {
			return
		}
	}
}

// CloneHandler implements hooks.Handler
func (h *SharedItemHandler) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}
