package hooks

import "log"

// Run applies a merged handler sequence to the context in order. After
// each handler returns, the cancellation flag is checked; once set, no
// further handler in this invocation runs. The caller treats a cancelled
// run as the triggering operation being blocked.
func Run(ctx *Context, hook Hook, entries []BoundEntry) {
	for _, entry := range entries {
		entry.Handler.Apply(ctx, entry.Binding)
		if ctx.IsCancelled() {
			log.Printf("[HOOKS] %s cancelled by handler from owner %s", hook, ownerID(entry))
			return
		}
	}
}

func ownerID(entry BoundEntry) string {
	if entry.Binding.Owner == nil {
		return "<none>"
	}
	return entry.Binding.Owner.OwnerID()
}
