package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Owner is any entity that can contribute handlers to a hook invocation:
// a character (through its ability), an equipped item, an active status,
// or a floor-wide map status. Handlers receive the owner so they can read
// and write its state bag.
type Owner interface {
	OwnerID() string
	OwnerBag() *state.Bag
}
