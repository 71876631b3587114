package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Item is an instance of an equippable item
type Item struct {
	ID     string     `json:"id"`
	DefID  string     `json:"def_id"`
	States *state.Bag `json:"-"`
}

// NewItem creates an item instance with an empty state bag
func NewItem(id, defID string) *Item {
	return &Item{
		ID:     id,
		DefID:  defID,
		States: state.NewBag(),
	}
}

// Clone deep-copies the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	return &Item{
		ID:     i.ID,
		DefID:  i.DefID,
		States: i.States.Clone(),
	}
}

// OwnerID implements Owner
func (i *Item) OwnerID() string { return i.ID }

// OwnerBag implements Owner
func (i *Item) OwnerBag() *state.Bag { return i.States }
