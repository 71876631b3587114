package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Terrain classifies what a tile is made of
type Terrain string

const (
	TerrainGround Terrain = "ground"
	TerrainWater  Terrain = "water"
	TerrainLava   Terrain = "lava"
	TerrainWall   Terrain = "wall"
)

// Tile is one cell of the active floor
type Tile struct {
	Terrain Terrain
	States  *state.Bag
}

// NewTile creates a tile of the given terrain
func NewTile(terrain Terrain) *Tile {
	return &Tile{Terrain: terrain, States: state.NewBag()}
}

// Clone deep-copies the tile
func (t *Tile) Clone() *Tile {
	return &Tile{Terrain: t.Terrain, States: t.States.Clone()}
}

// MapStatus is a floor-wide condition (weather and similar)
type MapStatus struct {
	ID     string     `json:"id"`
	DefID  string     `json:"def_id"`
	States *state.Bag `json:"-"`
}

// NewMapStatus creates a map status instance with an empty state bag
func NewMapStatus(id, defID string) *MapStatus {
	return &MapStatus{ID: id, DefID: defID, States: state.NewBag()}
}

// Clone deep-copies the map status
func (m *MapStatus) Clone() *MapStatus {
	return &MapStatus{ID: m.ID, DefID: m.DefID, States: m.States.Clone()}
}

// OwnerID implements Owner
func (m *MapStatus) OwnerID() string { return m.ID }

// OwnerBag implements Owner
func (m *MapStatus) OwnerBag() *state.Bag { return m.States }

// Floor holds the pieces of the active floor the rules engine consumes:
// the roster of characters and the table of active map statuses. Dungeon
// layout beyond per-tile terrain is someone else's job.
type Floor struct {
	Characters  []*Character
	MapStatuses []*MapStatus
}

// NewFloor creates an empty floor
func NewFloor() *Floor {
	return &Floor{}
}

// Character looks a character up by ID
func (f *Floor) Character(id string) (*Character, bool) {
	for _, c := range f.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Allies returns the other characters sharing c's faction
func (f *Floor) Allies(c *Character) []*Character {
	var allies []*Character
	for _, other := range f.Characters {
		if other.ID != c.ID && other.Faction.IsAllied(c.Faction) {
			allies = append(allies, other)
		}
	}
	return allies
}

// Opponents returns the characters hostile to c
func (f *Floor) Opponents(c *Character) []*Character {
	var opponents []*Character
	for _, other := range f.Characters {
		if !other.Faction.IsAllied(c.Faction) {
			opponents = append(opponents, other)
		}
	}
	return opponents
}

// MapStatusByDefID returns the active map status for a definition, if any
func (f *Floor) MapStatusByDefID(defID string) *MapStatus {
	for _, m := range f.MapStatuses {
		if m.DefID == defID {
			return m
		}
	}
	return nil
}

// AttachMapStatus appends a map status
func (f *Floor) AttachMapStatus(m *MapStatus) {
	f.MapStatuses = append(f.MapStatuses, m)
}

// DetachMapStatus removes a map status by instance ID
func (f *Floor) DetachMapStatus(id string) *MapStatus {
	for i, m := range f.MapStatuses {
		if m.ID == id {
			f.MapStatuses = append(f.MapStatuses[:i], f.MapStatuses[i+1:]...)
			return m
		}
	}
	return nil
}
