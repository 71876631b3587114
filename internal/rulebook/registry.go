package rulebook

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
)

// Registry is the closed catalogue of definitions. It implements
// hooks.DefinitionSource: the engine's only question to the data layer is
// "what does definition X contribute to hook Y".
type Registry struct {
	statuses    map[string]*StatusDef
	items       map[string]*ItemDef
	abilities   map[string]*AbilityDef
	skills      map[string]*SkillDef
	mapStatuses map[string]*MapStatusDef
	terrains    map[entities.Terrain]*TerrainDef
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		statuses:    make(map[string]*StatusDef),
		items:       make(map[string]*ItemDef),
		abilities:   make(map[string]*AbilityDef),
		skills:      make(map[string]*SkillDef),
		mapStatuses: make(map[string]*MapStatusDef),
		terrains:    make(map[entities.Terrain]*TerrainDef),
	}
}

// AddStatus registers a status definition
func (r *Registry) AddStatus(def *StatusDef) *Registry {
	r.statuses[def.ID] = def
	return r
}

// AddItem registers an item definition
func (r *Registry) AddItem(def *ItemDef) *Registry {
	r.items[def.ID] = def
	return r
}

// AddAbility registers an ability definition
func (r *Registry) AddAbility(def *AbilityDef) *Registry {
	r.abilities[def.ID] = def
	return r
}

// AddSkill registers a skill definition
func (r *Registry) AddSkill(def *SkillDef) *Registry {
	r.skills[def.ID] = def
	return r
}

// AddMapStatus registers a map status definition
func (r *Registry) AddMapStatus(def *MapStatusDef) *Registry {
	r.mapStatuses[def.ID] = def
	return r
}

// AddTerrain registers a terrain definition
func (r *Registry) AddTerrain(def *TerrainDef) *Registry {
	r.terrains[def.Terrain] = def
	return r
}

// Status returns a status definition
func (r *Registry) Status(id string) (*StatusDef, error) {
	def, ok := r.statuses[id]
	if !ok {
		return nil, errors.NotFoundf("unknown status definition %q", id)
	}
	return def, nil
}

// Item returns an item definition
func (r *Registry) Item(id string) (*ItemDef, error) {
	def, ok := r.items[id]
	if !ok {
		return nil, errors.NotFoundf("unknown item definition %q", id)
	}
	return def, nil
}

// Ability returns an ability definition
func (r *Registry) Ability(id string) (*AbilityDef, error) {
	def, ok := r.abilities[id]
	if !ok {
		return nil, errors.NotFoundf("unknown ability definition %q", id)
	}
	return def, nil
}

// Skill returns a skill definition
func (r *Registry) Skill(id string) (*SkillDef, error) {
	def, ok := r.skills[id]
	if !ok {
		return nil, errors.NotFoundf("unknown skill definition %q", id)
	}
	return def, nil
}

// MapStatus returns a map status definition
func (r *Registry) MapStatus(id string) (*MapStatusDef, error) {
	def, ok := r.mapStatuses[id]
	if !ok {
		return nil, errors.NotFoundf("unknown map status definition %q", id)
	}
	return def, nil
}

// Terrain returns a terrain definition, if registered
func (r *Registry) Terrain(terrain entities.Terrain) (*TerrainDef, bool) {
	def, ok := r.terrains[terrain]
	return def, ok
}

// HookList implements hooks.DefinitionSource. A missing or handler-less
// definition contributes nothing rather than failing the invocation.
func (r *Registry) HookList(defID string, hook hooks.Hook) *hooks.List {
	if def, ok := r.statuses[defID]; ok {
		return def.Hooks.On(hook)
	}
	if def, ok := r.items[defID]; ok {
		return def.Hooks.On(hook)
	}
	if def, ok := r.abilities[defID]; ok {
		return def.Hooks.On(hook)
	}
	if def, ok := r.skills[defID]; ok {
		return def.Hooks.On(hook)
	}
	if def, ok := r.mapStatuses[defID]; ok {
		return def.Hooks.On(hook)
	}
	return nil
}

// ItemShareable implements hooks.DefinitionSource
func (r *Registry) ItemShareable(defID string) bool {
	def, ok := r.items[defID]
	if !ok {
		return false
	}
	return def.Shareable()
}

// InstantiateSkill builds a skill instance from its definition, copying
// the combat fields out of the shared definition
func (r *Registry) InstantiateSkill(defID, instanceID string) (*entities.Skill, error) {
	def, err := r.Skill(defID)
	if err != nil {
		return nil, err
	}
	return &entities.Skill{
		ID:         instanceID,
		DefID:      def.ID,
		Element:    def.Element,
		Power:      def.Power,
		HitNum:     def.HitNum,
		HitDen:     def.HitDen,
		Unmissable: def.Unmissable,
		PP:         def.BasePP,
		States:     state.NewBag(),
	}, nil
}
