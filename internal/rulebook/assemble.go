package rulebook

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/entities"
)

// ContributionsFor collects every hook list that applies to a character
// for one hook: its intrinsic ability, its held item, its active statuses
// in application order, and the floor's map statuses. The caller appends
// action-scoped contributions (the skill in flight) before gathering.
func ContributionsFor(defs hooks.DefinitionSource, floor *entities.Floor, c *entities.Character, hook hooks.Hook) []hooks.Contribution {
	contributions := CharacterContributions(defs, c, hook)
	return append(contributions, FloorContributions(defs, floor, c, hook)...)
}

// CharacterContributions collects only the lists the character itself
// carries: ability, held item, statuses in application order. Used when
// both sides of an action contribute to one hook and the floor's map
// statuses must not be gathered twice.
func CharacterContributions(defs hooks.DefinitionSource, c *entities.Character, hook hooks.Hook) []hooks.Contribution {
	var contributions []hooks.Contribution

	if c.AbilityID != "" {
		contributions = append(contributions, hooks.Contribution{
			List:      defs.HookList(c.AbilityID, hook),
			Owner:     c,
			Character: c,
		})
	}
	if c.HeldItem != nil {
		contributions = append(contributions, hooks.Contribution{
			List:      defs.HookList(c.HeldItem.DefID, hook),
			Owner:     c.HeldItem,
			Character: c,
		})
	}
	for _, status := range c.Statuses {
		contributions = append(contributions, hooks.Contribution{
			List:      defs.HookList(status.DefID, hook),
			Owner:     status,
			Character: c,
		})
	}
	return contributions
}

// FloorContributions collects the floor's map status lists bound to c
func FloorContributions(defs hooks.DefinitionSource, floor *entities.Floor, c *entities.Character, hook hooks.Hook) []hooks.Contribution {
	if floor == nil {
		return nil
	}
	var contributions []hooks.Contribution
	for _, mapStatus := range floor.MapStatuses {
		contributions = append(contributions, hooks.Contribution{
			List:      defs.HookList(mapStatus.DefID, hook),
			Owner:     mapStatus,
			Character: c,
		})
	}
	return contributions
}

// GatherFor merges a character's contributions for a hook into one
// execution sequence
func GatherFor(defs hooks.DefinitionSource, floor *entities.Floor, c *entities.Character, hook hooks.Hook) []hooks.BoundEntry {
	return hooks.Gather(ContributionsFor(defs, floor, c, hook)...)
}
