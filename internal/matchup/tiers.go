// Package matchup implements the elemental effectiveness pipeline: a fixed
// base lookup table with a layer of hook handlers applied on top that can
// neutralize, invert, pierce or blend the result.
package matchup

import "github.com/mossfell/delve-rules/internal/entities"

// Tier is the discrete outcome of comparing an attacking element to one
// defending element. The numeric values matter: a dual-type score is the
// sum of two tiers, and the add-type blend shifts a tier by the signed
// difference from TierNormal, clamped to [TierNotVery, TierSuper].
type Tier int

const (
	TierImmune  Tier = 0
	TierNotVery Tier = 3
	TierNormal  Tier = 4
	TierSuper   Tier = 5
)

// String returns the tier's name for logging
func (t Tier) String() string {
	switch t {
	case TierImmune:
		return "immune"
	case TierNotVery:
		return "not_very_effective"
	case TierNormal:
		return "normal"
	case TierSuper:
		return "super_effective"
	}
	return "unknown"
}

// ClampShift shifts a tier by the signed difference of a second tier from
// neutral and clamps the result into the single-type band. Immunity on
// either side wins outright.
func ClampShift(base, blend Tier) Tier {
	if blend == TierImmune {
		return TierImmune
	}
	if base == TierImmune {
		return TierImmune
	}
	shifted := base + (blend - TierNormal)
	if shifted < TierNotVery {
		return TierNotVery
	}
	if shifted > TierSuper {
		return TierSuper
	}
	return shifted
}

// baseTable holds every matchup that deviates from normal effectiveness.
// Absent pairs (including unknown elements) default to TierNormal.
var baseTable = map[entities.Element]map[entities.Element]Tier{
	entities.ElementNormal: {
		entities.ElementRock:  TierNotVery,
		entities.ElementSteel: TierNotVery,
		entities.ElementGhost: TierImmune,
	},
	entities.ElementFire: {
		entities.ElementGrass:  TierSuper,
		entities.ElementIce:    TierSuper,
		entities.ElementSteel:  TierSuper,
		entities.ElementFire:   TierNotVery,
		entities.ElementWater:  TierNotVery,
		entities.ElementRock:   TierNotVery,
		entities.ElementDragon: TierNotVery,
	},
	entities.ElementWater: {
		entities.ElementFire:   TierSuper,
		entities.ElementGround: TierSuper,
		entities.ElementRock:   TierSuper,
		entities.ElementWater:  TierNotVery,
		entities.ElementGrass:  TierNotVery,
		entities.ElementDragon: TierNotVery,
	},
	entities.ElementGrass: {
		entities.ElementWater:  TierSuper,
		entities.ElementGround: TierSuper,
		entities.ElementRock:   TierSuper,
		entities.ElementFire:   TierNotVery,
		entities.ElementGrass:  TierNotVery,
		entities.ElementFlying: TierNotVery,
		entities.ElementSteel:  TierNotVery,
		entities.ElementDragon: TierNotVery,
	},
	entities.ElementElectric: {
		entities.ElementWater:    TierSuper,
		entities.ElementFlying:   TierSuper,
		entities.ElementGrass:    TierNotVery,
		entities.ElementDragon:   TierNotVery,
		entities.ElementElectric: TierNotVery,
		entities.ElementGround:   TierImmune,
	},
	entities.ElementIce: {
		entities.ElementGrass:  TierSuper,
		entities.ElementGround: TierSuper,
		entities.ElementFlying: TierSuper,
		entities.ElementDragon: TierSuper,
		entities.ElementFire:   TierNotVery,
		entities.ElementWater:  TierNotVery,
		entities.ElementIce:    TierNotVery,
		entities.ElementSteel:  TierNotVery,
	},
	entities.ElementGround: {
		entities.ElementFire:     TierSuper,
		entities.ElementElectric: TierSuper,
		entities.ElementRock:     TierSuper,
		entities.ElementSteel:    TierSuper,
		entities.ElementGrass:    TierNotVery,
		entities.ElementFlying:   TierImmune,
	},
	entities.ElementFlying: {
		entities.ElementGrass:    TierSuper,
		entities.ElementElectric: TierNotVery,
		entities.ElementRock:     TierNotVery,
		entities.ElementSteel:    TierNotVery,
	},
	entities.ElementRock: {
		entities.ElementFire:   TierSuper,
		entities.ElementIce:    TierSuper,
		entities.ElementFlying: TierSuper,
		entities.ElementGround: TierNotVery,
		entities.ElementSteel:  TierNotVery,
	},
	entities.ElementSteel: {
		entities.ElementIce:      TierSuper,
		entities.ElementRock:     TierSuper,
		entities.ElementFire:     TierNotVery,
		entities.ElementWater:    TierNotVery,
		entities.ElementElectric: TierNotVery,
		entities.ElementSteel:    TierNotVery,
	},
	entities.ElementGhost: {
		entities.ElementGhost:  TierSuper,
		entities.ElementNormal: TierImmune,
	},
	entities.ElementDragon: {
		entities.ElementDragon: TierSuper,
		entities.ElementSteel:  TierNotVery,
	},
}

// BaseLookup returns the base tier for one attacking and one defending
// element. Missing data reads as normal effectiveness.
func BaseLookup(attacking, defending entities.Element) Tier {
	row, ok := baseTable[attacking]
	if !ok {
		return TierNormal
	}
	tier, ok := row[defending]
	if !ok {
		return TierNormal
	}
	return tier
}
