package entities

// Element represents an elemental type carried by characters and skills
type Element string

const (
	ElementNone     Element = ""
	ElementNormal   Element = "normal"
	ElementFire     Element = "fire"
	ElementWater    Element = "water"
	ElementGrass    Element = "grass"
	ElementElectric Element = "electric"
	ElementIce      Element = "ice"
	ElementGround   Element = "ground"
	ElementFlying   Element = "flying"
	ElementRock     Element = "rock"
	ElementSteel    Element = "steel"
	ElementGhost    Element = "ghost"
	ElementDragon   Element = "dragon"
)

// Stat identifies a boostable combat stat
type Stat string

const (
	StatAttack    Stat = "attack"
	StatDefense   Stat = "defense"
	StatSpAttack  Stat = "sp_attack"
	StatSpDefense Stat = "sp_defense"
	StatSpeed     Stat = "speed"
	StatAccuracy  Stat = "accuracy"
	StatEvasion   Stat = "evasion"
)

// Stat stage bounds. Stage deltas are clamped into this range and a delta
// that clamps to zero at a boundary cancels the boost entirely.
const (
	StageMin = -6
	StageMax = 6
)

// Faction marks which side a character fights for
type Faction string

const (
	FactionPlayer  Faction = "player"
	FactionEnemy   Faction = "enemy"
	FactionNeutral Faction = "neutral"
)

// IsAllied reports whether two factions treat each other as allies
func (f Faction) IsAllied(other Faction) bool {
	return f == other
}
