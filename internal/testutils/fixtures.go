package testutils

import (
	"github.com/mossfell/delve-rules/internal/entities"
)

// CreateTestCharacter creates a healthy character with no attachments
func CreateTestCharacter(id, name string) *entities.Character {
	c := entities.NewCharacter(id, name)
	c.Level = 10
	c.MaxHP = 100
	c.HP = 100
	c.Faction = entities.FactionPlayer
	return c
}

// CreateTestEnemy creates a hostile character
func CreateTestEnemy(id, name string, elements ...entities.Element) *entities.Character {
	c := CreateTestCharacter(id, name)
	c.Faction = entities.FactionEnemy
	c.Elements = elements
	return c
}

// CreateTestFloor creates a floor populated with the given characters
func CreateTestFloor(characters ...*entities.Character) *entities.Floor {
	floor := entities.NewFloor()
	floor.Characters = append(floor.Characters, characters...)
	return floor
}

// CreateTestStatus creates a status instance carrying a countdown
func CreateTestStatus(id, defID string, remaining int) *entities.Status {
	status := entities.NewStatus(id, defID)
	if remaining > 0 {
		status.States.Set(&entities.CountdownState{Remaining: remaining, Original: remaining})
	}
	return status
}
