// Package character defines the controlled combatant: inventory, experience
// and leveling, and the area spell.
package character

import (
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/element"
)

const (
	// MultiSpellCost is the mana spent by the area spell.
	MultiSpellCost = 35
	// MultiTargetFactor scales area spell damage below single-target damage.
	MultiTargetFactor = 0.75
	// MultiTargetUnlockLevel is the level at which the area spell replaces the single-target spell.
	MultiTargetUnlockLevel = 3

	// HealingPotionAmount is the health restored by one healing potion.
	HealingPotionAmount = 60
	// ManaPotionAmount is the mana restored by one mana potion.
	ManaPotionAmount = 30

	// ExperiencePerLevel is the experience consumed by each level-up.
	ExperiencePerLevel = 100
)

// Per-level stat increments.
const (
	LevelHP       = 20
	LevelStrength = 5
	LevelDefense  = 2
	LevelSpeed    = 2
	LevelMP       = 10
)

// Item menu selections.
const (
	ItemHealingPotion = 1
	ItemManaPotion    = 2
)

// Loadout is the starting stat block and inventory for a new Player.
type Loadout struct {
	MaxHP          int
	MaxMP          int
	Defense        int
	Strength       int
	Speed          int
	HealingPotions int
	ManaPotions    int
}

// DefaultLoadout returns the standard starting block.
func DefaultLoadout() Loadout {
	return Loadout{
		MaxHP:          200,
		MaxMP:          140,
		Defense:        10,
		Strength:       20,
		Speed:          15,
		HealingPotions: 7,
		ManaPotions:    5,
	}
}

// Player is the controlled combatant.
//
// Invariant: Experience, HealingPotions and ManaPotions are never negative.
type Player struct {
	combat.Combatant

	Experience     int
	HealingPotions int
	ManaPotions    int
}

// NewPlayer creates a level 1 Player from a loadout.
//
// Precondition: name must be non-empty.
func NewPlayer(name string, elem element.Element, lo Loadout) *Player {
	return &Player{
		Combatant: combat.NewCombatant(combat.KindPlayer, name, elem, combat.Stats{
			MaxHP:    lo.MaxHP,
			MaxMP:    lo.MaxMP,
			Defense:  lo.Defense,
			Strength: lo.Strength,
			Speed:    lo.Speed,
			Level:    1,
		}),
		HealingPotions: lo.HealingPotions,
		ManaPotions:    lo.ManaPotions,
	}
}
