package character

import (
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/element"
)

// MultiTargetUnlocked reports whether the area spell is available.
func (p *Player) MultiTargetUnlocked() bool {
	return p.Level >= MultiTargetUnlockLevel
}

// CastMultiSpell casts the area spell of elem at every living enemy for MultiSpellCost mana.
// Dead enemies are skipped.
//
// Postcondition: On ErrInsufficientMana no mana is spent and no enemy is touched.
// Otherwise each living enemy takes floor(Strength × multiplier × MultiTargetFactor)
// through its TakeDamage.
func (p *Player) CastMultiSpell(enemies []*combat.Combatant, elem element.Element) error {
	n := p.Notifier()
	if !p.CanAfford(MultiSpellCost) {
		n.Notify(combat.Event{
			Type:   combat.EventInsufficientMana,
			Actor:  p.Name,
			MP:     p.CurrentMP,
			Amount: MultiSpellCost,
			Detail: "multi-target spell",
		})
		return combat.ErrInsufficientMana
	}
	p.UseMana(MultiSpellCost)

	n.Notify(combat.Event{
		Type:    combat.EventMultiSpell,
		Actor:   p.Name,
		Element: elem,
		Detail:  element.SpellName(elem),
	})
	for _, e := range enemies {
		if e == nil || !e.IsAlive() {
			continue
		}
		dmg := p.SpellDamage(e, elem, MultiTargetFactor)
		n.Notify(combat.Event{
			Type:    combat.EventHit,
			Actor:   p.Name,
			Target:  e.Name,
			Element: elem,
			Amount:  dmg,
		})
		e.TakeDamage(dmg)
	}
	return nil
}

// UseItem consumes one potion of the selected kind.
//
// Postcondition: On ErrInvalidSelection (unknown selection or none left) nothing
// changes. Otherwise one potion is consumed and its vital is raised, capped at max.
func (p *Player) UseItem(selection int) error {
	n := p.Notifier()
	switch {
	case selection == ItemHealingPotion && p.HealingPotions > 0:
		p.HealingPotions--
		p.Heal(HealingPotionAmount)
		n.Notify(combat.Event{Type: combat.EventItem, Actor: p.Name, Detail: "Healing Potion", HP: p.CurrentHP, MaxHP: p.MaxHP})
		return nil
	case selection == ItemManaPotion && p.ManaPotions > 0:
		p.ManaPotions--
		p.RestoreMana(ManaPotionAmount)
		n.Notify(combat.Event{Type: combat.EventItem, Actor: p.Name, Detail: "Mana Potion", MP: p.CurrentMP, MaxMP: p.MaxMP})
		return nil
	default:
		n.Notify(combat.Event{Type: combat.EventInvalid, Actor: p.Name, Detail: "Invalid or no potions left!"})
		return fmt.Errorf("item %d: %w", selection, combat.ErrInvalidSelection)
	}
}

// GainExperience adds amount experience and applies every level-up it pays for.
//
// Postcondition: 0 <= Experience < ExperiencePerLevel if it started below it;
// each level-up raises the stats by the per-level increments and restores vitals.
func (p *Player) GainExperience(amount int) {
	p.Experience += amount
	p.Notifier().Notify(combat.Event{Type: combat.EventExperience, Actor: p.Name, Amount: amount})
	for p.Experience >= ExperiencePerLevel {
		p.levelUp()
		p.Experience -= ExperiencePerLevel
	}
}

func (p *Player) levelUp() {
	p.Level++
	p.MaxHP += LevelHP
	p.Strength += LevelStrength
	p.Defense += LevelDefense
	p.Speed += LevelSpeed
	p.MaxMP += LevelMP
	p.Restore()
	p.Notifier().Notify(combat.Event{
		Type:  combat.EventLevelUp,
		Actor: p.Name,
		Level: p.Level,
		HP:    p.CurrentHP,
		MaxHP: p.MaxHP,
		MP:    p.CurrentMP,
		MaxMP: p.MaxMP,
	})
}

// HealFull restores health and mana to their maximums.
func (p *Player) HealFull() {
	p.Restore()
}

// Status returns an EventStatus snapshot of the player's vitals.
func (p *Player) Status() combat.Event {
	return combat.Event{
		Type:  combat.EventStatus,
		Actor: p.Name,
		HP:    p.CurrentHP,
		MaxHP: p.MaxHP,
		MP:    p.CurrentMP,
		MaxMP: p.MaxMP,
		Level: p.Level,
	}
}
