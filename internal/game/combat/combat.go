// Package combat implements the shared combatant model for the arena:
// vitals, stats, damage intake, physical attacks and single-target spells.
package combat

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/cory-johannsen/arena/internal/game/element"
)

// SpellCost is the mana spent by a single-target spell.
const SpellCost = 20

var (
	// ErrInsufficientMana is returned when a spell is attempted below its mana cost.
	// No resource is spent when it is returned.
	ErrInsufficientMana = errors.New("not enough mana")
	// ErrInvalidSelection is returned for out-of-range menu choices, dead or
	// missing targets, and items with no remaining count.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Kind distinguishes the controlled combatant from automated ones.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
)

// String returns "player" or "npc".
func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "npc"
}

// Stats is the starting stat block used to construct a Combatant.
type Stats struct {
	MaxHP    int
	MaxMP    int
	Defense  int
	Strength int
	Speed    int
	Level    int
}

// Combatant represents one participant in an encounter, either the player or an enemy.
//
// Invariant: 0 <= CurrentHP <= MaxHP and 0 <= CurrentMP <= MaxMP after every operation.
type Combatant struct {
	ID        string
	Kind      Kind
	Name      string
	Element   element.Element
	MaxHP     int
	CurrentHP int
	MaxMP     int
	CurrentMP int
	Defense   int
	Strength  int
	Speed     int
	Level     int

	notifier Notifier
}

// NewCombatant creates a Combatant at full health and mana.
//
// Precondition: name must be non-empty; stats must be non-negative.
// Postcondition: CurrentHP == MaxHP, CurrentMP == MaxMP, ID is a fresh UUID.
func NewCombatant(kind Kind, name string, elem element.Element, stats Stats) Combatant {
	return Combatant{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      name,
		Element:   elem,
		MaxHP:     stats.MaxHP,
		CurrentHP: stats.MaxHP,
		MaxMP:     stats.MaxMP,
		CurrentMP: stats.MaxMP,
		Defense:   stats.Defense,
		Strength:  stats.Strength,
		Speed:     stats.Speed,
		Level:     stats.Level,
	}
}

// SetNotifier routes this combatant's events to n. A nil n discards events.
func (c *Combatant) SetNotifier(n Notifier) { c.notifier = n }

// Notifier returns the combatant's event sink, never nil.
func (c *Combatant) Notifier() Notifier {
	if c.notifier == nil {
		return Discard
	}
	return c.notifier
}

func (c *Combatant) emit(ev Event) {
	c.Notifier().Notify(ev)
}

// IsPlayer reports whether this combatant is the controlled player.
func (c *Combatant) IsPlayer() bool { return c.Kind == KindPlayer }

// IsAlive reports whether the combatant has health remaining.
//
// Postcondition: Returns true iff CurrentHP > 0.
func (c *Combatant) IsAlive() bool { return c.CurrentHP > 0 }

// TakeDamage reduces health by max(0, amount - Defense), flooring at zero.
// Zero and negative amounts are legal and deal nothing.
//
// Postcondition: CurrentHP >= 0; an EventDamage is emitted; returns the effective damage.
func (c *Combatant) TakeDamage(amount int) int {
	dmg := amount - c.Defense
	if dmg < 0 {
		dmg = 0
	}
	c.CurrentHP -= dmg
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	c.emit(Event{
		Type:           EventDamage,
		Target:         c.Name,
		Amount:         dmg,
		HP:             c.CurrentHP,
		MaxHP:          c.MaxHP,
		TargetIsPlayer: c.IsPlayer(),
	})
	return dmg
}

// UseMana spends up to amount mana, flooring at zero. It never fails; callers
// that need a gate must check CanAfford first.
func (c *Combatant) UseMana(amount int) {
	c.CurrentMP -= amount
	if c.CurrentMP < 0 {
		c.CurrentMP = 0
	}
}

// CanAfford reports whether the combatant holds at least cost mana.
func (c *Combatant) CanAfford(cost int) bool { return c.CurrentMP >= cost }

// Heal restores up to amount health, capped at MaxHP.
//
// Postcondition: Returns the health actually restored.
func (c *Combatant) Heal(amount int) int {
	before := c.CurrentHP
	c.CurrentHP = min(c.CurrentHP+amount, c.MaxHP)
	return c.CurrentHP - before
}

// RestoreMana restores up to amount mana, capped at MaxMP.
//
// Postcondition: Returns the mana actually restored.
func (c *Combatant) RestoreMana(amount int) int {
	before := c.CurrentMP
	c.CurrentMP = min(c.CurrentMP+amount, c.MaxMP)
	return c.CurrentMP - before
}

// Restore sets health and mana to their maximums.
func (c *Combatant) Restore() {
	c.CurrentHP = c.MaxHP
	c.CurrentMP = c.MaxMP
}

// Attack deals Strength damage to target through its TakeDamage. Physical
// attacks cost nothing.
//
// Precondition: target must be non-nil.
func (c *Combatant) Attack(target *Combatant) {
	c.emit(Event{
		Type:   EventAttack,
		Actor:  c.Name,
		Target: target.Name,
		Amount: c.Strength,
	})
	target.TakeDamage(c.Strength)
}

// SpellDamage returns floor(Strength × Multiplier(elem, target.Element) × factor).
func (c *Combatant) SpellDamage(target *Combatant, elem element.Element, factor float64) int {
	return int(math.Floor(float64(c.Strength) * element.Multiplier(elem, target.Element) * factor))
}

// CastSpell casts a single-target spell of elem at target for SpellCost mana.
//
// Precondition: target must be non-nil.
// Postcondition: On ErrInsufficientMana neither combatant changes. Otherwise
// SpellCost mana is spent and floor(Strength × multiplier) is applied via
// target.TakeDamage.
func (c *Combatant) CastSpell(target *Combatant, elem element.Element) error {
	if !c.CanAfford(SpellCost) {
		c.emit(Event{Type: EventInsufficientMana, Actor: c.Name, MP: c.CurrentMP, Amount: SpellCost})
		return ErrInsufficientMana
	}
	c.UseMana(SpellCost)
	dmg := c.SpellDamage(target, elem, 1.0)
	c.emit(Event{
		Type:    EventSpell,
		Actor:   c.Name,
		Target:  target.Name,
		Element: elem,
		Amount:  dmg,
	})
	target.TakeDamage(dmg)
	return nil
}
