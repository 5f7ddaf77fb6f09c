package ai

import "github.com/cory-johannsen/arena/internal/game/element"

// CombatantState captures a combatant's decision-relevant state.
type CombatantState struct {
	ID       string
	Name     string
	Element  element.Element
	HP       int
	MaxHP    int
	MP       int
	MaxMP    int
	Strength int
}

// HPPercent returns current HP as a percentage of MaxHP; 0 if MaxHP == 0.
func (c CombatantState) HPPercent() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP) * 100
}

// Signature is a named special action that deals a percentage of strength
// directly, bypassing the elemental multiplier.
type Signature struct {
	Name      string          `yaml:"name"`
	Element   element.Element `yaml:"element"`
	Cost      int             `yaml:"cost"`
	DamagePct int             `yaml:"damage_pct"`
}

// Damage returns floor(strength × DamagePct / 100).
func (s Signature) Damage(strength int) int {
	return strength * s.DamagePct / 100
}

// State is the snapshot passed to a Policy for one enemy turn.
type State struct {
	Self      CombatantState
	Target    CombatantState
	Signature *Signature // nil when the enemy has no signature action
}
