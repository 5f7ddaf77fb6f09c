// Package ai implements the decision policies automated combatants use to
// pick their action each turn.
package ai

import (
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/element"
)

// ActionType identifies what an enemy decided to do.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionAttack
	ActionSpell
	ActionSignature
)

// String returns "attack", "spell", "signature" or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionSpell:
		return "spell"
	case ActionSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Decision is the action a policy chose. Element is set only for ActionSpell.
type Decision struct {
	Action  ActionType
	Element element.Element
}

// Attack is the physical attack decision.
var Attack = Decision{Action: ActionAttack}

// Source is the random source policies draw from.
type Source = dice.Source

// Policy chooses an enemy's action for one turn.
type Policy interface {
	Decide(state State, src Source) Decision
}

// PolicyFunc adapts a function into a Policy.
type PolicyFunc func(state State, src Source) Decision

// Decide calls f.
func (f PolicyFunc) Decide(state State, src Source) Decision { return f(state, src) }

// Standard casts a random-element spell when it can afford one and a coin
// flip succeeds, otherwise it attacks.
//
// Postcondition: No random draw is made when Self.MP < combat.SpellCost.
type Standard struct{}

// Decide implements Policy.
func (Standard) Decide(state State, src Source) Decision {
	if state.Self.MP >= combat.SpellCost && dice.Coin(src) {
		return Decision{Action: ActionSpell, Element: dice.Pick(src, element.Spells())}
	}
	return Attack
}

// SignatureFirst uses the signature action when it can afford it and a coin
// flip succeeds, otherwise it attacks. Without a signature it always attacks.
type SignatureFirst struct{}

// Decide implements Policy.
func (SignatureFirst) Decide(state State, src Source) Decision {
	sig := state.Signature
	if sig != nil && state.Self.MP >= sig.Cost && dice.Coin(src) {
		return Decision{Action: ActionSignature}
	}
	return Attack
}
