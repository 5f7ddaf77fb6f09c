// Package element defines the four combat elements and their fixed
// weakness/resistance table.
package element

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Element is the elemental affinity of a combatant or a spell.
// The zero value is None.
type Element int

const (
	None Element = iota
	Fire
	Water
	Earth
	Air
)

const (
	// Strong is the multiplier applied when the attacking element beats the defender.
	Strong = 1.5
	// Weak is the multiplier applied when the defender resists the attacking element.
	Weak = 0.5
	// Neutral applies to every other pairing.
	Neutral = 1.0
)

// beats maps each element to the element it is strong against.
var beats = map[Element]Element{
	Fire:  Earth,
	Water: Fire,
	Earth: Air,
	Air:   Water,
}

// Multiplier returns the damage multiplier for a spell of element attacker
// landing on a combatant of element defender.
//
// Postcondition: Returns Strong, Weak, or Neutral. None on either side is Neutral.
func Multiplier(attacker, defender Element) float64 {
	if attacker == None || defender == None {
		return Neutral
	}
	if beats[attacker] == defender {
		return Strong
	}
	if beats[defender] == attacker {
		return Weak
	}
	return Neutral
}

// Spells returns the castable elements in menu order (Fire, Water, Earth, Air).
func Spells() []Element {
	return []Element{Fire, Water, Earth, Air}
}

// All returns every element including None.
func All() []Element {
	return []Element{None, Fire, Water, Earth, Air}
}

// FromChoice maps a 1-based menu choice to a castable element.
//
// Postcondition: Returns (element, true) for choice in [1, 4]; (None, false) otherwise.
func FromChoice(choice int) (Element, bool) {
	spells := Spells()
	if choice < 1 || choice > len(spells) {
		return None, false
	}
	return spells[choice-1], true
}

// String returns the display name of the element.
func (e Element) String() string {
	switch e {
	case Fire:
		return "Fire"
	case Water:
		return "Water"
	case Earth:
		return "Earth"
	case Air:
		return "Air"
	default:
		return "None"
	}
}

// SpellName returns the name of the area spell cast with element e.
func SpellName(e Element) string {
	switch e {
	case Fire:
		return "Fireball"
	case Water:
		return "Flood"
	case Earth:
		return "Rock blast"
	case Air:
		return "Tempest"
	default:
		return "Unknown Spell"
	}
}

// Parse converts a case-insensitive element name into an Element.
//
// Postcondition: Returns an error for any name other than fire, water, earth, air, or none.
func Parse(s string) (Element, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fire":
		return Fire, nil
	case "water":
		return Water, nil
	case "earth":
		return Earth, nil
	case "air":
		return Air, nil
	case "none", "":
		return None, nil
	default:
		return None, fmt.Errorf("element: unknown element %q", s)
	}
}

// UnmarshalYAML decodes an element from its textual name.
func (e *Element) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML encodes the element as its lowercase name.
func (e Element) MarshalYAML() (interface{}, error) {
	return strings.ToLower(e.String()), nil
}
