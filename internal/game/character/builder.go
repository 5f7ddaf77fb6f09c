package character

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/arena/internal/game/element"
)

// MaxNameLength bounds the display name.
const MaxNameLength = 24

// NormalizeName collapses whitespace and capitalizes the first letter of each
// word, leaving inner capitals alone.
func NormalizeName(name string) string {
	return cases.Title(language.English, cases.NoLower).String(strings.Join(strings.Fields(name), " "))
}

// TruncateName normalizes name and cuts it to at most MaxNameLength runes.
func TruncateName(name string) string {
	r := []rune(NormalizeName(name))
	if len(r) > MaxNameLength {
		r = r[:MaxNameLength]
	}
	return strings.TrimSpace(string(r))
}

// Build creates a new Player from user-supplied creation choices.
// An element of None is replaced with Fire.
//
// Precondition: name must contain at least one non-space character.
// Postcondition: Returns a level 1 Player with full vitals, or a non-nil error.
func Build(name string, elem element.Element, lo Loadout) (*Player, error) {
	n := NormalizeName(name)
	if n == "" {
		return nil, errors.New("character name must not be empty")
	}
	if len([]rune(n)) > MaxNameLength {
		return nil, errors.New("character name must be at most 24 characters")
	}
	if elem == element.None {
		elem = element.Fire
	}
	return NewPlayer(n, elem, lo), nil
}
