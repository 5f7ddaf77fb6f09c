package console

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/element"
	"github.com/cory-johannsen/arena/internal/game/encounter"
)

// RandomNames are used when the player leaves the name blank.
var RandomNames = []string{
	"Ashen", "Brine", "Cinder", "Dune", "Ember",
	"Gale", "Mistral", "Pyra", "Rill", "Slate",
}

// CreateCharacter asks for a name and an element and builds the player.
// A blank name picks one of RandomNames, an over-long name is cut to
// character.MaxNameLength, and an invalid element choice defaults to Fire.
//
// Precondition: c, src must be non-nil.
// Postcondition: Returns a level 1 Player, or the read error.
func CreateCharacter(ctx context.Context, c *Console, src dice.Source, lo character.Loadout) (*character.Player, error) {
	name, err := c.Ask(ctx, "Enter your name: ")
	if err != nil {
		return nil, fmt.Errorf("reading name: %w", err)
	}
	if character.NormalizeName(name) == "" {
		name = dice.Pick(src, RandomNames)
		c.Println(Colorf(Dim, "You shall be known as %s.", name))
	}
	if n := character.NormalizeName(name); len([]rune(n)) > character.MaxNameLength {
		name = character.TruncateName(n)
		c.Println(Colorf(Yellow, "That name is too long. You shall be known as %s.", name))
	}

	opts := make([]encounter.Option, 0, len(element.Spells()))
	for i, e := range element.Spells() {
		opts = append(opts, encounter.Option{Number: i + 1, Label: e.String()})
	}
	choice, err := c.Choose(ctx, encounter.Prompt{Title: "Choose your element:", Options: opts})
	if err != nil {
		return nil, fmt.Errorf("reading element: %w", err)
	}
	elem, ok := element.FromChoice(choice)
	if !ok {
		c.Println(Colorize(Yellow, "Invalid choice. Defaulting to Fire."))
		elem = element.Fire
	}

	return character.Build(name, elem, lo)
}
