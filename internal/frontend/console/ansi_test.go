package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/element"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mdanger\033[0m", Colorize(Red, "danger"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[32mhealth: 42\033[0m", Colorf(Green, "health: %d", 42))
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
	assert.Equal(t, "plain text", StripANSI("plain text"))
	assert.Equal(t, "", StripANSI(""))
	assert.Equal(t, "x", StripANSI("\033[1;31mx\033[0m"))
}

func TestElementColor(t *testing.T) {
	assert.Equal(t, BrightRed, ElementColor(element.Fire))
	assert.Equal(t, BrightBlue, ElementColor(element.Water))
	assert.Equal(t, Yellow, ElementColor(element.Earth))
	assert.Equal(t, BrightCyan, ElementColor(element.Air))
	assert.Equal(t, White, ElementColor(element.None))
}

// Property: StripANSI(Colorize(color, text)) == text for any ASCII text.
func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{Red, Green, Yellow, Cyan, Magenta, White, Bold, Dim, BrightRed}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 !()]{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		assert.Equal(t, text, StripANSI(Colorize(color, text)))
	})
}
