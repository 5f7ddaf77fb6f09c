package console

import (
	"github.com/cory-johannsen/arena/internal/game/combat"
)

// Renderer is a combat.Notifier that prints each event's narrative to a Console.
type Renderer struct {
	c *Console
}

// NewRenderer creates a Renderer writing to c.
//
// Precondition: c must be non-nil.
func NewRenderer(c *Console) *Renderer {
	return &Renderer{c: c}
}

// Notify implements combat.Notifier.
func (r *Renderer) Notify(ev combat.Event) {
	r.c.Println(Render(ev))
}

// Render formats ev as a coloured line or block.
//
// Postcondition: StripANSI of the result contains ev.Narrative().
func Render(ev combat.Event) string {
	text := ev.Narrative()
	switch ev.Type {
	case combat.EventStatus:
		return "\n" + Colorize(BrightWhite, "--- Player Status ---") + "\n" +
			text + "\n" +
			Colorize(BrightWhite, "----------------------")
	case combat.EventDamage:
		if ev.TargetIsPlayer {
			return Colorize(Bold+BrightRed, text)
		}
		return Colorize(Red, text)
	case combat.EventSpell, combat.EventMultiSpell, combat.EventHit:
		return Colorize(ElementColor(ev.Element), text)
	case combat.EventSignature:
		return Colorize(Bold+BrightMagenta, text)
	case combat.EventItem, combat.EventRestored:
		return Colorize(Green, text)
	case combat.EventExperience, combat.EventLevelUp:
		return Colorize(BrightYellow, text)
	case combat.EventInvalid, combat.EventInsufficientMana:
		return Colorize(Yellow, text)
	case combat.EventPhaseStart:
		return "\n" + Colorf(Bold+BrightYellow, "=== %s ===", text)
	case combat.EventPhaseCleared:
		return "\n" + Colorize(BrightGreen, text)
	case combat.EventVictory:
		return Colorize(Bold+BrightGreen, text)
	case combat.EventDefeat:
		return "\n" + Colorize(Bold+Red, text)
	default:
		return Colorize(White, text)
	}
}
