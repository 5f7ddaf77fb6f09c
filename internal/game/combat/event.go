package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/element"
)

// EventType identifies what an Event reports.
type EventType int

const (
	EventUnknown EventType = iota
	EventAttack
	EventDamage
	EventSpell
	EventMultiSpell
	EventHit
	EventInsufficientMana
	EventSignature
	EventItem
	EventInvalid
	EventExperience
	EventLevelUp
	EventStatus
	EventPhaseStart
	EventPhaseCleared
	EventRestored
	EventVictory
	EventDefeat
)

var eventNames = map[EventType]string{
	EventAttack:           "attack",
	EventDamage:           "damage",
	EventSpell:            "spell",
	EventMultiSpell:       "multi_spell",
	EventHit:              "hit",
	EventInsufficientMana: "insufficient_mana",
	EventSignature:        "signature",
	EventItem:             "item",
	EventInvalid:          "invalid",
	EventExperience:       "experience",
	EventLevelUp:          "level_up",
	EventStatus:           "status",
	EventPhaseStart:       "phase_start",
	EventPhaseCleared:     "phase_cleared",
	EventRestored:         "restored",
	EventVictory:          "victory",
	EventDefeat:           "defeat",
}

// String returns the snake_case name of the event type.
func (t EventType) String() string {
	if n, ok := eventNames[t]; ok {
		return n
	}
	return "unknown"
}

// Event is one notification produced by the combat core for the presentation boundary.
// Fields that do not apply to a given Type are left zero.
type Event struct {
	Type    EventType
	Actor   string
	Target  string
	Element element.Element
	Amount  int
	HP      int
	MaxHP   int
	MP      int
	MaxMP   int
	Level   int
	// TargetIsPlayer is set on EventDamage when the controlled player was hit.
	TargetIsPlayer bool
	// Detail carries free text: a spell or item name, a phase name, or the reason for an invalid selection.
	Detail string
}

// Narrative renders the event as a single line of player-facing text.
func (e Event) Narrative() string {
	switch e.Type {
	case EventAttack:
		return fmt.Sprintf("%s uses Strength Attack on %s!", e.Actor, e.Target)
	case EventDamage:
		return fmt.Sprintf("%s takes %d damage! (HP: %d)", e.Target, e.Amount, e.HP)
	case EventSpell:
		return fmt.Sprintf("%s casts a %s spell on %s for %d damage!", e.Actor, e.Element, e.Target, e.Amount)
	case EventMultiSpell:
		return fmt.Sprintf("%s casts %s on all enemies!", e.Actor, e.Detail)
	case EventHit:
		return fmt.Sprintf(" - Hits %s for %d damage.", e.Target, e.Amount)
	case EventInsufficientMana:
		if e.Detail != "" {
			return fmt.Sprintf("%s doesn't have enough mana to cast a %s!", e.Actor, e.Detail)
		}
		return fmt.Sprintf("%s doesn't have enough mana!", e.Actor)
	case EventSignature:
		return fmt.Sprintf("%s unleashes %s!", e.Actor, e.Detail)
	case EventItem:
		if e.Detail == "Mana Potion" {
			return fmt.Sprintf("You used a %s! MP: %d", e.Detail, e.MP)
		}
		return fmt.Sprintf("You used a %s! HP: %d", e.Detail, e.HP)
	case EventInvalid:
		return e.Detail
	case EventExperience:
		return fmt.Sprintf("You gained %d EXP!", e.Amount)
	case EventLevelUp:
		return fmt.Sprintf("You leveled up! Level: %d", e.Level)
	case EventStatus:
		return fmt.Sprintf("%s - HP: %d/%d, MP: %d/%d, Level: %d", e.Actor, e.HP, e.MaxHP, e.MP, e.MaxMP, e.Level)
	case EventPhaseStart:
		return fmt.Sprintf("The %s battle begins!", e.Detail)
	case EventPhaseCleared:
		return "You defeated all enemies!"
	case EventRestored:
		return fmt.Sprintf("You are fully healed and restored for the %s battle...", e.Detail)
	case EventVictory:
		return "You have vanquished every foe. Victory!"
	case EventDefeat:
		return "You were defeated!"
	default:
		return e.Detail
	}
}

// Notifier receives combat events.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(Event)

// Notify calls f(ev).
func (f NotifierFunc) Notify(ev Event) { f(ev) }

// Discard is a Notifier that drops every event.
var Discard Notifier = NotifierFunc(func(Event) {})

// Notifiers fans each event out to every member in order.
type Notifiers []Notifier

// Notify forwards ev to every non-nil member.
func (ns Notifiers) Notify(ev Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ev)
		}
	}
}

// Recorder is a Notifier that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Notify appends ev.
func (r *Recorder) Notify(ev Event) { r.Events = append(r.Events, ev) }

// OfType returns the recorded events of type t, in order.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// LogNotifier returns a Notifier that logs every event at debug level.
//
// Precondition: logger must be non-nil.
func LogNotifier(logger *zap.Logger) Notifier {
	return NotifierFunc(func(ev Event) {
		logger.Debug("combat event",
			zap.Stringer("type", ev.Type),
			zap.String("actor", ev.Actor),
			zap.String("target", ev.Target),
			zap.Stringer("element", ev.Element),
			zap.Int("amount", ev.Amount),
			zap.Int("hp", ev.HP),
			zap.String("detail", ev.Detail),
		)
	})
}
