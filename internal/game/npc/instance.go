package npc

import (
	"strings"

	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/element"
)

// Instance is a live enemy in an encounter roster.
//
// Invariant: RewardGranted is set at most once and only after death.
type Instance struct {
	combat.Combatant

	// TemplateID is the source template's ID.
	TemplateID string
	// ExpReward is the experience granted to the player on death.
	ExpReward int
	// RewardGranted reports whether ExpReward has been paid out.
	RewardGranted bool
	// Policy picks the action for each turn.
	Policy ai.Policy
	// Signature is copied from the template; nil means none.
	Signature *ai.Signature
}

// NewInstance creates a live enemy from a template. An empty name or a None
// element keeps the template's value; a nil policy means ai.Standard.
//
// Precondition: tmpl must be non-nil and valid; speed must be non-negative.
// Postcondition: CurrentHP == tmpl.MaxHP and CurrentMP == tmpl.MaxMP.
func NewInstance(tmpl *Template, name string, elem element.Element, speed int, policy ai.Policy) *Instance {
	if name == "" {
		name = tmpl.Name
	}
	if elem == element.None {
		elem = tmpl.Element
	}
	if policy == nil {
		policy = ai.Standard{}
	}
	var sig *ai.Signature
	if tmpl.Signature != nil {
		s := *tmpl.Signature
		sig = &s
	}
	return &Instance{
		Combatant: combat.NewCombatant(combat.KindNPC, name, elem, combat.Stats{
			MaxHP:    tmpl.MaxHP,
			MaxMP:    tmpl.MaxMP,
			Defense:  tmpl.Defense,
			Strength: tmpl.Strength,
			Speed:    speed,
			Level:    tmpl.Level,
		}),
		TemplateID: tmpl.ID,
		ExpReward:  tmpl.ExpReward,
		Policy:     policy,
		Signature:  sig,
	}
}

// State returns the decision snapshot for this instance facing target.
func (i *Instance) State(target *combat.Combatant) ai.State {
	return ai.State{
		Self:      snapshot(&i.Combatant),
		Target:    snapshot(target),
		Signature: i.Signature,
	}
}

func snapshot(c *combat.Combatant) ai.CombatantState {
	return ai.CombatantState{
		ID:       c.ID,
		Name:     c.Name,
		Element:  c.Element,
		HP:       c.CurrentHP,
		MaxHP:    c.MaxHP,
		MP:       c.CurrentMP,
		MaxMP:    c.MaxMP,
		Strength: c.Strength,
	}
}

// TakeTurn asks the policy for a decision and carries it out against target.
// A signature decision without an affordable signature becomes an attack.
//
// Precondition: the instance and target must be alive.
// Postcondition: Returns the decision that was executed.
func (i *Instance) TakeTurn(target *combat.Combatant, src ai.Source) ai.Decision {
	d := i.Policy.Decide(i.State(target), src)
	switch d.Action {
	case ai.ActionSpell:
		// CastSpell reports insufficient mana itself; the turn is spent either way.
		_ = i.CastSpell(target, d.Element)
	case ai.ActionSignature:
		if i.Signature == nil || !i.CanAfford(i.Signature.Cost) {
			d = ai.Attack
			i.Attack(target)
			break
		}
		i.unleash(target)
	default:
		d = ai.Attack
		i.Attack(target)
	}
	return d
}

// unleash deals the signature's share of strength to target without any
// elemental multiplier, then pays its cost.
func (i *Instance) unleash(target *combat.Combatant) {
	sig := i.Signature
	i.Notifier().Notify(combat.Event{
		Type:    combat.EventSignature,
		Actor:   i.Name,
		Target:  target.Name,
		Element: sig.Element,
		Detail:  strings.ToUpper(sig.Name),
	})
	target.TakeDamage(sig.Damage(i.Strength))
	i.UseMana(sig.Cost)
}

// ClaimReward returns the experience reward the first time it is called after
// the instance dies.
//
// Postcondition: Returns (ExpReward, true) exactly once per death; (0, false)
// while alive or after the reward was claimed.
func (i *Instance) ClaimReward() (int, bool) {
	if i.IsAlive() || i.RewardGranted {
		return 0, false
	}
	i.RewardGranted = true
	return i.ExpReward, true
}
