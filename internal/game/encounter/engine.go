package encounter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/element"
	"github.com/cory-johannsen/arena/internal/game/npc"
)

// Player action menu selections.
const (
	ActionAttack = 1
	ActionSpell  = 2
	ActionItem   = 3
)

// spellLabels are the spell menu entries, in element.Spells order.
var spellLabels = []string{"Fireball", "Flood", "Quake", "Tempest"}

// Encounter is the live state of one phase.
//
// Invariant: Roster is replaced wholesale between phases and never appended to.
type Encounter struct {
	Player *character.Player
	Phase  string
	Round  int
	Roster []*npc.Instance
	State  State
}

// enemyCombatants returns the roster as combatants, in roster order.
func (enc *Encounter) enemyCombatants() []*combat.Combatant {
	out := make([]*combat.Combatant, len(enc.Roster))
	for i, e := range enc.Roster {
		out[i] = &e.Combatant
	}
	return out
}

// evaluate recomputes State from the vitals of both sides.
func (enc *Encounter) evaluate() State {
	switch {
	case !enc.Player.IsAlive():
		enc.State = PlayerDefeated
	case enc.allEnemiesDead():
		enc.State = EnemiesCleared
	default:
		enc.State = Active
	}
	return enc.State
}

func (enc *Encounter) allEnemiesDead() bool {
	for _, e := range enc.Roster {
		if e.IsAlive() {
			return false
		}
	}
	return true
}

// Engine runs encounters and campaigns.
type Engine struct {
	registry *npc.Registry
	prompter Prompter
	src      dice.Source
	notifier combat.Notifier
	logger   *zap.Logger
}

// NewEngine creates an Engine.
//
// Precondition: registry, prompter, src and logger must be non-nil; a nil
// notifier discards events.
func NewEngine(registry *npc.Registry, prompter Prompter, src dice.Source, notifier combat.Notifier, logger *zap.Logger) *Engine {
	if notifier == nil {
		notifier = combat.Discard
	}
	return &Engine{
		registry: registry,
		prompter: prompter,
		src:      src,
		notifier: notifier,
		logger:   logger,
	}
}

// Start spawns the roster for phase and returns a fresh Encounter.
//
// Postcondition: every spawned enemy reports to the engine's notifier.
func (e *Engine) Start(player *character.Player, phase Phase) (*Encounter, error) {
	roster, err := e.registry.SpawnAll(phase.Enemies)
	if err != nil {
		return nil, fmt.Errorf("starting %s phase: %w", phase.Name, err)
	}
	for _, inst := range roster {
		inst.SetNotifier(e.notifier)
	}
	enc := &Encounter{Player: player, Phase: phase.Name, Roster: roster}
	enc.evaluate()
	return enc, nil
}

// Run plays every phase of campaign in order with player.
//
// Precondition: player must be alive; campaign must be valid.
// Postcondition: Returns FinalVictory or PlayerDefeated with a nil error, or
// Active with the error that stopped play (prompter failure, cancelled ctx,
// spawn failure).
func (e *Engine) Run(ctx context.Context, player *character.Player, campaign *Campaign) (State, error) {
	if err := campaign.Validate(); err != nil {
		return Active, err
	}
	player.SetNotifier(e.notifier)

	for i, phase := range campaign.Phases {
		enc, err := e.Start(player, phase)
		if err != nil {
			return Active, err
		}
		e.logger.Info("phase started",
			zap.String("phase", phase.Name),
			zap.Int("enemies", len(enc.Roster)),
		)
		e.notifier.Notify(combat.Event{Type: combat.EventPhaseStart, Detail: phase.Name})

		state, err := e.RunPhase(ctx, enc)
		if err != nil {
			return Active, err
		}
		if state == PlayerDefeated {
			e.logger.Info("player defeated", zap.String("phase", phase.Name), zap.Int("rounds", enc.Round))
			e.notifier.Notify(combat.Event{Type: combat.EventDefeat, Actor: player.Name})
			return PlayerDefeated, nil
		}

		e.logger.Info("phase cleared", zap.String("phase", phase.Name), zap.Int("rounds", enc.Round))
		e.notifier.Notify(combat.Event{Type: combat.EventPhaseCleared, Detail: phase.Name})
		if i == len(campaign.Phases)-1 {
			e.notifier.Notify(combat.Event{Type: combat.EventVictory, Actor: player.Name})
			return FinalVictory, nil
		}

		player.HealFull()
		e.notifier.Notify(combat.Event{
			Type:   combat.EventRestored,
			Actor:  player.Name,
			HP:     player.CurrentHP,
			MaxHP:  player.MaxHP,
			MP:     player.CurrentMP,
			MaxMP:  player.MaxMP,
			Detail: campaign.Phases[i+1].Name,
		})
	}
	return Active, fmt.Errorf("campaign ended without a result")
}

// RunPhase plays rounds until the encounter leaves the Active state.
//
// Postcondition: Returns PlayerDefeated or EnemiesCleared, or an error.
func (e *Engine) RunPhase(ctx context.Context, enc *Encounter) (State, error) {
	for enc.evaluate() == Active {
		if err := e.PlayRound(ctx, enc); err != nil {
			return enc.State, err
		}
	}
	return enc.State, nil
}

// PlayRound plays one round: each participant acts once in speed order,
// rewards are paid after every action, and the round ends early as soon as
// either side is wiped out. The context is checked between actions.
//
// Postcondition: enc.State reflects the vitals at the end of the round.
func (e *Engine) PlayRound(ctx context.Context, enc *Encounter) error {
	enc.Round++
	order := TurnOrder(enc.Player, enc.Roster)
	e.logger.Debug("round started",
		zap.String("phase", enc.Phase),
		zap.Int("round", enc.Round),
		zap.Int("participants", len(order)),
	)

	for _, p := range order {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !p.Alive() {
			continue
		}

		switch turn := p.(type) {
		case PlayerTurn:
			if err := e.playerTurn(ctx, enc); err != nil {
				return err
			}
		case EnemyTurn:
			d := turn.Enemy.TakeTurn(&enc.Player.Combatant, e.src)
			e.logger.Debug("enemy acted",
				zap.String("enemy", turn.Enemy.Name),
				zap.Stringer("action", d.Action),
				zap.Stringer("element", d.Element),
			)
		}

		e.grantRewards(enc)
		if enc.evaluate() != Active {
			return nil
		}
	}
	return nil
}

// grantRewards pays out the reward of every enemy that died since the last call.
func (e *Engine) grantRewards(enc *Encounter) {
	for _, inst := range enc.Roster {
		exp, ok := inst.ClaimReward()
		if !ok {
			continue
		}
		e.logger.Debug("reward granted", zap.String("enemy", inst.Name), zap.Int("exp", exp))
		enc.Player.GainExperience(exp)
	}
}

// playerTurn prompts for and resolves one player action. Invalid selections
// emit EventInvalid and forfeit the turn.
func (e *Engine) playerTurn(ctx context.Context, enc *Encounter) error {
	p := enc.Player
	e.notifier.Notify(p.Status())

	choice, err := e.prompter.Choose(ctx, Prompt{
		Title: "Choose an action:",
		Options: []Option{
			{Number: ActionAttack, Label: "Strength Attack"},
			{Number: ActionSpell, Label: "Cast Spell"},
			{Number: ActionItem, Label: "Use Item"},
		},
	})
	if err != nil {
		return fmt.Errorf("choosing action: %w", err)
	}
	e.logger.Debug("player action", zap.String("player", p.Name), zap.Int("choice", choice))

	switch choice {
	case ActionAttack:
		target, err := e.chooseTarget(ctx, enc)
		if err != nil || target == nil {
			return err
		}
		p.Attack(&target.Combatant)
	case ActionSpell:
		elem, err := e.chooseSpell(ctx)
		if err != nil || elem == element.None {
			return err
		}
		if p.MultiTargetUnlocked() {
			// Insufficient mana is reported by CastMultiSpell and forfeits the turn.
			_ = p.CastMultiSpell(enc.enemyCombatants(), elem)
			return nil
		}
		target, err := e.chooseTarget(ctx, enc)
		if err != nil || target == nil {
			return err
		}
		_ = p.CastSpell(&target.Combatant, elem)
	case ActionItem:
		sel, err := e.prompter.Choose(ctx, Prompt{
			Title: "Items:",
			Options: []Option{
				{Number: character.ItemHealingPotion, Label: fmt.Sprintf("Healing Potion (%d left)", p.HealingPotions)},
				{Number: character.ItemManaPotion, Label: fmt.Sprintf("Mana Potion (%d left)", p.ManaPotions)},
			},
		})
		if err != nil {
			return fmt.Errorf("choosing item: %w", err)
		}
		_ = p.UseItem(sel)
	default:
		e.invalid(p.Name, "Invalid action.")
	}
	return nil
}

// chooseSpell prompts for a spell element. Returns element.None after
// reporting an invalid selection.
func (e *Engine) chooseSpell(ctx context.Context) (element.Element, error) {
	opts := make([]Option, len(spellLabels))
	for i, label := range spellLabels {
		opts[i] = Option{Number: i + 1, Label: label}
	}
	choice, err := e.prompter.Choose(ctx, Prompt{Title: "Choose spell type:", Options: opts})
	if err != nil {
		return element.None, fmt.Errorf("choosing spell: %w", err)
	}
	elem, ok := element.FromChoice(choice)
	if !ok {
		e.invalid("", "Invalid spell.")
		return element.None, nil
	}
	return elem, nil
}

// chooseTarget prompts for a living enemy by its 1-based roster position.
// Returns nil after reporting an invalid selection.
func (e *Engine) chooseTarget(ctx context.Context, enc *Encounter) (*npc.Instance, error) {
	var opts []Option
	for i, inst := range enc.Roster {
		if inst.IsAlive() {
			opts = append(opts, Option{Number: i + 1, Label: inst.Name})
		}
	}
	choice, err := e.prompter.Choose(ctx, Prompt{Title: "Choose enemy to target:", Options: opts})
	if err != nil {
		return nil, fmt.Errorf("choosing target: %w", err)
	}
	if choice < 1 || choice > len(enc.Roster) || !enc.Roster[choice-1].IsAlive() {
		e.invalid("", "Invalid target.")
		return nil, nil
	}
	return enc.Roster[choice-1], nil
}

func (e *Engine) invalid(actor, msg string) {
	e.notifier.Notify(combat.Event{Type: combat.EventInvalid, Actor: actor, Detail: msg})
}
