// Package encounter drives rounds of combat between the player and an enemy
// roster across the phases of a campaign.
package encounter

import (
	"sort"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/npc"
)

// Participant is one entry in a round's turn order. The set of
// implementations is closed: PlayerTurn and EnemyTurn.
type Participant interface {
	// Speed returns the participant's speed at the time the order was built.
	Speed() int
	// Alive reports whether the participant can still act.
	Alive() bool
	// Name returns the participant's display name.
	Name() string
	participant()
}

// PlayerTurn is the player's slot in the turn order.
type PlayerTurn struct {
	Player *character.Player
}

func (p PlayerTurn) Speed() int   { return p.Player.Speed }
func (p PlayerTurn) Alive() bool  { return p.Player.IsAlive() }
func (p PlayerTurn) Name() string { return p.Player.Name }
func (PlayerTurn) participant()   {}

// EnemyTurn is one enemy's slot in the turn order.
type EnemyTurn struct {
	Enemy *npc.Instance
}

func (e EnemyTurn) Speed() int   { return e.Enemy.Speed }
func (e EnemyTurn) Alive() bool  { return e.Enemy.IsAlive() }
func (e EnemyTurn) Name() string { return e.Enemy.Name }
func (EnemyTurn) participant()   {}

// TurnOrder returns the player followed by every living enemy, stably sorted
// by descending speed.
//
// Postcondition: Ties keep the player ahead of enemies and enemies in roster order.
func TurnOrder(player *character.Player, roster []*npc.Instance) []Participant {
	order := make([]Participant, 0, len(roster)+1)
	order = append(order, PlayerTurn{Player: player})
	for _, e := range roster {
		if e.IsAlive() {
			order = append(order, EnemyTurn{Enemy: e})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Speed() > order[j].Speed()
	})
	return order
}
