package encounter

// State is the outcome of an encounter or campaign at a point in time.
type State int

const (
	// Active means both sides still have living combatants.
	Active State = iota
	// PlayerDefeated means the player died. Terminal.
	PlayerDefeated
	// EnemiesCleared means every enemy in the current phase is dead.
	EnemiesCleared
	// FinalVictory means the last phase was cleared. Terminal.
	FinalVictory
)

// String returns the snake_case name of the state.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case PlayerDefeated:
		return "player_defeated"
	case EnemiesCleared:
		return "enemies_cleared"
	case FinalVictory:
		return "final_victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further play is possible.
func (s State) Terminal() bool {
	return s == PlayerDefeated || s == FinalVictory
}
