package game

// TurnTracker remembers which paddle hosts the ball waiting to be served.
type TurnTracker struct {
	owner Player
}

func NewTurnTracker(first Player) *TurnTracker {
	return &TurnTracker{owner: first}
}

// Owner is the player whose paddle holds the docked ball.
func (t *TurnTracker) Owner() Player {
	return t.owner
}

// Next hands the serve to the opponent of the current owner and returns the new owner.
func (t *TurnTracker) Next() Player {
	t.owner = t.owner.Opponent()
	return t.owner
}
