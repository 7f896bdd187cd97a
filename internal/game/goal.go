package game

import "github.com/google/uuid"

// Goal is the zone behind a player's paddle. A ball entering it scores for the opponent.
type Goal struct {
	Owner  Player
	Bounds Rect

	handle uuid.UUID
}

// NewGoal places the goal zone beyond the arena edge on the owner's side.
func NewGoal(owner Player) Goal {
	x := -owner.Away() * (ArenaWidth/2 + GoalWidth*2)
	return Goal{
		Owner:  owner,
		Bounds: Rect{Center: Vec2{X: x}, W: GoalWidth, H: ArenaHeight},
	}
}

// Scorer is the player credited when the ball enters this goal.
func (g Goal) Scorer() Player {
	return g.Owner.Opponent()
}

// Score holds the points of both players.
type Score struct {
	Player1 uint32
	Player2 uint32
}

// Add credits one point and returns the new total for that player.
func (s *Score) Add(p Player) uint32 {
	if p == Player1 {
		s.Player1++
		return s.Player1
	}
	s.Player2++
	return s.Player2
}

func (s Score) Of(p Player) uint32 {
	if p == Player1 {
		return s.Player1
	}
	return s.Player2
}
