package game

import "github.com/google/uuid"

const ballMaxY = ArenaHeight/2 - BallSize/2

// Ball is docked at a paddle until it is fired, then flies until it reaches a goal.
type Ball struct {
	Pos      Vec2
	Velocity Vec2
	Fired    bool
	// Owner is the player the ball was spawned for. Gameplay never reads it.
	Owner Player

	handle uuid.UUID
}

// NewBall creates a docked ball waiting off screen. server is the player whose
// paddle will hold it; the serve travels toward the opponent.
func NewBall(owner, server Player) *Ball {
	return &Ball{
		Pos:      Offscreen,
		Velocity: Vec2{X: server.Away() * InitialBallSpeed},
		Owner:    owner,
	}
}

// Docked reports whether the ball is still waiting to be served.
func (b *Ball) Docked() bool {
	return !b.Fired
}

// Dock snaps a waiting ball to the paddle face.
func (b *Ball) Dock(p *Paddle) {
	b.Pos = p.DockPoint()
}

// Launch fires a docked ball. It returns false if the ball was already in flight.
func (b *Ball) Launch() bool {
	if b.Fired {
		return false
	}
	b.Fired = true
	return true
}

// Integrate advances the ball by one explicit Euler step.
func (b *Ball) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Velocity.Scale(dt))
}

// ResolveWalls reflects the ball off the top and bottom of the arena.
// It returns true if a wall was hit.
func (b *Ball) ResolveWalls() bool {
	switch {
	case b.Pos.Y > ballMaxY:
		b.Pos.Y = ballMaxY
	case b.Pos.Y < -ballMaxY:
		b.Pos.Y = -ballMaxY
	default:
		return false
	}
	b.Velocity.Y = -b.Velocity.Y
	return true
}

// HitsPaddle reports whether the ball overlaps the paddle while travelling toward it.
func (b *Ball) HitsPaddle(p *Paddle) bool {
	if !b.Bounds().Overlaps(p.Bounds()) {
		return false
	}
	// Moving away means the bounce already happened on an earlier tick.
	return b.Velocity.X*p.Player.Away() <= 0
}

// BounceOff reverses the ball off a paddle, speeds it up, and adds spin from the
// paddle's own movement.
func (b *Ball) BounceOff(p *Paddle) {
	b.Velocity.X = -b.Velocity.X + p.Player.Away()*SpeedIncrement

	adjust := BounceFactor * p.Speed
	switch {
	case p.VelocityY > 0:
		b.Velocity.Y += adjust
	case p.VelocityY < 0:
		b.Velocity.Y -= adjust
	}
}

func (b *Ball) Bounds() Rect {
	return Rect{Center: b.Pos, W: BallSize, H: BallSize}
}
