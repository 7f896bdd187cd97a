package game

import "github.com/google/uuid"

const (
	paddleMaxY = ArenaHeight/2 - PaddleHeight/2
	paddleMinY = -paddleMaxY
)

// Direction is the held up/down state for one paddle.
type Direction struct {
	Up   bool
	Down bool
}

type Paddle struct {
	Player    Player
	Pos       Vec2 // X is fixed per side
	Speed     float64
	VelocityY float64 // Derived from the last move, units per second

	handle uuid.UUID
}

// NewPaddle creates a centered paddle on the player's side of the arena.
func NewPaddle(player Player) *Paddle {
	return &Paddle{
		Player: player,
		Pos:    Vec2{X: -player.Away() * PaddleX},
		Speed:  PaddleSpeed,
	}
}

// Move applies one tick of directional input and keeps the paddle inside the arena.
// VelocityY reflects the requested movement even when the clamp absorbs it.
func (p *Paddle) Move(dir Direction, dt float64) {
	if dt <= 0 {
		p.VelocityY = 0
		return
	}

	yDelta := 0.0
	if dir.Up {
		yDelta += p.Speed * dt
	}
	if dir.Down {
		yDelta -= p.Speed * dt
	}

	p.Pos.Y = Clamp(p.Pos.Y+yDelta, paddleMinY, paddleMaxY)
	p.VelocityY = yDelta / dt
}

func (p *Paddle) Bounds() Rect {
	return Rect{Center: p.Pos, W: PaddleWidth, H: PaddleHeight}
}

// DockPoint is where a ball waiting to be served rests against this paddle.
func (p *Paddle) DockPoint() Vec2 {
	away := p.Player.Away()
	return Vec2{X: p.Pos.X + away*DockOffsetX, Y: p.Pos.Y + away*DockOffsetY}
}

func (p *Paddle) TopY() float64 {
	return p.Pos.Y + PaddleHeight/2
}

func (p *Paddle) BottomY() float64 {
	return p.Pos.Y - PaddleHeight/2
}
