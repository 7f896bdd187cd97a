package game

import "github.com/diegok/pongduel/internal/protocol"

// Snapshot converts the simulation to its network-serializable form.
func (s *Simulation) Snapshot() protocol.Snapshot {
	ball := s.Ball()

	paddles := make([]protocol.PaddleState, len(s.Paddles))
	for i, p := range s.Paddles {
		paddles[i] = protocol.PaddleState{
			Player:    int(p.Player),
			X:         p.Pos.X,
			Y:         p.Pos.Y,
			VelocityY: p.VelocityY,
		}
	}

	return protocol.Snapshot{
		Tick: s.Tick,
		Ball: protocol.BallState{
			X:     ball.Pos.X,
			Y:     ball.Pos.Y,
			VX:    ball.Velocity.X,
			VY:    ball.Velocity.Y,
			Fired: ball.Fired,
			Owner: int(ball.Owner),
		},
		Paddles:      paddles,
		Player1Score: s.Score.Player1,
		Player2Score: s.Score.Player2,
		Server:       int(s.Turn.Owner()),
	}
}
