package game

import (
	"log/slog"
)

// Simulation owns the complete match state and advances it one tick at a time.
type Simulation struct {
	Paddles [2]*Paddle // Indexed by Player
	Goals   [2]Goal    // Indexed by Player
	Score   Score
	Turn    *TurnTracker
	Tick    uint64

	ball  *Ball
	hooks Hooks
	log   *slog.Logger
}

// NewSimulation builds the arena, both paddles and goals, and spawns the first ball.
func NewSimulation(hooks Hooks) *Simulation {
	h := hooks.withDefaults()
	s := &Simulation{
		Turn:  NewTurnTracker(Player1),
		hooks: h,
		log:   h.Logger,
	}

	s.spawnMarkings()

	for _, p := range Players {
		paddle := NewPaddle(p)
		paddle.handle = h.Scene.Spawn(Visual{Kind: VisualPaddle, W: PaddleWidth, H: PaddleHeight}, paddle.Pos)
		s.Paddles[p] = paddle

		goal := NewGoal(p)
		goal.handle = h.Scene.Spawn(Visual{Kind: VisualGoal, W: goal.Bounds.W, H: goal.Bounds.H}, goal.Bounds.Center)
		s.Goals[p] = goal

		h.Scores.UpdateScore(p, 0)
	}

	s.spawnBall()
	return s
}

// Ball returns the live ball. There is always exactly one after construction.
func (s *Simulation) Ball() *Ball {
	if s.ball == nil {
		panic("game: no live ball")
	}
	return s.ball
}

// Step runs one tick: input sampling, paddles, ball, goals, then scene sync.
func (s *Simulation) Step(in Input, dt float64) {
	s.Tick++

	frame := sample(in)
	s.movePaddles(frame, dt)
	s.updateBall(frame, dt)
	s.checkGoals()
	s.sync()
}

func sample(in Input) FrameInput {
	var f FrameInput
	for _, p := range Players {
		f.Dirs[p] = in.Direction(p)
		f.Fire[p] = in.Launch(p)
	}
	return f
}

func (s *Simulation) movePaddles(in FrameInput, dt float64) {
	for _, p := range s.Paddles {
		p.Move(in.Dirs[p.Player], dt)
	}
}

func (s *Simulation) updateBall(in FrameInput, dt float64) {
	ball := s.Ball()

	if ball.Docked() {
		server := s.Turn.Owner()
		for _, p := range s.Paddles {
			if p.Player == server {
				ball.Dock(p)
			}
		}
		if in.Fire[server] && ball.Launch() {
			s.log.Debug("ball launched", "player", server, "tick", s.Tick)
		}
		return
	}

	ball.Integrate(dt)

	if ball.ResolveWalls() {
		s.hooks.Sound.PlaySound(SoundHit)
	}

	for _, p := range s.Paddles {
		if ball.HitsPaddle(p) {
			ball.BounceOff(p)
			s.hooks.Sound.PlaySound(SoundBounce)
			break // One bounce per tick
		}
	}
}

func (s *Simulation) checkGoals() {
	ball := s.Ball()

	for _, g := range s.Goals {
		if !ball.Bounds().Overlaps(g.Bounds) {
			continue
		}

		scorer := g.Scorer()
		value := s.Score.Add(scorer)
		s.hooks.Scores.UpdateScore(scorer, value)
		s.hooks.Sound.PlaySound(SoundWin)
		s.log.Info("goal", "scorer", scorer, "score", value, "tick", s.Tick)

		s.hooks.Scene.Despawn(ball.handle)
		s.ball = nil
		s.spawnBall()
		return
	}
}

// spawnBall creates a docked ball for the next server and flips the turn.
func (s *Simulation) spawnBall() {
	server := s.Turn.Next()
	ball := NewBall(server, server)
	ball.handle = s.hooks.Scene.Spawn(Visual{Kind: VisualBall, W: BallSize, H: BallSize}, ball.Pos)
	s.ball = ball
}

func (s *Simulation) sync() {
	for _, p := range s.Paddles {
		s.hooks.Scene.Place(p.handle, p.Pos)
	}
	s.hooks.Scene.Place(s.ball.handle, s.ball.Pos)
}

func (s *Simulation) spawnMarkings() {
	for _, m := range Markings() {
		s.hooks.Scene.Spawn(m.Visual, m.Pos)
	}
}
