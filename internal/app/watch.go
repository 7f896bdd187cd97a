package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diegok/pongduel/internal/client"
	"github.com/diegok/pongduel/internal/game"
	"github.com/diegok/pongduel/internal/protocol"
	"github.com/diegok/pongduel/internal/ui"
)

// mirror rebuilds a renderable scene from received snapshots
type mirror struct {
	scene   *ui.Scene
	board   *ui.ScoreBoard
	paddles [2]uuid.UUID
	ball    uuid.UUID
	last    protocol.Snapshot
	seen    bool
}

func newMirror() *mirror {
	m := &mirror{scene: ui.NewScene(), board: &ui.ScoreBoard{}}

	for _, mk := range game.Markings() {
		m.scene.Spawn(mk.Visual, mk.Pos)
	}
	for _, p := range game.Players {
		m.paddles[p] = m.scene.Spawn(game.Visual{Kind: game.VisualPaddle, W: game.PaddleWidth, H: game.PaddleHeight}, game.NewPaddle(p).Pos)
	}
	m.ball = m.scene.Spawn(game.Visual{Kind: game.VisualBall, W: game.BallSize, H: game.BallSize}, game.Offscreen)
	return m
}

// apply moves every sprite to the snapshot's positions and returns the
// sounds a local player would have heard since the previous snapshot
func (m *mirror) apply(snap protocol.Snapshot) []game.Sound {
	var sounds []game.Sound
	if m.seen {
		sounds = detectSoundEvents(m.last, snap)
	}
	m.last = snap
	m.seen = true

	for _, ps := range snap.Paddles {
		if ps.Player < 0 || ps.Player >= len(m.paddles) {
			continue
		}
		m.scene.Place(m.paddles[ps.Player], game.Vec2{X: ps.X, Y: ps.Y})
	}
	m.scene.Place(m.ball, game.Vec2{X: snap.Ball.X, Y: snap.Ball.Y})
	m.board.UpdateScore(game.Player1, snap.Player1Score)
	m.board.UpdateScore(game.Player2, snap.Player2Score)
	return sounds
}

// detectSoundEvents compares consecutive snapshots to recover sound effects
func detectSoundEvents(prev, cur protocol.Snapshot) []game.Sound {
	// A goal respawns the ball, so velocity changes mean nothing on that tick
	if cur.Player1Score > prev.Player1Score || cur.Player2Score > prev.Player2Score {
		return []game.Sound{game.SoundWin}
	}

	if !prev.Ball.Fired || !cur.Ball.Fired {
		return nil
	}

	// Paddle hit: horizontal velocity reversed
	if (prev.Ball.VX > 0 && cur.Ball.VX < 0) || (prev.Ball.VX < 0 && cur.Ball.VX > 0) {
		return []game.Sound{game.SoundBounce}
	}

	// Wall bounce: vertical velocity reversed
	if (prev.Ball.VY > 0 && cur.Ball.VY < 0) || (prev.Ball.VY < 0 && cur.Ball.VY > 0) {
		return []game.Sound{game.SoundHit}
	}
	return nil
}

func (m *mirror) status(target string) string {
	if !m.seen {
		return fmt.Sprintf(" Watching %s | waiting for the match | q quits", target)
	}
	return fmt.Sprintf(" Watching %s | Tick: %d | q quits", target, m.last.Tick)
}

// runWatch follows a match served by another pongduel instance.
func (a *App) runWatch(url string) error {
	a.renderer.RenderConnecting(url)

	events := a.pollEvents()

	a.client = client.NewClient()
	if err := a.client.Connect(url); err != nil {
		a.showError(err, events)
		return err
	}
	a.log.Info("watching match", "url", url)

	var sound game.SoundPlayer = nopSound{}
	if s := a.sound(); s != nil {
		sound = s
	}

	m := newMirror()
	render := time.NewTicker(renderInterval)
	defer render.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev, nil) {
				return nil
			}

		case snap := <-a.client.Snapshots:
			for _, s := range m.apply(snap) {
				sound.PlaySound(s)
			}

		case goal := <-a.client.Goals:
			a.log.Info("goal", "scorer", game.Player(goal.Scorer), "score", goal.Score, "tick", goal.Tick)

		case err := <-a.client.Error:
			a.showError(err, events)
			return err

		case <-render.C:
			a.renderer.RenderMatch(m.scene.Sprites(), m.board, m.status(url))
		}
	}
}

type nopSound struct{}

func (nopSound) PlaySound(game.Sound) {}
