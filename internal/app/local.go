package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/diegok/pongduel/internal/game"
	"github.com/diegok/pongduel/internal/protocol"
	"github.com/diegok/pongduel/internal/server"
	"github.com/diegok/pongduel/internal/ui"
)

// broadcaster receives every frame of a local match
type broadcaster interface {
	Broadcast(msg *protocol.Message) error
}

// match drives a local simulation and mirrors it to the screen and spectators.
type match struct {
	sim   *game.Simulation
	scene *ui.Scene
	board *ui.ScoreBoard
	out   broadcaster
	log   *slog.Logger
}

func newMatch(sound game.SoundPlayer, out broadcaster, logger *slog.Logger) *match {
	m := &match{
		scene: ui.NewScene(),
		board: &ui.ScoreBoard{},
		out:   out,
		log:   logger,
	}
	m.sim = game.NewSimulation(game.Hooks{
		Scene:  m.scene,
		Sound:  sound,
		Scores: m.board,
		Logger: logger,
	})
	return m
}

// step advances the simulation one tick and publishes the result
func (m *match) step(in game.Input, dt float64) {
	before := m.sim.Score
	m.sim.Step(in, dt)

	if m.out == nil {
		return
	}

	if m.sim.Score != before {
		scorer := game.Player1
		if m.sim.Score.Player2 != before.Player2 {
			scorer = game.Player2
		}
		m.publish(&protocol.Message{
			Type: protocol.MsgGoal,
			Payload: protocol.Goal{
				Tick:   m.sim.Tick,
				Scorer: int(scorer),
				Score:  m.sim.Score.Of(scorer),
			},
		})
	}

	m.publish(&protocol.Message{Type: protocol.MsgSnapshot, Payload: m.sim.Snapshot()})
}

func (m *match) publish(msg *protocol.Message) {
	if err := m.out.Broadcast(msg); err != nil {
		m.log.Warn("broadcast failed", "type", msg.Type, "error", err)
	}
}

// status is the text shown in the bottom bar
func (m *match) status(spectators int) string {
	state := "rally"
	if m.sim.Ball().Docked() {
		state = fmt.Sprintf("%s to serve", m.sim.Turn.Owner())
	}
	text := fmt.Sprintf(" Tick: %d | %s", m.sim.Tick, state)
	if spectators >= 0 {
		text += fmt.Sprintf(" | Spectators: %d", spectators)
	}
	return text + " | q quits"
}

// runLocal plays a two-player match on this terminal.
func (a *App) runLocal() error {
	keys, err := ui.NewKeyState(a.cfg.Keys, a.cfg.HoldWindow())
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	var out broadcaster
	if a.cfg.SpectateAddr != "" {
		a.hub = server.NewHub(a.cfg.SpectateAddr, a.log)
		if err := a.hub.Start(); err != nil {
			return err
		}
		out = a.hub
	}

	m := newMatch(a.sound(), out, a.log)
	a.log.Info("match started", "tick_rate", a.cfg.TickRate, "spectate", a.cfg.SpectateAddr)

	events := a.pollEvents()

	interval := a.cfg.TickInterval()
	dt := interval.Seconds()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	render := time.NewTicker(renderInterval)
	defer render.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev, keys) {
				a.log.Info("match ended", "tick", m.sim.Tick,
					"player1", m.sim.Score.Player1, "player2", m.sim.Score.Player2)
				return nil
			}

		case <-ticker.C:
			m.step(keys, dt)

		case <-render.C:
			spectators := -1
			if a.hub != nil {
				spectators = a.hub.Count()
			}
			a.renderer.RenderMatch(m.scene.Sprites(), m.board, m.status(spectators))
		}
	}
}
