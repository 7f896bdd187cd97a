package game

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Sound names a sound effect requested by the simulation.
type Sound string

const (
	SoundBounce Sound = "bounce" // Ball hit a paddle
	SoundHit    Sound = "hit"    // Ball hit a wall
	SoundWin    Sound = "win"    // Goal
)

// VisualKind tells the scene how to draw an entity.
type VisualKind int

const (
	VisualPaddle VisualKind = iota
	VisualBall
	VisualGoal // Invisible zone
	VisualMarking
)

type Visual struct {
	Kind VisualKind
	W, H float64
}

// Scene materializes entities for display. Handles are opaque to the simulation.
type Scene interface {
	Spawn(v Visual, pos Vec2) uuid.UUID
	Place(h uuid.UUID, pos Vec2)
	Despawn(h uuid.UUID)
}

// SoundPlayer plays sound effects without blocking.
type SoundPlayer interface {
	PlaySound(s Sound)
}

// ScoreDisplay receives every score change.
type ScoreDisplay interface {
	UpdateScore(p Player, value uint32)
}

// Input is polled once per tick for each player.
type Input interface {
	Direction(p Player) Direction
	Launch(p Player) bool
}

// Hooks wires the simulation to its collaborators. Nil fields are replaced by no-ops.
type Hooks struct {
	Scene  Scene
	Sound  SoundPlayer
	Scores ScoreDisplay
	Logger *slog.Logger
}

func (h Hooks) withDefaults() Hooks {
	if h.Scene == nil {
		h.Scene = nopScene{}
	}
	if h.Sound == nil {
		h.Sound = nopSound{}
	}
	if h.Scores == nil {
		h.Scores = nopScores{}
	}
	if h.Logger == nil {
		h.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return h
}

type nopScene struct{}

func (nopScene) Spawn(Visual, Vec2) uuid.UUID { return uuid.New() }
func (nopScene) Place(uuid.UUID, Vec2)        {}
func (nopScene) Despawn(uuid.UUID)            {}

type nopSound struct{}

func (nopSound) PlaySound(Sound) {}

type nopScores struct{}

func (nopScores) UpdateScore(Player, uint32) {}

// FrameInput is a fixed input sample, useful for replays and tests.
type FrameInput struct {
	Dirs [2]Direction
	Fire [2]bool
}

func (f FrameInput) Direction(p Player) Direction {
	return f.Dirs[p]
}

func (f FrameInput) Launch(p Player) bool {
	return f.Fire[p]
}
