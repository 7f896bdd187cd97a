package ui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/diegok/pongduel/internal/game"
)

// Sprite is one drawable entity in arena coordinates
type Sprite struct {
	Handle uuid.UUID
	Visual game.Visual
	Pos    game.Vec2
}

// Bounds returns the sprite's rectangle in arena units
func (s Sprite) Bounds() game.Rect {
	return game.Rect{Center: s.Pos, W: s.Visual.W, H: s.Visual.H}
}

// Scene keeps the sprites the simulation spawned, in spawn order.
// It is not safe for concurrent use; the app drives it from its main loop.
type Scene struct {
	sprites map[uuid.UUID]*Sprite
	order   []uuid.UUID
}

func NewScene() *Scene {
	return &Scene{sprites: make(map[uuid.UUID]*Sprite)}
}

func (s *Scene) Spawn(v game.Visual, pos game.Vec2) uuid.UUID {
	h := uuid.New()
	s.sprites[h] = &Sprite{Handle: h, Visual: v, Pos: pos}
	s.order = append(s.order, h)
	return h
}

// Place moves a sprite. Unknown handles are ignored.
func (s *Scene) Place(h uuid.UUID, pos game.Vec2) {
	if sp, ok := s.sprites[h]; ok {
		sp.Pos = pos
	}
}

func (s *Scene) Despawn(h uuid.UUID) {
	if _, ok := s.sprites[h]; !ok {
		return
	}
	delete(s.sprites, h)
	for i, id := range s.order {
		if id == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Sprites returns a copy of all live sprites in spawn order
func (s *Scene) Sprites() []Sprite {
	out := make([]Sprite, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, *s.sprites[h])
	}
	return out
}

func (s *Scene) Len() int {
	return len(s.order)
}

// ScoreBoard shows both scores as two-digit numbers
type ScoreBoard struct {
	scores [2]uint32
}

func (b *ScoreBoard) UpdateScore(p game.Player, value uint32) {
	b.scores[p] = value
}

// Label returns the displayed text for one player's score
func (b *ScoreBoard) Label(p game.Player) string {
	return fmt.Sprintf("%02d", b.scores[p])
}
