package protocol

import (
	"encoding/gob"
)

// MessageType identifies the type of network message
type MessageType int

const (
	MsgSnapshot MessageType = iota
	MsgGoal
)

// Message is the wrapper for all network messages
type Message struct {
	Type    MessageType
	Payload interface{}
}

// BallState represents the ball's position and velocity
type BallState struct {
	X     float64
	Y     float64
	VX    float64
	VY    float64
	Fired bool
	Owner int
}

// PaddleState represents a paddle's state
type PaddleState struct {
	Player    int
	X         float64
	Y         float64
	VelocityY float64
}

// Snapshot is the complete match state after one tick
type Snapshot struct {
	Tick         uint64
	Ball         BallState
	Paddles      []PaddleState
	Player1Score uint32
	Player2Score uint32
	Server       int // Player whose paddle holds the next serve
}

// Goal announces a point
type Goal struct {
	Tick   uint64
	Scorer int
	Score  uint32
}

func init() {
	// Register all payload types with gob for network serialization
	gob.Register(BallState{})
	gob.Register(PaddleState{})
	gob.Register(Snapshot{})
	gob.Register(Goal{})
}
