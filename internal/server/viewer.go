package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBufferSize = 64
	writeWait      = 2 * time.Second
)

// Viewer is a connected spectator
type Viewer struct {
	ID     string
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
	mu     sync.Mutex
}

// NewViewer wraps an upgraded websocket connection
func NewViewer(conn *websocket.Conn) *Viewer {
	return &Viewer{
		ID:     uuid.NewString(),
		conn:   conn,
		sendCh: make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// StartWriter starts the goroutine that writes frames to the connection.
// The viewer is closed when a write fails.
func (v *Viewer) StartWriter() {
	go func() {
		defer v.Close()
		for {
			select {
			case <-v.done:
				return
			case frame := <-v.sendCh:
				v.conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := v.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
					return
				}
			}
		}
	}()
}

// Send queues a frame (non-blocking). It returns false if the frame was dropped.
func (v *Viewer) Send(frame []byte) bool {
	select {
	case <-v.done:
		return false
	default:
	}

	select {
	case v.sendCh <- frame:
		return true
	default:
		// Slow viewer, drop frame
		return false
	}
}

// Done is closed once the viewer is closed
func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

// Close closes the viewer connection
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	select {
	case <-v.done:
		return
	default:
		close(v.done)
	}

	if v.conn != nil {
		v.conn.Close()
	}
}
