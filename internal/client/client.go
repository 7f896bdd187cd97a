package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/diegok/pongduel/internal/protocol"
)

const (
	channelBufferSize = 16
	connectTimeout    = 5 * time.Second
)

// Client watches a match streamed by a spectator hub.
type Client struct {
	conn      *websocket.Conn
	mu        sync.Mutex
	connected bool
	Snapshots chan protocol.Snapshot
	Goals     chan protocol.Goal
	Error     chan error
	done      chan struct{}
}

// NewClient creates a new, unconnected client.
func NewClient() *Client {
	return &Client{
		Snapshots: make(chan protocol.Snapshot, channelBufferSize),
		Goals:     make(chan protocol.Goal, channelBufferSize),
		Error:     make(chan error, channelBufferSize),
		done:      make(chan struct{}),
	}
}

// Connect dials the hub at the given websocket URL and starts receiving frames.
func (c *Client) Connect(url string) error {
	dialer := websocket.Dialer{HandshakeTimeout: connectTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.receiveLoop()

	return nil
}

// Close closes the connection to the hub.
func (c *Client) Close() {
	c.mu.Lock()
	wasConnected := c.connected
	c.connected = false
	c.mu.Unlock()

	if wasConnected {
		close(c.done)
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.conn.Close()
	}
}

// IsConnected returns true if the client is connected to the hub.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// receiveLoop continuously reads frames from the hub and dispatches them.
func (c *Client) receiveLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}()

	for {
		msgType, frame, err := c.conn.ReadMessage()
		if err != nil {
			c.fail(fmt.Errorf("receive error: %w", err))
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		msg, err := protocol.Unmarshal(frame)
		if err != nil {
			c.fail(err)
			return
		}
		c.dispatchMessage(msg)
	}
}

func (c *Client) fail(err error) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.Error <- err:
	default:
		// Drop error if channel is full
	}
}

// dispatchMessage routes a message to the appropriate channel.
func (c *Client) dispatchMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgSnapshot:
		if snap, ok := msg.Payload.(protocol.Snapshot); ok {
			select {
			case c.Snapshots <- snap:
			default:
				// Drop the oldest snapshot; only the latest matters
				select {
				case <-c.Snapshots:
				default:
				}
				c.Snapshots <- snap
			}
		}

	case protocol.MsgGoal:
		if goal, ok := msg.Payload.(protocol.Goal); ok {
			select {
			case c.Goals <- goal:
			default:
				// Goals are also visible in the next snapshot
			}
		}
	}
}
