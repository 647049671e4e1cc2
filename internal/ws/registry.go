package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client represents one viewer connection. Frames are queued on a buffered
// channel drained by the connection's write pump; a full queue closes the
// client rather than blocking the broadcast loop behind it.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// NewClient creates a client for an accepted connection.
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, 8),
	}
}

// ID returns the connection identifier used in logs.
func (c *Client) ID() string {
	return c.id
}

// Conn returns the underlying WebSocket connection.
func (c *Client) Conn() *websocket.Conn {
	return c.conn
}

// SendChan returns the outbound frame queue.
func (c *Client) SendChan() <-chan []byte {
	return c.send
}

// Send queues a frame for delivery. It reports whether the frame was
// accepted; a closed client or a full queue counts as a send failure.
func (c *Client) Send(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- frame:
		return true
	default:
		c.closeLocked()
		return false
	}
}

// Close closes the client's outbound queue. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

func (c *Client) closeLocked() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// IsClosed returns true if the client is closed.
func (c *Client) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Registry tracks the set of live viewer connections. Membership is the
// sole signal a broadcast loop uses to decide whether to keep running, so
// all mutations are guarded against concurrent loops and accept/disconnect
// events.
type Registry struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[*Client]bool),
	}
}

// Register adds a client to the live set.
func (r *Registry) Register(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client] = true
}

// Unregister removes a client from the live set and closes it. It is
// idempotent; calling it multiple times or from concurrent goroutines for
// the same client is safe.
func (r *Registry) Unregister(client *Client) {
	r.mu.Lock()
	delete(r.clients, client)
	r.mu.Unlock()

	client.Close()
}

// IsLive reports whether the client is still in the live set.
func (r *Registry) IsLive(client *Client) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[client]
}

// Count returns the number of live connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close removes and closes every client.
func (r *Registry) Close() {
	r.mu.Lock()
	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.clients = make(map[*Client]bool)
	r.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}
