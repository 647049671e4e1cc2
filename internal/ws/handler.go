package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/remote-browser-stream/backend/internal/buffer"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer. Viewers are not expected to
	// send anything; the read pump exists to notice disconnects.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: Implement proper origin checking in production
		return true
	},
}

// Handler accepts viewer connections and runs their pumps and broadcast
// loops.
type Handler struct {
	registry    *Registry
	broadcaster *Broadcaster
	cache       *buffer.FrameCache
}

// NewHandler creates a new streaming handler.
func NewHandler(registry *Registry, broadcaster *Broadcaster, cache *buffer.FrameCache) *Handler {
	return &Handler{
		registry:    registry,
		broadcaster: broadcaster,
		cache:       cache,
	}
}

// HandleConnection upgrades the HTTP request, registers the viewer and
// starts its frame loop. The loop runs until the viewer disconnects or its
// connection is removed from the registry.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := NewClient(conn)
	h.registry.Register(client)
	log.Printf("Viewer %s connected (%d active)", client.ID(), h.registry.Count())

	// Deliver the most recent frame right away so the viewer is not blank
	// until the first capture completes.
	if frame, seq := h.cache.Latest(); seq > 0 {
		client.Send(frame)
	}

	go h.writePump(client)
	go h.readPump(client)
	go h.broadcaster.Stream(client)

	return nil
}

// readPump discards inbound messages and unregisters the client when the
// connection errors or closes. No client-to-server messages are expected on
// this channel; reading is how a disconnect is observed.
func (h *Handler) readPump(client *Client) {
	defer func() {
		h.registry.Unregister(client)
		client.Conn().Close()
		log.Printf("Viewer %s disconnected (%d active)", client.ID(), h.registry.Count())
	}()

	client.Conn().SetReadLimit(maxMessageSize)
	for {
		if _, _, err := client.Conn().ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error on %s: %v", client.ID(), err)
			}
			return
		}
	}
}

// writePump drains the client's frame queue onto the connection. Each frame
// goes out as its own binary message.
func (h *Handler) writePump(client *Client) {
	defer client.Conn().Close()

	for frame := range client.SendChan() {
		client.Conn().SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.Conn().WriteMessage(websocket.BinaryMessage, frame); err != nil {
			h.registry.Unregister(client)
			return
		}
	}

	// Queue closed by unregistration; tell the peer we are done.
	client.Conn().SetWriteDeadline(time.Now().Add(writeWait))
	client.Conn().WriteMessage(websocket.CloseMessage, []byte{})
}
