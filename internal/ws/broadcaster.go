package ws

import (
	"context"
	"log"
	"time"

	"github.com/remote-browser-stream/backend/internal/buffer"
)

const (
	// FrameInterval is the fixed broadcast cadence.
	FrameInterval = 33 * time.Millisecond

	// captureTimeout bounds a single capture so a hung engine call cannot
	// stall a connection's loop forever.
	captureTimeout = 2 * time.Second
)

// FrameSource captures one compressed frame of the shared page. The session
// manager implements it.
type FrameSource interface {
	CaptureFrame(ctx context.Context) ([]byte, error)
}

// Broadcaster runs one capture-and-send loop per viewer connection. Loops
// are independent: a failure or removal ends exactly one loop and leaves
// the others streaming.
type Broadcaster struct {
	registry *Registry
	source   FrameSource
	cache    *buffer.FrameCache
	interval time.Duration
}

// NewBroadcaster creates a Broadcaster over the given registry and source.
func NewBroadcaster(registry *Registry, source FrameSource, cache *buffer.FrameCache) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		source:   source,
		cache:    cache,
		interval: FrameInterval,
	}
}

// Stream captures frames and pushes them to the client until the client
// leaves the registry or a capture or send fails. Any fault is terminal for
// this loop only: the client is unregistered and the loop exits, no retry.
func (b *Broadcaster) Stream(client *Client) {
	defer b.registry.Unregister(client)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		if !b.registry.IsLive(client) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
		frame, err := b.source.CaptureFrame(ctx)
		cancel()
		if err != nil {
			log.Printf("Frame capture error for connection %s: %v", client.ID(), err)
			return
		}

		b.cache.Store(frame)

		if !client.Send(frame) {
			log.Printf("Dropping connection %s: send queue closed", client.ID())
			return
		}

		<-ticker.C
	}
}
