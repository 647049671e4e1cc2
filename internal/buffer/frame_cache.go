// Package buffer provides the latest-frame cache used to bring newly
// attached viewers up to date immediately.
package buffer

import (
	"sync"
)

// FrameCache is a thread-safe holder for the most recent captured frame.
// Unlike a terminal output stream, frames replace each other rather than
// append, so a new viewer only ever needs the latest one. The sequence
// number increments on every Store and lets callers tell frames apart.
type FrameCache struct {
	mu    sync.RWMutex
	frame []byte
	seq   uint64
}

// NewFrameCache creates an empty FrameCache.
func NewFrameCache() *FrameCache {
	return &FrameCache{}
}

// Store replaces the cached frame with a copy of the given bytes. Empty
// frames are ignored.
func (c *FrameCache) Store(frame []byte) {
	if len(frame) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	buf := make([]byte, len(frame))
	copy(buf, frame)
	c.frame = buf
	c.seq++
}

// Latest returns the most recent frame and its sequence number. The
// returned slice is owned by the cache and must not be modified. A nil
// frame and sequence 0 mean nothing has been captured yet.
func (c *FrameCache) Latest() ([]byte, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frame, c.seq
}
