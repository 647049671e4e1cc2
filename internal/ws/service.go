package ws

import (
	"github.com/remote-browser-stream/backend/internal/buffer"
)

// Service wires the registry, the broadcaster and the handler into one
// streaming facade for the HTTP layer.
type Service struct {
	registry    *Registry
	broadcaster *Broadcaster
	handler     *Handler
	cache       *buffer.FrameCache
}

// NewService creates the streaming service over a frame source.
func NewService(source FrameSource) *Service {
	registry := NewRegistry()
	cache := buffer.NewFrameCache()
	broadcaster := NewBroadcaster(registry, source, cache)
	handler := NewHandler(registry, broadcaster, cache)

	return &Service{
		registry:    registry,
		broadcaster: broadcaster,
		handler:     handler,
		cache:       cache,
	}
}

// Handler returns the connection handler.
func (s *Service) Handler() *Handler {
	return s.handler
}

// Registry returns the connection registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// ViewerCount returns the number of connected viewers.
func (s *Service) ViewerCount() int {
	return s.registry.Count()
}

// Close disconnects all viewers; their loops observe the removal and exit.
func (s *Service) Close() {
	s.registry.Close()
}
