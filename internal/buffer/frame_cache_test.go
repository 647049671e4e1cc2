package buffer

import (
	"bytes"
	"sync"
	"testing"
)

func TestFrameCache_StoreAndLatest(t *testing.T) {
	t.Run("empty cache", func(t *testing.T) {
		cache := NewFrameCache()

		frame, seq := cache.Latest()
		if frame != nil || seq != 0 {
			t.Errorf("Expected no frame, got %d bytes at seq %d", len(frame), seq)
		}
	})

	t.Run("latest replaces previous", func(t *testing.T) {
		cache := NewFrameCache()
		cache.Store([]byte("frame-1"))
		cache.Store([]byte("frame-2"))

		frame, seq := cache.Latest()
		if !bytes.Equal(frame, []byte("frame-2")) {
			t.Errorf("Expected frame-2, got %q", frame)
		}
		if seq != 2 {
			t.Errorf("Expected seq 2, got %d", seq)
		}
	})

	t.Run("empty frames are ignored", func(t *testing.T) {
		cache := NewFrameCache()
		cache.Store([]byte("frame"))
		cache.Store(nil)

		frame, seq := cache.Latest()
		if !bytes.Equal(frame, []byte("frame")) || seq != 1 {
			t.Errorf("Empty store changed cache: %q seq %d", frame, seq)
		}
	})

	t.Run("stores a copy", func(t *testing.T) {
		cache := NewFrameCache()
		src := []byte("frame")
		cache.Store(src)
		src[0] = 'X'

		frame, _ := cache.Latest()
		if !bytes.Equal(frame, []byte("frame")) {
			t.Errorf("Cache aliased the caller's slice: %q", frame)
		}
	})
}

func TestFrameCache_ConcurrentAccess(t *testing.T) {
	cache := NewFrameCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Store([]byte("frame"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Latest()
			}
		}()
	}
	wg.Wait()

	if _, seq := cache.Latest(); seq != 800 {
		t.Errorf("Expected 800 stores, got %d", seq)
	}
}
