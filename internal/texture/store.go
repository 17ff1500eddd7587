package texture

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
)

// Handle identifies a texture held by a Store.
type Handle int

// Store owns decoded textures and hands out handles. Loading happens once at
// startup; afterwards Image is safe to call from many goroutines.
type Store struct {
	mu     sync.RWMutex
	images []*image.NRGBA
	byPath map[string]Handle
	index  *Index
}

// NewStore creates a store that resolves names through index (may be nil).
func NewStore(index *Index) *Store {
	if index == nil {
		index = BuildIndex("")
	}
	return &Store{
		byPath: make(map[string]Handle),
		index:  index,
	}
}

// Add registers an already decoded image.
func (s *Store) Add(img *image.NRGBA) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = append(s.images, img)
	return Handle(len(s.images) - 1)
}

// Load returns the handle for the named texture, or fallback if it cannot be
// loaded. It never returns anything but a loaded handle or fallback; the
// failure reason is logged.
func (s *Store) Load(name string, fallback Handle) Handle {
	h, err := s.load(name)
	if err != nil {
		slog.Warn("texture load failed, using fallback", "texture", name, "err", err)
		return fallback
	}
	return h
}

// LoadRequired loads a texture that has no fallback, such as the placeholder
// itself. Callers treat the error as fatal.
func (s *Store) LoadRequired(name string) (Handle, error) {
	h, err := s.load(name)
	if err != nil {
		return 0, fmt.Errorf("texture: required %s: %w", name, err)
	}
	return h, nil
}

func (s *Store) load(name string) (Handle, error) {
	if name == "" {
		return 0, fmt.Errorf("texture: empty name")
	}
	path, _ := s.index.ResolvePath(name)

	s.mu.RLock()
	h, ok := s.byPath[path]
	s.mu.RUnlock()
	if ok {
		return h, nil
	}

	img, err := Decode(path)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.byPath[path]; ok {
		return h, nil
	}
	s.images = append(s.images, img)
	h = Handle(len(s.images) - 1)
	s.byPath[path] = h
	slog.Debug("texture loaded", "texture", name, "path", path, "size", img.Bounds().Size())
	return h, nil
}

// Image returns the decoded image for h, or nil for an unknown handle.
func (s *Store) Image(h Handle) *image.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h < 0 || int(h) >= len(s.images) {
		return nil
	}
	return s.images[h]
}

// Len returns the number of stored textures.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
