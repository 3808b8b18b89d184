package recording

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"sync"

	"github.com/gogpu/falagard"
)

// ErrUnknownBackend is returned when no backend is registered under a name.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendConfig is passed to a backend factory.
type BackendConfig struct {
	// Background fills the target before the first command. Nil leaves the
	// backend's own default.
	Background color.Color

	// Blend names the compositing operator, for backends that support more
	// than one. Empty selects the backend default.
	Blend string
}

// BackendFactory creates a backend for cfg. It fails on settings the
// backend cannot honour.
type BackendFactory func(cfg BackendConfig) (Backend, error)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name. Backends call it from
// init, so a nil factory or a name taken twice panics at program start.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: nil factory for backend " + name)
	}
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if _, taken := backends[name]; taken {
		panic("recording: backend " + name + " registered twice")
	}
	backends[name] = factory
}

// NewBackend creates the backend registered under name.
func NewBackend(name string, cfg BackendConfig) (Backend, error) {
	backendsMu.RLock()
	factory, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (is its package imported?)", ErrUnknownBackend, name)
	}
	b, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("recording: backend %q: %w", name, err)
	}
	return b, nil
}

// Render creates the named backend and plays buf back into a width x
// height target. The returned backend holds the output.
func Render(name string, buf *Buffer, width, height int, cfg BackendConfig) (Backend, error) {
	b, err := NewBackend(name, cfg)
	if err != nil {
		return nil, err
	}
	falagard.Logger().Debug("recording: playback",
		"backend", name, "commands", buf.Len(), "width", width, "height", height)
	if err := buf.Playback(b, width, height); err != nil {
		return nil, fmt.Errorf("recording: playback to %q: %w", name, err)
	}
	return b, nil
}

// Backends returns the registered backend names in order.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
