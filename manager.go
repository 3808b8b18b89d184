package falagard

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/falagard/internal/cache"
)

// Manager is the registry of widget looks. Looks registered with it find
// their parents and section owners through it, and share its image
// registry and animation manager.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu    sync.RWMutex
	looks map[string]*WidgetLookFeel
	// gen counts registry changes; a flattened look is cached only if no
	// change happened while it was built.
	gen uint64

	images   *ImageManager
	anims    AnimationManager
	resolved *cache.Cache[string, *ResolvedLook]
}

// NewManager creates an empty look registry.
func NewManager(opts ...ManagerOption) *Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.images == nil {
		o.images = NewImageManager()
	}
	return &Manager{
		looks:    make(map[string]*WidgetLookFeel),
		images:   o.images,
		anims:    o.anims,
		resolved: cache.New[string, *ResolvedLook](o.cacheCapacity),
	}
}

// Images returns the image registry.
func (m *Manager) Images() *ImageManager { return m.images }

// Register adds l, replacing any look with the same name. l is bound to
// this manager for inheritance lookups and animations.
func (m *Manager) Register(l *WidgetLookFeel) {
	l.SetRegistry(m)
	if m.anims != nil {
		l.SetAnimationManager(m.anims)
	}

	m.mu.Lock()
	_, replaced := m.looks[l.Name()]
	m.looks[l.Name()] = l
	m.invalidateLocked()
	m.mu.Unlock()

	if replaced {
		Logger().Info("falagard: replacing widget look", "look", l.Name())
	} else {
		Logger().Info("falagard: registered widget look", "look", l.Name(), "inherits", l.Inherits())
	}
}

// Lookup implements LookRegistry.
func (m *Manager) Lookup(name string) (*WidgetLookFeel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.looks[name]
	if !ok {
		return nil, fmt.Errorf("%w: widget look %q", ErrUnknownObject, name)
	}
	return l, nil
}

// IsDefined reports whether a look is registered under name.
func (m *Manager) IsDefined(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.looks[name]
	return ok
}

// Erase removes the named look. Erasing an unknown look does nothing.
func (m *Manager) Erase(name string) {
	m.mu.Lock()
	_, ok := m.looks[name]
	if ok {
		delete(m.looks, name)
		m.invalidateLocked()
	}
	m.mu.Unlock()
	if ok {
		Logger().Info("falagard: erased widget look", "look", name)
	}
}

// EraseAll removes every look.
func (m *Manager) EraseAll() {
	m.mu.Lock()
	m.looks = make(map[string]*WidgetLookFeel)
	m.invalidateLocked()
	m.mu.Unlock()
}

// invalidateLocked drops every flattened look. m.mu must be held for writing.
func (m *Manager) invalidateLocked() {
	m.gen++
	m.resolved.Clear()
}

// Names returns the registered look names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.looks))
	for name := range m.looks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the flattened form of the named look. Results are cached
// until the next registration or erase.
func (m *Manager) Resolve(name string) (*ResolvedLook, error) {
	if r, ok := m.resolved.Get(name); ok {
		return r, nil
	}

	m.mu.RLock()
	gen := m.gen
	l, ok := m.looks[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: widget look %q", ErrUnknownObject, name)
	}

	Logger().Debug("falagard: flattening widget look", "look", name)
	r, err := l.Flatten()
	if err != nil {
		return nil, err
	}

	// Flatten reads the registry, so it runs unlocked; the result is only
	// kept when no look changed meanwhile.
	m.mu.RLock()
	if m.gen == gen {
		m.resolved.Set(name, r)
	}
	m.mu.RUnlock()
	return r, nil
}

// CacheStats reports how the flattened look cache is doing.
func (m *Manager) CacheStats() cache.Stats { return m.resolved.Stats() }

// WriteLookToStream writes the named look as XML to w.
func (m *Manager) WriteLookToStream(name string, w io.Writer) error {
	l, err := m.Lookup(name)
	if err != nil {
		return err
	}
	xw := NewXMLWriter(w)
	if err := l.WriteXML(xw); err != nil {
		return err
	}
	return xw.Flush()
}

// WriteLookToString returns the named look as XML.
func (m *Manager) WriteLookToString(name string) (string, error) {
	var buf bytes.Buffer
	if err := m.WriteLookToStream(name, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteLooksToStream writes every registered look, in name order, inside
// a Falagard root element.
func (m *Manager) WriteLooksToStream(w io.Writer) error {
	xw := NewXMLWriter(w)
	xw.OpenTag("Falagard")
	for _, name := range m.Names() {
		l, err := m.Lookup(name)
		if err != nil {
			continue
		}
		if err := l.WriteXML(xw); err != nil {
			return err
		}
	}
	xw.CloseTag()
	return xw.Flush()
}

var _ LookRegistry = (*Manager)(nil)
