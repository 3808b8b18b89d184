package widget

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gogpu/falagard"
)

// Animation is a running instance of a defined animation.
type Animation struct {
	name     string
	duration time.Duration
	looped   bool

	target   falagard.Window
	running  bool
	position time.Duration
}

// Name returns the definition the instance was created from.
func (a *Animation) Name() string { return a.name }

// Target returns the window the animation drives.
func (a *Animation) Target() falagard.Window { return a.target }

// SetTarget implements falagard.AnimationInstance.
func (a *Animation) SetTarget(w falagard.Window) { a.target = w }

// Start implements falagard.AnimationInstance. It rewinds the animation.
func (a *Animation) Start() {
	a.running = true
	a.position = 0
}

// Stop halts the animation at its current position.
func (a *Animation) Stop() { a.running = false }

// Running reports whether the animation is playing.
func (a *Animation) Running() bool { return a.running }

// Position returns how far the animation has played.
func (a *Animation) Position() time.Duration { return a.position }

func (a *Animation) step(elapsed time.Duration) {
	if !a.running || a.duration <= 0 {
		return
	}
	a.position += elapsed
	if a.position < a.duration {
		return
	}
	if a.looped {
		a.position %= a.duration
		return
	}
	a.position = a.duration
	a.running = false
}

type animationDef struct {
	duration time.Duration
	looped   bool
}

// AnimationManager implements falagard.AnimationManager. It owns every
// instance it creates until Destroy is called.
//
// The manager's methods are safe for concurrent use. Instances are not.
type AnimationManager struct {
	mu   sync.Mutex
	defs map[string]animationDef
	live map[*Animation]struct{}
}

// NewAnimationManager creates a manager with no definitions.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{
		defs: make(map[string]animationDef),
		live: make(map[*Animation]struct{}),
	}
}

// Define registers an animation. Redefining a name affects only instances
// created afterwards.
func (m *AnimationManager) Define(name string, duration time.Duration, looped bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs[name] = animationDef{duration: duration, looped: looped}
}

// Instantiate implements falagard.AnimationManager.
func (m *AnimationManager) Instantiate(name string) (falagard.AnimationInstance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	def, ok := m.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	a := &Animation{name: name, duration: def.duration, looped: def.looped}
	m.live[a] = struct{}{}
	return a, nil
}

// Destroy implements falagard.AnimationManager.
func (m *AnimationManager) Destroy(inst falagard.AnimationInstance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := inst.(*Animation)
	if !ok {
		return fmt.Errorf("%w: foreign instance %T", ErrUnknownAnimation, inst)
	}
	if _, ok := m.live[a]; !ok {
		return fmt.Errorf("%w: instance of %q already destroyed", ErrUnknownAnimation, a.name)
	}
	a.running = false
	delete(m.live, a)
	return nil
}

// Live returns the number of instances not yet destroyed.
func (m *AnimationManager) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Instances returns the live instances targeting w, ordered by name.
func (m *AnimationManager) Instances(w falagard.Window) []*Animation {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Animation
	for a := range m.live {
		if a.target == w {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Step advances every running instance and invalidates the windows they
// target.
func (m *AnimationManager) Step(elapsed time.Duration) {
	m.mu.Lock()
	var touched []falagard.Window
	for a := range m.live {
		if !a.running {
			continue
		}
		a.step(elapsed)
		if a.target != nil {
			touched = append(touched, a.target)
		}
	}
	m.mu.Unlock()

	for _, w := range touched {
		if inv, ok := w.(falagard.Invalidator); ok {
			inv.Invalidate()
		}
	}
}

var _ falagard.AnimationManager = (*AnimationManager)(nil)
