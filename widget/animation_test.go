package widget

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/falagard"
)

type foreignInstance struct{}

func (foreignInstance) SetTarget(falagard.Window) {}
func (foreignInstance) Start()                    {}

func TestAnimationStep(t *testing.T) {
	tests := []struct {
		name        string
		looped      bool
		steps       []time.Duration
		wantPos     time.Duration
		wantRunning bool
	}{
		{"midway", false, []time.Duration{300 * time.Millisecond}, 300 * time.Millisecond, true},
		{"finished", false, []time.Duration{600 * time.Millisecond, 600 * time.Millisecond}, time.Second, false},
		{"looped", true, []time.Duration{700 * time.Millisecond, 700 * time.Millisecond}, 400 * time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAnimationManager()
			m.Define("Fade", time.Second, tt.looped)
			inst, err := m.Instantiate("Fade")
			if err != nil {
				t.Fatal(err)
			}
			w := New("Root", "w")
			inst.SetTarget(w)
			inst.Start()
			w.needsRedraw = false

			for _, d := range tt.steps {
				m.Step(d)
			}
			a := inst.(*Animation)
			if a.Position() != tt.wantPos || a.Running() != tt.wantRunning {
				t.Errorf("position %v running %v, want %v %v", a.Position(), a.Running(), tt.wantPos, tt.wantRunning)
			}
			if !w.NeedsRedraw() {
				t.Error("step did not invalidate the target")
			}
		})
	}
}

func TestAnimationManagerErrors(t *testing.T) {
	m := NewAnimationManager()
	if _, err := m.Instantiate("Missing"); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("Instantiate err = %v", err)
	}

	m.Define("Spin", time.Second, true)
	inst, err := m.Instantiate("Spin")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Destroy(inst); err != nil {
		t.Fatal(err)
	}
	if err := m.Destroy(inst); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("second Destroy err = %v", err)
	}
	if err := m.Destroy(foreignInstance{}); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("foreign Destroy err = %v", err)
	}
	if m.Live() != 0 {
		t.Errorf("Live = %d", m.Live())
	}
}

func TestAnimationStopped(t *testing.T) {
	m := NewAnimationManager()
	m.Define("Fade", time.Second, false)
	inst, _ := m.Instantiate("Fade")
	a := inst.(*Animation)
	a.Start()
	m.Step(100 * time.Millisecond)
	a.Stop()
	m.Step(100 * time.Millisecond)
	if a.Position() != 100*time.Millisecond {
		t.Errorf("stopped animation advanced to %v", a.Position())
	}
	if a.Name() != "Fade" || a.Target() != nil {
		t.Errorf("name %q target %v", a.Name(), a.Target())
	}
}
