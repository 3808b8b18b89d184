package falagard

import (
	"fmt"
	"image"
	"sort"
	"testing"
)

// quadBuffer records everything components emit.
type quadBuffer struct {
	quads []Quad
	texts []TextRun
}

func (b *quadBuffer) AppendQuad(q Quad)      { b.quads = append(b.quads, q) }
func (b *quadBuffer) AppendText(run TextRun) { b.texts = append(b.texts, run) }

func (b *quadBuffer) dests() []Rect {
	out := make([]Rect, len(b.quads))
	for i, q := range b.quads {
		out[i] = q.Dest
	}
	return out
}

type eventLink struct{ child, event string }

// fakeWindow is a minimal in-memory Window.
type fakeWindow struct {
	name     string
	typ      string
	look     string
	size     Size
	props    map[string]string
	added    map[string]Property
	users    map[string]string
	children map[string]*fakeWindow
	links    map[string][]eventLink
	buf      *quadBuffer

	area        URect
	horz        HorizontalAlignment
	vert        VerticalAlignment
	invalidated int
	layouts     int
}

// fakeStandardProperties are the plain properties every fake window has.
var fakeStandardProperties = map[string]string{
	"Alpha":                "1",
	"Font":                 "",
	"Text":                 "",
	"Tooltip":              "",
	WindowRendererProperty: "",
}

func newFakeWindow(name string, w, h float64) *fakeWindow {
	props := make(map[string]string, len(fakeStandardProperties))
	for k, v := range fakeStandardProperties {
		props[k] = v
	}
	return &fakeWindow{
		name:     name,
		size:     Sz(w, h),
		props:    props,
		added:    make(map[string]Property),
		users:    make(map[string]string),
		children: make(map[string]*fakeWindow),
		links:    make(map[string][]eventLink),
		buf:      &quadBuffer{},
	}
}

func (w *fakeWindow) Name() string     { return w.name }
func (w *fakeWindow) LookName() string { return w.look }
func (w *fakeWindow) PixelSize() Size  { return w.size }

func (w *fakeWindow) GeometryBuffer() GeometryBuffer { return w.buf }

func (w *fakeWindow) Property(name string) (string, error) {
	if p, ok := w.added[name]; ok {
		return p.Get(w)
	}
	if name == LookNFeelProperty {
		return w.look, nil
	}
	v, ok := w.props[name]
	if !ok {
		return "", fmt.Errorf("%w: property %q", ErrUnknownObject, name)
	}
	return v, nil
}

func (w *fakeWindow) SetProperty(name, value string) error {
	if p, ok := w.added[name]; ok {
		return p.Set(w, value)
	}
	if name == LookNFeelProperty {
		w.look = value
		return nil
	}
	if _, ok := w.props[name]; !ok {
		return fmt.Errorf("%w: property %q", ErrUnknownObject, name)
	}
	w.props[name] = value
	return nil
}

func (w *fakeWindow) IsPropertyPresent(name string) bool {
	_, added := w.added[name]
	_, plain := w.props[name]
	return added || plain
}

func (w *fakeWindow) AddProperty(p Property) error {
	if _, dup := w.added[p.Name()]; dup {
		return fmt.Errorf("%w: property %q", ErrAlreadyExists, p.Name())
	}
	w.added[p.Name()] = p
	return nil
}

func (w *fakeWindow) RemoveProperty(name string) { delete(w.added, name) }

func (w *fakeWindow) UserString(name string) (string, bool) {
	v, ok := w.users[name]
	return v, ok
}

func (w *fakeWindow) SetUserString(name, value string) { w.users[name] = value }

func (w *fakeWindow) RemoveUserString(name string) { delete(w.users, name) }

func (w *fakeWindow) IsChild(name string) bool {
	_, ok := w.children[name]
	return ok
}

func (w *fakeWindow) Child(name string) (Window, error) {
	c, ok := w.children[name]
	if !ok {
		return nil, fmt.Errorf("%w: child %q", ErrUnknownObject, name)
	}
	return c, nil
}

func (w *fakeWindow) CreateChild(typ, name string) (Window, error) {
	if _, dup := w.children[name]; dup {
		return nil, fmt.Errorf("%w: child %q", ErrAlreadyExists, name)
	}
	c := newFakeWindow(name, 0, 0)
	c.typ = typ
	w.children[name] = c
	return c, nil
}

func (w *fakeWindow) DestroyChild(name string) error {
	if _, ok := w.children[name]; !ok {
		return fmt.Errorf("%w: child %q", ErrUnknownObject, name)
	}
	delete(w.children, name)
	return nil
}

func (w *fakeWindow) SetArea(area URect) { w.area = area }

func (w *fakeWindow) SetAlignment(h HorizontalAlignment, v VerticalAlignment) {
	w.horz, w.vert = h, v
}

func (w *fakeWindow) LinkEvent(name, child, childEvent string) error {
	w.links[name] = append(w.links[name], eventLink{child, childEvent})
	return nil
}

func (w *fakeWindow) UnlinkEvent(name string) { delete(w.links, name) }

func (w *fakeWindow) Invalidate()         { w.invalidated++ }
func (w *fakeWindow) PerformChildLayout() { w.layouts++ }

// windowState is what a look may add to a window and must take away again.
type windowState struct {
	Props    []string
	Added    []string
	Users    map[string]string
	Children []string
	Links    []string
}

func (w *fakeWindow) state() windowState {
	users := make(map[string]string, len(w.users))
	for k, v := range w.users {
		users[k] = v
	}
	return windowState{
		Props:    sortedKeys(w.props),
		Added:    sortedKeys(w.added),
		Users:    users,
		Children: w.childNames(),
		Links:    sortedKeys(w.links),
	}
}

func (w *fakeWindow) childNames() []string {
	names := make([]string, 0, len(w.children))
	for n := range w.children {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var (
	_ Window        = (*fakeWindow)(nil)
	_ Invalidator   = (*fakeWindow)(nil)
	_ ChildLayouter = (*fakeWindow)(nil)
	_ TextBuffer    = (*quadBuffer)(nil)
)

// testTexture returns a 64x64 texture.
func testTexture() *ImageTexture {
	return NewImageTexture("tex", image.NewRGBA(image.Rect(0, 0, 64, 64)))
}

// mustImage creates an image of the given natural size at the texture origin.
func mustImage(t *testing.T, name string, w, h float64) *Image {
	t.Helper()
	img, err := NewImage(name, testTexture(), R(0, 0, w, h), Point{})
	if err != nil {
		t.Fatalf("NewImage(%q): %v", name, err)
	}
	return img
}

// fakeAnims counts live animation instances.
type fakeAnims struct {
	live    map[*fakeInstance]bool
	created []string
}

type fakeInstance struct {
	name    string
	target  Window
	started bool
}

func (i *fakeInstance) SetTarget(w Window) { i.target = w }
func (i *fakeInstance) Start()             { i.started = true }

func newFakeAnims() *fakeAnims {
	return &fakeAnims{live: make(map[*fakeInstance]bool)}
}

func (a *fakeAnims) Instantiate(name string) (AnimationInstance, error) {
	inst := &fakeInstance{name: name}
	a.live[inst] = true
	a.created = append(a.created, name)
	return inst, nil
}

func (a *fakeAnims) Destroy(inst AnimationInstance) error {
	fi, ok := inst.(*fakeInstance)
	if !ok || !a.live[fi] {
		return fmt.Errorf("%w: animation instance", ErrUnknownObject)
	}
	delete(a.live, fi)
	return nil
}
