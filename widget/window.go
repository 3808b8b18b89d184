package widget

import (
	"fmt"
	"sort"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/recording"
)

// DefaultState is the state imagery a window draws unless told otherwise.
const DefaultState = "Enabled"

// standardProperties are the plain properties every window is created with.
// Looks write them through initialisers and links; DefineProperty adds more.
var standardProperties = map[string]string{
	"Alpha":                         "1",
	"Disabled":                      "False",
	"Font":                          "",
	"Text":                          "",
	"Tooltip":                       "",
	"Visible":                       "True",
	falagard.WindowRendererProperty: "",
}

// Window is a node in a widget tree. It implements falagard.Window and
// falagard.Placeable.
type Window struct {
	typ    string
	name   string
	parent *Window

	skins *falagard.Manager
	look  string
	state string

	props    map[string]string
	added    map[string]falagard.Property
	users    map[string]string
	children map[string]*Window

	subs   map[string][]subscription
	links  map[string][]Connection
	nextID uint64

	display      falagard.Size
	area         falagard.URect
	horz         falagard.HorizontalAlignment
	vert         falagard.VerticalAlignment
	nonClient    bool
	pixelAligned bool

	buf         *recording.Buffer
	needsRedraw bool
	layouts     int
}

// New creates a root window of the given type.
func New(typ, name string, opts ...Option) *Window {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := newWindow(typ, name, o)
	w.display = o.display
	return w
}

func newWindow(typ, name string, o options) *Window {
	props := make(map[string]string, len(standardProperties))
	for k, v := range standardProperties {
		props[k] = v
	}
	return &Window{
		typ:          typ,
		name:         name,
		skins:        o.skins,
		state:        o.state,
		props:        props,
		added:        make(map[string]falagard.Property),
		users:        make(map[string]string),
		children:     make(map[string]*Window),
		subs:         make(map[string][]subscription),
		links:        make(map[string][]Connection),
		area:         o.area,
		pixelAligned: o.pixelAligned,
		buf:          recording.NewBuffer(),
		needsRedraw:  true,
	}
}

// Type returns the type the window was created with.
func (w *Window) Type() string { return w.typ }

// Name implements falagard.Window.
func (w *Window) Name() string { return w.name }

// Parent returns the parent window, or nil for a root.
func (w *Window) Parent() *Window { return w.parent }

// LookName implements falagard.Window.
func (w *Window) LookName() string { return w.look }

// Manager returns the manager looks are resolved from.
func (w *Window) Manager() *falagard.Manager { return w.skins }

// State returns the state imagery Render draws.
func (w *Window) State() string { return w.state }

// SetState changes the state imagery Render draws.
func (w *Window) SetState(state string) {
	if state != w.state {
		w.state = state
		w.Invalidate()
	}
}

// SetLook assigns a look. The previous look, if any, is cleaned up first;
// the new one initialises the window and lays out its children. An empty
// name only removes the current look. An unknown name leaves the window
// untouched; a look that fails to apply is undone and the previous look
// applied again.
func (w *Window) SetLook(name string) error {
	if name == w.look {
		return nil
	}
	var next *falagard.WidgetLookFeel
	if name != "" {
		if w.skins == nil {
			return fmt.Errorf("%w: window %q look %q", ErrNoManager, w.name, name)
		}
		l, err := w.skins.Lookup(name)
		if err != nil {
			return err
		}
		next = l
	}

	prev := w.look
	if err := w.cleanUpLook(); err != nil {
		return err
	}
	w.look = name
	w.Invalidate()
	if next == nil {
		return nil
	}
	if err := w.applyLook(next); err != nil {
		w.restoreLook(prev)
		return err
	}
	return nil
}

// cleanUpLook undoes the current look. A look erased from the manager since
// it was applied has nothing left to undo.
func (w *Window) cleanUpLook() error {
	if w.look == "" || w.skins == nil {
		return nil
	}
	l, err := w.skins.Lookup(w.look)
	if err != nil {
		return nil
	}
	return l.CleanUpWidget(w)
}

func (w *Window) applyLook(l *falagard.WidgetLookFeel) error {
	if err := l.InitialiseWidget(w); err != nil {
		return err
	}
	return l.LayoutChildWidgets(w)
}

// restoreLook removes what a failed look left behind and re-applies prev.
func (w *Window) restoreLook(prev string) {
	if err := w.cleanUpLook(); err != nil {
		falagard.Logger().Warn("widget: partial look not removed", "window", w.name, "look", w.look, "err", err)
	}
	w.look = ""
	if prev == "" {
		return
	}
	l, err := w.skins.Lookup(prev)
	if err == nil {
		w.look = prev
		if err = w.applyLook(l); err != nil {
			_ = w.cleanUpLook()
			w.look = ""
		}
	}
	if err != nil {
		falagard.Logger().Warn("widget: previous look not restored", "window", w.name, "look", prev, "err", err)
	}
}

// Property implements falagard.Window. Look-added properties shadow plain
// values of the same name.
func (w *Window) Property(name string) (string, error) {
	if p, ok := w.added[name]; ok {
		return p.Get(w)
	}
	if name == falagard.LookNFeelProperty {
		return w.look, nil
	}
	if v, ok := w.props[name]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q on window %q", ErrUnknownProperty, name, w.name)
}

// SetProperty implements falagard.Window. Writing LookNFeel assigns the
// look. Other names must be look-added or plain properties; plain ones are
// the standard set plus anything given to DefineProperty.
func (w *Window) SetProperty(name, value string) error {
	if p, ok := w.added[name]; ok {
		return p.Set(w, value)
	}
	if name == falagard.LookNFeelProperty {
		return w.SetLook(value)
	}
	old, ok := w.props[name]
	if !ok {
		return fmt.Errorf("%w: %q on window %q", ErrUnknownProperty, name, w.name)
	}
	if old != value {
		w.props[name] = value
		w.Invalidate()
	}
	return nil
}

// DefineProperty adds a plain property with an initial value. Window types
// use it for the properties they carry beyond the standard set.
func (w *Window) DefineProperty(name, value string) error {
	if _, ok := w.props[name]; ok || name == falagard.LookNFeelProperty {
		return fmt.Errorf("%w: %q on window %q", ErrDuplicateProperty, name, w.name)
	}
	w.props[name] = value
	return nil
}

// IsPropertyPresent implements falagard.Window.
func (w *Window) IsPropertyPresent(name string) bool {
	if _, ok := w.added[name]; ok {
		return true
	}
	_, ok := w.props[name]
	return ok || name == falagard.LookNFeelProperty
}

// AddProperty implements falagard.Window.
func (w *Window) AddProperty(p falagard.Property) error {
	if _, ok := w.added[p.Name()]; ok {
		return fmt.Errorf("%w: %q on window %q", ErrDuplicateProperty, p.Name(), w.name)
	}
	w.added[p.Name()] = p
	return nil
}

// RemoveProperty implements falagard.Window.
func (w *Window) RemoveProperty(name string) {
	delete(w.added, name)
}

// UserString implements falagard.Window.
func (w *Window) UserString(name string) (string, bool) {
	v, ok := w.users[name]
	return v, ok
}

// SetUserString implements falagard.Window.
func (w *Window) SetUserString(name, value string) {
	w.users[name] = value
}

// RemoveUserString implements falagard.Window.
func (w *Window) RemoveUserString(name string) {
	delete(w.users, name)
}

// IsChild implements falagard.Window.
func (w *Window) IsChild(name string) bool {
	_, ok := w.children[name]
	return ok
}

// Child implements falagard.Window.
func (w *Window) Child(name string) (falagard.Window, error) {
	c, err := w.ChildWindow(name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ChildWindow returns the named child.
func (w *Window) ChildWindow(name string) (*Window, error) {
	c, ok := w.children[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in window %q", ErrUnknownChild, name, w.name)
	}
	return c, nil
}

// Children returns the children in name order.
func (w *Window) Children() []*Window {
	names := make([]string, 0, len(w.children))
	for name := range w.children {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Window, len(names))
	for i, name := range names {
		out[i] = w.children[name]
	}
	return out
}

// AddChild creates a child window. It inherits the parent's manager,
// state and pixel alignment.
func (w *Window) AddChild(typ, name string) (*Window, error) {
	if _, ok := w.children[name]; ok {
		return nil, fmt.Errorf("%w: %q in window %q", ErrDuplicateChild, name, w.name)
	}
	c := newWindow(typ, name, options{
		skins:        w.skins,
		area:         falagard.FullArea,
		state:        w.state,
		pixelAligned: w.pixelAligned,
	})
	c.parent = w
	w.children[name] = c
	w.Invalidate()
	return c, nil
}

// CreateChild implements falagard.Window.
func (w *Window) CreateChild(typ, name string) (falagard.Window, error) {
	c, err := w.AddChild(typ, name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DestroyChild implements falagard.Window. The child's look is cleaned
// up before it is detached.
func (w *Window) DestroyChild(name string) error {
	c, err := w.ChildWindow(name)
	if err != nil {
		return err
	}
	if err := c.SetLook(""); err != nil {
		return fmt.Errorf("widget: destroy %q: %w", name, err)
	}
	for _, gc := range c.Children() {
		if err := c.DestroyChild(gc.name); err != nil {
			return err
		}
	}
	delete(w.children, name)
	c.parent = nil
	w.Invalidate()
	return nil
}

// GeometryBuffer implements falagard.Window.
func (w *Window) GeometryBuffer() falagard.GeometryBuffer { return w.buf }

// Buffer returns the geometry recorded by the last Render.
func (w *Window) Buffer() *recording.Buffer { return w.buf }

// Invalidate marks the window for redraw.
func (w *Window) Invalidate() { w.needsRedraw = true }

// NeedsRedraw reports whether the window changed since it was rendered.
func (w *Window) NeedsRedraw() bool { return w.needsRedraw }

// PerformChildLayout re-runs the look's child layout. Failures are logged.
func (w *Window) PerformChildLayout() {
	w.layouts++
	if w.look == "" || w.skins == nil {
		return
	}
	look, err := w.skins.Lookup(w.look)
	if err == nil {
		err = look.LayoutChildWidgets(w)
	}
	if err != nil {
		falagard.Logger().Warn("widget: child layout failed", "window", w.name, "look", w.look, "err", err)
	}
}

// Render rebuilds the window's geometry buffer from its look and state.
func (w *Window) Render() error {
	w.buf.Reset()
	if w.look == "" {
		return fmt.Errorf("%w: window %q", ErrNoLook, w.name)
	}
	if w.skins == nil {
		return fmt.Errorf("%w: window %q", ErrNoManager, w.name)
	}
	look, err := w.skins.Resolve(w.look)
	if err != nil {
		return err
	}
	if err := look.Render(w, w.state, nil, nil); err != nil {
		return err
	}
	w.needsRedraw = false
	return nil
}

// DrawTree renders w and every descendant that has a look, then copies
// their geometry into dst translated to screen coordinates. Parents are
// drawn before their children; siblings in name order.
func (w *Window) DrawTree(dst falagard.TextBuffer) error {
	if w.look != "" {
		if err := w.Render(); err != nil {
			return err
		}
		origin := w.ScreenRect().Min
		for _, q := range w.buf.Quads() {
			q.Dest = q.Dest.Offset(origin)
			dst.AppendQuad(q)
		}
		for _, run := range w.buf.Texts() {
			run.Origin = run.Origin.Add(origin)
			if run.Clip != nil {
				clip := run.Clip.Offset(origin)
				run.Clip = &clip
			}
			dst.AppendText(run)
		}
	}
	for _, c := range w.Children() {
		if err := c.DrawTree(dst); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ falagard.Window        = (*Window)(nil)
	_ falagard.Placeable     = (*Window)(nil)
	_ falagard.Invalidator   = (*Window)(nil)
	_ falagard.ChildLayouter = (*Window)(nil)
)
