package widget

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/recording"
	"github.com/gogpu/falagard/recording/backends/raster"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func solidImage(t *testing.T, name string, c color.Color) *falagard.Image {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(src, src.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	img, err := falagard.NewImage(name, falagard.NewImageTexture(name, src), falagard.R(0, 0, 8, 8), falagard.Point{})
	if err != nil {
		t.Fatal(err)
	}
	return img
}

// fillLook returns a look whose Enabled state stretches img over the window.
func fillLook(name, inherits string, img *falagard.Image) *falagard.WidgetLookFeel {
	l := falagard.NewWidgetLookFeel(name, inherits)
	sec := falagard.NewImagerySection("main")
	sec.AddImageryComponent(falagard.NewImageryComponent(nil, falagard.DirectImage(img)))
	l.AddImagerySection(sec)
	st := falagard.NewStateImagery(DefaultState)
	st.AddLayer(falagard.NewLayer(0, falagard.SectionSpec("", "main")))
	l.AddStateImagery(st)
	return l
}

// testSkins registers Skin/Label, Skin/Panel and Skin/Button, which
// inherits the panel and adds a label child along its bottom edge.
func testSkins(t *testing.T, anims *AnimationManager) *falagard.Manager {
	t.Helper()
	var opts []falagard.ManagerOption
	if anims != nil {
		opts = append(opts, falagard.WithAnimationManager(anims))
	}
	m := falagard.NewManager(opts...)

	m.Register(fillLook("Skin/Label", "", solidImage(t, "Skin/Green", green)))

	panel := fillLook("Skin/Panel", "", solidImage(t, "Skin/Red", red))
	panel.AddNamedArea(falagard.NamedArea{
		Name: ClientAreaName,
		Area: falagard.AreaOf(falagard.UR(falagard.Absolute(4), falagard.Absolute(4), falagard.UD(1, -4), falagard.UD(1, -4))),
	})
	m.Register(panel)

	button := falagard.NewWidgetLookFeel("Skin/Button", "Skin/Panel")
	button.AddWidgetComponent(&falagard.WidgetComponent{
		Name:      "__label__",
		Type:      "Label",
		Look:      "Skin/Label",
		Area:      falagard.AreaOf(falagard.UR(falagard.Absolute(0), falagard.Absolute(0), falagard.Relative(1), falagard.Absolute(10))),
		VertAlign: falagard.AlignBottom,
	})
	link := falagard.NewPropertyLinkDefinition("Caption", "", "String")
	link.AddTarget("__label__", "Text")
	button.AddPropertyLinkDefinition(link)
	button.AddEventLinkDefinition(falagard.NewEventLinkDefinition("Clicked",
		falagard.EventLinkTarget{Widget: "__label__", Event: "MouseClick"}))
	button.AddAnimationName("Pulse")
	m.Register(button)
	return m
}

// newButton places a Skin/Button at (10,20) size 100x40 on a 200x100 display.
func newButton(t *testing.T, anims *AnimationManager) (*Window, *Window) {
	t.Helper()
	root := New("Root", "root",
		WithManager(testSkins(t, anims)),
		WithDisplaySize(falagard.Sz(200, 100)))
	btn, err := root.AddChild("Button", "ok")
	if err != nil {
		t.Fatal(err)
	}
	btn.SetArea(falagard.UR(falagard.Absolute(10), falagard.Absolute(20), falagard.Absolute(110), falagard.Absolute(60)))
	if err := btn.SetProperty(falagard.LookNFeelProperty, "Skin/Button"); err != nil {
		t.Fatal(err)
	}
	return root, btn
}

func TestSetLookCreatesChildren(t *testing.T) {
	_, btn := newButton(t, nil)

	label, err := btn.ChildWindow("__label__")
	if err != nil {
		t.Fatal(err)
	}
	if label.LookName() != "Skin/Label" || label.Type() != "Label" {
		t.Errorf("label type %q look %q", label.Type(), label.LookName())
	}
	if err := btn.SetProperty("Caption", "Go"); err != nil {
		t.Fatal(err)
	}
	if v, _ := label.Property("Text"); v != "Go" {
		t.Errorf("label Text = %q, want the linked caption", v)
	}

	if got := btn.ScreenRect(); got != falagard.R(10, 20, 110, 60) {
		t.Errorf("button rect = %v", got)
	}
	if got := btn.ChildContentArea(false); got != falagard.R(14, 24, 106, 56) {
		t.Errorf("client area = %v", got)
	}
	if got := label.ScreenRect(); got != falagard.R(14, 46, 106, 56) {
		t.Errorf("label rect = %v, want bottom of the client area", got)
	}
}

// windowState is what applying and removing a look must leave unchanged.
type windowState struct {
	Look     string
	Props    []string
	Added    []string
	Users    map[string]string
	Children []string
	Links    []string
}

func sortedNames[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func snapshot(w *Window) windowState {
	users := make(map[string]string, len(w.users))
	for k, v := range w.users {
		users[k] = v
	}
	var children []string
	for _, c := range w.Children() {
		children = append(children, c.Name())
	}
	return windowState{
		Look:     w.look,
		Props:    sortedNames(w.props),
		Added:    sortedNames(w.added),
		Users:    users,
		Children: children,
		Links:    sortedNames(w.links),
	}
}

func TestSetLookCleansUp(t *testing.T) {
	anims := NewAnimationManager()
	anims.Define("Pulse", 0, false)
	root := New("Root", "root",
		WithManager(testSkins(t, anims)),
		WithDisplaySize(falagard.Sz(200, 100)))
	btn, err := root.AddChild("Button", "ok")
	if err != nil {
		t.Fatal(err)
	}
	btn.SetUserString("Owner", "app")
	before := snapshot(btn)

	for round := 1; round <= 2; round++ {
		if err := btn.SetLook("Skin/Button"); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if anims.Live() != 1 {
			t.Fatalf("round %d: live animations = %d, want 1", round, anims.Live())
		}
		if insts := anims.Instances(btn); len(insts) != 1 || !insts[0].Running() {
			t.Errorf("round %d: button animations = %v", round, insts)
		}
		if !btn.IsChild("__label__") || !btn.IsPropertyPresent("Caption") || btn.LinkedEvents("Clicked") != 1 {
			t.Errorf("round %d: look not applied", round)
		}

		if err := btn.SetLook(""); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if diff := cmp.Diff(before, snapshot(btn)); diff != "" {
			t.Errorf("round %d: look left traces (-before +after):\n%s", round, diff)
		}
		if anims.Live() != 0 {
			t.Errorf("round %d: live animations = %d after clean-up", round, anims.Live())
		}
	}
}

func TestSetLookInitialisersAndDefinitions(t *testing.T) {
	m := testSkins(t, nil)
	look := falagard.NewWidgetLookFeel("Skin/Init", "")
	look.AddPropertyInitialiser(falagard.PropertyInitialiser{Target: "Alpha", Value: "0.5"})
	look.AddPropertyDefinition(falagard.NewPropertyDefinition("NormalColour", "FFFFFFFF", "ColourRect"))
	m.Register(look)

	w := New("Root", "w", WithManager(m))
	before := snapshot(w)
	if err := w.SetLook("Skin/Init"); err != nil {
		t.Fatal(err)
	}
	if v, _ := w.Property("Alpha"); v != "0.5" {
		t.Errorf("Alpha = %q, want the initialiser value", v)
	}
	if v, _ := w.Property("NormalColour"); v != "FFFFFFFF" {
		t.Errorf("NormalColour = %q", v)
	}
	if err := w.SetLook(""); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, snapshot(w)); diff != "" {
		t.Errorf("look left traces (-before +after):\n%s", diff)
	}
	if w.IsPropertyPresent("NormalColour") {
		t.Error("look property survived clean-up")
	}
}

func TestSetLookFailureKeepsPreviousLook(t *testing.T) {
	_, btn := newButton(t, nil)
	broken := falagard.NewWidgetLookFeel("Skin/Broken", "")
	broken.AddWidgetComponent(&falagard.WidgetComponent{Name: "__extra__", Type: "Label"})
	broken.AddPropertyInitialiser(falagard.PropertyInitialiser{Target: "Bogus", Value: "1"})
	btn.Manager().Register(broken)
	before := snapshot(btn)

	if err := btn.SetLook("Skin/Missing"); !errors.Is(err, falagard.ErrUnknownObject) {
		t.Errorf("unknown look err = %v", err)
	}
	if diff := cmp.Diff(before, snapshot(btn)); diff != "" {
		t.Errorf("unknown look changed the window (-before +after):\n%s", diff)
	}

	err := btn.SetLook("Skin/Broken")
	if !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("broken look err = %v, want ErrUnknownProperty", err)
	}
	if diff := cmp.Diff(before, snapshot(btn)); diff != "" {
		t.Errorf("failed look not rolled back (-before +after):\n%s", diff)
	}
	if btn.LookName() != "Skin/Button" {
		t.Errorf("look = %q, want the previous look", btn.LookName())
	}
}

func TestLinkedEventFires(t *testing.T) {
	_, btn := newButton(t, nil)
	var got []Event
	btn.Subscribe("Clicked", func(e Event) { got = append(got, e) })

	label, _ := btn.ChildWindow("__label__")
	label.FireEvent("MouseClick")
	label.FireEvent("MouseEnter")

	if diff := cmp.Diff([]Event{{Name: "Clicked", Source: btn}}, got, cmp.Comparer(func(a, b *Window) bool { return a == b })); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	btn.UnlinkEvent("Clicked")
	label.FireEvent("MouseClick")
	if len(got) != 1 {
		t.Error("unlinked event still fired")
	}
}

func TestSubscribeDisconnect(t *testing.T) {
	w := New("Root", "w")
	var order []int
	first := w.Subscribe("E", func(Event) { order = append(order, 1) })
	w.Subscribe("E", func(Event) { order = append(order, 2) })
	w.FireEvent("E")
	first.Disconnect()
	first.Disconnect()
	w.FireEvent("E")
	if diff := cmp.Diff([]int{1, 2, 2}, order); diff != "" {
		t.Errorf("handler calls mismatch (-want +got):\n%s", diff)
	}
	Connection{}.Disconnect()
}

func TestWindowErrors(t *testing.T) {
	w := New("Root", "w")
	if _, err := w.Property("Missing"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Property err = %v", err)
	}
	err := w.SetProperty("Missing", "x")
	if !errors.Is(err, ErrUnknownProperty) || !errors.Is(err, falagard.ErrUnknownObject) {
		t.Errorf("SetProperty err = %v", err)
	}
	if w.IsPropertyPresent("Missing") {
		t.Error("writing an unknown property created it")
	}
	if err := w.DefineProperty("Missing", "a"); err != nil {
		t.Fatal(err)
	}
	if err := w.SetProperty("Missing", "b"); err != nil {
		t.Errorf("SetProperty after DefineProperty: %v", err)
	}
	if err := w.DefineProperty("Text", ""); !errors.Is(err, ErrDuplicateProperty) {
		t.Errorf("DefineProperty over a standard property err = %v", err)
	}
	p := falagard.NewPropertyDefinition("Extra", "", "String")
	if err := w.AddProperty(p); err != nil {
		t.Fatal(err)
	}
	if err := w.AddProperty(p); !errors.Is(err, ErrDuplicateProperty) {
		t.Errorf("duplicate AddProperty err = %v", err)
	}
	if _, err := w.CreateChild("T", "c"); err != nil {
		t.Fatal(err)
	}
	if _, err := w.CreateChild("T", "c"); !errors.Is(err, ErrDuplicateChild) {
		t.Errorf("duplicate child err = %v", err)
	}
	if err := w.DestroyChild("nope"); !errors.Is(err, ErrUnknownChild) {
		t.Errorf("DestroyChild err = %v", err)
	}
	if err := w.LinkEvent("E", "nope", "E"); !errors.Is(err, ErrUnknownChild) {
		t.Errorf("LinkEvent unknown child err = %v", err)
	}
	if err := w.LinkEvent("E", "", "E"); !errors.Is(err, ErrSelfLink) {
		t.Errorf("LinkEvent self err = %v", err)
	}
	if err := w.Render(); !errors.Is(err, ErrNoLook) {
		t.Errorf("Render err = %v", err)
	}
	if err := w.SetLook("Skin/Any"); !errors.Is(err, ErrNoManager) {
		t.Errorf("SetLook err = %v", err)
	}
}

func TestPropertyPrecedence(t *testing.T) {
	w := New("Root", "w")
	if err := w.SetProperty("Text", "plain"); err != nil {
		t.Fatal(err)
	}
	def := falagard.NewPropertyDefinition("Text", "defined", "String")
	if err := w.AddProperty(def); err != nil {
		t.Fatal(err)
	}
	if v, _ := w.Property("Text"); v != "defined" {
		t.Errorf("Text = %q, want the added property", v)
	}
	w.RemoveProperty("Text")
	if v, _ := w.Property("Text"); v != "plain" {
		t.Errorf("Text = %q after removal", v)
	}
	if !w.IsPropertyPresent(falagard.LookNFeelProperty) {
		t.Error("LookNFeel not reported present")
	}
}

func TestRedrawAndLayoutNotifications(t *testing.T) {
	_, btn := newButton(t, nil)
	if err := btn.Render(); err != nil {
		t.Fatal(err)
	}
	if btn.NeedsRedraw() {
		t.Fatal("rendered window still needs redraw")
	}
	if err := btn.SetProperty("Tooltip", "hi"); err != nil {
		t.Fatal(err)
	}
	if !btn.NeedsRedraw() {
		t.Error("plain property write did not invalidate")
	}

	def := falagard.NewPropertyDefinition("Spacing", "0", "Float")
	def.SetLayoutOnWrite(true)
	if err := btn.AddProperty(def); err != nil {
		t.Fatal(err)
	}
	before := btn.layouts
	if err := btn.SetProperty("Spacing", "2"); err != nil {
		t.Fatal(err)
	}
	if btn.layouts != before+1 {
		t.Errorf("layouts = %d, want %d", btn.layouts, before+1)
	}
}

func TestDrawTree(t *testing.T) {
	root, _ := newButton(t, nil)
	screen := recording.NewBuffer()
	if err := root.DrawTree(screen); err != nil {
		t.Fatal(err)
	}
	var dests []falagard.Rect
	for _, q := range screen.Quads() {
		dests = append(dests, q.Dest)
	}
	want := []falagard.Rect{falagard.R(10, 20, 110, 60), falagard.R(14, 46, 106, 56)}
	if diff := cmp.Diff(want, dests); diff != "" {
		t.Errorf("screen quads mismatch (-want +got):\n%s", diff)
	}

	b := raster.NewBackend(raster.WithBackground(color.Black))
	if err := screen.Playback(b, 200, 100); err != nil {
		t.Fatal(err)
	}
	img := b.Image()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, color.RGBA{A: 255}},
		{12, 22, red},
		{50, 50, green},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDestroyChildCleansLook(t *testing.T) {
	anims := NewAnimationManager()
	anims.Define("Pulse", 0, false)
	root, btn := newButton(t, anims)
	if err := root.DestroyChild("ok"); err != nil {
		t.Fatal(err)
	}
	if root.IsChild("ok") || btn.Parent() != nil {
		t.Error("child still attached")
	}
	if anims.Live() != 0 {
		t.Errorf("live animations = %d after destroy", anims.Live())
	}
}
