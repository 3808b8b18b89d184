package falagard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buttonLook builds a base look and a derived look exercising every
// namespace InitialiseWidget touches.
func buttonLook(t *testing.T, anims AnimationManager) (*Manager, *WidgetLookFeel) {
	t.Helper()
	var opts []ManagerOption
	if anims != nil {
		opts = append(opts, WithAnimationManager(anims))
	}
	m := NewManager(opts...)

	base := NewWidgetLookFeel("Base", "")
	base.AddPropertyDefinition(NewPropertyDefinition("NormalColour", "FFFFFFFF", "ColourRect"))
	base.AddPropertyInitialiser(PropertyInitialiser{Target: "Alpha", Value: "1"})
	base.AddAnimationName("Fade")

	look := NewWidgetLookFeel("Button", "Base")
	look.AddWidgetComponent(&WidgetComponent{
		Name:       "__label__",
		Type:       "Label",
		Look:       "Label",
		Renderer:   "Default",
		Properties: []PropertyInitialiser{{Target: "Text", Value: "ok"}},
	})
	link := NewPropertyLinkDefinition("Caption", "hello", "String")
	link.AddTarget("__label__", "Text")
	look.AddPropertyLinkDefinition(link)
	look.AddPropertyInitialiser(PropertyInitialiser{Target: "Alpha", Value: "0.5"})
	look.AddEventLinkDefinition(NewEventLinkDefinition("Clicked",
		EventLinkTarget{Widget: "__label__", Event: "MouseClick"}))
	look.AddAnimationName("Glow")

	m.Register(base)
	m.Register(look)
	return m, look
}

func TestInitialiseWidget(t *testing.T) {
	anims := newFakeAnims()
	_, look := buttonLook(t, anims)
	w := newFakeWindow("btn", 80, 24)
	w.look = "Button"

	if err := look.InitialiseWidget(w); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"__label__"}, w.childNames()); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	label := w.children["__label__"]
	if label.typ != "Label" || label.look != "Label" || label.props[WindowRendererProperty] != "Default" {
		t.Errorf("label created as %q look %q renderer %q", label.typ, label.look, label.props[WindowRendererProperty])
	}
	// The link default overwrites the child's own initialiser.
	if got := label.props["Text"]; got != "hello" {
		t.Errorf("label Text = %q, want the link default", got)
	}

	if v, err := w.Property("NormalColour"); err != nil || v != "FFFFFFFF" {
		t.Errorf("NormalColour = %q, %v", v, err)
	}
	if got := w.props["Alpha"]; got != "0.5" {
		t.Errorf("Alpha = %q, want derived initialiser", got)
	}
	if diff := cmp.Diff([]eventLink{{"__label__", "MouseClick"}}, w.links["Clicked"], cmp.AllowUnexported(eventLink{})); diff != "" {
		t.Errorf("event links mismatch (-want +got):\n%s", diff)
	}

	insts := look.AnimationInstances(w)
	if len(insts) != 2 {
		t.Fatalf("got %d animation instances, want 2", len(insts))
	}
	for _, inst := range insts {
		fi := inst.(*fakeInstance)
		if fi.target != Window(w) || !fi.started {
			t.Errorf("instance %q target %v started %v", fi.name, fi.target, fi.started)
		}
	}
	if diff := cmp.Diff([]string{"Fade", "Glow"}, anims.created); diff != "" {
		t.Errorf("animations created mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanUpWidgetRoundTrip(t *testing.T) {
	anims := newFakeAnims()
	_, look := buttonLook(t, anims)
	w := newFakeWindow("btn", 80, 24)
	w.look = "Button"
	w.props["Keep"] = "me"
	w.users["Owner"] = "app"
	before := w.state()

	for round := 1; round <= 2; round++ {
		if err := look.InitialiseWidget(w); err != nil {
			t.Fatalf("round %d: initialise: %v", round, err)
		}
		if _, ok := w.users["NormalColour"+userStringSuffix]; !ok {
			t.Errorf("round %d: property definition stored no user string", round)
		}
		if err := look.CleanUpWidget(w); err != nil {
			t.Fatalf("round %d: clean-up: %v", round, err)
		}

		if diff := cmp.Diff(before, w.state()); diff != "" {
			t.Errorf("round %d: window changed by init and clean-up (-before +after):\n%s", round, diff)
		}
		if len(anims.live) != 0 {
			t.Errorf("round %d: %d animation instances still live", round, len(anims.live))
		}
		if len(look.AnimationInstances(w)) != 0 {
			t.Errorf("round %d: instances still recorded for the window", round)
		}
	}
	if w.props["Keep"] != "me" {
		t.Error("clean-up touched an unrelated property")
	}
}

func TestInitialiseWidgetUnknownProperty(t *testing.T) {
	m := NewManager()
	look := NewWidgetLookFeel("Odd", "")
	look.AddPropertyInitialiser(PropertyInitialiser{Target: "Bogus", Value: "1"})
	m.Register(look)

	w := newFakeWindow("w", 10, 10)
	w.look = "Odd"
	err := look.InitialiseWidget(w)
	if !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("err = %v, want ErrUnknownObject", err)
	}
	if w.IsPropertyPresent("Bogus") {
		t.Error("initialiser created a property")
	}
}

func TestCleanUpWidgetOwnershipMismatch(t *testing.T) {
	_, look := buttonLook(t, nil)
	w := newFakeWindow("btn", 80, 24)
	w.look = "Button"
	if err := look.InitialiseWidget(w); err != nil {
		t.Fatal(err)
	}

	w.look = "Other"
	if err := look.CleanUpWidget(w); !errors.Is(err, ErrOwnershipMismatch) {
		t.Fatalf("err = %v, want ErrOwnershipMismatch", err)
	}
	if len(w.children) != 1 || len(w.added) == 0 {
		t.Error("mismatched clean-up modified the window")
	}
}

func TestCleanUpWidgetMissingChild(t *testing.T) {
	_, look := buttonLook(t, nil)
	w := newFakeWindow("btn", 80, 24)
	w.look = "Button"
	if err := look.InitialiseWidget(w); err != nil {
		t.Fatal(err)
	}
	delete(w.children, "__label__")
	if err := look.CleanUpWidget(w); err != nil {
		t.Errorf("clean-up with a missing child: %v", err)
	}
}

func TestAnimationsWithoutManager(t *testing.T) {
	_, look := buttonLook(t, nil)
	w := newFakeWindow("btn", 80, 24)
	w.look = "Button"
	if err := look.InitialiseWidget(w); err != nil {
		t.Fatal(err)
	}
	if n := len(look.AnimationInstances(w)); n != 0 {
		t.Errorf("got %d instances without a manager", n)
	}
}

func TestInitialiseWidgetCycle(t *testing.T) {
	m := NewManager()
	m.Register(NewWidgetLookFeel("A", "B"))
	b := NewWidgetLookFeel("B", "A")
	m.Register(b)
	if err := b.InitialiseWidget(newFakeWindow("w", 1, 1)); !errors.Is(err, ErrInheritanceCycle) {
		t.Errorf("err = %v, want ErrInheritanceCycle", err)
	}
}

func TestPropertyDefinition(t *testing.T) {
	d := NewPropertyDefinition("Highlight", "FF00FF00", "ColourRect")
	d.SetRedrawOnWrite(true)
	d.SetLayoutOnWrite(true)
	w := newFakeWindow("w", 1, 1)

	if v, _ := d.Get(w); v != "FF00FF00" {
		t.Errorf("unset Get = %q, want the initial value", v)
	}
	if err := d.Set(w, "FFFF0000"); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Get(w); v != "FFFF0000" {
		t.Errorf("Get = %q after Set", v)
	}
	if got := w.users["Highlight"+userStringSuffix]; got != "FFFF0000" {
		t.Errorf("user string = %q", got)
	}
	if w.invalidated != 1 || w.layouts != 1 {
		t.Errorf("invalidated %d, layouts %d; want 1 and 1", w.invalidated, w.layouts)
	}

	plain := NewPropertyDefinition("Quiet", "", "String")
	if err := plain.Set(w, "x"); err != nil {
		t.Fatal(err)
	}
	if w.invalidated != 1 || w.layouts != 1 {
		t.Error("property without write flags notified the window")
	}
}

func TestPropertyLinkDefinition(t *testing.T) {
	w := newFakeWindow("w", 1, 1)
	a, _ := w.CreateChild("Label", "a")
	b, _ := w.CreateChild("Label", "b")
	b.(*fakeWindow).props["Caption"] = ""

	link := NewPropertyLinkDefinition("Caption", "init", "String")
	link.AddTarget("a", "Text")
	link.AddTarget("b", "")
	link.AddTarget("missing", "Text")
	link.AddTarget("", "Tooltip")

	if err := link.Set(w, "hi"); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Property("Text"); v != "hi" {
		t.Errorf("a.Text = %q", v)
	}
	if v, _ := b.Property("Caption"); v != "hi" {
		t.Errorf("b.Caption = %q, want the link name as the default target", v)
	}
	if w.props["Tooltip"] != "hi" {
		t.Errorf("owner Tooltip = %q", w.props["Tooltip"])
	}

	_ = a.SetProperty("Text", "changed")
	if v, _ := link.Get(w); v != "changed" {
		t.Errorf("Get = %q, want the first target's value", v)
	}

	lonely := NewPropertyLinkDefinition("Lonely", "init", "String")
	if v, _ := lonely.Get(w); v != "init" {
		t.Errorf("untargeted Get = %q", v)
	}
	lonely.AddTarget("ghost", "")
	if err := lonely.Set(w, "v"); err != nil {
		t.Fatal(err)
	}
	if v, _ := lonely.Get(w); v != "v" {
		t.Errorf("Get with unavailable targets = %q, want the stored value", v)
	}
	if diff := cmp.Diff([]PropertyLinkTarget{{Widget: "ghost"}}, lonely.Targets()); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestPropertyLinkSelfTarget(t *testing.T) {
	w := newFakeWindow("w", 1, 1)
	link := NewPropertyLinkDefinition("Caption", "", "String")
	link.AddTarget("", "")
	if err := link.Set(w, "x"); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.props["Caption"]; ok {
		t.Error("self-referential target wrote the owner property")
	}
}
