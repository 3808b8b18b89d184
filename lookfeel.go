package falagard

import (
	"fmt"
	"sort"
	"sync"
)

// LookRegistry finds looks by name. Looks walk their inheritance chain
// through it. *Manager implements it.
type LookRegistry interface {
	Lookup(name string) (*WidgetLookFeel, error)
}

// WidgetLookFeel is a named skin for one kind of widget. It may inherit
// from another look by name; every lookup walks the chain and the most
// derived definition of a name wins.
//
// Looks are built once and then only read, except for the record of
// animation instances kept per window, which is safe for concurrent use.
type WidgetLookFeel struct {
	name     string
	inherits string
	registry LookRegistry
	anims    AnimationManager

	states       map[string]*StateImagery
	sections     map[string]*ImagerySection
	areas        map[string]NamedArea
	initialisers []PropertyInitialiser
	propertyDefs []*PropertyDefinition
	linkDefs     []*PropertyLinkDefinition
	eventLinks   []EventLinkDefinition
	children     []*WidgetComponent
	animations   []string

	mu        sync.Mutex
	instances map[Window][]AnimationInstance
}

// NewWidgetLookFeel creates an empty look. inherits may be empty.
func NewWidgetLookFeel(name, inherits string) *WidgetLookFeel {
	return &WidgetLookFeel{
		name:      name,
		inherits:  inherits,
		states:    make(map[string]*StateImagery),
		sections:  make(map[string]*ImagerySection),
		areas:     make(map[string]NamedArea),
		instances: make(map[Window][]AnimationInstance),
	}
}

func (l *WidgetLookFeel) Name() string { return l.name }

// Inherits returns the name of the parent look, or "".
func (l *WidgetLookFeel) Inherits() string { return l.inherits }

// SetRegistry sets the registry used to find parent and section owner looks.
func (l *WidgetLookFeel) SetRegistry(r LookRegistry) { l.registry = r }

// SetAnimationManager sets where animation instances come from.
func (l *WidgetLookFeel) SetAnimationManager(m AnimationManager) { l.anims = m }

func (l *WidgetLookFeel) AddStateImagery(s *StateImagery) {
	if _, ok := l.states[s.Name()]; ok {
		l.warnReplace(KindStateImagery, s.Name())
	}
	l.states[s.Name()] = s
}

func (l *WidgetLookFeel) AddImagerySection(s *ImagerySection) {
	if _, ok := l.sections[s.Name()]; ok {
		l.warnReplace(KindImagerySection, s.Name())
	}
	l.sections[s.Name()] = s
}

func (l *WidgetLookFeel) AddNamedArea(a NamedArea) {
	if _, ok := l.areas[a.Name]; ok {
		l.warnReplace(KindNamedArea, a.Name)
	}
	l.areas[a.Name] = a
}

// AddPropertyInitialiser appends p. A later initialiser for the same
// property replaces an earlier one.
func (l *WidgetLookFeel) AddPropertyInitialiser(p PropertyInitialiser) {
	l.initialisers = append(l.initialisers, p)
}

func (l *WidgetLookFeel) AddPropertyDefinition(d *PropertyDefinition) {
	l.propertyDefs = append(l.propertyDefs, d)
}

func (l *WidgetLookFeel) AddPropertyLinkDefinition(d *PropertyLinkDefinition) {
	l.linkDefs = append(l.linkDefs, d)
}

func (l *WidgetLookFeel) AddEventLinkDefinition(d EventLinkDefinition) {
	l.eventLinks = append(l.eventLinks, d)
}

func (l *WidgetLookFeel) AddWidgetComponent(c *WidgetComponent) {
	l.children = append(l.children, c)
}

// AddAnimationName adds name unless it is already listed.
func (l *WidgetLookFeel) AddAnimationName(name string) {
	for _, a := range l.animations {
		if a == name {
			return
		}
	}
	l.animations = append(l.animations, name)
}

func (l *WidgetLookFeel) ClearStateImagery() { l.states = make(map[string]*StateImagery) }

func (l *WidgetLookFeel) ClearImagerySections() { l.sections = make(map[string]*ImagerySection) }

func (l *WidgetLookFeel) ClearNamedAreas() { l.areas = make(map[string]NamedArea) }

func (l *WidgetLookFeel) ClearPropertyInitialisers() { l.initialisers = nil }

func (l *WidgetLookFeel) ClearPropertyDefinitions() { l.propertyDefs = nil }

func (l *WidgetLookFeel) ClearPropertyLinkDefinitions() { l.linkDefs = nil }

func (l *WidgetLookFeel) ClearEventLinkDefinitions() { l.eventLinks = nil }

func (l *WidgetLookFeel) ClearWidgetComponents() { l.children = nil }

func (l *WidgetLookFeel) ClearAnimationNames() { l.animations = nil }

func (l *WidgetLookFeel) warnReplace(kind LookupKind, name string) {
	Logger().Warn("falagard: replacing previous definition",
		"look", l.name, "kind", string(kind), "name", name)
}

// chain returns l followed by its ancestors, nearest first.
func (l *WidgetLookFeel) chain() ([]*WidgetLookFeel, error) {
	out := []*WidgetLookFeel{l}
	seen := map[string]bool{l.name: true}
	names := []string{l.name}
	for cur := l; cur.inherits != ""; {
		names = append(names, cur.inherits)
		if seen[cur.inherits] {
			return nil, &CycleError{Chain: names}
		}
		seen[cur.inherits] = true
		if l.registry == nil {
			return nil, fmt.Errorf("%w: look %q inherited by %q", ErrUnknownObject, cur.inherits, cur.name)
		}
		next, err := l.registry.Lookup(cur.inherits)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

// ancestry returns the chain ordered root first when inherit is set, or
// just l otherwise.
func (l *WidgetLookFeel) ancestry(inherit bool) ([]*WidgetLookFeel, error) {
	if !inherit {
		return []*WidgetLookFeel{l}, nil
	}
	c, err := l.chain()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
	return c, nil
}

// find walks the chain nearest first and returns the first hit of get.
func find[T any](l *WidgetLookFeel, kind LookupKind, name string, get func(*WidgetLookFeel) (T, bool)) (T, error) {
	var zero T
	c, err := l.chain()
	if err != nil {
		return zero, err
	}
	for i, look := range c {
		if v, ok := get(look); ok {
			if i > 0 {
				Logger().Debug("falagard: inherited lookup",
					"look", l.name, "kind", string(kind), "name", name, "from", look.name)
			}
			return v, nil
		}
	}
	return zero, &LookupError{Kind: kind, Name: name, Look: l.name}
}

// merge builds a name-keyed map over the chain, root first, so that more
// derived definitions replace inherited ones.
func merge[T any](l *WidgetLookFeel, inherit bool, each func(*WidgetLookFeel, func(string, T))) (map[string]T, error) {
	c, err := l.ancestry(inherit)
	if err != nil {
		return nil, err
	}
	out := make(map[string]T)
	for _, look := range c {
		each(look, func(name string, v T) { out[name] = v })
	}
	return out, nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (l *WidgetLookFeel) ownState(name string) (*StateImagery, bool) {
	s, ok := l.states[name]
	return s, ok
}

func (l *WidgetLookFeel) ownSection(name string) (*ImagerySection, bool) {
	s, ok := l.sections[name]
	return s, ok
}

func (l *WidgetLookFeel) ownArea(name string) (NamedArea, bool) {
	a, ok := l.areas[name]
	return a, ok
}

// lastNamed returns the last element of list whose key is name.
func lastNamed[T any](list []T, name string, key func(T) string) (T, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if key(list[i]) == name {
			return list[i], true
		}
	}
	var zero T
	return zero, false
}

func initialiserKey(p PropertyInitialiser) string { return p.Target }

func propertyDefKey(d *PropertyDefinition) string { return d.Name() }

func linkDefKey(d *PropertyLinkDefinition) string { return d.Name() }

func eventLinkKey(d EventLinkDefinition) string { return d.Name }

func childKey(c *WidgetComponent) string { return c.Name }

// StateImagery returns the named state.
func (l *WidgetLookFeel) StateImagery(name string) (*StateImagery, error) {
	return find(l, KindStateImagery, name, func(look *WidgetLookFeel) (*StateImagery, bool) {
		return look.ownState(name)
	})
}

// IsStateImageryPresent reports whether any look in the chain defines name.
func (l *WidgetLookFeel) IsStateImageryPresent(name string) bool {
	_, err := l.StateImagery(name)
	return err == nil
}

// AllStateImagery returns the states by name, with inherited ones when
// inherit is set.
func (l *WidgetLookFeel) AllStateImagery(inherit bool) (map[string]*StateImagery, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, *StateImagery)) {
		for k, v := range look.states {
			put(k, v)
		}
	})
}

// StateImageryNames returns the sorted state names.
func (l *WidgetLookFeel) StateImageryNames(inherit bool) ([]string, error) {
	m, err := l.AllStateImagery(inherit)
	return sortedKeys(m), err
}

// ImagerySection returns the named section.
func (l *WidgetLookFeel) ImagerySection(name string) (*ImagerySection, error) {
	return find(l, KindImagerySection, name, func(look *WidgetLookFeel) (*ImagerySection, bool) {
		return look.ownSection(name)
	})
}

func (l *WidgetLookFeel) IsImagerySectionPresent(name string) bool {
	_, err := l.ImagerySection(name)
	return err == nil
}

func (l *WidgetLookFeel) AllImagerySections(inherit bool) (map[string]*ImagerySection, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, *ImagerySection)) {
		for k, v := range look.sections {
			put(k, v)
		}
	})
}

func (l *WidgetLookFeel) ImagerySectionNames(inherit bool) ([]string, error) {
	m, err := l.AllImagerySections(inherit)
	return sortedKeys(m), err
}

// NamedArea returns the named area.
func (l *WidgetLookFeel) NamedArea(name string) (NamedArea, error) {
	return find(l, KindNamedArea, name, func(look *WidgetLookFeel) (NamedArea, bool) {
		return look.ownArea(name)
	})
}

func (l *WidgetLookFeel) IsNamedAreaDefined(name string) bool {
	_, err := l.NamedArea(name)
	return err == nil
}

func (l *WidgetLookFeel) AllNamedAreas(inherit bool) (map[string]NamedArea, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, NamedArea)) {
		for k, v := range look.areas {
			put(k, v)
		}
	})
}

func (l *WidgetLookFeel) NamedAreaNames(inherit bool) ([]string, error) {
	m, err := l.AllNamedAreas(inherit)
	return sortedKeys(m), err
}

// PropertyInitialiser returns the initialiser targeting the named property.
func (l *WidgetLookFeel) PropertyInitialiser(name string) (PropertyInitialiser, error) {
	return find(l, KindPropertyInitialiser, name, func(look *WidgetLookFeel) (PropertyInitialiser, bool) {
		return lastNamed(look.initialisers, name, initialiserKey)
	})
}

func (l *WidgetLookFeel) IsPropertyInitialiserPresent(name string) bool {
	_, err := l.PropertyInitialiser(name)
	return err == nil
}

// FindPropertyInitialiser is PropertyInitialiser reporting absence with a
// bool.
func (l *WidgetLookFeel) FindPropertyInitialiser(name string) (PropertyInitialiser, bool) {
	p, err := l.PropertyInitialiser(name)
	return p, err == nil
}

func (l *WidgetLookFeel) AllPropertyInitialisers(inherit bool) (map[string]PropertyInitialiser, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, PropertyInitialiser)) {
		for _, p := range look.initialisers {
			put(p.Target, p)
		}
	})
}

func (l *WidgetLookFeel) PropertyInitialiserNames(inherit bool) ([]string, error) {
	m, err := l.AllPropertyInitialisers(inherit)
	return sortedKeys(m), err
}

// PropertyDefinition returns the named property definition.
func (l *WidgetLookFeel) PropertyDefinition(name string) (*PropertyDefinition, error) {
	return find(l, KindPropertyDefinition, name, func(look *WidgetLookFeel) (*PropertyDefinition, bool) {
		return lastNamed(look.propertyDefs, name, propertyDefKey)
	})
}

func (l *WidgetLookFeel) IsPropertyDefinitionPresent(name string) bool {
	_, err := l.PropertyDefinition(name)
	return err == nil
}

func (l *WidgetLookFeel) AllPropertyDefinitions(inherit bool) (map[string]*PropertyDefinition, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, *PropertyDefinition)) {
		for _, d := range look.propertyDefs {
			put(d.Name(), d)
		}
	})
}

func (l *WidgetLookFeel) PropertyDefinitionNames(inherit bool) ([]string, error) {
	m, err := l.AllPropertyDefinitions(inherit)
	return sortedKeys(m), err
}

// PropertyLinkDefinition returns the named property link definition.
func (l *WidgetLookFeel) PropertyLinkDefinition(name string) (*PropertyLinkDefinition, error) {
	return find(l, KindPropertyLinkDefinition, name, func(look *WidgetLookFeel) (*PropertyLinkDefinition, bool) {
		return lastNamed(look.linkDefs, name, linkDefKey)
	})
}

func (l *WidgetLookFeel) IsPropertyLinkDefinitionPresent(name string) bool {
	_, err := l.PropertyLinkDefinition(name)
	return err == nil
}

func (l *WidgetLookFeel) AllPropertyLinkDefinitions(inherit bool) (map[string]*PropertyLinkDefinition, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, *PropertyLinkDefinition)) {
		for _, d := range look.linkDefs {
			put(d.Name(), d)
		}
	})
}

func (l *WidgetLookFeel) PropertyLinkDefinitionNames(inherit bool) ([]string, error) {
	m, err := l.AllPropertyLinkDefinitions(inherit)
	return sortedKeys(m), err
}

// EventLinkDefinition returns the named event link definition.
func (l *WidgetLookFeel) EventLinkDefinition(name string) (EventLinkDefinition, error) {
	return find(l, KindEventLinkDefinition, name, func(look *WidgetLookFeel) (EventLinkDefinition, bool) {
		return lastNamed(look.eventLinks, name, eventLinkKey)
	})
}

func (l *WidgetLookFeel) IsEventLinkDefinitionPresent(name string) bool {
	_, err := l.EventLinkDefinition(name)
	return err == nil
}

func (l *WidgetLookFeel) AllEventLinkDefinitions(inherit bool) (map[string]EventLinkDefinition, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, EventLinkDefinition)) {
		for _, d := range look.eventLinks {
			put(d.Name, d)
		}
	})
}

func (l *WidgetLookFeel) EventLinkDefinitionNames(inherit bool) ([]string, error) {
	m, err := l.AllEventLinkDefinitions(inherit)
	return sortedKeys(m), err
}

// WidgetComponent returns the child widget component with the given name.
func (l *WidgetLookFeel) WidgetComponent(name string) (*WidgetComponent, error) {
	return find(l, KindWidgetComponent, name, func(look *WidgetLookFeel) (*WidgetComponent, bool) {
		return lastNamed(look.children, name, childKey)
	})
}

func (l *WidgetLookFeel) IsWidgetComponentPresent(name string) bool {
	_, err := l.WidgetComponent(name)
	return err == nil
}

// FindWidgetComponent is WidgetComponent reporting absence with a bool.
func (l *WidgetLookFeel) FindWidgetComponent(name string) (*WidgetComponent, bool) {
	c, err := l.WidgetComponent(name)
	return c, err == nil
}

func (l *WidgetLookFeel) AllWidgetComponents(inherit bool) (map[string]*WidgetComponent, error) {
	return merge(l, inherit, func(look *WidgetLookFeel, put func(string, *WidgetComponent)) {
		for _, c := range look.children {
			put(c.Name, c)
		}
	})
}

func (l *WidgetLookFeel) WidgetComponentNames(inherit bool) ([]string, error) {
	m, err := l.AllWidgetComponents(inherit)
	return sortedKeys(m), err
}

// IsAnimationPresent reports whether any look in the chain names anim.
func (l *WidgetLookFeel) IsAnimationPresent(anim string) bool {
	_, err := find(l, KindAnimation, anim, func(look *WidgetLookFeel) (string, bool) {
		return lastNamed(look.animations, anim, func(s string) string { return s })
	})
	return err == nil
}

// AnimationNames returns the sorted, de-duplicated animation names.
func (l *WidgetLookFeel) AnimationNames(inherit bool) ([]string, error) {
	m, err := merge(l, inherit, func(look *WidgetLookFeel, put func(string, struct{})) {
		for _, a := range look.animations {
			put(a, struct{}{})
		}
	})
	return sortedKeys(m), err
}

// sectionFor finds a section owned by the named look; an empty owner, or
// l's own name, searches l's chain.
func (l *WidgetLookFeel) sectionFor(owner, name string) (*ImagerySection, error) {
	if owner == "" || owner == l.name {
		return l.ImagerySection(name)
	}
	if l.registry == nil {
		return nil, fmt.Errorf("%w: look %q", ErrUnknownObject, owner)
	}
	o, err := l.registry.Lookup(owner)
	if err != nil {
		return nil, err
	}
	return o.ImagerySection(name)
}

// Render draws the named state of w over the whole window.
func (l *WidgetLookFeel) Render(w Window, state string, mod *ColourRect, clip *Rect) error {
	s, err := l.StateImagery(state)
	if err != nil {
		return err
	}
	return s.Render(w, l, WindowRect(w), mod, clip)
}

// LayoutChildWidgets positions every child widget component within w.
func (l *WidgetLookFeel) LayoutChildWidgets(w Window) error {
	children, err := l.AllWidgetComponents(true)
	if err != nil {
		return err
	}
	for _, name := range sortedKeys(children) {
		if err := children[name].Layout(w); err != nil {
			return err
		}
	}
	return nil
}
