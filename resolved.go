package falagard

// ResolvedLook is a look with its inheritance chain folded in: one map per
// namespace holding the winning definition of every name. It is built by
// Flatten and never changes afterwards.
type ResolvedLook struct {
	look *WidgetLookFeel

	states       map[string]*StateImagery
	sections     map[string]*ImagerySection
	areas        map[string]NamedArea
	initialisers map[string]PropertyInitialiser
	propertyDefs map[string]*PropertyDefinition
	linkDefs     map[string]*PropertyLinkDefinition
	eventLinks   map[string]EventLinkDefinition
	children     map[string]*WidgetComponent
	animations   []string
}

// Flatten walks the inheritance chain once and returns the resolved look.
// A cycle in the chain is reported as a *CycleError.
func (l *WidgetLookFeel) Flatten() (*ResolvedLook, error) {
	r := &ResolvedLook{look: l}
	var err error
	if r.states, err = l.AllStateImagery(true); err != nil {
		return nil, err
	}
	if r.sections, err = l.AllImagerySections(true); err != nil {
		return nil, err
	}
	if r.areas, err = l.AllNamedAreas(true); err != nil {
		return nil, err
	}
	if r.initialisers, err = l.AllPropertyInitialisers(true); err != nil {
		return nil, err
	}
	if r.propertyDefs, err = l.AllPropertyDefinitions(true); err != nil {
		return nil, err
	}
	if r.linkDefs, err = l.AllPropertyLinkDefinitions(true); err != nil {
		return nil, err
	}
	if r.eventLinks, err = l.AllEventLinkDefinitions(true); err != nil {
		return nil, err
	}
	if r.children, err = l.AllWidgetComponents(true); err != nil {
		return nil, err
	}
	if r.animations, err = l.AnimationNames(true); err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the name of the look that was flattened.
func (r *ResolvedLook) Name() string { return r.look.name }

// Look returns the look that was flattened.
func (r *ResolvedLook) Look() *WidgetLookFeel { return r.look }

func (r *ResolvedLook) unknown(kind LookupKind, name string) error {
	return &LookupError{Kind: kind, Name: name, Look: r.look.name}
}

func (r *ResolvedLook) StateImagery(name string) (*StateImagery, error) {
	if s, ok := r.states[name]; ok {
		return s, nil
	}
	return nil, r.unknown(KindStateImagery, name)
}

func (r *ResolvedLook) ImagerySection(name string) (*ImagerySection, error) {
	if s, ok := r.sections[name]; ok {
		return s, nil
	}
	return nil, r.unknown(KindImagerySection, name)
}

func (r *ResolvedLook) NamedArea(name string) (NamedArea, error) {
	if a, ok := r.areas[name]; ok {
		return a, nil
	}
	return NamedArea{}, r.unknown(KindNamedArea, name)
}

func (r *ResolvedLook) PropertyInitialiser(name string) (PropertyInitialiser, error) {
	if p, ok := r.initialisers[name]; ok {
		return p, nil
	}
	return PropertyInitialiser{}, r.unknown(KindPropertyInitialiser, name)
}

func (r *ResolvedLook) PropertyDefinition(name string) (*PropertyDefinition, error) {
	if d, ok := r.propertyDefs[name]; ok {
		return d, nil
	}
	return nil, r.unknown(KindPropertyDefinition, name)
}

func (r *ResolvedLook) PropertyLinkDefinition(name string) (*PropertyLinkDefinition, error) {
	if d, ok := r.linkDefs[name]; ok {
		return d, nil
	}
	return nil, r.unknown(KindPropertyLinkDefinition, name)
}

func (r *ResolvedLook) EventLinkDefinition(name string) (EventLinkDefinition, error) {
	if d, ok := r.eventLinks[name]; ok {
		return d, nil
	}
	return EventLinkDefinition{}, r.unknown(KindEventLinkDefinition, name)
}

func (r *ResolvedLook) WidgetComponent(name string) (*WidgetComponent, error) {
	if c, ok := r.children[name]; ok {
		return c, nil
	}
	return nil, r.unknown(KindWidgetComponent, name)
}

func (r *ResolvedLook) StateNames() []string { return sortedKeys(r.states) }

func (r *ResolvedLook) ImagerySectionNames() []string { return sortedKeys(r.sections) }

func (r *ResolvedLook) NamedAreaNames() []string { return sortedKeys(r.areas) }

func (r *ResolvedLook) PropertyInitialiserNames() []string { return sortedKeys(r.initialisers) }

func (r *ResolvedLook) PropertyDefinitionNames() []string { return sortedKeys(r.propertyDefs) }

func (r *ResolvedLook) PropertyLinkDefinitionNames() []string { return sortedKeys(r.linkDefs) }

func (r *ResolvedLook) EventLinkDefinitionNames() []string { return sortedKeys(r.eventLinks) }

func (r *ResolvedLook) WidgetComponentNames() []string { return sortedKeys(r.children) }

func (r *ResolvedLook) AnimationNames() []string {
	return append([]string(nil), r.animations...)
}

// Render draws the named state of w over the whole window.
func (r *ResolvedLook) Render(w Window, state string, mod *ColourRect, clip *Rect) error {
	s, err := r.StateImagery(state)
	if err != nil {
		return err
	}
	return s.Render(w, r.look, WindowRect(w), mod, clip)
}
