package falagard

import "fmt"

// InitialiseWidget applies the look to w: it creates the child widgets,
// adds the look's properties and writes their defaults, applies the
// property initialisers, links events and starts one animation instance
// per animation name. Each group is processed in name order.
func (l *WidgetLookFeel) InitialiseWidget(w Window) error {
	r, err := l.Flatten()
	if err != nil {
		return err
	}

	for _, name := range sortedKeys(r.children) {
		if _, err := r.children[name].Create(w); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(r.propertyDefs) {
		if err := addLookProperty(w, r.propertyDefs[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(r.linkDefs) {
		if err := addLookProperty(w, r.linkDefs[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(r.initialisers) {
		if err := r.initialisers[name].Apply(w); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(r.eventLinks) {
		if err := r.eventLinks[name].InitialiseWidget(w); err != nil {
			return err
		}
	}
	if err := l.startAnimations(w, r.animations); err != nil {
		return err
	}

	Logger().Info("falagard: widget initialised", "look", l.name, "window", w.Name())
	return nil
}

func addLookProperty(w Window, p Property) error {
	if err := w.AddProperty(p); err != nil {
		return fmt.Errorf("falagard: add property %q: %w", p.Name(), err)
	}
	if err := w.SetProperty(p.Name(), p.Default(w)); err != nil {
		return fmt.Errorf("falagard: default for property %q: %w", p.Name(), err)
	}
	return nil
}

func (l *WidgetLookFeel) startAnimations(w Window, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if l.anims == nil {
		Logger().Warn("falagard: look declares animations but has no animation manager",
			"look", l.name, "count", len(names))
		return nil
	}
	for _, name := range names {
		inst, err := l.anims.Instantiate(name)
		if err != nil {
			return fmt.Errorf("falagard: instantiate animation %q: %w", name, err)
		}
		l.mu.Lock()
		l.instances[w] = append(l.instances[w], inst)
		l.mu.Unlock()
		inst.SetTarget(w)
		inst.Start()
	}
	return nil
}

// CleanUpWidget undoes InitialiseWidget: the look's children, event links,
// properties and the user strings backing them are removed, and its
// animation instances destroyed. Values written by property initialisers
// stay. w must currently use this look; otherwise nothing is touched and
// the returned error wraps ErrOwnershipMismatch.
func (l *WidgetLookFeel) CleanUpWidget(w Window) error {
	if w.LookName() != l.name {
		return fmt.Errorf("%w: window %q uses look %q, not %q",
			ErrOwnershipMismatch, w.Name(), w.LookName(), l.name)
	}
	r, err := l.Flatten()
	if err != nil {
		return err
	}

	for _, name := range sortedKeys(r.children) {
		if w.IsChild(name) {
			if err := w.DestroyChild(name); err != nil {
				return fmt.Errorf("falagard: destroy child %q: %w", name, err)
			}
		}
	}
	for _, name := range sortedKeys(r.eventLinks) {
		r.eventLinks[name].CleanUpWidget(w)
	}
	for _, name := range sortedKeys(r.propertyDefs) {
		w.RemoveProperty(name)
		w.RemoveUserString(r.propertyDefs[name].userString())
	}
	for _, name := range sortedKeys(r.linkDefs) {
		w.RemoveProperty(name)
		w.RemoveUserString(r.linkDefs[name].userString())
	}

	l.mu.Lock()
	insts := l.instances[w]
	delete(l.instances, w)
	l.mu.Unlock()
	for _, inst := range insts {
		if l.anims == nil {
			break
		}
		if err := l.anims.Destroy(inst); err != nil {
			return fmt.Errorf("falagard: destroy animation instance: %w", err)
		}
	}

	Logger().Info("falagard: widget cleaned up", "look", l.name, "window", w.Name())
	return nil
}

// AnimationInstances returns the instances created for w.
func (l *WidgetLookFeel) AnimationInstances(w Window) []AnimationInstance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]AnimationInstance(nil), l.instances[w]...)
}
