package falagard

import "fmt"

// userStringSuffix is appended to a property definition's name to form
// the user string that stores its value.
const userStringSuffix = "_fal_auto_prop__"

// PropertyInitialiser assigns a value to a window property when a look is
// applied to the window.
type PropertyInitialiser struct {
	Target string
	Value  string
}

// Apply writes the value to w.
func (p PropertyInitialiser) Apply(w Window) error {
	if err := w.SetProperty(p.Target, p.Value); err != nil {
		return fmt.Errorf("falagard: initialise property %q: %w", p.Target, err)
	}
	return nil
}

func (p PropertyInitialiser) writeXML(xw *XMLWriter) {
	xw.OpenTag("Property").
		Attribute("name", p.Target).
		Attribute("value", p.Value).
		CloseTag()
}

// propertyBase holds what definitions and link definitions share.
type propertyBase struct {
	name     string
	initial  string
	help     string
	dataType string
	redraw   bool
	layout   bool
}

func (p *propertyBase) Name() string { return p.name }

// Default implements Property.
func (p *propertyBase) Default(Window) string { return p.initial }

func (p *propertyBase) Help() string { return p.help }

func (p *propertyBase) SetHelp(s string) { p.help = s }

func (p *propertyBase) DataType() string { return p.dataType }

func (p *propertyBase) RedrawOnWrite() bool { return p.redraw }

func (p *propertyBase) SetRedrawOnWrite(v bool) { p.redraw = v }

func (p *propertyBase) LayoutOnWrite() bool { return p.layout }

func (p *propertyBase) SetLayoutOnWrite(v bool) { p.layout = v }

func (p *propertyBase) userString() string { return p.name + userStringSuffix }

// written notifies w after a write, as configured.
func (p *propertyBase) written(w Window) {
	if p.layout {
		if l, ok := w.(ChildLayouter); ok {
			l.PerformChildLayout()
		}
	}
	if p.redraw {
		if inv, ok := w.(Invalidator); ok {
			inv.Invalidate()
		}
	}
}

func (p *propertyBase) writeAttributes(xw *XMLWriter) {
	xw.Attribute("name", p.name)
	if p.initial != "" {
		xw.Attribute("initialValue", p.initial)
	}
	if p.dataType != "" {
		xw.Attribute("type", p.dataType)
	}
	if p.help != "" {
		xw.Attribute("help", p.help)
	}
	if p.redraw {
		xw.Attribute("redrawOnWrite", "true")
	}
	if p.layout {
		xw.Attribute("layoutOnWrite", "true")
	}
}

// PropertyDefinition is a look-defined window property whose value lives in
// a window user string.
type PropertyDefinition struct {
	propertyBase
}

// NewPropertyDefinition creates a definition with the given default value.
func NewPropertyDefinition(name, initial, dataType string) *PropertyDefinition {
	return &PropertyDefinition{propertyBase{name: name, initial: initial, dataType: dataType}}
}

// Get implements Property.
func (d *PropertyDefinition) Get(w Window) (string, error) {
	if v, ok := w.UserString(d.userString()); ok {
		return v, nil
	}
	return d.initial, nil
}

// Set implements Property.
func (d *PropertyDefinition) Set(w Window, value string) error {
	w.SetUserString(d.userString(), value)
	d.written(w)
	return nil
}

func (d *PropertyDefinition) writeXML(xw *XMLWriter) {
	xw.OpenTag("PropertyDefinition")
	d.writeAttributes(xw)
	xw.CloseTag()
}

// PropertyLinkTarget names a property on the owner (empty Widget) or on
// one of its children. An empty Property means the link's own name.
type PropertyLinkTarget struct {
	Widget   string
	Property string
}

// PropertyLinkDefinition is a look-defined property that forwards writes
// to other properties.
type PropertyLinkDefinition struct {
	propertyBase
	targets []PropertyLinkTarget
}

// NewPropertyLinkDefinition creates a link with the given default value.
func NewPropertyLinkDefinition(name, initial, dataType string) *PropertyLinkDefinition {
	return &PropertyLinkDefinition{propertyBase: propertyBase{name: name, initial: initial, dataType: dataType}}
}

// AddTarget appends a forwarding target.
func (d *PropertyLinkDefinition) AddTarget(widget, property string) {
	d.targets = append(d.targets, PropertyLinkTarget{Widget: widget, Property: property})
}

func (d *PropertyLinkDefinition) Targets() []PropertyLinkTarget { return d.targets }

func (d *PropertyLinkDefinition) ClearTargets() { d.targets = nil }

func (d *PropertyLinkDefinition) resolve(w Window, t PropertyLinkTarget) (Window, string, error) {
	prop := t.Property
	if prop == "" {
		prop = d.name
	}
	if t.Widget == "" {
		if prop == d.name {
			return nil, "", fmt.Errorf("%w: property link %q targets itself", ErrInvalidValue, d.name)
		}
		return w, prop, nil
	}
	child, err := w.Child(t.Widget)
	if err != nil {
		return nil, "", err
	}
	return child, prop, nil
}

// Get implements Property. The value is read from the first target that
// exists, falling back to the stored value.
func (d *PropertyLinkDefinition) Get(w Window) (string, error) {
	for _, t := range d.targets {
		target, prop, err := d.resolve(w, t)
		if err != nil {
			continue
		}
		return target.Property(prop)
	}
	if v, ok := w.UserString(d.userString()); ok {
		return v, nil
	}
	return d.initial, nil
}

// Set implements Property. The value is stored and written to every
// target; targets on children that do not exist yet are skipped.
func (d *PropertyLinkDefinition) Set(w Window, value string) error {
	w.SetUserString(d.userString(), value)
	for _, t := range d.targets {
		target, prop, err := d.resolve(w, t)
		if err != nil {
			Logger().Debug("falagard: property link target unavailable",
				"link", d.name, "widget", t.Widget, "err", err)
			continue
		}
		if err := target.SetProperty(prop, value); err != nil {
			return fmt.Errorf("falagard: property link %q: %w", d.name, err)
		}
	}
	d.written(w)
	return nil
}

func (d *PropertyLinkDefinition) writeXML(xw *XMLWriter) {
	xw.OpenTag("PropertyLinkDefinition")
	d.writeAttributes(xw)
	for _, t := range d.targets {
		xw.OpenTag("PropertyLinkTarget")
		if t.Widget != "" {
			xw.Attribute("widget", t.Widget)
		}
		if t.Property != "" {
			xw.Attribute("property", t.Property)
		}
		xw.CloseTag()
	}
	xw.CloseTag()
}

var (
	_ Property = (*PropertyDefinition)(nil)
	_ Property = (*PropertyLinkDefinition)(nil)
)
