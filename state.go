package falagard

import (
	"fmt"
	"sort"
)

// SectionSpecification references an imagery section of some look and
// says when and with what colours to draw it.
type SectionSpecification struct {
	// Owner names the look that defines Section.
	Owner   string
	Section string

	// Colours overrides the section colours when set. ColoursProperty
	// takes precedence when it names a parseable window property.
	Colours         *ColourRect
	ColoursProperty string

	// RenderControlProperty, when set, names a property that must read
	// "true" (or RenderControlValue, when that is set) for the section to
	// be drawn. The property is read from RenderControlWidget, a child of
	// the window, when that is set.
	RenderControlProperty string
	RenderControlValue    string
	RenderControlWidget   string
}

// SectionSpec is shorthand for an unconditional, uncoloured specification.
func SectionSpec(owner, section string) SectionSpecification {
	return SectionSpecification{Owner: owner, Section: section}
}

// ShouldDraw evaluates the render condition against w.
func (s SectionSpecification) ShouldDraw(w Window) bool {
	if s.RenderControlProperty == "" {
		return true
	}
	var src PropertySource = w
	if s.RenderControlWidget != "" {
		child, err := w.Child(s.RenderControlWidget)
		if err != nil {
			return false
		}
		src = child
	}
	v, err := src.Property(s.RenderControlProperty)
	if err != nil {
		return false
	}
	if s.RenderControlValue == "" {
		return v == "true" || v == "True"
	}
	return v == s.RenderControlValue
}

func (s SectionSpecification) colours(w PropertySource) ColourRect {
	if s.ColoursProperty != "" {
		if v, err := w.Property(s.ColoursProperty); err == nil {
			if cr, err := ParseColourRect(v); err == nil {
				return cr
			}
		}
	}
	if s.Colours != nil {
		return *s.Colours
	}
	return Uniform(White)
}

// Render draws the referenced section if its render condition holds. An
// empty Owner refers to look itself.
func (s SectionSpecification) Render(w Window, look *WidgetLookFeel, base Rect, mod *ColourRect, clip *Rect, clipToDisplay bool) error {
	if !s.ShouldDraw(w) {
		return nil
	}
	sect, err := look.sectionFor(s.Owner, s.Section)
	if err != nil {
		return err
	}
	cols := s.colours(w)
	if mod != nil {
		cols = cols.Modulate(*mod)
	}
	return sect.Render(w, base, &cols, clip, clipToDisplay)
}

func (s SectionSpecification) writeXML(xw *XMLWriter) {
	xw.OpenTag("Section")
	if s.Owner != "" {
		xw.Attribute("look", s.Owner)
	}
	xw.Attribute("section", s.Section)
	if s.RenderControlProperty != "" {
		xw.Attribute("controlProperty", s.RenderControlProperty)
	}
	if s.RenderControlValue != "" {
		xw.Attribute("controlValue", s.RenderControlValue)
	}
	if s.RenderControlWidget != "" {
		xw.Attribute("controlWidget", s.RenderControlWidget)
	}
	switch {
	case s.ColoursProperty != "":
		xw.OpenTag("ColourRectProperty").Attribute("name", s.ColoursProperty).CloseTag()
	case s.Colours != nil:
		writeColoursXML(xw, *s.Colours)
	}
	xw.CloseTag()
}

// LayerSpecification is one layer of a state: sections drawn in order.
type LayerSpecification struct {
	Priority int
	Sections []SectionSpecification
}

// NewLayer returns a layer holding specs.
func NewLayer(priority int, specs ...SectionSpecification) LayerSpecification {
	return LayerSpecification{Priority: priority, Sections: specs}
}

// StateImagery maps a widget state to layers of sections. Layers paint in
// ascending priority; equal priorities keep insertion order.
type StateImagery struct {
	name    string
	clipped bool
	layers  []LayerSpecification
}

// NewStateImagery creates an empty, clipped state.
func NewStateImagery(name string) *StateImagery {
	return &StateImagery{name: name, clipped: true}
}

func (s *StateImagery) Name() string { return s.name }

// Clipped reports whether the state is clipped to its window. Unclipped
// states draw with clipToDisplay set.
func (s *StateImagery) Clipped() bool { return s.clipped }

func (s *StateImagery) SetClipped(v bool) { s.clipped = v }

// AddLayer inserts l keeping layers sorted by priority.
func (s *StateImagery) AddLayer(l LayerSpecification) {
	s.layers = append(s.layers, l)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Priority < s.layers[j].Priority
	})
}

// Layers returns the layers in paint order.
func (s *StateImagery) Layers() []LayerSpecification { return s.layers }

// Render paints every layer in order against base. Section owners are
// resolved through look.
func (s *StateImagery) Render(w Window, look *WidgetLookFeel, base Rect, mod *ColourRect, clip *Rect) error {
	for _, l := range s.layers {
		for _, spec := range l.Sections {
			if err := spec.Render(w, look, base, mod, clip, !s.clipped); err != nil {
				return fmt.Errorf("falagard: state %q section %q: %w", s.name, spec.Section, err)
			}
		}
	}
	return nil
}

// WriteXML writes the state as a StateImagery element.
func (s *StateImagery) WriteXML(xw *XMLWriter) error {
	xw.OpenTag("StateImagery").Attribute("name", s.name)
	if !s.clipped {
		xw.Attribute("clipped", "false")
	}
	for _, l := range s.layers {
		xw.OpenTag("Layer")
		if l.Priority != 0 {
			xw.Attribute("priority", fmt.Sprint(l.Priority))
		}
		for _, spec := range l.Sections {
			spec.writeXML(xw)
		}
		xw.CloseTag()
	}
	xw.CloseTag()
	return xw.Err()
}
