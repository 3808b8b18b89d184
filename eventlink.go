package falagard

import "fmt"

// EventLinkTarget names an event fired by a child of the owner.
type EventLinkTarget struct {
	Widget string
	Event  string
}

// EventLinkDefinition makes a window fire the named event whenever any
// target child fires its target event.
type EventLinkDefinition struct {
	Name    string
	Targets []EventLinkTarget
}

// NewEventLinkDefinition returns a definition for the named event.
func NewEventLinkDefinition(name string, targets ...EventLinkTarget) EventLinkDefinition {
	return EventLinkDefinition{Name: name, Targets: targets}
}

// InitialiseWidget wires every target on w.
func (d EventLinkDefinition) InitialiseWidget(w Window) error {
	for _, t := range d.Targets {
		if err := w.LinkEvent(d.Name, t.Widget, t.Event); err != nil {
			return fmt.Errorf("falagard: link event %q to %s/%s: %w", d.Name, t.Widget, t.Event, err)
		}
	}
	return nil
}

// CleanUpWidget removes every link for the event from w.
func (d EventLinkDefinition) CleanUpWidget(w Window) {
	w.UnlinkEvent(d.Name)
}

func (d EventLinkDefinition) writeXML(xw *XMLWriter) {
	xw.OpenTag("EventLinkDefinition").Attribute("name", d.Name)
	for _, t := range d.Targets {
		xw.OpenTag("LinkedEvent")
		if t.Widget != "" {
			xw.Attribute("widget", t.Widget)
		}
		xw.Attribute("event", t.Event).CloseTag()
	}
	xw.CloseTag()
}
