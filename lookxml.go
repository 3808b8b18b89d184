package falagard

// WriteXML writes the look as a WidgetLook element. Only the look's own
// definitions are written, in this order: property definitions, property
// link definitions, property initialisers, named areas, child widgets,
// imagery sections, state imagery, event links and animations. Named
// areas, sections and states are sorted by name; the rest keep the order
// they were added in.
func (l *WidgetLookFeel) WriteXML(xw *XMLWriter) error {
	xw.OpenTag("WidgetLook").Attribute("name", l.name)
	if l.inherits != "" {
		xw.Attribute("inherits", l.inherits)
	}

	for _, d := range l.propertyDefs {
		d.writeXML(xw)
	}
	for _, d := range l.linkDefs {
		d.writeXML(xw)
	}
	for _, p := range l.initialisers {
		p.writeXML(xw)
	}
	for _, name := range sortedKeys(l.areas) {
		l.areas[name].writeXML(xw)
	}
	for _, c := range l.children {
		c.writeXML(xw)
	}
	for _, name := range sortedKeys(l.sections) {
		if err := l.sections[name].WriteXML(xw); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(l.states) {
		if err := l.states[name].WriteXML(xw); err != nil {
			return err
		}
	}
	for _, d := range l.eventLinks {
		d.writeXML(xw)
	}
	for _, a := range l.animations {
		xw.OpenTag("AnimationDefinition").Attribute("name", a).CloseTag()
	}

	xw.CloseTag()
	return xw.Err()
}
