package falagard

import "fmt"

// Property names the engine writes on child windows it creates.
const (
	LookNFeelProperty      = "LookNFeel"
	WindowRendererProperty = "WindowRenderer"
)

// WidgetComponent describes a child window a look creates inside its owner.
type WidgetComponent struct {
	Name     string
	Type     string
	Look     string
	Renderer string

	Area      ComponentArea
	HorzAlign HorizontalAlignment
	VertAlign VerticalAlignment

	// Properties are applied to the child after it is created.
	Properties []PropertyInitialiser
}

// Create makes the child window inside parent and configures it.
func (c *WidgetComponent) Create(parent Window) (Window, error) {
	child, err := parent.CreateChild(c.Type, c.Name)
	if err != nil {
		return nil, fmt.Errorf("falagard: create child %q: %w", c.Name, err)
	}
	if c.Renderer != "" {
		if err := child.SetProperty(WindowRendererProperty, c.Renderer); err != nil {
			return nil, fmt.Errorf("falagard: child %q renderer: %w", c.Name, err)
		}
	}
	if c.Look != "" {
		if err := child.SetProperty(LookNFeelProperty, c.Look); err != nil {
			return nil, fmt.Errorf("falagard: child %q look: %w", c.Name, err)
		}
	}
	for _, p := range c.Properties {
		if err := p.Apply(child); err != nil {
			return nil, err
		}
	}
	return child, nil
}

// Layout positions the child within owner.
func (c *WidgetComponent) Layout(owner Window) error {
	child, err := owner.Child(c.Name)
	if err != nil {
		return fmt.Errorf("falagard: layout child %q: %w", c.Name, err)
	}
	area := c.Area.Area
	if c.Area.Property != "" {
		v, err := owner.Property(c.Area.Property)
		if err != nil {
			return fmt.Errorf("falagard: layout child %q: %w", c.Name, err)
		}
		if area, err = ParseURect(v); err != nil {
			return fmt.Errorf("falagard: layout child %q: %w", c.Name, err)
		}
	}
	child.SetArea(area)
	child.SetAlignment(c.HorzAlign, c.VertAlign)
	return nil
}

func (c *WidgetComponent) writeXML(xw *XMLWriter) {
	xw.OpenTag("Child").
		Attribute("type", c.Type).
		Attribute("nameSuffix", c.Name)
	if c.Look != "" {
		xw.Attribute("look", c.Look)
	}
	if c.Renderer != "" {
		xw.Attribute("renderer", c.Renderer)
	}
	c.Area.writeXML(xw)
	if c.HorzAlign != AlignLeft {
		xw.OpenTag("HorzAlignment").Attribute("type", c.HorzAlign.String()).CloseTag()
	}
	if c.VertAlign != AlignTop {
		xw.OpenTag("VertAlignment").Attribute("type", c.VertAlign.String()).CloseTag()
	}
	for _, p := range c.Properties {
		p.writeXML(xw)
	}
	xw.CloseTag()
}
