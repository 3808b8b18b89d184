package falagard

import "fmt"

// Component is anything an imagery section can draw.
type Component interface {
	// Render draws the component into w's geometry buffer. base is the rect
	// the component's area is resolved against, mod optionally modulates
	// the component colours and clip optionally limits the output.
	Render(w Window, base Rect, mod *ColourRect, clip *Rect, clipToDisplay bool) error
	// Bounds returns the rect the component would draw into.
	Bounds(w Window, base Rect) (Rect, error)
	WriteXML(xw *XMLWriter) error
}

// ComponentArea locates a component relative to a base rect. The area
// is either a fixed URect or read from a window property holding one.
type ComponentArea struct {
	Area     URect
	Property string
}

// AreaOf returns a ComponentArea for a fixed URect.
func AreaOf(r URect) ComponentArea {
	return ComponentArea{Area: r}
}

// AreaFromProperty returns a ComponentArea read from the named property.
func AreaFromProperty(name string) ComponentArea {
	return ComponentArea{Area: FullArea, Property: name}
}

// PixelRect resolves the area against container.
func (a ComponentArea) PixelRect(w PropertySource, container Rect) (Rect, error) {
	area := a.Area
	if a.Property != "" {
		v, err := w.Property(a.Property)
		if err != nil {
			return Rect{}, fmt.Errorf("falagard: area property %q: %w", a.Property, err)
		}
		if area, err = ParseURect(v); err != nil {
			return Rect{}, fmt.Errorf("falagard: area property %q: %w", a.Property, err)
		}
	}
	return area.Resolve(container.Size()).Offset(container.Min), nil
}

func (a ComponentArea) writeXML(xw *XMLWriter) {
	xw.OpenTag("Area")
	if a.Property != "" {
		xw.OpenTag("AreaProperty").Attribute("name", a.Property).CloseTag()
	} else {
		writeUDimXML(xw, "LeftEdge", a.Area.Min.X)
		writeUDimXML(xw, "TopEdge", a.Area.Min.Y)
		writeUDimXML(xw, "RightEdge", a.Area.Max.X)
		writeUDimXML(xw, "BottomEdge", a.Area.Max.Y)
	}
	xw.CloseTag()
}

func writeUDimXML(xw *XMLWriter, edge string, d UDim) {
	xw.OpenTag("Dim").Attribute("type", edge).
		OpenTag("UnifiedDim").
		Attribute("scale", fmtFloat(d.Scale)).
		Attribute("offset", fmtFloat(d.Offset)).
		CloseTag().
		CloseTag()
}

// componentBase holds the area and colour state shared by all components.
type componentBase struct {
	area            ComponentArea
	colours         ColourRect
	coloursProperty string
}

func newComponentBase() componentBase {
	return componentBase{area: AreaOf(FullArea), colours: Uniform(White)}
}

func (c *componentBase) Area() ComponentArea { return c.area }
func (c *componentBase) SetArea(a ComponentArea) { c.area = a }
func (c *componentBase) Colours() ColourRect { return c.colours }
func (c *componentBase) SetColours(cr ColourRect) { c.colours = cr }
func (c *componentBase) ColoursProperty() string { return c.coloursProperty }
func (c *componentBase) SetColoursProperty(n string) { c.coloursProperty = n }

// Bounds returns the component's destination rect.
func (c *componentBase) Bounds(w Window, base Rect) (Rect, error) {
	return c.area.PixelRect(w, base)
}

// finalColours returns the colours to draw with: the property colours when
// configured and parseable, else the component colours, then modulated.
func (c *componentBase) finalColours(w PropertySource, mod *ColourRect) ColourRect {
	cr := c.colours
	if c.coloursProperty != "" && w != nil {
		v, err := w.Property(c.coloursProperty)
		if err == nil {
			if parsed, perr := ParseColourRect(v); perr == nil {
				cr = parsed
			} else {
				Logger().Warn("falagard: bad colours property",
					"property", c.coloursProperty, "value", v)
			}
		}
	}
	if mod != nil {
		cr = cr.Modulate(*mod)
	}
	return cr
}

// prepare resolves the destination and clip rects for a render call.
func (c *componentBase) prepare(w Window, base Rect, clip *Rect) (dest, finalClip Rect, err error) {
	dest, err = c.area.PixelRect(w, base)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	if clip == nil {
		clip = &dest
	}
	return dest, dest.Intersection(*clip), nil
}

func (c *componentBase) writeColoursXML(xw *XMLWriter) {
	if c.coloursProperty != "" {
		xw.OpenTag("ColourRectProperty").Attribute("name", c.coloursProperty).CloseTag()
		return
	}
	writeColoursXML(xw, c.colours)
}

func writeColoursXML(xw *XMLWriter, cr ColourRect) {
	xw.OpenTag("Colours").
		Attribute("topLeft", cr.TopLeft.String()).
		Attribute("topRight", cr.TopRight.String()).
		Attribute("bottomLeft", cr.BottomLeft.String()).
		Attribute("bottomRight", cr.BottomRight.String()).
		CloseTag()
}

// horzFormat is a horizontal formatting value that may be overridden by a
// window property.
type horzFormat struct {
	value    HorizontalFormatting
	property string
}

func (f horzFormat) resolve(w PropertySource) (HorizontalFormatting, error) {
	if f.property == "" {
		if int(f.value) >= len(horzFormattingNames) {
			return 0, &FormattingError{Axis: "horizontal", Value: f.value.String()}
		}
		return f.value, nil
	}
	v, err := w.Property(f.property)
	if err != nil {
		return 0, fmt.Errorf("falagard: horizontal formatting property %q: %w", f.property, err)
	}
	return ParseHorizontalFormatting(v)
}

func (f horzFormat) writeXML(xw *XMLWriter, tag string) {
	if f.property != "" {
		xw.OpenTag(tag+"Property").Attribute("name", f.property).CloseTag()
		return
	}
	xw.OpenTag(tag).Attribute("type", f.value.String()).CloseTag()
}

// vertFormat is the vertical counterpart of horzFormat.
type vertFormat struct {
	value    VerticalFormatting
	property string
}

func (f vertFormat) resolve(w PropertySource) (VerticalFormatting, error) {
	if f.property == "" {
		if int(f.value) >= len(vertFormattingNames) {
			return 0, &FormattingError{Axis: "vertical", Value: f.value.String()}
		}
		return f.value, nil
	}
	v, err := w.Property(f.property)
	if err != nil {
		return 0, fmt.Errorf("falagard: vertical formatting property %q: %w", f.property, err)
	}
	return ParseVerticalFormatting(v)
}

func (f vertFormat) writeXML(xw *XMLWriter, tag string) {
	if f.property != "" {
		xw.OpenTag(tag+"Property").Attribute("name", f.property).CloseTag()
		return
	}
	xw.OpenTag(tag).Attribute("type", f.value.String()).CloseTag()
}
