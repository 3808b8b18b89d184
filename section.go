package falagard

// ImagerySection is a named, reusable group of components. Frames render
// first, then images, then text, each group in the order added.
type ImagerySection struct {
	name            string
	frames          []*FrameComponent
	images          []*ImageryComponent
	texts           []*TextComponent
	masterColours   ColourRect
	coloursProperty string
}

// NewImagerySection creates an empty section with white master colours.
func NewImagerySection(name string) *ImagerySection {
	return &ImagerySection{name: name, masterColours: Uniform(White)}
}

func (s *ImagerySection) Name() string { return s.name }

func (s *ImagerySection) AddFrameComponent(f *FrameComponent) { s.frames = append(s.frames, f) }

func (s *ImagerySection) AddImageryComponent(c *ImageryComponent) { s.images = append(s.images, c) }

func (s *ImagerySection) AddTextComponent(c *TextComponent) { s.texts = append(s.texts, c) }

func (s *ImagerySection) FrameComponents() []*FrameComponent { return s.frames }

func (s *ImagerySection) ImageryComponents() []*ImageryComponent { return s.images }

func (s *ImagerySection) TextComponents() []*TextComponent { return s.texts }

func (s *ImagerySection) MasterColours() ColourRect { return s.masterColours }

func (s *ImagerySection) SetMasterColours(cr ColourRect) { s.masterColours = cr }

func (s *ImagerySection) ColoursProperty() string { return s.coloursProperty }

func (s *ImagerySection) SetColoursProperty(name string) { s.coloursProperty = name }

// components returns every component in paint order.
func (s *ImagerySection) components() []Component {
	out := make([]Component, 0, len(s.frames)+len(s.images)+len(s.texts))
	for _, f := range s.frames {
		out = append(out, f)
	}
	for _, c := range s.images {
		out = append(out, c)
	}
	for _, c := range s.texts {
		out = append(out, c)
	}
	return out
}

// Render draws every component against base. The master colours, or the
// colours read from the colours property, are modulated by mod and passed
// down to each component.
func (s *ImagerySection) Render(w Window, base Rect, mod *ColourRect, clip *Rect, clipToDisplay bool) error {
	cols := s.colours(w)
	if mod != nil {
		cols = cols.Modulate(*mod)
	}
	for _, c := range s.components() {
		if err := c.Render(w, base, &cols, clip, clipToDisplay); err != nil {
			return err
		}
	}
	return nil
}

func (s *ImagerySection) colours(w PropertySource) ColourRect {
	if s.coloursProperty == "" {
		return s.masterColours
	}
	v, err := w.Property(s.coloursProperty)
	if err != nil {
		return s.masterColours
	}
	cr, err := ParseColourRect(v)
	if err != nil {
		Logger().Warn("falagard: bad section colours property",
			"section", s.name, "property", s.coloursProperty, "value", v)
		return s.masterColours
	}
	return cr
}

// Bounds returns the union of the rects of all components.
func (s *ImagerySection) Bounds(w Window, base Rect) (Rect, error) {
	var out Rect
	first := true
	for _, c := range s.components() {
		r, err := c.Bounds(w, base)
		if err != nil {
			return Rect{}, err
		}
		if first {
			out, first = r, false
			continue
		}
		out = out.Union(r)
	}
	return out, nil
}

// WriteXML writes the section as an ImagerySection element.
func (s *ImagerySection) WriteXML(xw *XMLWriter) error {
	xw.OpenTag("ImagerySection").Attribute("name", s.name)
	if s.coloursProperty != "" {
		xw.OpenTag("ColourRectProperty").Attribute("name", s.coloursProperty).CloseTag()
	} else {
		writeColoursXML(xw, s.masterColours)
	}
	for _, c := range s.components() {
		if err := c.WriteXML(xw); err != nil {
			return err
		}
	}
	xw.CloseTag()
	return xw.Err()
}
