package falagard

// ImageryComponent draws a single image into its area using horizontal and
// vertical formatting, tiling it when asked to.
type ImageryComponent struct {
	componentBase
	images ImageLookup
	image  ImageSource
	horz   horzFormat
	vert   vertFormat
}

// NewImageryComponent creates an image component with stretched formatting.
func NewImageryComponent(images ImageLookup, src ImageSource) *ImageryComponent {
	return &ImageryComponent{
		componentBase: newComponentBase(),
		images:        images,
		image:         src,
		horz:          horzFormat{value: HFStretched},
		vert:          vertFormat{value: VFStretched},
	}
}

func (c *ImageryComponent) ImageSource() ImageSource { return c.image }

func (c *ImageryComponent) SetImageSource(src ImageSource) { c.image = src }

func (c *ImageryComponent) SetHorizontalFormatting(h HorizontalFormatting) { c.horz.value = h }

func (c *ImageryComponent) SetHorizontalFormattingProperty(name string) { c.horz.property = name }

func (c *ImageryComponent) SetVerticalFormatting(v VerticalFormatting) { c.vert.value = v }

func (c *ImageryComponent) SetVerticalFormattingProperty(name string) { c.vert.property = name }

// Render implements Component. An unresolvable image draws nothing.
func (c *ImageryComponent) Render(w Window, base Rect, mod *ColourRect, clip *Rect, clipToDisplay bool) error {
	img := c.image.Resolve(w, c.images)
	if img == nil {
		return nil
	}
	dest, finalClip, err := c.prepare(w, base, clip)
	if err != nil {
		return err
	}
	h, err := c.horz.resolve(w)
	if err != nil {
		return err
	}
	v, err := c.vert.resolve(w)
	if err != nil {
		return err
	}
	return renderFormatted(w.GeometryBuffer(), img, h, v, dest, &finalClip, c.finalColours(w, mod))
}

// WriteXML implements Component.
func (c *ImageryComponent) WriteXML(xw *XMLWriter) error {
	xw.OpenTag("ImageryComponent")
	c.area.writeXML(xw)
	switch {
	case c.image.IsFromProperty():
		xw.OpenTag("ImageProperty").Attribute("name", c.image.Property()).CloseTag()
	case c.image.IsSpecified():
		xw.OpenTag("Image").Attribute("name", c.image.Image().Name()).CloseTag()
	}
	c.writeColoursXML(xw)
	c.vert.writeXML(xw, "VertFormat")
	c.horz.writeXML(xw, "HorzFormat")
	xw.CloseTag()
	return xw.Err()
}
