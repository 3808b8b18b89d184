package falagard

// FrameComponent composites up to nine images (four corners, four edges and
// a background) into a resizable bordered rect.
type FrameComponent struct {
	componentBase
	images ImageLookup
	slots  [FrameImageCount]ImageSource
	horz   horzFormat
	vert   vertFormat
}

// NewFrameComponent creates a frame with no images and a stretched
// background. images resolves property-sourced slot images; it may be nil
// when no slot is sourced from a property.
func NewFrameComponent(images ImageLookup) *FrameComponent {
	return &FrameComponent{
		componentBase: newComponentBase(),
		images:        images,
		horz:          horzFormat{value: HFStretched},
		vert:          vertFormat{value: VFStretched},
	}
}

// SetImage sets the source of one slot.
func (f *FrameComponent) SetImage(part FrameImageComponent, src ImageSource) {
	f.slots[part] = src
}

// ImageSource returns the source of one slot.
func (f *FrameComponent) ImageSource(part FrameImageComponent) ImageSource {
	return f.slots[part]
}

// IsImageSpecified reports whether the slot has an image or image property.
func (f *FrameComponent) IsImageSpecified(part FrameImageComponent) bool {
	return f.slots[part].IsSpecified()
}

// Image resolves the image drawn in one slot for w, or nil.
func (f *FrameComponent) Image(part FrameImageComponent, w PropertySource) *Image {
	return f.slots[part].Resolve(w, f.images)
}

// BackgroundHorizontalFormatting returns the static horizontal formatting.
func (f *FrameComponent) BackgroundHorizontalFormatting() HorizontalFormatting { return f.horz.value }

// SetBackgroundHorizontalFormatting sets the static horizontal formatting.
func (f *FrameComponent) SetBackgroundHorizontalFormatting(h HorizontalFormatting) { f.horz.value = h }

// SetBackgroundHorizontalFormattingProperty makes the horizontal formatting
// come from the named window property. An empty name restores the static value.
func (f *FrameComponent) SetBackgroundHorizontalFormattingProperty(name string) { f.horz.property = name }

// BackgroundVerticalFormatting returns the static vertical formatting.
func (f *FrameComponent) BackgroundVerticalFormatting() VerticalFormatting { return f.vert.value }

// SetBackgroundVerticalFormatting sets the static vertical formatting.
func (f *FrameComponent) SetBackgroundVerticalFormatting(v VerticalFormatting) { f.vert.value = v }

// SetBackgroundVerticalFormattingProperty makes the vertical formatting come
// from the named window property. An empty name restores the static value.
func (f *FrameComponent) SetBackgroundVerticalFormattingProperty(name string) { f.vert.property = name }

// Render implements Component.
func (f *FrameComponent) Render(w Window, base Rect, mod *ColourRect, clip *Rect, clipToDisplay bool) error {
	dest, finalClip, err := f.prepare(w, base, clip)
	if err != nil {
		return err
	}
	return f.renderFrame(w, w.GeometryBuffer(), dest, mod, &finalClip)
}

// frameLayout tracks how much of each edge the corners have claimed.
type frameLayout struct {
	dest       Rect
	background Rect

	topOffset, bottomOffset, leftOffset, rightOffset float64
	topWidth, bottomWidth, leftHeight, rightHeight   float64
}

// renderFrame runs the frame algorithm over dest. Corners are placed first
// (top-left, top-right, bottom-left, bottom-right) because they shorten the
// edges; edges follow (top, bottom, left, right) because they shrink the
// background; the background is drawn last. Every adjustment uses the
// image's extent plus its render offset on that axis.
func (f *FrameComponent) renderFrame(w Window, buf GeometryBuffer, dest Rect, mod *ColourRect, clip *Rect) error {
	final := f.finalColours(w, mod)
	perImage := !final.IsMonochromatic()

	l := frameLayout{
		dest:        dest,
		background:  dest,
		topWidth:    dest.Width(),
		bottomWidth: dest.Width(),
		leftHeight:  dest.Height(),
		rightHeight: dest.Height(),
	}

	colours := func(img *Image, r Rect) ColourRect {
		if !perImage {
			return final
		}
		return subColours(final, dest, r.Offset(img.RenderedOffset()))
	}

	if img := f.Image(FrameTopLeftCorner, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		r := dest.Intersection(RectAt(dest.Min, sz))
		l.topOffset += sz.Width + off.X
		l.leftOffset += sz.Height + off.Y
		l.topWidth -= sz.Width + off.X
		l.leftHeight -= sz.Height + off.Y
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameTopRightCorner, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		r := dest.Intersection(RectAt(Point{X: dest.Right() - sz.Width, Y: dest.Top()}, sz))
		l.rightOffset += sz.Height + off.Y
		l.topWidth -= sz.Width + off.X
		l.rightHeight -= sz.Height + off.Y
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameBottomLeftCorner, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		r := dest.Intersection(RectAt(Point{X: dest.Left(), Y: dest.Bottom() - sz.Height}, sz))
		l.bottomOffset += sz.Width + off.X
		l.bottomWidth -= sz.Width + off.X
		l.leftHeight -= sz.Height + off.Y
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameBottomRightCorner, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		r := dest.Intersection(RectAt(Point{X: dest.Right() - sz.Width, Y: dest.Bottom() - sz.Height}, sz))
		l.bottomWidth -= sz.Width + off.X
		l.rightHeight -= sz.Height + off.Y
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameTopEdge, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		left := dest.Left() + l.topOffset
		r := dest.Intersection(R(left, dest.Top(), left+l.topWidth, dest.Top()+sz.Height))
		l.background.Min.Y += sz.Height + off.Y
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameBottomEdge, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		left := dest.Left() + l.bottomOffset
		r := dest.Intersection(R(left, dest.Bottom()-sz.Height, left+l.bottomWidth, dest.Bottom()))
		l.background.Max.Y -= sz.Height + off.Y
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameLeftEdge, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		top := dest.Top() + l.leftOffset
		r := dest.Intersection(R(dest.Left(), top, dest.Left()+sz.Width, top+l.leftHeight))
		l.background.Min.X += sz.Width + off.X
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameRightEdge, w); img != nil {
		sz, off := img.RenderedSize(), img.RenderedOffset()
		top := dest.Top() + l.rightOffset
		r := dest.Intersection(R(dest.Right()-sz.Width, top, dest.Right(), top+l.rightHeight))
		l.background.Max.X -= sz.Width + off.X
		img.Render(buf, r, clip, colours(img, r))
	}

	if img := f.Image(FrameBackground, w); img != nil {
		h, err := f.horz.resolve(w)
		if err != nil {
			return err
		}
		v, err := f.vert.resolve(w)
		if err != nil {
			return err
		}
		return renderFormatted(buf, img, h, v, l.background, clip, colours(img, l.background))
	}
	return nil
}

// BackgroundRect returns the rect left for the background once the
// specified edges have been taken out of the component's area.
func (f *FrameComponent) BackgroundRect(w Window, base Rect) (Rect, error) {
	dest, err := f.area.PixelRect(w, base)
	if err != nil {
		return Rect{}, err
	}
	bg := dest
	if img := f.Image(FrameTopEdge, w); img != nil {
		bg.Min.Y += img.RenderedSize().Height + img.RenderedOffset().Y
	}
	if img := f.Image(FrameBottomEdge, w); img != nil {
		bg.Max.Y -= img.RenderedSize().Height + img.RenderedOffset().Y
	}
	if img := f.Image(FrameLeftEdge, w); img != nil {
		bg.Min.X += img.RenderedSize().Width + img.RenderedOffset().X
	}
	if img := f.Image(FrameRightEdge, w); img != nil {
		bg.Max.X -= img.RenderedSize().Width + img.RenderedOffset().X
	}
	return bg, nil
}

// subColours returns the colours of r, expressed as fractions of whole.
func subColours(cr ColourRect, whole, r Rect) ColourRect {
	w, h := whole.Width(), whole.Height()
	if w <= 0 || h <= 0 {
		return cr
	}
	left := (r.Left() - whole.Left()) / w
	top := (r.Top() - whole.Top()) / h
	return cr.SubRectangle(left, left+r.Width()/w, top, top+r.Height()/h)
}

// WriteXML implements Component.
func (f *FrameComponent) WriteXML(xw *XMLWriter) error {
	xw.OpenTag("FrameComponent")
	f.area.writeXML(xw)
	for i := FrameImageComponent(0); i < FrameImageCount; i++ {
		src := f.slots[i]
		switch {
		case src.IsFromProperty():
			xw.OpenTag("ImageProperty").
				Attribute("name", src.Property()).
				Attribute("component", i.String()).
				CloseTag()
		case src.IsSpecified():
			xw.OpenTag("Image").
				Attribute("name", src.Image().Name()).
				Attribute("component", i.String()).
				CloseTag()
		}
	}
	f.writeColoursXML(xw)
	f.vert.writeXML(xw, "VertFormat")
	f.horz.writeXML(xw, "HorzFormat")
	xw.CloseTag()
	return xw.Err()
}
