package falagard

// HorizontalAlignment positions a window horizontally within its parent.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCentre
	AlignRight
)

// VerticalAlignment positions a window vertically within its parent.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignCentre:
		return "Centre"
	case AlignRight:
		return "Right"
	}
	return "Left"
}

func (a VerticalAlignment) String() string {
	switch a {
	case AlignMiddle:
		return "Centre"
	case AlignBottom:
		return "Bottom"
	}
	return "Top"
}

// Placeable is the geometry a window exposes to the coordinate converter.
type Placeable interface {
	// ParentPlaceable returns the parent, or nil for a root window.
	ParentPlaceable() Placeable
	// Area is the window's rect relative to the parent's content area.
	Area() URect
	// PixelSize is the resolved size of the window.
	PixelSize() Size
	HorizontalAlignment() HorizontalAlignment
	VerticalAlignment() VerticalAlignment
	// PixelAligned reports whether positions snap to whole pixels.
	PixelAligned() bool
	// NonClient reports whether the window lives in its parent's frame
	// rather than its client area.
	NonClient() bool
	// ChildContentArea returns the screen rect children are laid out in.
	ChildContentArea(nonClient bool) Rect
}

// CoordConverter converts between window-relative and screen-absolute
// coordinates. Root windows are placed relative to the display.
//
// The display size must be set before root windows are queried.
type CoordConverter struct {
	display Size
}

// NewCoordConverter creates a converter for the given display size.
func NewCoordConverter(display Size) *CoordConverter {
	return &CoordConverter{display: display}
}

// DisplaySize returns the display size used for root windows.
func (c *CoordConverter) DisplaySize() Size { return c.display }

// SetDisplaySize changes the display size.
func (c *CoordConverter) SetDisplaySize(s Size) { c.display = s }

// BaseValue returns the screen position of w's top-left corner.
func (c *CoordConverter) BaseValue(w Placeable) Point {
	parentRect := Rect{Max: Point{X: c.display.Width, Y: c.display.Height}}
	if p := w.ParentPlaceable(); p != nil {
		parentRect = p.ChildContentArea(w.NonClient())
	}

	pw, ph := parentRect.Width(), parentRect.Height()
	size := w.PixelSize()
	area := w.Area()

	x := parentRect.Min.X + area.Min.X.Resolve(pw)
	switch w.HorizontalAlignment() {
	case AlignCentre:
		x += (pw - size.Width) * 0.5
	case AlignRight:
		x += pw - size.Width
	}

	y := parentRect.Min.Y + area.Min.Y.Resolve(ph)
	switch w.VerticalAlignment() {
	case AlignMiddle:
		y += (ph - size.Height) * 0.5
	case AlignBottom:
		y += ph - size.Height
	}

	if w.PixelAligned() {
		x, y = AlignToPixels(x), AlignToPixels(y)
	}
	return Point{X: x, Y: y}
}

// WindowToScreenX converts a window-relative x to a screen x.
func (c *CoordConverter) WindowToScreenX(w Placeable, x UDim) float64 {
	return c.BaseValue(w).X + x.Resolve(w.PixelSize().Width)
}

// WindowToScreenY converts a window-relative y to a screen y.
func (c *CoordConverter) WindowToScreenY(w Placeable, y UDim) float64 {
	return c.BaseValue(w).Y + y.Resolve(w.PixelSize().Height)
}

// WindowToScreen converts a window-relative unified point.
func (c *CoordConverter) WindowToScreen(w Placeable, v UVector2) Point {
	return c.BaseValue(w).Add(v.Resolve(w.PixelSize()))
}

// WindowRectToScreen converts a window-relative unified rect.
func (c *CoordConverter) WindowRectToScreen(w Placeable, r URect) Rect {
	return r.Resolve(w.PixelSize()).Offset(c.BaseValue(w))
}

// WindowPointToScreen converts a window-relative pixel point.
func (c *CoordConverter) WindowPointToScreen(w Placeable, p Point) Point {
	return c.BaseValue(w).Add(p)
}

// WindowPixelRectToScreen converts a window-relative pixel rect.
func (c *CoordConverter) WindowPixelRectToScreen(w Placeable, r Rect) Rect {
	return r.Offset(c.BaseValue(w))
}

// ScreenToWindowX converts a unified screen x, relative to the display,
// to a window-relative pixel x.
func (c *CoordConverter) ScreenToWindowX(w Placeable, x UDim) float64 {
	return x.Resolve(c.display.Width) - c.BaseValue(w).X
}

// ScreenToWindowY converts a unified screen y to a window-relative pixel y.
func (c *CoordConverter) ScreenToWindowY(w Placeable, y UDim) float64 {
	return y.Resolve(c.display.Height) - c.BaseValue(w).Y
}

// ScreenToWindow converts a unified screen point.
func (c *CoordConverter) ScreenToWindow(w Placeable, v UVector2) Point {
	return v.Resolve(c.display).Sub(c.BaseValue(w))
}

// ScreenRectToWindow converts a unified screen rect.
func (c *CoordConverter) ScreenRectToWindow(w Placeable, r URect) Rect {
	return r.Resolve(c.display).Offset(c.BaseValue(w).Neg())
}

// ScreenPointToWindow converts a screen pixel point.
func (c *CoordConverter) ScreenPointToWindow(w Placeable, p Point) Point {
	return p.Sub(c.BaseValue(w))
}

// ScreenPixelRectToWindow converts a screen pixel rect.
func (c *CoordConverter) ScreenPixelRectToWindow(w Placeable, r Rect) Rect {
	return r.Offset(c.BaseValue(w).Neg())
}
