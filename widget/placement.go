package widget

import "github.com/gogpu/falagard"

// ClientAreaName is the named area a look uses to shrink the region
// client children are laid out in.
const ClientAreaName = "ClientArea"

// ParentPlaceable implements falagard.Placeable.
func (w *Window) ParentPlaceable() falagard.Placeable {
	if w.parent == nil {
		return nil
	}
	return w.parent
}

// Area implements falagard.Placeable.
func (w *Window) Area() falagard.URect { return w.area }

// SetArea implements falagard.Window.
func (w *Window) SetArea(area falagard.URect) {
	w.area = area
	w.Invalidate()
}

// HorizontalAlignment implements falagard.Placeable.
func (w *Window) HorizontalAlignment() falagard.HorizontalAlignment { return w.horz }

// VerticalAlignment implements falagard.Placeable.
func (w *Window) VerticalAlignment() falagard.VerticalAlignment { return w.vert }

// SetAlignment implements falagard.Window.
func (w *Window) SetAlignment(h falagard.HorizontalAlignment, v falagard.VerticalAlignment) {
	w.horz, w.vert = h, v
	w.Invalidate()
}

// PixelAligned implements falagard.Placeable.
func (w *Window) PixelAligned() bool { return w.pixelAligned }

// NonClient implements falagard.Placeable.
func (w *Window) NonClient() bool { return w.nonClient }

// SetNonClient places the window in its parent's frame instead of the
// client area.
func (w *Window) SetNonClient(nonClient bool) {
	w.nonClient = nonClient
	w.Invalidate()
}

// DisplaySize returns the size root windows of this tree are placed in.
func (w *Window) DisplaySize() falagard.Size { return w.root().display }

// SetDisplaySize changes the display size of the tree w belongs to.
func (w *Window) SetDisplaySize(s falagard.Size) {
	w.root().display = s
}

// PixelSize implements falagard.Window. The area is resolved against the
// parent's content area, or against the display for a root.
func (w *Window) PixelSize() falagard.Size {
	base := w.root().display
	if w.parent != nil {
		base = w.parent.ChildContentArea(w.nonClient).Size()
	}
	size := w.area.Resolve(base).Size()
	if w.pixelAligned {
		size.Width = falagard.AlignToPixels(size.Width)
		size.Height = falagard.AlignToPixels(size.Height)
	}
	return size
}

// ScreenRect returns the window's rect in screen coordinates.
func (w *Window) ScreenRect() falagard.Rect {
	conv := falagard.NewCoordConverter(w.root().display)
	return falagard.RectAt(conv.BaseValue(w), w.PixelSize())
}

// ChildContentArea implements falagard.Placeable. Client children are
// confined to the look's ClientArea named area when it defines one.
func (w *Window) ChildContentArea(nonClient bool) falagard.Rect {
	screen := w.ScreenRect()
	if nonClient || w.look == "" || w.skins == nil {
		return screen
	}
	look, err := w.skins.Resolve(w.look)
	if err != nil {
		return screen
	}
	area, err := look.NamedArea(ClientAreaName)
	if err != nil {
		return screen
	}
	r, err := area.PixelRect(w)
	if err != nil {
		falagard.Logger().Warn("widget: client area unavailable", "window", w.name, "err", err)
		return screen
	}
	return r.Offset(screen.Min)
}

func (w *Window) root() *Window {
	r := w
	for r.parent != nil {
		r = r.parent
	}
	return r
}
