package falagard

import (
	"fmt"
	"image"
	"sort"
)

// Texture is the source of an image's pixels. Ownership stays with whoever
// created it; images only reference it.
type Texture interface {
	Name() string
	Size() Size
}

// ImageTexture is a Texture backed by an in-memory image.Image.
// Software backends read pixels through Source.
type ImageTexture struct {
	name string
	src  image.Image
}

// NewImageTexture wraps src as a named texture.
func NewImageTexture(name string, src image.Image) *ImageTexture {
	return &ImageTexture{name: name, src: src}
}

func (t *ImageTexture) Name() string { return t.name }

func (t *ImageTexture) Size() Size {
	b := t.src.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Source returns the backing image.
func (t *ImageTexture) Source() image.Image { return t.src }

// Image is a named sub-rectangle of a texture plus a render offset.
type Image struct {
	name    string
	texture Texture
	area    Rect
	offset  Point
	size    Size
}

// NewImage creates an image rendered at the natural size of area.
func NewImage(name string, tex Texture, area Rect, offset Point) (*Image, error) {
	return NewSizedImage(name, tex, area, offset, area.Size())
}

// NewSizedImage creates an image with an explicit rendered size.
// Zero or negative rendered extents are rejected since tiling divides by them.
func NewSizedImage(name string, tex Texture, area Rect, offset Point, size Size) (*Image, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: image %q has size %gx%g", ErrInvalidImageSize, name, size.Width, size.Height)
	}
	return &Image{name: name, texture: tex, area: area, offset: offset, size: size}, nil
}

func (img *Image) Name() string { return img.name }

func (img *Image) Texture() Texture { return img.texture }

// Area returns the source rect on the texture, in texels.
func (img *Image) Area() Rect { return img.area }

// RenderedOffset returns the offset applied to every destination rect.
func (img *Image) RenderedOffset() Point { return img.offset }

// RenderedSize returns the natural size the image is drawn at.
func (img *Image) RenderedSize() Size { return img.size }

// Render emits one quad drawing the image into dest, clipped to clip when
// given. Colours are interpolated over the unclipped dest so clipping never
// distorts a gradient. A fully clipped image produces nothing.
func (img *Image) Render(buf GeometryBuffer, dest Rect, clip *Rect, colours ColourRect) {
	dest = dest.Offset(img.offset)
	final := dest
	if clip != nil {
		final = dest.Intersection(*clip)
	}
	if final.IsEmpty() {
		return
	}

	dw, dh := dest.Width(), dest.Height()
	texels := Size{Width: img.area.Width() / dw, Height: img.area.Height() / dh}
	tex := Size{Width: 1, Height: 1}
	if img.texture != nil {
		tex = img.texture.Size()
	}

	src := Rect{
		Min: Point{
			X: img.area.Min.X + (final.Min.X-dest.Min.X)*texels.Width,
			Y: img.area.Min.Y + (final.Min.Y-dest.Min.Y)*texels.Height,
		},
		Max: Point{
			X: img.area.Max.X + (final.Max.X-dest.Max.X)*texels.Width,
			Y: img.area.Max.Y + (final.Max.Y-dest.Max.Y)*texels.Height,
		},
	}
	uv := Rect{
		Min: Point{X: src.Min.X / tex.Width, Y: src.Min.Y / tex.Height},
		Max: Point{X: src.Max.X / tex.Width, Y: src.Max.Y / tex.Height},
	}

	if final != dest {
		colours = colours.SubRectangle(
			(final.Min.X-dest.Min.X)/dw,
			(final.Max.X-dest.Min.X)/dw,
			(final.Min.Y-dest.Min.Y)/dh,
			(final.Max.Y-dest.Min.Y)/dh,
		)
	}

	buf.AppendQuad(Quad{Texture: img.texture, Dest: final, UV: uv, Colours: colours})
}

// ImageLookup resolves image names.
type ImageLookup interface {
	Image(name string) (*Image, error)
}

// ImageManager is a name-keyed table of images.
type ImageManager struct {
	images map[string]*Image
}

// NewImageManager creates an empty image table.
func NewImageManager() *ImageManager {
	return &ImageManager{images: make(map[string]*Image)}
}

// Add registers img under its name.
func (m *ImageManager) Add(img *Image) error {
	if _, dup := m.images[img.name]; dup {
		return fmt.Errorf("%w: image %q", ErrAlreadyExists, img.name)
	}
	m.images[img.name] = img
	return nil
}

// Image returns the named image.
func (m *ImageManager) Image(name string) (*Image, error) {
	img, ok := m.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", ErrUnknownObject, name)
	}
	return img, nil
}

// IsDefined reports whether an image with the name is registered.
func (m *ImageManager) IsDefined(name string) bool {
	_, ok := m.images[name]
	return ok
}

// Remove deletes the named image. Removing an unknown name is a no-op.
func (m *ImageManager) Remove(name string) {
	delete(m.images, name)
}

// Names returns the registered image names in sorted order.
func (m *ImageManager) Names() []string {
	names := make([]string, 0, len(m.images))
	for name := range m.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
