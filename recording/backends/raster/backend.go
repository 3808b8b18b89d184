// Package raster provides a software backend for the recording system.
// It draws recorded quads and text into an *image.RGBA.
//
// Quads are scaled from their texture with golang.org/x/image/draw and
// modulated per pixel by their corner colours, then composited with a
// Porter-Duff operator (source-over unless WithBlendMode says otherwise).
// Text is drawn with golang.org/x/image/font.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/falagard/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster", recording.BackendConfig{Blend: "Plus"})
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithBackground(color.White))
//
//	buf.Playback(backend, 320, 200)
//	backend.SavePNG("output.png")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/internal/blend"
	"github.com/gogpu/falagard/recording"
	"github.com/gogpu/falagard/text"
)

func init() {
	recording.Register("raster", fromConfig)
}

// fromConfig builds a backend from registry settings. Blend names a mode
// as printed by blend.Mode.String.
func fromConfig(cfg recording.BackendConfig) (recording.Backend, error) {
	var opts []Option
	if cfg.Background != nil {
		opts = append(opts, WithBackground(cfg.Background))
	}
	if cfg.Blend != "" {
		m, ok := blend.ParseMode(cfg.Blend)
		if !ok {
			return nil, fmt.Errorf("raster: unknown blend mode %q", cfg.Blend)
		}
		opts = append(opts, WithBlendMode(m))
	}
	return NewBackend(opts...), nil
}

// sourcer is implemented by textures backed by an image, such as
// *falagard.ImageTexture. Quads with other textures are filled with
// their colours alone.
type sourcer interface {
	Source() image.Image
}

// Backend renders recorded commands to an RGBA image.
type Backend struct {
	dst        *image.RGBA
	background color.Color
	scaler     draw.Interpolator
	mode       blend.Mode
	op         blend.Func
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground fills the target with c on Begin. The default is
// transparent.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// WithInterpolator sets how textures are scaled. The default is
// draw.ApproxBiLinear; draw.NearestNeighbor keeps pixel art crisp.
func WithInterpolator(i draw.Interpolator) Option {
	return func(b *Backend) {
		if i != nil {
			b.scaler = i
		}
	}
}

// WithBlendMode sets the operator quads are composited with.
func WithBlendMode(m blend.Mode) Option {
	return func(b *Backend) {
		b.mode = m
	}
}

// NewBackend creates a raster backend. Begin must be called before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		background: color.Transparent,
		scaler:     draw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.op = blend.FuncFor(b.mode)
	return b
}

// Begin allocates a width x height target and fills it with the background.
func (b *Backend) Begin(width, height int) error {
	b.dst = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.dst, b.dst.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// pixelRect rounds r to whole pixels.
func pixelRect(r falagard.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left())), int(math.Round(r.Top())),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
}

// DrawQuad draws the uv region of tex into dest.
func (b *Backend) DrawQuad(tex falagard.Texture, dest, uv falagard.Rect, colours falagard.ColourRect) {
	if b.dst == nil {
		return
	}
	full := pixelRect(dest)
	area := full.Intersect(b.dst.Bounds())
	if area.Empty() {
		return
	}

	var src *image.RGBA
	if s, ok := tex.(sourcer); ok && s.Source() != nil {
		src = b.scale(s.Source(), tex.Size(), uv, full.Size())
	}

	w, h := dest.Width(), dest.Height()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		fy := clampUnit((float64(y) + 0.5 - dest.Top()) / h)
		for x := area.Min.X; x < area.Max.X; x++ {
			fx := clampUnit((float64(x) + 0.5 - dest.Left()) / w)
			c := colours.ColourAt(fx, fy)

			// Premultiplied source texel; untextured quads use opaque white.
			sr, sg, sb, sa := 1.0, 1.0, 1.0, 1.0
			if src != nil {
				p := src.RGBAAt(x-full.Min.X, y-full.Min.Y)
				sr, sg, sb, sa = float64(p.R)/255, float64(p.G)/255, float64(p.B)/255, float64(p.A)/255
			}
			b.blend(x, y, sr*c.R*c.A, sg*c.G*c.A, sb*c.B*c.A, sa*c.A)
		}
	}
}

// scale returns the uv region of img resized to size.
func (b *Backend) scale(img image.Image, texSize falagard.Size, uv falagard.Rect, size image.Point) *image.RGBA {
	bounds := img.Bounds()
	sr := image.Rect(
		bounds.Min.X+int(math.Floor(uv.Left()*texSize.Width)),
		bounds.Min.Y+int(math.Floor(uv.Top()*texSize.Height)),
		bounds.Min.X+int(math.Ceil(uv.Right()*texSize.Width)),
		bounds.Min.Y+int(math.Ceil(uv.Bottom()*texSize.Height)),
	).Intersect(bounds)
	out := image.NewRGBA(image.Rectangle{Max: size})
	if sr.Empty() {
		return out
	}
	b.scaler.Scale(out, out.Bounds(), img, sr, draw.Src, nil)
	return out
}

// blend composites a premultiplied colour onto the pixel at (x, y).
func (b *Backend) blend(x, y int, r, g, bl, a float64) {
	d := b.dst.RGBAAt(x, y)
	or, og, ob, oa := b.op(to8(r), to8(g), to8(bl), to8(a), d.R, d.G, d.B, d.A)
	b.dst.SetRGBA(x, y, color.RGBA{R: or, G: og, B: ob, A: oa})
}

// Mode returns the operator quads are composited with.
func (b *Backend) Mode() blend.Mode { return b.mode }

func to8(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// DrawText draws s in the top-left colour of colours.
func (b *Backend) DrawText(s string, face *text.Face, origin falagard.Point, clip *falagard.Rect, colours falagard.ColourRect) {
	if b.dst == nil || face == nil || s == "" {
		return
	}
	otf, err := face.OpenType()
	if err != nil {
		falagard.Logger().Warn("raster: cannot open face", "err", err)
		return
	}
	defer func() {
		_ = otf.Close()
	}()

	dst := b.dst
	if clip != nil {
		sub, ok := b.dst.SubImage(pixelRect(*clip)).(*image.RGBA)
		if !ok || sub.Bounds().Empty() {
			return
		}
		dst = sub
	}

	ascent := face.Metrics().Ascent
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colours.TopLeft),
		Face: otf,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(origin.X * 64)),
			Y: fixed.Int26_6(math.Round((origin.Y + ascent) * 64)),
		},
	}
	d.DrawString(s)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.Image())
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SavePNG is an alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.dst
}

// Width returns the width of the target.
func (b *Backend) Width() int {
	if b.dst == nil {
		return 0
	}
	return b.dst.Bounds().Dx()
}

// Height returns the height of the target.
func (b *Backend) Height() int {
	if b.dst == nil {
		return 0
	}
	return b.dst.Bounds().Dy()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
