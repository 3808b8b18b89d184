package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/internal/blend"
	"github.com/gogpu/falagard/recording"
	"github.com/gogpu/falagard/text"
)

func TestBackendRegistration(t *testing.T) {
	tests := []struct {
		name    string
		cfg     recording.BackendConfig
		mode    blend.Mode
		wantErr bool
	}{
		{name: "defaults", mode: blend.SourceOver},
		{name: "blend by name", cfg: recording.BackendConfig{Blend: "Plus"}, mode: blend.Plus},
		{name: "background", cfg: recording.BackendConfig{Background: color.Black}, mode: blend.SourceOver},
		{name: "unknown blend", cfg: recording.BackendConfig{Blend: "Screen"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := recording.NewBackend("raster", tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to create raster backend: %v", err)
			}
			b, ok := backend.(*Backend)
			if !ok {
				t.Fatal("backend is not *raster.Backend")
			}
			if b.Mode() != tt.mode {
				t.Errorf("Mode = %v, want %v", b.Mode(), tt.mode)
			}
		})
	}
}

func TestRenderThroughRegistry(t *testing.T) {
	buf := recording.NewBuffer()
	buf.AppendQuad(falagard.Quad{
		Dest:    falagard.R(0, 0, 10, 10),
		Colours: falagard.Uniform(falagard.Colour{A: 1, R: 1}),
	})
	out, err := recording.Render("raster", buf, 20, 20,
		recording.BackendConfig{Background: color.White})
	if err != nil {
		t.Fatal(err)
	}
	img := out.(*Backend).Image()
	if got := img.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("quad pixel = %v, want red", got)
	}
	if got := img.RGBAAt(15, 15); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend(WithBackground(color.White))
	if backend.Image() != nil || backend.Width() != 0 {
		t.Fatal("image available before Begin")
	}
	if err := backend.Begin(100, 50); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 || backend.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if got := backend.Image().RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestDrawQuadUntexturedFill(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	red := falagard.ARGB(1, 1, 0, 0)
	b.DrawQuad(nil, falagard.R(2, 2, 6, 6), falagard.Rect{}, falagard.Uniform(red))

	img := b.Image()
	if got := img.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if got := img.RGBAAt(7, 7); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestDrawQuadScalesTexture(t *testing.T) {
	// 2x1 texture: left texel blue, right texel green.
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 255, 255})
	src.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	tex := falagard.NewImageTexture("t", src)

	b := NewBackend(WithInterpolator(draw.NearestNeighbor))
	if err := b.Begin(8, 4); err != nil {
		t.Fatal(err)
	}
	// Right half of the texture stretched over the whole target.
	b.DrawQuad(tex, falagard.R(0, 0, 8, 4), falagard.R(0.5, 0, 1, 1), falagard.Uniform(falagard.White))

	if got := b.Image().RGBAAt(0, 0); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel = %v, want green", got)
	}
	if got := b.Image().RGBAAt(7, 3); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel = %v, want green", got)
	}
}

func TestDrawQuadModulatesAlpha(t *testing.T) {
	b := NewBackend(WithBackground(color.Black))
	if err := b.Begin(4, 4); err != nil {
		t.Fatal(err)
	}
	half := falagard.ARGB(0.5, 1, 1, 1)
	b.DrawQuad(nil, falagard.R(0, 0, 4, 4), falagard.Rect{}, falagard.Uniform(half))

	got := b.Image().RGBAAt(1, 1)
	if got.R < 126 || got.R > 129 || got.A != 255 {
		t.Errorf("pixel = %v, want mid grey over black", got)
	}
}

func TestDrawQuadBlendModes(t *testing.T) {
	tests := []struct {
		mode blend.Mode
		want color.RGBA
	}{
		{blend.SourceOver, color.RGBA{255, 0, 0, 255}},
		{blend.Plus, color.RGBA{255, 0, 255, 255}},
		{blend.Modulate, color.RGBA{0, 0, 0, 255}},
		{blend.DestinationOver, color.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			b := NewBackend(WithBackground(color.RGBA{0, 0, 255, 255}), WithBlendMode(tt.mode))
			if b.Mode() != tt.mode {
				t.Fatalf("Mode = %v", b.Mode())
			}
			if err := b.Begin(2, 2); err != nil {
				t.Fatal(err)
			}
			b.DrawQuad(nil, falagard.R(0, 0, 2, 2), falagard.Rect{}, falagard.Uniform(falagard.ARGB(1, 1, 0, 0)))
			if got := b.Image().RGBAAt(0, 0); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawQuadOutsideTarget(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(4, 4); err != nil {
		t.Fatal(err)
	}
	b.DrawQuad(nil, falagard.R(10, 10, 20, 20), falagard.Rect{}, falagard.Uniform(falagard.White))
	for i, p := range b.Image().Pix {
		if p != 0 {
			t.Fatalf("byte %d = %d, want untouched target", i, p)
		}
	}
}

func TestDrawTextClipped(t *testing.T) {
	face := text.DefaultSource().Face(16)
	b := NewBackend()
	if err := b.Begin(64, 32); err != nil {
		t.Fatal(err)
	}
	clip := falagard.R(0, 0, 8, 32)
	b.DrawText("WWWW", face, falagard.Pt(0, 0), &clip, falagard.Uniform(falagard.White))

	img := b.Image()
	inside, outside := 0, 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			if x < 8 {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 {
		t.Error("no text pixels inside the clip")
	}
	if outside != 0 {
		t.Errorf("%d text pixels drawn outside the clip", outside)
	}
}

func TestPlaybackAndPNGOutput(t *testing.T) {
	buf := recording.NewBuffer()
	buf.AppendQuad(falagard.Quad{Dest: falagard.R(0, 0, 4, 4), Colours: falagard.Uniform(falagard.White)})

	b := NewBackend()
	if err := buf.Playback(b, 4, 4); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(out.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, out.Len())
	}
	decoded, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("decoded width = %d, want 4", decoded.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
