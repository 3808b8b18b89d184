package recording

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/text"
)

func testTexture(name string) *falagard.ImageTexture {
	return falagard.NewImageTexture(name, image.NewRGBA(image.Rect(0, 0, 16, 16)))
}

// sameTexture compares textures by identity.
var sameTexture = cmp.Comparer(func(a, b *falagard.ImageTexture) bool { return a == b })

func TestBufferRecordsQuads(t *testing.T) {
	tex := testTexture("skin")
	buf := NewBuffer()
	quads := []falagard.Quad{
		{Texture: tex, Dest: falagard.R(0, 0, 4, 4), UV: falagard.R(0, 0, 0.25, 0.25), Colours: falagard.Uniform(falagard.White)},
		{Texture: tex, Dest: falagard.R(4, 0, 8, 4), UV: falagard.R(0.25, 0, 0.5, 0.25), Colours: falagard.Uniform(falagard.Black)},
		{Dest: falagard.R(0, 4, 8, 8), Colours: falagard.Uniform(falagard.White)},
	}
	for _, q := range quads {
		buf.AppendQuad(q)
	}

	if buf.Len() != 3 {
		t.Fatalf("Len = %d, want 3", buf.Len())
	}
	if got := buf.Resources().TextureCount(); got != 1 {
		t.Errorf("TextureCount = %d, want 1 (deduplicated)", got)
	}
	if c := buf.Commands()[2].(QuadCommand); c.Texture.IsValid() {
		t.Error("nil texture recorded with a valid reference")
	}
	if diff := cmp.Diff(quads, buf.Quads(), sameTexture); diff != "" {
		t.Errorf("Quads mismatch (-want +got):\n%s", diff)
	}
	if got, want := buf.Bounds(), falagard.R(0, 0, 8, 8); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

// sliceTexture is not comparable; pooling must not use it as a map key.
type sliceTexture struct {
	name string
	pix  []byte
}

func (t sliceTexture) Name() string        { return t.name }
func (t sliceTexture) Size() falagard.Size { return falagard.Sz(1, 1) }

func TestResourcePoolNonComparableTexture(t *testing.T) {
	p := NewResourcePool()
	a := p.AddTexture(sliceTexture{name: "a", pix: []byte{1}})
	again := p.AddTexture(sliceTexture{name: "a", pix: []byte{1}})
	b := p.AddTexture(sliceTexture{name: "b"})
	if a != again || a == b {
		t.Errorf("refs a=%v again=%v b=%v", a, again, b)
	}
	if p.TextureCount() != 2 {
		t.Errorf("TextureCount = %d, want 2", p.TextureCount())
	}
	if got := p.Texture(b).Name(); got != "b" {
		t.Errorf("Texture(b) = %q", got)
	}
}

func TestBufferRecordsText(t *testing.T) {
	face := text.DefaultSource().Face(12)
	clip := falagard.R(0, 0, 50, 20)
	buf := NewBuffer()
	buf.AppendText(falagard.TextRun{Text: "a", Face: face, Origin: falagard.Pt(1, 2), Clip: &clip})
	buf.AppendText(falagard.TextRun{Text: "b", Face: face})

	runs := buf.Texts()
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Clip == nil || *runs[0].Clip != clip {
		t.Errorf("first run clip = %v, want %v", runs[0].Clip, clip)
	}
	if runs[1].Clip != nil {
		t.Errorf("second run clip = %v, want nil", runs[1].Clip)
	}
	if runs[0].Face != face || buf.Resources().FontCount() != 1 {
		t.Error("face not pooled once")
	}
}

func TestBufferPlayback(t *testing.T) {
	buf := NewBuffer()
	buf.AppendQuad(falagard.Quad{Dest: falagard.R(0, 0, 2, 2)})
	buf.AppendText(falagard.TextRun{Text: "hi"})
	buf.AppendQuad(falagard.Quad{Dest: falagard.R(2, 2, 4, 4)})

	b := newMockBackend("mock")
	if err := buf.Playback(b, 10, 20); err != nil {
		t.Fatal(err)
	}
	if b.beginCalls != 1 || b.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", b.beginCalls, b.endCalls)
	}
	if b.width != 10 || b.height != 20 {
		t.Errorf("size = %dx%d, want 10x20", b.width, b.height)
	}
	want := []falagard.Rect{falagard.R(0, 0, 2, 2), falagard.R(2, 2, 4, 4)}
	if diff := cmp.Diff(want, b.quads); diff != "" {
		t.Errorf("quads mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"hi"}, b.texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestBufferReset(t *testing.T) {
	buf := NewBuffer()
	buf.AppendQuad(falagard.Quad{Texture: testTexture("t")})
	buf.Reset()
	if buf.Len() != 0 || buf.Resources().TextureCount() != 0 {
		t.Errorf("after Reset: Len=%d textures=%d", buf.Len(), buf.Resources().TextureCount())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdQuad, "Quad"},
		{CmdText, "Text"},
		{CommandType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
