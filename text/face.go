package text

import (
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at a specific pixel size.
type Face struct {
	src  *FontSource
	size float64
}

// Metrics holds the vertical metrics of a face, in pixels.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.src }

// Size returns the pixel size of the face.
func (f *Face) Size() float64 { return f.size }

// OpenType returns a golang.org/x/image face for rasterising.
// The caller must Close it.
func (f *Face) OpenType() (font.Face, error) {
	return opentype.NewFace(f.src.ot, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Metrics returns the vertical metrics at this face's size.
func (f *Face) Metrics() Metrics {
	face, err := f.OpenType()
	if err != nil {
		return Metrics{Ascent: f.size, LineHeight: f.size}
	}
	defer func() {
		_ = face.Close()
	}()
	m := face.Metrics()
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// shaperPool pools HarfbuzzShaper instances; they hold mutable buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Advance returns the shaped width of s in pixels.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.src.gt),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range output.Glyphs {
		adv += g.Advance
	}
	return fixedToFloat(adv)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
