// Package text measures, wraps and reorders strings for text components.
//
// A FontSource holds one parsed font file; a Face is that font at a size.
// Measuring goes through go-text/typesetting's HarfBuzz shaper so kerning
// and ligatures are accounted for; rasterising backends draw through the
// golang.org/x/image/font face returned by Face.OpenType.
//
//	src := text.DefaultSource()
//	face := src.Face(14)
//	w := face.Advance("Hello")
//	lines := text.Wrap(face, longString, 120)
package text
