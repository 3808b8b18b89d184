package falagard

import "github.com/gogpu/falagard/text"

// Quad is one textured, colour-modulated rectangle. Dest is already clipped
// and UV holds the matching normalised texture coordinates.
type Quad struct {
	Texture Texture
	Dest    Rect
	UV      Rect
	Colours ColourRect
}

// TextRun is a single line (or word, for justified text) of text.
// Origin is the top-left corner of the run's line box.
type TextRun struct {
	Text    string
	Face    *text.Face
	Origin  Point
	Clip    *Rect
	Colours ColourRect
}

// GeometryBuffer receives the quads a component emits. Components append
// and never inspect the buffer.
type GeometryBuffer interface {
	AppendQuad(q Quad)
}

// TextBuffer is implemented by geometry buffers that can also hold text.
// Text components silently skip buffers that do not implement it.
type TextBuffer interface {
	GeometryBuffer
	AppendText(run TextRun)
}
