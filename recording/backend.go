package recording

import (
	"image"
	"io"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/text"
)

// Backend turns recorded commands into output.
//
// Backends register a factory from init and are then created by name with
// NewBackend or Render:
//
//	func init() {
//	    recording.Register("raster", func(cfg recording.BackendConfig) (recording.Backend, error) {
//	        return fromConfig(cfg)
//	    })
//	}
type Backend interface {
	// Begin prepares a target of the given size. It must be called
	// before any drawing.
	Begin(width, height int) error

	// End finishes the output. Output methods are valid afterwards.
	End() error

	// DrawQuad draws the uv region of tex into dest, modulated by colours.
	// tex may be nil, in which case the quad is filled with colours.
	DrawQuad(tex falagard.Texture, dest, uv falagard.Rect, colours falagard.ColourRect)

	// DrawText draws s with the top-left of its line box at origin.
	// clip is nil when the text is unclipped.
	DrawText(s string, face *text.Face, origin falagard.Point, clip *falagard.Rect, colours falagard.ColourRect)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content. Call it after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered content to path. Call it after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.RGBA
}
