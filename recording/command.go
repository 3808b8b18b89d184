package recording

import "github.com/gogpu/falagard"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdQuad CommandType = iota // Draw a textured quad
	CmdText                    // Draw a run of text
)

var commandTypeNames = [...]string{
	CmdQuad: "Quad",
	CmdText: "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
}

// TextureRef is a reference to a texture in the resource pool.
type TextureRef uint32

// FontRef is a reference to a font face in the resource pool.
type FontRef uint32

// InvalidRef marks a reference to no resource, such as the texture of a
// quad drawn without one.
const InvalidRef = ^uint32(0)

// IsValid reports whether the reference points to a texture.
func (r TextureRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference points to a font face.
func (r FontRef) IsValid() bool { return uint32(r) != InvalidRef }

// QuadCommand draws the UV region of a texture into Dest.
type QuadCommand struct {
	Texture TextureRef
	Dest    falagard.Rect
	UV      falagard.Rect
	Colours falagard.ColourRect
}

// Type implements Command.
func (QuadCommand) Type() CommandType { return CmdQuad }

// TextCommand draws a line of text with its line box's top-left at Origin.
type TextCommand struct {
	Text    string
	Font    FontRef
	Origin  falagard.Point
	Clip    falagard.Rect
	Clipped bool
	Colours falagard.ColourRect
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
