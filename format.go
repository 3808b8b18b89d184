package falagard

import "fmt"

// FrameImageComponent names one of the nine slots of a frame.
type FrameImageComponent uint8

const (
	FrameTopLeftCorner FrameImageComponent = iota
	FrameTopRightCorner
	FrameBottomLeftCorner
	FrameBottomRightCorner
	FrameTopEdge
	FrameBottomEdge
	FrameLeftEdge
	FrameRightEdge
	FrameBackground

	// FrameImageCount is the number of frame slots.
	FrameImageCount
)

var frameImageNames = [...]string{
	FrameTopLeftCorner:     "TopLeftCorner",
	FrameTopRightCorner:    "TopRightCorner",
	FrameBottomLeftCorner:  "BottomLeftCorner",
	FrameBottomRightCorner: "BottomRightCorner",
	FrameTopEdge:           "TopEdge",
	FrameBottomEdge:        "BottomEdge",
	FrameLeftEdge:          "LeftEdge",
	FrameRightEdge:         "RightEdge",
	FrameBackground:        "Background",
}

func (c FrameImageComponent) String() string {
	if c < FrameImageCount {
		return frameImageNames[c]
	}
	return fmt.Sprintf("FrameImageComponent(%d)", c)
}

// ParseFrameImageComponent parses a slot name.
func ParseFrameImageComponent(s string) (FrameImageComponent, error) {
	for i, name := range frameImageNames {
		if name == s {
			return FrameImageComponent(i), nil
		}
	}
	return 0, fmt.Errorf("%w: frame image component %q", ErrInvalidValue, s)
}

// HorizontalFormatting controls how an image fills a rect horizontally.
type HorizontalFormatting uint8

const (
	HFLeftAligned HorizontalFormatting = iota
	HFCentreAligned
	HFRightAligned
	HFStretched
	HFTiled
)

var horzFormattingNames = [...]string{
	HFLeftAligned:   "LeftAligned",
	HFCentreAligned: "CentreAligned",
	HFRightAligned:  "RightAligned",
	HFStretched:     "Stretched",
	HFTiled:         "Tiled",
}

func (f HorizontalFormatting) String() string {
	if int(f) < len(horzFormattingNames) {
		return horzFormattingNames[f]
	}
	return fmt.Sprintf("HorizontalFormatting(%d)", f)
}

// ParseHorizontalFormatting parses a formatting name.
func ParseHorizontalFormatting(s string) (HorizontalFormatting, error) {
	for i, name := range horzFormattingNames {
		if name == s {
			return HorizontalFormatting(i), nil
		}
	}
	return 0, &FormattingError{Axis: "horizontal", Value: s}
}

// VerticalFormatting controls how an image fills a rect vertically.
type VerticalFormatting uint8

const (
	VFTopAligned VerticalFormatting = iota
	VFCentreAligned
	VFBottomAligned
	VFStretched
	VFTiled
)

var vertFormattingNames = [...]string{
	VFTopAligned:    "TopAligned",
	VFCentreAligned: "CentreAligned",
	VFBottomAligned: "BottomAligned",
	VFStretched:     "Stretched",
	VFTiled:         "Tiled",
}

func (f VerticalFormatting) String() string {
	if int(f) < len(vertFormattingNames) {
		return vertFormattingNames[f]
	}
	return fmt.Sprintf("VerticalFormatting(%d)", f)
}

// ParseVerticalFormatting parses a formatting name.
func ParseVerticalFormatting(s string) (VerticalFormatting, error) {
	for i, name := range vertFormattingNames {
		if name == s {
			return VerticalFormatting(i), nil
		}
	}
	return 0, &FormattingError{Axis: "vertical", Value: s}
}

// HorizontalTextFormatting controls horizontal text placement and wrapping.
type HorizontalTextFormatting uint8

const (
	HTFLeftAligned HorizontalTextFormatting = iota
	HTFRightAligned
	HTFCentreAligned
	HTFJustified
	HTFWordWrapLeftAligned
	HTFWordWrapRightAligned
	HTFWordWrapCentreAligned
	HTFWordWrapJustified
)

var horzTextFormattingNames = [...]string{
	HTFLeftAligned:           "LeftAligned",
	HTFRightAligned:          "RightAligned",
	HTFCentreAligned:         "CentreAligned",
	HTFJustified:             "Justified",
	HTFWordWrapLeftAligned:   "WordWrapLeftAligned",
	HTFWordWrapRightAligned:  "WordWrapRightAligned",
	HTFWordWrapCentreAligned: "WordWrapCentreAligned",
	HTFWordWrapJustified:     "WordWrapJustified",
}

func (f HorizontalTextFormatting) String() string {
	if int(f) < len(horzTextFormattingNames) {
		return horzTextFormattingNames[f]
	}
	return fmt.Sprintf("HorizontalTextFormatting(%d)", f)
}

// ParseHorizontalTextFormatting parses a text formatting name.
func ParseHorizontalTextFormatting(s string) (HorizontalTextFormatting, error) {
	for i, name := range horzTextFormattingNames {
		if name == s {
			return HorizontalTextFormatting(i), nil
		}
	}
	return 0, &FormattingError{Axis: "horizontal text", Value: s}
}

// wraps reports whether the formatting breaks lines at the rect width.
func (f HorizontalTextFormatting) wraps() bool {
	return f >= HTFWordWrapLeftAligned
}

// VerticalTextFormatting controls vertical text placement.
type VerticalTextFormatting uint8

const (
	VTFTopAligned VerticalTextFormatting = iota
	VTFCentreAligned
	VTFBottomAligned
)

var vertTextFormattingNames = [...]string{
	VTFTopAligned:    "TopAligned",
	VTFCentreAligned: "CentreAligned",
	VTFBottomAligned: "BottomAligned",
}

func (f VerticalTextFormatting) String() string {
	if int(f) < len(vertTextFormattingNames) {
		return vertTextFormattingNames[f]
	}
	return fmt.Sprintf("VerticalTextFormatting(%d)", f)
}

// ParseVerticalTextFormatting parses a text formatting name.
func ParseVerticalTextFormatting(s string) (VerticalTextFormatting, error) {
	for i, name := range vertTextFormattingNames {
		if name == s {
			return VerticalTextFormatting(i), nil
		}
	}
	return 0, &FormattingError{Axis: "vertical text", Value: s}
}
