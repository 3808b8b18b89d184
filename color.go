package falagard

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Colour is a straight-alpha colour. Each component is in the range [0, 1].
type Colour struct {
	A, R, G, B float64
}

// Common colours.
var (
	White       = Colour{A: 1, R: 1, G: 1, B: 1}
	Black       = Colour{A: 1}
	Transparent = Colour{}
)

// ARGB creates a colour from alpha, red, green and blue components.
func ARGB(a, r, g, b float64) Colour {
	return Colour{A: a, R: r, G: g, B: b}
}

// ColourFromARGB32 unpacks a 0xAARRGGBB value.
func ColourFromARGB32(v uint32) Colour {
	return Colour{
		A: float64(v>>24&0xff) / 255,
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// ARGB32 packs the colour into a 0xAARRGGBB value.
func (c Colour) ARGB32() uint32 {
	return uint32(clamp255(c.A*255+0.5))<<24 |
		uint32(clamp255(c.R*255+0.5))<<16 |
		uint32(clamp255(c.G*255+0.5))<<8 |
		uint32(clamp255(c.B*255+0.5))
}

// ParseColour parses an "AARRGGBB" hex string. A leading '#' is allowed and
// a six digit "RRGGBB" form is treated as opaque.
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return Colour{}, fmt.Errorf("%w: colour %q", ErrInvalidValue, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: colour %q", ErrInvalidValue, s)
	}
	return ColourFromARGB32(uint32(v)), nil
}

// String formats the colour as "AARRGGBB".
func (c Colour) String() string {
	return fmt.Sprintf("%08X", c.ARGB32())
}

// RGBA implements color.Color with alpha-premultiplied components.
func (c Colour) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp255(c.A*255+0.5)) * 0x101
	r = uint32(clamp255(c.R*c.A*255+0.5)) * 0x101
	g = uint32(clamp255(c.G*c.A*255+0.5)) * 0x101
	b = uint32(clamp255(c.B*c.A*255+0.5)) * 0x101
	return r, g, b, a
}

// FromColor converts a standard color.Color to a Colour.
func FromColor(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Colour{
		A: float64(n.A) / 255,
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// Lerp performs linear interpolation between two colours.
// Equal endpoints yield exactly that colour for every t.
func (c Colour) Lerp(other Colour, t float64) Colour {
	return Colour{
		A: c.A + (other.A-c.A)*t,
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Modulate multiplies the colours componentwise.
func (c Colour) Modulate(o Colour) Colour {
	return Colour{A: c.A * o.A, R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// ColourRect holds a colour for each corner of a rectangle. Colours inside
// the rectangle are bilinear interpolations of the corners.
type ColourRect struct {
	TopLeft, TopRight, BottomLeft, BottomRight Colour
}

// Uniform returns a ColourRect with every corner set to c.
func Uniform(c Colour) ColourRect {
	return ColourRect{TopLeft: c, TopRight: c, BottomLeft: c, BottomRight: c}
}

// IsMonochromatic reports whether all four corners are the same colour.
func (cr ColourRect) IsMonochromatic() bool {
	return cr.TopLeft == cr.TopRight &&
		cr.TopLeft == cr.BottomLeft &&
		cr.TopLeft == cr.BottomRight
}

// ColourAt returns the colour at the fractional position (x, y) of the unit
// square, where (0,0) is the top-left corner.
func (cr ColourRect) ColourAt(x, y float64) Colour {
	top := cr.TopLeft.Lerp(cr.TopRight, x)
	bottom := cr.BottomLeft.Lerp(cr.BottomRight, x)
	return top.Lerp(bottom, y)
}

// SubRectangle returns the colours of the sub-rectangle spanning the given
// fractions of this rectangle.
func (cr ColourRect) SubRectangle(left, right, top, bottom float64) ColourRect {
	return ColourRect{
		TopLeft:     cr.ColourAt(left, top),
		TopRight:    cr.ColourAt(right, top),
		BottomLeft:  cr.ColourAt(left, bottom),
		BottomRight: cr.ColourAt(right, bottom),
	}
}

// Modulate multiplies each corner by the matching corner of o.
func (cr ColourRect) Modulate(o ColourRect) ColourRect {
	return ColourRect{
		TopLeft:     cr.TopLeft.Modulate(o.TopLeft),
		TopRight:    cr.TopRight.Modulate(o.TopRight),
		BottomLeft:  cr.BottomLeft.Modulate(o.BottomLeft),
		BottomRight: cr.BottomRight.Modulate(o.BottomRight),
	}
}

// String formats the rect as "tl:AARRGGBB tr:AARRGGBB bl:AARRGGBB br:AARRGGBB".
func (cr ColourRect) String() string {
	return fmt.Sprintf("tl:%s tr:%s bl:%s br:%s",
		cr.TopLeft, cr.TopRight, cr.BottomLeft, cr.BottomRight)
}

// ParseColourRect parses the form produced by ColourRect.String. A single
// colour is accepted as a uniform rect.
func ParseColourRect(s string) (ColourRect, error) {
	fields := strings.Fields(s)
	if len(fields) == 1 && !strings.Contains(fields[0], ":") {
		c, err := ParseColour(fields[0])
		if err != nil {
			return ColourRect{}, err
		}
		return Uniform(c), nil
	}

	var cr ColourRect
	var seen uint8
	for _, f := range fields {
		key, val, ok := strings.Cut(f, ":")
		if !ok {
			return ColourRect{}, fmt.Errorf("%w: colour rect %q", ErrInvalidValue, s)
		}
		c, err := ParseColour(val)
		if err != nil {
			return ColourRect{}, err
		}
		var corner uint8
		switch key {
		case "tl":
			cr.TopLeft, corner = c, 1<<0
		case "tr":
			cr.TopRight, corner = c, 1<<1
		case "bl":
			cr.BottomLeft, corner = c, 1<<2
		case "br":
			cr.BottomRight, corner = c, 1<<3
		default:
			return ColourRect{}, fmt.Errorf("%w: colour rect corner %q", ErrInvalidValue, key)
		}
		if seen&corner != 0 {
			return ColourRect{}, fmt.Errorf("%w: colour rect corner %q repeated", ErrInvalidValue, key)
		}
		seen |= corner
	}
	if seen != 0x0f {
		return ColourRect{}, fmt.Errorf("%w: colour rect %q", ErrInvalidValue, s)
	}
	return cr, nil
}
