package falagard

import (
	"fmt"
	"strconv"
	"strings"
)

// UDim is a unified dimension: a scale relative to some base extent plus an
// absolute pixel offset. It has no pixel value until resolved against an
// explicit base.
type UDim struct {
	Scale, Offset float64
}

// UD creates a UDim.
func UD(scale, offset float64) UDim {
	return UDim{Scale: scale, Offset: offset}
}

// Absolute creates a UDim with no relative component.
func Absolute(offset float64) UDim {
	return UDim{Offset: offset}
}

// Relative creates a UDim with no absolute component.
func Relative(scale float64) UDim {
	return UDim{Scale: scale}
}

// Resolve returns the pixel value scale*base + offset.
func (d UDim) Resolve(base float64) float64 {
	return d.Scale*base + d.Offset
}

// Add returns the componentwise sum of d and o.
func (d UDim) Add(o UDim) UDim {
	return UDim{Scale: d.Scale + o.Scale, Offset: d.Offset + o.Offset}
}

// Sub returns the componentwise difference of d and o.
func (d UDim) Sub(o UDim) UDim {
	return UDim{Scale: d.Scale - o.Scale, Offset: d.Offset - o.Offset}
}

func (d UDim) String() string {
	return fmt.Sprintf("{%g,%g}", d.Scale, d.Offset)
}

// UVector2 is a pair of unified dimensions.
type UVector2 struct {
	X, Y UDim
}

// Resolve returns the pixel point relative to base.
func (v UVector2) Resolve(base Size) Point {
	return Point{X: v.X.Resolve(base.Width), Y: v.Y.Resolve(base.Height)}
}

func (v UVector2) String() string {
	return "{" + v.X.String() + "," + v.Y.String() + "}"
}

// URect is a rectangle expressed in unified dimensions.
// Min <= Max is only expected to hold after resolution.
type URect struct {
	Min, Max UVector2
}

// UR creates a URect from its four edges.
func UR(left, top, right, bottom UDim) URect {
	return URect{
		Min: UVector2{X: left, Y: top},
		Max: UVector2{X: right, Y: bottom},
	}
}

// FullArea is the URect covering the whole of its base.
var FullArea = UR(Relative(0), Relative(0), Relative(1), Relative(1))

// Width returns the unified horizontal extent.
func (r URect) Width() UDim { return r.Max.X.Sub(r.Min.X) }

// Height returns the unified vertical extent.
func (r URect) Height() UDim { return r.Max.Y.Sub(r.Min.Y) }

// Resolve returns the pixel rect relative to base.
func (r URect) Resolve(base Size) Rect {
	return Rect{Min: r.Min.Resolve(base), Max: r.Max.Resolve(base)}
}

func (r URect) String() string {
	return "{" + r.Min.X.String() + "," + r.Min.Y.String() + "," +
		r.Max.X.String() + "," + r.Max.Y.String() + "}"
}

// ParseUDim parses the "{scale,offset}" form produced by UDim.String.
func ParseUDim(s string) (UDim, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return UDim{}, err
	}
	return UDim{Scale: v[0], Offset: v[1]}, nil
}

// ParseURect parses the "{{s,o},{s,o},{s,o},{s,o}}" form produced by
// URect.String (left, top, right, bottom).
func ParseURect(s string) (URect, error) {
	v, err := parseFloats(s, 8)
	if err != nil {
		return URect{}, err
	}
	return UR(UD(v[0], v[1]), UD(v[2], v[3]), UD(v[4], v[5]), UD(v[6], v[7])), nil
}

// parseFloats extracts exactly n comma separated numbers, ignoring braces
// and whitespace.
func parseFloats(s string, n int) ([]float64, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	parts := strings.Split(clean, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q: want %d numbers, got %d", ErrInvalidValue, s, n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
		}
		out[i] = f
	}
	return out, nil
}
