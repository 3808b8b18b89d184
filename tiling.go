package falagard

import "math"

// tile is one placement of an image produced by a tilePlan.
type tile struct {
	rect Rect
	// edge is set for the last row or column of a tiled axis; such tiles
	// are clipped to the area being filled instead of the caller's clipper.
	edge bool
}

// tilePlan describes how an image fills a rect under a pair of formatting
// modes.
type tilePlan struct {
	origin    Point
	tileSize  Size
	horzTiles int
	vertTiles int
	horzTiled bool
	vertTiled bool
}

// planTiles computes the placement of an image of natural size img within
// dest. Stretched axes use a single tile the size of dest; tiled axes repeat
// the natural extent ceil(extent/natural) times; aligned axes use one tile
// at the start, pixel-rounded centre or end.
func planTiles(h HorizontalFormatting, v VerticalFormatting, dest Rect, img Size) (tilePlan, error) {
	p := tilePlan{tileSize: img}

	switch h {
	case HFStretched:
		p.tileSize.Width = dest.Width()
		p.origin.X = dest.Left()
		p.horzTiles = 1
	case HFTiled:
		p.origin.X = dest.Left()
		p.horzTiles = tileCount(dest.Width(), img.Width)
		p.horzTiled = true
	case HFLeftAligned:
		p.origin.X = dest.Left()
		p.horzTiles = 1
	case HFCentreAligned:
		p.origin.X = dest.Left() + AlignToPixels((dest.Width()-img.Width)*0.5)
		p.horzTiles = 1
	case HFRightAligned:
		p.origin.X = dest.Right() - img.Width
		p.horzTiles = 1
	default:
		return tilePlan{}, &FormattingError{Axis: "horizontal", Value: h.String()}
	}

	switch v {
	case VFStretched:
		p.tileSize.Height = dest.Height()
		p.origin.Y = dest.Top()
		p.vertTiles = 1
	case VFTiled:
		p.origin.Y = dest.Top()
		p.vertTiles = tileCount(dest.Height(), img.Height)
		p.vertTiled = true
	case VFTopAligned:
		p.origin.Y = dest.Top()
		p.vertTiles = 1
	case VFCentreAligned:
		p.origin.Y = dest.Top() + AlignToPixels((dest.Height()-img.Height)*0.5)
		p.vertTiles = 1
	case VFBottomAligned:
		p.origin.Y = dest.Bottom() - img.Height
		p.vertTiles = 1
	default:
		return tilePlan{}, &FormattingError{Axis: "vertical", Value: v.String()}
	}

	return p, nil
}

// tileCount returns how many tiles of the natural extent cover extent.
// Natural extents are positive; images reject anything else on creation.
func tileCount(extent, natural float64) int {
	if extent <= 0 || natural <= 0 {
		return 0
	}
	return int(math.Ceil(extent / natural))
}

// tiles lists the placements row-major.
func (p tilePlan) tiles() []tile {
	out := make([]tile, 0, p.horzTiles*p.vertTiles)
	for row := 0; row < p.vertTiles; row++ {
		y := p.origin.Y + float64(row)*p.tileSize.Height
		for col := 0; col < p.horzTiles; col++ {
			x := p.origin.X + float64(col)*p.tileSize.Width
			out = append(out, tile{
				rect: RectAt(Point{X: x, Y: y}, p.tileSize),
				edge: (p.vertTiled && row == p.vertTiles-1) ||
					(p.horzTiled && col == p.horzTiles-1),
			})
		}
	}
	return out
}

// renderFormatted draws img into dest using the formatting modes. Interior
// tiles use clip unmodified; far-edge tiles of a tiled axis are clipped to
// the intersection of clip and dest so partial tiles never spill out.
func renderFormatted(buf GeometryBuffer, img *Image, h HorizontalFormatting, v VerticalFormatting,
	dest Rect, clip *Rect, colours ColourRect) error {
	plan, err := planTiles(h, v, dest, img.RenderedSize())
	if err != nil {
		return err
	}

	edgeClip := dest
	if clip != nil {
		edgeClip = clip.Intersection(dest)
	}

	for _, t := range plan.tiles() {
		c := clip
		if t.edge {
			c = &edgeClip
		}
		img.Render(buf, t.rect, c, colours)
	}
	return nil
}
