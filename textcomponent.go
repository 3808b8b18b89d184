package falagard

import (
	"fmt"
	"strings"

	"github.com/gogpu/falagard/text"
)

// FontLookup resolves font names to faces. *text.Registry implements it.
type FontLookup interface {
	Font(name string) (*text.Face, error)
}

// TextComponent draws a string inside its area. The string and the font
// each come from a literal, a named window property, or the window's own
// "Text" and "Font" properties when neither is set.
type TextComponent struct {
	componentBase
	fonts FontLookup

	text         string
	textProperty string
	font         string
	fontProperty string

	horz         HorizontalTextFormatting
	horzProperty string
	vert         VerticalTextFormatting
	vertProperty string
}

// NewTextComponent creates a left and top aligned text component.
func NewTextComponent(fonts FontLookup) *TextComponent {
	return &TextComponent{
		componentBase: newComponentBase(),
		fonts:         fonts,
	}
}

func (c *TextComponent) Text() string { return c.text }

func (c *TextComponent) SetText(s string) { c.text = s }

func (c *TextComponent) TextProperty() string { return c.textProperty }

func (c *TextComponent) SetTextProperty(name string) { c.textProperty = name }

func (c *TextComponent) Font() string { return c.font }

func (c *TextComponent) SetFont(name string) { c.font = name }

func (c *TextComponent) FontProperty() string { return c.fontProperty }

func (c *TextComponent) SetFontProperty(name string) { c.fontProperty = name }

func (c *TextComponent) SetHorizontalFormatting(f HorizontalTextFormatting) { c.horz = f }

func (c *TextComponent) SetHorizontalFormattingProperty(name string) { c.horzProperty = name }

func (c *TextComponent) SetVerticalFormatting(f VerticalTextFormatting) { c.vert = f }

func (c *TextComponent) SetVerticalFormattingProperty(name string) { c.vertProperty = name }

// EffectiveText returns the string the component would draw for w.
func (c *TextComponent) EffectiveText(w PropertySource) string {
	name := c.textProperty
	if name == "" {
		if c.text != "" {
			return c.text
		}
		name = "Text"
	}
	v, err := w.Property(name)
	if err != nil {
		return ""
	}
	return v
}

// EffectiveFont returns the face the component would draw with for w, or
// nil when no font resolves.
func (c *TextComponent) EffectiveFont(w PropertySource) *text.Face {
	if c.fonts == nil {
		return nil
	}
	name := c.font
	switch {
	case c.fontProperty != "":
		v, err := w.Property(c.fontProperty)
		if err != nil {
			return nil
		}
		name = v
	case name == "":
		v, err := w.Property("Font")
		if err != nil {
			return nil
		}
		name = v
	}
	face, err := c.fonts.Font(name)
	if err != nil {
		Logger().Debug("falagard: text font unavailable", "font", name, "err", err)
		return nil
	}
	return face
}

func (c *TextComponent) formatting(w PropertySource) (HorizontalTextFormatting, VerticalTextFormatting, error) {
	h, v := c.horz, c.vert
	if c.horzProperty != "" {
		s, err := w.Property(c.horzProperty)
		if err != nil {
			return 0, 0, fmt.Errorf("falagard: horizontal text formatting property %q: %w", c.horzProperty, err)
		}
		if h, err = ParseHorizontalTextFormatting(s); err != nil {
			return 0, 0, err
		}
	}
	if c.vertProperty != "" {
		s, err := w.Property(c.vertProperty)
		if err != nil {
			return 0, 0, fmt.Errorf("falagard: vertical text formatting property %q: %w", c.vertProperty, err)
		}
		if v, err = ParseVerticalTextFormatting(s); err != nil {
			return 0, 0, err
		}
	}
	if int(h) >= len(horzTextFormattingNames) {
		return 0, 0, &FormattingError{Axis: "horizontal text", Value: h.String()}
	}
	if int(v) >= len(vertTextFormattingNames) {
		return 0, 0, &FormattingError{Axis: "vertical text", Value: v.String()}
	}
	return h, v, nil
}

// Render implements Component. Buffers that cannot hold text are skipped.
func (c *TextComponent) Render(w Window, base Rect, mod *ColourRect, clip *Rect, clipToDisplay bool) error {
	tb, ok := w.GeometryBuffer().(TextBuffer)
	if !ok {
		return nil
	}
	s := c.EffectiveText(w)
	if s == "" {
		return nil
	}
	face := c.EffectiveFont(w)
	if face == nil {
		return nil
	}
	dest, finalClip, err := c.prepare(w, base, clip)
	if err != nil {
		return err
	}
	h, v, err := c.formatting(w)
	if err != nil {
		return err
	}
	for _, run := range layoutText(face, s, dest, h, v) {
		run.Clip = &finalClip
		run.Colours = subColours(c.finalColours(w, mod), dest, run.box)
		tb.AppendText(run.TextRun)
	}
	return nil
}

// placedRun is a text run plus the box it occupies, used for colouring.
type placedRun struct {
	TextRun
	box Rect
}

// layoutText breaks s into lines and positions them inside dest.
func layoutText(face *text.Face, s string, dest Rect, h HorizontalTextFormatting, v VerticalTextFormatting) []placedRun {
	var lines []string
	if h.wraps() {
		lines = text.Wrap(face, s, dest.Width())
	} else {
		lines = text.Lines(s)
	}
	lh := face.Metrics().LineHeight
	if lh <= 0 {
		lh = face.Size()
	}

	total := float64(len(lines)) * lh
	y := dest.Top()
	switch v {
	case VTFCentreAligned:
		y += (dest.Height() - total) / 2
	case VTFBottomAligned:
		y = dest.Bottom() - total
	}

	// The last line of each wrapped paragraph stays left aligned.
	paraEnd := make([]bool, len(lines))
	if h == HTFWordWrapJustified {
		paraEnd = paragraphEnds(face, s, dest.Width())
	}

	var runs []placedRun
	for i, line := range lines {
		visual := text.Visual(line)
		width := face.Advance(visual)
		x := dest.Left()
		switch h {
		case HTFRightAligned, HTFWordWrapRightAligned:
			x = dest.Right() - width
		case HTFCentreAligned, HTFWordWrapCentreAligned:
			x += (dest.Width() - width) / 2
		case HTFJustified, HTFWordWrapJustified:
			if !paraEnd[i] {
				if words := justify(face, visual, x, y, dest.Width(), lh); words != nil {
					runs = append(runs, words...)
					y += lh
					continue
				}
			}
		}
		runs = append(runs, placedRun{
			TextRun: TextRun{Text: visual, Face: face, Origin: Pt(x, y)},
			box:     R(x, y, x+width, y+lh),
		})
		y += lh
	}
	return runs
}

// justify spreads the words of line across width, one run per word.
// It returns nil when the line has fewer than two words.
func justify(face *text.Face, line string, x, y, width, lh float64) []placedRun {
	words := strings.Fields(line)
	if len(words) < 2 {
		return nil
	}
	widths := make([]float64, len(words))
	var sum float64
	for i, word := range words {
		widths[i] = face.Advance(word)
		sum += widths[i]
	}
	gap := (width - sum) / float64(len(words)-1)
	runs := make([]placedRun, 0, len(words))
	for i, word := range words {
		runs = append(runs, placedRun{
			TextRun: TextRun{Text: word, Face: face, Origin: Pt(x, y)},
			box:     R(x, y, x+widths[i], y+lh),
		})
		x += widths[i] + gap
	}
	return runs
}

// paragraphEnds marks which wrapped lines end a paragraph.
func paragraphEnds(face *text.Face, s string, width float64) []bool {
	var ends []bool
	for _, para := range text.Lines(s) {
		n := len(text.Wrap(face, para, width))
		for i := 0; i < n; i++ {
			ends = append(ends, i == n-1)
		}
	}
	return ends
}

// WriteXML implements Component.
func (c *TextComponent) WriteXML(xw *XMLWriter) error {
	xw.OpenTag("TextComponent")
	c.area.writeXML(xw)
	if c.text != "" || c.font != "" {
		xw.OpenTag("Text")
		if c.font != "" {
			xw.Attribute("font", c.font)
		}
		xw.Attribute("string", c.text).CloseTag()
	}
	if c.textProperty != "" {
		xw.OpenTag("TextProperty").Attribute("name", c.textProperty).CloseTag()
	}
	if c.fontProperty != "" {
		xw.OpenTag("FontProperty").Attribute("name", c.fontProperty).CloseTag()
	}
	c.writeColoursXML(xw)
	if c.vertProperty != "" {
		xw.OpenTag("VertFormatProperty").Attribute("name", c.vertProperty).CloseTag()
	} else {
		xw.OpenTag("VertFormat").Attribute("type", c.vert.String()).CloseTag()
	}
	if c.horzProperty != "" {
		xw.OpenTag("HorzFormatProperty").Attribute("name", c.horzProperty).CloseTag()
	} else {
		xw.OpenTag("HorzFormat").Attribute("type", c.horz.String()).CloseTag()
	}
	xw.CloseTag()
	return xw.Err()
}
