package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/text"
)

// Look names registered by buildSkin.
const (
	frameLook  = "Demo/Frame"
	buttonLook = "Demo/Button"
	iconLook   = "Demo/Icon"
)

// States every demo look defines.
var demoStates = []string{"Enabled", "Hover", "Pushed", "Disabled"}

// atlasRegion is one named image in the generated skin texture.
type atlasRegion struct {
	name   string
	bounds image.Rectangle
	fill   color.RGBA
}

var atlas = []atlasRegion{
	{"Demo/TopLeft", image.Rect(0, 0, 4, 4), color.RGBA{0x9a, 0xb4, 0xd0, 0xff}},
	{"Demo/Top", image.Rect(4, 0, 20, 4), color.RGBA{0xb8, 0xcc, 0xe2, 0xff}},
	{"Demo/TopRight", image.Rect(20, 0, 24, 4), color.RGBA{0x9a, 0xb4, 0xd0, 0xff}},
	{"Demo/Left", image.Rect(0, 4, 4, 20), color.RGBA{0x8c, 0xa6, 0xc4, 0xff}},
	{"Demo/Fill", image.Rect(4, 4, 20, 20), color.RGBA{0x3c, 0x5a, 0x80, 0xff}},
	{"Demo/Right", image.Rect(20, 4, 24, 20), color.RGBA{0x4a, 0x60, 0x7c, 0xff}},
	{"Demo/BottomLeft", image.Rect(0, 20, 4, 24), color.RGBA{0x4a, 0x60, 0x7c, 0xff}},
	{"Demo/Bottom", image.Rect(4, 20, 20, 24), color.RGBA{0x34, 0x46, 0x5c, 0xff}},
	{"Demo/BottomRight", image.Rect(20, 20, 24, 24), color.RGBA{0x2a, 0x38, 0x4a, 0xff}},
	{"Demo/Glow", image.Rect(0, 24, 8, 32), color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{"Demo/Icon", image.Rect(8, 24, 16, 32), color.RGBA{0xf2, 0xb1, 0x34, 0xff}},
}

var frameSlots = map[falagard.FrameImageComponent]string{
	falagard.FrameTopLeftCorner:     "Demo/TopLeft",
	falagard.FrameTopEdge:           "Demo/Top",
	falagard.FrameTopRightCorner:    "Demo/TopRight",
	falagard.FrameLeftEdge:          "Demo/Left",
	falagard.FrameBackground:        "Demo/Fill",
	falagard.FrameRightEdge:         "Demo/Right",
	falagard.FrameBottomLeftCorner:  "Demo/BottomLeft",
	falagard.FrameBottomEdge:        "Demo/Bottom",
	falagard.FrameBottomRightCorner: "Demo/BottomRight",
}

// loadAtlas paints the skin texture and registers its images.
func loadAtlas(images *falagard.ImageManager) (map[string]*falagard.Image, error) {
	src := image.NewRGBA(image.Rect(0, 0, 24, 32))
	for _, r := range atlas {
		draw.Draw(src, r.bounds, image.NewUniform(r.fill), image.Point{}, draw.Src)
	}
	tex := falagard.NewImageTexture("Demo/Atlas", src)
	out := make(map[string]*falagard.Image, len(atlas))
	for _, r := range atlas {
		area := falagard.R(float64(r.bounds.Min.X), float64(r.bounds.Min.Y),
			float64(r.bounds.Max.X), float64(r.bounds.Max.Y))
		img, err := falagard.NewImage(r.name, tex, area, falagard.Point{})
		if err != nil {
			return nil, err
		}
		if err := images.Add(img); err != nil {
			return nil, err
		}
		out[r.name] = img
	}
	return out, nil
}

// frameSpec returns how the frame section of owner is drawn in state.
func frameSpec(owner, state string) falagard.SectionSpecification {
	spec := falagard.SectionSpec(owner, "frame")
	switch state {
	case "Pushed":
		c := falagard.Uniform(falagard.ARGB(1, 0.75, 0.75, 0.75))
		spec.Colours = &c
	case "Disabled":
		c := falagard.Uniform(falagard.ARGB(1, 0.5, 0.5, 0.5))
		spec.Colours = &c
	default:
		spec.ColoursProperty = "FrameColour"
	}
	return spec
}

// buildSkin registers the demo looks with m. Demo/Button inherits its frame
// and states from Demo/Frame and adds a caption, an icon child and a pulse
// animation.
func buildSkin(m *falagard.Manager, fonts *text.Registry) error {
	images := m.Images()
	imgs, err := loadAtlas(images)
	if err != nil {
		return err
	}

	frame := falagard.NewWidgetLookFeel(frameLook, "")
	frame.AddPropertyDefinition(falagard.NewPropertyDefinition("FrameColour",
		falagard.Uniform(falagard.White).String(), "ColourRect"))
	frame.AddNamedArea(falagard.NamedArea{
		Name: "ClientArea",
		Area: falagard.AreaOf(falagard.UR(falagard.Absolute(4), falagard.Absolute(4),
			falagard.UD(1, -4), falagard.UD(1, -4))),
	})

	fc := falagard.NewFrameComponent(images)
	for slot, name := range frameSlots {
		fc.SetImage(slot, falagard.DirectImage(imgs[name]))
	}
	fc.SetBackgroundHorizontalFormatting(falagard.HFTiled)
	fc.SetBackgroundVerticalFormatting(falagard.VFTiled)
	frameSection := falagard.NewImagerySection("frame")
	frameSection.AddFrameComponent(fc)
	frame.AddImagerySection(frameSection)

	glow := falagard.NewImageryComponent(images, falagard.DirectImage(imgs["Demo/Glow"]))
	glow.SetArea(falagard.AreaOf(falagard.UR(falagard.Absolute(4), falagard.Absolute(4),
		falagard.UD(1, -4), falagard.UD(0.5, 0))))
	glow.SetColours(falagard.ColourRect{
		TopLeft:     falagard.ARGB(0.35, 1, 1, 1),
		TopRight:    falagard.ARGB(0.35, 1, 1, 1),
		BottomLeft:  falagard.ARGB(0, 1, 1, 1),
		BottomRight: falagard.ARGB(0, 1, 1, 1),
	})
	glowSection := falagard.NewImagerySection("glow")
	glowSection.AddImageryComponent(glow)
	frame.AddImagerySection(glowSection)

	for _, name := range demoStates {
		st := falagard.NewStateImagery(name)
		st.AddLayer(falagard.NewLayer(0, frameSpec("", name)))
		if name == "Hover" {
			st.AddLayer(falagard.NewLayer(1, falagard.SectionSpec("", "glow")))
		}
		frame.AddStateImagery(st)
	}
	m.Register(frame)

	icon := falagard.NewWidgetLookFeel(iconLook, "")
	iconSection := falagard.NewImagerySection("icon")
	iconSection.AddImageryComponent(falagard.NewImageryComponent(images,
		falagard.DirectImage(imgs["Demo/Icon"])))
	icon.AddImagerySection(iconSection)
	for _, name := range demoStates {
		st := falagard.NewStateImagery(name)
		st.AddLayer(falagard.NewLayer(0, falagard.SectionSpec("", "icon")))
		icon.AddStateImagery(st)
	}
	m.Register(icon)

	button := falagard.NewWidgetLookFeel(buttonLook, frameLook)
	caption := falagard.NewPropertyDefinition("Caption", "Button", "String")
	caption.SetRedrawOnWrite(true)
	button.AddPropertyDefinition(caption)
	button.AddPropertyInitialiser(falagard.PropertyInitialiser{Target: "Font", Value: "Body"})

	label := falagard.NewTextComponent(fonts)
	label.SetTextProperty("Caption")
	label.SetFontProperty("Font")
	label.SetHorizontalFormatting(falagard.HTFCentreAligned)
	label.SetVerticalFormatting(falagard.VTFCentreAligned)
	label.SetArea(falagard.AreaOf(falagard.UR(falagard.Absolute(28), falagard.Absolute(0),
		falagard.UD(1, -4), falagard.Relative(1))))
	labelSection := falagard.NewImagerySection("label")
	labelSection.AddTextComponent(label)
	button.AddImagerySection(labelSection)

	for _, name := range demoStates {
		st := falagard.NewStateImagery(name)
		st.AddLayer(falagard.NewLayer(0, frameSpec(frameLook, name)))
		if name == "Hover" {
			st.AddLayer(falagard.NewLayer(1, falagard.SectionSpec(frameLook, "glow")))
		}
		st.AddLayer(falagard.NewLayer(2, falagard.SectionSpec("", "label")))
		button.AddStateImagery(st)
	}

	button.AddWidgetComponent(&falagard.WidgetComponent{
		Name: "__icon__",
		Type: "Icon",
		Look: iconLook,
		Area: falagard.AreaOf(falagard.UR(falagard.Absolute(4), falagard.Absolute(0),
			falagard.Absolute(20), falagard.Absolute(16))),
		VertAlign: falagard.AlignMiddle,
	})
	button.AddAnimationName("Pulse")
	m.Register(button)
	return nil
}
