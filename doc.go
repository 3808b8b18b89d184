// Package falagard resolves widget skins and composites their imagery.
//
// # Overview
//
// A skin is described by a set of looks ([WidgetLookFeel]). Each look maps a
// widget's logical visual state ("Enabled", "Disabled", "PushedFocused", ...)
// to a [StateImagery], which paints an ordered list of [ImagerySection]s.
// Sections are made of frame components (nine-slot corner/edge/background
// imagery), single image components and text components. Looks inherit from
// one another by name; the more derived definition always wins.
//
// Rendering never touches a graphics API directly. Components emit textured
// quads into a [GeometryBuffer] supplied by the target window; the
// recording package provides a buffer that captures those quads and the
// recording/backends/raster package turns them into pixels.
//
// # Quick Start
//
//	images := falagard.NewImageManager()
//	tex := falagard.NewImageTexture("skin", skinPNG)
//	img, _ := falagard.NewImage("Skin/Background", tex, falagard.R(0, 0, 16, 16), falagard.Point{})
//	_ = images.Add(img)
//
//	frame := falagard.NewFrameComponent(images)
//	frame.SetImage(falagard.FrameBackground, falagard.DirectImage(img))
//
//	section := falagard.NewImagerySection("main")
//	section.AddFrameComponent(frame)
//
//	look := falagard.NewWidgetLookFeel("Skin/Button", "")
//	look.AddImagerySection(section)
//	state := falagard.NewStateImagery("Enabled")
//	state.AddLayer(falagard.NewLayer(0, falagard.SectionSpecification{Section: "main"}))
//	look.AddStateImagery(state)
//
//	mgr := falagard.NewManager(falagard.WithImages(images))
//	mgr.Register(look)
//	err := look.Render(wnd, "Enabled", nil, nil)
//
// # Coordinate System
//
// Window-local pixel coordinates: origin at the top-left, X grows right and Y
// grows down. Unified dimensions ([UDim]) carry a scale relative to a base
// extent plus an absolute pixel offset and are resolved only against an
// explicit base.
//
// # Threading
//
// The engine is synchronous and assumes a single render thread. The look
// [Manager] guards its tables with a mutex so registrations made during
// loading are visible to the render thread, but looks and components are not
// meant to be mutated while they are being rendered.
package falagard

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
