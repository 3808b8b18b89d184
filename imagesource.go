package falagard

// ImageSource says where a component finds its image: a direct image, a
// window property naming one, or nowhere (unspecified).
type ImageSource struct {
	image    *Image
	property string
}

// DirectImage returns a source holding img. A nil img is unspecified.
func DirectImage(img *Image) ImageSource {
	return ImageSource{image: img}
}

// ImageFromProperty returns a source that reads the image name from the
// named window property at render time. An empty name is unspecified.
func ImageFromProperty(name string) ImageSource {
	return ImageSource{property: name}
}

// IsSpecified reports whether the source names an image in any way.
func (s ImageSource) IsSpecified() bool {
	return s.image != nil || s.property != ""
}

// IsFromProperty reports whether the image is fetched from a property.
func (s ImageSource) IsFromProperty() bool {
	return s.image == nil && s.property != ""
}

// Image returns the direct image, if any.
func (s ImageSource) Image() *Image { return s.image }

// Property returns the property name, if any.
func (s ImageSource) Property() string { return s.property }

// Resolve returns the image to draw, or nil when there is nothing to draw.
// Property failures and unknown image names resolve to nil.
func (s ImageSource) Resolve(w PropertySource, images ImageLookup) *Image {
	if s.image != nil {
		return s.image
	}
	if s.property == "" || w == nil {
		return nil
	}
	name, err := w.Property(s.property)
	if err != nil || name == "" {
		return nil
	}
	if images == nil {
		Logger().Warn("falagard: no image table for property image",
			"property", s.property, "image", name)
		return nil
	}
	img, err := images.Image(name)
	if err != nil {
		Logger().Warn("falagard: property names unknown image",
			"property", s.property, "image", name)
		return nil
	}
	return img
}
