package falagard

// PropertySource reads window properties by name.
type PropertySource interface {
	Property(name string) (string, error)
}

// Property is a named value a look can add to a window. Implementations
// decide where the value is stored.
type Property interface {
	Name() string
	// Default returns the value written when the property is added.
	Default(w Window) string
	Get(w Window) (string, error)
	Set(w Window, value string) error
}

// Window is the part of a widget the engine drives. The widget system owns
// windows; the engine only reads properties, adds and removes the
// properties and children a look declares, and appends geometry.
type Window interface {
	PropertySource

	Name() string
	// LookName returns the name of the look currently assigned.
	LookName() string
	// PixelSize returns the window's resolved size.
	PixelSize() Size

	// SetProperty writes an existing property. Windows do not create
	// properties on write; an unknown name yields an error wrapping
	// ErrUnknownObject.
	SetProperty(name, value string) error
	IsPropertyPresent(name string) bool
	AddProperty(p Property) error
	RemoveProperty(name string)

	// UserString, SetUserString and RemoveUserString back look-defined
	// properties.
	UserString(name string) (string, bool)
	SetUserString(name, value string)
	RemoveUserString(name string)

	IsChild(name string) bool
	Child(name string) (Window, error)
	CreateChild(typ, name string) (Window, error)
	DestroyChild(name string) error

	// SetArea and SetAlignment place a child within its parent.
	SetArea(area URect)
	SetAlignment(h HorizontalAlignment, v VerticalAlignment)

	// LinkEvent makes the window fire event name whenever the named
	// child fires childEvent. UnlinkEvent removes every link for name.
	LinkEvent(name, child, childEvent string) error
	UnlinkEvent(name string)

	GeometryBuffer() GeometryBuffer
}

// Invalidator is implemented by windows that can be asked to redraw.
type Invalidator interface {
	Invalidate()
}

// ChildLayouter is implemented by windows that can re-run child layout.
type ChildLayouter interface {
	PerformChildLayout()
}

// WindowRect returns w's own area in window-local pixels.
func WindowRect(w Window) Rect {
	return RectAt(Point{}, w.PixelSize())
}

// AnimationInstance is a running animation bound to a window.
type AnimationInstance interface {
	SetTarget(w Window)
	Start()
}

// AnimationManager creates and destroys animation instances.
type AnimationManager interface {
	Instantiate(name string) (AnimationInstance, error)
	Destroy(inst AnimationInstance) error
}
