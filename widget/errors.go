package widget

import (
	"errors"
	"fmt"

	"github.com/gogpu/falagard"
)

// Sentinel errors for the widget package.
var (
	// ErrUnknownProperty is returned when reading or writing a property the
	// window does not carry. It wraps falagard.ErrUnknownObject.
	ErrUnknownProperty = fmt.Errorf("widget: unknown property: %w", falagard.ErrUnknownObject)

	// ErrDuplicateProperty is returned when a look adds a property the
	// window already carries, or DefineProperty reuses a name.
	ErrDuplicateProperty = errors.New("widget: duplicate property")

	// ErrUnknownChild is returned when a named child does not exist.
	ErrUnknownChild = errors.New("widget: unknown child")

	// ErrDuplicateChild is returned when creating a child under a name
	// that is already taken.
	ErrDuplicateChild = errors.New("widget: duplicate child")

	// ErrSelfLink is returned when an event is linked to itself on the
	// same window.
	ErrSelfLink = errors.New("widget: event linked to itself")

	// ErrNoLook is returned when rendering a window without a look.
	ErrNoLook = errors.New("widget: no look assigned")

	// ErrNoManager is returned when a window needs looks but was created
	// without a manager.
	ErrNoManager = errors.New("widget: no look manager")

	// ErrUnknownAnimation is returned for animation names that were never
	// defined and for instances the manager does not own.
	ErrUnknownAnimation = errors.New("widget: unknown animation")
)
