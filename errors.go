package falagard

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the falagard package.
var (
	// ErrUnknownLookup is returned when a named definition is not found
	// anywhere in a look's inheritance chain.
	ErrUnknownLookup = errors.New("falagard: unknown lookup")

	// ErrUnknownObject is returned when a look or image is not registered.
	ErrUnknownObject = errors.New("falagard: unknown object")

	// ErrAlreadyExists is returned when registering a second image under a
	// name that is already taken.
	ErrAlreadyExists = errors.New("falagard: already exists")

	// ErrInvalidFormatting is returned when a formatting value cannot be
	// used by the component that received it.
	ErrInvalidFormatting = errors.New("falagard: invalid formatting")

	// ErrOwnershipMismatch is returned by CleanUpWidget when the window is
	// currently assigned a different look.
	ErrOwnershipMismatch = errors.New("falagard: look ownership mismatch")

	// ErrInheritanceCycle is returned when a look inherits from itself,
	// directly or through other looks.
	ErrInheritanceCycle = errors.New("falagard: inheritance cycle")

	// ErrInvalidImageSize is returned when an image has a zero or negative
	// natural extent.
	ErrInvalidImageSize = errors.New("falagard: invalid image size")

	// ErrInvalidValue is returned when a property string cannot be parsed
	// into the requested type.
	ErrInvalidValue = errors.New("falagard: invalid value")
)

// LookupKind names the namespace a lookup was made in.
type LookupKind string

// Lookup namespaces of a WidgetLookFeel.
const (
	KindStateImagery           LookupKind = "state imagery"
	KindImagerySection         LookupKind = "imagery section"
	KindNamedArea              LookupKind = "named area"
	KindPropertyInitialiser    LookupKind = "property initialiser"
	KindPropertyDefinition     LookupKind = "property definition"
	KindPropertyLinkDefinition LookupKind = "property link definition"
	KindEventLinkDefinition    LookupKind = "event link definition"
	KindWidgetComponent        LookupKind = "widget component"
	KindAnimation              LookupKind = "animation"
)

// LookupError reports a name that no look in an inheritance chain defines.
type LookupError struct {
	Kind LookupKind
	Name string
	Look string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("falagard: unknown %s %q in look %q", e.Kind, e.Name, e.Look)
}

func (e *LookupError) Unwrap() error { return ErrUnknownLookup }

// CycleError reports the chain of look names that loops back on itself.
// The last element repeats an earlier one.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "falagard: inheritance cycle: " + strings.Join(e.Chain, " -> ")
}

func (e *CycleError) Unwrap() error { return ErrInheritanceCycle }

// FormattingError reports an unusable formatting value on one axis.
type FormattingError struct {
	Axis  string
	Value string
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("falagard: unknown %s formatting %q", e.Axis, e.Value)
}

func (e *FormattingError) Unwrap() error { return ErrInvalidFormatting }
