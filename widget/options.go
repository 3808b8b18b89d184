package widget

import "github.com/gogpu/falagard"

// Option configures a Window created by New.
type Option func(*options)

type options struct {
	skins        *falagard.Manager
	display      falagard.Size
	area         falagard.URect
	state        string
	pixelAligned bool
}

func defaultOptions() options {
	return options{
		area:         falagard.FullArea,
		state:        DefaultState,
		pixelAligned: true,
	}
}

// WithManager sets the manager looks are resolved from. Children inherit
// the manager of their parent.
func WithManager(m *falagard.Manager) Option {
	return func(o *options) {
		o.skins = m
	}
}

// WithDisplaySize sets the size root windows are placed in.
func WithDisplaySize(s falagard.Size) Option {
	return func(o *options) {
		o.display = s
	}
}

// WithArea sets the window's initial area.
func WithArea(area falagard.URect) Option {
	return func(o *options) {
		o.area = area
	}
}

// WithState sets the state imagery drawn by Render.
func WithState(state string) Option {
	return func(o *options) {
		o.state = state
	}
}

// WithPixelAlignment controls whether positions and sizes snap to whole
// pixels. Enabled by default.
func WithPixelAlignment(enabled bool) Option {
	return func(o *options) {
		o.pixelAligned = enabled
	}
}
