package text

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	name string
	data []byte

	// ot rasterises and supplies metrics; gt feeds the shaper.
	ot *opentype.Font
	gt *gotext.Font
}

// NewFontSource parses TTF or OTF data. The data slice is copied.
func NewFontSource(name string, data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	ot, err := opentype.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font %q: %w", name, err)
	}
	gt, err := gotext.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font %q for shaping: %w", name, err)
	}
	return &FontSource{name: name, data: buf, ot: ot, gt: gt.Font}, nil
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// DefaultSource returns the Go Regular font. It panics only if the bundled
// font data fails to parse.
func DefaultSource() *FontSource {
	defaultOnce.Do(func() {
		src, err := NewFontSource("GoRegular", goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultSource = src
	})
	return defaultSource
}

// Name returns the name the source was registered with.
func (s *FontSource) Name() string { return s.name }

// Face returns the font at the given pixel size.
func (s *FontSource) Face(size float64) *Face {
	return &Face{src: s, size: size}
}

// Registry maps font names to faces.
type Registry struct {
	mu    sync.RWMutex
	faces map[string]*Face
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{faces: make(map[string]*Face)}
}

// Add registers face under name, replacing any previous face.
func (r *Registry) Add(name string, face *Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[name] = face
}

// Font returns the named face.
func (r *Registry) Font(name string) (*Face, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.faces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return f, nil
}
