package recording

import (
	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/text"
)

// ResourcePool stores the textures and faces commands refer to. Each
// distinct texture or face is stored once. Textures are identified by
// name, so Texture implementations need not be comparable, but two
// different textures recorded into one pool must not share a name.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	textures   []falagard.Texture
	textureIDs map[string]TextureRef
	fonts      []*text.Face
	fontIDs    map[*text.Face]FontRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		textureIDs: make(map[string]TextureRef),
		fontIDs:    make(map[*text.Face]FontRef),
	}
}

// AddTexture returns the reference for t, adding it if needed. A texture
// whose name is already pooled shares that entry. A nil texture yields
// InvalidRef.
func (p *ResourcePool) AddTexture(t falagard.Texture) TextureRef {
	if t == nil {
		return TextureRef(InvalidRef)
	}
	name := t.Name()
	if ref, ok := p.textureIDs[name]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := TextureRef(uint32(len(p.textures)))
	p.textures = append(p.textures, t)
	p.textureIDs[name] = ref
	return ref
}

// Texture returns the texture for ref, or nil.
func (p *ResourcePool) Texture(ref TextureRef) falagard.Texture {
	if int(ref) >= len(p.textures) {
		return nil
	}
	return p.textures[ref]
}

// TextureCount returns the number of distinct textures.
func (p *ResourcePool) TextureCount() int { return len(p.textures) }

// AddFont returns the reference for f, adding it if needed.
func (p *ResourcePool) AddFont(f *text.Face) FontRef {
	if f == nil {
		return FontRef(InvalidRef)
	}
	if ref, ok := p.fontIDs[f]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := FontRef(uint32(len(p.fonts)))
	p.fonts = append(p.fonts, f)
	p.fontIDs[f] = ref
	return ref
}

// Font returns the face for ref, or nil.
func (p *ResourcePool) Font(ref FontRef) *text.Face {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of distinct faces.
func (p *ResourcePool) FontCount() int { return len(p.fonts) }

// Clear removes all resources.
func (p *ResourcePool) Clear() {
	p.textures = p.textures[:0]
	p.fonts = p.fonts[:0]
	clear(p.textureIDs)
	clear(p.fontIDs)
}
