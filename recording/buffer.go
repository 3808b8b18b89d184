package recording

import "github.com/gogpu/falagard"

// Buffer records quads and text runs as commands.
//
// Buffer is not safe for concurrent use; a window's geometry is built by
// one render pass at a time.
type Buffer struct {
	commands  []Command
	resources *ResourcePool
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		commands:  make([]Command, 0, 32),
		resources: NewResourcePool(),
	}
}

// AppendQuad implements falagard.GeometryBuffer.
func (b *Buffer) AppendQuad(q falagard.Quad) {
	b.commands = append(b.commands, QuadCommand{
		Texture: b.resources.AddTexture(q.Texture),
		Dest:    q.Dest,
		UV:      q.UV,
		Colours: q.Colours,
	})
}

// AppendText implements falagard.TextBuffer.
func (b *Buffer) AppendText(run falagard.TextRun) {
	cmd := TextCommand{
		Text:    run.Text,
		Font:    b.resources.AddFont(run.Face),
		Origin:  run.Origin,
		Colours: run.Colours,
	}
	if run.Clip != nil {
		cmd.Clip, cmd.Clipped = *run.Clip, true
	}
	b.commands = append(b.commands, cmd)
}

// Commands returns the recorded commands in order.
func (b *Buffer) Commands() []Command { return b.commands }

// Resources returns the pool the commands refer to.
func (b *Buffer) Resources() *ResourcePool { return b.resources }

// Len returns the number of recorded commands.
func (b *Buffer) Len() int { return len(b.commands) }

// Reset discards everything recorded.
func (b *Buffer) Reset() {
	b.commands = b.commands[:0]
	b.resources.Clear()
}

// Quads returns the recorded quads, in order.
func (b *Buffer) Quads() []falagard.Quad {
	var out []falagard.Quad
	for _, cmd := range b.commands {
		if c, ok := cmd.(QuadCommand); ok {
			out = append(out, falagard.Quad{
				Texture: b.resources.Texture(c.Texture),
				Dest:    c.Dest,
				UV:      c.UV,
				Colours: c.Colours,
			})
		}
	}
	return out
}

// Texts returns the recorded text runs, in order.
func (b *Buffer) Texts() []falagard.TextRun {
	var out []falagard.TextRun
	for _, cmd := range b.commands {
		if c, ok := cmd.(TextCommand); ok {
			run := falagard.TextRun{
				Text:    c.Text,
				Face:    b.resources.Font(c.Font),
				Origin:  c.Origin,
				Colours: c.Colours,
			}
			if c.Clipped {
				clip := c.Clip
				run.Clip = &clip
			}
			out = append(out, run)
		}
	}
	return out
}

// Bounds returns the union of every quad's destination rect.
func (b *Buffer) Bounds() falagard.Rect {
	var out falagard.Rect
	first := true
	for _, cmd := range b.commands {
		c, ok := cmd.(QuadCommand)
		if !ok {
			continue
		}
		if first {
			out, first = c.Dest, false
			continue
		}
		out = out.Union(c.Dest)
	}
	return out
}

// Playback replays every command to backend on a width x height target.
func (b *Buffer) Playback(backend Backend, width, height int) error {
	if err := backend.Begin(width, height); err != nil {
		return err
	}
	for _, cmd := range b.commands {
		switch c := cmd.(type) {
		case QuadCommand:
			backend.DrawQuad(b.resources.Texture(c.Texture), c.Dest, c.UV, c.Colours)
		case TextCommand:
			var clip *falagard.Rect
			if c.Clipped {
				clip = &c.Clip
			}
			backend.DrawText(c.Text, b.resources.Font(c.Font), c.Origin, clip, c.Colours)
		}
	}
	return backend.End()
}

var _ falagard.TextBuffer = (*Buffer)(nil)
