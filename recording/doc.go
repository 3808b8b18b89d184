// Package recording captures the geometry a look emits so it can be
// inspected or replayed.
//
// A Buffer implements falagard.GeometryBuffer and falagard.TextBuffer. Every
// quad and text run appended to it becomes a typed command; textures and
// font faces are stored once in a ResourcePool and referenced by handle.
//
//	buf := recording.NewBuffer()
//	_ = look.Render(window, "Normal", nil, nil) // window draws into buf
//
//	for _, cmd := range buf.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// Backends turn commands into output. They register themselves by name,
// following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/falagard/recording/backends/raster"
//
//	b, err := recording.Render("raster", buf, 320, 200, recording.BackendConfig{})
//	if err != nil {
//	    return err
//	}
//	err = b.(recording.FileBackend).SaveToFile("out.png")
//
// An unregistered name yields ErrUnknownBackend.
package recording
