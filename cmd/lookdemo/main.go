// Command lookdemo renders a skinned button with the falagard engine.
//
// Usage:
//
//	lookdemo [-config demo.toml] [-backend raster] [-state Hover] [-caption text] [-output out.png]
//	lookdemo -xml
//
// Flags override the values read from the config file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/recording"
	_ "github.com/gogpu/falagard/recording/backends/raster"
	"github.com/gogpu/falagard/text"
	"github.com/gogpu/falagard/widget"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		output     = flag.String("output", "", "output PNG file")
		state      = flag.String("state", "", "state imagery to draw")
		backend    = flag.String("backend", "", "registered backend to render with")
		caption    = flag.String("caption", "", "button caption")
		width      = flag.Int("width", 0, "image width")
		height     = flag.Int("height", 0, "image height")
		xmlOut     = flag.Bool("xml", false, "write the looks as XML to stdout instead of rendering")
		verbose    = flag.Bool("v", false, "log engine activity to stderr")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "state":
			cfg.State = *state
		case "backend":
			cfg.Backend = *backend
		case "caption":
			cfg.Widget.Caption = *caption
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *verbose {
		falagard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *xmlOut {
		if err := writeXML(cfg, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := render(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, state %s)\n", cfg.Output, cfg.Width, cfg.Height, cfg.State)
}

// newManager builds the look manager and registers the demo skin.
func newManager(cfg Config) (*falagard.Manager, *widget.AnimationManager, error) {
	fonts := text.NewRegistry()
	fonts.Add("Body", text.DefaultSource().Face(cfg.Widget.FontSize))

	var opts []falagard.ManagerOption
	var anims *widget.AnimationManager
	if cfg.Widget.Animations {
		anims = widget.NewAnimationManager()
		anims.Define("Pulse", 1200*time.Millisecond, true)
		opts = append(opts, falagard.WithAnimationManager(anims))
	}
	m := falagard.NewManager(opts...)
	if err := buildSkin(m, fonts); err != nil {
		return nil, nil, fmt.Errorf("lookdemo: build skin: %w", err)
	}
	return m, anims, nil
}

func writeXML(cfg Config, w io.Writer) error {
	m, _, err := newManager(cfg)
	if err != nil {
		return err
	}
	return m.WriteLooksToStream(w)
}

// buildScene places the demo button in the middle of a root window.
func buildScene(cfg Config, m *falagard.Manager) (*widget.Window, *widget.Window, error) {
	root := widget.New("Root", "root",
		widget.WithManager(m),
		widget.WithDisplaySize(falagard.Sz(float64(cfg.Width), float64(cfg.Height))),
		widget.WithState(cfg.State))

	btn, err := root.AddChild("Button", "demo")
	if err != nil {
		return nil, nil, err
	}
	btn.SetArea(falagard.UR(falagard.Absolute(0), falagard.Absolute(0),
		falagard.Absolute(cfg.Widget.Width), falagard.Absolute(cfg.Widget.Height)))
	btn.SetAlignment(falagard.AlignCentre, falagard.AlignMiddle)

	props := []struct{ name, value string }{
		{falagard.LookNFeelProperty, buttonLook},
		{"Caption", cfg.Widget.Caption},
		{"FrameColour", cfg.Widget.FrameColour},
	}
	for _, p := range props {
		if err := btn.SetProperty(p.name, p.value); err != nil {
			return nil, nil, fmt.Errorf("lookdemo: set %s: %w", p.name, err)
		}
	}
	return root, btn, nil
}

func render(cfg Config) error {
	m, anims, err := newManager(cfg)
	if err != nil {
		return err
	}
	root, btn, err := buildScene(cfg, m)
	if err != nil {
		return err
	}
	if anims != nil {
		anims.Step(16 * time.Millisecond)
	}

	screen := recording.NewBuffer()
	if err := root.DrawTree(screen); err != nil {
		return err
	}
	falagard.Logger().Debug("lookdemo: scene recorded",
		"commands", screen.Len(), "button", btn.ScreenRect().String())

	bg, err := falagard.ParseColour(cfg.Background)
	if err != nil {
		return err
	}
	backend, err := recording.Render(cfg.Backend, screen, cfg.Width, cfg.Height,
		recording.BackendConfig{Background: bg, Blend: cfg.Blend})
	if err != nil {
		return err
	}
	out, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("lookdemo: backend %q cannot write files", cfg.Backend)
	}
	return out.SaveToFile(cfg.Output)
}
