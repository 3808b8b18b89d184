package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/falagard"
	"github.com/gogpu/falagard/recording"
)

// Config describes one demo render. It is read from a TOML file and then
// overridden by command line flags.
type Config struct {
	Output     string       `toml:"output"`
	Backend    string       `toml:"backend"`
	Blend      string       `toml:"blend"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	Background string       `toml:"background"`
	State      string       `toml:"state"`
	Widget     WidgetConfig `toml:"widget"`
}

// WidgetConfig describes the demo button.
type WidgetConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Caption     string  `toml:"caption"`
	FontSize    float64 `toml:"font_size"`
	FrameColour string  `toml:"frame_colour"`
	Animations  bool    `toml:"animations"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Output:     "lookdemo.png",
		Backend:    "raster",
		Width:      320,
		Height:     120,
		Background: "FF1E2530",
		State:      "Enabled",
		Widget: WidgetConfig{
			Width:       200,
			Height:      48,
			Caption:     "Falagard",
			FontSize:    18,
			FrameColour: "FFFFFFFF",
			Animations:  true,
		},
	}
}

// LoadConfig reads path over the defaults. Keys missing from the file keep
// their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("lookdemo: read config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("lookdemo: unknown config key %q", undec[0].String())
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("lookdemo: output size %dx%d", c.Width, c.Height)
	}
	if c.Widget.Width <= 0 || c.Widget.Height <= 0 {
		return fmt.Errorf("lookdemo: widget size %vx%v", c.Widget.Width, c.Widget.Height)
	}
	if c.Widget.FontSize <= 0 {
		return errors.New("lookdemo: font size must be positive")
	}
	if c.Output == "" {
		return errors.New("lookdemo: no output path")
	}
	if !slices.Contains(recording.Backends(), c.Backend) {
		return fmt.Errorf("lookdemo: backend %q not one of %v", c.Backend, recording.Backends())
	}
	if _, err := falagard.ParseColour(c.Background); err != nil {
		return fmt.Errorf("lookdemo: background: %w", err)
	}
	if _, err := falagard.ParseColourRect(c.Widget.FrameColour); err != nil {
		return fmt.Errorf("lookdemo: frame colour: %w", err)
	}
	return nil
}
