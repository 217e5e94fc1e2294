// Package config holds the run-time settings, read from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
)

type Window struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	VSync      bool   `toml:"vsync"`
	GrabCursor bool   `toml:"grab_cursor"`
}

type Projection struct {
	// FOV is the vertical field of view in radians.
	FOV  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

type Controls struct {
	// MoveSpeed is in world units per second.
	MoveSpeed float32 `toml:"move_speed"`
	// TurnSpeed is in radians per second.
	TurnSpeed float32 `toml:"turn_speed"`
	// MouseSensitivity is radians per pixel of cursor motion.
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
}

type Scene struct {
	TerrainPath    string `toml:"terrain_path"`
	HelicopterPath string `toml:"helicopter_path"`
	Helicopters    int    `toml:"helicopters"`
	// Spacing is the distance between neighbouring helicopters along X.
	Spacing float32 `toml:"spacing"`
	// PhaseOffset shifts each helicopter along the flight path, in seconds.
	PhaseOffset    float32 `toml:"phase_offset"`
	MainRotorSpeed float32 `toml:"main_rotor_speed"`
	TailRotorSpeed float32 `toml:"tail_rotor_speed"`
}

type Config struct {
	LogLevel   string     `toml:"log_level"`
	Window     Window     `toml:"window"`
	Projection Projection `toml:"projection"`
	Controls   Controls   `toml:"controls"`
	Scene      Scene      `toml:"scene"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Window: Window{
			Width:      800,
			Height:     600,
			Title:      "Gloom",
			VSync:      true,
			GrabCursor: true,
		},
		Projection: Projection{FOV: 0.75, Near: 1, Far: 1000},
		Controls: Controls{
			MoveSpeed:        40,
			TurnSpeed:        0.5,
			MouseSensitivity: 0.002,
		},
		Scene: Scene{
			TerrainPath:    "resources/lunarsurface.obj",
			HelicopterPath: "resources/helicopter.obj",
			Helicopters:    5,
			Spacing:        30,
			PhaseOffset:    0.8,
			MainRotorSpeed: 30,
			TailRotorSpeed: 40,
		},
	}
}

// Load reads the file at path over Default(). A missing file is not an
// error; unknown keys and malformed TOML are.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Projection.FOV <= 0 || c.Projection.FOV >= math32.Pi {
		errs = append(errs, fmt.Errorf("fov %v must be in (0, π)", c.Projection.FOV))
	}
	if c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v: need 0 < near < far", c.Projection.Near, c.Projection.Far))
	}
	if c.Controls.MoveSpeed < 0 || c.Controls.TurnSpeed < 0 || c.Controls.MouseSensitivity < 0 {
		errs = append(errs, errors.New("control speeds must not be negative"))
	}
	if c.Scene.Helicopters < 0 {
		errs = append(errs, fmt.Errorf("helicopter count %d must not be negative", c.Scene.Helicopters))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
