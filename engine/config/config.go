package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine"
	"github.com/Carmen-Shannon/oxy-showcase/engine/game_object"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"github.com/Carmen-Shannon/oxy-showcase/engine/rotation"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"gopkg.in/yaml.v3"
)

// EnvWindowTitle overrides window.title when set.
const EnvWindowTitle = "OXY_WINDOW_TITLE"

// Config is the showcase configuration file.
type Config struct {
	Window   WindowConfig        `yaml:"window"`
	Engine   EngineConfig        `yaml:"engine"`
	Rotation RotationConfig      `yaml:"rotation"`
	Log      logger.LoggerConfig `yaml:"log"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// FollowCursor starts the desktop host with the car tracking the hovered cursor.
	FollowCursor bool `yaml:"follow_cursor"`
}

// EngineConfig tunes the engine loops.
type EngineConfig struct {
	TickRate         float64 `yaml:"tick_rate"`
	RenderFrameLimit float64 `yaml:"render_frame_limit"`
	Profiling        bool    `yaml:"profiling"`
	PresentMode      string  `yaml:"present_mode"` // vsync or uncapped
	ComputeWorkers   int     `yaml:"compute_workers"`
	SoftwareRenderer bool    `yaml:"software_renderer"`
}

// RotationConfig holds the rotation controller tunables. Times are in milliseconds.
type RotationConfig struct {
	Sensitivity        float64 `yaml:"sensitivity"`
	Friction           float64 `yaml:"friction"`
	IdleTimeoutMs      float64 `yaml:"idle_timeout_ms"`
	AutoRotateRate     float64 `yaml:"auto_rotate_rate"`
	PitchLimitRadians  float64 `yaml:"pitch_limit_radians"`
	VelocityEpsilon    float64 `yaml:"velocity_epsilon"`
	OrientationDamping float64 `yaml:"orientation_damping"`
	MinDeltaTimeMs     float64 `yaml:"min_delta_time_ms"`
	ResetDurationMs    float64 `yaml:"reset_duration_ms"`
	HomeYaw            float64 `yaml:"home_yaw"`
	HomePitch          float64 `yaml:"home_pitch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Oxy Showcase",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate:    60,
			PresentMode: "vsync",
		},
		Rotation: RotationConfig{
			Sensitivity:        rotation.DefaultSensitivity,
			Friction:           rotation.DefaultFriction,
			IdleTimeoutMs:      rotation.DefaultIdleTimeout,
			AutoRotateRate:     rotation.DefaultAutoRotateRate,
			PitchLimitRadians:  rotation.DefaultPitchLimit,
			VelocityEpsilon:    rotation.DefaultVelocityEpsilon,
			OrientationDamping: rotation.DefaultOrientationDamping,
			MinDeltaTimeMs:     rotation.DefaultMinDeltaTime,
			ResetDurationMs:    rotation.DefaultResetDuration,
			HomeYaw:            game_object.CarHomeYaw,
			HomePitch:          game_object.CarHomePitch,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads, overrides and validates the configuration file at path.
//
// Parameters:
//   - path: YAML file path
//
// Returns:
//   - Config: the configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over Default, applies environment overrides and
// validates the result. Keys absent from the document keep their defaults;
// unknown keys are rejected. An empty document yields the defaults.
//
// Parameters:
//   - r: YAML source
//
// Returns:
//   - Config: the configuration
//   - error: a decode error or a validation error wrapping ErrInvalidConfig
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg = cfg.WithEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithEnv returns c with environment overrides applied.
func (c Config) WithEnv() Config {
	c.Window.Title = common.Coalesce(os.Getenv(EnvWindowTitle), c.Window.Title)
	c.Log = logger.ApplyEnv(c.Log)
	return c
}

// Options converts the tunables into controller options.
//
// Returns:
//   - []rotation.RotationControllerOption: options for rotation.NewRotationController
func (r RotationConfig) Options() []rotation.RotationControllerOption {
	return []rotation.RotationControllerOption{
		rotation.WithSensitivity(r.Sensitivity),
		rotation.WithFriction(r.Friction),
		rotation.WithIdleTimeout(r.IdleTimeoutMs),
		rotation.WithAutoRotateRate(r.AutoRotateRate),
		rotation.WithPitchLimit(r.PitchLimitRadians),
		rotation.WithVelocityEpsilon(r.VelocityEpsilon),
		rotation.WithOrientationDamping(r.OrientationDamping),
		rotation.WithMinDeltaTime(r.MinDeltaTimeMs),
		rotation.WithResetDuration(r.ResetDurationMs),
		rotation.WithHome(r.HomeYaw, r.HomePitch),
		rotation.WithInitialOrientation(r.HomeYaw, r.HomePitch),
	}
}

// Options converts the loop settings into engine options.
//
// Returns:
//   - []engine.EngineBuilderOption: options for engine.NewEngine
func (e EngineConfig) Options() []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithTickRate(e.TickRate),
		engine.WithRenderFrameLimit(e.RenderFrameLimit),
		engine.WithProfiling(e.Profiling),
	}
}

// SceneOptions converts the worker setting into scene options.
//
// Returns:
//   - []scene.SceneBuilderOption: options for scene.NewScene
func (e EngineConfig) SceneOptions() []scene.SceneBuilderOption {
	if e.ComputeWorkers <= 0 {
		return nil
	}
	return []scene.SceneBuilderOption{scene.WithComputeWorkers(e.ComputeWorkers)}
}
