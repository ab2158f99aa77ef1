package slideview

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate().
var ErrInvalidConfig = errors.New("invalid config")

// Config is the viewer's configuration, as loaded from a YAML file. Any field left out of the file keeps the value from DefaultConfig().
type Config struct {
	Model      ModelConfig      `yaml:"model"`
	Transition TransitionConfig `yaml:"transition"`
	Framing    FramingSpec      `yaml:"framing"`
	Orbit      OrbitConfig      `yaml:"orbit"`
	AR         ARConfig         `yaml:"ar"`
}

// ModelConfig controls which model is loaded and how large it's displayed.
type ModelConfig struct {
	Path       string  `yaml:"path"`        // Path to a .glb / .gltf file; empty loads the built-in water slide
	TargetSize float64 `yaml:"target_size"` // The model is uniformly scaled so its largest dimension is this many world units
}

// TransitionConfig controls camera transitions between presets.
type TransitionConfig struct {
	DurationMS float64 `yaml:"duration_ms"`
	Easing     string  `yaml:"easing"`
}

// PresetSpec is the YAML form of a PresetFraming.
type PresetSpec struct {
	Name        string     `yaml:"name"`
	Label       string     `yaml:"label,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Position    [3]float64 `yaml:"position,flow"`
	Target      [3]float64 `yaml:"target,flow"`
}

// FramingSpec is the YAML form of a FramingConfig.
type FramingSpec struct {
	Epsilon float64      `yaml:"epsilon"`
	Default PresetSpec   `yaml:"default"`
	Presets []PresetSpec `yaml:"presets"`
}

// OrbitConfig is the YAML form of OrbitControls, with angles in degrees.
type OrbitConfig struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	MinPitchDeg float64 `yaml:"min_pitch_deg"`
	MaxPitchDeg float64 `yaml:"max_pitch_deg"`
	DragSpeed   float64 `yaml:"drag_speed"` // Radians of rotation per pixel of mouse movement
}

// ARConfig holds the URIs handed to platform AR viewers.
type ARConfig struct {
	GLBURI      string `yaml:"glb_uri"`
	USDZURI     string `yaml:"usdz_uri"`
	Title       string `yaml:"title"`
	FallbackURL string `yaml:"fallback_url"`
}

// DefaultConfig returns the configuration for the water slide demo, including its four camera presets.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			TargetSize: 4,
		},
		Transition: TransitionConfig{
			DurationMS: float64(DefaultTransitionDuration / time.Millisecond),
			Easing:     DefaultEasing,
		},
		Framing: FramingSpec{
			Epsilon: DefaultFramingEpsilon,
			Default: PresetSpec{
				Name:     "default",
				Label:    "Overview",
				Position: [3]float64{1.1, 0.75, 1.1},
				Target:   [3]float64{0, 0.4, 0},
			},
			Presets: []PresetSpec{
				{
					Name:        string(PresetFirstDrop),
					Label:       "First Drop",
					Description: "The launch platform and the near-vertical opening plunge.",
					Position:    [3]float64{0.35, 1.05, 0.5},
					Target:      [3]float64{0.1, 0.8, 0},
				},
				{
					Name:        string(PresetWaterEffects),
					Label:       "Water Effects",
					Description: "Spray curtains and the splash pool at the run-out.",
					Position:    [3]float64{-0.85, 0.3, 0.75},
					Target:      [3]float64{-0.2, 0.1, 0.2},
				},
				{
					Name:        string(PresetSoundLight),
					Label:       "Sound & Light",
					Description: "The enclosed tube section with its light and audio rig.",
					Position:    [3]float64{0.9, 0.55, -0.65},
					Target:      [3]float64{0.15, 0.45, -0.1},
				},
				{
					Name:        string(PresetExtremeGs),
					Label:       "Extreme G's",
					Description: "The banked helix where riders pull the most force.",
					Position:    [3]float64{-0.45, 0.45, -0.95},
					Target:      [3]float64{0, 0.3, -0.2},
				},
			},
		},
		Orbit: OrbitConfig{
			MinDistance: 0.5,
			MaxDistance: 40,
			MinPitchDeg: -10,
			MaxPitchDeg: 85,
			DragSpeed:   0.01,
		},
		AR: ARConfig{
			GLBURI:  "models/waterslide.glb",
			USDZURI: "models/waterslide.usdz",
			Title:   "Water Slide",
		},
	}
}

// LoadConfig reads and validates a YAML config file. Fields missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("slideview: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("slideview: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates YAML config data on top of DefaultConfig().
// A presets list in the data replaces the default presets entirely.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigOverrides are values given outside the config file (i.e. on the command line) that take precedence over it.
// Empty fields leave the file's value alone.
type ConfigOverrides struct {
	ModelPath string
	GLBURI    string
	USDZURI   string
}

// Apply writes the overrides into the Config given and returns it. It's applied to every loaded Config, including hot reloads,
// so the overridden values survive the file being edited.
func (o ConfigOverrides) Apply(cfg *Config) *Config {
	if o.ModelPath != "" {
		cfg.Model.Path = o.ModelPath
	}
	if o.GLBURI != "" {
		cfg.AR.GLBURI = o.GLBURI
	}
	if o.USDZURI != "" {
		cfg.AR.USDZURI = o.USDZURI
	}
	return cfg
}

// Marshal returns the YAML form of the Config.
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks the Config for values the viewer can't work with.
func (cfg *Config) Validate() error {

	if cfg.Model.TargetSize <= 0 {
		return fmt.Errorf("%w: model.target_size must be positive, got %v", ErrInvalidConfig, cfg.Model.TargetSize)
	}

	if cfg.Transition.DurationMS < 0 {
		return fmt.Errorf("%w: transition.duration_ms can't be negative, got %v", ErrInvalidConfig, cfg.Transition.DurationMS)
	}

	if _, ok := EasingByName(cfg.Transition.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q (known: %v)", ErrInvalidConfig, cfg.Transition.Easing, EasingNames())
	}

	if cfg.Framing.Epsilon <= 0 {
		return fmt.Errorf("%w: framing.epsilon must be positive, got %v", ErrInvalidConfig, cfg.Framing.Epsilon)
	}

	seen := map[string]bool{}
	for i, p := range cfg.Framing.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: preset #%d has no name", ErrInvalidConfig, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true
	}

	if cfg.Orbit.MinDistance < 0 || (cfg.Orbit.MaxDistance > 0 && cfg.Orbit.MaxDistance < cfg.Orbit.MinDistance) {
		return fmt.Errorf("%w: orbit distance range [%v, %v] is invalid", ErrInvalidConfig, cfg.Orbit.MinDistance, cfg.Orbit.MaxDistance)
	}

	if cfg.Orbit.MaxPitchDeg < cfg.Orbit.MinPitchDeg {
		return fmt.Errorf("%w: orbit pitch range [%v, %v] is invalid", ErrInvalidConfig, cfg.Orbit.MinPitchDeg, cfg.Orbit.MaxPitchDeg)
	}

	return nil

}

func (spec PresetSpec) framing() PresetFraming {
	return PresetFraming{
		Name:        PresetName(spec.Name),
		Label:       spec.Label,
		Description: spec.Description,
		Position:    NewVectorFromArray(spec.Position),
		Target:      NewVectorFromArray(spec.Target),
	}
}

// FramingConfig returns the preset factor table described by the Config.
func (cfg *Config) FramingConfig() FramingConfig {
	fc := FramingConfig{
		Presets: make([]PresetFraming, 0, len(cfg.Framing.Presets)),
		Default: cfg.Framing.Default.framing(),
		Epsilon: cfg.Framing.Epsilon,
	}
	for _, p := range cfg.Framing.Presets {
		fc.Presets = append(fc.Presets, p.framing())
	}
	return fc
}

// TransitionDuration returns the configured transition duration.
func (cfg *Config) TransitionDuration() time.Duration {
	return time.Duration(cfg.Transition.DurationMS * float64(time.Millisecond))
}

// TransitionEasing returns the configured easing function. The default ease-out cubic, and any unknown name, return nil,
// which Ease() evaluates as the default curve.
func (cfg *Config) TransitionEasing() ease.TweenFunc {
	fn, _ := EasingByName(cfg.Transition.Easing)
	return fn
}

// OrbitControls returns the orbit limits described by the Config.
func (cfg *Config) OrbitControls() OrbitControls {
	return OrbitControls{
		MinDistance: cfg.Orbit.MinDistance,
		MaxDistance: cfg.Orbit.MaxDistance,
		MinPitch:    ToRadians(cfg.Orbit.MinPitchDeg),
		MaxPitch:    ToRadians(cfg.Orbit.MaxPitchDeg),
	}
}

// ARAsset returns the AR asset description from the Config.
func (cfg *Config) ARAsset() ARAsset {
	return ARAsset{
		GLBURI:      cfg.AR.GLBURI,
		USDZURI:     cfg.AR.USDZURI,
		Title:       cfg.AR.Title,
		FallbackURL: cfg.AR.FallbackURL,
	}
}
