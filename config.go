package fling

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/fling.yaml
var defaultConfigYAML []byte

// Config holds the tuning of a Controller. Element size and rest position
// are read from the Element at construction; everything else lives here.
type Config struct {
	ContainerWidth  float64 `yaml:"container_width"`
	ContainerHeight float64 `yaml:"container_height"`

	// BaseRotationDegrees is the tilt reached when the card has travelled
	// half the container width.
	BaseRotationDegrees float64 `yaml:"base_rotation_degrees"`

	TouchSlop        float64 `yaml:"touch_slop"`
	MinFlingVelocity float64 `yaml:"min_fling_velocity"`
	MaxFlingVelocity float64 `yaml:"max_fling_velocity"`

	// YDirectionThreshold is the vertical travel a fling up or down needs
	// to commit. Horizontal flings need twice the touch slop.
	YDirectionThreshold float64 `yaml:"y_direction_threshold"`

	// FlipVerticalFling classifies fling direction with screen y flipped, so
	// a fast downward drag exits through the bottom. By default direction is
	// taken from raw screen coordinates, where a downward drag classifies as
	// up and exits through the top.
	FlipVerticalFling bool `yaml:"flip_vertical_fling"`

	MaxClickDuration        time.Duration `yaml:"max_click_duration"`
	SettleDuration          time.Duration `yaml:"settle_duration"`
	BorderExitDuration      time.Duration `yaml:"border_exit_duration"`
	DismissDuration         time.Duration `yaml:"dismiss_duration"`
	VerticalDismissDuration time.Duration `yaml:"vertical_dismiss_duration"`

	OvershootTension float64 `yaml:"overshoot_tension"`
	Axes             Axes    `yaml:"axes"`
}

// DefaultConfig returns the hardcoded defaults. They match defaults/fling.yaml.
func DefaultConfig() Config {
	return Config{
		ContainerWidth:          480,
		ContainerHeight:         720,
		BaseRotationDegrees:     15,
		TouchSlop:               8,
		MinFlingVelocity:        50,
		MaxFlingVelocity:        8000,
		MaxClickDuration:        500 * time.Millisecond,
		SettleDuration:          200 * time.Millisecond,
		BorderExitDuration:      100 * time.Millisecond,
		DismissDuration:         250 * time.Millisecond,
		VerticalDismissDuration: 100 * time.Millisecond,
		OvershootTension:        1.5,
		Axes:                    AxesAll,
	}
}

// Validate reports the first setting that cannot drive a controller.
func (c Config) Validate() error {
	switch {
	case c.ContainerWidth <= 0 || c.ContainerHeight <= 0:
		return fmt.Errorf("fling: container size %vx%v must be positive", c.ContainerWidth, c.ContainerHeight)
	case c.TouchSlop < 0:
		return fmt.Errorf("fling: touch slop %v must not be negative", c.TouchSlop)
	case c.MinFlingVelocity < 0:
		return fmt.Errorf("fling: min fling velocity %v must not be negative", c.MinFlingVelocity)
	case c.MaxFlingVelocity < c.MinFlingVelocity:
		return fmt.Errorf("fling: max fling velocity %v below min %v", c.MaxFlingVelocity, c.MinFlingVelocity)
	case c.MaxClickDuration <= 0:
		return errors.New("fling: max click duration must be positive")
	case c.SettleDuration < 0 || c.BorderExitDuration < 0 || c.DismissDuration < 0 || c.VerticalDismissDuration < 0:
		return errors.New("fling: animation durations must not be negative")
	}
	return nil
}

// LoadConfig loads controller tuning.
// Search order: customPath -> ~/.fling/config.yaml -> ./configs/fling.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadConfig(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := userConfigPath("config.yaml"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseConfig(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/fling.yaml"); err == nil {
		if cfg, err := ParseConfig(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fling", filename)
}

// UnmarshalYAML accepts "all" or "horizontal".
func (a *Axes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAxes(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAxes converts a name to an Axes value.
func ParseAxes(s string) (Axes, error) {
	switch s {
	case "", "all":
		return AxesAll, nil
	case "horizontal":
		return AxesHorizontal, nil
	}
	return AxesAll, fmt.Errorf("fling: unknown axes %q", s)
}

func (a Axes) String() string {
	if a == AxesHorizontal {
		return "horizontal"
	}
	return "all"
}
