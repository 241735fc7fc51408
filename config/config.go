package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"dodgetrainer/parameter"
)

// Duration wraps time.Duration for YAML fields written as "200ms", "1.5s"
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"200ms\"")
	}
	p, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(p)
	return nil
}

// Config holds all tunable settings. Zero values are invalid; start from
// Default() and overlay a file with Load.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Input  InputConfig  `yaml:"input"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

type GameConfig struct {
	// Seed fixes the random sequence; 0 derives one from the clock
	Seed int64 `yaml:"seed"`

	// ReportPath receives a session summary on exit; empty disables it
	ReportPath string `yaml:"report_path"`
}

type PlayerConfig struct {
	// Speed in cells/sec
	Speed float64 `yaml:"speed"`
}

type EnemyConfig struct {
	// Enabled spawns the training opponent
	Enabled bool `yaml:"enabled"`

	// Speed in cells/sec
	Speed float64 `yaml:"speed"`

	// Spread is random aim perturbation per bullet
	Spread float64 `yaml:"spread"`
}

type InputConfig struct {
	// HoldWindow is how long a movement key stays active after its last
	// press or autorepeat event
	HoldWindow Duration `yaml:"hold_window"`

	// Movement bindings, one rune each
	MoveUp    string `yaml:"move_up"`
	MoveDown  string `yaml:"move_down"`
	MoveLeft  string `yaml:"move_left"`
	MoveRight string `yaml:"move_right"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	// Path of the rolling log file
	Path string `yaml:"path"`

	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			Seed:       0,
			ReportPath: "",
		},
		Player: PlayerConfig{
			Speed: parameter.PlayerSpeedFloat,
		},
		Enemy: EnemyConfig{
			Enabled: true,
			Speed:   parameter.EnemySpeedFloat,
			Spread:  parameter.EnemySpreadFloat,
		},
		Input: InputConfig{
			HoldWindow: Duration(parameter.KeyHoldWindow),
			MoveUp:     "w",
			MoveDown:   "s",
			MoveLeft:   "a",
			MoveRight:  "d",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Path:  "dodge-trainer.log",
			Level: "info",
		},
	}
}

// Load overlays the YAML file at path onto c. Missing file is an error;
// callers that treat the file as optional check os.IsNotExist.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				if strings.HasPrefix(msg, "line") {
					return fmt.Errorf("invalid config: %s", msg)
				}
			}
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks ranges and binding sanity, naming the offending field
func (c *Config) Validate() error {
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed)
	}
	if c.Enemy.Speed <= 0 {
		return fmt.Errorf("enemy.speed must be positive, got %v", c.Enemy.Speed)
	}
	if c.Enemy.Spread < 0 {
		return fmt.Errorf("enemy.spread must not be negative, got %v", c.Enemy.Spread)
	}
	if time.Duration(c.Input.HoldWindow) < 20*time.Millisecond {
		return fmt.Errorf("input.hold_window must be at least 20ms, got %v",
			time.Duration(c.Input.HoldWindow))
	}

	bindings := map[string]string{
		"input.move_up":    c.Input.MoveUp,
		"input.move_down":  c.Input.MoveDown,
		"input.move_left":  c.Input.MoveLeft,
		"input.move_right": c.Input.MoveRight,
	}
	seen := make(map[rune]string, len(bindings))
	for field, b := range bindings {
		r, err := bindingRune(b)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		if prev, dup := seen[r]; dup {
			return fmt.Errorf("%s duplicates %s (%q)", field, prev, string(r))
		}
		seen[r] = field
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// MoveRunes returns the four movement bindings as lowercase runes in
// up, down, left, right order. Call Validate first.
func (c *Config) MoveRunes() (up, down, left, right rune) {
	up, _ = bindingRune(c.Input.MoveUp)
	down, _ = bindingRune(c.Input.MoveDown)
	left, _ = bindingRune(c.Input.MoveLeft)
	right, _ = bindingRune(c.Input.MoveRight)
	return up, down, left, right
}

func bindingRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("binding must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(strings.ToLower(s))
	return r, nil
}
