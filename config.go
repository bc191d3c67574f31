package aurora

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration with TOML-friendly string parsing ("300ms",
// "0.8s", "1s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Secs returns the duration in seconds as float32, the unit tweens use.
func (d Duration) Secs() float32 {
	return float32(d.Seconds())
}

// Config is the full page configuration.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Background BackgroundConfig `toml:"background"`
	Scroll     ScrollConfig     `toml:"scroll"`
	Nav        NavConfig        `toml:"nav"`
	Reveal     RevealConfig     `toml:"reveal"`
	Debug      bool             `toml:"debug"`
	LogLevel   string           `toml:"log_level"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// BackgroundConfig tunes the shader background.
type BackgroundConfig struct {
	TimeScale    float64 `toml:"time_scale"`
	PointerScale float64 `toml:"pointer_scale"`
	// ForceFallback skips the shader entirely and draws the static gradient.
	ForceFallback bool `toml:"force_fallback"`
}

// ScrollConfig tunes scrolling and section activation.
type ScrollConfig struct {
	ActivationMargin float64  `toml:"activation_margin"`
	WheelSpeed       float64  `toml:"wheel_speed"`
	SmoothDuration   Duration `toml:"smooth_duration"`
}

// NavConfig tunes the navigation menu.
type NavConfig struct {
	HideThreshold float64  `toml:"hide_threshold"`
	SlideDuration Duration `toml:"slide_duration"`
	ItemStagger   Duration `toml:"item_stagger"`
}

// RevealConfig tunes reveal animations.
type RevealConfig struct {
	Margin    float64  `toml:"margin"`
	Duration  Duration `toml:"duration"`
	BaseDelay Duration `toml:"base_delay"`
	ItemDelay Duration `toml:"item_delay"`
}

// Stagger returns the child stagger described by the config.
func (c RevealConfig) Stagger() Stagger {
	return Stagger{Base: c.BaseDelay.Seconds(), Step: c.ItemDelay.Seconds()}
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Portfolio",
			Width:  1280,
			Height: 800,
		},
		Background: BackgroundConfig{
			TimeScale:    0.5,
			PointerScale: 0.3,
		},
		Scroll: ScrollConfig{
			ActivationMargin: DefaultActivationMargin,
			WheelSpeed:       60,
			SmoothDuration:   Duration{800 * time.Millisecond},
		},
		Nav: NavConfig{
			HideThreshold: DefaultHideThreshold,
			SlideDuration: Duration{300 * time.Millisecond},
			ItemStagger:   Duration{100 * time.Millisecond},
		},
		Reveal: RevealConfig{
			Margin:    DefaultRevealMargin,
			Duration:  Duration{800 * time.Millisecond},
			BaseDelay: Duration{200 * time.Millisecond},
			ItemDelay: Duration{100 * time.Millisecond},
		},
		LogLevel: "info",
	}
}

// LoadConfig reads configuration from path. A missing file yields the
// defaults with environment overrides applied, validated like a file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			if err := cfg.Validate(); err != nil {
				return Config{}, fmt.Errorf("load config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader decodes TOML from r over the defaults, applies
// environment overrides, and validates the result.
func LoadConfigFromReader(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the animation core cannot honor.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Background.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("background.time_scale %v must not be negative", c.Background.TimeScale))
	}
	if m := c.Scroll.ActivationMargin; math.IsNaN(m) || math.IsInf(m, 0) {
		errs = append(errs, fmt.Errorf("scroll.activation_margin %v must be finite", m))
	}
	if c.Scroll.WheelSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll.wheel_speed %v must be positive", c.Scroll.WheelSpeed))
	}
	if c.Nav.HideThreshold < 0 {
		errs = append(errs, fmt.Errorf("nav.hide_threshold %v must not be negative", c.Nav.HideThreshold))
	}
	if c.Nav.ItemStagger.Duration <= 0 {
		errs = append(errs, errors.New("nav.item_stagger must be positive"))
	}
	if c.Reveal.ItemDelay.Duration <= 0 {
		errs = append(errs, errors.New("reveal.item_delay must be positive"))
	}
	return errors.Join(errs...)
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AURORA_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v := os.Getenv("AURORA_ACTIVATION_MARGIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scroll.ActivationMargin = f
		}
	}
	if v := os.Getenv("AURORA_FORCE_FALLBACK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Background.ForceFallback = b
		}
	}
	if v := os.Getenv("AURORA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
