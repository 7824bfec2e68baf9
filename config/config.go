// Package config loads page and effect settings from defaults, an optional
// YAML file, SHOWCASE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/showcase/audio"
	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/logging"
	"github.com/lixenwraith/showcase/reveal"
)

// EnvPrefix namespaces environment overrides, e.g. SHOWCASE_REVEAL_THRESHOLD
const EnvPrefix = "SHOWCASE"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved application configuration
type Config struct {
	Page     string         `mapstructure:"page"`
	Watch    bool           `mapstructure:"watch"`
	Throttle ThrottleConfig `mapstructure:"throttle"`
	Debounce DebounceConfig `mapstructure:"debounce"`
	Header   HeaderConfig   `mapstructure:"header"`
	Parallax ParallaxConfig `mapstructure:"parallax"`
	Reveal   RevealConfig   `mapstructure:"reveal"`
	Tilt     TiltConfig     `mapstructure:"tilt"`
	Ripple   RippleConfig   `mapstructure:"ripple"`
	Scroll   ScrollConfig   `mapstructure:"scroll"`
	Hero     HeroConfig     `mapstructure:"hero"`
	Motion   MotionConfig   `mapstructure:"motion"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Log      LogConfig      `mapstructure:"log"`
}

type ThrottleConfig struct {
	Scroll time.Duration `mapstructure:"scroll"`
}

type DebounceConfig struct {
	Resize time.Duration `mapstructure:"resize"`
	Reload time.Duration `mapstructure:"reload"`
}

type HeaderConfig struct {
	Threshold     int     `mapstructure:"threshold"`
	AlphaTop      float64 `mapstructure:"alpha_top"`
	AlphaScrolled float64 `mapstructure:"alpha_scrolled"`
}

type ParallaxConfig struct {
	Speed float64 `mapstructure:"speed"`
}

type RevealConfig struct {
	Threshold  float64       `mapstructure:"threshold"`
	Margin     reveal.Insets `mapstructure:"margin"`
	Transition time.Duration `mapstructure:"transition"`
}

type TiltConfig struct {
	Divisor float64 `mapstructure:"divisor"`
}

type RippleConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

type ScrollConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

type HeroConfig struct {
	Delay    time.Duration `mapstructure:"delay"`
	Duration time.Duration `mapstructure:"duration"`
}

type MotionConfig struct {
	Reduced bool `mapstructure:"reduced"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
}

// SetDefaults registers every key so environment overrides resolve
func SetDefaults(v *viper.Viper) {
	v.SetDefault("page", "")
	v.SetDefault("watch", false)

	v.SetDefault("throttle.scroll", "16ms")
	v.SetDefault("debounce.resize", "150ms")
	v.SetDefault("debounce.reload", "250ms")

	v.SetDefault("header.threshold", 4)
	v.SetDefault("header.alpha_top", 0.95)
	v.SetDefault("header.alpha_scrolled", 0.98)
	v.SetDefault("parallax.speed", 0.5)

	v.SetDefault("reveal.threshold", 0.1)
	v.SetDefault("reveal.margin", "0 0 -2 0")
	v.SetDefault("reveal.transition", "600ms")

	v.SetDefault("tilt.divisor", 10)
	v.SetDefault("ripple.duration", "600ms")
	v.SetDefault("scroll.duration", "400ms")
	v.SetDefault("hero.delay", "100ms")
	v.SetDefault("hero.duration", "1s")

	v.SetDefault("motion.reduced", false)
	v.SetDefault("audio.enabled", true)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment binding
// A non-empty file is read as YAML
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		StringToInsetsHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// StringToInsetsHookFunc decodes CSS margin strings such as "0 0 -2 0"
func StringToInsetsHookFunc() mapstructure.DecodeHookFuncType {
	insetsType := reflect.TypeOf(reveal.Insets{})
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != insetsType {
			return data, nil
		}
		return reveal.ParseInsets(data.(string))
	}
}

// Validate rejects non-positive intervals and out-of-range fractions
func (c *Config) Validate() error {
	var errs []error
	positive := map[string]time.Duration{
		"throttle.scroll":   c.Throttle.Scroll,
		"debounce.resize":   c.Debounce.Resize,
		"debounce.reload":   c.Debounce.Reload,
		"reveal.transition": c.Reveal.Transition,
		"ripple.duration":   c.Ripple.Duration,
		"scroll.duration":   c.Scroll.Duration,
		"hero.duration":     c.Hero.Duration,
	}
	for key, d := range positive {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", key, d))
		}
	}
	if c.Hero.Delay < 0 {
		errs = append(errs, fmt.Errorf("hero.delay must not be negative, got %v", c.Hero.Delay))
	}

	fractions := map[string]float64{
		"header.alpha_top":      c.Header.AlphaTop,
		"header.alpha_scrolled": c.Header.AlphaScrolled,
		"parallax.speed":        c.Parallax.Speed,
	}
	for key, f := range fractions {
		if f < 0 || f > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", key, f))
		}
	}
	if err := c.RevealOptions().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("reveal: %w", err))
	}
	if c.Header.Threshold < 0 {
		errs = append(errs, fmt.Errorf("header.threshold must not be negative, got %d", c.Header.Threshold))
	}
	if c.Tilt.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("tilt.divisor must be positive, got %v", c.Tilt.Divisor))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// RevealOptions returns the trigger options
func (c *Config) RevealOptions() reveal.Options {
	return reveal.Options{Threshold: c.Reveal.Threshold, Margin: c.Reveal.Margin}
}

// EffectParams returns the effect tuning
func (c *Config) EffectParams() effect.Params {
	return effect.Params{
		HeaderThreshold:     c.Header.Threshold,
		HeaderAlphaTop:      c.Header.AlphaTop,
		HeaderAlphaScrolled: c.Header.AlphaScrolled,
		ParallaxSpeed:       c.Parallax.Speed,
		TiltDivisor:         c.Tilt.Divisor,
		RippleDuration:      c.Ripple.Duration,
	}
}

// LogOptions returns the logger settings
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Enabled = c.Log.Enabled
	opts.Dir = c.Log.Dir
	opts.Level = c.Log.Level
	return opts
}

// SoundConfig returns the audio settings
func (c *Config) SoundConfig() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = c.Audio.Enabled
	return cfg
}
