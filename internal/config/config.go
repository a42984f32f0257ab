// Package config loads ligonsite settings from defaults, an optional TOML
// file and LIGONSITE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides (LIGONSITE_SCROLL_SMOOTH=false).
	EnvPrefix = "LIGONSITE"
	// PathEnv names a config file explicitly.
	PathEnv = "LIGONSITE_CONFIG"
)

// Config holds application configuration.
type Config struct {
	Nav     NavConfig
	Scroll  ScrollConfig
	Content ContentConfig
	Log     LogConfig
	Trace   TraceConfig
}

// NavConfig holds section navigation settings.
type NavConfig struct {
	// Aliases maps extra names onto declared sections ("docs" -> "features").
	Aliases map[string]string
	// Initial is navigated to once the page is first laid out.
	Initial string
}

// ScrollConfig tunes the smooth-scroll animation.
type ScrollConfig struct {
	Smooth        bool
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	// Easing is the fraction of the remaining distance covered per frame.
	Easing float64
}

// ContentConfig points at an optional override for the page copy.
type ContentConfig struct {
	Path string
}

// LogConfig selects the log sink. An empty File discards logs, since the
// terminal belongs to the UI.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// TraceConfig enables OTLP span export when Endpoint is set.
type TraceConfig struct {
	Endpoint    string
	Insecure    bool
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from path (or LIGONSITE_CONFIG, or
// ~/.config/ligonsite/config.toml) and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "ligonsite"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// OTEL_EXPORTER_OTLP_ENDPOINT is honoured the way the OTel SDKs do.
	_ = v.BindEnv("trace.endpoint", EnvPrefix+"_TRACE_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("trace.service_name", EnvPrefix+"_TRACE_SERVICE_NAME", "OTEL_SERVICE_NAME")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Nav: NavConfig{
			Aliases: map[string]string{"docs": "features"},
		},
		Scroll: ScrollConfig{
			Smooth:        true,
			FrameInterval: 16 * time.Millisecond,
			Easing:        0.35,
		},
		Log:   LogConfig{Level: "info", Format: "text"},
		Trace: TraceConfig{ServiceName: "ligonsite"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("nav.aliases", d.Nav.Aliases)
	v.SetDefault("nav.initial", d.Nav.Initial)
	v.SetDefault("scroll.smooth", d.Scroll.Smooth)
	v.SetDefault("scroll.frame_interval", d.Scroll.FrameInterval)
	v.SetDefault("scroll.easing", d.Scroll.Easing)
	v.SetDefault("content.path", d.Content.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("trace.endpoint", d.Trace.Endpoint)
	v.SetDefault("trace.insecure", d.Trace.Insecure)
	v.SetDefault("trace.service_name", d.Trace.ServiceName)
}

// Validate checks ranges viper cannot express.
func (c Config) Validate() error {
	if c.Scroll.Easing <= 0 || c.Scroll.Easing > 1 {
		return fmt.Errorf("scroll.easing must be in (0, 1], got %v", c.Scroll.Easing)
	}
	if c.Scroll.FrameInterval <= 0 {
		return fmt.Errorf("scroll.frame_interval must be positive, got %v", c.Scroll.FrameInterval)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
