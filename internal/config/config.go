// Package config provides configuration loading and management for todolist.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/metalagman/todolist/internal/todo"
)

// EnvPrefix prefixes environment overrides, e.g. TODOLIST_WEB_ADDR.
const EnvPrefix = "TODOLIST"

// Config is the root configuration.
type Config struct {
	DefaultFilter todo.Filter `json:"default_filter" mapstructure:"default_filter"`
	Web           Web         `json:"web"            mapstructure:"web"`
	TUI           TUI         `json:"tui"            mapstructure:"tui"`
	Render        Render      `json:"render"         mapstructure:"render"`
}

// Web configures the HTTP adapter.
type Web struct {
	Addr            string        `json:"addr"             mapstructure:"addr"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// TUI configures the terminal adapter.
type TUI struct {
	AltScreen bool `json:"alt_screen" mapstructure:"alt_screen"`
}

// Render configures Markdown rendering for terminal output.
type Render struct {
	Style string `json:"style" mapstructure:"style"`
	Width int    `json:"width" mapstructure:"width"`
}

// Render styles accepted by Render.Style.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultFilter: todo.FilterAll,
		Web: Web{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		TUI: TUI{
			AltScreen: true,
		},
		Render: Render{
			Style: StyleAuto,
			Width: 80,
		},
	}
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("default_filter", string(d.DefaultFilter))
	v.SetDefault("web.addr", d.Web.Addr)
	v.SetDefault("web.shutdown_timeout", d.Web.ShutdownTimeout.String())
	v.SetDefault("tui.alt_screen", d.TUI.AltScreen)
	v.SetDefault("render.style", d.Render.Style)
	v.SetDefault("render.width", d.Render.Width)
}

// Load reads configuration: defaults, then the file at path, then TODOLIST_* environment
// variables. A missing file is an error only when required is set.
func Load(v *viper.Viper, path string, required bool) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		settings, err := readFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !required:
		case err != nil:
			return Config{}, err
		default:
			if err := ValidateSettings(settings); err != nil {
				return Config{}, err
			}
			if err := v.MergeConfigMap(settings); err != nil {
				return Config{}, fmt.Errorf("merge config: %w", err)
			}
		}
	}

	var cfg Config
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that may come from the environment and bypass the schema.
func (c Config) Validate() error {
	if !c.DefaultFilter.Valid() {
		return fmt.Errorf("default_filter %q must be one of all, completed, in-progress", c.DefaultFilter)
	}
	if c.Web.ShutdownTimeout <= 0 {
		return fmt.Errorf("web.shutdown_timeout must be > 0")
	}
	switch c.Render.Style {
	case StyleAuto, StyleDark, StyleLight, StyleNoTTY:
	default:
		return fmt.Errorf("render.style %q must be one of auto, dark, light, notty", c.Render.Style)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("render.width must be >= 0")
	}
	return nil
}

// LoadDotEnv loads environment variables from a .env file if it exists.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func readFile(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	fv := viper.New()
	fv.SetConfigFile(path)
	if err := fv.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fv.AllSettings(), nil
}
