// Package config loads hrdemo settings from defaults, an optional YAML file and
// HRDEMO_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before mapping them to keys:
// HRDEMO_LOG_LEVEL -> log.level.
const EnvPrefix = "HRDEMO_"

// Demo names accepted by DemoConfig.Name.
const (
	DemoFactory   = "factory"
	DemoObserver  = "observer"
	DemoSingleton = "singleton"
	DemoAll       = "all"
)

var (
	// ErrUnknownDemo is returned by Validate for an unsupported demo name.
	ErrUnknownDemo = errors.New("config: unknown demo")

	// ErrUnknownLogFormat is returned by Validate for a log format other than text or json.
	ErrUnknownLogFormat = errors.New("config: unknown log format")
)

// Config is the full hrdemo configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Demo   DemoConfig   `koanf:"demo"`
	Notice NoticeConfig `koanf:"notice"`
	HR     HRConfig     `koanf:"hr"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text, json
}

// DemoConfig selects which demo runs.
type DemoConfig struct {
	Name   string `koanf:"name"`   // factory, observer, singleton, all
	Roster string `koanf:"roster"` // optional YAML roster for the factory demo
}

// NoticeConfig drives the observer demo. From the environment, subscribers are
// a comma or space separated list: HRDEMO_NOTICE_SUBSCRIBERS="Carol, Dan".
type NoticeConfig struct {
	Message     string   `koanf:"message"`
	Subscribers []string `koanf:"subscribers"`
}

// HRConfig drives the singleton demo.
type HRConfig struct {
	Notice string `koanf:"notice"`
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment are used. Load does not validate: callers apply their
// own overrides first and then call Validate.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"log.level":          "warn",
		"log.format":         "text",
		"demo.name":          DemoAll,
		"demo.roster":        "",
		"notice.message":     "Meeting at 3 PM!",
		"notice.subscribers": []string{"Alice", "Bob"},
		"hr.notice":          "Office holiday tomorrow!",
	}
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("config: default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// envValue maps HRDEMO_NOTICE_MESSAGE to notice.message. List keys are split
// on commas and whitespace.
func envValue(name, value string) (string, any) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_", ".")
	if key != "notice.subscribers" {
		return key, value
	}
	return key, strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Demo.Name {
	case DemoFactory, DemoObserver, DemoSingleton, DemoAll:
	default:
		return fmt.Errorf("%w %q", ErrUnknownDemo, c.Demo.Name)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w %q", ErrUnknownLogFormat, c.Log.Format)
	}
	return nil
}
