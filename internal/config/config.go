package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	nestwalk "github.com/reoring/nestwalk"
)

// Config holds CLI defaults read from nestwalk.toml.
type Config struct {
	Driver     string `toml:"driver"`
	MaxDepth   int    `toml:"max_depth"`
	MaxBytes   int64  `toml:"max_bytes"`
	Duplicates string `toml:"duplicates"`
	Format     string `toml:"format"`
}

const (
	DriverJSON   = "json"
	DriverGoJSON = "gojson"

	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path; an empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML data; name is only used in error messages.
func Parse(data []byte, name string) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", name, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", name, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Driver == "" {
		c.Driver = DriverJSON
	}
	if c.Duplicates == "" {
		c.Duplicates = "ignore"
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

// Validate checks enumerated fields and limits.
func (c Config) Validate() error {
	var errs []error
	switch c.Driver {
	case DriverJSON, DriverGoJSON:
	default:
		errs = append(errs, fmt.Errorf("driver must be %q or %q, got %q", DriverJSON, DriverGoJSON, c.Driver))
	}
	if _, err := ParseSeverity(c.Duplicates); err != nil {
		errs = append(errs, err)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, errors.New("max_depth must be >= 0"))
	}
	if c.MaxBytes < 0 {
		errs = append(errs, errors.New("max_bytes must be >= 0"))
	}
	return errors.Join(errs...)
}

// ParseSeverity maps "ignore", "warn" and "error" to a nestwalk.Severity.
func ParseSeverity(s string) (nestwalk.Severity, error) {
	switch s {
	case "ignore", "":
		return nestwalk.Ignore, nil
	case "warn":
		return nestwalk.Warn, nil
	case "error":
		return nestwalk.Error, nil
	}
	return nestwalk.Ignore, fmt.Errorf("duplicates must be ignore, warn or error, got %q", s)
}

// WalkOpt projects the enforcement settings. c must be valid.
func (c Config) WalkOpt() nestwalk.WalkOpt {
	sev, _ := ParseSeverity(c.Duplicates)
	return nestwalk.WalkOpt{MaxDepth: c.MaxDepth, MaxBytes: c.MaxBytes, Duplicates: sev}
}
