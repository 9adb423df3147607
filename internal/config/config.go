package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/graphver/pkg/graphver"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the tunables of a scan. Keys absent from the YAML file keep
// their defaults.
type Config struct {
	MinStringLength int    `yaml:"min_string_length"`
	Anchor          string `yaml:"anchor"`
	Decompress      string `yaml:"decompress"`
	MaxDecodedBytes int64  `yaml:"max_decoded_bytes"`
}

// Environment variables that override the config file.
const (
	EnvMinStringLength = graphver.EnvPrefix + "MIN_STRING_LENGTH"
	EnvAnchor          = graphver.EnvPrefix + "ANCHOR"
	EnvDecompress      = graphver.EnvPrefix + "DECOMPRESS"
	EnvMaxDecodedBytes = graphver.EnvPrefix + "MAX_DECODED_BYTES"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinStringLength: graphver.DefaultMinStringLength,
		Anchor:          graphver.DefaultAnchor,
		Decompress:      graphver.DecompressAuto,
		MaxDecodedBytes: graphver.DefaultMaxDecodedBytes,
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", graphver.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// LoadDir reads graphver.yaml from dir.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, graphver.ConfigFileName))
}

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv; empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMinStringLength); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", graphver.ErrInvalidConfig, EnvMinStringLength, v)
		}
		c.MinStringLength = n
	}
	if v, ok := lookup(EnvAnchor); ok && v != "" {
		c.Anchor = v
	}
	if v, ok := lookup(EnvDecompress); ok && v != "" {
		c.Decompress = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvMaxDecodedBytes); ok && v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", graphver.ErrInvalidConfig, EnvMaxDecodedBytes, v)
		}
		c.MaxDecodedBytes = n
	}
	return nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.MinStringLength < 0 {
		errs = append(errs, fmt.Errorf("min_string_length must be >= 0, got %d: %w", c.MinStringLength, graphver.ErrInvalidConfig))
	}
	if c.Anchor == "" {
		errs = append(errs, fmt.Errorf("anchor must not be empty: %w", graphver.ErrInvalidConfig))
	} else if len(c.Anchor) <= c.MinStringLength {
		errs = append(errs, fmt.Errorf("anchor %q is not longer than min_string_length %d and can never match: %w",
			c.Anchor, c.MinStringLength, graphver.ErrInvalidConfig))
	}
	switch c.Decompress {
	case graphver.DecompressAuto, graphver.DecompressNone, graphver.DecompressGzip, graphver.DecompressZstd:
	default:
		errs = append(errs, fmt.Errorf("decompress must be one of auto, none, gzip, zstd, got %q: %w", c.Decompress, graphver.ErrInvalidConfig))
	}
	if c.MaxDecodedBytes <= 0 {
		errs = append(errs, fmt.Errorf("max_decoded_bytes must be positive, got %d: %w", c.MaxDecodedBytes, graphver.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
