package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/graphver/internal/byteview"
	"github.com/vvka-141/graphver/internal/checksum"
	"github.com/vvka-141/graphver/internal/config"
	"github.com/vvka-141/graphver/pkg/graphver"
)

// resolveConfig merges configuration from all sources and validates it.
// Priority (highest to lowest): explicit flags > GRAPHVER_* environment
// (including .env) > config file > built-in defaults.
func resolveConfig(cmd *cobra.Command, flags *rootFlags, logger graphver.Logger) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := loadConfigFile(flags.configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("min-length") {
		cfg.MinStringLength = flags.minLength
	}
	if f.Changed("anchor") {
		cfg.Anchor = flags.anchor
	}
	if f.Changed("decompress") {
		cfg.Decompress = flags.decompress
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Verbose("Config: min_string_length=%d anchor=%s decompress=%s", cfg.MinStringLength, cfg.Anchor, cfg.Decompress)
	return cfg, nil
}

// loadConfigFile loads the explicit --config file, which must exist, or
// graphver.yaml from the working directory, which may be missing.
func loadConfigFile(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s does not exist", graphver.ErrInvalidConfig, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDir(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			d := config.Default()
			return &d, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", graphver.ConfigFileName, err)
	}
	return cfg, nil
}

// openView opens the graph file as configured. The caller must Close it.
func openView(path string, cfg *config.Config, logger graphver.Logger) (*byteview.View, error) {
	view, err := byteview.OpenDecoded(path, byteview.DecodeOptions{
		Mode:     cfg.Decompress,
		MaxBytes: cfg.MaxDecodedBytes,
	})
	if err != nil {
		return nil, err
	}

	if view.Mapped() {
		logger.Verbose("Mapped %s (%d bytes)", path, view.Len())
	} else {
		logger.Verbose("Loaded %s into memory (%d bytes)", path, view.Len())
	}
	return view, nil
}

func fingerprint(view *byteview.View) string {
	return checksum.New().Fingerprint(view.Bytes())
}
