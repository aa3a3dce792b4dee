package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultIndent       = 2
	DefaultFlavour      = "mocha"
	DefaultHistoryLimit = 100
)

var (
	ErrUnknownFormat  = errors.New("unknown preview format")
	ErrUnknownFlavour = errors.New("unknown catppuccin flavour")
	ErrInvalidIndent  = errors.New("indent must be between 0 and 8")
)

// Config is read from <UserConfigDir>/schemer/config.toml.
type Config struct {
	Format       string `toml:"format"`
	Indent       int    `toml:"indent"`
	Flavour      string `toml:"flavour"`
	HistoryLimit int    `toml:"history_limit"`

	// not from the file
	Debug bool `toml:"-"`
}

func Default() Config {
	return Config{
		Format:       FormatJSON,
		Indent:       DefaultIndent,
		Flavour:      DefaultFlavour,
		HistoryLimit: DefaultHistoryLimit,
		Debug:        len(os.Getenv("DEBUG")) > 0,
	}
}

// DefaultPath returns the config file path, it may not exist.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppID, "config.toml"), nil
}

// Load decodes path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	switch c.Flavour {
	case "latte", "frappe", "macchiato", "mocha":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFlavour, c.Flavour)
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, c.Indent)
	}
	return nil
}
