// Package config loads quizdeck settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "QUIZDECK_CONFIG"

// UI modes.
const (
	UIAuto  = "auto"
	UITUI   = "tui"
	UIPlain = "plain"
)

// Config holds user settings. Zero values are replaced by Default().
type Config struct {
	UI             string `yaml:"ui"`
	ShuffleOptions bool   `yaml:"shuffle_options"`
	StrictReason   bool   `yaml:"strict_reason"`
	Seed           uint64 `yaml:"seed"`
	LogFile        string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		UI:             UIAuto,
		ShuffleOptions: true,
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.UI {
	case UIAuto, UITUI, UIPlain:
		return nil
	default:
		return fmt.Errorf("config: invalid ui mode %q (expected auto|tui|plain)", c.UI)
	}
}

// Path resolves the config file location: the explicit path if given,
// then $QUIZDECK_CONFIG, then the XDG default. explicit reports whether
// the file is required to exist.
func Path(flagPath string) (path string, explicit bool, err error) {
	if flagPath != "" {
		return flagPath, true, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, true, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizdeck", "config.yaml"), false, nil
}

// Load reads the config at the resolved path. A missing default file
// yields Default(); a missing explicit file is an error.
func Load(flagPath string) (Config, error) {
	path, explicit, err := Path(flagPath)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a single YAML document over Default(). Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Config{}, errors.New("parse yaml: multiple documents are not supported")
	}

	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
