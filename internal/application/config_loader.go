package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-compass/internal/ports"
)

// LoadConfigFromFile reads an EngineConfig from a YAML file. Fields missing
// from the file keep their DefaultEngineConfig values. Every failure is a
// *ports.ConfigError keyed by the path; a missing file also matches
// ports.ErrConfigNotFound.
func LoadConfigFromFile(path string) (EngineConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return EngineConfig{}, ports.NewConfigError(path, fmt.Errorf("%w: %w", ports.ErrConfigNotFound, err))
	}
	if err != nil {
		return EngineConfig{}, ports.NewConfigError(path, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return EngineConfig{}, ports.NewConfigError(path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader reads an EngineConfig from r. Failures are
// *ports.ConfigError values keyed "reader".
func LoadConfigFromReader(r io.Reader) (EngineConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return EngineConfig{}, ports.NewConfigError("reader", fmt.Errorf("failed to read config: %w", err))
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return EngineConfig{}, ports.NewConfigError("reader", err)
	}
	return cfg, nil
}

// parseConfig decodes YAML in strict mode so that misspelled keys are
// reported rather than silently ignored, then validates the result.
func parseConfig(data []byte) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("YAML decode failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
