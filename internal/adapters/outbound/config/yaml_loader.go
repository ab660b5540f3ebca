package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/contractgate/contractgate/internal/domain"
)

const fileName = ".contractgate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .contractgate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .contractgate.yaml from projectPath. Returns the defaults if
// the file does not exist; unset fields fall back to their defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.GateConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultGateConfig(), nil
		}
		return domain.GateConfig{}, err
	}

	cfg := domain.DefaultGateConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.GateConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	return fillDefaults(cfg), nil
}

// fillDefaults overlays the defaults under any field left empty by the user.
func fillDefaults(cfg domain.GateConfig) domain.GateConfig {
	defaults := domain.DefaultGateConfig()
	if cfg.SchemaDir == "" {
		cfg.SchemaDir = defaults.SchemaDir
	}
	if cfg.SchemaExt == "" {
		cfg.SchemaExt = defaults.SchemaExt
	}
	if cfg.Manifest == "" {
		cfg.Manifest = defaults.Manifest
	}
	if cfg.Base == "" {
		cfg.Base = defaults.Base
	}
	return cfg
}
