package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks configuration that cannot drive the animation
var ErrInvalid = errors.New("invalid config")

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) scene file.
// Keys present in the file override base; the result is validated.
//
// Example YAML:
//
//	nodeCount: 7
//	stepGap: 0.1
//	foreColor: "#FF5722"
func LoadFile(path string, base SceneConfig) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML(data, base)
	case ".toml":
		return DecodeTOML(data, base)
	default:
		return SceneConfig{}, fmt.Errorf("%w: unsupported config extension %q", ErrInvalid, ext)
	}
}

// DecodeYAML overlays YAML data onto base. Unknown keys are rejected.
func DecodeYAML(data []byte, base SceneConfig) (SceneConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SceneConfig{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// DecodeTOML overlays TOML data onto base. Unknown keys are rejected.
func DecodeTOML(data []byte, base SceneConfig) (SceneConfig, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return SceneConfig{}, fmt.Errorf("%w: unknown keys %v", ErrInvalid, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}
