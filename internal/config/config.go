// Package config loads .hex/config.yml and resolves the base package and
// package layout for a generator run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deicod/springhex/internal/detect"
	"github.com/deicod/springhex/internal/layout"
)

// Dir and File locate the project configuration relative to the output dir.
const (
	Dir  = ".hex"
	File = "config.yml"
)

// ErrNoBasePackage is returned when neither a flag, the config file nor
// detection yields a base package.
var ErrNoBasePackage = errors.New("could not detect base package")

// HexConfig is the parsed content of .hex/config.yml. Present is false when
// the file is missing or unreadable.
type HexConfig struct {
	BasePackage string
	Paths       map[string]string
	Crud        map[string]string
	Present     bool
	// Warnings collects type mismatches that were skipped while loading.
	Warnings []string
}

// Path returns the config file location below dir.
func Path(dir string) string {
	return filepath.Join(dir, Dir, File)
}

// Load reads .hex/config.yml below dir. Missing files yield an empty config;
// malformed files yield an empty config with a warning so generation can
// still fall back to detection.
func Load(dir string) HexConfig {
	raw, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return HexConfig{}
		}
		return HexConfig{Warnings: []string{fmt.Sprintf("could not read %s: %v", filepath.Join(Dir, File), err)}}
	}
	var root map[string]any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return HexConfig{Warnings: []string{fmt.Sprintf("could not parse %s: %v", filepath.Join(Dir, File), err)}}
	}
	cfg := HexConfig{Present: true}
	if root == nil {
		return cfg
	}
	switch v := root["base-package"].(type) {
	case nil:
	case string:
		cfg.BasePackage = strings.TrimSpace(v)
	default:
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("'base-package' in %s must be a string, got: %T", filepath.Join(Dir, File), v))
	}
	cfg.Paths = cfg.stringMap(root["paths"], "paths")
	cfg.Crud = cfg.stringMap(root["crud"], "crud")
	return cfg
}

func (c *HexConfig) stringMap(value any, section string) map[string]string {
	out := map[string]string{}
	if value == nil {
		return out
	}
	raw, ok := value.(map[string]any)
	if !ok {
		c.Warnings = append(c.Warnings, fmt.Sprintf("'%s' in %s must be a map, got: %T", section, filepath.Join(Dir, File), value))
		return out
	}
	for key, v := range raw {
		switch s := v.(type) {
		case nil:
		case string:
			out[key] = s
		default:
			c.Warnings = append(c.Warnings, fmt.Sprintf("'%s.%s' must be a string, got: %T", section, key, v))
		}
	}
	return out
}

// Source records where the base package came from.
type Source int

const (
	SourceFlag Source = iota
	SourceConfig
	SourceDetected
)

func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "flag"
	case SourceConfig:
		return "config"
	case SourceDetected:
		return "detected"
	default:
		return "unknown"
	}
}

// Resolved is the configuration for one generator invocation.
type Resolved struct {
	BasePackage string
	Source      Source
	Hex         HexConfig
	Paths       *layout.PathResolver
}

// CrudPaths returns the resolver for make:crud layers.
func (r Resolved) CrudPaths() *layout.PathResolver {
	return layout.NewCrudResolver(r.BasePackage, r.Hex.Crud)
}

// Resolve picks the base package from explicit, then the config file under
// dir, then detection, and builds the package layout from the config paths.
func Resolve(dir, explicit string) (Resolved, error) {
	hex := Load(dir)
	pkg, source, ok := basePackage(dir, explicit, hex)
	if !ok {
		return Resolved{Hex: hex}, ErrNoBasePackage
	}
	return Resolved{
		BasePackage: pkg,
		Source:      source,
		Hex:         hex,
		Paths:       layout.NewPathResolver(pkg, hex.Paths),
	}, nil
}

func basePackage(dir, explicit string, hex HexConfig) (string, Source, bool) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, SourceFlag, true
	}
	if hex.BasePackage != "" {
		return hex.BasePackage, SourceConfig, true
	}
	if pkg, ok := detect.BasePackage(dir); ok {
		return pkg, SourceDetected, true
	}
	return "", SourceFlag, false
}
