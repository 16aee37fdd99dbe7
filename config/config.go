// Package config loads per-material physical parameter overrides from
// YAML: an embedded default document unmarshaled at package init,
// optionally overridden by a user-supplied file, so density/viscosity/
// flammability numbers can be tuned without a recompile.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vxsim/material"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MaterialParams mirrors one material's tunable physical parameters.
type MaterialParams struct {
	Density      float64 `yaml:"density"`
	Viscosity    float64 `yaml:"viscosity"`
	Flammability float64 `yaml:"flammability"`
}

// Config is the top-level document shape: a map keyed by material name.
type Config struct {
	Materials map[string]MaterialParams `yaml:"materials"`
}

// Defaults holds the parsed embedded defaults.yaml, computed once at
// package init.
var Defaults Config

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &Defaults); err != nil {
		panic(fmt.Sprintf("config: embedded defaults.yaml is invalid: %v", err))
	}
}

// Load reads a YAML file and merges it over the embedded defaults. A
// missing or malformed override file is a load error; the caller decides
// whether to fall back to Defaults and log that decision. Load itself
// never panics on a bad override file.
func Load(path string) (Config, error) {
	cfg := Defaults
	cfg.Materials = make(map[string]MaterialParams, len(Defaults.Materials))
	for k, v := range Defaults.Materials {
		cfg.Materials[k] = v
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var override Config
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	for k, v := range override.Materials {
		cfg.Materials[k] = v
	}
	return cfg, nil
}

// ApplyToTable writes cfg's per-material parameters into material.Table,
// matching each YAML key to a material.Table entry by name. Unknown names
// are ignored (forward-compatible with config files written against a
// newer material list).
func (cfg Config) ApplyToTable() {
	for i := range material.Table {
		name := material.Table[i].Name
		if name == "" {
			continue
		}
		if p, ok := cfg.Materials[name]; ok {
			material.Table[i].Density = p.Density
			material.Table[i].Viscosity = p.Viscosity
			material.Table[i].Flammability = p.Flammability
		}
	}
}
