package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig is one entry in a scenario batch file: either a
// generated grid (Width/Height/Density/Seed) or a GPPC map/scenario pair
// (GPPCMap/GPPCScen), run against the named Solver.
type ScenarioConfig struct {
	Name     string  `yaml:"name"`
	Solver   string  `yaml:"solver"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Density  float64 `yaml:"density"`
	Seed     uint64  `yaml:"seed"`
	GPPCMap  string  `yaml:"gppc_map"`
	GPPCScen string  `yaml:"gppc_scen"`
}

// BatchConfig is the top-level shape of a scenario batch YAML file.
type BatchConfig struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// LoadBatchConfig reads and parses a scenario batch file from path.
func LoadBatchConfig(path string) (BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("pathmaze-bench: reading config: %w", err)
	}
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BatchConfig{}, fmt.Errorf("pathmaze-bench: parsing config: %w", err)
	}
	return cfg, nil
}
