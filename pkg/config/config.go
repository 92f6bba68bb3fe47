package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the file-based defaults for the region listing tool. Any field
// left empty falls back to flags or the environment.
type Config struct {
	AWS struct {
		Profile string `yaml:"profile"`
	} `yaml:"aws"`
	Regions struct {
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"regions"`
}

// LoadConfig reads and parses a yaml config file.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
