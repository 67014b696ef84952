package lucq

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the Parser options.
//
//	strict: true
//	cache_size: 512
type Config struct {
	Strict    bool `yaml:"strict"`
	CacheSize int  `yaml:"cache_size"`
}

// LoadConfig reads a Config from the YAML file at path. An empty file
// yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if config.CacheSize < 0 {
		return config, fmt.Errorf("invalid cache_size %d in %s", config.CacheSize, path)
	}

	return config, nil
}

// Options converts c into Parser options.
func (c Config) Options() []Option {
	return []Option{
		WithStrict(c.Strict),
		WithCache(c.CacheSize),
	}
}
