// Package config loads the demo application's settings from a YAML
// file, with sensible defaults when the file is absent.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string `yaml:"addr"`
	StaticDir    string `yaml:"static_dir"`
	StaticPrefix string `yaml:"static_prefix"`
	TemplateDir  string `yaml:"template_dir"`
}

func Default() Config {
	return Config{
		Addr:         ":8000",
		StaticDir:    "static",
		StaticPrefix: "/static/",
		TemplateDir:  "templates",
	}
}

// Load reads path over the defaults. A missing file is not an error;
// unset keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
