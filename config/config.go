// Package config loads service configuration from an optional YAML file.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/irisml/irispredict/irismodel"
	"github.com/irisml/irispredict/pkg/errors"
)

// Config holds the settings shared by the training and serving entrypoints.
type Config struct {
	HTTP struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	Model struct {
		Path string `yaml:"path"`
	} `yaml:"model"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the built-in configuration: port 5000, model file iris.mdl,
// info-level logging. Both entrypoints run with no config file present.
func Default() *Config {
	cfg := &Config{}
	cfg.HTTP.Port = 5000
	cfg.Model.Path = irismodel.DefaultPath
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the YAML file at path, falling back to Default when the file
// does not exist. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to decode config file")
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, errors.NewValueError("config.Load", "http.port must be in 1..65535")
	}
	if cfg.Model.Path == "" {
		cfg.Model.Path = irismodel.DefaultPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
