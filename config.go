package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".tomdoc.yaml"

// fileConfig holds project-level defaults. Explicit flags always win over the
// file, and TOMDOC_* environment variables win over the file but not flags.
type fileConfig struct {
	Format string `yaml:"format"` // "text" or "markdown"
	Access string `yaml:"access"`
	Marker string `yaml:"marker"`
	Output string `yaml:"output"`
}

// loadConfig reads path, or .tomdoc.yaml from the working directory when path
// is empty. A missing default file is not an error; a missing explicit path
// is.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	var cfg fileConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no project config; env vars may still apply
	default:
		return nil, err
	}

	if format := os.Getenv("TOMDOC_FORMAT"); format != "" {
		cfg.Format = format
	}
	if access := os.Getenv("TOMDOC_ACCESS"); access != "" {
		cfg.Access = access
	}

	switch cfg.Format {
	case "", formatText, formatMarkdown:
	default:
		return nil, fmt.Errorf("unknown format %q in config (want %q or %q)", cfg.Format, formatText, formatMarkdown)
	}
	return &cfg, nil
}
