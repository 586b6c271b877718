// Package config loads default settings for the eml-generator command from an
// optional YAML file, with environment variables layered on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is the file written when no output path is configured.
const DefaultOutput = "output.eml"

// Environment variables that override the file.
const (
	EnvFrom   = "EML_FROM"
	EnvOutput = "EML_OUTPUT"
)

// Header is one extra header field. A list is used rather than a map so the
// order in the file is the order in the message.
type Header struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Config holds the defaults for generating a message. Command-line flags
// override all of these.
type Config struct {
	From    string   `yaml:"from"`
	Cc      []string `yaml:"cc"`
	Output  string   `yaml:"output"`
	Charset string   `yaml:"charset"`
	Headers []Header `yaml:"headers"`
}

// Load returns the configuration with defaults and environment overrides
// applied. If path is empty, no file is read.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvVars()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvVars() {
	if v := os.Getenv(EnvFrom); v != "" {
		c.From = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

func (c *Config) validate() error {
	for i, h := range c.Headers {
		if strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("config header %d has no name", i+1)
		}
	}
	return nil
}
