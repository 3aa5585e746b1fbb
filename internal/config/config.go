// internal/config/config.go
//
// Project configuration for shrinkwrap. Each project carries a
// shrinkwrap.yaml next to its sources naming the byte budget, the
// document title, the input files and the compaction engine command.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is where Load looks when no config path is given.
const DefaultFileName = "shrinkwrap.yaml"

const defaultConfigYAML = `# shrinkwrap project configuration
version: 1

# Byte budget the packed build must fit in.
budget: 1024

# Document title, embedded both as markup text and as a JS literal.
title: Untitled

# Inputs, relative to this file.
source: src/demo.js
template: src/index.template.html

# Output directory for the packed source and the assembled document.
output: dist

# External compaction engine. It reads the source on stdin and emits
# one JSON method descriptor per line on stdout.
engine:
  command: regroll
  # args: ["--all-methods"]
`

// EngineConfig names the external compaction command.
type EngineConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// Config models shrinkwrap.yaml plus the directory it was loaded from.
type Config struct {
	Version  int          `yaml:"version"`
	Budget   int          `yaml:"budget"`
	Title    string       `yaml:"title"`
	Source   string       `yaml:"source"`
	Template string       `yaml:"template"`
	Output   string       `yaml:"output"`
	Engine   EngineConfig `yaml:"engine"`

	// ProjectDir anchors the relative paths above. Derived from the
	// config file location, never serialized.
	ProjectDir string `yaml:"-"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	cfg.ProjectDir = filepath.Dir(abs)
	cfg.applyDefaults()
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// EnsureProjectConfig writes the default config file if none exists.
// A pre-existing file is left untouched.
func EnsureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = "dist"
	}
}

func (c *Config) normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Source = strings.TrimSpace(c.Source)
	c.Template = strings.TrimSpace(c.Template)
	c.Output = strings.TrimSpace(c.Output)
	c.Engine.Command = strings.TrimSpace(c.Engine.Command)
}

func (c *Config) validate() error {
	if c.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if c.Budget < 1 {
		return fmt.Errorf("budget must be a positive byte count")
	}
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.Template == "" {
		return fmt.Errorf("template is required")
	}
	if c.Engine.Command == "" {
		return fmt.Errorf("engine.command is required")
	}
	return nil
}

func (c *Config) resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Clean(filepath.Join(c.ProjectDir, rel))
}

// SourcePath returns the absolute path to the program source.
func (c *Config) SourcePath() string {
	return c.resolve(c.Source)
}

// TemplatePath returns the absolute path to the document template.
func (c *Config) TemplatePath() string {
	return c.resolve(c.Template)
}

// OutputDir returns the absolute output directory.
func (c *Config) OutputDir() string {
	return c.resolve(c.Output)
}

// PackedPath is where the winning candidate's raw bytes land.
func (c *Config) PackedPath() string {
	name := "packed" + filepath.Ext(c.Source)
	return filepath.Join(c.OutputDir(), name)
}

// DocumentPath is where the assembled document lands.
func (c *Config) DocumentPath() string {
	return filepath.Join(c.OutputDir(), "index.html")
}

// LogsDir is where build logs accumulate.
func (c *Config) LogsDir() string {
	return filepath.Join(c.OutputDir(), "logs")
}

// EnsureOutputDir creates the output directory when needed. A
// pre-existing directory is fine; anything else at that path is fatal
// before any build work starts.
func (c *Config) EnsureOutputDir() error {
	dir := c.OutputDir()
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("config: output path %s exists and is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: inspect output path %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create output dir %s: %w", dir, err)
	}
	return nil
}
