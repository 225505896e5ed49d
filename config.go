package logcall

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	phlog "github.com/oarkflow/log"
	"gopkg.in/yaml.v3"

	"github.com/llskyhi/log-call/logger"
)

// Config is the file-level configuration for call logging: the record
// level, the rendering knobs and the sinks the backing logger writes to.
// See examples/log-config.yaml for a complete example with a console and a
// file sink, both at debug.
type Config struct {
	Level      string         `json:"level,omitempty" yaml:"level,omitempty"`
	Caller     *bool          `json:"caller,omitempty" yaml:"caller,omitempty"`
	ArgLimit   int            `json:"arg_limit,omitempty" yaml:"arg_limit,omitempty"`
	StackLimit int            `json:"stack_limit,omitempty" yaml:"stack_limit,omitempty"`
	TimeFormat string         `json:"time_format,omitempty" yaml:"time_format,omitempty"`
	Console    *ConsoleConfig `json:"console,omitempty" yaml:"console,omitempty"`
	File       *FileConfig    `json:"file,omitempty" yaml:"file,omitempty"`
}

// ConsoleConfig enables the console sink.
type ConsoleConfig struct {
	Color bool `json:"color" yaml:"color"`
}

// FileConfig enables the file sink.
type FileConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int64  `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
}

// ConfigLoader loads configuration from various formats
type ConfigLoader struct{}

func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

func (l *ConfigLoader) LoadYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *ConfigLoader) LoadJSON(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads a configuration file, picking the format by extension.
func (l *ConfigLoader) LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return l.LoadYAML(data)
	case ".json":
		return l.LoadJSON(data)
	}
	return nil, fmt.Errorf("logcall: unsupported config format %q", filepath.Ext(path))
}

// ToYAML exports config to YAML
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// ToJSON exports config to JSON
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Validate checks the level name and sink settings without building
// anything.
func (c *Config) Validate() error {
	if c.Level != "" {
		if _, err := logger.ParseLevel(c.Level); err != nil {
			return err
		}
	}
	if c.File != nil && c.File.Path == "" {
		return fmt.Errorf("logcall: file sink requires a path")
	}
	return nil
}

// BuildLogger constructs the phuslu-backed logger described by the sink
// settings. With no sink configured it falls back to a plain console sink.
// The wrapper picks the record level per call, so the backing logger is
// left wide open rather than filtering by level itself.
func (c *Config) BuildLogger() (logger.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var writers []phlog.Writer
	if c.Console != nil {
		writers = append(writers, &phlog.ConsoleWriter{
			ColorOutput: c.Console.Color,
			Writer:      os.Stderr,
		})
	}
	if c.File != nil {
		writers = append(writers, &phlog.FileWriter{
			Filename:     c.File.Path,
			MaxSize:      c.File.MaxSizeMB << 20,
			MaxBackups:   c.File.MaxBackups,
			EnsureFolder: true,
		})
	}
	pl := &phlog.Logger{
		Level:      phlog.TraceLevel,
		TimeFormat: c.TimeFormat,
	}
	switch len(writers) {
	case 0:
		pl.Writer = &phlog.ConsoleWriter{Writer: os.Stderr}
	case 1:
		pl.Writer = writers[0]
	default:
		mw := phlog.MultiEntryWriter(writers)
		pl.Writer = &mw
	}
	return logger.NewPhusluLogger(pl), nil
}

// Options converts the config into decorator options, including a
// WithLogger carrying the built sink logger. Later options win, so callers
// can still override any of them.
func (c *Config) Options() ([]Option, error) {
	l, err := c.BuildLogger()
	if err != nil {
		return nil, err
	}
	opts := []Option{WithLogger(l)}
	if c.Level != "" {
		level, err := logger.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}
	if c.Caller != nil {
		opts = append(opts, WithCallerInfo(*c.Caller))
	}
	if c.ArgLimit > 0 {
		opts = append(opts, WithArgLimit(c.ArgLimit))
	}
	if c.StackLimit > 0 {
		opts = append(opts, WithStackLimit(c.StackLimit))
	}
	return opts, nil
}
