package config

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/filesystem"
)

// FileNames are the config files Find looks for, in order of preference.
var FileNames = []string{".pathier.toml", ".pathier.json", ".pathier.yaml"}

// Config holds defaults for the CLI. Flags override environment variables,
// which override the config file.
type Config struct {
	LogLevel  string `json:"log_level" toml:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" toml:"log_format" yaml:"log_format"`

	Backup BackupConfig `json:"backup" toml:"backup" yaml:"backup"`
	Dump   DumpConfig   `json:"dump" toml:"dump" yaml:"dump"`

	// Source is the file the config was loaded from, if any.
	Source string `json:"-" toml:"-" yaml:"-"`
}

type BackupConfig struct {
	Template  string `json:"template" toml:"template" yaml:"template"`
	Timestamp bool   `json:"timestamp" toml:"timestamp" yaml:"timestamp"`
}

type DumpConfig struct {
	Indent   int  `json:"indent" toml:"indent" yaml:"indent"`
	SortKeys bool `json:"sort_keys" toml:"sort_keys" yaml:"sort_keys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Backup: BackupConfig{
			Template: pathier.DefaultBackupTemplate,
		},
	}
}

// Find looks for a config file in startDir and each of its parents.
func Find(fs filesystem.FileSystem, startDir string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if fs.Exists(candidate) {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load returns the defaults overlaid with the nearest config file above
// startDir and then with the environment.
func Load(fs filesystem.FileSystem, startDir string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path, found := Find(fs, startDir); found {
		if err := pathier.New(path).WithFileSystem(fs).LoadInto(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Source = path
	}

	cfg.ApplyEnv(lookupEnv)
	return cfg, nil
}

// ApplyEnv overrides fields from PATHIER_* environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if lookupEnv == nil {
		return
	}
	if v, ok := lookupEnv("PATHIER_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookupEnv("PATHIER_LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookupEnv("PATHIER_BACKUP_TEMPLATE"); ok && v != "" {
		c.Backup.Template = v
	}
}

// DumpOptions translates the dump defaults into pathier options.
func (c *Config) DumpOptions() []pathier.Option {
	var opts []pathier.Option
	if c.Dump.SortKeys {
		opts = append(opts, pathier.SortKeys())
	}
	if c.Dump.Indent > 0 {
		opts = append(opts, pathier.Indent(c.Dump.Indent))
	}
	return opts
}
