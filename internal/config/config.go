package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete ptree configuration
type Config struct {
	Proc    ProcConfig    `mapstructure:"proc" yaml:"proc"`
	Tree    TreeConfig    `mapstructure:"tree" yaml:"tree"`
	Filter  FilterConfig  `mapstructure:"filter" yaml:"filter"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ProcConfig controls where process records are read from
type ProcConfig struct {
	// Root is the mount point of the proc filesystem (default: "/proc")
	Root string `mapstructure:"root" yaml:"root"`
}

// TreeConfig controls how the forest is assembled
type TreeConfig struct {
	// RootPolicy decides which processes start a tree.
	// Options: "zero-parent", "orphan", "init"
	RootPolicy string `mapstructure:"root_policy" yaml:"root_policy"`
}

// FilterConfig controls which processes are shown
type FilterConfig struct {
	// AllUsers shows processes of every user instead of only the caller's
	AllUsers bool `mapstructure:"all_users" yaml:"all_users"`
	// Mode is how the filter argument is matched: "substring" or "glob"
	Mode string `mapstructure:"mode" yaml:"mode"`
}

// RenderConfig controls tree output
type RenderConfig struct {
	// Width is the terminal width in columns (0 = detect)
	Width int `mapstructure:"width" yaml:"width"`
	// Wrap wraps long command lines; when false they are truncated
	Wrap bool `mapstructure:"wrap" yaml:"wrap"`
	// Color is "auto", "always" or "never"
	Color string `mapstructure:"color" yaml:"color"`
	// Output is "tree", "json" or "yaml"
	Output string `mapstructure:"output" yaml:"output"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the minimum level logged: "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format" yaml:"format"`
	// File receives log output instead of stderr when set
	File string `mapstructure:"file" yaml:"file"`
	// MaxSizeMB rotates File before a run once it reaches this size (0 = never)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Proc: ProcConfig{
			Root: "/proc",
		},
		Tree: TreeConfig{
			RootPolicy: "zero-parent",
		},
		Filter: FilterConfig{
			AllUsers: false,
			Mode:     "substring",
		},
		Render: RenderConfig{
			Width:  0, // Detect from the terminal
			Wrap:   true,
			Color:  "never",
			Output: "tree",
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "text",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("proc.root", defaults.Proc.Root)

	viper.SetDefault("tree.root_policy", defaults.Tree.RootPolicy)

	viper.SetDefault("filter.all_users", defaults.Filter.AllUsers)
	viper.SetDefault("filter.mode", defaults.Filter.Mode)

	viper.SetDefault("render.width", defaults.Render.Width)
	viper.SetDefault("render.wrap", defaults.Render.Wrap)
	viper.SetDefault("render.color", defaults.Render.Color)
	viper.SetDefault("render.output", defaults.Render.Output)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ptree")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ptree"
	}
	return filepath.Join(home, ".config", "ptree")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
