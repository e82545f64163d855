package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Proc.Root != "/proc" {
		t.Errorf("Proc.Root = %q, want %q", cfg.Proc.Root, "/proc")
	}
	if cfg.Tree.RootPolicy != "zero-parent" {
		t.Errorf("Tree.RootPolicy = %q, want %q", cfg.Tree.RootPolicy, "zero-parent")
	}
	if cfg.Filter.AllUsers {
		t.Error("Filter.AllUsers should be false by default")
	}
	if cfg.Filter.Mode != "substring" {
		t.Errorf("Filter.Mode = %q, want %q", cfg.Filter.Mode, "substring")
	}
	if cfg.Render.Width != 0 {
		t.Errorf("Render.Width = %d, want 0", cfg.Render.Width)
	}
	if !cfg.Render.Wrap {
		t.Error("Render.Wrap should be true by default")
	}
	if cfg.Render.Color != "never" {
		t.Errorf("Render.Color = %q, want %q", cfg.Render.Color, "never")
	}
	if cfg.Render.Output != "tree" {
		t.Errorf("Render.Output = %q, want %q", cfg.Render.Output, "tree")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got, want := ConfigDir(), "/custom/config/ptree"; got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		if got, want := ConfigDir(), filepath.Join(home, ".config", "ptree"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := ConfigFile(), "/custom/config/ptree/config.yaml"; got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", *cfg)
	}
}

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `tree:
  root_policy: orphan
filter:
  all_users: true
  mode: glob
render:
  width: 120
  output: yaml
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tree.RootPolicy != "orphan" {
		t.Errorf("Tree.RootPolicy = %q, want orphan", cfg.Tree.RootPolicy)
	}
	if !cfg.Filter.AllUsers || cfg.Filter.Mode != "glob" {
		t.Errorf("Filter = %+v, want all users in glob mode", cfg.Filter)
	}
	if cfg.Render.Width != 120 || cfg.Render.Output != "yaml" {
		t.Errorf("Render = %+v, want width 120 and yaml output", cfg.Render)
	}
	// Unset keys keep their defaults
	if cfg.Proc.Root != "/proc" || !cfg.Render.Wrap {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("render.width", -1)
	viper.Set("tree.root_policy", "sideways")

	_, err := Load()
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Load() error = %T %v, want ValidationErrors", err, err)
	}
	if len(errs) != 2 {
		t.Errorf("got %d validation errors, want 2: %v", len(errs), errs)
	}
}
