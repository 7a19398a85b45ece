package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Start.URL != "" {
		t.Errorf("default start url = %q, want empty", cfg.Start.URL)
	}
	if cfg.Downloads.Dir == "" {
		t.Error("default downloads dir is empty")
	}
	if cfg.Display.Theme != "default" {
		t.Errorf("default theme = %q", cfg.Display.Theme)
	}
}

func TestMerge(t *testing.T) {
	defaults := Default()
	user := &Config{}
	user.Start.URL = "gopher://example.org"

	got := merge(defaults, user)
	if got.Start.URL != "gopher://example.org" {
		t.Errorf("merged start url = %q", got.Start.URL)
	}
	if got.Downloads.Dir != defaults.Downloads.Dir {
		t.Errorf("empty user value overrode downloads dir: %q", got.Downloads.Dir)
	}
}

func TestLoadFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[start]\nurl = \"gopher://sdf.org\"\n\n[downloads]\ndir = \"/tmp/dl\"\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromTOML(path)
	if err != nil {
		t.Fatalf("loadFromTOML: %v", err)
	}
	if cfg.Start.URL != "gopher://sdf.org" {
		t.Errorf("start url = %q", cfg.Start.URL)
	}
	if cfg.Downloads.Dir != "/tmp/dl" {
		t.Errorf("downloads dir = %q", cfg.Downloads.Dir)
	}
}

func TestDefaultTOMLParses(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(DefaultTOML(), &cfg); err != nil {
		t.Fatalf("DefaultTOML does not parse: %v", err)
	}
	if !strings.HasPrefix(cfg.Downloads.Dir, "~/") {
		t.Errorf("generated downloads dir = %q", cfg.Downloads.Dir)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandHome("~/dl"); got != filepath.Join(home, "dl") {
		t.Errorf("expandHome(~/dl) = %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("expandHome(/abs/path) = %q", got)
	}
}
