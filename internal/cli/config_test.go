package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tzgrid/tianzige/pkg/pipeline"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("missing config file should yield empty config, got %+v", cfg)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("color = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestConfigApplyTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
color = "#123456"
page_size = "a5"
margin_top = 0.0
inner_grid = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	opts := pipeline.DefaultOptions()
	cfg.applyTo(&opts)

	if opts.Color != "#123456" {
		t.Errorf("Color = %q, want %q", opts.Color, "#123456")
	}
	if opts.PageSize != "a5" {
		t.Errorf("PageSize = %q, want %q", opts.PageSize, "a5")
	}
	if opts.MarginTopMM != 0 {
		t.Errorf("MarginTopMM = %v, want 0 (explicit zero in config)", opts.MarginTopMM)
	}
	if opts.MarginBottomMM != pipeline.DefaultMarginBottomMM {
		t.Errorf("MarginBottomMM = %v, want default %v", opts.MarginBottomMM, pipeline.DefaultMarginBottomMM)
	}
	if opts.InnerGrid {
		t.Error("InnerGrid should be disabled by config")
	}
}

func TestConfigOverriddenByFlags(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `color = "#000000"` + "\n" + `page_size = "a6"` + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	opts := c.baseOptions()
	if opts.Color != "#000000" {
		t.Errorf("Color = %q, want config value %q", opts.Color, "#000000")
	}
	if opts.PageSize != "a6" {
		t.Errorf("PageSize = %q, want config value %q", opts.PageSize, "a6")
	}

	out := filepath.Join(t.TempDir(), "grid.pdf")
	if err := runCommand(t, c, "generate", out, "--page-size", "a4"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}
