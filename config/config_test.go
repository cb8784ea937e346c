package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(DefaultFile, []byte("verify: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Verify {
		t.Error("Load(\"\") did not read the default file")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "slidegen.yaml", `
output:
  path: out/deck.pptx
  author: Équipe données
preview:
  png: out/deck.png
  thumbnail: out/thumb.jpg
verify: true
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Defaults()
	want.Output = OutputConfig{Path: "out/deck.pptx", Author: "Équipe données"}
	want.Preview.PNG = "out/deck.png"
	want.Preview.Thumbnail = "out/thumb.jpg"
	want.Verify = true
	want.Log.Level = "debug"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "slidegen.toml", `
verify = true

[output]
path = "deck.pptx"

[preview]
html = "deck.html"
width = 960
thumbnail = "thumb.png"
thumbnail_width = 200
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Defaults()
	want.Output.Path = "deck.pptx"
	want.Preview = PreviewConfig{HTML: "deck.html", Width: 960, Thumbnail: "thumb.png", ThumbnailWidth: 200}
	want.Verify = true

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Errorf("empty file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"bad.yml", "outptu:\n  path: x.pptx\n"},
		{"bad.toml", "[outptu]\npath = \"x.pptx\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.name, tt.content))
			if err == nil || !strings.Contains(err.Error(), "parsing") {
				t.Errorf("Load() error = %v, want parse error", err)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "c.yml", "log:\n  level: loud\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"upper case level", func(c *Config) { c.Log.Level = "INFO" }, true},
		{"empty output", func(c *Config) { c.Output.Path = "" }, false},
		{"output not pptx", func(c *Config) { c.Output.Path = "deck.pdf" }, false},
		{"negative width", func(c *Config) { c.Preview.Width = -1 }, false},
		{"png path not png", func(c *Config) { c.Preview.PNG = "deck.jpg" }, false},
		{"html path not html", func(c *Config) { c.Preview.HTML = "deck.txt" }, false},
		{"thumbnail not image", func(c *Config) { c.Preview.Thumbnail = "thumb.html" }, false},
		{"thumbnail zero width", func(c *Config) {
			c.Preview.Thumbnail = "thumb.png"
			c.Preview.ThumbnailWidth = 0
		}, false},
		{"zero width unused thumbnail", func(c *Config) { c.Preview.ThumbnailWidth = 0 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
