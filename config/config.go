// Package config loads slidegen settings from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/slidegen/composer"
	"github.com/tsawler/slidegen/format"
	"github.com/tsawler/slidegen/preview"
)

// DefaultFile is read when no path is given.
const DefaultFile = ".slidegen.yml"

// DefaultThumbnailWidth is the thumbnail width in pixels.
const DefaultThumbnailWidth = 320

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the top-level slidegen configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Preview PreviewConfig `yaml:"preview" toml:"preview"`
	Verify  bool          `yaml:"verify" toml:"verify"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// OutputConfig controls the presentation file.
type OutputConfig struct {
	Path   string `yaml:"path" toml:"path"`
	Author string `yaml:"author" toml:"author"`
}

// PreviewConfig lists optional preview outputs. Empty paths are skipped.
type PreviewConfig struct {
	PNG            string `yaml:"png" toml:"png"`
	HTML           string `yaml:"html" toml:"html"`
	Thumbnail      string `yaml:"thumbnail" toml:"thumbnail"`
	ThumbnailWidth int    `yaml:"thumbnail_width" toml:"thumbnail_width"`
	Width          int    `yaml:"width" toml:"width"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// Load reads configuration from a YAML or TOML file, chosen by extension.
// If path is empty, it tries DefaultFile.
// Returns defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, err
	}

	cfg := Defaults()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if format.Detect(path) == format.TOML {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{Path: composer.DefaultOutput},
		Preview: PreviewConfig{
			ThumbnailWidth: DefaultThumbnailWidth,
			Width:          preview.DefaultWidth,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Validate checks value ranges and that every output path has the
// extension of its format.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output.path is empty", ErrInvalid)
	}
	if f := format.Detect(c.Output.Path); f != format.PPTX {
		return fmt.Errorf("%w: output.path %q is not a .pptx file", ErrInvalid, c.Output.Path)
	}
	if c.Preview.Width < 0 {
		return fmt.Errorf("%w: preview.width must not be negative", ErrInvalid)
	}
	if c.Preview.PNG != "" && format.Detect(c.Preview.PNG) != format.PNG {
		return fmt.Errorf("%w: preview.png %q is not a .png file", ErrInvalid, c.Preview.PNG)
	}
	if c.Preview.HTML != "" && format.Detect(c.Preview.HTML) != format.HTML {
		return fmt.Errorf("%w: preview.html %q is not an .html file", ErrInvalid, c.Preview.HTML)
	}
	if c.Preview.Thumbnail != "" {
		if !format.Detect(c.Preview.Thumbnail).IsImage() {
			return fmt.Errorf("%w: preview.thumbnail %q is not an image file", ErrInvalid, c.Preview.Thumbnail)
		}
		if c.Preview.ThumbnailWidth <= 0 {
			return fmt.Errorf("%w: preview.thumbnail_width must be positive", ErrInvalid)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q is not one of debug, info, warn, error", ErrInvalid, c.Log.Level)
	}
	return nil
}
