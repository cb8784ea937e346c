// Package composer builds the indexing decisions slide and saves it as a
// PowerPoint file.
//
// Basic usage:
//
//	if err := composer.Generate(composer.DefaultOutput); err != nil {
//	    log.Fatal(err)
//	}
//
// The layout is fixed in code. IndexingSlide returns the canvas without
// saving it, and Verify parses a saved file back and checks its content.
package composer

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/slidegen/model"
	"github.com/tsawler/slidegen/pptx"
)

// DefaultOutput is the file written when no path is given.
const DefaultOutput = "indexes_slide.pptx"

// Composer composes and saves the slide.
type Composer struct {
	logger   *zap.Logger
	out      io.Writer
	author   string
	modified time.Time
}

// Option configures a Composer
type Option func(*Composer)

// WithLogger sets the logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOutput sets where the "Saved <path>" line goes (default: stdout).
// A nil writer silences it.
func WithOutput(w io.Writer) Option {
	return func(c *Composer) {
		c.out = w
	}
}

// WithAuthor records an author in the document properties.
func WithAuthor(name string) Option {
	return func(c *Composer) {
		c.author = name
	}
}

// WithModified fixes the package timestamp. Two saves with the same
// timestamp produce identical files.
func WithModified(t time.Time) Option {
	return func(c *Composer) {
		c.modified = t
	}
}

// New creates a Composer.
func New(opts ...Option) *Composer {
	c := &Composer{
		logger: zap.NewNop(),
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Generate composes the slide with default options and saves it to
// outputPath.
func Generate(outputPath string) error {
	return New().Generate(outputPath)
}

// Generate composes the slide, saves it to outputPath and reports the path.
// An empty path means DefaultOutput.
func (c *Composer) Generate(outputPath string) error {
	if outputPath == "" {
		outputPath = DefaultOutput
	}

	return c.Write(c.Compose(), outputPath)
}

// Write saves canvas to path and prints "Saved <path>" to the composer's
// output.
func (c *Composer) Write(canvas *model.Canvas, path string) error {
	if err := c.Save(canvas, path); err != nil {
		return err
	}

	if c.out != nil {
		if _, err := fmt.Fprintf(c.out, "Saved %s\n", path); err != nil {
			return fmt.Errorf("reporting output: %w", err)
		}
	}
	return nil
}

// Compose returns the slide canvas with the composer's properties applied.
func (c *Composer) Compose() *model.Canvas {
	canvas := IndexingSlide()
	canvas.Properties.Author = c.author

	for _, o := range canvas.Overlaps() {
		c.logger.Debug("Regions overlap",
			zap.String("a", o.A.Name()),
			zap.String("b", o.B.Name()))
	}
	c.logger.Debug("Slide composed",
		zap.Int("regions", len(canvas.Regions())),
		zap.Int64("width", int64(canvas.Width)),
		zap.Int64("height", int64(canvas.Height)))

	return canvas
}

// Save writes canvas to path as a presentation.
func (c *Composer) Save(canvas *model.Canvas, path string) error {
	err := pptx.WriteFile(path, canvas, pptx.WriteOptions{
		Language: Language,
		Modified: c.modified,
	})
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	c.logger.Info("Slide saved", zap.String("path", path))
	return nil
}
