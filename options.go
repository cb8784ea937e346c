package slidegen

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/slidegen/composer"
	"github.com/tsawler/slidegen/preview"
)

// previewTarget is one preview file. width is the pixel width of the
// output, zero meaning the job's preview width.
type previewTarget struct {
	path  string
	width int
	thumb bool
}

// JobOptions holds configuration for a generation run.
type JobOptions struct {
	output   string
	author   string
	width    int
	previews []previewTarget
	verify   bool

	logger   *zap.Logger
	stdout   io.Writer
	modified time.Time
}

// defaultOptions returns the default job options.
func defaultOptions() JobOptions {
	return JobOptions{
		output: composer.DefaultOutput,
		width:  preview.DefaultWidth,
		logger: zap.NewNop(),
		stdout: os.Stdout,
	}
}

// clone creates a deep copy of JobOptions.
func (o JobOptions) clone() JobOptions {
	newOpts := o
	if o.previews != nil {
		newOpts.previews = make([]previewTarget, len(o.previews))
		copy(newOpts.previews, o.previews)
	}
	return newOpts
}
