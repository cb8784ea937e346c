package slidegen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/slidegen/composer"
	"github.com/tsawler/slidegen/format"
	"github.com/tsawler/slidegen/model"
	"github.com/tsawler/slidegen/preview"
)

// ErrVerifyFailed is returned by Run when the saved file does not match
// the composed slide.
var ErrVerifyFailed = errors.New("verification failed")

// Job generates the slide and its optional previews.
// Each configuration method returns a new Job, so a Job can be shared and
// extended without affecting other holders.
type Job struct {
	options JobOptions

	// Accumulated error (fail-fast)
	err error
}

// Result describes the files written by Run.
type Result struct {
	// Path is the presentation file.
	Path string
	// Previews lists preview files in the order they were requested.
	Previews []string
	// Report is set when verification was requested.
	Report *composer.Report
}

// clone creates a copy of the Job with a deep copy of options.
func (j *Job) clone() *Job {
	return &Job{
		options: j.options.clone(),
		err:     j.err,
	}
}

// Output sets the presentation path. An empty path keeps the default.
func (j *Job) Output(path string) *Job {
	newJob := j.clone()
	if path != "" {
		newJob.options.output = path
	}
	return newJob
}

// Author records an author in the document properties.
func (j *Job) Author(name string) *Job {
	newJob := j.clone()
	newJob.options.author = name
	return newJob
}

// PNG adds a full-size raster preview. The encoding follows the file
// extension (.png or .jpg).
func (j *Job) PNG(path string) *Job {
	newJob := j.clone()
	newJob.options.previews = append(newJob.options.previews, previewTarget{path: path})
	return newJob
}

// Width sets the pixel width of the PNG and HTML previews.
func (j *Job) Width(px int) *Job {
	newJob := j.clone()
	if px <= 0 {
		newJob.err = fmt.Errorf("invalid preview width %d", px)
		return newJob
	}
	newJob.options.width = px
	return newJob
}

// Thumbnail adds a down-scaled raster preview px pixels wide.
func (j *Job) Thumbnail(path string, px int) *Job {
	newJob := j.clone()
	if px <= 0 {
		newJob.err = fmt.Errorf("invalid thumbnail width %d", px)
		return newJob
	}
	newJob.options.previews = append(newJob.options.previews, previewTarget{path: path, width: px, thumb: true})
	return newJob
}

// HTML adds an HTML preview.
func (j *Job) HTML(path string) *Job {
	newJob := j.clone()
	newJob.options.previews = append(newJob.options.previews, previewTarget{path: path})
	return newJob
}

// Verify reads the presentation back after saving and fails the run if
// its content differs from the composed slide.
func (j *Job) Verify() *Job {
	newJob := j.clone()
	newJob.options.verify = true
	return newJob
}

// Logger sets the logger (default: no-op). A nil logger is ignored.
func (j *Job) Logger(l *zap.Logger) *Job {
	newJob := j.clone()
	if l != nil {
		newJob.options.logger = l
	}
	return newJob
}

// Stdout sets where the "Saved <path>" line goes (default: os.Stdout).
// A nil writer silences it.
func (j *Job) Stdout(w io.Writer) *Job {
	newJob := j.clone()
	newJob.options.stdout = w
	return newJob
}

// Modified fixes the presentation timestamp.
func (j *Job) Modified(t time.Time) *Job {
	newJob := j.clone()
	newJob.options.modified = t
	return newJob
}

// Run composes the slide, saves it, writes the previews and optionally
// verifies the saved file. Previews are rendered concurrently once the
// presentation is saved.
func (j *Job) Run(ctx context.Context) (*Result, error) {
	if j.err != nil {
		return nil, j.err
	}
	if err := j.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := j.options
	log := opts.logger

	c := composer.New(
		composer.WithLogger(log),
		composer.WithOutput(opts.stdout),
		composer.WithAuthor(opts.author),
		composer.WithModified(opts.modified),
	)
	canvas := c.Compose()
	if err := c.Write(canvas, opts.output); err != nil {
		return nil, err
	}

	res := &Result{Path: opts.output}

	if err := j.writePreviews(ctx, canvas); err != nil {
		return res, err
	}
	for _, t := range opts.previews {
		res.Previews = append(res.Previews, t.path)
	}

	if opts.verify {
		rep, err := composer.Verify(opts.output)
		if err != nil {
			return res, err
		}
		res.Report = rep
		if !rep.OK() {
			return res, fmt.Errorf("%w: %s", ErrVerifyFailed, strings.Join(rep.Problems, "; "))
		}
		log.Info("Slide verified", zap.String("path", opts.output), zap.Int("slides", rep.Slides))
	}

	return res, nil
}

// validate checks that every preview path has a supported extension and
// that no two outputs share a path.
func (j *Job) validate() error {
	seen := map[string]bool{j.options.output: true}
	if f := format.Detect(j.options.output); f != format.PPTX {
		return fmt.Errorf("output %s: not a .pptx path", j.options.output)
	}

	for _, t := range j.options.previews {
		if t.path == "" {
			return errors.New("empty preview path")
		}
		if seen[t.path] {
			return fmt.Errorf("preview %s: path used twice", t.path)
		}
		seen[t.path] = true

		f := format.Detect(t.path)
		if !f.IsImage() && (t.thumb || f != format.HTML) {
			return fmt.Errorf("preview %s: unsupported format %s", t.path, f)
		}
	}
	return nil
}

// writePreviews renders the raster image once and writes every preview
// file from its own goroutine. The canvas and image are read-only here.
func (j *Job) writePreviews(ctx context.Context, canvas *model.Canvas) error {
	opts := j.options
	if len(opts.previews) == 0 {
		return nil
	}

	popts := preview.Options{Width: opts.width}

	var img *image.NRGBA
	for _, t := range opts.previews {
		if format.Detect(t.path).IsImage() {
			var err error
			if img, err = preview.Image(canvas, popts); err != nil {
				return fmt.Errorf("rendering preview: %w", err)
			}
			break
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range opts.previews {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f := format.Detect(t.path)
			var err error
			switch {
			case f == format.HTML:
				err = writeHTML(t.path, canvas, popts)
			case t.thumb:
				err = preview.SaveImage(t.path, preview.Thumbnail(img, t.width))
			default:
				err = preview.SaveImage(t.path, img)
			}
			if err != nil {
				return err
			}

			opts.logger.Info("Preview written",
				zap.String("path", t.path),
				zap.Stringer("format", f))
			return nil
		})
	}
	return g.Wait()
}

func writeHTML(path string, canvas *model.Canvas, opts preview.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := preview.HTML(f, canvas, opts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
