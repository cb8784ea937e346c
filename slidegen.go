// Package slidegen provides a fluent API for generating the indexing
// decisions slide and its previews.
//
// Basic usage:
//
//	res, err := slidegen.Indexing().Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Path)
//
// With previews and a check of the saved file:
//
//	res, err := slidegen.Indexing().
//	    Output("out/indexes_slide.pptx").
//	    PNG("out/slide.png").
//	    Thumbnail("out/thumb.jpg", 320).
//	    HTML("out/slide.html").
//	    Verify().
//	    Run(ctx)
//
// The composer package builds the slide itself; this package adds the
// preview outputs and the verification pass around it.
package slidegen

import (
	"github.com/tsawler/slidegen/config"
)

// Indexing returns a Job that writes the indexing slide to the default
// output path and nothing else.
//
// Example:
//
//	_, err := slidegen.Indexing().Run(context.Background())
func Indexing() *Job {
	return &Job{options: defaultOptions()}
}

// FromConfig returns a Job configured from cfg. Empty preview paths are
// skipped. A nil cfg behaves like Indexing.
func FromConfig(cfg *config.Config) *Job {
	j := Indexing()
	if cfg == nil {
		return j
	}

	j = j.Output(cfg.Output.Path).Author(cfg.Output.Author)
	if cfg.Preview.Width > 0 {
		j = j.Width(cfg.Preview.Width)
	}
	if cfg.Preview.PNG != "" {
		j = j.PNG(cfg.Preview.PNG)
	}
	if cfg.Preview.HTML != "" {
		j = j.HTML(cfg.Preview.HTML)
	}
	if cfg.Preview.Thumbnail != "" {
		j = j.Thumbnail(cfg.Preview.Thumbnail, cfg.Preview.ThumbnailWidth)
	}
	if cfg.Verify {
		j = j.Verify()
	}
	return j
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := slidegen.Must(slidegen.Indexing().Run(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
