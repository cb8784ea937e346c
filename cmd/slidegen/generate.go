package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/slidegen"
	"github.com/tsawler/slidegen/config"
)

type generateFlags struct {
	output     string
	png        string
	html       string
	thumbnail  string
	thumbWidth int
	width      int
	verify     bool
	author     string
}

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the slide and any configured previews",
		Long: `Write the slide to a .pptx file and print "Saved <path>".

Previews are written after the presentation. With --verify the saved file is
read back and compared with the composed slide.`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}
	a.addGenerateFlags(cmd)
	return cmd
}

func (a *app) addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&a.gen.output, "output", "o", "", "presentation path (default: indexes_slide.pptx)")
	f.StringVar(&a.gen.png, "png", "", "write a PNG preview to this path")
	f.StringVar(&a.gen.html, "html", "", "write an HTML preview to this path")
	f.StringVar(&a.gen.thumbnail, "thumbnail", "", "write a thumbnail (.png or .jpg) to this path")
	f.IntVar(&a.gen.thumbWidth, "thumbnail-width", config.DefaultThumbnailWidth, "thumbnail width in pixels")
	f.IntVar(&a.gen.width, "width", 0, "preview width in pixels (default 1280)")
	f.BoolVar(&a.gen.verify, "verify", false, "read the saved file back and check its content")
	f.StringVar(&a.gen.author, "author", "", "author recorded in the document properties")
}

// merge applies the flags the user set on top of the loaded configuration.
func (a *app) merge(cmd *cobra.Command) (*config.Config, error) {
	cfg := *a.cfg
	f := cmd.Flags()

	if f.Changed("output") {
		cfg.Output.Path = a.gen.output
	}
	if f.Changed("author") {
		cfg.Output.Author = a.gen.author
	}
	if f.Changed("png") {
		cfg.Preview.PNG = a.gen.png
	}
	if f.Changed("html") {
		cfg.Preview.HTML = a.gen.html
	}
	if f.Changed("thumbnail") {
		cfg.Preview.Thumbnail = a.gen.thumbnail
	}
	if f.Changed("thumbnail-width") {
		cfg.Preview.ThumbnailWidth = a.gen.thumbWidth
	}
	if f.Changed("width") {
		cfg.Preview.Width = a.gen.width
	}
	if f.Changed("verify") {
		cfg.Verify = a.gen.verify
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := a.merge(cmd)
	if err != nil {
		return err
	}

	res, err := slidegen.FromConfig(cfg).
		Logger(a.logger).
		Stdout(cmd.OutOrStdout()).
		Run(cmd.Context())
	if err != nil {
		return err
	}

	for _, p := range res.Previews {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	}
	if res.Report != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Verified %s\n", res.Path)
	}
	return nil
}
