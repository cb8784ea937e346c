package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/slidegen/pptx"
)

type inspectFlags struct {
	markdown bool
	metadata bool
}

func (a *app) newInspectCmd() *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the text of a presentation",
		Long: `Print the text of every slide in a .pptx file, one paragraph per line.

With --markdown slide titles become headings and bullet lists keep their
nesting. With --metadata the document properties are printed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.markdown, "markdown", false, "print markdown instead of plain text")
	cmd.Flags().BoolVar(&flags.metadata, "metadata", false, "print document properties first")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, path string, flags inspectFlags) error {
	r, err := pptx.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	a.logger.Debug("Presentation opened",
		zap.String("path", path),
		zap.Int("slides", r.SlideCount()))

	out := cmd.OutOrStdout()
	if flags.metadata {
		meta := r.Metadata()
		w, h := r.SlideSize()
		fmt.Fprintf(out, "Title:    %s\n", meta.Title)
		fmt.Fprintf(out, "Author:   %s\n", meta.Author)
		fmt.Fprintf(out, "Subject:  %s\n", meta.Subject)
		if len(meta.Keywords) > 0 {
			fmt.Fprintf(out, "Keywords: %s\n", strings.Join(meta.Keywords, ", "))
		}
		fmt.Fprintf(out, "Creator:  %s\n", meta.Creator)
		fmt.Fprintf(out, "Slides:   %d\n", r.SlideCount())
		fmt.Fprintf(out, "Size:     %.3f x %.3f in\n\n", float64(w)/914400, float64(h)/914400)
	}

	var text string
	if flags.markdown {
		text, err = r.Markdown()
	} else {
		text, err = r.Text()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, text)
	return nil
}
