package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/slidegen/composer"
	"github.com/tsawler/slidegen/format"
	"github.com/tsawler/slidegen/ocr"
	"github.com/tsawler/slidegen/pptx"
	"github.com/tsawler/slidegen/preview"
)

// ocrWidth is the preview width fed to Tesseract. Small text needs more
// pixels than the default preview has.
const ocrWidth = 2400

var errCheckFailed = errors.New("check failed")

type checkFlags struct {
	ocr         bool
	lang        string
	minCoverage float64
}

func (a *app) newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check that a file holds the indexing slide",
		Long: `Check that a file is a PowerPoint presentation holding exactly the
indexing slide: one slide of the right size with the expected title,
subtitle, bullets, separator and footer.

With --ocr the slide is also rendered and read back with Tesseract. This
needs a binary built with -tags ocr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.ocr, "ocr", false, "also OCR a rendered preview")
	cmd.Flags().StringVar(&flags.lang, "lang", "fra", "Tesseract language(s), joined with +")
	cmd.Flags().Float64Var(&flags.minCoverage, "min-coverage", 0.8, "fraction of slide words OCR must find")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, path string, flags checkFlags) error {
	if err := checkFormat(path); err != nil {
		return err
	}

	rep, err := composer.Verify(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !rep.OK() {
		for _, p := range rep.Problems {
			fmt.Fprintf(out, "FAIL %s\n", p)
		}
		return fmt.Errorf("%w: %s has %d problems", errCheckFailed, path, len(rep.Problems))
	}
	fmt.Fprintf(out, "OK %s\n", path)

	if !flags.ocr {
		return nil
	}
	if !ocr.Enabled {
		a.logger.Warn("OCR support not compiled in, skipping", zap.String("rebuild", "go build -tags ocr"))
		return nil
	}
	return a.checkOCR(cmd, path, flags)
}

// checkFormat confirms path holds a presentation whatever its extension.
func checkFormat(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	got, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("detecting format of %s: %w", path, err)
	}
	if got != format.PPTX {
		return fmt.Errorf("%w: %s is %s, not a PPTX presentation", errCheckFailed, path, got)
	}
	return nil
}

func (a *app) checkOCR(cmd *cobra.Command, path string, flags checkFlags) error {
	r, err := pptx.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	canvas, err := r.Canvas(0)
	if err != nil {
		return err
	}
	expected, err := r.Text()
	if err != nil {
		return err
	}

	var img bytes.Buffer
	if err := preview.PNG(&img, canvas, preview.Options{Width: ocrWidth}); err != nil {
		return err
	}

	client, err := ocr.New()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetLanguage(flags.lang); err != nil {
		return err
	}
	recognized, err := client.RecognizeImage(img.Bytes())
	if err != nil {
		return err
	}
	a.logger.Debug("OCR text", zap.String("text", recognized))

	coverage := ocr.Coverage(recognized, expected)
	fmt.Fprintf(cmd.OutOrStdout(), "OCR coverage %.0f%%\n", coverage*100)
	if coverage < flags.minCoverage {
		return fmt.Errorf("%w: OCR found %.0f%% of the slide words, want %.0f%%",
			errCheckFailed, coverage*100, flags.minCoverage*100)
	}
	return nil
}
