package composer

import (
	"fmt"
	"math"

	"github.com/tsawler/slidegen/model"
	"github.com/tsawler/slidegen/pptx"
)

// Report lists the differences between a saved file and the composed slide.
type Report struct {
	Path     string
	Slides   int
	Width    int64 // EMU
	Height   int64 // EMU
	Problems []string
}

// OK reports whether the file matched.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) addf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// Verify parses the presentation at path and compares it with the slide
// IndexingSlide produces. The error is non-nil only when the file cannot be
// read; content mismatches are listed in the report.
func Verify(path string) (*Report, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("verifying %s: %w", path, err)
	}
	defer r.Close()

	rep := &Report{Path: path, Slides: r.SlideCount()}
	rep.Width, rep.Height = r.SlideSize()

	if rep.Slides != 1 {
		rep.addf("slide count is %d, want 1", rep.Slides)
	}
	checkSize(rep, "width", rep.Width, SlideWidthInches)
	checkSize(rep, "height", rep.Height, SlideHeightInches)

	slide, err := r.Slide(0)
	if err != nil {
		return nil, fmt.Errorf("verifying %s: %w", path, err)
	}

	titles := slide.TitleParagraphs()
	switch {
	case len(titles) != 1:
		rep.addf("found %d title paragraphs, want 1", len(titles))
	case titles[0].Text != TitleText:
		rep.addf("title is %q, want %q", titles[0].Text, TitleText)
	}

	checkSingle(rep, slide, RegionSubtitle, SubtitleText)
	checkSingle(rep, slide, RegionFooter, FooterText)

	if b := slide.Block(RegionBullets); b == nil {
		rep.addf("region %q is missing", RegionBullets)
	} else {
		want := Bullets()
		if len(b.Paragraphs) != len(want) {
			rep.addf("bullets have %d paragraphs, want %d", len(b.Paragraphs), len(want))
		}
		for i := 0; i < len(want) && i < len(b.Paragraphs); i++ {
			if b.Paragraphs[i].Text != want[i] {
				rep.addf("bullet %d is %q, want %q", i+1, b.Paragraphs[i].Text, want[i])
			}
		}
	}

	if s := slide.Shape(RegionSeparator); s == nil {
		rep.addf("region %q is missing", RegionSeparator)
	} else if s.Fill != GreenDark.Hex() {
		rep.addf("separator fill is %q, want %q", s.Fill, GreenDark.Hex())
	}

	return rep, nil
}

func checkSingle(rep *Report, slide *pptx.Slide, name, want string) {
	b := slide.Block(name)
	if b == nil {
		rep.addf("region %q is missing", name)
		return
	}
	if len(b.Paragraphs) != 1 || b.Text != want {
		rep.addf("%s is %q, want %q", name, b.Text, want)
	}
}

// checkSize allows one EMU of rounding per inch.
func checkSize(rep *Report, dim string, got int64, inches float64) {
	want := inches * float64(model.EMUPerInch)
	if math.Abs(float64(got)-want) > math.Ceil(inches) {
		rep.addf("slide %s is %d EMU, want %.0f", dim, got, want)
	}
}
