package slidegen

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/slidegen/composer"
	"github.com/tsawler/slidegen/config"
	"github.com/tsawler/slidegen/pptx"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestIndexing_Defaults(t *testing.T) {
	j := Indexing()
	if j.options.output != composer.DefaultOutput {
		t.Errorf("output = %q, want %q", j.options.output, composer.DefaultOutput)
	}
	if j.options.verify || len(j.options.previews) != 0 {
		t.Error("default job should not verify or write previews")
	}
	if j.options.stdout != os.Stdout {
		t.Error("default stdout should be os.Stdout")
	}
}

func TestJob_Immutability(t *testing.T) {
	base := Indexing().PNG("a.png")
	withHTML := base.HTML("a.html")
	withVerify := base.Verify()

	if len(base.options.previews) != 1 {
		t.Errorf("base previews = %d, want 1", len(base.options.previews))
	}
	if len(withHTML.options.previews) != 2 {
		t.Errorf("withHTML previews = %d, want 2", len(withHTML.options.previews))
	}
	if base.options.verify {
		t.Error("Verify() modified the original job")
	}
	if !withVerify.options.verify {
		t.Error("Verify() not applied")
	}

	// Appending to one branch must not leak into a sibling branch.
	a := base.Thumbnail("t1.png", 100)
	b := base.Thumbnail("t2.png", 100)
	if a.options.previews[1].path != "t1.png" || b.options.previews[1].path != "t2.png" {
		t.Error("sibling jobs share a preview slice")
	}
}

func TestJob_Run(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "deck.pptx")
	var stdout bytes.Buffer

	res, err := Indexing().
		Output(out).
		Stdout(&stdout).
		Modified(fixedTime).
		Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Path != out {
		t.Errorf("Path = %q, want %q", res.Path, out)
	}
	if got, want := stdout.String(), "Saved "+out+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if res.Report != nil {
		t.Error("Report set without Verify()")
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output is empty")
	}
}

func TestJob_RunWithPreviews(t *testing.T) {
	dir := t.TempDir()
	path := func(name string) string { return filepath.Join(dir, name) }

	res, err := Indexing().
		Output(path("deck.pptx")).
		Stdout(nil).
		Width(640).
		PNG(path("slide.png")).
		Thumbnail(path("thumb.jpg"), 160).
		HTML(path("slide.html")).
		Verify().
		Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := []string{path("slide.png"), path("thumb.jpg"), path("slide.html")}
	if diff := cmp.Diff(want, res.Previews); diff != "" {
		t.Errorf("Previews mismatch (-want +got):\n%s", diff)
	}
	if res.Report == nil || !res.Report.OK() {
		t.Errorf("Report = %+v, want OK", res.Report)
	}

	sizes := map[string]image.Point{
		"slide.png": {640, 360},
		"thumb.jpg": {160, 90},
	}
	for name, size := range sizes {
		f, err := os.Open(path(name))
		if err != nil {
			t.Fatalf("Failed to open %s: %v", name, err)
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("Failed to decode %s: %v", name, err)
		}
		if cfg.Width != size.X || cfg.Height != size.Y {
			t.Errorf("%s is %dx%d, want %dx%d", name, cfg.Width, cfg.Height, size.X, size.Y)
		}
	}

	page, err := os.ReadFile(path("slide.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), composer.SubtitleText) {
		t.Error("HTML preview is missing the subtitle text")
	}
}

func TestJob_RunErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "deck.pptx")

	tests := []struct {
		name string
		job  *Job
		want string
	}{
		{"bad width", Indexing().Width(0), "invalid preview width"},
		{"bad thumbnail width", Indexing().Thumbnail("t.png", -5), "invalid thumbnail width"},
		{"output not pptx", Indexing().Output(filepath.Join(dir, "deck.pdf")), "not a .pptx path"},
		{"unsupported preview", Indexing().Output(out).PNG(filepath.Join(dir, "slide.gif")), "unsupported format"},
		{"html thumbnail", Indexing().Output(out).Thumbnail(filepath.Join(dir, "t.html"), 10), "unsupported format"},
		{"duplicate path", Indexing().Output(out).PNG(filepath.Join(dir, "a.png")).PNG(filepath.Join(dir, "a.png")), "path used twice"},
		{"preview over output", Indexing().Output(out).HTML(out), "path used twice"},
		{"empty preview path", Indexing().Output(out).HTML(""), "empty preview path"},
		{"missing directory", Indexing().Output(filepath.Join(dir, "no", "deck.pptx")).Stdout(nil), "saving"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.job.Run(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Run() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}

	// Validation happens before anything is written.
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite invalid job: %v", err)
	}
}

func TestJob_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "deck.pptx")
	_, err := Indexing().Output(out).Stdout(nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestJob_RunDeterministic(t *testing.T) {
	dir := t.TempDir()
	var files [2][]byte
	for i := range files {
		out := filepath.Join(dir, "deck.pptx")
		Must(Indexing().Output(out).Stdout(nil).Modified(fixedTime).Run(context.Background()))

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		files[i] = data
	}
	if !bytes.Equal(files[0], files[1]) {
		t.Error("two runs with the same timestamp differ")
	}
}

func TestJob_Author(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pptx")
	Must(Indexing().Output(out).Author("Équipe données").Stdout(nil).Run(context.Background()))

	r, err := pptx.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if got := r.Metadata().Author; got != "Équipe données" {
		t.Errorf("Author = %q", got)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Output.Path = "out.pptx"
	cfg.Output.Author = "A"
	cfg.Preview.PNG = "p.png"
	cfg.Preview.HTML = "p.html"
	cfg.Preview.Thumbnail = "t.png"
	cfg.Preview.ThumbnailWidth = 100
	cfg.Preview.Width = 800
	cfg.Verify = true

	j := FromConfig(cfg)
	if j.err != nil {
		t.Fatalf("FromConfig() error: %v", j.err)
	}

	want := []previewTarget{
		{path: "p.png"},
		{path: "p.html"},
		{path: "t.png", width: 100, thumb: true},
	}
	if diff := cmp.Diff(want, j.options.previews, cmp.AllowUnexported(previewTarget{})); diff != "" {
		t.Errorf("previews mismatch (-want +got):\n%s", diff)
	}
	if j.options.output != "out.pptx" || j.options.author != "A" || j.options.width != 800 || !j.options.verify {
		t.Errorf("options = %+v", j.options)
	}

	if got := FromConfig(nil).options.output; got != composer.DefaultOutput {
		t.Errorf("FromConfig(nil) output = %q", got)
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
