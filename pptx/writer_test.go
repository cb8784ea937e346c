package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/slidegen/model"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// sampleCanvas builds a canvas with one of each region kind.
func sampleCanvas() *model.Canvas {
	c := model.NewCanvas(model.Inches(13.333), model.Inches(7.5))
	c.Properties = model.Properties{Title: "Sample", Author: "Tester", Subject: "Writer"}

	title := c.AddTextRegion("Title", model.NewRect(model.Inches(1), model.Inches(0.4), model.Inches(11), model.Inches(1)))
	p := title.FirstParagraph()
	p.Text = "De\u0301cisions"
	p.Size = 44
	p.Bold = true
	p.Alignment = model.AlignCenter
	p.SetColor(model.RGB(0x2F, 0x6F, 0x5E))

	bar := c.AddShapeRegion("Separator", model.GeometryRect, model.NewRect(model.Inches(1), model.Inches(1.5), model.Inches(11), model.Inches(0.05)))
	bar.SetFill(model.RGB(0x2F, 0x6F, 0x5E))

	body := c.AddTextRegion("Bullets", model.NewRect(model.Inches(1), model.Inches(2), model.Inches(11), model.Inches(4)))
	body.WordWrap = true
	body.FirstParagraph().Text = "first"
	second := body.AddParagraph()
	second.Text = "second"
	second.Size = 18.5
	second.Level = 1

	return c
}

func writeSample(t *testing.T, opts WriteOptions) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, sampleCanvas(), opts); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	return buf.Bytes()
}

func TestWrite_RoundTrip(t *testing.T) {
	data := writeSample(t, WriteOptions{Language: "fr-FR", Modified: fixedTime})

	r, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}

	if r.SlideCount() != 1 {
		t.Fatalf("SlideCount() = %d, want 1", r.SlideCount())
	}
	w, h := r.SlideSize()
	if w != 12191695 || h != 6858000 {
		t.Errorf("SlideSize() = (%d, %d)", w, h)
	}

	s, _ := r.Slide(0)
	if s.Title != "D\u00e9cisions" {
		t.Errorf("Title = %q, want NFC composed text", s.Title)
	}

	title := s.Block("Title")
	if title == nil {
		t.Fatal("title block missing")
	}
	if !title.IsTextBox || title.WordWrap {
		t.Errorf("title IsTextBox=%v WordWrap=%v", title.IsTextBox, title.WordWrap)
	}
	if title.X != int64(model.Inches(1)) || title.Height != int64(model.Inches(1)) {
		t.Errorf("title geometry = %+v", title)
	}
	run := title.Paragraphs[0].Runs[0]
	if !run.Bold || run.FontSize != 4400 || run.Color != "2F6F5E" {
		t.Errorf("title run = %+v", run)
	}
	if title.Paragraphs[0].Alignment != "ctr" {
		t.Errorf("title alignment = %q, want ctr", title.Paragraphs[0].Alignment)
	}

	body := s.Block("Bullets")
	if body == nil || !body.WordWrap {
		t.Fatalf("body block = %+v, want word-wrapped block", body)
	}
	if body.Text != "first\nsecond" {
		t.Errorf("body text = %q", body.Text)
	}
	if got := body.Paragraphs[1]; got.Level != 1 || got.Runs[0].FontSize != 1850 {
		t.Errorf("second paragraph = %+v", got)
	}
	if body.Paragraphs[0].Runs[0].Bold {
		t.Error("unset bold should read back false")
	}

	bar := s.Shape("Separator")
	if bar == nil {
		t.Fatal("separator shape missing")
	}
	if bar.Fill != "2F6F5E" || bar.Line != "" || bar.Geometry != "rect" {
		t.Errorf("separator = %+v", *bar)
	}

	meta := r.Metadata()
	if meta.Title != "Sample" || meta.Author != "Tester" || meta.Subject != "Writer" {
		t.Errorf("Metadata() = %+v", meta)
	}
	if meta.Creator != DefaultApplication || meta.Slides != 1 {
		t.Errorf("Creator/Slides = %q/%d", meta.Creator, meta.Slides)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	opts := WriteOptions{Language: "fr-FR", Modified: fixedTime}
	a := writeSample(t, opts)
	b := writeSample(t, opts)

	if !bytes.Equal(a, b) {
		t.Error("two writes with the same options differ")
	}
}

func TestWrite_PackageLayout(t *testing.T) {
	data := writeSample(t, WriteOptions{Modified: fixedTime})

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() failed: %v", err)
	}

	if zr.File[0].Name != partContentTypes {
		t.Errorf("first entry = %q, want %q", zr.File[0].Name, partContentTypes)
	}

	names := make(map[string]*zip.File)
	for _, f := range zr.File {
		names[f.Name] = f
		if !f.Modified.Equal(fixedTime) {
			t.Errorf("%s modified = %v, want %v", f.Name, f.Modified, fixedTime)
		}
	}

	for _, want := range []string{
		partRootRels, partCoreProps, partAppProps, partPresentation, partPresRels,
		partTheme, partMaster, partMasterRels, partLayout, partLayoutRels,
		partSlide, partSlideRels,
	} {
		if names[want] == nil {
			t.Errorf("missing part %s", want)
		}
	}

	types := readEntry(t, names[partContentTypes])
	for _, want := range []string{`PartName="/ppt/slides/slide1.xml"`, ctSlide, ctMaster, `Extension="rels"`} {
		if !strings.Contains(types, want) {
			t.Errorf("[Content_Types].xml missing %s", want)
		}
	}
	if strings.Contains(types, `PartName="/_rels/.rels"`) {
		t.Error("relationship parts should use the default content type")
	}

	slide := readEntry(t, names[partSlide])
	for _, want := range []string{`<p:sld xmlns:a=`, `txBox="1"`, `wrap="none"`, `wrap="square"`, `<a:spAutoFit>`, `<a:endParaRPr`} {
		if !strings.Contains(slide, want) {
			t.Errorf("slide1.xml missing %s", want)
		}
	}

	core := readEntry(t, names[partCoreProps])
	if !strings.Contains(core, "2024-03-01T09:30:00Z") {
		t.Errorf("core.xml missing fixed timestamp: %s", core)
	}
}

func readEntry(t *testing.T, f *zip.File) string {
	t.Helper()
	if f == nil {
		t.Fatal("entry missing")
	}
	rc, err := f.Open()
	if err != nil {
		t.Fatalf("opening %s: %v", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading %s: %v", f.Name, err)
	}
	return string(data)
}

func TestWrite_NilCanvas(t *testing.T) {
	if err := Write(io.Discard, nil, WriteOptions{}); err == nil {
		t.Error("Write(nil) expected error")
	}
}

func TestWrite_EmptyCanvas(t *testing.T) {
	var buf bytes.Buffer
	c := model.NewCanvas(model.Inches(10), model.Inches(7.5))
	if err := Write(&buf, c, WriteOptions{}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	r, err := OpenReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	s, _ := r.Slide(0)
	if len(s.Content) != 0 || len(s.Shapes) != 0 {
		t.Errorf("empty canvas produced %d blocks and %d shapes", len(s.Content), len(s.Shapes))
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pptx")

	if err := WriteFile(path, sampleCanvas(), WriteOptions{Modified: fixedTime}); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the output", len(entries))
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()
	if r.SlideCount() != 1 {
		t.Errorf("SlideCount() = %d, want 1", r.SlideCount())
	}
}

func TestWriteFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pptx")
	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, sampleCanvas(), WriteOptions{Modified: fixedTime}); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	want := writeSample(t, WriteOptions{Modified: fixedTime})
	if !bytes.Equal(got, want) {
		t.Error("overwritten file does not match a fresh write")
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.pptx")
	if err := WriteFile(path, sampleCanvas(), WriteOptions{}); err == nil {
		t.Error("WriteFile() expected error for missing directory")
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		pt   float64
		want int
	}{
		{0, 0},
		{-3, 0},
		{18, 1800},
		{10.5, 1050},
		{44, 4400},
	}

	for _, tt := range tests {
		if got := fontSize(tt.pt); got != tt.want {
			t.Errorf("fontSize(%v) = %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestAlignment(t *testing.T) {
	tests := map[model.Alignment]string{
		model.AlignLeft:    "",
		model.AlignCenter:  "ctr",
		model.AlignRight:   "r",
		model.AlignJustify: "just",
	}

	for a, want := range tests {
		if got := alignment(a); got != want {
			t.Errorf("alignment(%v) = %q, want %q", a, got, want)
		}
	}
}

func TestShapeName(t *testing.T) {
	if got := shapeName(3, "", "TextBox"); got != "TextBox 2" {
		t.Errorf("shapeName fallback = %q", got)
	}
	if got := shapeName(3, "Footer", "TextBox"); got != "Footer" {
		t.Errorf("shapeName = %q", got)
	}
}
