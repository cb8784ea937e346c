package model

import (
	"math"
	"testing"
)

// ============================================================================
// Unit Tests
// ============================================================================

func TestInches(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want EMU
	}{
		{"zero", 0, 0},
		{"one inch", 1, 914400},
		{"slide height", 7.5, 6858000},
		{"wide slide width truncates", 13.333, 12191695},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inches(tt.in); got != tt.want {
				t.Errorf("Inches(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	if got := Points(44); got != 558800 {
		t.Errorf("Points(44) = %d, want 558800", got)
	}
	if got := EMU(558800).Points(); got != 44 {
		t.Errorf("Points() = %v, want 44", got)
	}
}

func TestEMUInches(t *testing.T) {
	got := Inches(13.333).Inches()
	if math.Abs(got-13.333) > 1.0/float64(EMUPerInch) {
		t.Errorf("round trip = %v, want 13.333", got)
	}
}

// ============================================================================
// Color Tests
// ============================================================================

func TestColorHex(t *testing.T) {
	c := RGB(0x2F, 0x6F, 0x5E)
	if got := c.Hex(); got != "2F6F5E" {
		t.Errorf("Hex() = %q, want %q", got, "2F6F5E")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"2F6F5E", RGB(0x2F, 0x6F, 0x5E), false},
		{"#2e2e2e", RGB(0x2E, 0x2E, 0x2E), false},
		{"FFF", Color{}, true},
		{"GGGGGG", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	got := RGB(1, 2, 3).RGBA()
	if got.R != 1 || got.G != 2 || got.B != 3 || got.A != 0xFF {
		t.Errorf("RGBA() = %+v", got)
	}
}

// ============================================================================
// Rect Tests
// ============================================================================

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("edges = (%d, %d), want (110, 70)", r.Right(), r.Bottom())
	}
}

func TestRectRelations(t *testing.T) {
	a := NewRect(0, 0, 100, 100)
	tests := []struct {
		name       string
		b          Rect
		contains   bool
		intersects bool
		overlaps   bool
	}{
		{"inside", NewRect(10, 10, 20, 20), true, true, true},
		{"partial", NewRect(50, 50, 100, 100), false, true, true},
		{"touching edge", NewRect(100, 0, 10, 10), false, true, false},
		{"disjoint", NewRect(200, 200, 10, 10), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.b); got != tt.contains {
				t.Errorf("Contains() = %v, want %v", got, tt.contains)
			}
			if got := a.Intersects(tt.b); got != tt.intersects {
				t.Errorf("Intersects() = %v, want %v", got, tt.intersects)
			}
			if got := a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps() = %v, want %v", got, tt.overlaps)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("zero width should be empty")
	}
	if NewRect(0, 0, 1, 1).IsEmpty() {
		t.Error("1x1 should not be empty")
	}
}

// ============================================================================
// Canvas Tests
// ============================================================================

func TestCanvasTextRegion(t *testing.T) {
	c := NewCanvas(Inches(10), Inches(7.5))
	tb := c.AddTextRegion("Body", NewRect(0, 0, Inches(5), Inches(2)))

	if tb.Kind() != RegionText {
		t.Errorf("Kind() = %v, want Text", tb.Kind())
	}
	if len(tb.Paragraphs()) != 1 {
		t.Fatalf("new region has %d paragraphs, want 1", len(tb.Paragraphs()))
	}

	tb.FirstParagraph().Text = "one"
	tb.AddParagraph().Text = "two"

	if got := tb.Text(); got != "one\ntwo" {
		t.Errorf("Text() = %q", got)
	}
	if c.Region("Body") != tb {
		t.Error("Region(\"Body\") did not return the text region")
	}
	if c.Region("missing") != nil {
		t.Error("Region(\"missing\") should be nil")
	}
}

func TestCanvasShapeRegion(t *testing.T) {
	c := NewCanvas(Inches(10), Inches(7.5))
	s := c.AddShapeRegion("Bar", GeometryRect, NewRect(0, 0, Inches(5), Inches(0.1)))
	if s.Fill != nil || s.Line != nil {
		t.Error("new shape should have no fill or line")
	}
	s.SetFill(RGB(1, 2, 3))
	s.SetLine(RGB(4, 5, 6))
	if s.Fill.Hex() != "010203" || s.Line.Hex() != "040506" {
		t.Errorf("fill/line = %s/%s", s.Fill.Hex(), s.Line.Hex())
	}
	if len(c.TextRegions()) != 0 {
		t.Error("TextRegions() should skip shapes")
	}
}

func TestCanvasOverlaps(t *testing.T) {
	c := NewCanvas(Inches(10), Inches(7.5))
	a := c.AddTextRegion("A", NewRect(0, 0, 100, 100))
	c.AddTextRegion("B", NewRect(500, 500, 10, 10))
	s := c.AddShapeRegion("C", GeometryRect, NewRect(50, 50, 100, 100))

	overlaps := c.Overlaps()
	if len(overlaps) != 1 {
		t.Fatalf("Overlaps() returned %d pairs, want 1", len(overlaps))
	}
	if overlaps[0].A != Region(a) || overlaps[0].B != Region(s) {
		t.Errorf("unexpected pair %s/%s", overlaps[0].A.Name(), overlaps[0].B.Name())
	}
}

func TestParagraphSetColor(t *testing.T) {
	var p Paragraph
	p.SetColor(RGB(0x2E, 0x2E, 0x2E))
	if p.Color == nil || p.Color.Hex() != "2E2E2E" {
		t.Errorf("Color = %v", p.Color)
	}
}

func TestAlignmentString(t *testing.T) {
	if AlignLeft.String() != "left" || AlignCenter.String() != "center" {
		t.Error("unexpected alignment names")
	}
}
