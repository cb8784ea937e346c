package model

// RegionKind identifies the concrete type of a Region.
type RegionKind int

const (
	RegionText RegionKind = iota
	RegionShape
)

func (k RegionKind) String() string {
	switch k {
	case RegionText:
		return "Text"
	case RegionShape:
		return "Shape"
	default:
		return "Unknown"
	}
}

// Region is a positioned child of a Canvas.
type Region interface {
	Kind() RegionKind
	Name() string
	Bounds() Rect
}

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Paragraph is a single run of uniformly formatted text.
type Paragraph struct {
	Text      string
	Size      float64 // Font size in points; 0 means the viewer default
	Bold      bool
	Color     *Color // nil means the viewer default
	Alignment Alignment
	Level     int // Indent level (0-8)
}

// SetColor sets the paragraph color.
func (p *Paragraph) SetColor(c Color) {
	p.Color = &c
}

// TextRegion is a text box holding an ordered list of paragraphs.
type TextRegion struct {
	name       string
	rect       Rect
	WordWrap   bool
	paragraphs []*Paragraph
}

func (t *TextRegion) Kind() RegionKind { return RegionText }
func (t *TextRegion) Name() string     { return t.name }
func (t *TextRegion) Bounds() Rect     { return t.rect }

// FirstParagraph returns the paragraph created together with the region.
func (t *TextRegion) FirstParagraph() *Paragraph {
	return t.paragraphs[0]
}

// AddParagraph appends an empty paragraph and returns it.
func (t *TextRegion) AddParagraph() *Paragraph {
	p := &Paragraph{}
	t.paragraphs = append(t.paragraphs, p)
	return p
}

// Paragraphs returns the paragraphs in order. The slice must not be modified.
func (t *TextRegion) Paragraphs() []*Paragraph {
	return t.paragraphs
}

// Text returns the paragraph texts joined by newlines.
func (t *TextRegion) Text() string {
	var s string
	for i, p := range t.paragraphs {
		if i > 0 {
			s += "\n"
		}
		s += p.Text
	}
	return s
}

// Geometry names a preset shape outline.
type Geometry string

const (
	GeometryRect      Geometry = "rect"
	GeometryRoundRect Geometry = "roundRect"
	GeometryEllipse   Geometry = "ellipse"
)

// ShapeRegion is a filled preset shape with an outline.
type ShapeRegion struct {
	name     string
	rect     Rect
	Geometry Geometry
	Fill     *Color // nil means no fill
	Line     *Color // nil means no outline
}

func (s *ShapeRegion) Kind() RegionKind { return RegionShape }
func (s *ShapeRegion) Name() string     { return s.name }
func (s *ShapeRegion) Bounds() Rect     { return s.rect }

// SetFill sets a solid fill color.
func (s *ShapeRegion) SetFill(c Color) {
	s.Fill = &c
}

// SetLine sets the outline color.
func (s *ShapeRegion) SetLine(c Color) {
	s.Line = &c
}
