package pptx

import "strings"

// Slide represents a parsed slide.
type Slide struct {
	Index   int         // 0-indexed slide number
	Title   string      // Slide title (title placeholder or text box named "Title")
	Content []TextBlock // Text content in document order
	Shapes  []Shape     // Shapes without text, in document order
}

// TextBlock represents a block of text on a slide.
type TextBlock struct {
	Text        string
	Paragraphs  []Paragraph
	Name        string // Shape name (cNvPr name)
	IsTitle     bool   // Is this the slide title?
	IsSubtitle  bool   // Is this a subtitle?
	IsTextBox   bool   // Free text box rather than a placeholder
	WordWrap    bool   // Body wraps at the shape width
	Placeholder string // Placeholder type (title, body, etc.)
	X, Y        int64  // Position in EMUs
	Width       int64  // Width in EMUs
	Height      int64  // Height in EMUs
}

// Paragraph represents a paragraph within a text block.
type Paragraph struct {
	Text       string
	Level      int    // Bullet/indent level (0 = top level)
	IsBullet   bool   // Has bullet point
	IsNumbered bool   // Is numbered list
	BulletChar string // Bullet character (if custom)
	Alignment  string // l, ctr, r, just
	Runs       []Run  // Text runs with formatting
}

// Run represents a text run with consistent formatting.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	FontSize int    // In hundredths of a point
	Color    string // sRGB hex, empty when inherited
}

// Shape is a drawing element that carries no text, such as a separator bar.
type Shape struct {
	Name     string
	Geometry string // Preset geometry (rect, roundRect, ...)
	Fill     string // Solid fill sRGB hex, empty when none
	Line     string // Outline sRGB hex, empty when none
	X, Y     int64  // Position in EMUs
	Width    int64  // Width in EMUs
	Height   int64  // Height in EMUs
}

// Block returns the first text block with the given shape name, or nil.
func (s *Slide) Block(name string) *TextBlock {
	for i := range s.Content {
		if s.Content[i].Name == name {
			return &s.Content[i]
		}
	}
	return nil
}

// Shape returns the first text-less shape with the given name, or nil.
func (s *Slide) Shape(name string) *Shape {
	for i := range s.Shapes {
		if s.Shapes[i].Name == name {
			return &s.Shapes[i]
		}
	}
	return nil
}

// TitleParagraphs returns the paragraphs of every title block on the slide.
func (s *Slide) TitleParagraphs() []Paragraph {
	var out []Paragraph
	for _, block := range s.Content {
		if block.IsTitle {
			out = append(out, block.Paragraphs...)
		}
	}
	return out
}

// GetText returns all text from the slide as a single string.
func (s *Slide) GetText() string {
	var result strings.Builder

	// Title first
	if s.Title != "" {
		result.WriteString(s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue // Already added
		}
		for _, para := range block.Paragraphs {
			if para.Text == "" {
				continue
			}
			writeBulletPrefix(&result, para, "• ")
			result.WriteString(para.Text + "\n")
		}
		result.WriteString("\n")
	}

	return result.String()
}

// GetMarkdown returns the slide content as markdown.
func (s *Slide) GetMarkdown() string {
	var result strings.Builder

	// Title as H1
	if s.Title != "" {
		result.WriteString("# " + s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue // Already added
		}

		for _, para := range block.Paragraphs {
			if para.Text == "" {
				continue
			}

			if para.IsBullet || para.IsNumbered {
				marker := "- "
				if para.IsNumbered {
					marker = "1. "
				}
				writeBulletPrefix(&result, para, marker)
				result.WriteString(para.Text + "\n")
			} else {
				result.WriteString(para.Text + "\n\n")
			}
		}
	}

	return result.String()
}

// writeBulletPrefix writes level indentation and marker for list paragraphs.
func writeBulletPrefix(b *strings.Builder, para Paragraph, marker string) {
	if !para.IsBullet && !para.IsNumbered {
		return
	}
	b.WriteString(strings.Repeat("  ", para.Level))
	if para.IsBullet && para.BulletChar != "" && marker == "• " {
		marker = para.BulletChar + " "
	}
	b.WriteString(marker)
}
