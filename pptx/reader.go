package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrNoSlides is returned when a package contains no parseable slide.
var ErrNoSlides = errors.New("no slides found in presentation")

// TitleShapeName is the shape name that marks a free text box as the slide
// title. Text boxes carry no placeholder type, so the name is the only hint.
const TitleShapeName = "Title"

// Reader provides access to PPTX document content.
type Reader struct {
	files        map[string]*zip.File
	closer       io.Closer
	presentation *presentationXML
	slides       []*Slide
	coreProps    *corePropertiesXML
	appProps     *appPropertiesXML
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenReader parses a PPTX package held in memory or any other io.ReaderAt.
// Close is a no-op for readers created this way.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse presentation for slide size
	if err := r.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	// Parse all slides
	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Parse metadata (optional)
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}

	for _, name := range required {
		if r.files[name] == nil {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	for name := range r.files {
		if isSlidePart(name) {
			return nil
		}
	}
	return ErrNoSlides
}

// isSlidePart reports whether a ZIP entry name is a slide part.
func isSlidePart(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml")
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.files[name]
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	return xml.Unmarshal(data, r.presentation)
}

// parseSlides parses all slide files.
func (r *Reader) parseSlides() error {
	slideFiles := make([]string, 0)
	for name := range r.files {
		if isSlidePart(name) {
			slideFiles = append(slideFiles, name)
		}
	}

	// Sort slides by number
	sort.Slice(slideFiles, func(i, j int) bool {
		return extractSlideNumber(slideFiles[i]) < extractSlideNumber(slideFiles[j])
	})

	r.slides = make([]*Slide, 0, len(slideFiles))

	for _, slidePath := range slideFiles {
		slide, err := r.parseSlide(slidePath, len(r.slides))
		if err != nil {
			continue // Skip slides that fail to parse
		}
		r.slides = append(r.slides, slide)
	}

	if len(r.slides) == 0 {
		return ErrNoSlides
	}

	return nil
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseSlide parses a single slide file.
func (r *Reader) parseSlide(slidePath string, index int) (*Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return nil, err
	}

	slide := &Slide{
		Index:   index,
		Content: make([]TextBlock, 0),
	}

	r.extractShapes(sx.CSld.SpTree.Sp, sx.CSld.SpTree.GrpSp, slide)

	return slide, nil
}

// extractShapes collects text blocks and text-less shapes, recursing into groups.
func (r *Reader) extractShapes(sps []spXML, groups []grpSpXML, slide *Slide) {
	for i := range sps {
		block := r.extractTextBlock(&sps[i])
		if block == nil {
			slide.Shapes = append(slide.Shapes, extractShape(&sps[i]))
			continue
		}
		if block.IsTitle && slide.Title == "" {
			slide.Title = block.Text
		}
		slide.Content = append(slide.Content, *block)
	}

	for _, grp := range groups {
		r.extractShapes(grp.Sp, grp.GrpSp, slide)
	}
}

// extractShape reads geometry and fill for a shape without text.
func extractShape(sp *spXML) Shape {
	shape := Shape{Name: sp.NvSpPr.CNvPr.Name}
	if sp.SpPr.Xfrm != nil {
		shape.X = sp.SpPr.Xfrm.Off.X
		shape.Y = sp.SpPr.Xfrm.Off.Y
		shape.Width = sp.SpPr.Xfrm.Ext.Cx
		shape.Height = sp.SpPr.Xfrm.Ext.Cy
	}
	if sp.SpPr.PrstGeom != nil {
		shape.Geometry = sp.SpPr.PrstGeom.Prst
	}
	shape.Fill = fillColor(sp.SpPr.SolidFill)
	if sp.SpPr.Ln != nil {
		shape.Line = fillColor(sp.SpPr.Ln.SolidFill)
	}
	return shape
}

// fillColor returns the sRGB hex of a solid fill, or "" for other fills.
func fillColor(f *solidFillXML) string {
	if f == nil || f.SrgbClr == nil {
		return ""
	}
	return strings.ToUpper(f.SrgbClr.Val)
}

// extractTextBlock extracts text from a shape.
func (r *Reader) extractTextBlock(sp *spXML) *TextBlock {
	if sp.TxBody == nil || len(sp.TxBody.P) == 0 {
		return nil
	}

	block := &TextBlock{
		Name:       sp.NvSpPr.CNvPr.Name,
		IsTextBox:  xmlBool(sp.NvSpPr.CNvSpPr.TxBox),
		WordWrap:   sp.TxBody.BodyPr.Wrap != "none",
		Paragraphs: make([]Paragraph, 0),
	}

	// Check if this is a title placeholder
	if sp.NvSpPr.NvPr.Ph != nil {
		phType := sp.NvSpPr.NvPr.Ph.Type
		block.Placeholder = phType
		block.IsTitle = phType == "title" || phType == "ctrTitle"
		block.IsSubtitle = phType == "subTitle"
	} else {
		block.IsTitle = block.Name == TitleShapeName
	}

	// Get position if available
	if sp.SpPr.Xfrm != nil {
		block.X = sp.SpPr.Xfrm.Off.X
		block.Y = sp.SpPr.Xfrm.Off.Y
		block.Width = sp.SpPr.Xfrm.Ext.Cx
		block.Height = sp.SpPr.Xfrm.Ext.Cy
	}

	// Extract paragraphs
	var allText strings.Builder
	for _, p := range sp.TxBody.P {
		para := r.extractParagraph(&p)
		if para.Text != "" {
			block.Paragraphs = append(block.Paragraphs, para)
			if allText.Len() > 0 {
				allText.WriteString("\n")
			}
			allText.WriteString(para.Text)
		}
	}

	block.Text = allText.String()

	if block.Text == "" {
		return nil
	}

	return block
}

// extractParagraph extracts text and formatting from a paragraph.
func (r *Reader) extractParagraph(p *pXML) Paragraph {
	para := Paragraph{
		Runs: make([]Run, 0),
	}

	// Get paragraph properties
	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Alignment = p.PPr.Algn

		// Check for bullets
		if p.PPr.BuNone == nil {
			if p.PPr.BuAutoNum != nil {
				para.IsNumbered = true
			} else if p.PPr.BuChar != nil {
				para.IsBullet = true
				para.BulletChar = p.PPr.BuChar.Char
			} else if para.Level > 0 {
				// Default to bullet for indented items
				para.IsBullet = true
			}
		}
	}

	// Extract text from runs
	var text strings.Builder
	for _, run := range p.R {
		text.WriteString(run.T)

		runObj := Run{
			Text: run.T,
		}
		if run.RPr != nil {
			runObj.Bold = xmlBool(run.RPr.B)
			runObj.Italic = xmlBool(run.RPr.I)
			runObj.FontSize = run.RPr.Sz
			runObj.Color = fillColor(run.RPr.SolidFill)
		}
		para.Runs = append(para.Runs, runObj)
	}

	// Include field values (like slide numbers)
	for _, fld := range p.Fld {
		text.WriteString(fld.T)
	}

	para.Text = strings.TrimSpace(text.String())
	return para
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.coreProps = props
	}
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	props := &appPropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.appProps = props
	}
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// SlideSize returns the slide width and height in EMUs. Both are zero when
// the presentation does not declare a size.
func (r *Reader) SlideSize() (width, height int64) {
	if r.presentation == nil || r.presentation.SlideSz == nil {
		return 0, 0
	}
	return r.presentation.SlideSz.Cx, r.presentation.SlideSz.Cy
}

// ExtractOptions holds options for text extraction.
type ExtractOptions struct {
	IncludeTitles  bool  // Include slide titles (default: true)
	SlideNumbers   []int // Which slides to include (0-indexed, empty = all)
	ExcludeHeaders bool  // Exclude header placeholders
	ExcludeFooters bool  // Exclude footer placeholders (footer, date, slide number)
}

// isFooterPlaceholder returns true if the placeholder type is a footer element.
// Footer elements include: ftr (footer), dt (date/time), sldNum (slide number).
func isFooterPlaceholder(phType string) bool {
	switch phType {
	case "ftr", "dt", "sldNum":
		return true
	}
	return false
}

// isHeaderPlaceholder returns true if the placeholder type is a header element.
func isHeaderPlaceholder(phType string) bool {
	return phType == "hdr"
}

// selectSlides applies the SlideNumbers filter.
func (r *Reader) selectSlides(opts ExtractOptions) []*Slide {
	if len(opts.SlideNumbers) == 0 {
		return r.slides
	}
	slides := make([]*Slide, 0, len(opts.SlideNumbers))
	for _, idx := range opts.SlideNumbers {
		if idx >= 0 && idx < len(r.slides) {
			slides = append(slides, r.slides[idx])
		}
	}
	return slides
}

// skipBlock reports whether a block is filtered out by the options.
func skipBlock(block TextBlock, opts ExtractOptions) bool {
	if opts.ExcludeFooters && isFooterPlaceholder(block.Placeholder) {
		return true
	}
	return opts.ExcludeHeaders && isHeaderPlaceholder(block.Placeholder)
}

// Text extracts and returns all text content from the presentation.
func (r *Reader) Text() (string, error) {
	return r.TextWithOptions(ExtractOptions{IncludeTitles: true})
}

// TextWithOptions extracts text content with the specified options.
func (r *Reader) TextWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts) {
		if i > 0 {
			result.WriteString("\n\n")
		}

		if opts.IncludeTitles && slide.Title != "" {
			result.WriteString(slide.Title)
			result.WriteString("\n\n")
		}

		for _, block := range slide.Content {
			if block.IsTitle && opts.IncludeTitles {
				continue // Already added
			}
			if skipBlock(block, opts) {
				continue
			}
			for _, para := range block.Paragraphs {
				if para.Text == "" {
					continue
				}
				writeBulletPrefix(&result, para, "• ")
				result.WriteString(para.Text)
				result.WriteString("\n")
			}
		}
	}

	return result.String(), nil
}

// Markdown returns the presentation content as Markdown.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(ExtractOptions{IncludeTitles: true})
}

// MarkdownWithOptions returns presentation content as Markdown with options.
func (r *Reader) MarkdownWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts) {
		if i > 0 {
			result.WriteString("\n---\n\n")
		}

		filtered := *slide
		filtered.Content = make([]TextBlock, 0, len(slide.Content))
		for _, block := range slide.Content {
			if !skipBlock(block, opts) {
				filtered.Content = append(filtered.Content, block)
			}
		}
		result.WriteString(filtered.GetMarkdown())
	}

	return strings.TrimSpace(result.String()), nil
}

// Metadata holds document properties.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string // Producing application
	Slides   int    // Slide count declared in docProps/app.xml
}

// Metadata returns document metadata.
func (r *Reader) Metadata() Metadata {
	meta := Metadata{}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
		meta.Slides = r.appProps.Slides
	}
	return meta
}
