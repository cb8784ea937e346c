package model

// Properties holds document-level metadata written alongside the slide.
type Properties struct {
	Title   string
	Subject string
	Author  string
}

// Canvas is a single fixed-size slide.
type Canvas struct {
	Width      EMU
	Height     EMU
	Properties Properties
	regions    []Region
}

// NewCanvas creates an empty canvas with the given dimensions.
func NewCanvas(width, height EMU) *Canvas {
	return &Canvas{
		Width:   width,
		Height:  height,
		regions: make([]Region, 0),
	}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() Rect {
	return Rect{Width: c.Width, Height: c.Height}
}

// AddTextRegion adds a text box with one empty paragraph.
func (c *Canvas) AddTextRegion(name string, r Rect) *TextRegion {
	t := &TextRegion{
		name:       name,
		rect:       r,
		paragraphs: []*Paragraph{{}},
	}
	c.regions = append(c.regions, t)
	return t
}

// AddShapeRegion adds a preset shape with no fill and no outline.
func (c *Canvas) AddShapeRegion(name string, geom Geometry, r Rect) *ShapeRegion {
	s := &ShapeRegion{
		name:     name,
		rect:     r,
		Geometry: geom,
	}
	c.regions = append(c.regions, s)
	return s
}

// Regions returns the regions in z-order. The slice must not be modified.
func (c *Canvas) Regions() []Region {
	return c.regions
}

// TextRegions returns only the text regions, in z-order.
func (c *Canvas) TextRegions() []*TextRegion {
	var out []*TextRegion
	for _, r := range c.regions {
		if t, ok := r.(*TextRegion); ok {
			out = append(out, t)
		}
	}
	return out
}

// Region returns the first region with the given name, or nil.
func (c *Canvas) Region(name string) Region {
	for _, r := range c.regions {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Overlap is a pair of regions whose bounds share positive area.
type Overlap struct {
	A, B Region
}

// Overlaps returns every pair of overlapping regions. Nothing is adjusted.
func (c *Canvas) Overlaps() []Overlap {
	var out []Overlap
	for i := 0; i < len(c.regions); i++ {
		for j := i + 1; j < len(c.regions); j++ {
			if c.regions[i].Bounds().Overlaps(c.regions[j].Bounds()) {
				out = append(out, Overlap{A: c.regions[i], B: c.regions[j]})
			}
		}
	}
	return out
}
