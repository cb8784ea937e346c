package pptx

import (
	"github.com/tsawler/slidegen/model"
)

// Canvas rebuilds a drawable canvas from the slide at index, sized like the
// presentation. Shapes are placed below text, and each paragraph takes its
// formatting from its first run.
func (r *Reader) Canvas(index int) (*model.Canvas, error) {
	slide, err := r.Slide(index)
	if err != nil {
		return nil, err
	}

	w, h := r.SlideSize()
	c := model.NewCanvas(model.EMU(w), model.EMU(h))
	if meta := r.Metadata(); meta.Title != "" {
		c.Properties.Title = meta.Title
	} else {
		c.Properties.Title = slide.Title
	}

	for _, s := range slide.Shapes {
		geom := model.Geometry(s.Geometry)
		if geom == "" {
			geom = model.GeometryRect
		}
		region := c.AddShapeRegion(s.Name, geom, model.NewRect(model.EMU(s.X), model.EMU(s.Y), model.EMU(s.Width), model.EMU(s.Height)))
		if col, err := model.ParseHex(s.Fill); err == nil {
			region.SetFill(col)
		}
		if col, err := model.ParseHex(s.Line); err == nil {
			region.SetLine(col)
		}
	}

	for _, b := range slide.Content {
		region := c.AddTextRegion(b.Name, model.NewRect(model.EMU(b.X), model.EMU(b.Y), model.EMU(b.Width), model.EMU(b.Height)))
		region.WordWrap = b.WordWrap
		for i, para := range b.Paragraphs {
			p := region.FirstParagraph()
			if i > 0 {
				p = region.AddParagraph()
			}
			applyParagraph(p, para)
		}
	}

	return c, nil
}

func applyParagraph(p *model.Paragraph, para Paragraph) {
	p.Text = para.Text
	p.Level = para.Level

	switch para.Alignment {
	case "ctr":
		p.Alignment = model.AlignCenter
	case "r":
		p.Alignment = model.AlignRight
	case "just":
		p.Alignment = model.AlignJustify
	}

	if len(para.Runs) == 0 {
		return
	}
	run := para.Runs[0]
	p.Bold = run.Bold
	if run.FontSize > 0 {
		p.Size = float64(run.FontSize) / 100
	}
	if col, err := model.ParseHex(run.Color); err == nil {
		p.SetColor(col)
	}
}
