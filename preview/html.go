package preview

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/slidegen/model"
)

// HTML writes the canvas as a standalone HTML page. Regions become
// absolutely positioned boxes scaled to opts.Width pixels.
func HTML(w io.Writer, c *model.Canvas, opts Options) error {
	if c == nil {
		return fmt.Errorf("nil canvas")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errEmptyCanvas
	}

	width := opts.width()
	scale := float64(width) / float64(c.Width)
	px := func(e model.EMU) string {
		return fmt.Sprintf("%.1fpx", float64(e)*scale)
	}

	title := c.Properties.Title
	if title == "" {
		title = "Slide"
	}

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	t := element(atom.Title)
	t.AppendChild(text(title))
	head.AppendChild(t)

	slide := element(atom.Div,
		attr("class", "slide"),
		attr("style", style(
			"position", "relative",
			"width", px(c.Width),
			"height", px(c.Height),
			"background", "#FFFFFF",
			"overflow", "hidden",
			"font-family", "sans-serif",
		)))

	for _, region := range c.Regions() {
		b := region.Bounds()
		box := []string{
			"position", "absolute",
			"left", px(b.X),
			"top", px(b.Y),
			"width", px(b.Width),
			"height", px(b.Height),
			"box-sizing", "border-box",
		}

		switch r := region.(type) {
		case *model.ShapeRegion:
			if r.Fill != nil {
				box = append(box, "background", "#"+r.Fill.Hex())
			}
			if r.Line != nil {
				box = append(box, "border", "1px solid #"+r.Line.Hex())
			}
			if r.Geometry == model.GeometryEllipse {
				box = append(box, "border-radius", "50%")
			}
			slide.AppendChild(element(atom.Div,
				attr("class", "shape"),
				attr("data-name", r.Name()),
				attr("style", style(box...))))

		case *model.TextRegion:
			box = append(box, "padding", px(insetY)+" "+px(insetX))
			if !r.WordWrap {
				box = append(box, "white-space", "nowrap")
			}
			div := element(atom.Div,
				attr("class", "text"),
				attr("data-name", r.Name()),
				attr("style", style(box...)))
			for _, p := range r.Paragraphs() {
				div.AppendChild(paragraphNode(p, scale))
			}
			slide.AppendChild(div)
		}
	}

	body := element(atom.Body, attr("style", "margin:0"))
	body.AppendChild(slide)

	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

func paragraphNode(p *model.Paragraph, scale float64) *html.Node {
	size := p.Size
	if size <= 0 {
		size = 18
	}
	props := []string{
		"margin", "0",
		"font-size", fmt.Sprintf("%.1fpx", size*float64(model.EMUPerPoint)*scale),
		"text-align", p.Alignment.String(),
	}
	if p.Bold {
		props = append(props, "font-weight", "bold")
	}
	if p.Color != nil {
		props = append(props, "color", "#"+p.Color.Hex())
	}
	if p.Level > 0 {
		props = append(props, "margin-left", fmt.Sprintf("%dem", p.Level))
	}

	n := element(atom.P, attr("style", style(props...)))
	if p.Text == "" {
		n.AppendChild(element(atom.Br))
	} else {
		n.AppendChild(text(p.Text))
	}
	return n
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// style joins property/value pairs into a CSS declaration list.
func style(kv ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if b.Len() > 0 {
			b.WriteString(";")
		}
		b.WriteString(kv[i])
		b.WriteString(":")
		b.WriteString(kv[i+1])
	}
	return b.String()
}
