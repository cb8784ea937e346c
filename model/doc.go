// Package model provides the in-memory representation of a slide before it is
// serialized.
//
// A [Canvas] is a fixed-size page holding an ordered list of [Region] values.
// Regions are drawn in insertion order, so later regions sit on top of earlier
// ones. Two region kinds exist:
//
//   - [TextRegion] - a positioned text box holding [Paragraph] values
//   - [ShapeRegion] - a filled preset shape used for decoration
//
// # Units
//
// All positions and sizes are expressed in English Metric Units ([EMU]), the
// unit used by Office Open XML. Use [Inches] and [Points] to build lengths:
//
//	c := model.NewCanvas(model.Inches(13.333), model.Inches(7.5))
//	tb := c.AddTextRegion("Title", model.NewRect(
//	    model.Inches(1), model.Inches(0.4), model.Inches(11.333), model.Inches(1)))
//	p := tb.FirstParagraph()
//	p.Text = "Hello"
//	p.Size = 44
//
// # Geometry
//
// [Rect] carries the absolute placement of a region and offers containment and
// intersection helpers. No layout is computed: regions may overlap and text may
// exceed its box.
package model
