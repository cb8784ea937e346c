package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/slidegen/model"
)

// DefaultApplication is written to docProps/app.xml when none is given.
const DefaultApplication = "slidegen"

// WriteOptions controls package metadata.
type WriteOptions struct {
	Application string    // Producing application name
	Language    string    // BCP 47 tag written on every run, e.g. "fr-FR"
	Modified    time.Time // Timestamp for core properties and ZIP entries; zero means now
}

// part is a single file inside the package.
type part struct {
	name        string
	contentType string
	data        []byte
}

// WriteFile writes the canvas as a one-slide presentation at path. The file
// is written next to its destination and renamed into place.
func WriteFile(path string, c *model.Canvas, opts WriteOptions) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".slidegen-*.pptx")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, c, opts); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// Write encodes the canvas as a one-slide presentation package.
func Write(w io.Writer, c *model.Canvas, opts WriteOptions) error {
	if c == nil {
		return fmt.Errorf("nil canvas")
	}
	if opts.Application == "" {
		opts.Application = DefaultApplication
	}
	if opts.Modified.IsZero() {
		opts.Modified = time.Now()
	}
	opts.Modified = opts.Modified.UTC().Truncate(time.Second)

	parts, err := buildParts(c, opts)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: opts.Modified,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing ZIP archive: %w", err)
	}
	return nil
}

// buildParts renders every package part. [Content_Types].xml comes first.
func buildParts(c *model.Canvas, opts WriteOptions) ([]part, error) {
	slide, err := encodeXML(buildSlide(c, opts))
	if err != nil {
		return nil, fmt.Errorf("encoding slide: %w", err)
	}
	pres, err := encodeXML(buildPresentation(c))
	if err != nil {
		return nil, fmt.Errorf("encoding presentation: %w", err)
	}
	core, err := encodeXML(buildCoreProps(c, opts))
	if err != nil {
		return nil, fmt.Errorf("encoding core properties: %w", err)
	}
	app, err := encodeXML(appPropsOut{
		Application:        opts.Application,
		PresentationFormat: "Custom",
		Slides:             1,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding app properties: %w", err)
	}

	parts := []part{
		{name: partRootRels, data: mustRels(
			relationshipOut{ID: "rId1", Type: relOfficeDocument, Target: partPresentation},
			relationshipOut{ID: "rId2", Type: relCoreProps, Target: partCoreProps},
			relationshipOut{ID: "rId3", Type: relExtendedProps, Target: partAppProps},
		)},
		{name: partCoreProps, contentType: ctCoreProps, data: core},
		{name: partAppProps, contentType: ctAppProps, data: app},
		{name: partPresentation, contentType: ctPresentation, data: pres},
		{name: partPresRels, data: mustRels(
			relationshipOut{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"},
			relationshipOut{ID: "rId2", Type: relSlide, Target: "slides/slide1.xml"},
			relationshipOut{ID: "rId3", Type: relTheme, Target: "theme/theme1.xml"},
			relationshipOut{ID: "rId4", Type: relPresProps, Target: "presProps.xml"},
			relationshipOut{ID: "rId5", Type: relViewProps, Target: "viewProps.xml"},
			relationshipOut{ID: "rId6", Type: relTableStyles, Target: "tableStyles.xml"},
		)},
		{name: partPresProps, contentType: ctPresProps, data: []byte(presPropsXML)},
		{name: partViewProps, contentType: ctViewProps, data: []byte(viewPropsXML)},
		{name: partTableStyles, contentType: ctTableStyles, data: []byte(tableStylesXML)},
		{name: partTheme, contentType: ctTheme, data: []byte(themeXML)},
		{name: partMaster, contentType: ctMaster, data: []byte(masterXML)},
		{name: partMasterRels, data: mustRels(
			relationshipOut{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			relationshipOut{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
		)},
		{name: partLayout, contentType: ctLayout, data: []byte(layoutXML)},
		{name: partLayoutRels, data: mustRels(
			relationshipOut{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		)},
		{name: partSlide, contentType: ctSlide, data: slide},
		{name: partSlideRels, data: mustRels(
			relationshipOut{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		)},
	}

	types, err := encodeXML(buildContentTypes(parts))
	if err != nil {
		return nil, fmt.Errorf("encoding content types: %w", err)
	}
	return append([]part{{name: partContentTypes, data: types}}, parts...), nil
}

// encodeXML marshals v behind the standalone XML declaration.
func encodeXML(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), body...), nil
}

// mustRels encodes a relationships part. The input is fixed, so failure is
// a programming error.
func mustRels(rels ...relationshipOut) []byte {
	data, err := encodeXML(relationshipsOut{Relationship: rels})
	if err != nil {
		panic(err)
	}
	return data
}

func buildContentTypes(parts []part) typesOut {
	types := typesOut{
		Default: []defaultOut{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
	}
	for _, p := range parts {
		if p.contentType == "" {
			continue
		}
		types.Override = append(types.Override, overrideOut{
			PartName:    "/" + p.name,
			ContentType: p.contentType,
		})
	}
	return types
}

func buildPresentation(c *model.Canvas) presentationOut {
	return presentationOut{
		nsDecl:          presentationNS(),
		SaveSubsetFonts: "1",
		SldMasterIDLst:  idListOut{ID: []idRefOut{{ID: 2147483648, RID: "rId1"}}},
		SldIDLst:        slideIDLstOut{ID: []idRefOut{{ID: 256, RID: "rId2"}}},
		SldSz:           sldSzOut{Cx: int64(c.Width), Cy: int64(c.Height)},
		NotesSz:         extOut{Cx: 6858000, Cy: 9144000},
	}
}

func buildCoreProps(c *model.Canvas, opts WriteOptions) corePropsOut {
	stamp := opts.Modified.Format(time.RFC3339)
	return corePropsOut{
		XmlnsCP:        nsCoreProps,
		XmlnsDC:        "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:   "http://purl.org/dc/terms/",
		XmlnsDCMIType:  "http://purl.org/dc/dcmitype/",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          nfc(c.Properties.Title),
		Subject:        nfc(c.Properties.Subject),
		Creator:        nfc(c.Properties.Author),
		LastModifiedBy: nfc(c.Properties.Author),
		Revision:       1,
		Created:        w3cdtfOut{Type: "dcterms:W3CDTF", Value: stamp},
		Modified:       w3cdtfOut{Type: "dcterms:W3CDTF", Value: stamp},
	}
}

// buildSlide converts regions to shapes in z-order. Shape id 1 is the tree.
func buildSlide(c *model.Canvas, opts WriteOptions) sldOut {
	sld := sldOut{nsDecl: presentationNS()}
	sld.CSld.SpTree.NvGrpSpPr.CNvPr = cNvPrOut{ID: 1, Name: ""}

	for i, region := range c.Regions() {
		id := i + 2
		switch r := region.(type) {
		case *model.TextRegion:
			sld.CSld.SpTree.Sp = append(sld.CSld.SpTree.Sp, textBoxShape(id, r, opts))
		case *model.ShapeRegion:
			sld.CSld.SpTree.Sp = append(sld.CSld.SpTree.Sp, autoShape(id, r))
		}
	}
	return sld
}

func shapeName(id int, name, fallback string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s %d", fallback, id-1)
}

func xfrm(r model.Rect) xfrmOut {
	return xfrmOut{
		Off: offOut{X: int64(r.X), Y: int64(r.Y)},
		Ext: extOut{Cx: int64(r.Width), Cy: int64(r.Height)},
	}
}

func solidFill(c *model.Color) *solidFillOut {
	if c == nil {
		return nil
	}
	return &solidFillOut{SrgbClr: srgbClrOut{Val: c.Hex()}}
}

func textBoxShape(id int, t *model.TextRegion, opts WriteOptions) spOut {
	body := &txBodyOut{
		BodyPr: bodyPrOut{Wrap: "none", RtlCol: "0", SpAutoFit: &struct{}{}},
	}
	if t.WordWrap {
		body.BodyPr.Wrap = "square"
	}
	for _, p := range t.Paragraphs() {
		body.P = append(body.P, paragraph(p, opts))
	}

	return spOut{
		NvSpPr: nvSpPrOut{
			CNvPr:   cNvPrOut{ID: id, Name: shapeName(id, t.Name(), "TextBox")},
			CNvSpPr: cNvSpPrOut{TxBox: "1"},
		},
		SpPr: spPrOut{
			Xfrm:     xfrm(t.Bounds()),
			PrstGeom: prstGeomOut{Prst: string(model.GeometryRect)},
			NoFill:   &struct{}{},
		},
		TxBody: body,
	}
}

func autoShape(id int, s *model.ShapeRegion) spOut {
	geom := s.Geometry
	if geom == "" {
		geom = model.GeometryRect
	}

	sp := spOut{
		NvSpPr: nvSpPrOut{
			CNvPr: cNvPrOut{ID: id, Name: shapeName(id, s.Name(), "Shape")},
		},
		SpPr: spPrOut{
			Xfrm:     xfrm(s.Bounds()),
			PrstGeom: prstGeomOut{Prst: string(geom)},
		},
		TxBody: &txBodyOut{
			BodyPr: bodyPrOut{RtlCol: "0", Anchor: "ctr"},
			P:      []pOut{{PPr: &pPrOut{Algn: "ctr"}}},
		},
	}
	if s.Fill != nil {
		sp.SpPr.SolidFill = solidFill(s.Fill)
	} else {
		sp.SpPr.NoFill = &struct{}{}
	}
	if s.Line != nil {
		sp.SpPr.Ln = &lnOut{SolidFill: solidFill(s.Line)}
	} else {
		sp.SpPr.Ln = &lnOut{NoFill: &struct{}{}}
	}
	return sp
}

func paragraph(p *model.Paragraph, opts WriteOptions) pOut {
	out := pOut{}

	algn := alignment(p.Alignment)
	if algn != "" || p.Level > 0 {
		out.PPr = &pPrOut{Lvl: p.Level, Algn: algn}
	}

	rpr := rPrOut{
		Lang:      opts.Language,
		Sz:        fontSize(p.Size),
		SolidFill: solidFill(p.Color),
	}
	if p.Bold {
		rpr.B = "1"
	}

	if p.Text == "" {
		out.EndParaRPr = &rpr
		return out
	}
	rpr.Dirty = "0"
	out.R = []rOut{{RPr: rpr, T: nfc(p.Text)}}
	return out
}

// alignment maps to the algn attribute; left is the default and is omitted.
func alignment(a model.Alignment) string {
	switch a {
	case model.AlignCenter:
		return "ctr"
	case model.AlignRight:
		return "r"
	case model.AlignJustify:
		return "just"
	default:
		return ""
	}
}

// fontSize converts points to the hundredths used by sz.
func fontSize(pt float64) int {
	if pt <= 0 {
		return 0
	}
	return int(math.Round(pt * 100))
}

func nfc(s string) string {
	return norm.NFC.String(s)
}
