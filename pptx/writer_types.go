package pptx

import "encoding/xml"

// The structs below are encoding targets. encoding/xml cannot choose
// prefixes, so element names carry them literally and namespaces are
// declared through xmlns attributes on the root.

type nsDecl struct {
	A string `xml:"xmlns:a,attr"`
	R string `xml:"xmlns:r,attr"`
	P string `xml:"xmlns:p,attr"`
}

func presentationNS() nsDecl {
	return nsDecl{A: nsDrawingML, R: nsRelationships, P: nsPresentationML}
}

// typesOut is [Content_Types].xml.
type typesOut struct {
	XMLName  xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Default  []defaultOut  `xml:"Default"`
	Override []overrideOut `xml:"Override"`
}

type defaultOut struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideOut struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationshipsOut is any *.rels part.
type relationshipsOut struct {
	XMLName      xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationship []relationshipOut `xml:"Relationship"`
}

type relationshipOut struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// presentationOut is ppt/presentation.xml.
type presentationOut struct {
	XMLName xml.Name `xml:"p:presentation"`
	nsDecl
	SaveSubsetFonts string        `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  idListOut     `xml:"p:sldMasterIdLst"`
	SldIDLst        slideIDLstOut `xml:"p:sldIdLst"`
	SldSz           sldSzOut      `xml:"p:sldSz"`
	NotesSz         extOut        `xml:"p:notesSz"`
}

type idListOut struct {
	ID []idRefOut `xml:"p:sldMasterId"`
}

type slideIDLstOut struct {
	ID []idRefOut `xml:"p:sldId"`
}

type idRefOut struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sldSzOut struct {
	Cx   int64  `xml:"cx,attr"`
	Cy   int64  `xml:"cy,attr"`
	Type string `xml:"type,attr,omitempty"`
}

// sldOut is ppt/slides/slideN.xml.
type sldOut struct {
	XMLName xml.Name `xml:"p:sld"`
	nsDecl
	CSld      cSldOut      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrOut `xml:"p:clrMapOvr"`
}

type cSldOut struct {
	SpTree spTreeOut `xml:"p:spTree"`
}

type spTreeOut struct {
	NvGrpSpPr nvGrpSpPrOut `xml:"p:nvGrpSpPr"`
	GrpSpPr   struct{}     `xml:"p:grpSpPr"`
	Sp        []spOut      `xml:"p:sp"`
}

type nvGrpSpPrOut struct {
	CNvPr      cNvPrOut `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type cNvPrOut struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type clrMapOvrOut struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type spOut struct {
	NvSpPr nvSpPrOut  `xml:"p:nvSpPr"`
	SpPr   spPrOut    `xml:"p:spPr"`
	TxBody *txBodyOut `xml:"p:txBody"`
}

type nvSpPrOut struct {
	CNvPr   cNvPrOut   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPrOut `xml:"p:cNvSpPr"`
	NvPr    struct{}   `xml:"p:nvPr"`
}

type cNvSpPrOut struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

// spPrOut children must stay in schema order: xfrm, geometry, fill, line.
type spPrOut struct {
	Xfrm      xfrmOut       `xml:"a:xfrm"`
	PrstGeom  prstGeomOut   `xml:"a:prstGeom"`
	NoFill    *struct{}     `xml:"a:noFill"`
	SolidFill *solidFillOut `xml:"a:solidFill"`
	Ln        *lnOut        `xml:"a:ln"`
}

type xfrmOut struct {
	Off offOut `xml:"a:off"`
	Ext extOut `xml:"a:ext"`
}

type offOut struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extOut struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type prstGeomOut struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type solidFillOut struct {
	SrgbClr srgbClrOut `xml:"a:srgbClr"`
}

type srgbClrOut struct {
	Val string `xml:"val,attr"`
}

type lnOut struct {
	NoFill    *struct{}     `xml:"a:noFill"`
	SolidFill *solidFillOut `xml:"a:solidFill"`
}

type txBodyOut struct {
	BodyPr   bodyPrOut `xml:"a:bodyPr"`
	LstStyle struct{}  `xml:"a:lstStyle"`
	P        []pOut    `xml:"a:p"`
}

type bodyPrOut struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr,omitempty"`
	Anchor    string    `xml:"anchor,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit"`
}

type pOut struct {
	PPr        *pPrOut `xml:"a:pPr"`
	R          []rOut  `xml:"a:r"`
	EndParaRPr *rPrOut `xml:"a:endParaRPr"`
}

type pPrOut struct {
	Lvl  int    `xml:"lvl,attr,omitempty"`
	Algn string `xml:"algn,attr,omitempty"`
}

type rOut struct {
	RPr rPrOut `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

type rPrOut struct {
	Lang      string        `xml:"lang,attr,omitempty"`
	Sz        int           `xml:"sz,attr,omitempty"`
	B         string        `xml:"b,attr,omitempty"`
	Dirty     string        `xml:"dirty,attr,omitempty"`
	SolidFill *solidFillOut `xml:"a:solidFill"`
}

// corePropsOut is docProps/core.xml.
type corePropsOut struct {
	XMLName        xml.Name  `xml:"cp:coreProperties"`
	XmlnsCP        string    `xml:"xmlns:cp,attr"`
	XmlnsDC        string    `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string    `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string    `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string    `xml:"xmlns:xsi,attr"`
	Title          string    `xml:"dc:title,omitempty"`
	Subject        string    `xml:"dc:subject,omitempty"`
	Creator        string    `xml:"dc:creator,omitempty"`
	LastModifiedBy string    `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int       `xml:"cp:revision"`
	Created        w3cdtfOut `xml:"dcterms:created"`
	Modified       w3cdtfOut `xml:"dcterms:modified"`
}

type w3cdtfOut struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropsOut is docProps/app.xml.
type appPropsOut struct {
	XMLName            xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Slides             int      `xml:"Slides"`
	Notes              int      `xml:"Notes"`
}
