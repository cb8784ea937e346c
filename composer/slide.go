package composer

import "github.com/tsawler/slidegen/model"

// Slide text. The strings are content and are reproduced exactly.
const (
	TitleText    = "Décisions d'Indexation et Performances"
	SubtitleText = "Indexer pour accélérer les requêtes fréquentes et filtrer par proximité/temps/clé."
	FooterText   = "Réduit la latence des queries critiques — équilibre coût d'écriture vs lectures fréquentes."
)

// Bullets returns the recommendation list in display order.
func Bullets() []string {
	return []string{
		"2dsphere : bin.location — recherches géospatiales (proximité des bacs).",
		"Index simple : incident.bacId, vehicle.id, employee.id — accès direct par identifiants.",
		"Index composé : (routeId, active) — retrouver rapidement RouteActive par itinéraire et état.",
		"Index temporel / TTL : logs.createdAt (TTL) — purge automatique des logs anciens.",
		"Index texte : incident.description — recherches textuelles sur descriptions d'incident.",
		"Index unique : user.username, user.email — garantir unicité et recherches rapides.",
		"Observabilité : surveiller explain() et tailles d'index ; éviter champs à très faible sélectivité.",
		"Implémentation (Spring Data / MongoDB) : @Indexed, @CompoundIndex, @GeoSpatialIndexed, @Indexed(expireAfterSeconds=...).",
	}
}

// Region names, in z-order.
const (
	RegionTitle     = "Title"
	RegionSubtitle  = "Subtitle"
	RegionSeparator = "Separator"
	RegionBullets   = "Bullets"
	RegionFooter    = "Footer"
)

// Language is the proofing language written on every run.
const Language = "fr-FR"

var (
	GreenDark = model.RGB(0x2F, 0x6F, 0x5E)
	TextGray  = model.RGB(0x2E, 0x2E, 0x2E)
)

// Canvas size in inches.
const (
	SlideWidthInches  = 13.333
	SlideHeightInches = 7.5
)

// rect builds a rectangle from inch coordinates.
func rect(x, y, w, h float64) model.Rect {
	return model.NewRect(model.Inches(x), model.Inches(y), model.Inches(w), model.Inches(h))
}

// IndexingSlide lays out the indexing decisions slide. Regions are placed
// absolutely; the bullets box overlaps the separator bar and that is kept.
func IndexingSlide() *model.Canvas {
	c := model.NewCanvas(model.Inches(SlideWidthInches), model.Inches(SlideHeightInches))
	c.Properties.Title = TitleText
	c.Properties.Subject = SubtitleText

	title := c.AddTextRegion(RegionTitle, rect(1.0, 0.4, 11.333, 1.0))
	p := title.FirstParagraph()
	p.Text = TitleText
	p.Size = 44
	p.Bold = true
	p.SetColor(GreenDark)
	p.Alignment = model.AlignCenter

	sub := c.AddTextRegion(RegionSubtitle, rect(1.5, 1.4, 10.333, 0.6))
	p = sub.FirstParagraph()
	p.Text = SubtitleText
	p.Size = 18
	p.SetColor(TextGray)
	p.Alignment = model.AlignCenter

	sep := c.AddShapeRegion(RegionSeparator, model.GeometryRect, rect(1.6, 2.2, 11.333, 0.12))
	sep.SetFill(GreenDark)
	sep.SetLine(GreenDark)

	box := c.AddTextRegion(RegionBullets, rect(1.0, 2.1, 7.5, 4.0))
	box.WordWrap = true
	for i, b := range Bullets() {
		if i == 0 {
			p = box.FirstParagraph()
		} else {
			p = box.AddParagraph()
		}
		p.Text = b
		p.Level = 0
		p.Size = 16
		p.SetColor(TextGray)
	}

	footer := c.AddTextRegion(RegionFooter, rect(1.0, 6.6, 11.333, 0.6))
	p = footer.FirstParagraph()
	p.Text = FooterText
	p.Size = 12
	p.SetColor(TextGray)
	p.Alignment = model.AlignCenter

	return c
}
