package dbsapi

import "strings"

// Markup identifies the elements the extractors read. The site has no
// schema, so each method is a predicate over an id, style or URL attribute.
// A new version of the site's markup gets a new Markup; traversal is
// unaffected.
type Markup interface {
	// IsBirthdayContainer reports whether a table style marks a birthday entry.
	IsBirthdayContainer(style string) bool
	IsBirthdayName(id string) bool
	IsBirthdayClass(id string) bool
	IsBirthdaySection(id string) bool

	// IsLinkTitle reports whether a span id labels a notice or result link.
	IsLinkTitle(id string) bool

	// IsHouseLabel reports whether a span id holds a house point total.
	IsHouseLabel(id string) bool

	IsEventLink(href string) bool
	IsEventImage(src string) bool
}

var _ Markup = (*SiteMarkup)(nil)

// SiteMarkup matches the ASP.NET WebForms markup currently served by the site.
type SiteMarkup struct {
	BirthdayStyle         string
	BirthdayNameSuffix    string
	BirthdayClassSuffix   string
	BirthdaySectionSuffix string
	LinkTitleSuffix       string
	HouseLabelPrefix      string
	EventLinkPrefix       string
	EventImagePrefix      string
}

// NewSiteMarkup returns the markup of the live site.
func NewSiteMarkup() *SiteMarkup {
	return &SiteMarkup{
		BirthdayStyle:         "text-decoration: none;",
		BirthdayNameSuffix:    "name1Label",
		BirthdayClassSuffix:   "Label3",
		BirthdaySectionSuffix: "Label4",
		LinkTitleSuffix:       "topic1Label",
		HouseLabelPrefix:      "ctl00_cph123_Label",
		EventLinkPrefix:       "/events-",
		EventImagePrefix:      "/imgs/events/",
	}
}

func (m *SiteMarkup) IsBirthdayContainer(style string) bool {
	return strings.Contains(style, m.BirthdayStyle)
}

func (m *SiteMarkup) IsBirthdayName(id string) bool {
	return strings.HasSuffix(id, m.BirthdayNameSuffix)
}

func (m *SiteMarkup) IsBirthdayClass(id string) bool {
	return strings.HasSuffix(id, m.BirthdayClassSuffix)
}

func (m *SiteMarkup) IsBirthdaySection(id string) bool {
	return strings.HasSuffix(id, m.BirthdaySectionSuffix)
}

func (m *SiteMarkup) IsLinkTitle(id string) bool {
	return strings.HasSuffix(id, m.LinkTitleSuffix)
}

func (m *SiteMarkup) IsHouseLabel(id string) bool {
	return strings.HasPrefix(id, m.HouseLabelPrefix)
}

func (m *SiteMarkup) IsEventLink(href string) bool {
	return strings.HasPrefix(href, m.EventLinkPrefix)
}

func (m *SiteMarkup) IsEventImage(src string) bool {
	return strings.HasPrefix(src, m.EventImagePrefix)
}
