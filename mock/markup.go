package mock

import "github.com/dbsapi/dbsapi"

var _ dbsapi.Markup = (*Markup)(nil)

// Markup is a mock implementation of dbsapi.Markup.
// Predicates without a function never match.
type Markup struct {
	IsBirthdayContainerFn func(style string) bool
	IsBirthdayNameFn      func(id string) bool
	IsBirthdayClassFn     func(id string) bool
	IsBirthdaySectionFn   func(id string) bool
	IsLinkTitleFn         func(id string) bool
	IsHouseLabelFn        func(id string) bool
	IsEventLinkFn         func(href string) bool
	IsEventImageFn        func(src string) bool
}

func (m *Markup) IsBirthdayContainer(style string) bool {
	return m.IsBirthdayContainerFn != nil && m.IsBirthdayContainerFn(style)
}

func (m *Markup) IsBirthdayName(id string) bool {
	return m.IsBirthdayNameFn != nil && m.IsBirthdayNameFn(id)
}

func (m *Markup) IsBirthdayClass(id string) bool {
	return m.IsBirthdayClassFn != nil && m.IsBirthdayClassFn(id)
}

func (m *Markup) IsBirthdaySection(id string) bool {
	return m.IsBirthdaySectionFn != nil && m.IsBirthdaySectionFn(id)
}

func (m *Markup) IsLinkTitle(id string) bool {
	return m.IsLinkTitleFn != nil && m.IsLinkTitleFn(id)
}

func (m *Markup) IsHouseLabel(id string) bool {
	return m.IsHouseLabelFn != nil && m.IsHouseLabelFn(id)
}

func (m *Markup) IsEventLink(href string) bool {
	return m.IsEventLinkFn != nil && m.IsEventLinkFn(href)
}

func (m *Markup) IsEventImage(src string) bool {
	return m.IsEventImageFn != nil && m.IsEventImageFn(src)
}
