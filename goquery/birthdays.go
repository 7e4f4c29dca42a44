package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/dbsapi/dbsapi"
)

// ExtractBirthdays returns one Birthday per marked table that carries all
// three labels. Tables missing any label are skipped.
func (e *Extractor) ExtractBirthdays(html string) ([]dbsapi.Birthday, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	birthdays := []dbsapi.Birthday{}
	doc.Find("table[style]").Each(func(_ int, table *goquery.Selection) {
		if !e.markup.IsBirthdayContainer(table.AttrOr("style", "")) {
			return
		}

		name := firstSpan(table, e.markup.IsBirthdayName)
		class := firstSpan(table, e.markup.IsBirthdayClass)
		section := firstSpan(table, e.markup.IsBirthdaySection)
		if name.Length() == 0 || class.Length() == 0 || section.Length() == 0 {
			return
		}

		birthdays = append(birthdays, dbsapi.Birthday{
			Name:    text(name),
			Class:   text(class),
			Section: text(section),
		})
	})

	return birthdays, nil
}
