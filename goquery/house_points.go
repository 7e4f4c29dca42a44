package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dbsapi/dbsapi"
)

// ExtractHousePoints reads each house label and files its value under the
// house named by the background color of the enclosing cell.
func (e *Extractor) ExtractHousePoints(html string) (dbsapi.HousePoints, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	points := dbsapi.HousePoints{}
	var firstErr error
	doc.Find("span[id]").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if !e.markup.IsHouseLabel(span.AttrOr("id", "")) {
			return true
		}

		td := span.ParentsFiltered("td").First()
		if td.Length() == 0 {
			return true
		}

		color, ok, err := backgroundColor(td.AttrOr("style", ""))
		if err != nil {
			firstErr = err
			return false
		} else if !ok {
			return true
		}

		house, ok := dbsapi.HouseForColor(color)
		if !ok {
			return true
		}

		value := text(span)
		n, err := strconv.Atoi(value)
		if err != nil {
			firstErr = dbsapi.Errorf(dbsapi.EPARSE, "invalid points %q for house %s", value, house)
			return false
		}
		points[house] = n
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return points, nil
}

// backgroundColor returns the value of the first declaration in an inline
// style that mentions background-color. ok is false when there is none.
func backgroundColor(style string) (color string, ok bool, err error) {
	for _, decl := range strings.Split(style, ";") {
		if !strings.Contains(decl, "background-color") {
			continue
		}
		parts := strings.Split(decl, ":")
		if len(parts) < 2 {
			return "", false, dbsapi.Errorf(dbsapi.EPARSE, "malformed background-color in style %q", style)
		}
		return strings.TrimSpace(parts[1]), true, nil
	}
	return "", false, nil
}
