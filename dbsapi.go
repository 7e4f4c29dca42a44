// Package dbsapi provides a JSON API over the public website of Don Bosco
// School, Berhampore. It fetches the site's pages on every request and
// extracts birthdays, notices, competition results, house points and event
// links from their fixed markup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gin/).
package dbsapi

import "strings"

// Origin is the site every relative link is joined against.
const Origin = "http://donboscoberhampore.in"

// Pages fetched by the service.
const (
	HomeURL   = Origin + "/"
	EventsURL = Origin + "/events.aspx"
)

// Ids of the home page containers that hold link lists.
const (
	NoticesContainerID            = "ctl00_cph123_DataList1"
	CompetitionResultsContainerID = "ctl00_cph123_DataList4"
)

// Absolutize joins a root-relative href with Origin.
// Any other href is returned unchanged.
func Absolutize(href string) string {
	if strings.HasPrefix(href, "/") {
		return Origin + href
	}
	return href
}
