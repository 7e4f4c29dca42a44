package dbsapi

// Extractor turns fetched HTML into domain values. Structural absence (a
// missing container or label) yields an empty result rather than an error.
type Extractor interface {
	// ExtractBirthdays returns the birthday entries of the home page in
	// document order.
	ExtractBirthdays(html string) ([]Birthday, error)

	// ExtractLinks returns the titled links inside the element with the
	// given id, in document order.
	ExtractLinks(html string, containerID string) ([]Link, error)

	// ExtractHousePoints returns the house point totals of the home page.
	// Returns EPARSE if a recognised house label is not an integer.
	ExtractHousePoints(html string) (HousePoints, error)

	// ExtractEvents returns the event links of the events listing,
	// one per URL.
	ExtractEvents(html string) ([]Event, error)

	// ExtractEventImages returns the absolute URLs of the event images on
	// an event page, without duplicates.
	ExtractEventImages(html string) ([]string, error)
}
