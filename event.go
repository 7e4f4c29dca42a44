package dbsapi

// DefaultEventTitle is used for event anchors without a nested label.
const DefaultEventTitle = "No Title"

// Event is a link to an event page from the events listing.
type Event struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
