package dbsapi

// Link is a titled link taken from a home page list (notices, results).
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
