package news

import "time"

// Article is one news item as returned by the service. Fields may be
// empty; the UI substitutes fallbacks at render time.
type Article struct {
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Snippet     string    `json:"snippet"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	Language    string    `json:"language"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"`
	Categories  []string  `json:"categories"`
}

// Meta is the pagination block the service attaches to every page.
type Meta struct {
	Found    int `json:"found"`
	Returned int `json:"returned"`
	Limit    int `json:"limit"`
	Page     int `json:"page"`
}

// Page is one fetched page of results.
type Page struct {
	Meta Meta      `json:"meta"`
	Data []Article `json:"data"`
}

// Query captures everything a single request needs. The zero value of
// Search and Category means "top headlines".
type Query struct {
	Page     int
	Language string
	Category string
	Search   string
}

// Filtered reports whether the query needs the search/filter endpoint
// rather than top headlines.
func (q Query) Filtered() bool {
	return q.Search != "" || q.Category != ""
}
