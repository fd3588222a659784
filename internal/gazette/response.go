package gazette

// resultEnvelope is the top-level API response structure.
type resultEnvelope struct {
	Response resultResponse `json:"response"`
}

// resultResponse wraps the per-zone result lists.
type resultResponse struct {
	Zone []resultZone `json:"zone"`
}

// resultZone is one search zone's records.
type resultZone struct {
	Name    string        `json:"name"`
	Records resultRecords `json:"records"`
}

// resultRecords is a page of articles plus the bulk-harvest cursor.
type resultRecords struct {
	Total     int             `json:"total,string"`
	NextStart string          `json:"nextStart"`
	Article   []resultArticle `json:"article"`
}

// resultArticle is one article as returned by the API.
type resultArticle struct {
	ID          string `json:"id"`
	Heading     string `json:"heading"`
	ArticleText string `json:"articleText"`
}
