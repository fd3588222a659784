package model

// TagKind identifies the role of a tagged span within an article.
type TagKind int

// Tag kinds in canonical record order. A complete record run consists of
// exactly one tag of each kind in this order.
const (
	// TagLastname marks a surname span.
	TagLastname TagKind = iota

	// TagFirstname marks a given-name span.
	TagFirstname

	// TagAddr marks an address span.
	TagAddr

	// TagDate marks a date-shaped span found by the date matcher.
	TagDate
)

// String returns the uppercase name of the tag kind.
func (k TagKind) String() string {
	switch k {
	case TagLastname:
		return "LASTNAME"
	case TagFirstname:
		return "FIRSTNAME"
	case TagAddr:
		return "ADDR"
	case TagDate:
		return "DATE"
	default:
		return "UNKNOWN"
	}
}

// Tag is a labeled span of an article's normalized text.
//
// Start and End are byte offsets into Article.NormalizedText; Text is the
// trimmed span content. A tag is owned by its article and never outlives
// it; records reference tags only within their own article.
type Tag struct {
	// Kind is the span's role.
	Kind TagKind `json:"kind"`

	// Start is the byte offset of the span's first byte.
	Start int `json:"start"`

	// End is the byte offset one past the span's last byte.
	End int `json:"end"`

	// Text is the span content with surrounding whitespace trimmed.
	Text string `json:"text"`
}
