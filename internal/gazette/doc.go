// Package gazette retrieves digitized gazette articles from the remote
// bibliographic search API.
//
// The client pages through search results with the API's bulk-harvest
// cursor, requesting article text inline, and decodes each page into
// model.Article values ready for the extraction pipeline. A pluggable
// cache stores raw response bodies keyed by request URL, so repeated
// harvests of the same query replay from disk instead of the network.
//
// The package also reads local article collections from JSON Lines
// files, which is the exchange format for pre-harvested corpora.
package gazette
