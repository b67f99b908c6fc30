package output

import "encoding/json"

// SearchIndexEntry is one compact record of the client-side search index.
// Field names are single letters to keep the artifact small at catalog
// scale.
type SearchIndexEntry struct {
	T string `json:"t"`           // title
	D string `json:"d,omitempty"` // description (truncated)
	P string `json:"p"`           // page path
	F string `json:"f,omitempty"` // framework id
	C string `json:"c,omitempty"` // category id
}

const maxIndexDescription = 120

// NewSearchIndexEntry builds an index entry, truncating the description.
func NewSearchIndexEntry(title, description, path, framework, category string) SearchIndexEntry {
	if len(description) > maxIndexDescription {
		description = description[:maxIndexDescription]
	}
	return SearchIndexEntry{T: title, D: description, P: path, F: framework, C: category}
}

// GenerateSearchIndex marshals the index entries to JSON.
func GenerateSearchIndex(entries []SearchIndexEntry) ([]byte, error) {
	return json.Marshal(entries)
}
