package model

import "strings"

// CollectionName identifies one of the two record collections.
type CollectionName string

const (
	// CollectionCodes holds classification codes ("kode klasifikasi").
	CollectionCodes CollectionName = "kode"
	// CollectionDocumentTypes holds document types ("jenis naskah").
	CollectionDocumentTypes CollectionName = "jenis"
)

// CollectionNames lists every collection in display order.
var CollectionNames = []CollectionName{CollectionCodes, CollectionDocumentTypes}

// Valid reports whether n names a known collection.
func (n CollectionName) Valid() bool {
	return n == CollectionCodes || n == CollectionDocumentTypes
}

// Title returns the heading used when presenting results of the collection.
func (n CollectionName) Title() string {
	switch n {
	case CollectionCodes:
		return "Hasil Kode Klasifikasi"
	case CollectionDocumentTypes:
		return "Hasil Jenis Naskah"
	default:
		return string(n)
	}
}

// Record is a single lookup entry. Fields missing from the source decode to "".
// Codes are expected to be unique within a collection, but duplicates are kept.
type Record struct {
	Code        string `json:"kode"`
	Category    string `json:"klasifikasi"`
	Nature      string `json:"sifat"`
	Description string `json:"keterangan"`
}

// SearchableText returns the lowercased category and description joined by a space.
func (r Record) SearchableText() string {
	return strings.ToLower(r.Category) + " " + strings.ToLower(r.Description)
}

// Collection is an ordered, read-only sequence of records.
type Collection []Record

// ScoredResult is a record with its relevance score in [0,100].
type ScoredResult struct {
	Record
	Score int `json:"score"`
}

// Suggestion is a vocabulary word proposed as a corrected query.
type Suggestion struct {
	Word  string `json:"word"`
	Ratio int    `json:"ratio"`
}
