package dto

import "github.com/pkos/librarium/data"

// BookRequestBody defines the payload accepted by the upsert endpoint. Every
// mutable field is overwritten on an existing title, so the payload carries
// plain values rather than pointers.
type BookRequestBody struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int32  `json:"year"`
	Isbn     string `json:"isbn"`
	Pages    int32  `json:"pages"`
	CoverURL string `json:"cover_url"`
	Language string `json:"language"`
}

// QsListBooks defines the query strings used for listing and searching books.
type QsListBooks struct {
	Search  data.SearchFilters
	Filters data.Filters
}

// QsImport defines the query strings used for the external volume search.
type QsImport struct {
	Query  string
	Filter string
}
