package data

import (
	"time"

	"github.com/pkos/librarium/internal/validator"
)

// MinYear is the lowest publishing year the catalog accepts. It doubles as
// the default lower bound when a year filter is not supplied.
const MinYear = 1000

// Placeholder values written when an imported volume lacks the source field.
const (
	IsbnNotFound      = "not found"
	CoverNotAvailable = "no image"
)

// Book defines a book model. Title is the uniqueness key of the catalog.
// All fields other than ID, CreatedAt and Title are optional and may hold
// their zero value.
type Book struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Year      int32     `json:"year,omitempty"`
	Isbn      string    `json:"isbn,omitempty"`
	Pages     int32     `json:"pages,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	Language  string    `json:"language,omitempty"`
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) <= 500, "title", "must not be more than 500 bytes long")
	v.Check(len(book.Author) <= 500, "author", "must not be more than 500 bytes long")
	if book.Year != 0 {
		v.Check(book.Year >= MinYear, "year", "must be at least 1000")
		v.Check(book.Year <= int32(time.Now().Year()), "year", "must not be in the future")
	}
	if book.Isbn != "" && book.Isbn != IsbnNotFound {
		v.Check(len(book.Isbn) == 13, "isbn", "must be 13 characters long")
		v.Check(validator.Matches(book.Isbn, validator.DigitsRX), "isbn", "must contain only digits")
	}
	if book.Pages != 0 {
		v.Check(book.Pages > 0, "pages", "must be a positive integer")
	}
	if book.Language != "" {
		v.Check(len(book.Language) == 2, "language", "must be a 2-letter code")
	}
}
