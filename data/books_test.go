package data

import (
	"testing"

	"github.com/pkos/librarium/internal/validator"
	"github.com/stretchr/testify/assert"
)

func validBook() *Book {
	return &Book{
		Title:    "Dune",
		Author:   "Frank Herbert",
		Year:     1965,
		Isbn:     "9780441013593",
		Pages:    412,
		CoverURL: "http://x/y.png",
		Language: "en",
	}
}

func TestValidateBook(t *testing.T) {
	v := validator.New()
	ValidateBook(v, validBook())
	assert.True(t, v.Valid())
}

func TestValidateBookRequiresTitle(t *testing.T) {
	book := validBook()
	book.Title = ""
	v := validator.New()
	ValidateBook(v, book)
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestValidateBookOptionalFieldsMayBeZero(t *testing.T) {
	v := validator.New()
	ValidateBook(v, &Book{Title: "Dune"})
	assert.True(t, v.Valid())
}

func TestValidateBookYearRange(t *testing.T) {
	book := validBook()
	book.Year = 999
	v := validator.New()
	ValidateBook(v, book)
	assert.Equal(t, "must be at least 1000", v.Errors["year"])

	book.Year = 9999
	v = validator.New()
	ValidateBook(v, book)
	assert.Equal(t, "must not be in the future", v.Errors["year"])
}

func TestValidateBookIsbn(t *testing.T) {
	book := validBook()
	book.Isbn = "12345"
	v := validator.New()
	ValidateBook(v, book)
	assert.Equal(t, "must be 13 characters long", v.Errors["isbn"])

	// The import placeholder must pass validation untouched.
	book.Isbn = IsbnNotFound
	v = validator.New()
	ValidateBook(v, book)
	assert.True(t, v.Valid())
}

func TestValidateBookLanguage(t *testing.T) {
	book := validBook()
	book.Language = "eng"
	v := validator.New()
	ValidateBook(v, book)
	assert.Equal(t, "must be a 2-letter code", v.Errors["language"])
}
