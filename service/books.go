package service

import (
	"errors"
	"time"

	"github.com/pkos/librarium/data"
	"github.com/pkos/librarium/data/dto"
	"github.com/pkos/librarium/internal/validator"
	"github.com/pkos/librarium/repository"
)

// searchResultLimit bounds the unpaginated search result set. Matches beyond
// the limit are not returned; a personal catalog stays far below it.
const searchResultLimit = 1000

type books interface {
	ListBooks(qs dto.QsListBooks) ([]*data.Book, data.Metadata, error)
	SearchBooks(search data.SearchFilters) ([]*data.Book, error)
	UpsertBook(body dto.BookRequestBody) (*data.Book, error)
	DeleteBook(bookID int64) error
}

// ListBooks retrieves a paginated list of books matching the search filters.
// Year bounds default to [MinYear, current year], resolved at request time.
func (s *service) ListBooks(qs dto.QsListBooks) ([]*data.Book, data.Metadata, error) {
	v := validator.New()
	data.ValidateSearchFilters(v, qs.Search)
	data.ValidateFilters(v, qs.Filters)
	if !v.Valid() {
		return nil, data.Metadata{}, failedValidation(v.Errors)
	}
	fromYear, toYear := qs.Search.YearBounds(time.Now())
	books, metadata, err := s.repo.GetAllBooks(qs.Search, fromYear, toYear, qs.Filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return books, metadata, nil
}

// SearchBooks retrieves all books matching the search filters, without
// pagination. An empty result is not an error.
func (s *service) SearchBooks(search data.SearchFilters) ([]*data.Book, error) {
	v := validator.New()
	data.ValidateSearchFilters(v, search)
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	fromYear, toYear := search.YearBounds(time.Now())
	filters := data.Filters{
		Page:         1,
		PageSize:     searchResultLimit,
		Sort:         "id",
		SortSafeList: []string{"id"},
	}
	books, _, err := s.repo.GetAllBooks(search, fromYear, toYear, filters)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// UpsertBook writes a book keyed by its title: a new record when the title is
// unseen, otherwise an in-place overwrite of the existing record's mutable
// fields. The record's identifier never changes.
func (s *service) UpsertBook(body dto.BookRequestBody) (*data.Book, error) {
	book := &data.Book{
		Title:    body.Title,
		Author:   body.Author,
		Year:     body.Year,
		Isbn:     body.Isbn,
		Pages:    body.Pages,
		CoverURL: body.CoverURL,
		Language: body.Language,
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err := s.repo.UpsertBook(book)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook deletes a book by its identifier. Deleting an unknown
// identifier is reported as ErrRecordNotFound, never silently ignored.
func (s *service) DeleteBook(bookID int64) error {
	err := s.repo.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
