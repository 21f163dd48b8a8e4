package service

import (
	"testing"
	"time"

	"github.com/pkos/librarium/data"
	"github.com/pkos/librarium/data/dto"
	"github.com/pkos/librarium/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(repo *mockRepository, volumes *mockVolumeFinder) *service {
	return New(repo, volumes)
}

func defaultQs() dto.QsListBooks {
	return dto.QsListBooks{
		Filters: data.Filters{
			Page:         1,
			PageSize:     10,
			Sort:         "id",
			SortSafeList: []string{"id", "title", "year", "-id", "-title", "-year"},
		},
	}
}

func TestListBooksAppliesDefaultYearBounds(t *testing.T) {
	var gotFrom, gotTo int
	repo := &mockRepository{
		GetAllBooksFunc: func(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error) {
			gotFrom, gotTo = fromYear, toYear
			return []*data.Book{}, data.Metadata{}, nil
		},
	}
	s := newTestService(repo, nil)

	_, _, err := s.ListBooks(defaultQs())
	require.NoError(t, err)
	assert.Equal(t, data.MinYear, gotFrom)
	assert.Equal(t, time.Now().Year(), gotTo)
}

func TestListBooksForwardsExplicitBounds(t *testing.T) {
	var gotFrom, gotTo int
	repo := &mockRepository{
		GetAllBooksFunc: func(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error) {
			gotFrom, gotTo = fromYear, toYear
			return []*data.Book{}, data.Metadata{}, nil
		},
	}
	s := newTestService(repo, nil)

	qs := defaultQs()
	qs.Search.FromYear = 1950
	qs.Search.ToYear = 1990
	_, _, err := s.ListBooks(qs)
	require.NoError(t, err)
	assert.Equal(t, 1950, gotFrom)
	assert.Equal(t, 1990, gotTo)
}

func TestListBooksRejectsInvertedBounds(t *testing.T) {
	s := newTestService(&mockRepository{}, nil)

	qs := defaultQs()
	qs.Search.FromYear = 1990
	qs.Search.ToYear = 1950
	_, _, err := s.ListBooks(qs)
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestSearchBooksEmptyResultIsNotAnError(t *testing.T) {
	repo := &mockRepository{
		GetAllBooksFunc: func(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error) {
			return []*data.Book{}, data.Metadata{}, nil
		},
	}
	s := newTestService(repo, nil)

	books, err := s.SearchBooks(data.SearchFilters{Title: "Dune"})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestUpsertBook(t *testing.T) {
	var upserted *data.Book
	repo := &mockRepository{
		UpsertBookFunc: func(book *data.Book) error {
			upserted = book
			book.ID = 7
			return nil
		},
	}
	s := newTestService(repo, nil)

	book, err := s.UpsertBook(dto.BookRequestBody{
		Title:    "Dune",
		Author:   "Frank Herbert",
		Year:     1965,
		Isbn:     "9780441013593",
		Pages:    412,
		CoverURL: "http://x/y.png",
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), book.ID)
	assert.Equal(t, "Dune", upserted.Title)
	assert.Equal(t, int32(1965), upserted.Year)
}

func TestUpsertBookValidationFailure(t *testing.T) {
	repo := &mockRepository{
		UpsertBookFunc: func(book *data.Book) error {
			t.Fatal("repository must not be touched on validation failure")
			return nil
		},
	}
	s := newTestService(repo, nil)

	_, err := s.UpsertBook(dto.BookRequestBody{Title: "", Year: 999})
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestDeleteBookNotFound(t *testing.T) {
	repo := &mockRepository{
		DeleteBookFunc: func(bookID int64) error {
			return repository.ErrRecordNotFound
		},
	}
	s := newTestService(repo, nil)

	err := s.DeleteBook(42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
