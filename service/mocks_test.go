package service

import (
	"context"

	"github.com/pkos/librarium/clients"
	"github.com/pkos/librarium/data"
)

// mockRepository implements repository.Repository with configurable behavior.
type mockRepository struct {
	CreateBookFunc     func(book *data.Book) error
	UpsertBookFunc     func(book *data.Book) error
	GetBookByTitleFunc func(title string) (*data.Book, error)
	GetAllBooksFunc    func(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error)
	DeleteBookFunc     func(bookID int64) error
}

func (m *mockRepository) CreateBook(book *data.Book) error {
	return m.CreateBookFunc(book)
}

func (m *mockRepository) UpsertBook(book *data.Book) error {
	return m.UpsertBookFunc(book)
}

func (m *mockRepository) GetBookByTitle(title string) (*data.Book, error) {
	return m.GetBookByTitleFunc(title)
}

func (m *mockRepository) GetAllBooks(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	return m.GetAllBooksFunc(search, fromYear, toYear, filters)
}

func (m *mockRepository) DeleteBook(bookID int64) error {
	return m.DeleteBookFunc(bookID)
}

// mockVolumeFinder implements VolumeFinder with configurable behavior.
type mockVolumeFinder struct {
	SearchVolumesFunc func(ctx context.Context, query string) ([]clients.Volume, error)
	GetVolumeFunc     func(ctx context.Context, volumeID string) (*clients.Volume, error)
}

func (m *mockVolumeFinder) SearchVolumes(ctx context.Context, query string) ([]clients.Volume, error) {
	return m.SearchVolumesFunc(ctx, query)
}

func (m *mockVolumeFinder) GetVolume(ctx context.Context, volumeID string) (*clients.Volume, error) {
	return m.GetVolumeFunc(ctx, volumeID)
}
