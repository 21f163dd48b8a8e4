package handler

import (
	"context"

	"github.com/pkos/librarium/clients"
	"github.com/pkos/librarium/data"
	"github.com/pkos/librarium/data/dto"
)

// mockService implements service.Service with configurable behavior.
type mockService struct {
	ListBooksFunc     func(qs dto.QsListBooks) ([]*data.Book, data.Metadata, error)
	SearchBooksFunc   func(search data.SearchFilters) ([]*data.Book, error)
	UpsertBookFunc    func(body dto.BookRequestBody) (*data.Book, error)
	DeleteBookFunc    func(bookID int64) error
	SearchVolumesFunc func(ctx context.Context, filter, text string) ([]clients.Volume, error)
	ImportVolumeFunc  func(ctx context.Context, volumeID string) (*data.Book, error)
}

func (m *mockService) ListBooks(qs dto.QsListBooks) ([]*data.Book, data.Metadata, error) {
	return m.ListBooksFunc(qs)
}

func (m *mockService) SearchBooks(search data.SearchFilters) ([]*data.Book, error) {
	return m.SearchBooksFunc(search)
}

func (m *mockService) UpsertBook(body dto.BookRequestBody) (*data.Book, error) {
	return m.UpsertBookFunc(body)
}

func (m *mockService) DeleteBook(bookID int64) error {
	return m.DeleteBookFunc(bookID)
}

func (m *mockService) SearchVolumes(ctx context.Context, filter, text string) ([]clients.Volume, error) {
	return m.SearchVolumesFunc(ctx, filter, text)
}

func (m *mockService) ImportVolume(ctx context.Context, volumeID string) (*data.Book, error) {
	return m.ImportVolumeFunc(ctx, volumeID)
}
