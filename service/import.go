package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/pkos/librarium/clients"
	"github.com/pkos/librarium/data"
	"github.com/pkos/librarium/internal/validator"
	"github.com/pkos/librarium/repository"
)

// ImportFilterFields are the accepted values of the import filter selector.
var ImportFilterFields = []string{"everywhere", "title", "author", "subject", "isbn", "lccn", "oclc"}

type imports interface {
	SearchVolumes(ctx context.Context, filter, text string) ([]clients.Volume, error)
	ImportVolume(ctx context.Context, volumeID string) (*data.Book, error)
}

// SearchVolumes runs a field-scoped search against the book metadata service
// and returns candidate volumes for import.
func (s *service) SearchVolumes(ctx context.Context, filter, text string) ([]clients.Volume, error) {
	v := validator.New()
	v.Check(text != "", "query", "must be provided")
	v.Check(validator.PermittedValue(filter, ImportFilterFields...), "filter", "invalid filter value")
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	volumes, err := s.volumes.SearchVolumes(ctx, buildVolumeQuery(filter, text))
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrNoResults), errors.Is(err, clients.ErrMalformedResponse):
			return nil, ErrNoVolumesFound
		case errors.Is(err, clients.ErrServiceUnavailable):
			return nil, ErrServiceUnavailable
		default:
			return nil, err
		}
	}
	return volumes, nil
}

// ImportVolume fetches one volume by its external identifier, maps it onto a
// book record and inserts it. A volume whose title already exists in the
// catalog is reported as ErrDuplicateRecord and nothing is written.
func (s *service) ImportVolume(ctx context.Context, volumeID string) (*data.Book, error) {
	volume, err := s.volumes.GetVolume(ctx, volumeID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrVolumeNotFound), errors.Is(err, clients.ErrMalformedResponse):
			return nil, ErrNoVolumesFound
		case errors.Is(err, clients.ErrServiceUnavailable):
			return nil, ErrServiceUnavailable
		default:
			return nil, err
		}
	}
	_, err = s.repo.GetBookByTitle(volume.VolumeInfo.Title)
	switch {
	case err == nil:
		return nil, ErrDuplicateRecord
	case errors.Is(err, repository.ErrRecordNotFound):
		// Title is unseen, proceed with the import.
	default:
		return nil, err
	}
	book := bookFromVolume(volume.VolumeInfo)
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	err = s.repo.CreateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return book, nil
}

// buildVolumeQuery turns a filter selector and free text into the metadata
// service's query grammar. The everywhere selector passes the text through
// unmodified; title and author carry dedicated scoping prefixes; the
// remaining selectors are prefixed verbatim.
func buildVolumeQuery(filter, text string) string {
	switch filter {
	case "everywhere":
		return text
	case "title":
		return "+intitle:" + text
	case "author":
		return "+inauthor:" + text
	default:
		return "+" + filter + ":" + text
	}
}

// bookFromVolume maps an external volume record onto a book record, filling
// absent source fields with their placeholder values.
func bookFromVolume(info *clients.VolumeInfo) *data.Book {
	book := &data.Book{
		Title:    info.Title,
		Pages:    info.PageCount,
		Language: info.Language,
	}
	if len(info.Authors) > 0 {
		book.Author = info.Authors[0]
	}
	if info.PublishedDate != "" {
		yearPart, _, _ := strings.Cut(info.PublishedDate, "-")
		if year, err := strconv.Atoi(yearPart); err == nil {
			book.Year = int32(year)
		}
	}
	book.Isbn = data.IsbnNotFound
	for _, id := range info.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			book.Isbn = id.Identifier
			break
		}
	}
	book.CoverURL = data.CoverNotAvailable
	if info.ImageLinks != nil && info.ImageLinks.SmallThumbnail != "" {
		book.CoverURL = info.ImageLinks.SmallThumbnail
	}
	return book
}
