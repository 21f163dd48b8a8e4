package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pkos/librarium/data"
)

type books interface {
	CreateBook(book *data.Book) error
	UpsertBook(book *data.Book) error
	GetBookByTitle(title string) (*data.Book, error)
	GetAllBooks(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error)
	DeleteBook(bookID int64) error
}

// CreateBook inserts a new book record. A title collision is reported as
// ErrDuplicateRecord so that two concurrent imports of the same volume never
// crash the request.
func (r *repository) CreateBook(book *data.Book) error {
	query := `
		INSERT INTO books (title, author, year, isbn, pages, cover_url, language)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	args := []interface{}{book.Title, book.Author, book.Year, book.Isbn, book.Pages, book.CoverURL, book.Language}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "books_title_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// UpsertBook inserts a book record or, when a record with the same title
// already exists, overwrites that record's mutable fields in place. The id,
// title and created_at of an existing record never change.
func (r *repository) UpsertBook(book *data.Book) error {
	query := `
		INSERT INTO books (title, author, year, isbn, pages, cover_url, language)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (title) DO UPDATE
		SET author = EXCLUDED.author, year = EXCLUDED.year, isbn = EXCLUDED.isbn,
		pages = EXCLUDED.pages, cover_url = EXCLUDED.cover_url, language = EXCLUDED.language
		RETURNING id, created_at`
	args := []interface{}{book.Title, book.Author, book.Year, book.Isbn, book.Pages, book.CoverURL, book.Language}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt)
}

// GetBookByTitle retrieves a book record by its exact title.
func (r *repository) GetBookByTitle(title string) (*data.Book, error) {
	query := `
		SELECT id, created_at, title, author, year, isbn, pages, cover_url, language
		FROM books
		WHERE title = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, title).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.Title,
		&book.Author,
		&book.Year,
		&book.Isbn,
		&book.Pages,
		&book.CoverURL,
		&book.Language,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves a paginated list of book records matching the search
// predicates. Substring predicates match everything when empty; records with
// no recorded year are not excluded by the year bounds.
func (r *repository) GetAllBooks(search data.SearchFilters, fromYear, toYear int, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, created_at, title, author, year, isbn, pages, cover_url, language
		FROM books
		WHERE title ILIKE '%%' || $1 || '%%'
		AND author ILIKE '%%' || $2 || '%%'
		AND language ILIKE '%%' || $3 || '%%'
		AND (year BETWEEN $4 AND $5 OR year = 0)
		ORDER BY %s %s, id ASC
		LIMIT $6 OFFSET $7`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{
		search.Title,
		search.Author,
		search.Language,
		fromYear,
		toYear,
		filters.Limit(),
		filters.Offset(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&totalRecords,
			&book.ID,
			&book.CreatedAt,
			&book.Title,
			&book.Author,
			&book.Year,
			&book.Isbn,
			&book.Pages,
			&book.CoverURL,
			&book.Language,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return books, metadata, nil
}

// DeleteBook deletes a book record by its ID.
func (r *repository) DeleteBook(bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM books
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, bookID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
