package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pkos/librarium/data/dto"
	"github.com/pkos/librarium/internal/validator"
	"github.com/pkos/librarium/service"
)

const noBookFoundMessage = "There is no such book in the library"

func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListBooks
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search.Title = h.readString(qs, "title", "")
	qsInput.Search.Author = h.readString(qs, "author", "")
	qsInput.Search.Language = h.readString(qs, "lang", "")
	qsInput.Search.FromYear = h.readInt(qs, "from", 0, v)
	qsInput.Search.ToYear = h.readInt(qs, "to", 0, v)
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "title", "author", "year", "created_at", "-id", "-title", "-author", "-year", "-created_at"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, errors.New("query string contains invalid values"))
		return
	}
	books, metadata, err := h.service.ListBooks(qsInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) searchBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListBooks
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search.Title = h.readString(qs, "title", "")
	qsInput.Search.Author = h.readString(qs, "author", "")
	qsInput.Search.Language = h.readString(qs, "lang", "")
	qsInput.Search.FromYear = h.readInt(qs, "from", 0, v)
	qsInput.Search.ToYear = h.readInt(qs, "to", 0, v)
	if !v.Valid() {
		h.failedValidationResponse(w, r, errors.New("query string contains invalid values"))
		return
	}
	books, err := h.service.SearchBooks(qsInput.Search)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	// An empty match is reported inside a 200 response so that search result
	// pages render the message instead of an error page.
	if len(books) == 0 {
		err = h.encodeJSON(w, http.StatusOK, envelope{"error": map[string]string{"Not Found": noBookFoundMessage}}, nil)
		if err != nil {
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": books}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) upsertBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.BookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	_, err = h.service.UpsertBook(requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(r.URL.Query().Get("book_id"), 10, 64)
	if err != nil || bookID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
