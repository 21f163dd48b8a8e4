package handler

import (
	"errors"
	"net/http"

	"github.com/jellydator/ttlcache/v3"
	"github.com/pkos/librarium/data/dto"
	"github.com/pkos/librarium/service"
)

const (
	volumeNotFoundMessage   = "We cannot find the book. Please try again or change the parameters."
	alreadyInLibraryMessage = "The book is already in the library."
)

func (h *Handler) importSearchHandler(w http.ResponseWriter, r *http.Request) {
	qsInput := dto.QsImport{
		Query:  r.FormValue("query"),
		Filter: r.FormValue("filter"),
	}
	if qsInput.Filter == "" {
		qsInput.Filter = "everywhere"
	}
	// Identical lookups within the cache TTL are served from memory instead of
	// hitting the metadata service again.
	cacheKey := qsInput.Filter + "|" + qsInput.Query
	if item := h.cache.Get(cacheKey); item != nil {
		err := h.encodeJSON(w, http.StatusOK, envelope{"volumes": item.Value()}, nil)
		if err != nil {
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	volumes, err := h.service.SearchVolumes(r.Context(), qsInput.Filter, qsInput.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrNoVolumesFound):
			h.notificationResponse(w, r, volumeNotFoundMessage)
		case errors.Is(err, service.ErrServiceUnavailable):
			h.serviceUnavailableResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	h.cache.Set(cacheKey, volumes, ttlcache.DefaultTTL)
	err = h.encodeJSON(w, http.StatusOK, envelope{"volumes": volumes}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) findBookHandler(w http.ResponseWriter, r *http.Request) {
	volumeID, err := h.readStringParam(r, "volumeId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	_, err = h.service.ImportVolume(r.Context(), volumeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateRecord):
			h.notificationResponse(w, r, alreadyInLibraryMessage)
		case errors.Is(err, service.ErrNoVolumesFound):
			h.notificationResponse(w, r, volumeNotFoundMessage)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrServiceUnavailable):
			h.serviceUnavailableResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
