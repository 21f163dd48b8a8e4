package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/", h.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/search", h.searchBooksHandler)
	router.HandlerFunc(http.MethodPost, "/add", h.upsertBookHandler)
	router.HandlerFunc(http.MethodGet, "/delete", h.deleteBookHandler)
	router.HandlerFunc(http.MethodPost, "/delete", h.deleteBookHandler)
	router.HandlerFunc(http.MethodGet, "/import", h.importSearchHandler)
	router.HandlerFunc(http.MethodPost, "/import", h.importSearchHandler)
	router.HandlerFunc(http.MethodGet, "/find/:volumeId", h.findBookHandler)
	router.HandlerFunc(http.MethodPost, "/find/:volumeId", h.findBookHandler)

	router.HandlerFunc(http.MethodGet, "/healthcheck", h.healthcheckHandler)
	if h.config.Metrics.Enabled {
		router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	}

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.enableCORS(h.rateLimit(h.metrics(router))))
}
