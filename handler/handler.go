package handler

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/pkos/librarium/clients"
	"github.com/pkos/librarium/config"
	"github.com/pkos/librarium/internal/jsonlog"
	"github.com/pkos/librarium/service"
)

const version = "1.0.0"

// Handler defines the handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, []clients.Volume]
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, []clients.Volume], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
