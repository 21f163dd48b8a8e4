package main

import (
	"os"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/pkos/librarium/clients"
	"github.com/pkos/librarium/config"
	"github.com/pkos/librarium/handler"
	"github.com/pkos/librarium/internal/jsonlog"
	"github.com/pkos/librarium/repository"
	"github.com/pkos/librarium/repository/postgres"
	"github.com/pkos/librarium/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Other shared resources: waitgroup and the import search cache
	var wg sync.WaitGroup
	cache := ttlcache.New(ttlcache.WithTTL[string, []clients.Volume](30 * time.Minute))
	go cache.Start()

	// Application layers
	repo := repository.New(db)
	volumes := clients.NewGoogleBooksClient(cfg)
	service := service.New(repo, volumes)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
