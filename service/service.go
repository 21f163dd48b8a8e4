package service

import (
	"context"

	"github.com/pkos/librarium/clients"
	"github.com/pkos/librarium/repository"
)

// VolumeFinder is the slice of the book metadata client the service depends on.
type VolumeFinder interface {
	SearchVolumes(ctx context.Context, query string) ([]clients.Volume, error)
	GetVolume(ctx context.Context, volumeID string) (*clients.Volume, error)
}

type Service interface {
	books
	imports
}

// service defines the app's service layer.
type service struct {
	repo    repository.Repository
	volumes VolumeFinder
}

// New creates a new instance of Service.
func New(repo repository.Repository, volumes VolumeFinder) *service {
	return &service{
		repo:    repo,
		volumes: volumes,
	}
}
