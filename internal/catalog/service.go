package catalog

import (
	"context"
	"fmt"

	"github.com/bengkelpos/backend/pkg/db/models"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
)

type catalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListVehicleTypes(ctx context.Context) ([]models.VehicleType, error)
}

// EntryDTO is a single reference-data row.
type EntryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Service exposes catalog reference reads.
type Service interface {
	Categories(ctx context.Context) ([]EntryDTO, error)
	VehicleTypes(ctx context.Context) ([]EntryDTO, error)
}

type service struct {
	repo catalogRepository
}

// NewService builds a catalog service with the provided repository.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Categories(ctx context.Context) ([]EntryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	entries := make([]EntryDTO, 0, len(categories))
	for _, c := range categories {
		entries = append(entries, EntryDTO{ID: c.ID, Name: c.Name})
	}
	return entries, nil
}

func (s *service) VehicleTypes(ctx context.Context) ([]EntryDTO, error) {
	vehicleTypes, err := s.repo.ListVehicleTypes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	entries := make([]EntryDTO, 0, len(vehicleTypes))
	for _, v := range vehicleTypes {
		entries = append(entries, EntryDTO{ID: v.ID, Name: v.Name})
	}
	return entries, nil
}
