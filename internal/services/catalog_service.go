package services

import (
	"fmt"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"
)

// CatalogService lists packages and trainers for the dashboard.
type CatalogService interface {
	ListPackages(gymID string) ([]models.Package, error)
	ListTrainers(gymID string) ([]models.Trainer, error)
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: repo}
}

func (s *catalogService) ListPackages(gymID string) ([]models.Package, error) {
	packages, err := s.catalogRepo.ListPackages(gymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

func (s *catalogService) ListTrainers(gymID string) ([]models.Trainer, error) {
	trainers, err := s.catalogRepo.ListTrainers(gymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	return trainers, nil
}
