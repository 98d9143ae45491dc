package service

import (
	"context"

	"github.com/monibBormon/carhouse/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarRepository is interface for interacting with catalog data
type CarRepository interface {
	// CreateCar inserts new car to database
	CreateCar(ctx context.Context, car *models.Car) (*models.Car, error)
	// GetCarByID returns car by identifier
	GetCarByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	// ListCars returns a page of cars and the unfiltered total
	ListCars(ctx context.Context, page, size int64) ([]models.Car, int64, error)
	// DeleteCar removes car by identifier
	DeleteCar(ctx context.Context, id primitive.ObjectID) error
}

// CatalogService owns the product catalog
type CatalogService struct {
	repo CarRepository
}

// NewCatalogService creates new CatalogService instance
func NewCatalogService(repo CarRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Create adds a car to the catalog
func (cs *CatalogService) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	return cs.repo.CreateCar(ctx, car)
}

// Get returns a single car
func (cs *CatalogService) Get(ctx context.Context, id string) (*models.Car, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return cs.repo.GetCarByID(ctx, oid)
}

// List returns a page of cars plus the unfiltered total. Page is
// zero-based, size of zero or less returns everything.
func (cs *CatalogService) List(ctx context.Context, page, size int64) ([]models.Car, int64, error) {
	if page < 0 {
		page = 0
	}
	return cs.repo.ListCars(ctx, page, size)
}

// Delete removes a car from the catalog
func (cs *CatalogService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return cs.repo.DeleteCar(ctx, oid)
}
