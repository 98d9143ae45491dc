package service

import (
	"context"

	"github.com/monibBormon/carhouse/internal/models"
)

// RatingRepository is interface for interacting with rating data
type RatingRepository interface {
	// CreateRating appends a new rating
	CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	// ListRatings returns every rating
	ListRatings(ctx context.Context) ([]models.Rating, error)
}

// RatingService owns the append-only rating log
type RatingService struct {
	repo RatingRepository
}

// NewRatingService creates new RatingService instance
func NewRatingService(repo RatingRepository) *RatingService {
	return &RatingService{repo: repo}
}

// Add appends a rating
func (rs *RatingService) Add(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	return rs.repo.CreateRating(ctx, rating)
}

// List returns every rating
func (rs *RatingService) List(ctx context.Context) ([]models.Rating, error) {
	return rs.repo.ListRatings(ctx)
}
