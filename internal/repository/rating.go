package repository

import (
	"context"
	"time"

	"github.com/monibBormon/carhouse/internal/models"
	"github.com/monibBormon/carhouse/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ratingCollection = "ratings"

// RatingRepository stores ratings in the ratings collection.
// The collection is append-only.
type RatingRepository struct {
	db *mongodb.DB
}

// NewRatingRepository creates new RatingRepository instance
func NewRatingRepository(db *mongodb.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// CreateRating appends a new rating
func (rr *RatingRepository) CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	rating.CreatedAt = time.Now().UTC()

	res, err := rr.db.Collection(ratingCollection).InsertOne(ctx, rating)
	if err != nil {
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rating.ID = oid
	}

	return rating, nil
}

// ListRatings returns every rating
func (rr *RatingRepository) ListRatings(ctx context.Context) ([]models.Rating, error) {
	cur, err := rr.db.Collection(ratingCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ratings := []models.Rating{}
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, err
	}

	return ratings, nil
}
