package repository

import (
	"context"
	"errors"
	"time"

	"github.com/monibBormon/carhouse/internal/models"
	"github.com/monibBormon/carhouse/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const carCollection = "products"

// CarRepository stores catalog products in the products collection
type CarRepository struct {
	db *mongodb.DB
}

// NewCarRepository creates new CarRepository instance
func NewCarRepository(db *mongodb.DB) *CarRepository {
	return &CarRepository{db: db}
}

// CreateCar inserts new car to database
func (cr *CarRepository) CreateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	car.CreatedAt = time.Now().UTC()

	res, err := cr.db.Collection(carCollection).InsertOne(ctx, car)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		car.ID = oid
	}

	return car, nil
}

// GetCarByID returns car by identifier
func (cr *CarRepository) GetCarByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	car := models.Car{}
	err := cr.db.Collection(carCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &car, nil
}

// ListCars returns a page of cars and the unfiltered total. A size of
// zero or less disables pagination and returns the full list.
func (cr *CarRepository) ListCars(ctx context.Context, page, size int64) ([]models.Car, int64, error) {
	coll := cr.db.Collection(carCollection)

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find()
	if size > 0 {
		opts.SetSkip(page * size).SetLimit(size)
	}

	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	cars := []models.Car{}
	if err := cur.All(ctx, &cars); err != nil {
		return nil, 0, err
	}

	return cars, total, nil
}

// DeleteCar removes car by identifier
func (cr *CarRepository) DeleteCar(ctx context.Context, id primitive.ObjectID) error {
	res, err := cr.db.Collection(carCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return models.ErrDataNotFound
	}

	return nil
}
