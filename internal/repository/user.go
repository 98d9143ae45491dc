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

const userCollection = "users"

// UserRepository stores users in the users collection, keyed by email
type UserRepository struct {
	db *mongodb.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *mongodb.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts new user to database
func (ur *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now().UTC()

	res, err := ur.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return user, nil
}

// UpsertUser updates the user matched by email, inserting it when
// absent. Used for federated sign-in.
func (ur *UserRepository) UpsertUser(ctx context.Context, user *models.User) error {
	update := bson.M{
		"email": user.Email,
	}
	if user.DisplayName != "" {
		update["displayName"] = user.DisplayName
	}

	_, err := ur.db.Collection(userCollection).UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{
			"$set":         update,
			"$setOnInsert": bson.M{"createdAt": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)

	return err
}

// GetUserByEmail returns user by email
func (ur *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	err := ur.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

// SetUserRole sets the role of the user matched by email
func (ur *UserRepository) SetUserRole(ctx context.Context, email string, role models.Role) error {
	res, err := ur.db.Collection(userCollection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return models.ErrDataNotFound
	}

	return nil
}
