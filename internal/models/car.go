package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car is catalog product entity
type Car struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Img         string             `bson:"img,omitempty" json:"img,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
