package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// order status, wire values kept as the storefront sends and displays them
const (
	OrderStatusPending  = "Pending"
	OrderStatusApproved = "Approved"
	OrderStatusOnTheWay = "on the way"
)

// statusRank orders the lifecycle for transition checks
var statusRank = map[string]int{
	OrderStatusPending:  0,
	OrderStatusApproved: 1,
	OrderStatusOnTheWay: 2,
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from cur to next.
// Forward moves and re-applying the current status are allowed,
// backward moves are not.
func CanTransition(cur, next string) bool {
	cr, ok := statusRank[cur]
	if !ok {
		return false
	}
	nr, ok := statusRank[next]
	if !ok {
		return false
	}
	return nr >= cr
}

// ProductSnapshot is the product context embedded into an order at
// creation time. It is a copy, not a live reference.
type ProductSnapshot struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
}

// PaymentRecord is the opaque payload written into an order once a
// payment completes. Once set it is never cleared, last write wins.
type PaymentRecord map[string]interface{}

// Order is order entity
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Product   ProductSnapshot    `bson:"product" json:"product"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Payment   PaymentRecord      `bson:"payment,omitempty" json:"payment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
