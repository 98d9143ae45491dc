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
)

const orderCollection = "orders"

// OrderRepository stores orders in the orders collection
type OrderRepository struct {
	db *mongodb.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *mongodb.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.CreatedAt = time.Now().UTC()

	res, err := or.db.Collection(orderCollection).InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return order, nil
}

// GetOrderByID returns order by identifier
func (or *OrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order := models.Order{}
	err := or.db.Collection(orderCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrdersByEmail gets orders of a single buyer
func (or *OrderRepository) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return or.findOrders(ctx, bson.M{"email": email})
}

// GetOrders returns every order in the ledger
func (or *OrderRepository) GetOrders(ctx context.Context) ([]models.Order, error) {
	return or.findOrders(ctx, bson.M{})
}

func (or *OrderRepository) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cur, err := or.db.Collection(orderCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus sets the order status
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := or.db.Collection(orderCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// SetOrderPayment merges the payment payload into the order. Last
// write wins on the payment field only.
func (or *OrderRepository) SetOrderPayment(ctx context.Context, id primitive.ObjectID, payment models.PaymentRecord) error {
	res, err := or.db.Collection(orderCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"payment": payment}},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// DeleteOrder removes order by identifier
func (or *OrderRepository) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	res, err := or.db.Collection(orderCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return models.ErrDataNotFound
	}

	return nil
}
