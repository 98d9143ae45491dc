package service

import (
	"context"

	"github.com/monibBormon/carhouse/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by identifier
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	// GetOrdersByEmail gets orders of a single buyer
	GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	// GetOrders returns every order in the ledger
	GetOrders(ctx context.Context) ([]models.Order, error)
	// UpdateOrderStatus sets the order status
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error
	// SetOrderPayment merges the payment payload into the order
	SetOrderPayment(ctx context.Context, id primitive.ObjectID, payment models.PaymentRecord) error
	// DeleteOrder removes order by identifier
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
}

// OrderService owns the order lifecycle
type OrderService struct {
	repo OrderRepository
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create places a new order. The product snapshot is embedded as sent,
// there is no foreign-key check against the catalog. Status is always
// Pending at creation.
func (os *OrderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.Status = models.OrderStatusPending
	order.Payment = nil

	return os.repo.CreateOrder(ctx, order)
}

// Get returns a single order for the payment flow
func (os *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return os.repo.GetOrderByID(ctx, oid)
}

// ListByEmail returns orders whose buyer email exactly matches
func (os *OrderService) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return os.repo.GetOrdersByEmail(ctx, email)
}

// ListAll returns the full ledger. Callers must be authorized, the
// handler layer enforces the admin capability.
func (os *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return os.repo.GetOrders(ctx)
}

// Approve moves the order to Approved
func (os *OrderService) Approve(ctx context.Context, id string) error {
	return os.setStatus(ctx, id, models.OrderStatusApproved)
}

// MarkDispatched moves the order to on the way
func (os *OrderService) MarkDispatched(ctx context.Context, id string) error {
	return os.setStatus(ctx, id, models.OrderStatusOnTheWay)
}

// setStatus applies a guarded status transition. Re-applying the
// current status succeeds, moving backward does not. Two concurrent
// transitions race with last-write-wins semantics, there is no
// version check.
func (os *OrderService) setStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return models.ErrInvalidStatus
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	order, err := os.repo.GetOrderByID(ctx, oid)
	if err != nil {
		return err
	}

	if !models.CanTransition(order.Status, status) {
		return models.ErrInvalidStatusTransition
	}

	return os.repo.UpdateOrderStatus(ctx, oid, status)
}

// RecordPayment merges the payment payload into the order. It is
// orthogonal to status transitions and may be called in any state,
// last write wins.
func (os *OrderService) RecordPayment(ctx context.Context, id string, payment models.PaymentRecord) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return os.repo.SetOrderPayment(ctx, oid, payment)
}

// Delete removes the order unconditionally
func (os *OrderService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return os.repo.DeleteOrder(ctx, oid)
}

// parseID converts a hex identifier from the wire to an object id
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrInvalidID
	}
	return oid, nil
}
