package service

import (
	"context"
	"sync"
	"testing"

	"github.com/monibBormon/carhouse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memOrderRepo is an in-memory OrderRepository with last-write-wins
// update semantics, mirroring single-document store writes.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[primitive.ObjectID]*models.Order{}}
}

func (m *memOrderRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order.ID = primitive.NewObjectID()
	cp := *order
	m.orders[order.ID] = &cp
	return order, nil
}

func (m *memOrderRepo) GetOrderByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *memOrderRepo) GetOrdersByEmail(_ context.Context, email string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []models.Order{}
	for _, order := range m.orders {
		if order.Email == email {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *memOrderRepo) GetOrders(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []models.Order{}
	for _, order := range m.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (m *memOrderRepo) UpdateOrderStatus(_ context.Context, id primitive.ObjectID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return models.ErrDataNotFound
	}
	order.Status = status
	return nil
}

func (m *memOrderRepo) SetOrderPayment(_ context.Context, id primitive.ObjectID, payment models.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return models.ErrDataNotFound
	}
	order.Payment = payment
	return nil
}

func (m *memOrderRepo) DeleteOrder(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[id]; !ok {
		return models.ErrDataNotFound
	}
	delete(m.orders, id)
	return nil
}

func placeOrder(t *testing.T, svc *OrderService) *models.Order {
	t.Helper()

	order, err := svc.Create(context.Background(), &models.Order{
		Email: "buyer@example.com",
		Product: models.ProductSnapshot{
			Name:  "BMW X5",
			Price: 65000,
		},
	})
	require.NoError(t, err)
	return order
}

func TestOrderService_CreateSetsPendingStatus(t *testing.T) {
	svc := NewOrderService(newMemOrderRepo())

	order := placeOrder(t, svc)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.Payment)
}

func TestOrderService_ApproveIsIdempotent(t *testing.T) {
	svc := NewOrderService(newMemOrderRepo())
	order := placeOrder(t, svc)
	id := order.ID.Hex()

	require.NoError(t, svc.Approve(context.Background(), id))
	require.NoError(t, svc.Approve(context.Background(), id))

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, got.Status)
}

func TestOrderService_BackwardTransitionRejected(t *testing.T) {
	svc := NewOrderService(newMemOrderRepo())
	order := placeOrder(t, svc)
	id := order.ID.Hex()

	require.NoError(t, svc.MarkDispatched(context.Background(), id))

	err := svc.Approve(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrInvalidStatusTransition)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOnTheWay, got.Status)
}

func TestOrderService_RecordPaymentCommutesWithApprove(t *testing.T) {
	payload := models.PaymentRecord{"transactionId": "pi_123", "last4": "4242"}
	ctx := context.Background()

	// payment before approve
	svcA := NewOrderService(newMemOrderRepo())
	orderA := placeOrder(t, svcA)
	require.NoError(t, svcA.RecordPayment(ctx, orderA.ID.Hex(), payload))
	require.NoError(t, svcA.Approve(ctx, orderA.ID.Hex()))

	// approve before payment
	svcB := NewOrderService(newMemOrderRepo())
	orderB := placeOrder(t, svcB)
	require.NoError(t, svcB.Approve(ctx, orderB.ID.Hex()))
	require.NoError(t, svcB.RecordPayment(ctx, orderB.ID.Hex(), payload))

	gotA, err := svcA.Get(ctx, orderA.ID.Hex())
	require.NoError(t, err)
	gotB, err := svcB.Get(ctx, orderB.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, gotA.Payment, gotB.Payment)
	assert.Equal(t, models.OrderStatusApproved, gotA.Status)
	assert.Equal(t, models.OrderStatusApproved, gotB.Status)
}

func TestOrderService_RecordPaymentLastWriteWins(t *testing.T) {
	svc := NewOrderService(newMemOrderRepo())
	order := placeOrder(t, svc)
	id := order.ID.Hex()
	ctx := context.Background()

	require.NoError(t, svc.RecordPayment(ctx, id, models.PaymentRecord{"transactionId": "pi_1"}))
	require.NoError(t, svc.RecordPayment(ctx, id, models.PaymentRecord{"transactionId": "pi_2"}))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "pi_2", got.Payment["transactionId"])
}

func TestOrderService_UnknownAndInvalidIdentifiers(t *testing.T) {
	svc := NewOrderService(newMemOrderRepo())
	ctx := context.Background()
	missing := primitive.NewObjectID().Hex()

	assert.ErrorIs(t, svc.Approve(ctx, missing), models.ErrDataNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, missing), models.ErrDataNotFound)
	assert.ErrorIs(t, svc.RecordPayment(ctx, missing, models.PaymentRecord{"x": 1}), models.ErrDataNotFound)

	assert.ErrorIs(t, svc.Approve(ctx, "not-an-id"), models.ErrInvalidID)
	_, err := svc.Get(ctx, "not-an-id")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestOrderService_ListByEmailFilters(t *testing.T) {
	repo := newMemOrderRepo()
	svc := NewOrderService(repo)
	ctx := context.Background()

	placeOrder(t, svc)
	placeOrder(t, svc)
	_, err := svc.Create(ctx, &models.Order{Email: "other@example.com"})
	require.NoError(t, err)

	mine, err := svc.ListByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, order := range mine {
		assert.Equal(t, "buyer@example.com", order.Email)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderService_ConcurrentApproveAndDispatch(t *testing.T) {
	svc := NewOrderService(newMemOrderRepo())
	order := placeOrder(t, svc)
	id := order.ID.Hex()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		// a concurrent dispatch may land first, making approve a
		// rejected backward move; either way the order must end in
		// exactly one of the two states
		_ = svc.Approve(ctx, id)
	}()
	go func() {
		defer wg.Done()
		_ = svc.MarkDispatched(ctx, id)
	}()
	wg.Wait()

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, []string{models.OrderStatusApproved, models.OrderStatusOnTheWay}, got.Status)
}
