package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/monibBormon/carhouse/internal/payment"
)

// fixed provider parameters: a single 2-decimal currency and a single
// accepted payment method type
const (
	paymentCurrency    = "usd"
	paymentMethodCard  = "card"
	orderKeyPrefix     = "order:"
	minorUnitsPerMajor = 100
)

// PaymentBridge is interface to the payment-intent provider
type PaymentBridge interface {
	// CreateIntent creates a payment intent with the provider
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}

// PaymentService adapts an order price into a provider payment intent
type PaymentService struct {
	bridge PaymentBridge
}

// NewPaymentService creates new PaymentService instance
func NewPaymentService(bridge PaymentBridge) *PaymentService {
	return &PaymentService{bridge: bridge}
}

// CreateIntent creates a payment intent for price in major currency
// units and returns the client secret. When orderID is given the
// provider call carries an idempotency key derived from it, so
// duplicate calls for the same order resolve to a single intent.
func (ps *PaymentService) CreateIntent(ctx context.Context, orderID string, price float64) (string, error) {
	key := orderKeyPrefix + orderID
	if orderID == "" {
		key = uuid.NewString()
	}

	intent, err := ps.bridge.CreateIntent(ctx, payment.IntentRequest{
		Amount:         MinorUnits(price),
		Currency:       paymentCurrency,
		MethodTypes:    []string{paymentMethodCard},
		IdempotencyKey: key,
	})
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}

// MinorUnits converts a price in major units to minor units assuming
// a 2-decimal currency. Not a general currency conversion.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * minorUnitsPerMajor))
}
