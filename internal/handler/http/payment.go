package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/monibBormon/carhouse/internal/models"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, orderID string, price float64) (string, error)
}

// PaymentHandler represents HTTP handler for payment-intent requests
type PaymentHandler struct {
	svc      PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type createIntentRequest struct {
	OrderID string  `json:"orderId"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResp struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent creates a provider payment intent for the given
// price and returns the client secret for client-side completion.
// 200 — intent created;
// 400 — malformed body;
// 422 — body failed validation;
// 502 — provider rejected the request or is unavailable;
// 500 — internal error.
func (ph *PaymentHandler) CreatePaymentIntent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createIntentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ph.validate.Struct(req); err != nil {
			http.Error(w, "invalid price", http.StatusUnprocessableEntity)
			return
		}

		secret, err := ph.svc.CreateIntent(r.Context(), req.OrderID, req.Price)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrPaymentRejected), errors.Is(err, models.ErrPaymentUnavailable):
				http.Error(w, "payment provider error", http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, createIntentResp{ClientSecret: secret})
	}
}
