package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/monibBormon/carhouse/internal/models"
)

type OrderService interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	Approve(ctx context.Context, id string) error
	MarkDispatched(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, id string, payment models.PaymentRecord) error
	Delete(ctx context.Context, id string) error
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc      OrderService
	validate *validator.Validate
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type orderProductRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Email   string              `json:"email" validate:"required,email"`
	Product orderProductRequest `json:"product" validate:"required"`
	Address string              `json:"address"`
	Phone   string              `json:"phone"`
}

// CreateOrder places a new order.
// 201 — order created;
// 400 — malformed body;
// 422 — body failed validation;
// 500 — internal error.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.validate.Struct(req); err != nil {
			http.Error(w, "invalid order", http.StatusUnprocessableEntity)
			return
		}

		order := models.Order{
			Email: req.Email,
			Product: models.ProductSnapshot{
				ProductID: req.Product.ProductID,
				Name:      req.Product.Name,
				Price:     req.Product.Price,
			},
			Address: req.Address,
			Phone:   req.Phone,
		}

		created, err := oh.svc.Create(r.Context(), &order)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// ListOrders lists the orders of a single buyer.
// 200 — orders returned;
// 400 — missing email parameter;
// 500 — internal error.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}

		orders, err := oh.svc.ListByEmail(r.Context(), email)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

// ListAllOrders lists the full ledger. The admin middleware guards
// this route.
// 200 — orders returned;
// 500 — internal error.
func (oh *OrderHandler) ListAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := oh.svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

// GetOrderForPayment fetches a single order for the payment flow.
// 200 — order returned;
// 400 — malformed identifier;
// 404 — no such order;
// 500 — internal error.
func (oh *OrderHandler) GetOrderForPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := oh.svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidID):
				http.Error(w, "invalid identifier", http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

// RecordPayment merges the opaque payment payload into the order.
// 200 — payment recorded;
// 400 — malformed identifier or empty payload;
// 404 — no such order;
// 500 — internal error.
func (oh *OrderHandler) RecordPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.PaymentRecord

		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		err := oh.svc.RecordPayment(r.Context(), chi.URLParam(r, "id"), payload)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidID):
				http.Error(w, "invalid identifier", http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// ApproveOrder moves the order to Approved.
// 200 — status set;
// 400 — malformed identifier;
// 404 — no such order;
// 409 — transition not allowed from the current status;
// 500 — internal error.
func (oh *OrderHandler) ApproveOrder() http.HandlerFunc {
	return oh.updateStatus(func(ctx context.Context, id string) error {
		return oh.svc.Approve(ctx, id)
	})
}

// DispatchOrder moves the order to on the way. Same responses as
// ApproveOrder.
func (oh *OrderHandler) DispatchOrder() http.HandlerFunc {
	return oh.updateStatus(func(ctx context.Context, id string) error {
		return oh.svc.MarkDispatched(ctx, id)
	})
}

func (oh *OrderHandler) updateStatus(transition func(ctx context.Context, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := transition(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidID):
				http.Error(w, "invalid identifier", http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidStatusTransition):
				http.Error(w, "disallowed transition", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteOrder removes an order from the ledger.
// 204 — order removed;
// 400 — malformed identifier;
// 404 — no such order;
// 500 — internal error.
func (oh *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := oh.svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidID):
				http.Error(w, "invalid identifier", http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
