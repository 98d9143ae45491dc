package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/monibBormon/carhouse/internal/models"
)

type CatalogService interface {
	Create(ctx context.Context, car *models.Car) (*models.Car, error)
	Get(ctx context.Context, id string) (*models.Car, error)
	List(ctx context.Context, page, size int64) ([]models.Car, int64, error)
	Delete(ctx context.Context, id string) error
}

// CatalogHandler represents HTTP handler for catalog-related requests
type CatalogHandler struct {
	svc      CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates new CatalogHandler instance
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type listCarsResp struct {
	Count  int64        `json:"count"`
	Result []models.Car `json:"result"`
}

// ListCars lists the catalog.
// Optional page and size query parameters select a zero-based page,
// count always carries the unfiltered total.
// 200 — page returned;
// 400 — malformed pagination parameters;
// 500 — internal error.
func (ch *CatalogHandler) ListCars() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, size := int64(0), int64(0)

		if v := r.URL.Query().Get("page"); v != "" {
			p, err := strconv.ParseInt(v, 10, 64)
			if err != nil || p < 0 {
				http.Error(w, "invalid page", http.StatusBadRequest)
				return
			}
			page = p
		}
		if v := r.URL.Query().Get("size"); v != "" {
			s, err := strconv.ParseInt(v, 10, 64)
			if err != nil || s < 0 {
				http.Error(w, "invalid size", http.StatusBadRequest)
				return
			}
			size = s
		}

		cars, total, err := ch.svc.List(r.Context(), page, size)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, listCarsResp{
			Count:  total,
			Result: cars,
		})
	}
}

// GetCar fetches a single car.
// 200 — car returned;
// 400 — malformed identifier;
// 404 — no such car;
// 500 — internal error.
func (ch *CatalogHandler) GetCar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		car, err := ch.svc.Get(r.Context(), chi.URLParam(r, "id"))
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

		writeJSON(w, http.StatusOK, car)
	}
}

type createCarRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Img         string  `json:"img"`
}

// CreateCar adds a car to the catalog.
// 201 — car created;
// 400 — malformed body;
// 422 — body failed validation;
// 500 — internal error.
func (ch *CatalogHandler) CreateCar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCarRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.validate.Struct(req); err != nil {
			http.Error(w, "invalid car", http.StatusUnprocessableEntity)
			return
		}

		car := models.Car{
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
			Img:         req.Img,
		}

		created, err := ch.svc.Create(r.Context(), &car)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// DeleteCar removes a car from the catalog.
// 204 — car removed;
// 400 — malformed identifier;
// 404 — no such car;
// 500 — internal error.
func (ch *CatalogHandler) DeleteCar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := ch.svc.Delete(r.Context(), chi.URLParam(r, "id"))
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
