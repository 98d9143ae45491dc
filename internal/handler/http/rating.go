package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/monibBormon/carhouse/internal/models"
)

type RatingService interface {
	Add(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	List(ctx context.Context) ([]models.Rating, error)
}

// RatingHandler represents HTTP handler for rating-related requests
type RatingHandler struct {
	svc      RatingService
	validate *validator.Validate
}

// NewRatingHandler creates new RatingHandler instance
func NewRatingHandler(svc RatingService) *RatingHandler {
	return &RatingHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type createRatingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Rating      float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Description string  `json:"description"`
}

// CreateRating appends a rating.
// 201 — rating stored;
// 400 — malformed body;
// 422 — body failed validation;
// 500 — internal error.
func (rh *RatingHandler) CreateRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRatingRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := rh.validate.Struct(req); err != nil {
			http.Error(w, "invalid rating", http.StatusUnprocessableEntity)
			return
		}

		rating := models.Rating{
			Name:        req.Name,
			Email:       req.Email,
			Rating:      req.Rating,
			Description: req.Description,
		}

		created, err := rh.svc.Add(r.Context(), &rating)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// ListRatings returns every rating.
// 200 — ratings returned;
// 500 — internal error.
func (rh *RatingHandler) ListRatings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := rh.svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ratings)
	}
}
