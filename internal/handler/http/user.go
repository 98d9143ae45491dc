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

type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	PromoteAdmin(ctx context.Context, email string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// UserHandler represents HTTP handler for user-related requests
type UserHandler struct {
	svc      UserService
	validate *validator.Validate
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type userRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName"`
}

// CreateUser registers a new user.
// 201 — user created;
// 400 — malformed body;
// 409 — email already registered;
// 422 — body failed validation;
// 500 — internal error.
func (uh *UserHandler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := uh.validate.Struct(req); err != nil {
			http.Error(w, "invalid user", http.StatusUnprocessableEntity)
			return
		}

		user := models.User{
			Email:       req.Email,
			DisplayName: req.DisplayName,
		}

		created, err := uh.svc.Create(r.Context(), &user)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrConflictData):
				http.Error(w, "user already exists", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// UpsertUser stores the user keyed by email, used for federated
// sign-in.
// 200 — user stored;
// 400 — malformed body;
// 422 — body failed validation;
// 500 — internal error.
func (uh *UserHandler) UpsertUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := uh.validate.Struct(req); err != nil {
			http.Error(w, "invalid user", http.StatusUnprocessableEntity)
			return
		}

		user := models.User{
			Email:       req.Email,
			DisplayName: req.DisplayName,
		}

		if err := uh.svc.Upsert(r.Context(), &user); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type promoteAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PromoteAdmin grants the admin role to the given email. The admin
// middleware guards this route, so only an existing admin can promote.
// 200 — role set;
// 400 — malformed body;
// 404 — no user with that email;
// 422 — body failed validation;
// 500 — internal error.
func (uh *UserHandler) PromoteAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req promoteAdminRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := uh.validate.Struct(req); err != nil {
			http.Error(w, "invalid user", http.StatusUnprocessableEntity)
			return
		}

		if err := uh.svc.PromoteAdmin(r.Context(), req.Email); err != nil {
			switch {
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

type checkAdminResp struct {
	Admin bool `json:"admin"`
}

// CheckAdmin reports whether the given email holds the admin role.
// An unknown email is reported as not an admin.
// 200 — answer returned;
// 500 — internal error.
func (uh *UserHandler) CheckAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isAdmin, err := uh.svc.IsAdmin(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, checkAdminResp{Admin: isAdmin})
	}
}
