package service

import (
	"context"
	"errors"

	"github.com/monibBormon/carhouse/internal/models"
)

// UserRepository is interface for interacting with user-related data
type UserRepository interface {
	// CreateUser inserts new user to database
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// UpsertUser updates the user matched by email, inserting when absent
	UpsertUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns user by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// SetUserRole sets the role of the user matched by email
	SetUserRole(ctx context.Context, email string, role models.Role) error
}

// UserService owns the user directory
type UserService struct {
	repo UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new user with the default member role
func (us *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Role == "" {
		user.Role = models.RoleMember
	}

	return us.repo.CreateUser(ctx, user)
}

// Upsert stores the user keyed by email. Role is left untouched so a
// federated sign-in cannot reset an admin to member.
func (us *UserService) Upsert(ctx context.Context, user *models.User) error {
	return us.repo.UpsertUser(ctx, user)
}

// PromoteAdmin grants the admin role to the user with the given email
func (us *UserService) PromoteAdmin(ctx context.Context, email string) error {
	return us.repo.SetUserRole(ctx, email, models.RoleAdmin)
}

// IsAdmin reports whether the user with the given email holds the
// admin capability. An unknown email is not an error, it is simply
// not an admin.
func (us *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := us.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role.IsAdmin(), nil
}
