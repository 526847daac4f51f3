package service

import (
	"context"
	"fmt"

	"github.com/forgo/hangar/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetBySub(ctx context.Context, sub string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

// UserService handles user business logic
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List retrieves all registered users
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// EnsureUser records the subject on first login. Subsequent logins with the
// same subject return the existing record.
func (s *UserService) EnsureUser(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.userRepo.GetBySub(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user = &model.User{Sub: sub}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
