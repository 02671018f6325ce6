package service

import (
	"context"
	"fmt"

	"race_timing/internal/common/security"
	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Update applies a partial update. The password hash is only rewritten when
// the request actually carries a new password; an absent password leaves the
// stored hash untouched.
func (s *UserService) Update(ctx context.Context, id int, req UpdateUserRequest) (*model.User, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	params := repository.UpdateUserParams{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		params.PasswordHash = &hashed
	}

	return s.userRepo.Update(ctx, id, params)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}
