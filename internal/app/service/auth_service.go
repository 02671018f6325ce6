package service

import (
	"context"
	"errors"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/common/security"
	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	issuer   *security.TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, issuer *security.TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, issuer: issuer}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// Register creates a user unless the name is already taken. The stored
// password is a bcrypt hash and is never returned.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	_, err := s.userRepo.FindByName(ctx, req.Name)
	if err == nil {
		return nil, fmt.Errorf("user %s already exists: %w", req.Name, common.ErrBadRequest)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token. An unknown email
// and a wrong password produce the same status but distinct messages.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user with email %s not found: %w", req.Email, common.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid password: %w", common.ErrBadRequest)
	}

	token, err := s.issuer.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{Msg: "Logged in", Token: token}, nil
}
