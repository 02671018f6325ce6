package service

import (
	"context"

	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*model.Category, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*model.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id int, req UpdateCategoryRequest) (*model.Category, error) {
	return s.categoryRepo.Update(ctx, id, repository.UpdateCategoryParams{Name: req.Name})
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.categoryRepo.Delete(ctx, id)
}
