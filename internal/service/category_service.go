package service

import (
	"context"

	"youthive/internal/models"
	"youthive/internal/repository"
)

type CategoryService interface {
	All(ctx context.Context) ([]models.Category, error)
	TopLevel(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) All(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *categoryService) TopLevel(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetTopLevel(ctx)
}
