package service

import (
	"context"
	"errors"
	"net/http"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"gorm.io/gorm"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *types.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateSubcategory(ctx context.Context, req *types.CreateSubcategoryRequest) (*models.Subcategory, error)
	ListSubcategories(ctx context.Context, categoryID int64) ([]*models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id int64, req *types.UpdateSubcategoryRequest) error
	DeleteSubcategory(ctx context.Context, id int64) error
}

type CategoryService struct {
	CategoryRepo    *dao.Categories
	SubcategoryRepo *dao.Subcategories
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusBadRequest, "category name already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryRepo.ListAll(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req *types.UpdateCategoryRequest) error {
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	affected, err := s.CategoryRepo.UpdateById(ctx, id, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return response.NewError(http.StatusNotFound, "category not found")
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.CategoryRepo.DeleteById(ctx, id)
}

// CreateSubcategory 子分类必须挂在存在的分类下
func (s *CategoryService) CreateSubcategory(ctx context.Context, req *types.CreateSubcategoryRequest) (*models.Subcategory, error) {
	if _, err := s.CategoryRepo.FindById(ctx, req.CategoryId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusBadRequest, "unknown category")
		}
		return nil, err
	}

	sub := &models.Subcategory{
		CategoryID:  req.CategoryId,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.SubcategoryRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CategoryService) ListSubcategories(ctx context.Context, categoryID int64) ([]*models.Subcategory, error) {
	if categoryID > 0 {
		return s.SubcategoryRepo.ListByCategory(ctx, categoryID)
	}
	return s.SubcategoryRepo.FindAllByWhere(ctx, "1 = 1")
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id int64, req *types.UpdateSubcategoryRequest) error {
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	affected, err := s.SubcategoryRepo.UpdateById(ctx, id, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return response.NewError(http.StatusNotFound, "subcategory not found")
	}
	return nil
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, id int64) error {
	return s.SubcategoryRepo.DeleteById(ctx, id)
}
