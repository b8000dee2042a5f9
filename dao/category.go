package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Categories struct {
	Repo[models.Category]
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{
		Repo: NewRepo[models.Category](db),
	}
}

func (c *Categories) ListAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := c.Db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

type Subcategories struct {
	Repo[models.Subcategory]
}

func NewSubcategories(db *gorm.DB) *Subcategories {
	return &Subcategories{
		Repo: NewRepo[models.Subcategory](db),
	}
}

func (s *Subcategories) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Subcategory, error) {
	var subs []*models.Subcategory
	err := s.Db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&subs).Error
	return subs, err
}
