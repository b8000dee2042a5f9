package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Reviews struct {
	Repo[models.Review]
}

func NewReviews(db *gorm.DB) *Reviews {
	return &Reviews{
		Repo: NewRepo[models.Review](db),
	}
}

func (r *Reviews) ListByProduct(ctx context.Context, productID int64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id desc").
		Find(&reviews).Error
	return reviews, err
}
