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

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	CreateReview(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*models.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.Review, error)
	DeleteReview(ctx context.Context, userID int64, reviewID int64) error
}

type ReviewService struct {
	ReviewRepo *dao.Reviews
}

// CreateReview (user, product) 唯一约束由数据库兜底，冲突转 400
func (s *ReviewService) CreateReview(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		UserID:    userID,
		ProductID: req.ProductId,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.ReviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusBadRequest, "product already reviewed by this user")
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]*models.Review, error) {
	return s.ReviewRepo.ListByProduct(ctx, productID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID int64, reviewID int64) error {
	review, err := s.ReviewRepo.FindById(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "review not found")
		}
		return err
	}
	if review.UserID != userID {
		return response.NewError(http.StatusForbidden, "not your review")
	}
	return s.ReviewRepo.DeleteById(ctx, reviewID)
}
