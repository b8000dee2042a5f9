package service

import (
	"context"
	"net/http"
	"testing"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	s := &ReviewService{ReviewRepo: dao.NewReviews(db)}
	ctx := context.Background()

	req := &types.CreateReviewRequest{ProductId: 10, Rating: 5, Comment: "great"}

	_, err := s.CreateReview(ctx, 1, req)
	require.NoError(t, err)

	_, err = s.CreateReview(ctx, 1, req)
	require.Error(t, err)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)

	var count int64
	db.Model(&models.Review{}).Where("user_id = ? AND product_id = ?", 1, 10).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateReviewDifferentUsersAllowed(t *testing.T) {
	db := newTestDB(t)
	s := &ReviewService{ReviewRepo: dao.NewReviews(db)}
	ctx := context.Background()

	req := &types.CreateReviewRequest{ProductId: 10, Rating: 4}

	_, err := s.CreateReview(ctx, 1, req)
	require.NoError(t, err)
	_, err = s.CreateReview(ctx, 2, req)
	require.NoError(t, err)

	reviews, err := s.ListByProduct(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewCanBeRecreatedAfterDelete(t *testing.T) {
	db := newTestDB(t)
	s := &ReviewService{ReviewRepo: dao.NewReviews(db)}
	ctx := context.Background()

	review, err := s.CreateReview(ctx, 1, &types.CreateReviewRequest{ProductId: 10, Rating: 2, Comment: "meh"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteReview(ctx, 1, review.ID))

	// 删除后唯一索引已释放，同一 (user, product) 可以重新评价
	again, err := s.CreateReview(ctx, 1, &types.CreateReviewRequest{ProductId: 10, Rating: 5, Comment: "better"})
	require.NoError(t, err)
	assert.Equal(t, 5, again.Rating)

	var count int64
	db.Model(&models.Review{}).Where("user_id = ? AND product_id = ?", 1, 10).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteReviewOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	s := &ReviewService{ReviewRepo: dao.NewReviews(db)}
	ctx := context.Background()

	review, err := s.CreateReview(ctx, 1, &types.CreateReviewRequest{ProductId: 10, Rating: 3})
	require.NoError(t, err)

	err = s.DeleteReview(ctx, 2, review.ID)
	require.Error(t, err)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusForbidden, be.Code)

	require.NoError(t, s.DeleteReview(ctx, 1, review.ID))

	err = s.DeleteReview(ctx, 1, review.ID)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}
