package service

import (
	"context"
	"net/http"
	"testing"

	"prontoshop/dao"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		CategoryRepo:    dao.NewCategories(db),
		SubcategoryRepo: dao.NewSubcategories(db),
	}
}

func TestCategoryCrud(t *testing.T) {
	db := newTestDB(t)
	s := newCategoryService(db)
	ctx := context.Background()

	category, err := s.CreateCategory(ctx, &types.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	require.NotZero(t, category.ID)

	all, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.UpdateCategory(ctx, category.ID, &types.UpdateCategoryRequest{Name: "Gadgets"}))

	all, err = s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", all[0].Name)

	// 更新不存在的分类 404
	err = s.UpdateCategory(ctx, 9999, &types.UpdateCategoryRequest{Name: "Nope"})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)

	require.NoError(t, s.DeleteCategory(ctx, category.ID))
	all, err = s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubcategoryRequiresCategory(t *testing.T) {
	db := newTestDB(t)
	s := newCategoryService(db)
	ctx := context.Background()

	_, err := s.CreateSubcategory(ctx, &types.CreateSubcategoryRequest{CategoryId: 9999, Name: "Phones"})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)

	category, err := s.CreateCategory(ctx, &types.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	sub, err := s.CreateSubcategory(ctx, &types.CreateSubcategoryRequest{CategoryId: category.ID, Name: "Phones"})
	require.NoError(t, err)

	subs, err := s.ListSubcategories(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)
}
