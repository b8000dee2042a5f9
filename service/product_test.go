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
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		ProductRepo:     dao.NewProducts(db),
		SubcategoryRepo: dao.NewSubcategories(db),
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	db := newTestDB(t)
	s := newProductService(db)
	ctx := context.Background()

	category := &models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(category).Error)
	sub := &models.Subcategory{CategoryID: category.ID, Name: "Phones"}
	require.NoError(t, db.Create(sub).Error)

	created, err := s.CreateProduct(ctx, &types.CreateProductRequest{
		Name:           "Phone X",
		Description:    "A phone",
		Price:          49900,
		Images:         []string{"/img/a.png", "/img/b.png"},
		SubcategoryIds: []int64{sub.ID},
		StockQuantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.StockQuantity)
	assert.Equal(t, []int64{sub.ID}, created.SubcategoryIds)
	assert.Equal(t, []string{"/img/a.png", "/img/b.png"}, created.Images)

	got, err := s.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone X", got.Name)
	assert.Equal(t, int64(49900), got.Price)
}

func TestCreateProductUnknownSubcategory(t *testing.T) {
	db := newTestDB(t)
	s := newProductService(db)

	_, err := s.CreateProduct(context.Background(), &types.CreateProductRequest{
		Name:           "Phone X",
		Price:          49900,
		SubcategoryIds: []int64{9999},
	})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)
}

func TestGetProductNotFound(t *testing.T) {
	db := newTestDB(t)
	s := newProductService(db)

	_, err := s.GetProduct(context.Background(), 12345)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}

func TestListProductsPagination(t *testing.T) {
	db := newTestDB(t)
	s := newProductService(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.Product{Name: "P", Price: 100}).Error)
	}

	page1, err := s.ListProducts(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, page1.Products, 3)
	assert.True(t, page1.HasMore)

	page2, err := s.ListProducts(ctx, page1.NextCursor, 3)
	require.NoError(t, err)
	require.Len(t, page2.Products, 2)
	assert.False(t, page2.HasMore)
}

func TestUpdateProductPartial(t *testing.T) {
	db := newTestDB(t)
	s := newProductService(db)
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, &types.CreateProductRequest{Name: "P", Price: 100, StockQuantity: 1})
	require.NoError(t, err)

	stock := int64(9)
	require.NoError(t, s.UpdateProduct(ctx, created.ID, &types.UpdateProductRequest{
		Name:          "P2",
		StockQuantity: &stock,
	}))

	got, err := s.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "P2", got.Name)
	assert.Equal(t, int64(100), got.Price)
	assert.Equal(t, int64(9), got.StockQuantity)

	err = s.UpdateProduct(ctx, 9999, &types.UpdateProductRequest{Name: "nope"})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}
