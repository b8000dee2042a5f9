package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"prontoshop/dao"
	"prontoshop/dao/cache"
	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const productCacheTTL = 10 * time.Minute

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*types.ProductResponse, error)
	GetProduct(ctx context.Context, productID int64) (*types.ProductResponse, error)
	ListProducts(ctx context.Context, cursor int64, limit int) (*types.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, productID int64, req *types.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID int64) error
}

type ProductService struct {
	ProductRepo     *dao.Products
	SubcategoryRepo *dao.Subcategories
	Cache           *cache.ProductCache
}

func (s *ProductService) CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*types.ProductResponse, error) {
	for _, sid := range req.SubcategoryIds {
		if _, err := s.SubcategoryRepo.FindById(ctx, sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewError(http.StatusBadRequest, "unknown subcategory")
			}
			return nil, err
		}
	}

	images, err := json.Marshal(req.Images)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Images:        datatypes.JSON(images),
		VendorID:      req.VendorId,
	}

	err = s.ProductRepo.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		inv := &models.Inventory{
			ProductID:     product.ID,
			StockQuantity: req.StockQuantity,
			RestockDate:   req.RestockDate,
		}
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		for _, sid := range req.SubcategoryIds {
			link := &models.ProductSubcategory{ProductID: product.ID, SubcategoryID: sid}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(ctx, product.ID)
}

func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*types.ProductResponse, error) {
	var product *models.Product
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, productID); ok {
			product = cached
		}
	}
	if product == nil {
		found, err := s.ProductRepo.FindById(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewError(http.StatusNotFound, "product not found")
			}
			return nil, err
		}
		product = found
		if s.Cache != nil {
			s.Cache.Set(ctx, product, productCacheTTL)
		}
	}

	resp := &types.ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		VendorId:      product.VendorID,
	}
	if len(product.Images) > 0 {
		_ = json.Unmarshal(product.Images, &resp.Images)
	}

	if inv, err := s.ProductRepo.FindInventory(ctx, productID); err == nil {
		resp.StockQuantity = inv.StockQuantity
		resp.RestockDate = inv.RestockDate
	}
	if ids, err := s.ProductRepo.SubcategoryIds(ctx, productID); err == nil {
		resp.SubcategoryIds = ids
	}
	return resp, nil
}

func (s *ProductService) ListProducts(ctx context.Context, cursor int64, limit int) (*types.ListProductsResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	products, err := s.ProductRepo.ListByCursor(ctx, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(products) > limit {
		hasMore = true
		products = products[:limit]
	}
	if len(products) == 0 {
		return &types.ListProductsResponse{Products: []*models.Product{}}, nil
	}

	return &types.ListProductsResponse{
		Products:   products,
		HasMore:    hasMore,
		NextCursor: products[len(products)-1].ID,
	}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, req *types.UpdateProductRequest) error {
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.DiscountPrice != nil {
		updates["discount_price"] = *req.DiscountPrice
	}
	if req.Images != nil {
		raw, err := json.Marshal(req.Images)
		if err != nil {
			return err
		}
		updates["images"] = datatypes.JSON(raw)
	}

	if len(updates) > 0 {
		affected, err := s.ProductRepo.UpdateById(ctx, productID, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return response.NewError(http.StatusNotFound, "product not found")
		}
	}

	if req.StockQuantity != nil || req.RestockDate != nil {
		inv, err := s.ProductRepo.FindInventory(ctx, productID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			inv = &models.Inventory{ProductID: productID}
		}
		if req.StockQuantity != nil {
			inv.StockQuantity = *req.StockQuantity
		}
		if req.RestockDate != nil {
			inv.RestockDate = req.RestockDate
		}
		if err := s.ProductRepo.SaveInventory(ctx, inv); err != nil {
			return err
		}
	}

	if req.SubcategoryIds != nil {
		if err := s.ProductRepo.ReplaceSubcategories(ctx, productID, req.SubcategoryIds); err != nil {
			return err
		}
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, productID)
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.ProductRepo.DeleteById(ctx, productID); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, productID)
	}
	return nil
}
