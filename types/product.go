package types

import (
	"time"

	"prontoshop/models"
)

type CreateProductRequest struct {
	Name           string     `json:"name" binding:"required"`
	Description    string     `json:"description"`
	Price          int64      `json:"price" binding:"required,min=1"` // 分
	DiscountPrice  int64      `json:"discount_price"`
	Images         []string   `json:"images"`
	VendorId       int64      `json:"vendor_id"`
	SubcategoryIds []int64    `json:"subcategory_ids"`
	StockQuantity  int64      `json:"stock_quantity"`
	RestockDate    *time.Time `json:"restock_date"`
}

type UpdateProductRequest struct {
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	Price          int64      `json:"price"`
	DiscountPrice  *int64     `json:"discount_price"`
	Images         []string   `json:"images"`
	SubcategoryIds []int64    `json:"subcategory_ids"`
	StockQuantity  *int64     `json:"stock_quantity"`
	RestockDate    *time.Time `json:"restock_date"`
}

type ProductResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          int64      `json:"price"`
	DiscountPrice  int64      `json:"discount_price"`
	Images         []string   `json:"images"`
	VendorId       int64      `json:"vendor_id"`
	SubcategoryIds []int64    `json:"subcategory_ids"`
	StockQuantity  int64      `json:"stock_quantity"`
	RestockDate    *time.Time `json:"restock_date"`
}

// ListProductsResponse 滑动加载响应体
type ListProductsResponse struct {
	Products   []*models.Product `json:"products"`
	HasMore    bool              `json:"has_more"`
	NextCursor int64             `json:"next_cursor"`
}
