package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product 对应数据库中的 products 表
type Product struct {
	ID            int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string         `gorm:"size:255;not null;index:idx_products_name;column:name" json:"name"`
	Description   string         `gorm:"type:text;column:description" json:"description"`
	Price         int64          `gorm:"not null;column:price" json:"price"`            // 价格（单位：分）
	DiscountPrice int64          `gorm:"default:0;column:discount_price" json:"discount_price"` // 0 表示无折扣
	Images        datatypes.JSON `gorm:"column:images" json:"images"`                   // 图片 URL 列表
	VendorID      int64          `gorm:"index:idx_products_vendor_id;column:vendor_id" json:"vendor_id"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index:idx_products_deleted_at;column:deleted_at" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Inventory 与商品 1:1 的库存记录
type Inventory struct {
	ID            int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID     int64      `gorm:"not null;uniqueIndex:idx_inventories_product_id;column:product_id" json:"product_id"`
	StockQuantity int64      `gorm:"not null;default:0;column:stock_quantity" json:"stock_quantity"`
	RestockDate   *time.Time `gorm:"column:restock_date" json:"restock_date"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// ProductSubcategory 商品与子分类多对多关联
type ProductSubcategory struct {
	ID            int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID     int64 `gorm:"not null;uniqueIndex:idx_product_subcategory,priority:1;column:product_id" json:"product_id"`
	SubcategoryID int64 `gorm:"not null;uniqueIndex:idx_product_subcategory,priority:2;column:subcategory_id" json:"subcategory_id"`
}

func (ProductSubcategory) TableName() string {
	return "product_subcategories"
}
