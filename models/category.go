package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string         `gorm:"size:128;not null;uniqueIndex:idx_categories_name;column:name" json:"name"`
	Description string         `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Subcategory 属于且仅属于一个 Category
type Subcategory struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CategoryID  int64          `gorm:"not null;index:idx_subcategories_category_id;column:category_id" json:"category_id"`
	Name        string         `gorm:"size:128;not null;column:name" json:"name"`
	Description string         `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}
