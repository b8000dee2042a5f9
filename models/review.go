package models

import (
	"time"
)

// Review 每个用户对每个商品至多一条，唯一索引兜底。
// 删除是物理删除：软删墓碑会一直占着唯一索引，删后无法重新评价。
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_reviews_user_product,priority:1;column:user_id" json:"user_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_reviews_user_product,priority:2;column:product_id" json:"product_id"`
	Rating    int       `gorm:"not null;column:rating" json:"rating"` // 1-5
	Comment   string    `gorm:"type:text;column:comment" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
