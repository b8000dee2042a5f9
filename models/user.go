package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

type User struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Email     string         `gorm:"size:255;not null;uniqueIndex:idx_users_email;column:email" json:"email"`
	Password  string         `gorm:"size:255;not null;column:password" json:"-"` // bcrypt 哈希
	Name      string         `gorm:"size:128;column:name" json:"name"`
	Role      string         `gorm:"size:16;not null;default:'user';column:role" json:"role"`
	IsGuest   bool           `gorm:"not null;default:false;column:is_guest" json:"is_guest"` // 游客下单自动生成
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (User) TableName() string {
	return "users"
}

const (
	AddressTypeShipping = "SHIPPING"
	AddressTypeBilling  = "BILLING"
)

type Address struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_addresses_user_id;column:user_id" json:"user_id"`
	Type      string    `gorm:"size:16;not null;column:type" json:"type"` // SHIPPING / BILLING
	FullName  string    `gorm:"size:128;column:full_name" json:"full_name"`
	Line1     string    `gorm:"size:255;not null;column:line1" json:"line1"`
	Line2     string    `gorm:"size:255;column:line2" json:"line2"`
	City      string    `gorm:"size:128;not null;column:city" json:"city"`
	State     string    `gorm:"size:128;column:state" json:"state"`
	Zip       string    `gorm:"size:32;column:zip" json:"zip"`
	Country   string    `gorm:"size:64;not null;column:country" json:"country"`
	Phone     string    `gorm:"size:32;column:phone" json:"phone"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}

// RefreshToken 已签发的 refresh token，登出/轮换时删除
type RefreshToken struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_refresh_tokens_user_id;column:user_id" json:"user_id"`
	Token     string    `gorm:"size:512;not null;uniqueIndex:idx_refresh_tokens_token;column:token" json:"-"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
