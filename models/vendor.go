package models

import (
	"time"

	"gorm.io/gorm"
)

type Vendor struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BusinessName string         `gorm:"size:255;not null;column:business_name" json:"business_name"`
	Email        string         `gorm:"size:255;not null;uniqueIndex:idx_vendors_email;column:email" json:"email"`
	Password     string         `gorm:"size:255;not null;column:password" json:"-"`
	Phone        string         `gorm:"size:32;column:phone" json:"phone"`
	Description  string         `gorm:"type:text;column:description" json:"description"`
	LogoURL      string         `gorm:"size:512;default:'';column:logo_url" json:"logo_url"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (Vendor) TableName() string {
	return "vendors"
}

type VendorAddress struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	VendorID  int64     `gorm:"not null;index:idx_vendor_addresses_vendor_id;column:vendor_id" json:"vendor_id"`
	Line1     string    `gorm:"size:255;not null;column:line1" json:"line1"`
	Line2     string    `gorm:"size:255;column:line2" json:"line2"`
	City      string    `gorm:"size:128;not null;column:city" json:"city"`
	State     string    `gorm:"size:128;column:state" json:"state"`
	Zip       string    `gorm:"size:32;column:zip" json:"zip"`
	Country   string    `gorm:"size:64;not null;column:country" json:"country"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VendorAddress) TableName() string {
	return "vendor_addresses"
}
