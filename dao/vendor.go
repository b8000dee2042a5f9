package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Vendors struct {
	Repo[models.Vendor]
}

func NewVendors(db *gorm.DB) *Vendors {
	return &Vendors{
		Repo: NewRepo[models.Vendor](db),
	}
}

func (v *Vendors) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	return v.Repo.FindByWhere(ctx, "email = ?", email)
}

func (v *Vendors) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := v.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

// FindAddress 商家当前地址，没有则返回 gorm.ErrRecordNotFound
func (v *Vendors) FindAddress(ctx context.Context, vendorID int64) (*models.VendorAddress, error) {
	var addr models.VendorAddress
	err := v.Db.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&addr).Error
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (v *Vendors) CreateAddress(ctx context.Context, addr *models.VendorAddress) error {
	return v.Db.WithContext(ctx).Create(addr).Error
}

func (v *Vendors) UpdateAddress(ctx context.Context, addrID int64, updates map[string]any) error {
	return v.Db.WithContext(ctx).
		Model(&models.VendorAddress{}).
		Where("id = ?", addrID).
		Updates(updates).Error
}
