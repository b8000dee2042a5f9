package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Addresses struct {
	Repo[models.Address]
}

func NewAddresses(db *gorm.DB) *Addresses {
	return &Addresses{
		Repo: NewRepo[models.Address](db),
	}
}

// FindByUserAndType 用户某一类型的现有地址
func (a *Addresses) FindByUserAndType(ctx context.Context, userID int64, addrType string) (*models.Address, error) {
	var addr models.Address
	err := a.Db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, addrType).
		First(&addr).Error
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (a *Addresses) ListByUser(ctx context.Context, userID int64) ([]*models.Address, error) {
	var addrs []*models.Address
	err := a.Db.WithContext(ctx).Where("user_id = ?", userID).Find(&addrs).Error
	return addrs, err
}
