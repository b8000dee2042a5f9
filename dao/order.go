package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Orders struct {
	Repo[models.Order]
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{
		Repo: NewRepo[models.Order](db),
	}
}

func (o *Orders) FindItems(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	err := o.Db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (o *Orders) FindPayment(ctx context.Context, orderID int64) (*models.Payment, error) {
	var payment models.Payment
	err := o.Db.WithContext(ctx).Where("order_id = ?", orderID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByUserCursor 用户订单列表，游标分页
func (o *Orders) ListByUserCursor(ctx context.Context, userID int64, cursor int64, limit int) ([]*models.Order, error) {
	var orders []*models.Order
	query := o.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id desc").Limit(limit).Find(&orders).Error
	return orders, err
}
