package service

import (
	"context"
	"errors"
	"net/http"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"gorm.io/gorm"
)

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	OrderStatus(ctx context.Context, orderID int64) (*types.OrderStatusResponse, error)
	ListOrders(ctx context.Context, userID int64, cursor int64, pageSize int) (*types.ListOrdersResponse, error)
}

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *dao.Orders
}

// OrderStatus 纯读：订单 → 地址、明细→商品、用户、支付，拍平成客户端视图
func (s *OrderService) OrderStatus(ctx context.Context, orderID int64) (*types.OrderStatusResponse, error) {
	order, err := s.OrderRepo.FindById(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "order not found")
		}
		return nil, err
	}

	resp := &types.OrderStatusResponse{
		OrderId:        order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         order.Status,
		ShippingMethod: order.ShippingMethod,
		Subtotal:       order.Subtotal,
		ShippingCost:   order.ShippingCost,
		Tax:            order.Tax,
		Total:          order.Total,
		CreatedAt:      order.CreatedAt,
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("id = ?", order.UserID).First(&user).Error; err == nil {
		resp.CustomerName = user.Name
		resp.CustomerEmail = user.Email
	}

	var shipping models.Address
	if err := s.DB.WithContext(ctx).Where("id = ?", order.ShippingAddressID).First(&shipping).Error; err == nil {
		resp.ShippingAddress = flattenAddress(&shipping)
	}
	if order.BillingAddressID == order.ShippingAddressID {
		resp.BillingAddress = resp.ShippingAddress
	} else {
		var billing models.Address
		if err := s.DB.WithContext(ctx).Where("id = ?", order.BillingAddressID).First(&billing).Error; err == nil {
			resp.BillingAddress = flattenAddress(&billing)
		}
	}

	items, err := s.OrderRepo.FindItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]int64, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	nameByID := make(map[int64]string, len(productIDs))
	if len(productIDs) > 0 {
		var products []*models.Product
		if err := s.DB.WithContext(ctx).Where("id IN ?", productIDs).Find(&products).Error; err == nil {
			for _, p := range products {
				nameByID[p.ID] = p.Name
			}
		}
	}

	resp.Items = make([]types.OrderStatusItem, 0, len(items))
	for _, item := range items {
		resp.Items = append(resp.Items, types.OrderStatusItem{
			ProductId:   item.ProductID,
			ProductName: nameByID[item.ProductID],
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if payment, err := s.OrderRepo.FindPayment(ctx, order.ID); err == nil {
		resp.PaymentMethod = payment.Method
		resp.PaymentStatus = payment.Status
	}

	return resp, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64, cursor int64, pageSize int) (*types.ListOrdersResponse, error) {
	if pageSize <= 0 {
		pageSize = 10
	}

	// 多查一条判断 hasMore
	orders, err := s.OrderRepo.ListByUserCursor(ctx, userID, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(orders) > pageSize {
		hasMore = true
		orders = orders[:pageSize]
	}
	if len(orders) == 0 {
		return &types.ListOrdersResponse{Orders: []*types.OrderSummary{}}, nil
	}

	resp := make([]*types.OrderSummary, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, &types.OrderSummary{
			Id:          order.ID,
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
			Total:       order.Total,
			Created:     order.CreatedAt,
		})
	}

	return &types.ListOrdersResponse{
		Orders:     resp,
		HasMore:    hasMore,
		NextCursor: orders[len(orders)-1].ID,
	}, nil
}

func flattenAddress(a *models.Address) types.OrderStatusAddress {
	return types.OrderStatusAddress{
		FullName: a.FullName,
		Line1:    a.Line1,
		Line2:    a.Line2,
		City:     a.City,
		State:    a.State,
		Zip:      a.Zip,
		Country:  a.Country,
	}
}
