package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"prontoshop/models"
	"prontoshop/pkg/log"
	"prontoshop/pkg/response"
	"prontoshop/pkg/snowflake"
	"prontoshop/pkg/utils"
	"prontoshop/types"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const placeholderImage = "/images/placeholder.png"

var _ ICheckoutService = (*CheckoutService)(nil)

type ICheckoutService interface {
	Checkout(ctx context.Context, req *types.CheckoutRequest) (*types.CheckoutResponse, error)
}

type CheckoutService struct {
	// 结账全程在一个事务里，查询统一走 tx，不注入单独的 DAO
	DB *gorm.DB

	// OrderNumberFn 可注入，默认时间戳+随机后缀
	OrderNumberFn func() string
}

// Checkout 结账主流程。商品补建、游客建号、地址、订单+明细+支付
// 全部在同一事务内，任一步失败整体回滚。
func (s *CheckoutService) Checkout(ctx context.Context, req *types.CheckoutRequest) (*types.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, response.NewError(http.StatusBadRequest, "items must be a non-empty list")
	}

	orderNumber := utils.NewOrderNumber()
	if s.OrderNumberFn != nil {
		orderNumber = s.OrderNumberFn()
	}

	var order *models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 未知商品 id 补建占位记录。这里沿用了上游“静默补建而非拒单”
		//    的行为，见 DESIGN.md。
		if err := s.ensureProducts(tx, req.Items); err != nil {
			return err
		}

		// 2. 未带 userId 时由收货人信息生成游客账号
		userID := req.UserId
		if userID == 0 {
			guest, err := s.createGuestUser(tx, req)
			if err != nil {
				return err
			}
			userID = guest.ID
		}

		// 3. 收货地址；账单地址不同才另建一条，否则复用同一 id
		shipping := addressFromPayload(userID, models.AddressTypeShipping, &req.ShippingAddress)
		if err := tx.Create(shipping).Error; err != nil {
			return err
		}
		billingID := shipping.ID
		if !req.SameAsBilling && req.BillingAddress != nil {
			billing := addressFromPayload(userID, models.AddressTypeBilling, req.BillingAddress)
			if err := tx.Create(billing).Error; err != nil {
				return err
			}
			billingID = billing.ID
		}

		// 4. 订单 + 明细 + 支付。金额按提交值落库，不做服务端重算。
		order = &models.Order{
			OrderNumber:       orderNumber,
			UserID:            userID,
			Status:            models.OrderStatusPending,
			ShippingAddressID: shipping.ID,
			BillingAddressID:  billingID,
			ShippingMethod:    req.ShippingMethod,
			Subtotal:          req.Subtotal,
			ShippingCost:      req.ShippingCost,
			Tax:               req.Tax,
			Total:             req.Total,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			row := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductId,
				Quantity:  item.Quantity,
				UnitPrice: item.Price,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		currency := req.Payment.Currency
		if currency == "" {
			currency = "USD"
		}
		payment := &models.Payment{
			OrderID:     order.ID,
			Method:      req.Payment.Method,
			Status:      models.PaymentStatusPending,
			Amount:      req.Total,
			Currency:    currency,
			CardBrand:   req.Payment.CardBrand,
			CardLast4:   req.Payment.CardLast4,
			PaypalEmail: req.Payment.PaypalEmail,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("order placed",
		zap.String("orderNumber", order.OrderNumber),
		zap.Int64("orderId", order.ID),
		zap.Int64("total", order.Total),
	)

	return &types.CheckoutResponse{
		OrderId:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
	}, nil
}

// ensureProducts 批量查已知商品，缺失的补建占位行：
// 名称 Product <id>，库存取下单数量，不挂分类。
func (s *CheckoutService) ensureProducts(tx *gorm.DB, items []types.CheckoutItem) error {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductId)
	}

	var existing []*models.Product
	if err := tx.Where("id IN ?", ids).Find(&existing).Error; err != nil {
		return err
	}
	known := make(map[int64]struct{}, len(existing))
	for _, p := range existing {
		known[p.ID] = struct{}{}
	}

	for _, item := range items {
		if _, ok := known[item.ProductId]; ok {
			continue
		}
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("Product %d", item.ProductId)
		}
		image := item.Image
		if image == "" {
			image = placeholderImage
		}
		images, _ := json.Marshal([]string{image})

		log.L.Warn("checkout references unknown product, creating placeholder",
			zap.Int64("productId", item.ProductId))

		placeholder := &models.Product{
			ID:     item.ProductId,
			Name:   name,
			Price:  item.Price,
			Images: datatypes.JSON(images),
		}
		if err := tx.Create(placeholder).Error; err != nil {
			return err
		}
		inv := &models.Inventory{
			ProductID:     item.ProductId,
			StockQuantity: item.Quantity,
		}
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		known[item.ProductId] = struct{}{}
	}
	return nil
}

func (s *CheckoutService) createGuestUser(tx *gorm.DB, req *types.CheckoutRequest) (*models.User, error) {
	email := req.Email
	if email == "" {
		email = fmt.Sprintf("guest-%d@prontoshop.local", snowflake.GenUserID())
	}

	// 邮箱已存在则直接复用该账号，避免唯一索引冲突
	var existing models.User
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}

	guest := &models.User{
		Email:    email,
		Password: "",
		Name:     req.ShippingAddress.FullName,
		Role:     models.RoleUser,
		IsGuest:  true,
	}
	if err := tx.Create(guest).Error; err != nil {
		return nil, err
	}
	return guest, nil
}
