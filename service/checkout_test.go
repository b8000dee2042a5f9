package service

import (
	"context"
	"net/http"
	"testing"

	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{DB: db}
}

func checkoutRequest() *types.CheckoutRequest {
	return &types.CheckoutRequest{
		Email: "buyer@example.com",
		ShippingAddress: types.AddressPayload{
			FullName: "Jane Buyer",
			Line1:    "1 Main St",
			City:     "Springfield",
			Country:  "US",
		},
		SameAsBilling:  true,
		ShippingMethod: models.ShippingStandard,
		Items: []types.CheckoutItem{
			{ProductId: 101, Name: "Widget", Price: 1500, Quantity: 2},
			{ProductId: 102, Name: "Gadget", Price: 2500, Quantity: 1},
		},
		Payment:      types.PaymentPayload{Method: models.PaymentMethodCard, CardBrand: "visa", CardLast4: "4242"},
		Subtotal:     5500,
		ShippingCost: 500,
		Tax:          440,
		Total:        6440,
	}
}

func TestCheckoutCreatesOrderItemsAndPayment(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)
	ctx := context.Background()

	resp, err := s.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, resp.Status)
	assert.Equal(t, int64(6440), resp.Total)
	assert.NotEmpty(t, resp.OrderNumber)

	var order models.Order
	require.NoError(t, db.First(&order, resp.OrderId).Error)
	assert.Equal(t, int64(5500), order.Subtotal)
	assert.Equal(t, order.ShippingAddressID, order.BillingAddressID)

	var itemCount, paymentCount int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&paymentCount)
	assert.Equal(t, int64(2), itemCount)
	assert.Equal(t, int64(1), paymentCount)

	var payment models.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&payment).Error)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, int64(6440), payment.Amount)
}

func TestCheckoutEmptyItemsRejected(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)

	req := checkoutRequest()
	req.Items = nil

	_, err := s.Checkout(context.Background(), req)
	require.Error(t, err)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)
}

func TestCheckoutCreatesPlaceholderProducts(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)
	ctx := context.Background()

	req := checkoutRequest()
	req.Items = []types.CheckoutItem{{ProductId: 777, Price: 999, Quantity: 3}}

	_, err := s.Checkout(ctx, req)
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.First(&product, 777).Error)
	assert.Equal(t, "Product 777", product.Name)
	assert.Equal(t, int64(999), product.Price)

	var inv models.Inventory
	require.NoError(t, db.Where("product_id = ?", 777).First(&inv).Error)
	assert.Equal(t, int64(3), inv.StockQuantity)
}

func TestCheckoutKnownProductNotOverwritten(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Product{ID: 101, Name: "Real Widget", Price: 1200}).Error)

	_, err := s.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.First(&product, 101).Error)
	assert.Equal(t, "Real Widget", product.Name)
	assert.Equal(t, int64(1200), product.Price)
}

func TestCheckoutCreatesGuestUser(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)
	ctx := context.Background()

	resp, err := s.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order, resp.OrderId).Error)

	var guest models.User
	require.NoError(t, db.First(&guest, order.UserID).Error)
	assert.True(t, guest.IsGuest)
	assert.Equal(t, "buyer@example.com", guest.Email)
	assert.Equal(t, "Jane Buyer", guest.Name)

	// 同邮箱二次下单复用账号
	_, err = s.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)

	var userCount int64
	db.Model(&models.User{}).Where("email = ?", "buyer@example.com").Count(&userCount)
	assert.Equal(t, int64(1), userCount)
}

func TestCheckoutSeparateBillingAddress(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)
	ctx := context.Background()

	req := checkoutRequest()
	req.SameAsBilling = false
	req.BillingAddress = &types.AddressPayload{
		FullName: "Jane Buyer",
		Line1:    "2 Billing Ave",
		City:     "Shelbyville",
		Country:  "US",
	}

	resp, err := s.Checkout(ctx, req)
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order, resp.OrderId).Error)
	assert.NotEqual(t, order.ShippingAddressID, order.BillingAddressID)

	var billing models.Address
	require.NoError(t, db.First(&billing, order.BillingAddressID).Error)
	assert.Equal(t, models.AddressTypeBilling, billing.Type)
	assert.Equal(t, "2 Billing Ave", billing.Line1)
}

func TestCheckoutDuplicateOrderNumberRollsBack(t *testing.T) {
	db := newTestDB(t)
	s := newCheckoutService(db)
	s.OrderNumberFn = func() string { return "PS-FIXED-0001" }
	ctx := context.Background()

	_, err := s.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)

	var before int64
	db.Model(&models.OrderItem{}).Count(&before)

	req := checkoutRequest()
	req.Email = "other@example.com"
	_, err = s.Checkout(ctx, req)
	require.Error(t, err)

	// 事务整体回滚，明细数不变，且没有第二个用户残留
	var after, orderCount, userCount int64
	db.Model(&models.OrderItem{}).Count(&after)
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.User{}).Where("email = ?", "other@example.com").Count(&userCount)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(0), userCount)
}
