package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	s := &OrderService{DB: db, OrderRepo: dao.NewOrders(db)}

	_, err := s.OrderStatus(context.Background(), 424242)
	require.Error(t, err)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}

func TestOrderStatusFlattensOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	checkout := newCheckoutService(db)
	resp, err := checkout.Checkout(ctx, checkoutRequest())
	require.NoError(t, err)

	s := &OrderService{DB: db, OrderRepo: dao.NewOrders(db)}
	status, err := s.OrderStatus(ctx, resp.OrderId)
	require.NoError(t, err)

	assert.Equal(t, resp.OrderNumber, status.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, status.Status)
	assert.Equal(t, "Jane Buyer", status.CustomerName)
	assert.Equal(t, "buyer@example.com", status.CustomerEmail)
	assert.Equal(t, "1 Main St", status.ShippingAddress.Line1)
	assert.Equal(t, status.ShippingAddress, status.BillingAddress)
	assert.Equal(t, int64(6440), status.Total)
	assert.Equal(t, models.PaymentMethodCard, status.PaymentMethod)
	assert.Equal(t, models.PaymentStatusPending, status.PaymentStatus)

	require.Len(t, status.Items, 2)
	var sum int64
	for _, item := range status.Items {
		sum += item.UnitPrice * item.Quantity
	}
	assert.Equal(t, int64(5500), sum)
	assert.Equal(t, "Widget", status.Items[0].ProductName)
}

func TestListOrdersCursorPagination(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &models.User{Email: "list@example.com", Name: "Lister"}
	require.NoError(t, db.Create(user).Error)

	for i := 0; i < 5; i++ {
		order := &models.Order{
			OrderNumber: fmt.Sprintf("PS-LIST-%04d", i),
			UserID:      user.ID,
			Status:      models.OrderStatusPending,
			Total:       int64(100 * (i + 1)),
		}
		require.NoError(t, db.Create(order).Error)
	}

	s := &OrderService{DB: db, OrderRepo: dao.NewOrders(db)}

	page1, err := s.ListOrders(ctx, user.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page1.Orders, 2)
	assert.True(t, page1.HasMore)
	// id 倒序，第一页是最新的两单
	assert.Equal(t, "PS-LIST-0004", page1.Orders[0].OrderNumber)

	page2, err := s.ListOrders(ctx, user.ID, page1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Orders, 2)
	assert.Equal(t, "PS-LIST-0002", page2.Orders[0].OrderNumber)

	page3, err := s.ListOrders(ctx, user.ID, page2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page3.Orders, 1)
	assert.False(t, page3.HasMore)
}

func TestListOrdersEmpty(t *testing.T) {
	db := newTestDB(t)
	s := &OrderService{DB: db, OrderRepo: dao.NewOrders(db)}

	resp, err := s.ListOrders(context.Background(), 9999, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Orders)
	assert.False(t, resp.HasMore)
}
