package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

const (
	ShippingStandard  = "STANDARD"
	ShippingExpress   = "EXPRESS"
	ShippingOvernight = "OVERNIGHT"
)

// Order 订单主表，金额字段均为分
type Order struct {
	ID                int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderNumber       string         `gorm:"size:32;not null;uniqueIndex:idx_orders_order_number;column:order_number" json:"order_number"`
	UserID            int64          `gorm:"not null;index:idx_orders_user_id;column:user_id" json:"user_id"`
	Status            string         `gorm:"size:16;not null;default:'PENDING';column:status" json:"status"`
	ShippingAddressID int64          `gorm:"not null;column:shipping_address_id" json:"shipping_address_id"`
	BillingAddressID  int64          `gorm:"not null;column:billing_address_id" json:"billing_address_id"`
	ShippingMethod    string         `gorm:"size:16;not null;default:'STANDARD';column:shipping_method" json:"shipping_method"`
	Subtotal          int64          `gorm:"not null;column:subtotal" json:"subtotal"`
	ShippingCost      int64          `gorm:"not null;column:shipping_cost" json:"shipping_cost"`
	Tax               int64          `gorm:"not null;column:tax" json:"tax"`
	Total             int64          `gorm:"not null;column:total" json:"total"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   int64     `gorm:"not null;index:idx_order_items_order_id;column:order_id" json:"order_id"`
	ProductID int64     `gorm:"not null;index:idx_order_items_product_id;column:product_id" json:"product_id"`
	Quantity  int64     `gorm:"default:1;not null;column:quantity" json:"quantity"`
	UnitPrice int64     `gorm:"not null;column:unit_price" json:"unit_price"` // 下单时单价快照，与商品现价解耦
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

const (
	PaymentMethodCard   = "CARD"
	PaymentMethodPayPal = "PAYPAL"

	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// Payment 与订单 1:1。本服务内状态只会写入 PENDING，
// 后续流转属于外部网关，不在当前范围。
type Payment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID     int64     `gorm:"not null;uniqueIndex:idx_payments_order_id;column:order_id" json:"order_id"`
	Method      string    `gorm:"size:16;not null;column:method" json:"method"`
	Status      string    `gorm:"size:16;not null;default:'PENDING';column:status" json:"status"`
	Amount      int64     `gorm:"not null;column:amount" json:"amount"`
	Currency    string    `gorm:"size:8;not null;default:'USD';column:currency" json:"currency"`
	CardBrand   string    `gorm:"size:32;column:card_brand" json:"card_brand"`
	CardLast4   string    `gorm:"size:4;column:card_last4" json:"card_last4"`
	PaypalEmail string    `gorm:"size:255;column:paypal_email" json:"paypal_email"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
