package types

import "time"

type CheckoutItem struct {
	ProductId int64  `json:"product_id" binding:"required"`
	Name      string `json:"name"`
	Price     int64  `json:"price" binding:"min=0"` // 分
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
	Image     string `json:"image"`
}

type PaymentPayload struct {
	Method      string `json:"method" binding:"required,oneof=CARD PAYPAL"`
	Currency    string `json:"currency"`
	CardBrand   string `json:"card_brand"`
	CardLast4   string `json:"card_last4"`
	PaypalEmail string `json:"paypal_email"`
}

// CheckoutRequest 结账复合载荷。金额为客户端计算值，服务端按原样落库（见 DESIGN.md）
type CheckoutRequest struct {
	UserId          int64           `json:"user_id"`
	Email           string          `json:"email" binding:"required,email"`
	IsGuest         bool            `json:"is_guest"`
	ShippingAddress AddressPayload  `json:"shipping_address" binding:"required"`
	BillingAddress  *AddressPayload `json:"billing_address"`
	SameAsBilling   bool            `json:"same_as_billing"`
	ShippingMethod  string          `json:"shipping_method" binding:"required,oneof=STANDARD EXPRESS OVERNIGHT"`
	Items           []CheckoutItem  `json:"items"`
	Payment         PaymentPayload  `json:"payment" binding:"required"`
	Subtotal        int64           `json:"subtotal" binding:"min=0"`
	ShippingCost    int64           `json:"shipping_cost" binding:"min=0"`
	Tax             int64           `json:"tax" binding:"min=0"`
	Total           int64           `json:"total" binding:"min=0"`
}

type CheckoutResponse struct {
	OrderId     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
}

type OrderStatusItem struct {
	ProductId   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type OrderStatusAddress struct {
	FullName string `json:"full_name"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country"`
}

// OrderStatusResponse 订单 → 地址/明细/用户/支付 join 后的扁平视图
type OrderStatusResponse struct {
	OrderId         int64              `json:"order_id"`
	OrderNumber     string             `json:"order_number"`
	Status          string             `json:"status"`
	ShippingMethod  string             `json:"shipping_method"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	ShippingAddress OrderStatusAddress `json:"shipping_address"`
	BillingAddress  OrderStatusAddress `json:"billing_address"`
	Items           []OrderStatusItem  `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	ShippingCost    int64              `json:"shipping_cost"`
	Tax             int64              `json:"tax"`
	Total           int64              `json:"total"`
	PaymentMethod   string             `json:"payment_method"`
	PaymentStatus   string             `json:"payment_status"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderSummary 用户订单列表项
type OrderSummary struct {
	Id          int64     `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Total       int64     `json:"total"`
	Created     time.Time `json:"created"`
}

type ListOrdersResponse struct {
	Orders     []*OrderSummary `json:"orders"`
	HasMore    bool            `json:"has_more"`
	NextCursor int64           `json:"next_cursor"`
}
