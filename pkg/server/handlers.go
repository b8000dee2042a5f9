package server

import (
	"prontoshop/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	User      *handler.User
	Vendor    *handler.Vendor
	Category  *handler.Category
	Product   *handler.Product
	Checkout  *handler.Checkout
	Order     *handler.Order
	Review    *handler.Review
	Cart      *handler.Cart
	Assistant *handler.Assistant
	Activity  *handler.Activity
	Upload    *handler.Upload
}
