//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(VendorService), "*"),
	wire.Bind(new(IVendorService), new(*VendorService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(CheckoutService), "DB"),
	wire.Bind(new(ICheckoutService), new(*CheckoutService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	wire.Struct(new(ActivityService), "*"),
	wire.Bind(new(IActivityService), new(*ActivityService)),

	NewCartService,
	wire.Bind(new(ICartService), new(*CartService)),

	NewAssistant,
	NewUploadService,
)
