//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewVendors,
	NewProducts,
	NewCategories,
	NewSubcategories,
	NewOrders,
	NewAddresses,
	NewReviews,
	NewRefreshTokens,
	NewLogStore,
)
