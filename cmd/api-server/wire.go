//go:build wireinject
// +build wireinject

package main

import (
	"prontoshop/config"
	"prontoshop/dao"
	"prontoshop/dao/cache"
	"prontoshop/handler"
	"prontoshop/pkg/client"
	"prontoshop/pkg/database"
	"prontoshop/pkg/server"
	"prontoshop/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideAssistantConfig,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Vendor), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Checkout), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Assistant), "*"),
		wire.Struct(new(handler.Activity), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
		database.NewMongo,
	)
	return nil
}
