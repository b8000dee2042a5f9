package database

import (
	"context"
	"time"

	"prontoshop/config"
	"prontoshop/pkg/log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongo 初始化行为日志文档库连接
func NewMongo(conf *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Mongo.Uri))
	if err != nil {
		log.L.Fatal("connect mongo error", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.L.Fatal("ping mongo error", zap.Error(err))
	}
	log.L.Info("connect mongo success")

	dbName := conf.Mongo.Database
	if dbName == "" {
		dbName = "prontoshop"
	}
	return client.Database(dbName)
}
