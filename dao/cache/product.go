package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"prontoshop/models"

	"github.com/redis/go-redis/v9"
)

// ProductCache 商品详情读缓存，写路径负责失效
type ProductCache struct {
	redis *redis.Client
}

func NewProductCache(redis *redis.Client) *ProductCache {
	return &ProductCache{redis: redis}
}

func (c *ProductCache) key(productID int64) string {
	return fmt.Sprintf("product:detail:%d", productID)
}

func (c *ProductCache) Get(ctx context.Context, productID int64) (*models.Product, bool) {
	raw, err := c.redis.Get(ctx, c.key(productID)).Result()
	if err != nil {
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		return nil, false
	}
	return &product, true
}

func (c *ProductCache) Set(ctx context.Context, product *models.Product, ttl time.Duration) {
	raw, err := json.Marshal(product)
	if err != nil {
		return
	}
	c.redis.Set(ctx, c.key(product.ID), raw, ttl)
}

func (c *ProductCache) Invalidate(ctx context.Context, productID int64) {
	c.redis.Del(ctx, c.key(productID))
}
