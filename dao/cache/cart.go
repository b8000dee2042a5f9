package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"prontoshop/types"

	"github.com/redis/go-redis/v9"
)

// CartStorage 购物车/心愿单按会话落 redis。
// 同一会话并发写为 last-writer-wins，和原浏览器存储语义一致。
type CartStorage struct {
	redis *redis.Client
}

func NewCartStorage(redis *redis.Client) *CartStorage {
	return &CartStorage{redis: redis}
}

func (c *CartStorage) cartKey(sid string) string {
	return fmt.Sprintf("cart:%s", sid)
}

func (c *CartStorage) wishlistKey(sid string) string {
	return fmt.Sprintf("wishlist:%s", sid)
}

func (c *CartStorage) LoadCart(ctx context.Context, sid string) ([]types.CartItem, error) {
	raw, err := c.redis.Get(ctx, c.cartKey(sid)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []types.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart 整个数组重新序列化写回
func (c *CartStorage) SaveCart(ctx context.Context, sid string, items []types.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.cartKey(sid), raw, 0).Err()
}

func (c *CartStorage) DeleteCart(ctx context.Context, sid string) error {
	return c.redis.Del(ctx, c.cartKey(sid)).Err()
}

func (c *CartStorage) AddWishlist(ctx context.Context, sid string, productID int64) error {
	return c.redis.SAdd(ctx, c.wishlistKey(sid), productID).Err()
}

func (c *CartStorage) RemoveWishlist(ctx context.Context, sid string, productID int64) error {
	return c.redis.SRem(ctx, c.wishlistKey(sid), productID).Err()
}

func (c *CartStorage) ListWishlist(ctx context.Context, sid string) ([]int64, error) {
	members, err := c.redis.SMembers(ctx, c.wishlistKey(sid)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		if id, err := strconv.ParseInt(m, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
