package service

import (
	"context"
	"sync"

	"prontoshop/dao/cache"
	"prontoshop/types"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sourcegraph/conc"
)

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Snapshot(ctx context.Context, sid string) (types.CartSnapshot, error)
	Add(ctx context.Context, sid string, item types.CartItem) (types.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, sid string, productID int64, quantity int64) (types.CartSnapshot, error)
	Remove(ctx context.Context, sid string, productID int64) (types.CartSnapshot, error)
	Clear(ctx context.Context, sid string) (types.CartSnapshot, error)
	Subscribe(sid string) (<-chan types.CartSnapshot, func())

	AddWishlist(ctx context.Context, sid string, productID int64) error
	RemoveWishlist(ctx context.Context, sid string, productID int64) error
	ListWishlist(ctx context.Context, sid string) ([]int64, error)
}

type cartSubscribers struct {
	mu   sync.Mutex
	subs map[int64]chan types.CartSnapshot
	next int64
}

// CartService 显式购物车存储：每个会话一份条目数组，任何变更都产出
// 新的不可变快照、整体写回 redis 并广播给订阅者。
// 同一会话跨连接并发写为 last-writer-wins。
type CartService struct {
	Storage *cache.CartStorage

	carts cmap.ConcurrentMap[string, []types.CartItem]
	feeds cmap.ConcurrentMap[string, *cartSubscribers]
}

func NewCartService(storage *cache.CartStorage) *CartService {
	return &CartService{
		Storage: storage,
		carts:   cmap.New[[]types.CartItem](),
		feeds:   cmap.New[*cartSubscribers](),
	}
}

func (s *CartService) load(ctx context.Context, sid string) ([]types.CartItem, error) {
	if items, ok := s.carts.Get(sid); ok {
		return items, nil
	}
	if s.Storage == nil {
		return nil, nil
	}
	items, err := s.Storage.LoadCart(ctx, sid)
	if err != nil {
		return nil, err
	}
	s.carts.Set(sid, items)
	return items, nil
}

func (s *CartService) store(ctx context.Context, sid string, items []types.CartItem) error {
	s.carts.Set(sid, items)
	if s.Storage == nil {
		return nil
	}
	return s.Storage.SaveCart(ctx, sid, items)
}

func snapshotOf(items []types.CartItem) types.CartSnapshot {
	copied := make([]types.CartItem, len(items))
	copy(copied, items)

	snap := types.CartSnapshot{Items: copied}
	for _, item := range copied {
		snap.Total += item.Price * item.Quantity
		snap.Count += item.Quantity
	}
	return snap
}

func (s *CartService) Snapshot(ctx context.Context, sid string) (types.CartSnapshot, error) {
	items, err := s.load(ctx, sid)
	if err != nil {
		return types.CartSnapshot{}, err
	}
	return snapshotOf(items), nil
}

// Add 同 id 合并数量，否则追加一行
func (s *CartService) Add(ctx context.Context, sid string, item types.CartItem) (types.CartSnapshot, error) {
	items, err := s.load(ctx, sid)
	if err != nil {
		return types.CartSnapshot{}, err
	}

	next := make([]types.CartItem, len(items))
	copy(next, items)

	merged := false
	for i := range next {
		if next[i].Id == item.Id {
			next[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		next = append(next, item)
	}

	return s.commit(ctx, sid, next)
}

func (s *CartService) UpdateQuantity(ctx context.Context, sid string, productID int64, quantity int64) (types.CartSnapshot, error) {
	items, err := s.load(ctx, sid)
	if err != nil {
		return types.CartSnapshot{}, err
	}

	next := make([]types.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].Id == productID {
			next[i].Quantity = quantity
			break
		}
	}

	return s.commit(ctx, sid, next)
}

// Remove 删除恰好一行匹配记录
func (s *CartService) Remove(ctx context.Context, sid string, productID int64) (types.CartSnapshot, error) {
	items, err := s.load(ctx, sid)
	if err != nil {
		return types.CartSnapshot{}, err
	}

	next := make([]types.CartItem, 0, len(items))
	removed := false
	for _, item := range items {
		if !removed && item.Id == productID {
			removed = true
			continue
		}
		next = append(next, item)
	}

	return s.commit(ctx, sid, next)
}

func (s *CartService) Clear(ctx context.Context, sid string) (types.CartSnapshot, error) {
	s.carts.Set(sid, nil)
	if s.Storage != nil {
		if err := s.Storage.DeleteCart(ctx, sid); err != nil {
			return types.CartSnapshot{}, err
		}
	}
	snap := snapshotOf(nil)
	s.broadcast(sid, snap)
	return snap, nil
}

func (s *CartService) commit(ctx context.Context, sid string, items []types.CartItem) (types.CartSnapshot, error) {
	if err := s.store(ctx, sid, items); err != nil {
		return types.CartSnapshot{}, err
	}
	snap := snapshotOf(items)
	s.broadcast(sid, snap)
	return snap, nil
}

// Subscribe 返回该会话的变更通道与取消函数
func (s *CartService) Subscribe(sid string) (<-chan types.CartSnapshot, func()) {
	feed := s.feeds.Upsert(sid, nil, func(exist bool, current *cartSubscribers, _ *cartSubscribers) *cartSubscribers {
		if exist {
			return current
		}
		return &cartSubscribers{subs: make(map[int64]chan types.CartSnapshot)}
	})

	feed.mu.Lock()
	id := feed.next
	feed.next++
	ch := make(chan types.CartSnapshot, 8)
	feed.subs[id] = ch
	feed.mu.Unlock()

	cancel := func() {
		feed.mu.Lock()
		if sub, ok := feed.subs[id]; ok {
			delete(feed.subs, id)
			close(sub)
		}
		feed.mu.Unlock()
	}
	return ch, cancel
}

func (s *CartService) broadcast(sid string, snap types.CartSnapshot) {
	feed, ok := s.feeds.Get(sid)
	if !ok {
		return
	}

	feed.mu.Lock()
	targets := make([]chan types.CartSnapshot, 0, len(feed.subs))
	for _, ch := range feed.subs {
		targets = append(targets, ch)
	}
	feed.mu.Unlock()

	var wg conc.WaitGroup
	for _, ch := range targets {
		ch := ch
		wg.Go(func() {
			// 订阅者消费慢时丢弃本次快照，不阻塞写路径
			select {
			case ch <- snap:
			default:
			}
		})
	}
	wg.Wait()
}

func (s *CartService) AddWishlist(ctx context.Context, sid string, productID int64) error {
	if s.Storage == nil {
		return nil
	}
	return s.Storage.AddWishlist(ctx, sid, productID)
}

func (s *CartService) RemoveWishlist(ctx context.Context, sid string, productID int64) error {
	if s.Storage == nil {
		return nil
	}
	return s.Storage.RemoveWishlist(ctx, sid, productID)
}

func (s *CartService) ListWishlist(ctx context.Context, sid string) ([]int64, error) {
	if s.Storage == nil {
		return []int64{}, nil
	}
	return s.Storage.ListWishlist(ctx, sid)
}
