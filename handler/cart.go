package handler

import (
	"net/http"
	"time"

	"prontoshop/config"
	"prontoshop/pkg/context"
	"prontoshop/pkg/log"
	"prontoshop/pkg/response"
	"prontoshop/pkg/snowflake"
	"prontoshop/pkg/utils"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const cartSessionHeader = "X-Cart-Session"

var cartUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Cart struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	cart := r.Group("/v1/cart")
	cart.Use(h.session())
	cart.GET("", context.Wrap(h.Snapshot))
	cart.POST("/items", context.Wrap(h.AddItem))
	cart.PATCH("/items", context.Wrap(h.UpdateQuantity))
	cart.DELETE("/items/:id", context.Wrap(h.RemoveItem))
	cart.DELETE("", context.Wrap(h.Clear))
	cart.GET("/ws", h.Feed)

	wishlist := r.Group("/v1/wishlist")
	wishlist.Use(h.session())
	wishlist.GET("", context.Wrap(h.ListWishlist))
	wishlist.POST("", context.Wrap(h.AddWishlist))
	wishlist.DELETE("/:id", context.Wrap(h.RemoveWishlist))
}

// session 购物车会话：请求头带 X-Cart-Session 就沿用，没有就发一个新的
func (h *Cart) session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(cartSessionHeader)
		if sid == "" {
			sid = utils.GenHashID(h.Config.Jwt.Secret, int(snowflake.GenID()))
		}
		c.Set(context.CtxSession, sid)
		c.Header(cartSessionHeader, sid)
		c.Next()
	}
}

func (h *Cart) sid(c *gin.Context) string {
	return c.GetString(context.CtxSession)
}

func (h *Cart) Snapshot(c *gin.Context) error {
	snap, err := h.CartService.Snapshot(c.Request.Context(), h.sid(c))
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

func (h *Cart) AddItem(c *gin.Context) error {
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	snap, err := h.CartService.Add(c.Request.Context(), h.sid(c), types.CartItem{
		Id:       req.Id,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

func (h *Cart) UpdateQuantity(c *gin.Context) error {
	var req types.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	snap, err := h.CartService.UpdateQuantity(c.Request.Context(), h.sid(c), req.Id, req.Quantity)
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

func (h *Cart) RemoveItem(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	snap, err := h.CartService.Remove(c.Request.Context(), h.sid(c), id)
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

func (h *Cart) Clear(c *gin.Context) error {
	snap, err := h.CartService.Clear(c.Request.Context(), h.sid(c))
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

// Feed 购物车变更推送，连接期间每次快照变化下发一条 JSON
func (h *Cart) Feed(c *gin.Context) {
	conn, err := cartUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L.Warn("cart feed upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sid := h.sid(c)
	events, cancel := h.CartService.Subscribe(sid)
	defer cancel()

	// 读协程只为感知客户端断开
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// 先推当前状态
	if snap, err := h.CartService.Snapshot(c.Request.Context(), sid); err == nil {
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}

	for {
		select {
		case snap, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *Cart) ListWishlist(c *gin.Context) error {
	ids, err := h.CartService.ListWishlist(c.Request.Context(), h.sid(c))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"product_ids": ids})
	return nil
}

func (h *Cart) AddWishlist(c *gin.Context) error {
	var req types.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.CartService.AddWishlist(c.Request.Context(), h.sid(c), req.ProductId); err != nil {
		return err
	}
	response.Success(c, gin.H{"added": true})
	return nil
}

func (h *Cart) RemoveWishlist(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.CartService.RemoveWishlist(c.Request.Context(), h.sid(c), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"removed": true})
	return nil
}
