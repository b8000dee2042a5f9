package handler

import (
	"net/http"
	"strconv"

	"prontoshop/config"
	"prontoshop/middleware"
	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.GET("/v1/order-status/:id", context.Wrap(h.Status))
	r.GET("/v1/orders", authorize, context.Wrap(h.List))
}

// Status 留给确认页和 AI 助手轮询用，不要求登录
func (h *Order) Status(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid order id")
	}

	status, err := h.OrderService.OrderStatus(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}

func (h *Order) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.OrderService.ListOrders(c.Request.Context(), uid, cursor, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
