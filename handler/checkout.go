package handler

import (
	"net/http"

	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
)

type Checkout struct {
	CheckoutService service.ICheckoutService
}

func (h *Checkout) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/checkout", context.Wrap(h.Checkout))
}

func (h *Checkout) Checkout(c *gin.Context) error {
	var req types.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.CheckoutService.Checkout(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
