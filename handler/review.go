package handler

import (
	"net/http"
	"strconv"

	"prontoshop/config"
	"prontoshop/middleware"
	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
)

type Review struct {
	Config        *config.Config
	ReviewService service.IReviewService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.GET("/v1/products/:id/reviews", context.Wrap(h.ListByProduct))
	r.POST("/v1/reviews", authorize, context.Wrap(h.Create))
	r.DELETE("/v1/reviews/:id", authorize, context.Wrap(h.Delete))
}

func (h *Review) ListByProduct(c *gin.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	reviews, err := h.ReviewService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		return err
	}
	response.Success(c, reviews)
	return nil
}

func (h *Review) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	review, err := h.ReviewService.CreateReview(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, review)
	return nil
}

func (h *Review) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid review id")
	}

	if err := h.ReviewService.DeleteReview(c.Request.Context(), uid, id); err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}
