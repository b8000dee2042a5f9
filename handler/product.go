package handler

import (
	"net/http"
	"strconv"

	"prontoshop/config"
	"prontoshop/middleware"
	"prontoshop/models"
	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	manage := middleware.RequireRole(models.RoleAdmin, models.RoleVendor)

	products := r.Group("/v1/products")
	products.GET("", context.Wrap(h.List))
	products.GET("/:id", context.Wrap(h.Get))
	products.POST("", authorize, manage, context.Wrap(h.Create))
	products.PATCH("/:id", authorize, manage, context.Wrap(h.Update))
	products.DELETE("/:id", authorize, manage, context.Wrap(h.Delete))
}

func (h *Product) List(c *gin.Context) error {
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.ProductService.ListProducts(c.Request.Context(), cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Product) Get(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.ProductService.GetProduct(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Create(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	product, err := h.ProductService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Update(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.ProductService.UpdateProduct(c.Request.Context(), id, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Product) Delete(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.ProductService.DeleteProduct(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}
