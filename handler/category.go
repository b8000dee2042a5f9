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

type Category struct {
	Config          *config.Config
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	categories := r.Group("/v1/categories")
	categories.GET("", context.Wrap(h.ListCategories))
	categories.POST("", authorize, admin, context.Wrap(h.CreateCategory))
	categories.PATCH("/:id", authorize, admin, context.Wrap(h.UpdateCategory))
	categories.DELETE("/:id", authorize, admin, context.Wrap(h.DeleteCategory))

	subs := r.Group("/v1/subcategories")
	subs.GET("", context.Wrap(h.ListSubcategories))
	subs.POST("", authorize, admin, context.Wrap(h.CreateSubcategory))
	subs.PATCH("/:id", authorize, admin, context.Wrap(h.UpdateSubcategory))
	subs.DELETE("/:id", authorize, admin, context.Wrap(h.DeleteSubcategory))
}

func (h *Category) ListCategories(c *gin.Context) error {
	categories, err := h.CategoryService.ListCategories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) CreateCategory(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	category, err := h.CategoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, category)
	return nil
}

func (h *Category) UpdateCategory(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid category id")
	}

	var req types.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.CategoryService.UpdateCategory(c.Request.Context(), id, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Category) DeleteCategory(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid category id")
	}

	if err := h.CategoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *Category) ListSubcategories(c *gin.Context) error {
	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)

	subs, err := h.CategoryService.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		return err
	}
	response.Success(c, subs)
	return nil
}

func (h *Category) CreateSubcategory(c *gin.Context) error {
	var req types.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.CategoryService.CreateSubcategory(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, sub)
	return nil
}

func (h *Category) UpdateSubcategory(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid subcategory id")
	}

	var req types.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.CategoryService.UpdateSubcategory(c.Request.Context(), id, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Category) DeleteSubcategory(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid subcategory id")
	}

	if err := h.CategoryService.DeleteSubcategory(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}
