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

type Vendor struct {
	Config        *config.Config
	VendorService service.IVendorService
}

func (h *Vendor) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.POST("/vendor/signup", context.Wrap(h.Signup))
	r.POST("/vendor/signin", context.Wrap(h.Signin))

	vendors := r.Group("/v1/vendors")
	vendors.GET("", context.Wrap(h.List))
	vendors.GET("/:id", context.Wrap(h.Get))
	vendors.PATCH("/me", authorize, middleware.RequireRole(models.RoleVendor), context.Wrap(h.UpdateMe))
	vendors.DELETE("/me", authorize, middleware.RequireRole(models.RoleVendor), context.Wrap(h.DeleteMe))
}

func (h *Vendor) Signup(c *gin.Context) error {
	var req types.VendorSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.VendorService.Signup(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Vendor) Signin(c *gin.Context) error {
	var req types.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.VendorService.Signin(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Vendor) List(c *gin.Context) error {
	vendors, err := h.VendorService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, vendors)
	return nil
}

func (h *Vendor) Get(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid vendor id")
	}

	vendor, err := h.VendorService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, vendor)
	return nil
}

func (h *Vendor) UpdateMe(c *gin.Context) error {
	vid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.VendorService.Update(c.Request.Context(), vid, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *Vendor) DeleteMe(c *gin.Context) error {
	vid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	if err := h.VendorService.Delete(c.Request.Context(), vid); err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}
