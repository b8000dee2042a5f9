package handler

import (
	"net/http"

	"prontoshop/config"
	"prontoshop/middleware"
	"prontoshop/models"
	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config        *config.Config
	UploadService service.IUploadService
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	manage := middleware.RequireRole(models.RoleAdmin, models.RoleVendor)

	r.POST("/v1/upload/image", authorize, manage, context.Wrap(h.Image))
}

func (h *Upload) Image(c *gin.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "file is required")
	}

	result, err := h.UploadService.UploadImage(c.Request.Context(), header)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
