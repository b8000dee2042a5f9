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

type Activity struct {
	Config          *config.Config
	ActivityService service.IActivityService
}

func (h *Activity) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	logs := r.Group("/v1/logs")
	logs.POST("", context.Wrap(h.Append))
	logs.GET("", authorize, admin, context.Wrap(h.Query))
	logs.DELETE("", authorize, admin, context.Wrap(h.Delete))
}

func (h *Activity) Append(c *gin.Context) error {
	var req types.AppendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.ActivityService.Append(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"logged": true})
	return nil
}

func (h *Activity) Query(c *gin.Context) error {
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	entries, err := h.ActivityService.Query(c.Request.Context(), userID, c.Query("action"), limit)
	if err != nil {
		return err
	}
	response.Success(c, entries)
	return nil
}

func (h *Activity) Delete(c *gin.Context) error {
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	deleted, err := h.ActivityService.Delete(c.Request.Context(), userID, c.Query("action"))
	if err != nil {
		return err
	}
	response.Success(c, types.DeleteLogsResponse{Deleted: deleted})
	return nil
}
