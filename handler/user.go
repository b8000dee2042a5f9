package handler

import (
	"net/http"

	"prontoshop/config"
	"prontoshop/middleware"
	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	users := r.Group("/users")
	users.Use(authorize)
	users.GET("/me", context.Wrap(h.Me))
	users.PUT("/me", context.Wrap(h.UpdateMe))
	users.DELETE("/me", context.Wrap(h.DeleteMe))
}

func (h *User) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *User) UpdateMe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.UserService.UpdateProfile(c.Request.Context(), uid, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *User) DeleteMe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	if err := h.UserService.DeleteAccount(c.Request.Context(), uid); err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}
