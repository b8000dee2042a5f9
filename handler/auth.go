package handler

import (
	"net/http"

	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/signup", context.Wrap(h.Signup))
	auth.POST("/signin", context.Wrap(h.Signin))
	auth.POST("/refresh", context.Wrap(h.Refresh))
	auth.POST("/logout", context.Wrap(h.Logout))
}

func (h *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.AuthService.Signup(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Auth) Signin(c *gin.Context) error {
	var req types.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.AuthService.Signin(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Auth) Logout(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.AuthService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		return err
	}
	response.Success(c, gin.H{"revoked": true})
	return nil
}
