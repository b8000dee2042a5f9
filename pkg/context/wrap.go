package context

import (
	"errors"
	"net/http"

	"prontoshop/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID  = "user_id"
	CtxRole    = "role"
	CtxSession = "session_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

func GetRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}
