package handler

import (
	"net/http"

	"prontoshop/pkg/context"
	"prontoshop/pkg/response"
	"prontoshop/service"
	"prontoshop/types"

	"github.com/gin-gonic/gin"
)

type Assistant struct {
	AssistantService service.IAssistantService
}

func (h *Assistant) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/ai/chat", context.Wrap(h.Chat))
}

func (h *Assistant) Chat(c *gin.Context) error {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.AssistantService.Respond(c.Request.Context(), req.Message)
	if err != nil {
		return err
	}
	response.Success(c, reply)
	return nil
}
