package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/pkg/errcode"
	"github.com/barakahq/supportbot/internal/pkg/response"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/service"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Send handles one chat turn. A blank message is rejected here, the
// pipeline behind this assumes non-empty input.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.Error(c, errcode.ErrInvalid, "message required")
		return
	}
	reply, err := h.chat.Turn(c.Request.Context(), getUsername(c), req.SessionID, req.Message)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, reply)
}

// Departments lists the routing taxonomy for client pickers.
func (h *ChatHandler) Departments(c *gin.Context) {
	type dept struct {
		Code  string `json:"code"`
		Label string `json:"label"`
	}
	out := make([]dept, 0, len(routing.All))
	for _, d := range routing.All {
		out = append(out, dept{Code: string(d), Label: routing.Label(d)})
	}
	response.Success(c, out)
}
