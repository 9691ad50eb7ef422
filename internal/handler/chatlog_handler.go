package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/pkg/response"
	"github.com/barakahq/supportbot/internal/repo"
)

type ChatLogHandler struct {
	chatLogs *repo.ChatLogRepo
}

func NewChatLogHandler(chatLogs *repo.ChatLogRepo) *ChatLogHandler {
	return &ChatLogHandler{chatLogs: chatLogs}
}

func (h *ChatLogHandler) List(c *gin.Context) {
	limit := uint(100)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			limit = uint(parsed)
		}
	}
	logs, err := h.chatLogs.List(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, logs)
}
