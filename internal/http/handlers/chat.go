package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/http/response"
	"github.com/solemate/solemate-backend/internal/pkg/dbctx"
	"github.com/solemate/solemate-backend/internal/services"
)

const defaultHistoryLimit = 10

type ChatHandler struct {
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type chatHistoryItem struct {
	ID        uint        `json:"id"`
	Role      domain.Role `json:"role"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	result, err := h.chat.ProcessMessage(dbc, req.SessionID, req.Message)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /chat/history/:session_id?limit=10
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("session_id")

	limit := defaultHistoryLimit
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	history, err := h.chat.GetSessionHistory(dbc, sessionID, limit)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}

	items := make([]chatHistoryItem, 0, len(history))
	for _, m := range history {
		items = append(items, chatHistoryItem{
			ID:        m.ID,
			Role:      m.Role,
			Message:   m.Message,
			Timestamp: m.Timestamp,
		})
	}
	response.RespondOK(c, items)
}

// DELETE /chat/history/:session_id
func (h *ChatHandler) DeleteHistory(c *gin.Context) {
	sessionID := c.Param("session_id")

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	deleted, err := h.chat.ClearSessionHistory(dbc, sessionID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": deleted})
}
