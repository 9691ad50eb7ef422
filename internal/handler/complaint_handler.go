package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/middleware"
	"github.com/barakahq/supportbot/internal/model"
	"github.com/barakahq/supportbot/internal/pkg/errcode"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/pkg/response"
	"github.com/barakahq/supportbot/internal/service"
)

type ComplaintHandler struct {
	complaints *service.ComplaintService
}

func NewComplaintHandler(complaints *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

type complaintRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Priority  string `json:"priority"`
}

func (h *ComplaintHandler) Create(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	ticket, err := h.complaints.Create(c.Request.Context(), getUsername(c), req.SessionID, req.Text, req.Priority)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, ticket)
}

// Get lets the submitter see their own ticket; agents see all.
func (h *ComplaintHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid id")
		return
	}
	complaint, err := h.complaints.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	role, _ := c.Get(middleware.ContextRoleKey)
	if role != model.RoleAdmin && complaint.Username != getUsername(c) {
		handleError(c, appErr.ErrForbidden)
		return
	}
	response.Success(c, complaint)
}

func (h *ComplaintHandler) List(c *gin.Context) {
	complaints, err := h.complaints.List(c.Request.Context(), c.Query("department"), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, complaints)
}

type complaintUpdateRequest struct {
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	Department    string `json:"department"`
	InternalNotes string `json:"internal_notes"`
}

func (h *ComplaintHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid id")
		return
	}
	var req complaintUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	complaint, err := h.complaints.Update(c.Request.Context(), id, req.Status, req.Priority, req.Department, req.InternalNotes)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, complaint)
}
