package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/pkg/errcode"
	"github.com/barakahq/supportbot/internal/pkg/response"
	"github.com/barakahq/supportbot/internal/service"
)

type FaqHandler struct {
	faqs *service.FaqService
}

func NewFaqHandler(faqs *service.FaqService) *FaqHandler {
	return &FaqHandler{faqs: faqs}
}

type faqRequest struct {
	Department string `json:"department"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Tags       string `json:"tags"`
}

func (h *FaqHandler) Create(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	faq, err := h.faqs.Create(c.Request.Context(), req.Department, req.Question, req.Answer, req.Tags, getUsername(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, faq)
}

func (h *FaqHandler) List(c *gin.Context) {
	faqs, err := h.faqs.List(c.Request.Context(), c.Query("department"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, faqs)
}

func (h *FaqHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid id")
		return
	}
	faq, err := h.faqs.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, faq)
}

func (h *FaqHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid id")
		return
	}
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	faq, err := h.faqs.Update(c.Request.Context(), id, req.Department, req.Question, req.Answer, req.Tags)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, faq)
}

func (h *FaqHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid id")
		return
	}
	if err := h.faqs.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
