package handler

import (
	"errors"
	"net/http"

	"github.com/Lenon-studio/Lenon-Chat/call/repo"
	"github.com/Lenon-studio/Lenon-Chat/call/repo/model"
	"github.com/Lenon-studio/Lenon-Chat/call/service"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CallHandler struct {
	service *service.CallService
}

func NewCallHandler(s *service.CallService) *CallHandler {
	return &CallHandler{service: s}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, standing.ErrBanned),
		errors.Is(err, standing.ErrWarned),
		errors.Is(err, repo.ErrNotCallee):
		c.JSON(http.StatusForbidden, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrCallNotFound),
		errors.Is(err, repo.ErrUserNotFound),
		errors.Is(err, standing.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"code": 1, "error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"code": 1, "error": err.Error()})
	}
}

func (h *CallHandler) StartCall(c *gin.Context) {
	var input struct {
		CallerID string `json:"callerId" binding:"required"`
		CalleeID string `json:"calleeId" binding:"required"`
		Kind     string `json:"kind" binding:"required,oneof=audio video"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callID, err := h.service.StartCall(c.Request.Context(), input.CallerID, input.CalleeID, model.CallKind(input.Kind))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "call started",
		"data":    gin.H{"callID": callID},
	})
}

type resolveInput struct {
	CallID  uuid.UUID `json:"callId" binding:"required"`
	ActorID string    `json:"actorId" binding:"required"`
}

func (h *CallHandler) Accept(c *gin.Context) {
	var input resolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Accept(c.Request.Context(), input.CallID, input.ActorID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "call accepted"})
}

func (h *CallHandler) Reject(c *gin.Context) {
	var input resolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Reject(c.Request.Context(), input.CallID, input.ActorID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "call rejected"})
}

func (h *CallHandler) GetCall(c *gin.Context) {
	callID, err := uuid.Parse(c.Query("callId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid callId"})
		return
	}

	call, err := h.service.GetCall(c.Request.Context(), callID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": call})
}

func (h *CallHandler) ListHistory(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	records, err := h.service.ListHistory(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": records})
}
