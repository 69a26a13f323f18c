package handler

import (
	"errors"
	"net/http"

	"github.com/Lenon-studio/Lenon-Chat/message/dto"
	"github.com/Lenon-studio/Lenon-Chat/message/repo"
	"github.com/Lenon-studio/Lenon-Chat/message/repo/model"
	"github.com/Lenon-studio/Lenon-Chat/message/service"
	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	service *service.MessageService
}

func NewMessageHandler(s *service.MessageService) *MessageHandler {
	return &MessageHandler{service: s}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, moderation.ErrForbiddenContent):
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, standing.ErrBanned),
		errors.Is(err, standing.ErrWarned),
		errors.Is(err, repo.ErrBannedFromChannel),
		errors.Is(err, repo.ErrNotMessageSender):
		c.JSON(http.StatusForbidden, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrNotAMember),
		errors.Is(err, repo.ErrMessageNotFound),
		errors.Is(err, repo.ErrUserNotFound),
		errors.Is(err, standing.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 1, "error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"code": 1, "error": err.Error()})
	}
}

func toDescriptor(req dto.ChannelRequest) service.Descriptor {
	return service.Descriptor{
		Kind:    service.ChannelKind(req.Kind),
		GroupID: req.GroupID,
		PeerID:  req.PeerID,
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var input dto.SendMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msgID, err := h.service.SendMessage(c.Request.Context(), input.SenderID,
		toDescriptor(input.Channel), model.MessageKind(input.Kind), input.Text, input.FileRef)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "message sent",
		"data":    gin.H{"messageID": msgID},
	})
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	var input struct {
		ActorID string             `json:"actorId" binding:"required"`
		Channel dto.ChannelRequest `json:"channel" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messages, err := h.service.ListMessages(c.Request.Context(), toDescriptor(input.Channel), input.ActorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": messages})
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	var input struct {
		ActorID   string    `json:"actorId" binding:"required"`
		MessageID uuid.UUID `json:"messageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), input.MessageID, input.ActorID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "message deleted"})
}

func (h *MessageHandler) ActivateChannel(c *gin.Context) {
	var input struct {
		ActorID string             `json:"actorId" binding:"required"`
		Channel dto.ChannelRequest `json:"channel" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch, err := h.service.ActivateChannel(c.Request.Context(), toDescriptor(input.Channel), input.ActorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": ch})
}

func (h *MessageHandler) UnreadCounts(c *gin.Context) {
	actorID := c.Query("actorId")
	if actorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actorId is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": h.service.UnreadCounts(actorID)})
}
