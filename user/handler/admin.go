package handler

import (
	"net/http"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	service *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler {
	return &RatingHandler{service: s}
}

func (h *RatingHandler) Rate(c *gin.Context) {
	var input struct {
		RaterID  string `json:"raterId" binding:"required"`
		TargetID string `json:"targetId" binding:"required"`
		Score    int    `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Rate(c.Request.Context(), input.RaterID, input.TargetID, input.Score); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "rated"})
}

func (h *RatingHandler) ListRatings(c *gin.Context) {
	targetID := c.Query("targetId")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetId is required"})
		return
	}

	ratings, err := h.service.ListRatings(c.Request.Context(), targetID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": ratings})
}

// StandingHandler 平台级封禁/警告 只有管理员账号能调用成功
type StandingHandler struct {
	service *service.StandingService
}

func NewStandingHandler(s *service.StandingService) *StandingHandler {
	return &StandingHandler{service: s}
}

func (h *StandingHandler) Ban(c *gin.Context) {
	var input struct {
		ActorID  string `json:"actorId" binding:"required"`
		TargetID string `json:"targetId" binding:"required"`
		Reason   string `json:"reason" binding:"required"`
		// 为空表示永久封禁
		Until *time.Time `json:"until"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Ban(c.Request.Context(), input.ActorID, input.TargetID, input.Reason, input.Until); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "user banned"})
}

func (h *StandingHandler) Unban(c *gin.Context) {
	var input struct {
		ActorID  string `json:"actorId" binding:"required"`
		TargetID string `json:"targetId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Unban(c.Request.Context(), input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "user unbanned"})
}

func (h *StandingHandler) Warn(c *gin.Context) {
	var input struct {
		ActorID  string `json:"actorId" binding:"required"`
		TargetID string `json:"targetId" binding:"required"`
		Reason   string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Warn(c.Request.Context(), input.ActorID, input.TargetID, input.Reason); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "user warned"})
}

func (h *StandingHandler) DismissWarning(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DismissWarning(c.Request.Context(), input.UserID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "warning dismissed"})
}

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(s *service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var input struct {
		ReporterID     string `json:"reporterId" binding:"required"`
		ReportedUserID string `json:"reportedUserId" binding:"required"`
		Reason         string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reportID, err := h.service.Create(c.Request.Context(), input.ReporterID, input.ReportedUserID, input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "report created",
		"data":    gin.H{"reportID": reportID},
	})
}

func (h *ReportHandler) Review(c *gin.Context) {
	var input struct {
		ActorID  string    `json:"actorId" binding:"required"`
		ReportID uuid.UUID `json:"reportId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Review(c.Request.Context(), input.ActorID, input.ReportID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "report reviewed"})
}

func (h *ReportHandler) List(c *gin.Context) {
	actorID := c.Query("actorId")
	if actorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actorId is required"})
		return
	}

	reports, err := h.service.List(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": reports})
}
