package handler

import (
	"errors"
	"net/http"

	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"
	"github.com/Lenon-studio/Lenon-Chat/user/dto"
	"github.com/Lenon-studio/Lenon-Chat/user/repo"
	"github.com/Lenon-studio/Lenon-Chat/user/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 处理用户相关的 HTTP 请求
type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// 业务错误统一映射为 HTTP 状态码
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, moderation.ErrForbiddenContent),
		errors.Is(err, repo.ErrEmailTaken),
		errors.Is(err, repo.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, standing.ErrBanned),
		errors.Is(err, standing.ErrWarned),
		errors.Is(err, repo.ErrNotAuthorized),
		errors.Is(err, repo.ErrCannotBanAdminAccount),
		errors.Is(err, repo.ErrCannotWarnAdminAccount),
		errors.Is(err, repo.ErrCannotFriendSelf):
		c.JSON(http.StatusForbidden, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrUserNotFound),
		errors.Is(err, standing.ErrUserNotFound),
		errors.Is(err, repo.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrAlreadyRated),
		errors.Is(err, repo.ErrAlreadyFriends):
		c.JSON(http.StatusConflict, gin.H{"code": 1, "error": err.Error()})
	case errors.Is(err, repo.ErrTransientFailure):
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": 1, "error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"code": 1, "error": err.Error()})
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.service.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "register success",
		"data":    gin.H{"userID": userID},
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, token, status, err := h.service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "login success",
		"data": gin.H{
			"userID":   userID,
			"token":    token,
			"standing": status,
		},
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	var input dto.LogoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Logout(c.Request.Context(), input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "logout success"})
}

func (h *UserHandler) GetStanding(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	status, err := h.service.GetStanding(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": status})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
		Name   string `json:"name" binding:"required"`
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), input.UserID, input.Name, input.Avatar); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "profile updated"})
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
		Status string `json:"status" binding:"required,oneof=online away busy offline"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), input.UserID, input.Status); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "status updated"})
}

func (h *UserHandler) UpdateDeviceMode(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
		Mode   string `json:"mode" binding:"required,oneof=desktop phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateDeviceMode(c.Request.Context(), input.UserID, input.Mode); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "device mode updated"})
}

func (h *UserHandler) MarkWelcomeSeen(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.MarkWelcomeSeen(c.Request.Context(), input.UserID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "welcome marked"})
}

func (h *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	user, err := h.service.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	presence, err := h.service.GetPresence(c.Request.Context(), userID)
	if err == nil && presence != "" {
		user.Status = presence
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": user})
}

func (h *UserHandler) AddFriend(c *gin.Context) {
	var input struct {
		UserID   string `json:"userId" binding:"required"`
		FriendID string `json:"friendId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddFriend(c.Request.Context(), input.UserID, input.FriendID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "friend added"})
}

func (h *UserHandler) GetFriends(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	friends, err := h.service.GetFriends(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": friends})
}

func (h *UserHandler) AddComment(c *gin.Context) {
	var input struct {
		CommenterID string `json:"commenterId" binding:"required"`
		TargetID    string `json:"targetId" binding:"required"`
		Text        string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddComment(c.Request.Context(), input.CommenterID, input.TargetID, input.Text); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "comment added"})
}

func (h *UserHandler) GetComments(c *gin.Context) {
	targetID := c.Query("targetId")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetId is required"})
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), targetID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": comments})
}
