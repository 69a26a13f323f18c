package handler

import (
	"errors"
	"net/http"

	"github.com/Lenon-studio/Lenon-Chat/group/repo"
	"github.com/Lenon-studio/Lenon-Chat/group/service"
	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroupHandler struct {
	service *service.GroupService
}

func NewGroupHandler(s *service.GroupService) *GroupHandler {
	return &GroupHandler{
		service: s,
	}
}

// 错误分层：校验400 权限403 状态冲突409 临时失败503
func writeError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, moderation.ErrForbiddenContent),
		errors.Is(err, repo.ErrDuplicateName):
		status = http.StatusBadRequest
	case errors.Is(err, standing.ErrBanned),
		errors.Is(err, standing.ErrWarned),
		errors.Is(err, repo.ErrNotAdmin),
		errors.Is(err, repo.ErrCannotRemoveSelf),
		errors.Is(err, repo.ErrCannotRemoveAdmin),
		errors.Is(err, repo.ErrCannotBanSelf),
		errors.Is(err, repo.ErrCannotBanAdmin),
		errors.Is(err, repo.ErrCannotDemoteSelf):
		status = http.StatusForbidden
	case errors.Is(err, repo.ErrAlreadyBanned),
		errors.Is(err, repo.ErrNotBanned),
		errors.Is(err, repo.ErrAlreadyAdmin),
		errors.Is(err, repo.ErrAdminLimitReached),
		errors.Is(err, repo.ErrTargetNotAdmin),
		errors.Is(err, repo.ErrLastAdmin),
		errors.Is(err, repo.ErrSoleAdminMustTransferFirst):
		status = http.StatusConflict
	case errors.Is(err, repo.ErrGroupNotFound),
		errors.Is(err, repo.ErrNotAMember),
		errors.Is(err, standing.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repo.ErrTransientFailure):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"code": 1, "error": err.Error()})
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var input struct {
		ActorID   string `json:"actor_id" binding:"required"`
		GroupName string `json:"group_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	groupID, err := h.service.CreateGroup(c.Request.Context(), input.GroupName, input.ActorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "create group ok",
		"groupID": groupID,
	})
}

type memberInput struct {
	GroupID  uuid.UUID `json:"group_id" binding:"required"`
	ActorID  string    `json:"actor_id" binding:"required"`
	TargetID string    `json:"target_id" binding:"required"`
}

func (h *GroupHandler) InviteMember(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.InviteMember(c.Request.Context(), input.GroupID, input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "invite ok",
	})
}

func (h *GroupHandler) RemoveMember(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.RemoveMember(c.Request.Context(), input.GroupID, input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "remove member ok",
	})
}

func (h *GroupHandler) BanMember(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.BanMember(c.Request.Context(), input.GroupID, input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "ban member ok",
	})
}

func (h *GroupHandler) UnbanMember(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.UnbanMember(c.Request.Context(), input.GroupID, input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "unban member ok",
	})
}

func (h *GroupHandler) PromoteAdmin(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.PromoteAdmin(c.Request.Context(), input.GroupID, input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "promote to admin ok",
		"userid":  input.TargetID,
	})
}

func (h *GroupHandler) DemoteAdmin(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.DemoteAdmin(c.Request.Context(), input.GroupID, input.ActorID, input.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "demote to member ok",
		"userid":  input.TargetID,
	})
}

func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	var input struct {
		GroupID uuid.UUID `json:"group_id" binding:"required"`
		ActorID string    `json:"actor_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"code": 1, "error": err.Error()})
		return
	}
	if err := h.service.LeaveGroup(c.Request.Context(), input.GroupID, input.ActorID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "leave group ok",
	})
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Query("group_id"))
	if err != nil {
		c.JSON(400, gin.H{"code": 1, "error": "invalid group_id"})
		return
	}
	detail, err := h.service.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":   0,
		"detail": detail,
	})
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(400, gin.H{"code": 1, "error": "user_id is required"})
		return
	}
	groups, err := h.service.ListGroupsForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":   0,
		"groups": groups,
	})
}
