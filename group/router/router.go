package router

import (
	"github.com/Lenon-studio/Lenon-Chat/group/handler"

	"github.com/gin-gonic/gin"
)

func SetGroupRouter(r *gin.Engine, groupHandler *handler.GroupHandler) {
	r.POST("/group/create", groupHandler.CreateGroup)
	r.POST("/group/member/invite", groupHandler.InviteMember)
	r.DELETE("/group/member/remove", groupHandler.RemoveMember)
	r.POST("/group/member/ban", groupHandler.BanMember)
	r.POST("/group/member/unban", groupHandler.UnbanMember)
	r.PUT("/group/admin/promote", groupHandler.PromoteAdmin)
	r.PUT("/group/admin/demote", groupHandler.DemoteAdmin)
	r.POST("/group/leave", groupHandler.LeaveGroup)
	r.GET("/group/detail", groupHandler.GetGroup)
	r.GET("/group/list", groupHandler.ListGroups)
}
