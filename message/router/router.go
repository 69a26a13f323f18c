package router

import (
	"github.com/Lenon-studio/Lenon-Chat/message/handler"

	"github.com/gin-gonic/gin"
)

func SetMessageRouter(r *gin.Engine, messageHandler *handler.MessageHandler) {
	r.POST("/message/send", messageHandler.SendMessage)
	r.POST("/message/list", messageHandler.ListMessages)
	r.DELETE("/message/delete", messageHandler.DeleteMessage)
	r.POST("/channel/activate", messageHandler.ActivateChannel)
	r.GET("/channel/unread", messageHandler.UnreadCounts)
}
