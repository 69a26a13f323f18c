package router

import (
	"github.com/Lenon-studio/Lenon-Chat/call/handler"

	"github.com/gin-gonic/gin"
)

func SetCallRouter(r *gin.Engine, callHandler *handler.CallHandler) {
	r.POST("/call/start", callHandler.StartCall)
	r.PUT("/call/accept", callHandler.Accept)
	r.PUT("/call/reject", callHandler.Reject)
	r.GET("/call/detail", callHandler.GetCall)
	r.GET("/call/history", callHandler.ListHistory)
}
