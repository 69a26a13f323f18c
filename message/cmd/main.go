package main

import (
	"log"

	"github.com/Lenon-studio/Lenon-Chat/message/config"
	"github.com/Lenon-studio/Lenon-Chat/message/handler"
	"github.com/Lenon-studio/Lenon-Chat/message/repo"
	"github.com/Lenon-studio/Lenon-Chat/message/router"
	"github.com/Lenon-studio/Lenon-Chat/message/service"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	db, err := repo.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repo.CloseDB()

	// 创建Gin引擎
	r := gin.Default()
	r.Use(cors.New(config.CorsConfig))

	// 初始化仓库和服务
	messageRepo := repo.NewMessageRepo(db)
	guard := standing.NewGuard(db)
	resolver := service.NewResolver(messageRepo)
	unread := service.NewUnreadTracker()
	messageService := service.NewMessageService(messageRepo, guard, resolver, unread)
	messageHandler := handler.NewMessageHandler(messageService)
	router.SetMessageRouter(r, messageHandler)

	// 启动 HTTP 服务
	log.Printf("Message service started at http://localhost:%d", cfg.Port)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
