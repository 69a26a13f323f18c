package main

import (
	"log"

	"github.com/Lenon-studio/Lenon-Chat/call/config"
	"github.com/Lenon-studio/Lenon-Chat/call/handler"
	"github.com/Lenon-studio/Lenon-Chat/call/repo"
	"github.com/Lenon-studio/Lenon-Chat/call/router"
	"github.com/Lenon-studio/Lenon-Chat/call/service"
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
	callRepo := repo.NewCallRepo(db)
	guard := standing.NewGuard(db)
	callService := service.NewCallService(callRepo, guard)
	callHandler := handler.NewCallHandler(callService)
	router.SetCallRouter(r, callHandler)

	// 启动 HTTP 服务
	log.Printf("Call service started at http://localhost:%d", cfg.Port)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
