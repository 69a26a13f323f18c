package main

import (
	"log"

	"github.com/Lenon-studio/Lenon-Chat/standing"
	"github.com/Lenon-studio/Lenon-Chat/user/config"
	"github.com/Lenon-studio/Lenon-Chat/user/handler"
	"github.com/Lenon-studio/Lenon-Chat/user/repo"
	"github.com/Lenon-studio/Lenon-Chat/user/router"
	"github.com/Lenon-studio/Lenon-Chat/user/service"

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

	rdb, err := repo.InitRedis()
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer repo.CloseRedis()

	// 创建Gin引擎
	r := gin.Default()
	r.Use(cors.New(config.CorsConfig))

	// 初始化仓库和服务
	guard := standing.NewGuard(db)
	userRepo := repo.NewUserRepo(db)
	userRedis := repo.NewUserRedis(rdb)
	userService := service.NewUserService(userRepo, userRedis, guard, cfg.JWTSecret)
	userHandler := handler.NewUserHandler(userService)
	router.SetupUserRouter(r, userHandler)

	ratingRepo := repo.NewRatingRepo(db)
	ratingService := service.NewRatingService(ratingRepo, guard)
	ratingHandler := handler.NewRatingHandler(ratingService)
	router.SetupRatingRouter(r, ratingHandler)

	standingRepo := repo.NewStandingRepo(db, cfg.AdminID)
	standingService := service.NewStandingService(standingRepo)
	standingHandler := handler.NewStandingHandler(standingService)
	reportRepo := repo.NewReportRepo(db, cfg.AdminID)
	reportService := service.NewReportService(reportRepo, guard)
	reportHandler := handler.NewReportHandler(reportService)
	router.SetupAdminRouter(r, standingHandler, reportHandler)

	// 启动 HTTP 服务
	log.Printf("User service started at http://localhost:%d", cfg.Port)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
