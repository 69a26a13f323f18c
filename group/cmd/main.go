package main

import (
	"log"

	"github.com/Lenon-studio/Lenon-Chat/group/config"
	"github.com/Lenon-studio/Lenon-Chat/group/handler"
	"github.com/Lenon-studio/Lenon-Chat/group/repo"
	"github.com/Lenon-studio/Lenon-Chat/group/router"
	"github.com/Lenon-studio/Lenon-Chat/group/service"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	db, err := repo.InitDB()
	if err != nil {
		log.Fatalf("Fail to initialize Database:%v", err)
	}
	defer repo.CloseDB()

	r := gin.Default()
	r.Use(cors.New(config.CorsConfig))

	groupRepo := repo.NewGroupRepo(db)
	guard := standing.NewGuard(db)
	groupService := service.NewGroupService(groupRepo, guard)
	groupHandler := handler.NewGroupHandler(groupService)
	router.SetGroupRouter(r, groupHandler)

	log.Printf("Group service started at http://localhost:%d", cfg.Port)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
