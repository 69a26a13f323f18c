package router

import (
	"github.com/Lenon-studio/Lenon-Chat/user/handler"

	"github.com/gin-gonic/gin"
)

func SetupUserRouter(r *gin.Engine, userHandler *handler.UserHandler) {
	r.POST("/account/register", userHandler.Register)
	r.POST("/account/login", userHandler.Login)
	r.POST("/account/logout", userHandler.Logout)
	r.GET("/account/standing", userHandler.GetStanding)
	r.PUT("/account/profile", userHandler.UpdateProfile)
	r.PUT("/account/status", userHandler.UpdateStatus)
	r.PUT("/account/devicemode", userHandler.UpdateDeviceMode)
	r.PUT("/account/welcome", userHandler.MarkWelcomeSeen)
	r.GET("/account/getinfo", userHandler.GetUserInfo)
	r.POST("/account/addfriend", userHandler.AddFriend)
	r.GET("/account/friendlists", userHandler.GetFriends)
	r.POST("/account/comment", userHandler.AddComment)
	r.GET("/account/comments", userHandler.GetComments)
}

func SetupRatingRouter(r *gin.Engine, ratingHandler *handler.RatingHandler) {
	r.POST("/rating/rate", ratingHandler.Rate)
	r.GET("/rating/list", ratingHandler.ListRatings)
}

func SetupAdminRouter(r *gin.Engine, standingHandler *handler.StandingHandler, reportHandler *handler.ReportHandler) {
	r.POST("/admin/ban", standingHandler.Ban)
	r.POST("/admin/unban", standingHandler.Unban)
	r.POST("/admin/warn", standingHandler.Warn)
	r.POST("/account/warning/dismiss", standingHandler.DismissWarning)
	r.POST("/report/create", reportHandler.Create)
	r.PUT("/admin/report/review", reportHandler.Review)
	r.GET("/admin/report/list", reportHandler.List)
}
