package config

import (
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
)

type Config struct {
	Port      int
	JWTSecret string
	// 唯一的管理员账号 id
	AdminID string
}

var CorsConfig = cors.Config{
	AllowOrigins:     []string{"http://localhost:8080"}, //跨域
	AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
	AllowHeaders:     []string{"*"},
	ExposeHeaders:    []string{"X-My-Custom-Header"},
	AllowCredentials: true,
}

func Load() *Config {
	port := 10008 // 默认端口
	if v := os.Getenv("USER_SERVICE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	secret := os.Getenv("CHAT_JWT_SECRET")
	if secret == "" {
		secret = "lenon-chat-secret"
	}
	adminID := os.Getenv("CHAT_ADMIN_ID")
	if adminID == "" {
		adminID = "admin"
	}
	return &Config{Port: port, JWTSecret: secret, AdminID: adminID}
}

// Addr 返回监听地址
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
