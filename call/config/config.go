package config

import (
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
)

type Config struct {
	Port int
}

var CorsConfig = cors.Config{
	AllowOrigins:     []string{"http://localhost:8080"}, //跨域
	AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
	AllowHeaders:     []string{"*"},
	ExposeHeaders:    []string{"X-My-Custom-Header"},
	AllowCredentials: true,
}

func Load() *Config {
	port := 10011 // 默认端口
	if v := os.Getenv("CALL_SERVICE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	return &Config{Port: port}
}

// Addr 返回监听地址
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
