package repo

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

var RDB *redis.Client

// 初始化 Redis 客户端
func InitRedis() (*redis.Client, error) {
	addr := os.Getenv("CHAT_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379" // 后端在docker运行 改为 redis:6379
	}
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("CHAT_REDIS_PASSWORD"),
		DB:       0,
	})

	// 测试连接是否成功
	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return RDB, nil
}

// 关闭 Redis 客户端连接
func CloseRedis() {
	if RDB != nil {
		if err := RDB.Close(); err != nil {
			log.Println("关闭 Redis 连接失败:", err)
		}
	}
}
