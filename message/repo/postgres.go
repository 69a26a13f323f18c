package repo

import (
	"fmt"
	"log"
	"os"

	"github.com/Lenon-studio/Lenon-Chat/message/repo/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// 初始化数据库连接 群表和用户表由各自的服务迁移 这里只迁移消息表
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("CHAT_DB_DSN")
	if dsn == "" {
		dsn = "user=lenon password=12345678 dbname=lenonchat sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if err := db.AutoMigrate(&model.Message{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	DB = db
	return db, nil
}

// 关闭数据库连接
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("获取底层连接失败:", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("关闭数据库连接失败:", err)
	}
}
