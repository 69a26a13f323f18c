package repo

import (
	"log"
	"os"

	"github.com/Lenon-studio/Lenon-Chat/group/repo/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("CHAT_DB_DSN")
	if dsn == "" {
		dsn = "user=lenon password=12345678 dbname=lenonchat sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	DB = db

	autoMigrate()

	return DB, nil
}

func autoMigrate() {
	err := DB.AutoMigrate(
		&model.Group{},
		&model.GroupMember{},
		&model.GroupBan{},
	)
	if err != nil {
		log.Fatal("数据库迁移失败：", err)
	}
}

// CloseDB 关闭数据库连接
func CloseDB() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("获取 sql.DB 实例失败：", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("关闭数据库连接失败：", err)
	}
}
