package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindFile  MessageKind = "file"
	KindAudio MessageKind = "audio"
)

// Message 发出后不可修改 只有发送者本人可以删除
type Message struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ChannelID  string      `gorm:"size:200;index;not null"`
	SenderID   string      `gorm:"size:64;index;not null"`
	SenderName string      `gorm:"size:100;not null"`
	Kind       MessageKind `gorm:"size:10;not null;default:text"`
	Text       string      `gorm:"type:text"`
	// 文件/语音消息只存引用 字节流由外部传输层负责
	FileRef   string `gorm:"size:500"`
	CreatedAt time.Time
}

// 群成员表和群封禁表由群服务迁移 这里只读
type GroupMember struct {
	GroupID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  string    `gorm:"size:64;primaryKey"`
	Role    string    `gorm:"size:10"`
}

type GroupBan struct {
	GroupID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  string    `gorm:"size:64;primaryKey"`
}

// 用户表由用户服务迁移 这里只读昵称
type User struct {
	ID   string `gorm:"size:64;primaryKey"`
	Name string `gorm:"size:100"`
}
