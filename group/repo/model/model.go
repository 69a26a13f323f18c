package model

import (
	"time"

	"github.com/google/uuid"
)

// 群成员角色枚举 创建者即首位管理员 管理员上限3人
type GroupRole string

const (
	Member GroupRole = "member"
	Admin  GroupRole = "admin"
)

type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;index" json:"name"` // 全局唯一 不区分大小写 在事务里校验
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GroupMember struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"group_id"` // 复合主键
	UserID   string    `gorm:"primaryKey;size:64" json:"user_id"`
	Role     GroupRole `gorm:"size:16;not null;default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// GroupBan 群内黑名单 与成员表互斥：拉黑即移出成员
type GroupBan struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"group_id"`
	UserID   string    `gorm:"primaryKey;size:64" json:"user_id"`
	BannedBy string    `gorm:"size:64;not null" json:"banned_by"`
	BannedAt time.Time `gorm:"autoCreateTime" json:"banned_at"`
}
