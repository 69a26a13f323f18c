package model

import (
	"time"

	"github.com/google/uuid"
)

type CallKind string

const (
	KindAudio CallKind = "audio"
	KindVideo CallKind = "video"
)

type CallStatus string

const (
	StatusPending  CallStatus = "pending"
	StatusAccepted CallStatus = "accepted"
	StatusRejected CallStatus = "rejected"
)

// Call 呼叫邀请 accepted/rejected 是终态 之后不再变化
type Call struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CallerID  string     `gorm:"size:64;index;not null"`
	CalleeID  string     `gorm:"size:64;index;not null"`
	Kind      CallKind   `gorm:"size:10;not null"`
	Status    CallStatus `gorm:"size:10;not null;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CallRecord 每次状态跃迁给双方各追加一条 只增不改
// Outcome 按视角区分 主叫看到 Called 被叫看到 Accepted/Rejected
type CallRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     string    `gorm:"size:64;index;not null"`
	Kind        CallKind  `gorm:"size:10;not null"`
	PartnerID   string    `gorm:"size:64;not null"`
	PartnerName string    `gorm:"size:100;not null"`
	Outcome     string    `gorm:"size:20;not null"`
	CreatedAt   time.Time
}

// 用户表由用户服务迁移 这里只读昵称
type User struct {
	ID   string `gorm:"size:64;primaryKey"`
	Name string `gorm:"size:100"`
}
