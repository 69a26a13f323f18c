package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
)

type User struct {
	ID             string  `gorm:"primaryKey;size:64" json:"id"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	PasswordHash   string  `gorm:"not null" json:"password_hash"`
	Email          string  `gorm:"uniqueIndex:users_email_key" json:"email"`
	Avatar         string  `gorm:"size:255;default:''" json:"avatar"`
	Status         string  `gorm:"size:100;default:'online'" json:"status"` // 在线状态/最后在线时间
	DeviceMode     string  `gorm:"size:16;default:''" json:"device_mode"`   // desktop | phone
	HasSeenWelcome bool    `gorm:"not null;default:false" json:"has_seen_welcome"`
	AverageRating  float64 `gorm:"not null;default:0" json:"average_rating"`
	RatingCount    int     `gorm:"not null;default:0" json:"rating_count"`

	// 封禁记录
	IsBanned    bool       `gorm:"not null;default:false" json:"is_banned"`
	BanReason   string     `gorm:"size:255;default:''" json:"ban_reason"`
	BannedUntil *time.Time `json:"banned_until"`
	BannedBy    string     `gorm:"size:64;default:''" json:"banned_by"`
	BannedAt    *time.Time `json:"banned_at"`

	// 警告记录 封禁会清空警告 两者不同时生效
	IsWarned   bool       `gorm:"not null;default:false" json:"is_warned"`
	WarnReason string     `gorm:"size:255;default:''" json:"warn_reason"`
	WarnedBy   string     `gorm:"size:64;default:''" json:"warned_by"`
	WarnedAt   *time.Time `json:"warned_at"`

	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// Rating 复合主键保证同一个评分人对同一个目标只能出现一次
type Rating struct {
	TargetID  string    `gorm:"primaryKey;size:64" json:"target_id"`
	RaterID   string    `gorm:"primaryKey;size:64" json:"rater_id"`
	Score     int       `gorm:"not null" json:"score"` // 1..5
	CreatedAt time.Time `json:"created_at"`
}

type Friendship struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index:friendships_pair,unique" json:"user_id"`
	FriendID  string    `gorm:"size:64;not null;index:friendships_pair,unique" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment 个人主页的留言 追加写 不可修改
type Comment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TargetID      string    `gorm:"size:64;not null;index" json:"target_id"`
	CommenterID   string    `gorm:"size:64;not null" json:"commenter_id"`
	CommenterName string    `gorm:"size:100" json:"commenter_name"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	CreatedAt     time.Time `json:"created_at"`
}

type Report struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID     string       `gorm:"size:64;not null;index" json:"reporter_id"`
	ReportedUserID string       `gorm:"size:64;not null;index" json:"reported_user_id"`
	Reason         string       `gorm:"type:text;not null" json:"reason"`
	Status         ReportStatus `gorm:"size:16;not null;default:'pending'" json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}
