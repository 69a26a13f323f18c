package standing

import (
	"context"
	"errors"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"gorm.io/gorm"
)

// 账号状态在所有服务的写操作之前检查，封禁/警告期间一切操作被拦截
var (
	ErrBanned       = errors.New("user is banned")
	ErrWarned       = errors.New("user is warned")
	ErrUserNotFound = errors.New("user not found")
)

type State string

const (
	Active State = "active"
	Banned State = "banned"
	Warned State = "warned"
)

type Status struct {
	State  State      `json:"state"`
	Reason string     `json:"reason,omitempty"`
	By     string     `json:"by,omitempty"`
	Until  *time.Time `json:"until,omitempty"`
	At     *time.Time `json:"at,omitempty"`
}

// Guard 供各服务注入 统一读取 users 表
type Guard struct {
	db *gorm.DB
}

func NewGuard(db *gorm.DB) *Guard {
	return &Guard{db: db}
}

// Check 读取用户当前的账号状态。
// 到期的封禁在这里自动解除并落库，调用方拿到的一定是解除后的状态。
func (g *Guard) Check(ctx context.Context, userID string) (*Status, error) {
	var user model.User
	if err := g.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.IsBanned {
		// 封禁到期 隐式解封
		if user.BannedUntil != nil && user.BannedUntil.Before(time.Now()) {
			err := g.db.WithContext(ctx).Model(&model.User{}).
				Where("id = ?", userID).
				Updates(map[string]interface{}{
					"is_banned":    false,
					"ban_reason":   "",
					"banned_until": nil,
					"banned_by":    "",
					"banned_at":    nil,
				}).Error
			if err != nil {
				return nil, err
			}
			return &Status{State: Active}, nil
		}
		return &Status{
			State:  Banned,
			Reason: user.BanReason,
			By:     user.BannedBy,
			Until:  user.BannedUntil,
			At:     user.BannedAt,
		}, nil
	}

	if user.IsWarned {
		return &Status{
			State:  Warned,
			Reason: user.WarnReason,
			By:     user.WarnedBy,
			At:     user.WarnedAt,
		}, nil
	}

	return &Status{State: Active}, nil
}

// EnsureActive 是写操作入口的统一门禁。
func (g *Guard) EnsureActive(ctx context.Context, userID string) error {
	status, err := g.Check(ctx, userID)
	if err != nil {
		return err
	}
	switch status.State {
	case Banned:
		return ErrBanned
	case Warned:
		return ErrWarned
	}
	return nil
}
