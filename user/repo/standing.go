package repo

import (
	"context"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"gorm.io/gorm"
)

// StandingRepo 平台级封禁/警告的唯一写入口
// 读取和门禁在 standing 包 所有服务共用
type StandingRepo interface {
	Ban(ctx context.Context, actorID, targetID, reason string, until *time.Time) error
	Unban(ctx context.Context, actorID, targetID string) error
	Warn(ctx context.Context, actorID, targetID, reason string) error
	DismissWarning(ctx context.Context, targetID string) error
}

type standingRepo struct {
	db      *gorm.DB
	adminID string // 管理员是唯一的特权账号
}

func NewStandingRepo(db *gorm.DB, adminID string) StandingRepo {
	return &standingRepo{db: db, adminID: adminID}
}

func (r *standingRepo) Ban(ctx context.Context, actorID, targetID, reason string, until *time.Time) error {
	if actorID != r.adminID {
		return ErrNotAuthorized
	}
	if targetID == r.adminID {
		return ErrCannotBanAdminAccount
	}
	now := time.Now()
	// 封禁同时清掉警告 两种状态不叠加 单行更新天然原子
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", targetID).
		Updates(map[string]interface{}{
			"is_banned":    true,
			"ban_reason":   reason,
			"banned_until": until,
			"banned_by":    actorID,
			"banned_at":    &now,
			"is_warned":    false,
			"warn_reason":  "",
			"warned_by":    "",
			"warned_at":    nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *standingRepo) Unban(ctx context.Context, actorID, targetID string) error {
	if actorID != r.adminID {
		return ErrNotAuthorized
	}
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", targetID).
		Updates(map[string]interface{}{
			"is_banned":    false,
			"ban_reason":   "",
			"banned_until": nil,
			"banned_by":    "",
			"banned_at":    nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *standingRepo) Warn(ctx context.Context, actorID, targetID, reason string) error {
	if actorID != r.adminID {
		return ErrNotAuthorized
	}
	if targetID == r.adminID {
		return ErrCannotWarnAdminAccount
	}
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", targetID).
		Updates(map[string]interface{}{
			"is_warned":   true,
			"warn_reason": reason,
			"warned_by":   actorID,
			"warned_at":   &now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DismissWarning 用户确认警告后自助解除 不需要管理员
func (r *standingRepo) DismissWarning(ctx context.Context, targetID string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", targetID).
		Updates(map[string]interface{}{
			"is_warned":   false,
			"warn_reason": "",
			"warned_by":   "",
			"warned_at":   nil,
		}).Error
}
