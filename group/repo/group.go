package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/group/repo/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxAdmins = 3

const maxTxRetries = 3

// GroupDetail 返回给前端的群详情
type GroupDetail struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	AdminIDs  []string  `json:"admin_ids"`
	BannedIDs []string  `json:"banned_ids"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupRepo interface {
	CreateGroup(ctx context.Context, name string, actorID string) (uuid.UUID, error)
	InviteMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error
	RemoveMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error
	BanMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error
	UnbanMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error
	PromoteAdmin(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error
	DemoteAdmin(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error
	LeaveGroup(ctx context.Context, groupID uuid.UUID, actorID string) error
	GetGroup(ctx context.Context, groupID uuid.UUID) (*GroupDetail, error)
	ListGroupsForUser(ctx context.Context, userID string) ([]*GroupDetail, error)
}

type groupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &groupRepo{db: db}
}

// sqlite 测试库不支持 FOR UPDATE
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "could not serialize") ||
		strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked")
}

// runTx 带重试的事务执行 并发冲突内部消化 次数耗尽才向上抛临时失败
func (r *groupRepo) runTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = r.db.WithContext(ctx).Transaction(fn)
		if !isRetryable(err) {
			return err
		}
	}
	return ErrTransientFailure
}

// 查询执行者角色 不在群里或不是管理员都会被拒
func requireAdmin(tx *gorm.DB, groupID uuid.UUID, actorID string) error {
	var actor model.GroupMember
	err := forUpdate(tx).
		Where("group_id = ? AND user_id = ?", groupID, actorID).
		First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotAMember
	}
	if err != nil {
		return err
	}
	if actor.Role != model.Admin {
		return ErrNotAdmin
	}
	return nil
}

func memberRole(tx *gorm.DB, groupID uuid.UUID, userID string) (model.GroupRole, bool, error) {
	var m model.GroupMember
	err := forUpdate(tx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.Role, true, nil
}

func adminCount(tx *gorm.DB, groupID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.GroupMember{}).
		Where("group_id = ? AND role = ?", groupID, model.Admin).
		Count(&n).Error
	return n, err
}

func isGroupBanned(tx *gorm.DB, groupID uuid.UUID, userID string) (bool, error) {
	var n int64
	err := tx.Model(&model.GroupBan{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *groupRepo) CreateGroup(ctx context.Context, name string, actorID string) (uuid.UUID, error) {
	groupID := uuid.New()
	err := r.runTx(ctx, func(tx *gorm.DB) error {
		// 群名全局唯一 不区分大小写
		var n int64
		if err := tx.Model(&model.Group{}).
			Where("LOWER(name) = ?", strings.ToLower(name)).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateName
		}

		group := model.Group{
			ID:   groupID,
			Name: name,
		}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		// 创建者是唯一成员兼唯一管理员
		creator := model.GroupMember{
			GroupID: groupID,
			UserID:  actorID,
			Role:    model.Admin,
		}
		return tx.Create(&creator).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return groupID, nil
}

func (r *groupRepo) InviteMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		if err := requireAdmin(tx, groupID, actorID); err != nil {
			return err
		}
		// 黑名单成员必须先解除 否则会破坏成员/黑名单互斥
		banned, err := isGroupBanned(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if banned {
			return ErrAlreadyBanned
		}
		_, exists, err := memberRole(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if exists { // 重复邀请视为成功
			return nil
		}
		member := model.GroupMember{
			GroupID: groupID,
			UserID:  targetID,
			Role:    model.Member,
		}
		return tx.Create(&member).Error
	})
}

func (r *groupRepo) RemoveMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		if err := requireAdmin(tx, groupID, actorID); err != nil {
			return err
		}
		if targetID == actorID {
			return ErrCannotRemoveSelf
		}
		role, exists, err := memberRole(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotAMember
		}
		if role == model.Admin {
			return ErrCannotRemoveAdmin
		}
		return tx.Where("group_id = ? AND user_id = ?", groupID, targetID).
			Delete(&model.GroupMember{}).Error
	})
}

func (r *groupRepo) BanMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		if err := requireAdmin(tx, groupID, actorID); err != nil {
			return err
		}
		if targetID == actorID {
			return ErrCannotBanSelf
		}
		role, exists, err := memberRole(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if exists && role == model.Admin {
			return ErrCannotBanAdmin
		}
		banned, err := isGroupBanned(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if banned {
			return ErrAlreadyBanned
		}

		// 移出成员和加入黑名单必须同一事务提交
		if err := tx.Where("group_id = ? AND user_id = ?", groupID, targetID).
			Delete(&model.GroupMember{}).Error; err != nil {
			return err
		}
		ban := model.GroupBan{
			GroupID:  groupID,
			UserID:   targetID,
			BannedBy: actorID,
		}
		return tx.Create(&ban).Error
	})
}

func (r *groupRepo) UnbanMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		if err := requireAdmin(tx, groupID, actorID); err != nil {
			return err
		}
		banned, err := isGroupBanned(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if !banned {
			return ErrNotBanned
		}
		if err := tx.Where("group_id = ? AND user_id = ?", groupID, targetID).
			Delete(&model.GroupBan{}).Error; err != nil {
			return err
		}
		// 解禁后以普通成员身份回到群里
		member := model.GroupMember{
			GroupID: groupID,
			UserID:  targetID,
			Role:    model.Member,
		}
		return tx.Create(&member).Error
	})
}

func (r *groupRepo) PromoteAdmin(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		if err := requireAdmin(tx, groupID, actorID); err != nil {
			return err
		}
		role, exists, err := memberRole(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotAMember
		}
		if role == model.Admin {
			return ErrAlreadyAdmin
		}
		n, err := adminCount(tx, groupID)
		if err != nil {
			return err
		}
		if n >= maxAdmins {
			return ErrAdminLimitReached
		}
		return tx.Model(&model.GroupMember{}).
			Where("group_id = ? AND user_id = ?", groupID, targetID).
			Update("role", model.Admin).Error
	})
}

func (r *groupRepo) DemoteAdmin(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		if err := requireAdmin(tx, groupID, actorID); err != nil {
			return err
		}
		role, exists, err := memberRole(tx, groupID, targetID)
		if err != nil {
			return err
		}
		if !exists || role != model.Admin {
			return ErrTargetNotAdmin
		}
		// 至少保留一名管理员 唯一管理员的降级永远被拒
		n, err := adminCount(tx, groupID)
		if err != nil {
			return err
		}
		if n <= 1 {
			return ErrLastAdmin
		}
		if targetID == actorID {
			return ErrCannotDemoteSelf
		}
		return tx.Model(&model.GroupMember{}).
			Where("group_id = ? AND user_id = ?", groupID, targetID).
			Update("role", model.Member).Error
	})
}

func (r *groupRepo) LeaveGroup(ctx context.Context, groupID uuid.UUID, actorID string) error {
	return r.runTx(ctx, func(tx *gorm.DB) error {
		role, exists, err := memberRole(tx, groupID, actorID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotAMember
		}

		if role == model.Admin {
			admins, err := adminCount(tx, groupID)
			if err != nil {
				return err
			}
			var members int64
			if err := tx.Model(&model.GroupMember{}).
				Where("group_id = ?", groupID).
				Count(&members).Error; err != nil {
				return err
			}
			// 唯一管理员不能把群丢给别人 必须先移交
			// 只剩自己时允许离开 群进入无主状态
			if admins == 1 && members > 1 {
				return ErrSoleAdminMustTransferFirst
			}
		}

		return tx.Where("group_id = ? AND user_id = ?", groupID, actorID).
			Delete(&model.GroupMember{}).Error
	})
}

func (r *groupRepo) GetGroup(ctx context.Context, groupID uuid.UUID) (*GroupDetail, error) {
	var group model.Group
	err := r.db.WithContext(ctx).Where("id = ?", groupID).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.loadDetail(ctx, &group)
}

func (r *groupRepo) ListGroupsForUser(ctx context.Context, userID string) ([]*GroupDetail, error) {
	var groupIDs []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return []*GroupDetail{}, nil
	}

	var groups []model.Group
	if err := r.db.WithContext(ctx).Where("id IN ?", groupIDs).Find(&groups).Error; err != nil {
		return nil, err
	}

	details := make([]*GroupDetail, 0, len(groups))
	for i := range groups {
		d, err := r.loadDetail(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (r *groupRepo) loadDetail(ctx context.Context, group *model.Group) (*GroupDetail, error) {
	var members []model.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", group.ID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	detail := &GroupDetail{
		ID:        group.ID,
		Name:      group.Name,
		Members:   make([]string, 0, len(members)),
		AdminIDs:  []string{},
		BannedIDs: []string{},
		CreatedAt: group.CreatedAt,
	}
	for _, m := range members {
		detail.Members = append(detail.Members, m.UserID)
		if m.Role == model.Admin {
			detail.AdminIDs = append(detail.AdminIDs, m.UserID)
		}
	}

	err = r.db.WithContext(ctx).Model(&model.GroupBan{}).
		Where("group_id = ?", group.ID).
		Pluck("user_id", &detail.BannedIDs).Error
	if err != nil {
		return nil, err
	}
	return detail, nil
}
