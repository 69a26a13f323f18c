package repo

import (
	"context"
	"errors"

	"github.com/Lenon-studio/Lenon-Chat/message/repo/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepo interface {
	SendMessage(ctx context.Context, msg *model.Message) error
	// ListMessages 按写入顺序返回频道内的全部消息
	ListMessages(ctx context.Context, channelID string) ([]model.Message, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID, actorID string) error

	IsGroupMember(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
	IsGroupBanned(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
	ListGroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]string, error)
	GetUserName(ctx context.Context, userID string) (string, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) SendMessage(ctx context.Context, msg *model.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) ListMessages(ctx context.Context, channelID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) DeleteMessage(ctx context.Context, messageID uuid.UUID, actorID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var msg model.Message
		if err := tx.Where("id = ?", messageID).First(&msg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMessageNotFound
			}
			return err
		}
		if msg.SenderID != actorID {
			return ErrNotMessageSender
		}
		return tx.Delete(&msg).Error
	})
}

func (r *messageRepo) IsGroupMember(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *messageRepo) IsGroupBanned(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.GroupBan{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *messageRepo) ListGroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *messageRepo) GetUserName(ctx context.Context, userID string) (string, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Select("name").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return user.Name, nil
}
