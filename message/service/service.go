package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lenon-studio/Lenon-Chat/message/repo"
	"github.com/Lenon-studio/Lenon-Chat/message/repo/model"
	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/google/uuid"
)

type MessageService struct {
	repo     repo.MessageRepo
	guard    *standing.Guard
	resolver *Resolver
	unread   *UnreadTracker
}

func NewMessageService(r repo.MessageRepo, g *standing.Guard, resolver *Resolver, unread *UnreadTracker) *MessageService {
	return &MessageService{
		repo:     r,
		guard:    g,
		resolver: resolver,
		unread:   unread,
	}
}

// SendMessage 检查顺序：账号状态 -> 频道解析 -> 发言资格 -> 内容过滤
// 任何一步失败都不产生写入
func (s *MessageService) SendMessage(ctx context.Context, senderID string, desc Descriptor,
	kind model.MessageKind, text, fileRef string) (uuid.UUID, error) {
	if err := s.guard.EnsureActive(ctx, senderID); err != nil {
		return uuid.Nil, err
	}
	ch, err := s.resolver.Resolve(ctx, desc, senderID)
	if err != nil {
		return uuid.Nil, err
	}
	ok, err := s.resolver.CanPost(ctx, ch, senderID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, repo.ErrBannedFromChannel
	}
	if kind == model.KindText {
		if err := moderation.Ensure(text); err != nil {
			return uuid.Nil, err
		}
	}
	name, err := s.repo.GetUserName(ctx, senderID)
	if err != nil {
		return uuid.Nil, err
	}

	msg := &model.Message{
		ID:         uuid.New(),
		ChannelID:  ch.ID,
		SenderID:   senderID,
		SenderName: name,
		Kind:       kind,
		Text:       text,
		FileRef:    fileRef,
	}
	if err := s.repo.SendMessage(ctx, msg); err != nil {
		return uuid.Nil, fmt.Errorf("failed to send message: %w", err)
	}

	// 提交成功后才广播给未读跟踪器
	s.fanOut(ctx, ch, msg)
	return msg.ID, nil
}

// 未读事件只投递给频道的接收方
func (s *MessageService) fanOut(ctx context.Context, ch Channel, msg *model.Message) {
	switch ch.Kind {
	case ChannelPublic:
		for _, userID := range s.unread.TrackedUserIDs() {
			s.unread.OnInboundMessage(userID, msg.SenderID, ch.ID)
		}
	case ChannelGroup:
		gid, err := uuid.Parse(strings.TrimPrefix(ch.ID, "group:"))
		if err != nil {
			return
		}
		members, err := s.repo.ListGroupMemberIDs(ctx, gid)
		if err != nil {
			return
		}
		for _, userID := range members {
			s.unread.OnInboundMessage(userID, msg.SenderID, ch.ID)
		}
	case ChannelPrivate:
		pair := strings.TrimPrefix(ch.ID, "private:")
		for _, userID := range strings.SplitN(pair, "_", 2) {
			s.unread.OnInboundMessage(userID, msg.SenderID, ch.ID)
		}
	}
}

func (s *MessageService) ListMessages(ctx context.Context, desc Descriptor, actorID string) ([]model.Message, error) {
	ch, err := s.resolver.Resolve(ctx, desc, actorID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.ListMessages(ctx, ch.ID)
	if err != nil {
		return nil, fmt.Errorf("fail to load messages: %w", err)
	}
	return messages, nil
}

// DeleteMessage 删除也是写操作 同样要先过账号状态门禁
func (s *MessageService) DeleteMessage(ctx context.Context, messageID uuid.UUID, actorID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.DeleteMessage(ctx, messageID, actorID)
}

// ActivateChannel 切换激活频道 先解析保证有进入资格
func (s *MessageService) ActivateChannel(ctx context.Context, desc Descriptor, actorID string) (Channel, error) {
	ch, err := s.resolver.Resolve(ctx, desc, actorID)
	if err != nil {
		return Channel{}, err
	}
	s.unread.ActivateChannel(actorID, ch.ID)
	return ch, nil
}

func (s *MessageService) UnreadCounts(actorID string) map[string]int {
	return s.unread.Counts(actorID)
}
