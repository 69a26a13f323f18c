package service

import (
	"context"
	"testing"

	"github.com/Lenon-studio/Lenon-Chat/message/repo"
	msgmodel "github.com/Lenon-studio/Lenon-Chat/message/repo/model"
	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"
	usermodel "github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*MessageService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	r := repo.NewMessageRepo(db)
	s := NewMessageService(r, standing.NewGuard(db), NewResolver(r), NewUnreadTracker())
	return s, db
}

func TestSendMessagePublic(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	ctx := context.Background()

	msgID, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPublic},
		msgmodel.KindText, "herkese merhaba", "")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, msgID)

	messages, err := s.ListMessages(ctx, Descriptor{Kind: ChannelPublic}, "alice")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "alice", messages[0].SenderID)
	require.Equal(t, "alice", messages[0].SenderName)
}

// 内容被过滤时不产生任何写入
func TestSendMessageForbiddenContent(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	ctx := context.Background()

	_, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPublic},
		msgmodel.KindText, "seni salak", "")
	require.ErrorIs(t, err, moderation.ErrForbiddenContent)

	var n int64
	require.NoError(t, db.Model(&msgmodel.Message{}).Count(&n).Error)
	require.Zero(t, n)
}

// 文件消息只带引用 不过内容过滤
func TestSendFileMessage(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	ctx := context.Background()

	_, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPublic},
		msgmodel.KindFile, "", "uploads/doc.pdf")
	require.NoError(t, err)
}

func TestSendMessageBannedSender(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	require.NoError(t, db.Model(&usermodel.User{}).Where("id = ?", "alice").
		Update("is_banned", true).Error)
	ctx := context.Background()

	_, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPublic},
		msgmodel.KindText, "merhaba", "")
	require.ErrorIs(t, err, standing.ErrBanned)
}

func TestSendMessageGroupBanned(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	ctx := context.Background()

	gid := uuid.New()
	require.NoError(t, db.Create(&msgmodel.GroupMember{GroupID: gid, UserID: "alice", Role: "admin"}).Error)
	require.NoError(t, db.Create(&msgmodel.GroupMember{GroupID: gid, UserID: "bob", Role: "member"}).Error)

	_, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelGroup, GroupID: gid},
		msgmodel.KindText, "selam", "")
	require.NoError(t, err)

	// 群封禁后成员资格还在的情况不会出现 但封禁表优先
	require.NoError(t, db.Create(&msgmodel.GroupBan{GroupID: gid, UserID: "bob"}).Error)
	_, err = s.SendMessage(ctx, "bob", Descriptor{Kind: ChannelGroup, GroupID: gid},
		msgmodel.KindText, "selam", "")
	require.ErrorIs(t, err, repo.ErrBannedFromChannel)
}

func TestDeleteOwnMessageOnly(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	ctx := context.Background()

	msgID, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPublic},
		msgmodel.KindText, "silinecek", "")
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteMessage(ctx, msgID, "bob"), repo.ErrNotMessageSender)
	require.NoError(t, s.DeleteMessage(ctx, msgID, "alice"))
	require.ErrorIs(t, s.DeleteMessage(ctx, msgID, "alice"), repo.ErrMessageNotFound)
}

// 删除和发送一样要过账号状态门禁 被封禁的用户连自己的消息都动不了
func TestDeleteMessageBlockedWhileBanned(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	ctx := context.Background()

	msgID, err := s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPublic},
		msgmodel.KindText, "kalıcı mesaj", "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&usermodel.User{}).Where("id = ?", "alice").
		Update("is_banned", true).Error)

	require.ErrorIs(t, s.DeleteMessage(ctx, msgID, "alice"), standing.ErrBanned)

	// 消息原封不动
	var n int64
	require.NoError(t, db.Model(&msgmodel.Message{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

// 私聊消息送达后 接收方的未读数增加 发送方不变
func TestSendMessageUnreadFanOut(t *testing.T) {
	s, db := newService(t)
	seedUser(t, db, "alice")
	ctx := context.Background()

	// 双方都在别的频道
	_, err := s.ActivateChannel(ctx, Descriptor{Kind: ChannelPublic}, "alice")
	require.NoError(t, err)
	_, err = s.ActivateChannel(ctx, Descriptor{Kind: ChannelPublic}, "bob")
	require.NoError(t, err)

	_, err = s.SendMessage(ctx, "alice", Descriptor{Kind: ChannelPrivate, PeerID: "bob"},
		msgmodel.KindText, "selam bob", "")
	require.NoError(t, err)

	private := PrivateChannelID("alice", "bob")
	require.Equal(t, 1, s.UnreadCounts("bob")[private])
	require.Equal(t, 0, s.UnreadCounts("alice")[private])

	// 激活私聊频道后清零
	_, err = s.ActivateChannel(ctx, Descriptor{Kind: ChannelPrivate, PeerID: "alice"}, "bob")
	require.NoError(t, err)
	require.Equal(t, 0, s.UnreadCounts("bob")[private])
}
