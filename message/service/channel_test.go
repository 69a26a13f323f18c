package service

import (
	"context"
	"testing"

	"github.com/Lenon-studio/Lenon-Chat/message/repo"
	msgmodel "github.com/Lenon-studio/Lenon-Chat/message/repo/model"
	usermodel "github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	// 消息服务跑在共享库上 群表和用户表照常存在
	require.NoError(t, db.AutoMigrate(
		&usermodel.User{}, &msgmodel.Message{}, &msgmodel.GroupMember{}, &msgmodel.GroupBan{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&usermodel.User{
		ID:           id,
		Name:         id,
		Email:        id + "@example.com",
		PasswordHash: "x",
	}).Error)
}

func TestResolvePublic(t *testing.T) {
	r := NewResolver(repo.NewMessageRepo(newTestDB(t)))

	ch, err := r.Resolve(context.Background(), Descriptor{Kind: ChannelPublic}, "anyone")
	require.NoError(t, err)
	require.Equal(t, PublicChannelID, ch.ID)
	require.Equal(t, ChannelPublic, ch.Kind)
}

// 双方各自解析私聊频道 得到的身份必须一致
func TestResolvePrivateSymmetry(t *testing.T) {
	r := NewResolver(repo.NewMessageRepo(newTestDB(t)))
	ctx := context.Background()

	fromAlice, err := r.Resolve(ctx, Descriptor{Kind: ChannelPrivate, PeerID: "bob"}, "alice")
	require.NoError(t, err)
	fromBob, err := r.Resolve(ctx, Descriptor{Kind: ChannelPrivate, PeerID: "alice"}, "bob")
	require.NoError(t, err)

	require.Equal(t, fromAlice.ID, fromBob.ID)
	require.Equal(t, "private:alice_bob", fromAlice.ID)
}

func TestResolveGroupRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(repo.NewMessageRepo(db))
	ctx := context.Background()

	gid := uuid.New()
	require.NoError(t, db.Create(&msgmodel.GroupMember{GroupID: gid, UserID: "alice", Role: "admin"}).Error)

	ch, err := r.Resolve(ctx, Descriptor{Kind: ChannelGroup, GroupID: gid}, "alice")
	require.NoError(t, err)
	require.Equal(t, GroupChannelID(gid), ch.ID)

	// 非成员解析失败 调用方回落到公共频道
	_, err = r.Resolve(ctx, Descriptor{Kind: ChannelGroup, GroupID: gid}, "mallory")
	require.ErrorIs(t, err, repo.ErrNotAMember)
}

func TestCanPost(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(repo.NewMessageRepo(db))
	ctx := context.Background()

	gid := uuid.New()
	require.NoError(t, db.Create(&msgmodel.GroupMember{GroupID: gid, UserID: "alice", Role: "admin"}).Error)
	require.NoError(t, db.Create(&msgmodel.GroupBan{GroupID: gid, UserID: "bob"}).Error)

	ch := Channel{ID: GroupChannelID(gid), Kind: ChannelGroup}

	ok, err := r.CanPost(ctx, ch, "alice")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.CanPost(ctx, ch, "bob")
	require.NoError(t, err)
	require.False(t, ok)

	// 公共频道和私聊不受群封禁影响
	ok, err = r.CanPost(ctx, Channel{ID: PublicChannelID, Kind: ChannelPublic}, "bob")
	require.NoError(t, err)
	require.True(t, ok)
}
