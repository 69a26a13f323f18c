package repo

import (
	"context"
	"testing"

	"github.com/Lenon-studio/Lenon-Chat/group/repo/model"

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
	require.NoError(t, db.AutoMigrate(&model.Group{}, &model.GroupMember{}, &model.GroupBan{}))
	return db
}

func TestCreateGroup(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()

	gid, err := r.CreateGroup(ctx, "Gophers", "alice")
	require.NoError(t, err)

	detail, err := r.GetGroup(ctx, gid)
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, detail.Members)
	require.Equal(t, []string{"alice"}, detail.AdminIDs)
	require.Empty(t, detail.BannedIDs)
}

func TestCreateGroupDuplicateNameCaseInsensitive(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()

	_, err := r.CreateGroup(ctx, "Gophers", "alice")
	require.NoError(t, err)

	_, err = r.CreateGroup(ctx, "gOpHeRs", "bob")
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestInviteMember(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")

	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))
	// 重复邀请是幂等的
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))

	// 非管理员不能邀请
	require.ErrorIs(t, r.InviteMember(ctx, gid, "bob", "carol"), ErrNotAdmin)
	// 非成员不能邀请
	require.ErrorIs(t, r.InviteMember(ctx, gid, "mallory", "carol"), ErrNotAMember)
}

func TestRemoveMember(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "carol"))
	require.NoError(t, r.PromoteAdmin(ctx, gid, "alice", "carol"))

	require.ErrorIs(t, r.RemoveMember(ctx, gid, "alice", "alice"), ErrCannotRemoveSelf)
	// 管理员必须先降级才能移除
	require.ErrorIs(t, r.RemoveMember(ctx, gid, "alice", "carol"), ErrCannotRemoveAdmin)
	require.ErrorIs(t, r.RemoveMember(ctx, gid, "alice", "ghost"), ErrNotAMember)

	require.NoError(t, r.RemoveMember(ctx, gid, "alice", "bob"))
	detail, _ := r.GetGroup(ctx, gid)
	require.NotContains(t, detail.Members, "bob")
}

func TestBanAndUnban(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))

	require.ErrorIs(t, r.BanMember(ctx, gid, "alice", "alice"), ErrCannotBanSelf)

	require.NoError(t, r.BanMember(ctx, gid, "alice", "bob"))
	detail, _ := r.GetGroup(ctx, gid)
	// 黑名单与成员集合互斥
	require.NotContains(t, detail.Members, "bob")
	require.Contains(t, detail.BannedIDs, "bob")

	require.ErrorIs(t, r.BanMember(ctx, gid, "alice", "bob"), ErrAlreadyBanned)
	// 被封禁的人不能被邀请回来
	require.ErrorIs(t, r.InviteMember(ctx, gid, "alice", "bob"), ErrAlreadyBanned)

	require.NoError(t, r.UnbanMember(ctx, gid, "alice", "bob"))
	detail, _ = r.GetGroup(ctx, gid)
	require.Contains(t, detail.Members, "bob")
	require.NotContains(t, detail.BannedIDs, "bob")

	require.ErrorIs(t, r.UnbanMember(ctx, gid, "alice", "bob"), ErrNotBanned)
}

func TestBanAdminRejected(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))
	require.NoError(t, r.PromoteAdmin(ctx, gid, "alice", "bob"))

	require.ErrorIs(t, r.BanMember(ctx, gid, "alice", "bob"), ErrCannotBanAdmin)
}

func TestPromoteAdminLimit(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	for _, u := range []string{"bob", "carol", "dave"} {
		require.NoError(t, r.InviteMember(ctx, gid, "alice", u))
	}
	require.NoError(t, r.PromoteAdmin(ctx, gid, "alice", "bob"))
	require.NoError(t, r.PromoteAdmin(ctx, gid, "alice", "carol"))

	// 上限是 3 个管理员
	require.ErrorIs(t, r.PromoteAdmin(ctx, gid, "alice", "dave"), ErrAdminLimitReached)
	require.ErrorIs(t, r.PromoteAdmin(ctx, gid, "alice", "bob"), ErrAlreadyAdmin)
	require.ErrorIs(t, r.PromoteAdmin(ctx, gid, "alice", "ghost"), ErrNotAMember)
}

func TestDemoteAdmin(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))
	require.NoError(t, r.PromoteAdmin(ctx, gid, "alice", "bob"))

	require.ErrorIs(t, r.DemoteAdmin(ctx, gid, "alice", "alice"), ErrCannotDemoteSelf)
	require.NoError(t, r.DemoteAdmin(ctx, gid, "alice", "bob"))

	detail, _ := r.GetGroup(ctx, gid)
	require.Equal(t, []string{"alice"}, detail.AdminIDs)
	require.ErrorIs(t, r.DemoteAdmin(ctx, gid, "alice", "bob"), ErrTargetNotAdmin)
}

func TestDemoteLastAdminAlwaysRejected(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))

	// 唯一管理员的降级永远失败 即使目标是自己
	require.ErrorIs(t, r.DemoteAdmin(ctx, gid, "alice", "alice"), ErrLastAdmin)
}

func TestLeaveGroup(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	gid, _ := r.CreateGroup(ctx, "g", "alice")
	require.NoError(t, r.InviteMember(ctx, gid, "alice", "bob"))

	// 唯一管理员必须先移交
	require.ErrorIs(t, r.LeaveGroup(ctx, gid, "alice"), ErrSoleAdminMustTransferFirst)

	require.NoError(t, r.PromoteAdmin(ctx, gid, "alice", "bob"))
	require.NoError(t, r.LeaveGroup(ctx, gid, "alice"))

	detail, _ := r.GetGroup(ctx, gid)
	require.Equal(t, []string{"bob"}, detail.Members)

	// 最后一名成员可以离开 群进入无主状态但仍然存在
	require.NoError(t, r.LeaveGroup(ctx, gid, "bob"))
	detail, err := r.GetGroup(ctx, gid)
	require.NoError(t, err)
	require.Empty(t, detail.Members)
}

func TestListGroupsForUser(t *testing.T) {
	r := NewGroupRepo(newTestDB(t))
	ctx := context.Background()
	g1, _ := r.CreateGroup(ctx, "one", "alice")
	g2, _ := r.CreateGroup(ctx, "two", "bob")
	require.NoError(t, r.InviteMember(ctx, g2, "bob", "alice"))

	details, err := r.ListGroupsForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, details, 2)

	ids := []string{details[0].ID.String(), details[1].ID.String()}
	require.Contains(t, ids, g1.String())
	require.Contains(t, ids, g2.String())
}
