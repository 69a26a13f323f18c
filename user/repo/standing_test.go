package repo

import (
	"context"
	"testing"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/stretchr/testify/require"
)

const adminID = "admin"

func TestBanRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")
	r := NewStandingRepo(db, adminID)
	ctx := context.Background()

	require.ErrorIs(t, r.Ban(ctx, "alice", "bob", "x", nil), ErrNotAuthorized)
	require.ErrorIs(t, r.Unban(ctx, "alice", "bob"), ErrNotAuthorized)
	require.ErrorIs(t, r.Warn(ctx, "alice", "bob", "x"), ErrNotAuthorized)
}

func TestBanAdminAccountRejected(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, adminID)
	r := NewStandingRepo(db, adminID)
	ctx := context.Background()

	require.ErrorIs(t, r.Ban(ctx, adminID, adminID, "x", nil), ErrCannotBanAdminAccount)
	require.ErrorIs(t, r.Warn(ctx, adminID, adminID, "x"), ErrCannotWarnAdminAccount)
}

// 封禁会顺带清掉已有的警告 两种状态不叠加
func TestBanClearsWarning(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")
	r := NewStandingRepo(db, adminID)
	ctx := context.Background()

	require.NoError(t, r.Warn(ctx, adminID, "alice", "be nice"))

	var user model.User
	require.NoError(t, db.Where("id = ?", "alice").First(&user).Error)
	require.True(t, user.IsWarned)

	until := time.Now().Add(24 * time.Hour)
	require.NoError(t, r.Ban(ctx, adminID, "alice", "spam", &until))

	require.NoError(t, db.Where("id = ?", "alice").First(&user).Error)
	require.True(t, user.IsBanned)
	require.False(t, user.IsWarned)
	require.Empty(t, user.WarnReason)
}

func TestUnban(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")
	r := NewStandingRepo(db, adminID)
	ctx := context.Background()

	require.NoError(t, r.Ban(ctx, adminID, "alice", "spam", nil))
	require.NoError(t, r.Unban(ctx, adminID, "alice"))

	var user model.User
	require.NoError(t, db.Where("id = ?", "alice").First(&user).Error)
	require.False(t, user.IsBanned)
	require.Empty(t, user.BanReason)
}

func TestDismissWarning(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")
	r := NewStandingRepo(db, adminID)
	ctx := context.Background()

	require.NoError(t, r.Warn(ctx, adminID, "alice", "be nice"))
	// 解除警告是用户自助操作
	require.NoError(t, r.DismissWarning(ctx, "alice"))

	var user model.User
	require.NoError(t, db.Where("id = ?", "alice").First(&user).Error)
	require.False(t, user.IsWarned)
}

func TestStandingUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	r := NewStandingRepo(db, adminID)
	ctx := context.Background()

	require.ErrorIs(t, r.Ban(ctx, adminID, "ghost", "x", nil), ErrUserNotFound)
	require.ErrorIs(t, r.Warn(ctx, adminID, "ghost", "x"), ErrUserNotFound)
}
