package repo

import (
	"context"
	"testing"

	"github.com/Lenon-studio/Lenon-Chat/call/repo/model"

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
	require.NoError(t, db.AutoMigrate(&model.Call{}, &model.CallRecord{}, &model.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{ID: id, Name: name}).Error)
}

func TestStartCall(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", "Alice")
	seedUser(t, db, "bob", "Bob")
	r := NewCallRepo(db)
	ctx := context.Background()

	callID, err := r.StartCall(ctx, "alice", "bob", model.KindVideo)
	require.NoError(t, err)

	call, err := r.GetCall(ctx, callID)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, call.Status)
	require.Equal(t, model.KindVideo, call.Kind)
}

func TestStartCallUnknownCallee(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", "Alice")
	r := NewCallRepo(db)

	_, err := r.StartCall(context.Background(), "alice", "ghost", model.KindAudio)
	require.ErrorIs(t, err, ErrUserNotFound)
}

// 接受呼叫：状态跃迁 + 双方历史记录同一事务提交
// 主叫视角 Called 被叫视角 Accepted
func TestAcceptCall(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", "Alice")
	seedUser(t, db, "bob", "Bob")
	r := NewCallRepo(db)
	ctx := context.Background()

	callID, err := r.StartCall(ctx, "alice", "bob", model.KindAudio)
	require.NoError(t, err)
	require.NoError(t, r.Accept(ctx, callID, "bob"))

	call, err := r.GetCall(ctx, callID)
	require.NoError(t, err)
	require.Equal(t, model.StatusAccepted, call.Status)

	callerHistory, err := r.ListHistory(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, callerHistory, 1)
	require.Equal(t, "Called", callerHistory[0].Outcome)
	require.Equal(t, "bob", callerHistory[0].PartnerID)
	require.Equal(t, "Bob", callerHistory[0].PartnerName)

	calleeHistory, err := r.ListHistory(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, calleeHistory, 1)
	require.Equal(t, "Accepted", calleeHistory[0].Outcome)
	require.Equal(t, "alice", calleeHistory[0].PartnerID)
	require.Equal(t, "Alice", calleeHistory[0].PartnerName)
}

func TestRejectCall(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", "Alice")
	seedUser(t, db, "bob", "Bob")
	r := NewCallRepo(db)
	ctx := context.Background()

	callID, err := r.StartCall(ctx, "alice", "bob", model.KindVideo)
	require.NoError(t, err)
	require.NoError(t, r.Reject(ctx, callID, "bob"))

	call, err := r.GetCall(ctx, callID)
	require.NoError(t, err)
	require.Equal(t, model.StatusRejected, call.Status)

	calleeHistory, err := r.ListHistory(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "Rejected", calleeHistory[0].Outcome)
}

// 终态之后的 accept/reject 不产生任何变化
func TestResolveTerminalCall(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", "Alice")
	seedUser(t, db, "bob", "Bob")
	r := NewCallRepo(db)
	ctx := context.Background()

	callID, err := r.StartCall(ctx, "alice", "bob", model.KindAudio)
	require.NoError(t, err)
	require.NoError(t, r.Accept(ctx, callID, "bob"))

	require.ErrorIs(t, r.Accept(ctx, callID, "bob"), ErrAlreadyResolved)
	require.ErrorIs(t, r.Reject(ctx, callID, "bob"), ErrAlreadyResolved)

	call, err := r.GetCall(ctx, callID)
	require.NoError(t, err)
	require.Equal(t, model.StatusAccepted, call.Status)

	// 历史不会重复追加
	history, err := r.ListHistory(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestOnlyCalleeCanResolve(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", "Alice")
	seedUser(t, db, "bob", "Bob")
	r := NewCallRepo(db)
	ctx := context.Background()

	callID, err := r.StartCall(ctx, "alice", "bob", model.KindAudio)
	require.NoError(t, err)

	require.ErrorIs(t, r.Accept(ctx, callID, "alice"), ErrNotCallee)
	require.ErrorIs(t, r.Reject(ctx, callID, "mallory"), ErrNotCallee)
}

func TestGetUnknownCall(t *testing.T) {
	r := NewCallRepo(newTestDB(t))
	_, err := r.GetCall(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCallNotFound)
}
