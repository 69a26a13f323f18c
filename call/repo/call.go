package repo

import (
	"context"
	"errors"

	"github.com/Lenon-studio/Lenon-Chat/call/repo/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CallRepo interface {
	StartCall(ctx context.Context, callerID, calleeID string, kind model.CallKind) (uuid.UUID, error)
	Accept(ctx context.Context, callID uuid.UUID, actorID string) error
	Reject(ctx context.Context, callID uuid.UUID, actorID string) error
	GetCall(ctx context.Context, callID uuid.UUID) (*model.Call, error)
	// ListHistory 按时间倒序返回某个用户的呼叫记录
	ListHistory(ctx context.Context, userID string) ([]model.CallRecord, error)
}

type callRepo struct {
	db *gorm.DB
}

func NewCallRepo(db *gorm.DB) CallRepo {
	return &callRepo{db: db}
}

// sqlite 测试库不支持 FOR UPDATE
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (r *callRepo) StartCall(ctx context.Context, callerID, calleeID string, kind model.CallKind) (uuid.UUID, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", calleeID).Count(&n).Error; err != nil {
		return uuid.Nil, err
	}
	if n == 0 {
		return uuid.Nil, ErrUserNotFound
	}
	call := model.Call{
		ID:       uuid.New(),
		CallerID: callerID,
		CalleeID: calleeID,
		Kind:     kind,
		Status:   model.StatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&call).Error; err != nil {
		return uuid.Nil, err
	}
	return call.ID, nil
}

func (r *callRepo) Accept(ctx context.Context, callID uuid.UUID, actorID string) error {
	return r.resolve(ctx, callID, actorID, model.StatusAccepted, "Accepted")
}

func (r *callRepo) Reject(ctx context.Context, callID uuid.UUID, actorID string) error {
	return r.resolve(ctx, callID, actorID, model.StatusRejected, "Rejected")
}

// resolve 状态跃迁和双方的历史记录在同一个事务里提交
func (r *callRepo) resolve(ctx context.Context, callID uuid.UUID, actorID string,
	status model.CallStatus, calleeOutcome string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var call model.Call
		if err := forUpdate(tx).Where("id = ?", callID).First(&call).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCallNotFound
			}
			return err
		}
		if call.Status != model.StatusPending {
			return ErrAlreadyResolved
		}
		if call.CalleeID != actorID {
			return ErrNotCallee
		}

		if err := tx.Model(&model.Call{}).
			Where("id = ?", callID).
			Update("status", status).Error; err != nil {
			return err
		}

		names, err := userNames(tx, call.CallerID, call.CalleeID)
		if err != nil {
			return err
		}

		records := []model.CallRecord{
			{
				ID:          uuid.New(),
				OwnerID:     call.CallerID,
				Kind:        call.Kind,
				PartnerID:   call.CalleeID,
				PartnerName: names[call.CalleeID],
				Outcome:     "Called",
			},
			{
				ID:          uuid.New(),
				OwnerID:     call.CalleeID,
				Kind:        call.Kind,
				PartnerID:   call.CallerID,
				PartnerName: names[call.CallerID],
				Outcome:     calleeOutcome,
			},
		}
		return tx.Create(&records).Error
	})
}

func userNames(tx *gorm.DB, ids ...string) (map[string]string, error) {
	var users []model.User
	if err := tx.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func (r *callRepo) GetCall(ctx context.Context, callID uuid.UUID) (*model.Call, error) {
	var call model.Call
	if err := r.db.WithContext(ctx).Where("id = ?", callID).First(&call).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

func (r *callRepo) ListHistory(ctx context.Context, userID string) ([]model.CallRecord, error) {
	var records []model.CallRecord
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
