package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/dto"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("session not found")

type UserRedis interface {
	SetSession(ctx context.Context, session *dto.UserSession) error
	GetSession(ctx context.Context, userID string) (*dto.UserSession, error)
	DelSession(ctx context.Context, userID string) error
	// 在线状态有 2 分钟有效期 客户端靠心跳续期
	SetPresence(ctx context.Context, userID, status string) error
	GetPresence(ctx context.Context, userID string) (string, error)
}

type userRedis struct {
	rdb *redis.Client
}

func NewUserRedis(rdb *redis.Client) UserRedis {
	return &userRedis{rdb: rdb}
}

func (r *userRedis) SetSession(ctx context.Context, session *dto.UserSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, "session:"+session.UserID, data, 10*time.Hour).Err()
}

func (r *userRedis) GetSession(ctx context.Context, userID string) (*dto.UserSession, error) {
	val, err := r.rdb.Get(ctx, "session:"+userID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session dto.UserSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *userRedis) DelSession(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, "session:"+userID).Err()
}

func (r *userRedis) SetPresence(ctx context.Context, userID, status string) error {
	return r.rdb.Set(ctx, "presence:"+userID, status, 2*time.Minute).Err()
}

func (r *userRedis) GetPresence(ctx context.Context, userID string) (string, error) {
	val, err := r.rdb.Get(ctx, "presence:"+userID).Result()
	if err == redis.Nil {
		return "offline", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
