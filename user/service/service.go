package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"
	"github.com/Lenon-studio/Lenon-Chat/user/dto"
	"github.com/Lenon-studio/Lenon-Chat/user/repo"
	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type UserService struct {
	repo      repo.UserRepo
	redis     repo.UserRedis
	guard     *standing.Guard
	jwtSecret string
}

func NewUserService(r repo.UserRepo, u repo.UserRedis, g *standing.Guard, jwtSecret string) *UserService {
	return &UserService{
		repo:      r,
		redis:     u,
		guard:     g,
		jwtSecret: jwtSecret,
	}
}

func md5String(str string) string {
	hash := md5.New()
	hash.Write([]byte(str))
	return hex.EncodeToString(hash.Sum(nil))
}

func GenerateToken(userID string, secret string) (string, error) {
	claims := jwt.MapClaims{
		"userID": userID,
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // 24 小时过期
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	// 昵称也要过滤敏感词
	if err := moderation.Ensure(name); err != nil {
		return "", err
	}
	if existing, _ := s.repo.GetUserByEmail(ctx, email); existing != nil {
		return "", repo.ErrEmailTaken
	}
	user := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: md5String(password),
		Status:       "offline",
		DeviceMode:   "desktop",
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

// Login 被封禁的用户仍然可以登录 客户端根据返回的状态展示封禁页
// 过期的封禁在查询状态时就地解除
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, *standing.Status, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", nil, err
	}
	if user.PasswordHash != md5String(password) {
		return "", "", nil, repo.ErrWrongPassword
	}
	status, err := s.guard.Check(ctx, user.ID)
	if err != nil {
		return "", "", nil, err
	}
	token, err := GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w", err)
	}
	session := &dto.UserSession{
		UserID:    user.ID,
		Token:     token,
		LoginTime: time.Now(),
	}
	s.repo.UpdateLoginTime(ctx, user.ID)
	if err := s.redis.SetSession(ctx, session); err != nil {
		return "", "", nil, fmt.Errorf("failed to set session: %w", err)
	}
	s.redis.SetPresence(ctx, user.ID, "online")
	return user.ID, token, status, nil
}

func (s *UserService) Logout(ctx context.Context, req dto.LogoutRequest) error {
	storedSession, err := s.redis.GetSession(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("failed to retrieve session from Redis: %w", err)
	}
	if storedSession.Token != req.Token {
		return repo.ErrWrongPassword
	}
	if err := s.redis.DelSession(ctx, req.UserID); err != nil {
		return fmt.Errorf("failed to delete session from Redis: %w", err)
	}
	s.redis.SetPresence(ctx, req.UserID, "offline")
	return nil
}

func (s *UserService) GetStanding(ctx context.Context, userID string) (*standing.Status, error) {
	return s.guard.Check(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, name, avatar string) error {
	if err := s.guard.EnsureActive(ctx, userID); err != nil {
		return err
	}
	if err := moderation.Ensure(name); err != nil {
		return err
	}
	if err := s.repo.UpdateProfile(ctx, userID, name, avatar); err != nil {
		return fmt.Errorf("fail to update profile: %w", err)
	}
	return nil
}

func (s *UserService) UpdateStatus(ctx context.Context, userID, status string) error {
	if err := s.guard.EnsureActive(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, userID, status); err != nil {
		return fmt.Errorf("fail to update status: %w", err)
	}
	s.redis.SetPresence(ctx, userID, status)
	return nil
}

func (s *UserService) UpdateDeviceMode(ctx context.Context, userID, mode string) error {
	if err := s.guard.EnsureActive(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.UpdateDeviceMode(ctx, userID, mode); err != nil {
		return fmt.Errorf("fail to update device mode: %w", err)
	}
	return nil
}

func (s *UserService) MarkWelcomeSeen(ctx context.Context, userID string) error {
	if err := s.guard.EnsureActive(ctx, userID); err != nil {
		return err
	}
	return s.repo.MarkWelcomeSeen(ctx, userID)
}

func (s *UserService) GetUserInfo(ctx context.Context, userID string) (*repo.User, error) {
	return s.repo.GetUserInfo(ctx, userID)
}

func (s *UserService) GetPresence(ctx context.Context, userID string) (string, error) {
	return s.redis.GetPresence(ctx, userID)
}

func (s *UserService) AddFriend(ctx context.Context, userID, friendID string) error {
	if err := s.guard.EnsureActive(ctx, userID); err != nil {
		return err
	}
	return s.repo.CreateFriend(ctx, userID, friendID)
}

func (s *UserService) GetFriends(ctx context.Context, userID string) ([]repo.User, error) {
	ids, err := s.repo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fail to get friend ids: %w", err)
	}
	return s.repo.GetUserInfos(ctx, ids)
}

func (s *UserService) AddComment(ctx context.Context, commenterID, targetID, text string) error {
	if err := s.guard.EnsureActive(ctx, commenterID); err != nil {
		return err
	}
	if err := moderation.Ensure(text); err != nil {
		return err
	}
	name, err := s.repo.GetUserName(ctx, commenterID)
	if err != nil {
		return err
	}
	comment := &model.Comment{
		ID:            uuid.New(),
		TargetID:      targetID,
		CommenterID:   commenterID,
		CommenterName: name,
		Text:          text,
	}
	return s.repo.AddComment(ctx, comment)
}

func (s *UserService) GetComments(ctx context.Context, targetID string) ([]model.Comment, error) {
	return s.repo.GetComments(ctx, targetID)
}
