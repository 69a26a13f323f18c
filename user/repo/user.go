package repo

import (
	"context"
	"errors"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 代表一个用户实体 用于简单的函数返回 不要用于数据库操作
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar"`
	Status        string    `json:"status"`
	DeviceMode    string    `json:"device_mode"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserRepo interface {
	// User
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetPasswordHash(ctx context.Context, email string) (string, error)
	GetUserIDByEmail(ctx context.Context, email string) (string, error)
	UpdateLoginTime(ctx context.Context, userID string) error
	UpdateProfile(ctx context.Context, userID string, name, avatar string) error
	UpdateStatus(ctx context.Context, userID string, status string) error
	UpdateDeviceMode(ctx context.Context, userID string, mode string) error
	MarkWelcomeSeen(ctx context.Context, userID string) error
	GetUserInfo(ctx context.Context, userID string) (*User, error)
	GetUserInfos(ctx context.Context, userIDs []string) ([]User, error)
	GetUserName(ctx context.Context, userID string) (string, error)
	// Friend
	CreateFriend(ctx context.Context, userID, friendID string) error
	GetFriendIDs(ctx context.Context, userID string) ([]string, error)
	// Comment
	AddComment(ctx context.Context, comment *model.Comment) error
	GetComments(ctx context.Context, targetID string) ([]model.Comment, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetPasswordHash(ctx context.Context, email string) (string, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.PasswordHash, nil
}

func (r *userRepo) GetUserIDByEmail(ctx context.Context, email string) (string, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (r *userRepo) UpdateLoginTime(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login_at", time.Now()).Error
}

func (r *userRepo) UpdateProfile(ctx context.Context, userID string, name, avatar string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":   name,
			"avatar": avatar,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepo) UpdateStatus(ctx context.Context, userID string, status string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("status", status).Error
}

func (r *userRepo) UpdateDeviceMode(ctx context.Context, userID string, mode string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("device_mode", mode).Error
}

func (r *userRepo) MarkWelcomeSeen(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("has_seen_welcome", true).Error
}

func toView(u *model.User) *User {
	return &User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Status:        u.Status,
		DeviceMode:    u.DeviceMode,
		AverageRating: u.AverageRating,
		RatingCount:   u.RatingCount,
		CreatedAt:     u.CreatedAt,
	}
}

func (r *userRepo) GetUserInfo(ctx context.Context, userID string) (*User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toView(&user), nil
}

func (r *userRepo) GetUserInfos(ctx context.Context, userIDs []string) ([]User, error) {
	if len(userIDs) == 0 {
		return []User{}, nil
	}
	var users []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	res := make([]User, 0, len(users))
	for i := range users {
		res = append(res, *toView(&users[i]))
	}
	return res, nil
}

func (r *userRepo) GetUserName(ctx context.Context, userID string) (string, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Select("name").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return user.Name, nil
}

func (r *userRepo) CreateFriend(ctx context.Context, userID, friendID string) error {
	if userID == friendID {
		return ErrCannotFriendSelf
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.User{}).Where("id = ?", friendID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrUserNotFound
		}
		if err := tx.Model(&model.Friendship{}).
			Where("user_id = ? AND friend_id = ?", userID, friendID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyFriends
		}
		friendship := model.Friendship{
			UserID:   userID,
			FriendID: friendID,
		}
		return tx.Create(&friendship).Error
	})
}

func (r *userRepo) GetFriendIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	return ids, err
}

func (r *userRepo) AddComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *userRepo) GetComments(ctx context.Context, targetID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
