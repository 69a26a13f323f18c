package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxTxRetries = 3

type RatingRepo interface {
	// Rate 同一个评分人对同一个目标只记一次 第二次返回 ErrAlreadyRated
	Rate(ctx context.Context, raterID, targetID string, score int) error
	ListRatings(ctx context.Context, targetID string) ([]model.Rating, error)
}

type ratingRepo struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) RatingRepo {
	return &ratingRepo{db: db}
}

// sqlite 测试库不支持 FOR UPDATE
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "could not serialize") ||
		strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked")
}

func (r *ratingRepo) Rate(ctx context.Context, raterID, targetID string, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}

	// 乐观并发：冲突在内部重试 耗尽才报临时失败
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// 先锁目标用户行 评分列表/评分人集合/平均分要么全部提交要么全部不动
			var target model.User
			if err := forUpdate(tx).Where("id = ?", targetID).First(&target).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}

			var n int64
			if err := tx.Model(&model.Rating{}).
				Where("target_id = ? AND rater_id = ?", targetID, raterID).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrAlreadyRated
			}

			rating := model.Rating{
				TargetID: targetID,
				RaterID:  raterID,
				Score:    score,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}

			// 平均分 = 所有评分的算术平均
			var sum int64
			var count int64
			if err := tx.Model(&model.Rating{}).
				Where("target_id = ?", targetID).
				Count(&count).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Rating{}).
				Where("target_id = ?", targetID).
				Select("COALESCE(SUM(score), 0)").
				Scan(&sum).Error; err != nil {
				return err
			}

			return tx.Model(&model.User{}).
				Where("id = ?", targetID).
				Updates(map[string]interface{}{
					"average_rating": float64(sum) / float64(count),
					"rating_count":   count,
				}).Error
		})
		if !isRetryable(err) {
			return err
		}
	}
	return ErrTransientFailure
}

func (r *ratingRepo) ListRatings(ctx context.Context, targetID string) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at ASC").
		Find(&ratings).Error
	return ratings, err
}
