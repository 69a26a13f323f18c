package repo

import (
	"context"
	"errors"

	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, reporterID, reportedUserID, reason string) (uuid.UUID, error)
	UpdateReportStatus(ctx context.Context, actorID string, reportID uuid.UUID, status model.ReportStatus) error
	ListReports(ctx context.Context, actorID string) ([]model.Report, error)
}

type reportRepo struct {
	db      *gorm.DB
	adminID string
}

func NewReportRepo(db *gorm.DB, adminID string) ReportRepo {
	return &reportRepo{db: db, adminID: adminID}
}

func (r *reportRepo) CreateReport(ctx context.Context, reporterID, reportedUserID, reason string) (uuid.UUID, error) {
	report := model.Report{
		ID:             uuid.New(),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		Reason:         reason,
		Status:         model.ReportPending,
	}
	if err := r.db.WithContext(ctx).Create(&report).Error; err != nil {
		return uuid.Nil, err
	}
	return report.ID, nil
}

// 只有管理员可以处理举报
func (r *reportRepo) UpdateReportStatus(ctx context.Context, actorID string, reportID uuid.UUID, status model.ReportStatus) error {
	if actorID != r.adminID {
		return ErrNotAuthorized
	}
	res := r.db.WithContext(ctx).Model(&model.Report{}).
		Where("id = ?", reportID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (r *reportRepo) ListReports(ctx context.Context, actorID string) ([]model.Report, error) {
	if actorID != r.adminID {
		return nil, ErrNotAuthorized
	}
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return reports, nil
}
