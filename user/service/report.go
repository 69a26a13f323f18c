package service

import (
	"context"

	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"
	"github.com/Lenon-studio/Lenon-Chat/user/repo"
	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"

	"github.com/google/uuid"
)

type ReportService struct {
	repo  repo.ReportRepo
	guard *standing.Guard
}

func NewReportService(r repo.ReportRepo, g *standing.Guard) *ReportService {
	return &ReportService{repo: r, guard: g}
}

func (s *ReportService) Create(ctx context.Context, reporterID, reportedUserID, reason string) (uuid.UUID, error) {
	if err := s.guard.EnsureActive(ctx, reporterID); err != nil {
		return uuid.Nil, err
	}
	if err := moderation.Ensure(reason); err != nil {
		return uuid.Nil, err
	}
	return s.repo.CreateReport(ctx, reporterID, reportedUserID, reason)
}

// Review 把举报标记为已处理
func (s *ReportService) Review(ctx context.Context, actorID string, reportID uuid.UUID) error {
	return s.repo.UpdateReportStatus(ctx, actorID, reportID, model.ReportReviewed)
}

func (s *ReportService) List(ctx context.Context, actorID string) ([]model.Report, error) {
	return s.repo.ListReports(ctx, actorID)
}
