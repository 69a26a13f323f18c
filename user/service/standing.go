package service

import (
	"context"
	"time"

	"github.com/Lenon-studio/Lenon-Chat/user/repo"
)

// StandingService 管理员账号的检查在 repo 层完成
type StandingService struct {
	repo repo.StandingRepo
}

func NewStandingService(r repo.StandingRepo) *StandingService {
	return &StandingService{repo: r}
}

func (s *StandingService) Ban(ctx context.Context, actorID, targetID, reason string, until *time.Time) error {
	return s.repo.Ban(ctx, actorID, targetID, reason, until)
}

func (s *StandingService) Unban(ctx context.Context, actorID, targetID string) error {
	return s.repo.Unban(ctx, actorID, targetID)
}

func (s *StandingService) Warn(ctx context.Context, actorID, targetID, reason string) error {
	return s.repo.Warn(ctx, actorID, targetID, reason)
}

func (s *StandingService) DismissWarning(ctx context.Context, targetID string) error {
	return s.repo.DismissWarning(ctx, targetID)
}
