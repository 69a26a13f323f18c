package service

import (
	"context"

	"github.com/Lenon-studio/Lenon-Chat/standing"
	"github.com/Lenon-studio/Lenon-Chat/user/repo"
	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"
)

type RatingService struct {
	repo  repo.RatingRepo
	guard *standing.Guard
}

func NewRatingService(r repo.RatingRepo, g *standing.Guard) *RatingService {
	return &RatingService{repo: r, guard: g}
}

func (s *RatingService) Rate(ctx context.Context, raterID, targetID string, score int) error {
	if err := s.guard.EnsureActive(ctx, raterID); err != nil {
		return err
	}
	return s.repo.Rate(ctx, raterID, targetID, score)
}

func (s *RatingService) ListRatings(ctx context.Context, targetID string) ([]model.Rating, error) {
	return s.repo.ListRatings(ctx, targetID)
}
