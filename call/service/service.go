package service

import (
	"context"
	"fmt"

	"github.com/Lenon-studio/Lenon-Chat/call/repo"
	"github.com/Lenon-studio/Lenon-Chat/call/repo/model"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/google/uuid"
)

type CallService struct {
	repo  repo.CallRepo
	guard *standing.Guard
}

func NewCallService(r repo.CallRepo, g *standing.Guard) *CallService {
	return &CallService{repo: r, guard: g}
}

func (s *CallService) StartCall(ctx context.Context, callerID, calleeID string, kind model.CallKind) (uuid.UUID, error) {
	if err := s.guard.EnsureActive(ctx, callerID); err != nil {
		return uuid.Nil, err
	}
	callID, err := s.repo.StartCall(ctx, callerID, calleeID, kind)
	if err != nil {
		return uuid.Nil, fmt.Errorf("fail to start call: %w", err)
	}
	return callID, nil
}

func (s *CallService) Accept(ctx context.Context, callID uuid.UUID, actorID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.Accept(ctx, callID, actorID)
}

func (s *CallService) Reject(ctx context.Context, callID uuid.UUID, actorID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.Reject(ctx, callID, actorID)
}

func (s *CallService) GetCall(ctx context.Context, callID uuid.UUID) (*model.Call, error) {
	return s.repo.GetCall(ctx, callID)
}

func (s *CallService) ListHistory(ctx context.Context, userID string) ([]model.CallRecord, error) {
	return s.repo.ListHistory(ctx, userID)
}
