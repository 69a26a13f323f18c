package service

import (
	"context"

	"github.com/Lenon-studio/Lenon-Chat/group/repo"
	"github.com/Lenon-studio/Lenon-Chat/moderation"
	"github.com/Lenon-studio/Lenon-Chat/standing"

	"github.com/google/uuid"
)

type GroupService struct {
	repo  repo.GroupRepo
	guard *standing.Guard
}

func NewGroupService(r repo.GroupRepo, g *standing.Guard) *GroupService {
	return &GroupService{
		repo:  r,
		guard: g,
	}
}

// CreateGroup 创建者自动成为唯一成员和唯一管理员
// 群名先过违禁词 再在事务里查重 任一失败都不落库
func (s *GroupService) CreateGroup(ctx context.Context, name string, actorID string) (uuid.UUID, error) {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return uuid.Nil, err
	}
	if err := moderation.Ensure(name); err != nil {
		return uuid.Nil, err
	}
	return s.repo.CreateGroup(ctx, name, actorID)
}

func (s *GroupService) InviteMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.InviteMember(ctx, groupID, actorID, targetID)
}

func (s *GroupService) RemoveMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.RemoveMember(ctx, groupID, actorID, targetID)
}

func (s *GroupService) BanMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.BanMember(ctx, groupID, actorID, targetID)
}

func (s *GroupService) UnbanMember(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.UnbanMember(ctx, groupID, actorID, targetID)
}

func (s *GroupService) PromoteAdmin(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.PromoteAdmin(ctx, groupID, actorID, targetID)
}

func (s *GroupService) DemoteAdmin(ctx context.Context, groupID uuid.UUID, actorID, targetID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.DemoteAdmin(ctx, groupID, actorID, targetID)
}

func (s *GroupService) LeaveGroup(ctx context.Context, groupID uuid.UUID, actorID string) error {
	if err := s.guard.EnsureActive(ctx, actorID); err != nil {
		return err
	}
	return s.repo.LeaveGroup(ctx, groupID, actorID)
}

func (s *GroupService) GetGroup(ctx context.Context, groupID uuid.UUID) (*repo.GroupDetail, error) {
	return s.repo.GetGroup(ctx, groupID)
}

func (s *GroupService) ListGroupsForUser(ctx context.Context, userID string) ([]*repo.GroupDetail, error) {
	return s.repo.ListGroupsForUser(ctx, userID)
}
