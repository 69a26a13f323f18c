package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Lenon-studio/Lenon-Chat/message/repo"

	"github.com/google/uuid"
)

type ChannelKind string

const (
	ChannelPublic  ChannelKind = "public"
	ChannelGroup   ChannelKind = "group"
	ChannelPrivate ChannelKind = "private"
)

// PublicChannelID 公共频道是单例
const PublicChannelID = "public"

// Descriptor 描述想要进入的会话 解析后才有具体的频道身份
type Descriptor struct {
	Kind    ChannelKind `json:"kind"`
	GroupID uuid.UUID   `json:"groupId,omitempty"`
	PeerID  string      `json:"peerId,omitempty"`
}

type Channel struct {
	ID   string      `json:"id"`
	Kind ChannelKind `json:"kind"`
}

// Resolver 把频道描述符解析成频道身份并判定读写资格
type Resolver struct {
	repo repo.MessageRepo
}

func NewResolver(r repo.MessageRepo) *Resolver {
	return &Resolver{repo: r}
}

// PrivateChannelID 两个参与者 id 排序后拼接 与谁发起无关
// 双方解析出的频道身份一定相同
func PrivateChannelID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return "private:" + strings.Join(pair, "_")
}

func GroupChannelID(groupID uuid.UUID) string {
	return "group:" + groupID.String()
}

// Resolve 群频道要求成员身份 失败时调用方应回落到公共频道
func (r *Resolver) Resolve(ctx context.Context, desc Descriptor, actorID string) (Channel, error) {
	switch desc.Kind {
	case ChannelPublic:
		return Channel{ID: PublicChannelID, Kind: ChannelPublic}, nil
	case ChannelGroup:
		ok, err := r.repo.IsGroupMember(ctx, desc.GroupID, actorID)
		if err != nil {
			return Channel{}, err
		}
		if !ok {
			return Channel{}, repo.ErrNotAMember
		}
		return Channel{ID: GroupChannelID(desc.GroupID), Kind: ChannelGroup}, nil
	case ChannelPrivate:
		return Channel{ID: PrivateChannelID(actorID, desc.PeerID), Kind: ChannelPrivate}, nil
	default:
		return Channel{}, repo.ErrNotAMember
	}
}

// CanPost 被群封禁的用户不能发言
func (r *Resolver) CanPost(ctx context.Context, ch Channel, actorID string) (bool, error) {
	if ch.Kind != ChannelGroup {
		return true, nil
	}
	gid, err := uuid.Parse(strings.TrimPrefix(ch.ID, "group:"))
	if err != nil {
		return false, err
	}
	banned, err := r.repo.IsGroupBanned(ctx, gid, actorID)
	if err != nil {
		return false, err
	}
	return !banned, nil
}
