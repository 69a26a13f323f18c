package service

import "sync"

// tracker 单个用户的未读计数 纯内存 不落库
// 重启后从零开始 由后续事件流重新折叠出来
type tracker struct {
	active string
	counts map[string]int
}

// UnreadTracker 维护每个在线用户的各频道未读数
type UnreadTracker struct {
	mu       sync.RWMutex
	trackers map[string]*tracker
}

func NewUnreadTracker() *UnreadTracker {
	return &UnreadTracker{trackers: make(map[string]*tracker)}
}

func (u *UnreadTracker) get(userID string) *tracker {
	t, ok := u.trackers[userID]
	if !ok {
		t = &tracker{counts: make(map[string]int)}
		u.trackers[userID] = t
	}
	return t
}

// OnInboundMessage 自己发的消息和当前激活频道的消息不计未读
func (u *UnreadTracker) OnInboundMessage(selfID, senderID, channelID string) {
	if senderID == selfID {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	t := u.get(selfID)
	if channelID == t.active {
		return
	}
	t.counts[channelID]++
}

// ActivateChannel 切换激活频道并清零该频道未读
func (u *UnreadTracker) ActivateChannel(selfID, channelID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	t := u.get(selfID)
	t.active = channelID
	t.counts[channelID] = 0
}

// Counts 返回计数快照
func (u *UnreadTracker) Counts(selfID string) map[string]int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	res := make(map[string]int)
	t, ok := u.trackers[selfID]
	if !ok {
		return res
	}
	for ch, n := range t.counts {
		res[ch] = n
	}
	return res
}

// TrackedUserIDs 当前注册了未读跟踪的用户
func (u *UnreadTracker) TrackedUserIDs() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	ids := make([]string, 0, len(u.trackers))
	for id := range u.trackers {
		ids = append(ids, id)
	}
	return ids
}
