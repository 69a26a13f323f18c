package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 折叠场景：激活频道 A 时 A 的消息不计 B 的消息计 1
// 激活 B 后 B 清零
func TestUnreadFold(t *testing.T) {
	u := NewUnreadTracker()
	u.ActivateChannel("zoe", "A")

	u.OnInboundMessage("zoe", "xavier", "A")
	u.OnInboundMessage("zoe", "yuri", "B")

	require.Equal(t, map[string]int{"A": 0, "B": 1}, u.Counts("zoe"))

	u.ActivateChannel("zoe", "B")
	require.Equal(t, map[string]int{"A": 0, "B": 0}, u.Counts("zoe"))
}

func TestUnreadIgnoresOwnMessages(t *testing.T) {
	u := NewUnreadTracker()
	u.ActivateChannel("zoe", "A")

	u.OnInboundMessage("zoe", "zoe", "B")
	require.Equal(t, map[string]int{"A": 0}, u.Counts("zoe"))
}

func TestUnreadAccumulates(t *testing.T) {
	u := NewUnreadTracker()
	u.ActivateChannel("zoe", "A")

	u.OnInboundMessage("zoe", "xavier", "B")
	u.OnInboundMessage("zoe", "yuri", "B")
	u.OnInboundMessage("zoe", "xavier", "C")

	require.Equal(t, map[string]int{"A": 0, "B": 2, "C": 1}, u.Counts("zoe"))
}

// 同一事件序列折叠出的计数是确定的 重启后从零重放即可恢复
func TestUnreadDeterministic(t *testing.T) {
	replay := func() map[string]int {
		u := NewUnreadTracker()
		u.ActivateChannel("zoe", "A")
		u.OnInboundMessage("zoe", "xavier", "B")
		u.ActivateChannel("zoe", "B")
		u.OnInboundMessage("zoe", "yuri", "A")
		return u.Counts("zoe")
	}
	require.Equal(t, replay(), replay())
}

func TestUnreadPerUserIsolation(t *testing.T) {
	u := NewUnreadTracker()
	u.ActivateChannel("zoe", "A")
	u.ActivateChannel("max", "B")

	u.OnInboundMessage("zoe", "yuri", "B")
	u.OnInboundMessage("max", "yuri", "B")

	require.Equal(t, 1, u.Counts("zoe")["B"])
	require.Equal(t, 0, u.Counts("max")["B"])
}
