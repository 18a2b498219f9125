package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(uid int64, session string) *Player {
	return New(&Raw{
		SessionID: session,
		BaseData:  &BaseData{UID: uid, NickName: "p"},
	})
}

func TestManagerLookup(t *testing.T) {
	m := NewManager()

	pa := newPlayer(1, "sa")
	pb := newPlayer(2, "sb")
	m.Add(pa)
	m.Add(pb)

	assert.True(t, m.Has(1))
	assert.False(t, m.Has(3))
	assert.Equal(t, pa, m.GetByID(1))
	assert.Nil(t, m.GetByID(3))
	assert.Equal(t, pb, m.GetBySessionID("sb"))
	assert.Nil(t, m.GetBySessionID("sx"))
	assert.Equal(t, 2, m.Count())
	assert.Len(t, m.All(), 2)

	m.Remove(1)
	assert.False(t, m.Has(1))
	assert.Equal(t, 1, m.Count())
}

func TestManagerCounter(t *testing.T) {
	m := NewManager()

	pa := newPlayer(1, "sa")
	pb := newPlayer(2, "sb")
	pb.SetOffline(true)
	m.Add(pa)
	m.Add(pb)

	// 统计不应因离线标记而崩溃或漏数
	m.Counter()
	assert.Equal(t, 2, m.Count())
}

func TestResetKeepsSeatExitResetClears(t *testing.T) {
	p := newPlayer(1, "sa")
	p.SetRoomID(7)
	p.SetSeat(1)
	p.SetGaming()
	p.SetOffline(true)

	// Reset回到入座态 保留座位与房间
	p.Reset()
	assert.Equal(t, StSit, p.GetStatus())
	assert.False(t, p.IsOffline())
	assert.Equal(t, int32(7), p.GetRoomID())
	assert.Equal(t, int32(1), p.GetSeat())
	assert.True(t, p.InRoom())

	// ExitReset彻底离房
	p.ExitReset()
	assert.Equal(t, StFree, p.GetStatus())
	assert.Equal(t, int32(-1), p.GetRoomID())
	assert.Equal(t, int32(-1), p.GetSeat())
	assert.False(t, p.InRoom())
}

func TestLogoutGame(t *testing.T) {
	p := newPlayer(1, "sa")
	require.Equal(t, "sa", p.GetSessionID())

	p.LogoutGame()
	assert.Equal(t, "", p.GetSessionID())
	assert.Nil(t, p.GetBaseData())
}
