package room

import (
	"github.com/yola1107/kratos/v2/library/work"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
)

// Repo 抽象接口
type Repo interface {
	GetLoop() work.Loop
	GetTimer() work.Scheduler
	GetRoomConfig() *conf.Room

	// Send 按会话推送消息 非阻塞
	Send(sessionID string, ops int32, msg any)

	// SaveProfile 持久化玩家档案
	SaveProfile(p *player.Player)

	// RetireRoom 回收房间并清理成员
	RetireRoom(roomID int32)
}
