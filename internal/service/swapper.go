package service

import (
	"context"

	"github.com/yola1107/kratos/v2/errors"
	"github.com/yola1107/kratos/v2/metadata"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/biz/room"
	"github.com/ArthurJoras/spanish-truco-game/pkg/codes"
)

// 玩家信息
type stPlayerInfo struct {
	Error  *errors.Error
	Player *player.Player
	Room   *room.Room
}

// swapper 从会话定位玩家与其房间
func (s *Service) swapper(ctx context.Context) (r *stPlayerInfo) {
	mid := s.sessionID(ctx)
	if mid == "" {
		return &stPlayerInfo{Error: codes.ErrSessionNotFound}
	}

	p := s.pm.GetBySessionID(mid)
	if p == nil {
		return &stPlayerInfo{Error: codes.ErrPlayerNotFound}
	}

	rm := s.rm.GetRoom(p.GetRoomID())
	if rm == nil {
		return &stPlayerInfo{Error: codes.ErrRoomNotFound}
	}

	return &stPlayerInfo{
		Error:  nil,
		Player: p,
		Room:   rm,
	}
}

// sessionID 从ctx中提取会话ID
func (s *Service) sessionID(ctx context.Context) string {
	md, ok := metadata.FromServerContext(ctx)
	if !ok {
		return ""
	}
	return md.Get("mid")
}
