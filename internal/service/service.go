package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/wire"
	"github.com/yola1107/kratos/v2/library/work"
	"github.com/yola1107/kratos/v2/log"
	"github.com/yola1107/kratos/v2/transport/tcp"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz"
	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/biz/room"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewService)

var _ room.Repo = (*Service)(nil)

var defaultPendingNum = 10000

// 在线统计输出间隔
const reportInterval = time.Minute

// Service is a service.
type Service struct {
	logger log.Logger
	uc     *biz.Usecase

	// room
	rc    *conf.Room
	loop  work.Loop
	timer work.Scheduler
	pm *player.Manager
	rm *room.Manager

	session *tcp.ChanList
	srv     *tcp.Server
}

// NewService new a service.
func NewService(uc *biz.Usecase, logger log.Logger, c *conf.Room) (*Service, func(), error) {
	log.Infof("start server:%q version:%+v", conf.Name, conf.Version)
	log.Infof("GameID=%d ServerID=%s", conf.GameID, conf.ServerID)

	ctx, cancel := context.WithCancel(context.Background())

	s := &Service{uc: uc, logger: logger}
	s.rc = c
	s.rm = room.NewManager(s)
	s.pm = player.NewManager()
	s.loop = work.NewLoop(work.WithSize(defaultPendingNum))
	s.timer = work.NewScheduler(work.WithContext(ctx), work.WithExecutor(s.loop))

	cleanup := func() {
		log.NewHelper(logger).Info("closing the Room resources")
		cancel()
		s.rm.Close()
		for _, p := range s.pm.All() {
			p.LogoutGame()
		}
		s.timer.Stop()
		s.loop.Stop()
	}
	return s, cleanup, errors.Join(s.loop.Start(), s.rm.Start())
}

// SetCometChan 注册推送通道
func (s *Service) SetCometChan(cl *tcp.ChanList, cs *tcp.Server) {
	s.session = cl
	s.srv = cs
	s.timer.Forever(reportInterval, s.reportOnline)
	go s.watchDisconnect()
}

// reportOnline 周期输出在线统计
func (s *Service) reportOnline() {
	s.pm.Counter()
	log.Infof("<Room> Total:%d", s.rm.Count())
}

// watchDisconnect 消费断线通知
func (s *Service) watchDisconnect() {
	for mid := range s.session.DisconnectChan {
		s.onDisconnect(mid)
	}
}

func (s *Service) onDisconnect(mid string) {
	p := s.pm.GetBySessionID(mid)
	if p == nil {
		return
	}
	log.Infof("session closed. mid=%q player=%s", mid, p.Desc())

	if p.InRoom() {
		s.rm.Offline(p)
	}
	s.pm.Remove(p.GetPlayerID())
	p.LogoutGame()
}

// GetLoop 获取任务池
func (s *Service) GetLoop() work.Loop {
	return s.loop
}

// GetTimer 获取定时器
func (s *Service) GetTimer() work.Scheduler {
	return s.timer
}

// GetRoomConfig 获取房间配置
func (s *Service) GetRoomConfig() *conf.Room {
	return s.rc
}

// Send 按会话推送 通道满则丢弃
func (s *Service) Send(sessionID string, ops int32, msg any) {
	if s.session == nil || sessionID == "" {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("marshal push ops=%d: %v", ops, err)
		return
	}
	select {
	case s.session.PushChan <- &tcp.PushData{Mid: sessionID, Ops: ops, Data: data}:
	default:
		log.Warnf("push chan full. drop ops=%d mid=%q", ops, sessionID)
	}
}

// SaveProfile 异步落地玩家档案
func (s *Service) SaveProfile(p *player.Player) {
	base := p.GetBaseData()
	if base == nil {
		return
	}
	base.LastSeen = time.Now().Unix()
	snapshot := *base
	s.loop.Post(func() {
		if err := s.uc.GetDataRepo().SavePlayer(context.Background(), &snapshot); err != nil {
			log.Errorf("save player %d: %v", snapshot.UID, err)
		}
	})
}

// RetireRoom 回收房间
func (s *Service) RetireRoom(roomID int32) {
	s.rm.Retire(roomID)
}
