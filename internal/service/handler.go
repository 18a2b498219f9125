package service

import (
	"context"

	"github.com/yola1107/kratos/v2/errors"
	"github.com/yola1107/kratos/v2/log"

	v1 "github.com/ArthurJoras/spanish-truco-game/api/truco/v1"
	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/pkg/codes"
)

func ecode(e *errors.Error) (int32, string) {
	if e == nil {
		return 0, ""
	}
	return e.Code, e.Message
}

// Connect 建立会话 取档或建档
func (s *Service) Connect(ctx context.Context, in *v1.ConnectReq) (*v1.ConnectRsp, error) {
	mid := s.sessionID(ctx)
	if mid == "" {
		c, m := ecode(codes.ErrSessionNotFound)
		return &v1.ConnectRsp{Code: c, Msg: m}, nil
	}

	// 同会话重复连接
	if p := s.pm.GetBySessionID(mid); p != nil {
		return &v1.ConnectRsp{UserID: p.GetPlayerID(), RoomID: roomID(p)}, nil
	}

	// 重连：旧会话还未清理时接管
	if in.UserID > 0 {
		if p := s.pm.GetByID(in.UserID); p != nil {
			p.UpdateSession(mid)
			p.SetOffline(false)
			log.Infof("session takeover. player=%s mid=%q", p.Desc(), mid)
			return &v1.ConnectRsp{UserID: p.GetPlayerID(), RoomID: roomID(p)}, nil
		}
	}

	if int32(s.pm.Count()) >= s.rc.MaxClients {
		c, m := ecode(codes.ErrServerFull)
		return &v1.ConnectRsp{Code: c, Msg: m}, nil
	}

	base, err := s.uc.LoadOrCreate(ctx, in.UserID, in.NickName)
	if err != nil {
		log.Errorf("load or create player: %v", err)
		c, m := ecode(codes.ErrFail)
		return &v1.ConnectRsp{Code: c, Msg: m}, nil
	}

	p := player.New(&player.Raw{SessionID: mid, BaseData: base})
	s.pm.Add(p)
	log.Infof("player connected. %s mid=%q", p.Desc(), mid)
	return &v1.ConnectRsp{UserID: base.UID}, nil
}

func (s *Service) CreateRoom(ctx context.Context, in *v1.CreateRoomReq) (*v1.CreateRoomRsp, error) {
	p := s.pm.GetBySessionID(s.sessionID(ctx))
	if p == nil {
		c, m := ecode(codes.ErrPlayerNotFound)
		return &v1.CreateRoomRsp{Code: c, Msg: m}, nil
	}

	r, e := s.rm.CreateRoom(p, in.Name)
	if e != nil {
		c, m := ecode(e)
		return &v1.CreateRoomRsp{Code: c, Msg: m}, nil
	}
	return &v1.CreateRoomRsp{RoomID: r.ID}, nil
}

func (s *Service) JoinRoom(ctx context.Context, in *v1.JoinRoomReq) (*v1.JoinRoomRsp, error) {
	p := s.pm.GetBySessionID(s.sessionID(ctx))
	if p == nil {
		c, m := ecode(codes.ErrPlayerNotFound)
		return &v1.JoinRoomRsp{Code: c, Msg: m}, nil
	}

	r, seat, e := s.rm.JoinRoom(p, in.RoomID)
	if e != nil {
		c, m := ecode(e)
		return &v1.JoinRoomRsp{Code: c, Msg: m}, nil
	}
	return &v1.JoinRoomRsp{RoomID: r.ID, Seat: seat}, nil
}

func (s *Service) LeaveRoom(ctx context.Context, in *v1.LeaveRoomReq) (*v1.LeaveRoomRsp, error) {
	p := s.pm.GetBySessionID(s.sessionID(ctx))
	if p == nil {
		c, m := ecode(codes.ErrPlayerNotFound)
		return &v1.LeaveRoomRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(s.rm.LeaveRoom(p))
	return &v1.LeaveRoomRsp{Code: c, Msg: m}, nil
}

func (s *Service) RoomList(ctx context.Context, in *v1.RoomListReq) (*v1.RoomListRsp, error) {
	list := s.rm.GetRoomList()
	rsp := &v1.RoomListRsp{Rooms: make([]*v1.RoomInfo, 0, len(list))}
	for _, r := range list {
		id, name, players, playing := r.Info()
		rsp.Rooms = append(rsp.Rooms, &v1.RoomInfo{
			RoomID:  id,
			Name:    name,
			Players: players,
			Playing: playing,
		})
	}
	return rsp, nil
}

func (s *Service) StartMatch(ctx context.Context, in *v1.StartMatchReq) (*v1.StartMatchRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.StartMatchRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnStartMatch(info.Player))
	return &v1.StartMatchRsp{Code: c, Msg: m}, nil
}

func (s *Service) Scene(ctx context.Context, in *v1.SceneReq) (*v1.SceneRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.SceneRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnScene(info.Player))
	return &v1.SceneRsp{Code: c, Msg: m}, nil
}

func (s *Service) PlayCard(ctx context.Context, in *v1.PlayCardReq) (*v1.PlayCardRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.PlayCardRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnPlayCard(info.Player, in.Index))
	return &v1.PlayCardRsp{Code: c, Msg: m}, nil
}

func (s *Service) Truco(ctx context.Context, in *v1.BetReq) (*v1.BetRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.BetRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnTruco(info.Player))
	return &v1.BetRsp{Code: c, Msg: m}, nil
}

func (s *Service) RespondTruco(ctx context.Context, in *v1.RespondBetReq) (*v1.BetRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.BetRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnRespondTruco(info.Player, in.Response))
	return &v1.BetRsp{Code: c, Msg: m}, nil
}

func (s *Service) Envido(ctx context.Context, in *v1.BetReq) (*v1.BetRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.BetRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnEnvido(info.Player))
	return &v1.BetRsp{Code: c, Msg: m}, nil
}

func (s *Service) RespondEnvido(ctx context.Context, in *v1.RespondBetReq) (*v1.BetRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.BetRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnRespondEnvido(info.Player, in.Response))
	return &v1.BetRsp{Code: c, Msg: m}, nil
}

func (s *Service) Flor(ctx context.Context, in *v1.BetReq) (*v1.BetRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.BetRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnFlor(info.Player))
	return &v1.BetRsp{Code: c, Msg: m}, nil
}

func (s *Service) RespondFlor(ctx context.Context, in *v1.RespondBetReq) (*v1.BetRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.BetRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnRespondFlor(info.Player, in.Response))
	return &v1.BetRsp{Code: c, Msg: m}, nil
}

func (s *Service) Forfeit(ctx context.Context, in *v1.ForfeitReq) (*v1.ForfeitRsp, error) {
	info := s.swapper(ctx)
	if info.Error != nil {
		c, m := ecode(info.Error)
		return &v1.ForfeitRsp{Code: c, Msg: m}, nil
	}

	c, m := ecode(info.Room.OnForfeit(info.Player))
	return &v1.ForfeitRsp{Code: c, Msg: m}, nil
}

func roomID(p *player.Player) int32 {
	if id := p.GetRoomID(); id > 0 {
		return id
	}
	return 0
}
